package wire

import (
	"course-enrollment/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCourse(r chi.Router, courseHandler *adaptor.CourseHandler, auth authMiddleware) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/courses/{id} - courses taught by the instructor {id}
	r.Get("/api/courses/{id}", courseHandler.GetInstructorCourses)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Post("/api/courses", courseHandler.CreateCourse)
		r.Put("/api/courses/{id}", courseHandler.UpdateCourse)
		r.Delete("/api/courses/{id}", courseHandler.DeleteCourse)
	})
}
