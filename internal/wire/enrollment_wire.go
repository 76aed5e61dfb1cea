package wire

import (
	"course-enrollment/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireEnrollment(r chi.Router, enrollmentHandler *adaptor.EnrollmentHandler, auth authMiddleware) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/enrollments/{userId}", enrollmentHandler.GetEnrolledCourses)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Post("/api/enrollments", enrollmentHandler.Enroll)
		r.Delete("/api/enrollments", enrollmentHandler.Disenroll)
	})
}
