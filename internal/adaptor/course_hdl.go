package adaptor

import (
	"net/http"

	"course-enrollment/internal/dto/request"
	"course-enrollment/internal/usecase"
	"course-enrollment/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CourseHandler struct {
	service usecase.CourseService
	log     *zap.Logger
}

func NewCourseHandler(service usecase.CourseService, log *zap.Logger) *CourseHandler {
	return &CourseHandler{
		service: service,
		log:     log.With(zap.String("handler", "course")),
	}
}

// CreateCourse handles POST /api/courses (protected)
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req request.CourseRequest
	if !utils.BindJSON(w, r, &req) {
		return
	}

	course, err := h.service.CreateCourse(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create course")
		return
	}

	utils.ResponseCreated(w, "Course created successfully", "course", course)
}

// UpdateCourse handles PUT /api/courses/{id} (protected)
func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "id")

	var req request.CourseUpdateRequest
	if !utils.BindJSON(w, r, &req) {
		return
	}

	course, err := h.service.UpdateCourse(r.Context(), courseID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update course")
		return
	}

	utils.ResponseSuccess(w, "Course updated successfully", "course", course)
}

// DeleteCourse handles DELETE /api/courses/{id} (protected)
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "id")

	if err := h.service.DeleteCourse(r.Context(), courseID); err != nil {
		handleServiceError(w, h.log, err, "delete course")
		return
	}

	utils.ResponseSuccess(w, "Course deleted successfully", "", nil)
}

// GetInstructorCourses handles GET /api/courses/{id} where {id} is the
// instructor's user id (public)
func (h *CourseHandler) GetInstructorCourses(w http.ResponseWriter, r *http.Request) {
	instructorID := chi.URLParam(r, "id")

	courses, err := h.service.GetInstructorCourses(r.Context(), instructorID)
	if err != nil {
		handleServiceError(w, h.log, err, "get instructor courses")
		return
	}

	utils.ResponseSuccess(w, "success", "courses", courses)
}
