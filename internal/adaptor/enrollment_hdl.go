package adaptor

import (
	"net/http"

	"course-enrollment/internal/dto/request"
	"course-enrollment/internal/usecase"
	"course-enrollment/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type EnrollmentHandler struct {
	service usecase.EnrollmentService
	log     *zap.Logger
}

func NewEnrollmentHandler(service usecase.EnrollmentService, log *zap.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{
		service: service,
		log:     log.With(zap.String("handler", "enrollment")),
	}
}

// Enroll handles POST /api/enrollments (protected)
func (h *EnrollmentHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	var req request.EnrollmentRequest
	if !utils.BindJSON(w, r, &req) {
		return
	}

	enrollment, err := h.service.Enroll(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "enroll")
		return
	}

	utils.ResponseCreated(w, "Enrolled successfully", "enrollment", enrollment)
}

// Disenroll handles DELETE /api/enrollments (protected)
func (h *EnrollmentHandler) Disenroll(w http.ResponseWriter, r *http.Request) {
	var req request.EnrollmentRequest
	if !utils.BindJSON(w, r, &req) {
		return
	}

	if err := h.service.Disenroll(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "disenroll")
		return
	}

	utils.ResponseSuccess(w, "Disenrolled successfully", "", nil)
}

// GetEnrolledCourses handles GET /api/enrollments/{userId} (public)
func (h *EnrollmentHandler) GetEnrolledCourses(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	courses, err := h.service.GetEnrolledCourses(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get enrolled courses")
		return
	}

	utils.ResponseSuccess(w, "success", "enrolledCourses", courses)
}
