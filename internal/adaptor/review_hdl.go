package adaptor

import (
	"net/http"

	"course-enrollment/internal/dto/request"
	"course-enrollment/internal/usecase"
	"course-enrollment/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /api/courses/{id}/reviews (public)
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "id")

	var req request.CreateReviewRequest
	if !utils.BindJSON(w, r, &req) {
		return
	}

	review, err := h.service.CreateReview(r.Context(), courseID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create review")
		return
	}

	utils.ResponseCreated(w, "Review submitted successfully", "review", review)
}

// UpdateReview handles PUT /api/courses/{id}/reviews/{userId} (public)
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "id")
	userID := chi.URLParam(r, "userId")

	var req request.UpdateReviewRequest
	if !utils.BindJSON(w, r, &req) {
		return
	}

	review, err := h.service.UpdateReview(r.Context(), courseID, userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update review")
		return
	}

	utils.ResponseSuccess(w, "Review updated successfully", "review", review)
}

// GetCourseReviews handles GET /api/courses/{id}/reviews (public)
func (h *ReviewHandler) GetCourseReviews(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "id")

	reviews, err := h.service.GetCourseReviews(r.Context(), courseID)
	if err != nil {
		handleServiceError(w, h.log, err, "get course reviews")
		return
	}

	utils.ResponseSuccess(w, "success", "reviews", reviews)
}

// GetUserReview handles GET /api/courses/{id}/reviews/{userId} (public)
func (h *ReviewHandler) GetUserReview(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "id")
	userID := chi.URLParam(r, "userId")

	review, err := h.service.GetUserReview(r.Context(), courseID, userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user review")
		return
	}

	utils.ResponseSuccess(w, "success", "review", review)
}

// GetCourseReviewStats handles GET /api/courses/{id}/review-stats (public)
func (h *ReviewHandler) GetCourseReviewStats(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "id")

	stats, err := h.service.GetCourseReviewStats(r.Context(), courseID)
	if err != nil {
		handleServiceError(w, h.log, err, "get course review stats")
		return
	}

	utils.ResponseSuccess(w, "success", "stats", stats)
}
