package wire

import (
	"course-enrollment/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireReview registers review routes. Reviews need no authentication; the
// reviewer is named in the body or path.
func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	// Flat patterns: a sub-router mounted on /api/courses/{id} would replace
	// the course handlers registered on that exact path.
	r.Post("/api/courses/{id}/reviews", reviewHandler.CreateReview)
	r.Get("/api/courses/{id}/reviews", reviewHandler.GetCourseReviews)
	r.Get("/api/courses/{id}/reviews/{userId}", reviewHandler.GetUserReview)
	r.Put("/api/courses/{id}/reviews/{userId}", reviewHandler.UpdateReview)
	r.Get("/api/courses/{id}/review-stats", reviewHandler.GetCourseReviewStats)
}
