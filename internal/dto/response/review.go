package response

import (
	"time"

	"course-enrollment/internal/data/entity"
)

type ReviewResponse struct {
	ID           string    `json:"id"`
	CourseID     string    `json:"course_id"`
	UserID       string    `json:"user_id"`
	ReviewerName string    `json:"reviewer_name,omitempty"`
	Rating       int       `json:"rating"`
	Comment      *string   `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

type CourseReviewStats struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

// Helper converter
func ReviewToResponse(review *entity.Review, reviewerName string) ReviewResponse {
	return ReviewResponse{
		ID:           review.ID.String(),
		CourseID:     review.CourseID.String(),
		UserID:       review.UserID.String(),
		ReviewerName: reviewerName,
		Rating:       review.Rating,
		Comment:      review.Comment,
		CreatedAt:    review.CreatedAt,
	}
}
