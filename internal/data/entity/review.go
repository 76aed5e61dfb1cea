package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	CourseID uuid.UUID `db:"course_id"`
	UserID   uuid.UUID `db:"user_id"`
	Rating   int       `db:"rating"` // 1-5
	Comment  *string   `db:"comment"`
}

// ReviewWithAuthor is a review joined with the reviewer's name.
type ReviewWithAuthor struct {
	Review
	ReviewerName string `db:"name"`
}
