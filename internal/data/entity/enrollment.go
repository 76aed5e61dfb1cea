package entity

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment is identified by the (CourseID, UserID) pair.
type Enrollment struct {
	CourseID  uuid.UUID `db:"course_id"`
	UserID    uuid.UUID `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}
