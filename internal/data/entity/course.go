package entity

import "github.com/google/uuid"

type Course struct {
	Base
	Title        string    `db:"title"`
	Description  *string   `db:"description"`
	InstructorID uuid.UUID `db:"instructor_id"`
}
