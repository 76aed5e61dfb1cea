package response

import (
	"time"

	"course-enrollment/internal/data/entity"
)

type CourseResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	InstructorID string    `json:"instructor_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func CourseToResponse(course *entity.Course) CourseResponse {
	return CourseResponse{
		ID:           course.ID.String(),
		Title:        course.Title,
		Description:  course.Description,
		InstructorID: course.InstructorID.String(),
		CreatedAt:    course.CreatedAt,
		UpdatedAt:    course.UpdatedAt,
	}
}

func CoursesToResponse(courses []*entity.Course) []CourseResponse {
	out := make([]CourseResponse, len(courses))
	for i, course := range courses {
		out[i] = CourseToResponse(course)
	}
	return out
}
