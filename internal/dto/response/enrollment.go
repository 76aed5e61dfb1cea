package response

import (
	"time"

	"course-enrollment/internal/data/entity"
)

type EnrollmentResponse struct {
	CourseID  string    `json:"course_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func EnrollmentToResponse(enrollment *entity.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		CourseID:  enrollment.CourseID.String(),
		UserID:    enrollment.UserID.String(),
		CreatedAt: enrollment.CreatedAt,
	}
}
