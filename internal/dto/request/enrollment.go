package request

// EnrollmentRequest is the body of both enroll and disenroll.
type EnrollmentRequest struct {
	CourseID string `json:"courseId" validate:"required,uuid"`
	UserID   string `json:"userId" validate:"required,uuid"`
}
