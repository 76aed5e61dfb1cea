package usecase

import "errors"

// Domain errors returned by the services. Handlers map them to status codes
// with errors.Is; anything else is an internal failure.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidID          = errors.New("invalid id")
	ErrNothingToUpdate    = errors.New("nothing to update")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInstructorNotFound = errors.New("instructor not found")
	ErrInvalidReference   = errors.New("course or user does not exist")
	ErrAlreadyEnrolled    = errors.New("already enrolled")
	ErrUserNotFound       = errors.New("user not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrReviewNotFound     = errors.New("review not found")
)
