package adaptor

import (
	"course-enrollment/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Course     *CourseHandler
	Enrollment *EnrollmentHandler
	Review     *ReviewHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(service.Auth, log),
		User:       NewUserHandler(service.User, log),
		Course:     NewCourseHandler(service.Course, log),
		Enrollment: NewEnrollmentHandler(service.Enrollment, log),
		Review:     NewReviewHandler(service.Review, log),
	}
}
