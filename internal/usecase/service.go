package usecase

import (
	"fmt"
	"time"

	"course-enrollment/internal/data/repository"
	"course-enrollment/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenIssuer signs identity tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, time.Time, error)
}

type Service struct {
	Auth       AuthService
	User       UserService
	Course     CourseService
	Enrollment EnrollmentService
	Review     ReviewService
}

func NewService(repo *repository.Repository, tokens TokenIssuer, log *zap.Logger) *Service {
	return &Service{
		Auth:       NewAuthService(repo.User, tokens, log),
		User:       NewUserService(repo.User, log),
		Course:     NewCourseService(repo, log),
		Enrollment: NewEnrollmentService(repo, log),
		Review:     NewReviewService(repo, log),
	}
}

// validate runs the struct validator and wraps failures in ErrValidation.
func validate(log *zap.Logger, operation string, req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		log.Warn(operation+" validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}
	return nil
}

func parseID(kind, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s ID %q", ErrInvalidID, kind, value)
	}
	return id, nil
}
