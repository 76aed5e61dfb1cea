package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"course-enrollment/internal/data/entity"
	"course-enrollment/internal/data/repository"
	"course-enrollment/internal/dto/request"
	"course-enrollment/internal/dto/response"

	"go.uber.org/zap"
)

type EnrollmentService interface {
	Enroll(ctx context.Context, req *request.EnrollmentRequest) (*response.EnrollmentResponse, error)
	Disenroll(ctx context.Context, req *request.EnrollmentRequest) error
	GetEnrolledCourses(ctx context.Context, userID string) ([]response.CourseResponse, error)
}

type enrollmentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewEnrollmentService(repo *repository.Repository, log *zap.Logger) EnrollmentService {
	return &enrollmentService{
		repo: repo,
		log:  log.With(zap.String("service", "enrollment")),
	}
}

func (s *enrollmentService) Enroll(ctx context.Context, req *request.EnrollmentRequest) (*response.EnrollmentResponse, error) {
	if err := validate(s.log, "Enroll", req); err != nil {
		return nil, err
	}

	courseID, err := parseID("course", req.CourseID)
	if err != nil {
		return nil, err
	}
	userID, err := parseID("user", req.UserID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.Enrollment.Find(ctx, courseID, userID)
	if err != nil {
		return nil, fmt.Errorf("check enrollment: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyEnrolled
	}

	enrollment := &entity.Enrollment{
		CourseID:  courseID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Enrollment.Create(ctx, enrollment); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrAlreadyEnrolled
		case errors.Is(err, repository.ErrForeignKey):
			return nil, ErrInvalidReference
		default:
			return nil, fmt.Errorf("enroll: %w", err)
		}
	}

	s.log.Info("User enrolled",
		zap.String("course_id", req.CourseID),
		zap.String("user_id", req.UserID),
	)

	resp := response.EnrollmentToResponse(enrollment)
	return &resp, nil
}

func (s *enrollmentService) Disenroll(ctx context.Context, req *request.EnrollmentRequest) error {
	if err := validate(s.log, "Disenroll", req); err != nil {
		return err
	}

	courseID, err := parseID("course", req.CourseID)
	if err != nil {
		return err
	}
	userID, err := parseID("user", req.UserID)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Enrollment.Delete(ctx, courseID, userID)
	if err != nil {
		return fmt.Errorf("disenroll: %w", err)
	}
	if !deleted {
		return ErrEnrollmentNotFound
	}

	s.log.Info("User disenrolled",
		zap.String("course_id", req.CourseID),
		zap.String("user_id", req.UserID),
	)
	return nil
}

// GetEnrolledCourses returns ErrUserNotFound only when the user does not
// exist; a user without enrollments gets an empty slice.
func (s *enrollmentService) GetEnrolledCourses(ctx context.Context, userID string) ([]response.CourseResponse, error) {
	id, err := parseID("user", userID)
	if err != nil {
		return nil, err
	}

	courses, err := s.repo.Enrollment.FindCoursesByUserID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get enrolled courses: %w", err)
	}

	if len(courses) == 0 {
		user, err := s.repo.User.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("find user: %w", err)
		}
		if user == nil {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
		}
	}

	return response.CoursesToResponse(courses), nil
}
