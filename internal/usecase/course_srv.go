package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"course-enrollment/internal/data/entity"
	"course-enrollment/internal/data/repository"
	"course-enrollment/internal/dto/request"
	"course-enrollment/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CourseService interface {
	CreateCourse(ctx context.Context, req *request.CourseRequest) (*response.CourseResponse, error)
	UpdateCourse(ctx context.Context, courseID string, req *request.CourseUpdateRequest) (*response.CourseResponse, error)
	DeleteCourse(ctx context.Context, courseID string) error
	GetInstructorCourses(ctx context.Context, instructorID string) ([]response.CourseResponse, error)
}

type courseService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCourseService(repo *repository.Repository, log *zap.Logger) CourseService {
	return &courseService{
		repo: repo,
		log:  log.With(zap.String("service", "course")),
	}
}

func (s *courseService) CreateCourse(ctx context.Context, req *request.CourseRequest) (*response.CourseResponse, error) {
	if err := validate(s.log, "Create course", req); err != nil {
		return nil, err
	}

	instructorID, err := parseID("instructor", req.InstructorID)
	if err != nil {
		return nil, err
	}

	instructor, err := s.repo.User.FindByID(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("find instructor: %w", err)
	}
	if instructor == nil {
		return nil, fmt.Errorf("%w: %s", ErrInstructorNotFound, req.InstructorID)
	}

	now := time.Now()
	course := &entity.Course{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		InstructorID: instructorID,
	}

	if err := s.repo.Course.Create(ctx, course); err != nil {
		// instructor deleted between the lookup and the insert
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, fmt.Errorf("%w: %s", ErrInstructorNotFound, req.InstructorID)
		}
		return nil, fmt.Errorf("create course: %w", err)
	}

	s.log.Info("Course created",
		zap.String("course_id", course.ID.String()),
		zap.String("instructor_id", req.InstructorID),
	)

	resp := response.CourseToResponse(course)
	return &resp, nil
}

func (s *courseService) UpdateCourse(ctx context.Context, courseID string, req *request.CourseUpdateRequest) (*response.CourseResponse, error) {
	id, err := parseID("course", courseID)
	if err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: provide title or description", ErrNothingToUpdate)
	}
	if err := validate(s.log, "Update course", req); err != nil {
		return nil, err
	}

	title := req.Title
	if title != nil {
		trimmed := strings.TrimSpace(*title)
		title = &trimmed
	}

	course, err := s.repo.Course.Update(ctx, id, title, req.Description)
	if err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}
	if course == nil {
		return nil, fmt.Errorf("%w: %s", ErrCourseNotFound, courseID)
	}

	s.log.Info("Course updated", zap.String("course_id", courseID))

	resp := response.CourseToResponse(course)
	return &resp, nil
}

func (s *courseService) DeleteCourse(ctx context.Context, courseID string) error {
	id, err := parseID("course", courseID)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Course.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: %s", ErrCourseNotFound, courseID)
	}

	return nil
}

// GetInstructorCourses returns an empty slice, not an error, when the
// instructor has no courses.
func (s *courseService) GetInstructorCourses(ctx context.Context, instructorID string) ([]response.CourseResponse, error) {
	id, err := parseID("instructor", instructorID)
	if err != nil {
		return nil, err
	}

	courses, err := s.repo.Course.FindByInstructorID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get instructor courses: %w", err)
	}

	s.log.Debug("Instructor courses retrieved",
		zap.String("instructor_id", instructorID),
		zap.Int("count", len(courses)),
	)

	return response.CoursesToResponse(courses), nil
}
