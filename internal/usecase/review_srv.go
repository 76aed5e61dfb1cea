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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, courseID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, courseID, userID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	GetCourseReviews(ctx context.Context, courseID string) ([]response.ReviewResponse, error)
	GetUserReview(ctx context.Context, courseID, userID string) (*response.ReviewResponse, error)

	// Stats
	GetCourseReviewStats(ctx context.Context, courseID string) (*response.CourseReviewStats, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

// CreateReview always inserts a new row; a user may review a course more
// than once.
func (s *reviewService) CreateReview(ctx context.Context, courseID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if err := validate(s.log, "Create review", req); err != nil {
		return nil, err
	}

	courseUUID, err := parseID("course", courseID)
	if err != nil {
		return nil, err
	}
	userUUID, err := parseID("user", req.UserID)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		CourseID: courseUUID,
		UserID:   userUUID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, ErrInvalidReference
		}
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("user_id", req.UserID),
		zap.String("course_id", courseID),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToResponse(review, "")
	return &resp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, courseID, userID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	courseUUID, err := parseID("course", courseID)
	if err != nil {
		return nil, err
	}
	userUUID, err := parseID("user", userID)
	if err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: provide rating or comment", ErrNothingToUpdate)
	}
	if err := validate(s.log, "Update review", req); err != nil {
		return nil, err
	}

	review, err := s.repo.Review.UpdateByCourseAndUser(ctx, courseUUID, userUUID, req.Rating, req.Comment)
	if err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}

	s.log.Info("Review updated",
		zap.String("review_id", review.ID.String()),
		zap.String("course_id", courseID),
		zap.String("user_id", userID),
	)

	resp := response.ReviewToResponse(review, "")
	return &resp, nil
}

// GetCourseReviews returns ErrCourseNotFound only when the course does not
// exist; a course without reviews gets an empty slice.
func (s *reviewService) GetCourseReviews(ctx context.Context, courseID string) ([]response.ReviewResponse, error) {
	id, err := parseID("course", courseID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.FindByCourseID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get course reviews: %w", err)
	}

	if len(reviews) == 0 {
		if err := s.ensureCourse(ctx, id); err != nil {
			return nil, err
		}
	}

	out := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		out[i] = response.ReviewToResponse(&review.Review, review.ReviewerName)
	}

	return out, nil
}

// GetUserReview returns the most recent review the user left on the course.
func (s *reviewService) GetUserReview(ctx context.Context, courseID, userID string) (*response.ReviewResponse, error) {
	courseUUID, err := parseID("course", courseID)
	if err != nil {
		return nil, err
	}
	userUUID, err := parseID("user", userID)
	if err != nil {
		return nil, err
	}

	review, err := s.repo.Review.FindByCourseAndUser(ctx, courseUUID, userUUID)
	if err != nil {
		return nil, fmt.Errorf("get user review: %w", err)
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}

	resp := response.ReviewToResponse(review, "")
	return &resp, nil
}

func (s *reviewService) GetCourseReviewStats(ctx context.Context, courseID string) (*response.CourseReviewStats, error) {
	id, err := parseID("course", courseID)
	if err != nil {
		return nil, err
	}

	if err := s.ensureCourse(ctx, id); err != nil {
		return nil, err
	}

	avgRating, count, err := s.repo.Review.GetCourseReviewStats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get course review stats: %w", err)
	}

	return &response.CourseReviewStats{
		AverageRating: avgRating,
		ReviewCount:   count,
	}, nil
}

func (s *reviewService) ensureCourse(ctx context.Context, id uuid.UUID) error {
	course, err := s.repo.Course.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find course: %w", err)
	}
	if course == nil {
		return fmt.Errorf("%w: %s", ErrCourseNotFound, id.String())
	}
	return nil
}
