package repository

import (
	"context"
	"errors"
	"fmt"

	"course-enrollment/internal/data/entity"
	"course-enrollment/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByCourseAndUser(ctx context.Context, courseID, userID uuid.UUID) (*entity.Review, error)
	FindByCourseID(ctx context.Context, courseID uuid.UUID) ([]*entity.ReviewWithAuthor, error)
	// UpdateByCourseAndUser applies the non-nil fields to every review the
	// user left on the course and returns the most recent one, or nil when
	// there is none.
	UpdateByCourseAndUser(ctx context.Context, courseID, userID uuid.UUID, rating *int, comment *string) (*entity.Review, error)

	// Business queries
	GetCourseReviewStats(ctx context.Context, courseID uuid.UUID) (float64, int64, error) // rating, count
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, course_id, user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.CourseID,
		review.UserID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("course_id", review.CourseID.String()),
		)
		return fmt.Errorf("create review for course %s by user %s: %w",
			review.CourseID.String(), review.UserID.String(), classify(err))
	}

	return nil
}

func (r *reviewRepository) FindByCourseAndUser(ctx context.Context, courseID, userID uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT id, course_id, user_id, rating, comment, created_at
		FROM reviews
		WHERE course_id = $1 AND user_id = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, courseID, userID).Scan(
		&review.ID,
		&review.CourseID,
		&review.UserID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by course and user",
			zap.Error(err),
			zap.String("course_id", courseID.String()),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find review by user %s on course %s: %w",
			userID.String(), courseID.String(), err)
	}

	return &review, nil
}

func (r *reviewRepository) FindByCourseID(ctx context.Context, courseID uuid.UUID) ([]*entity.ReviewWithAuthor, error) {
	query := `
		SELECT r.id, r.course_id, r.user_id, r.rating, r.comment, r.created_at, u.name
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.course_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		r.log.Error("Failed to find reviews by course ID",
			zap.Error(err),
			zap.String("course_id", courseID.String()),
		)
		return nil, fmt.Errorf("find reviews by course ID %s: %w", courseID.String(), err)
	}
	defer rows.Close()

	reviews := make([]*entity.ReviewWithAuthor, 0)
	for rows.Next() {
		var review entity.ReviewWithAuthor
		err := rows.Scan(
			&review.ID,
			&review.CourseID,
			&review.UserID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
			&review.ReviewerName,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) UpdateByCourseAndUser(ctx context.Context, courseID, userID uuid.UUID, rating *int, comment *string) (*entity.Review, error) {
	query := `
		WITH updated AS (
			UPDATE reviews
			SET rating = COALESCE($3, rating),
			    comment = COALESCE($4, comment)
			WHERE course_id = $1 AND user_id = $2
			RETURNING id, course_id, user_id, rating, comment, created_at
		)
		SELECT id, course_id, user_id, rating, comment, created_at
		FROM updated
		ORDER BY created_at DESC
		LIMIT 1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, courseID, userID, rating, comment).Scan(
		&review.ID,
		&review.CourseID,
		&review.UserID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("course_id", courseID.String()),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("update review by user %s on course %s: %w",
			userID.String(), courseID.String(), err)
	}

	return &review, nil
}

func (r *reviewRepository) GetCourseReviewStats(ctx context.Context, courseID uuid.UUID) (float64, int64, error) {
	query := `
		SELECT
			COALESCE(AVG(rating), 0)::float8 AS avg_rating,
			COUNT(*) AS review_count
		FROM reviews
		WHERE course_id = $1
	`

	var avgRating float64
	var reviewCount int64
	err := r.db.QueryRow(ctx, query, courseID).Scan(&avgRating, &reviewCount)
	if err != nil {
		r.log.Error("Failed to get course review stats",
			zap.Error(err),
			zap.String("course_id", courseID.String()),
		)
		return 0, 0, fmt.Errorf("get course review stats for %s: %w", courseID.String(), err)
	}

	return avgRating, reviewCount, nil
}
