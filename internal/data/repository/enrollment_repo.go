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

type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *entity.Enrollment) error
	Find(ctx context.Context, courseID, userID uuid.UUID) (*entity.Enrollment, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, courseID, userID uuid.UUID) (bool, error)
	FindCoursesByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Course, error)
}

type enrollmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEnrollmentRepository(db database.PgxIface, log *zap.Logger) EnrollmentRepository {
	return &enrollmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "enrollment")),
	}
}

func (r *enrollmentRepository) Create(ctx context.Context, enrollment *entity.Enrollment) error {
	query := `
		INSERT INTO enrollments (course_id, user_id, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query,
		enrollment.CourseID,
		enrollment.UserID,
		enrollment.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create enrollment",
			zap.Error(err),
			zap.String("course_id", enrollment.CourseID.String()),
			zap.String("user_id", enrollment.UserID.String()),
		)
		return fmt.Errorf("enroll user %s in course %s: %w",
			enrollment.UserID.String(), enrollment.CourseID.String(), classify(err))
	}

	return nil
}

func (r *enrollmentRepository) Find(ctx context.Context, courseID, userID uuid.UUID) (*entity.Enrollment, error) {
	query := `
		SELECT course_id, user_id, created_at
		FROM enrollments
		WHERE course_id = $1 AND user_id = $2
	`

	var enrollment entity.Enrollment
	err := r.db.QueryRow(ctx, query, courseID, userID).Scan(
		&enrollment.CourseID,
		&enrollment.UserID,
		&enrollment.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find enrollment",
			zap.Error(err),
			zap.String("course_id", courseID.String()),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find enrollment of user %s in course %s: %w",
			userID.String(), courseID.String(), err)
	}

	return &enrollment, nil
}

func (r *enrollmentRepository) Delete(ctx context.Context, courseID, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM enrollments WHERE course_id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, courseID, userID)
	if err != nil {
		r.log.Error("Failed to delete enrollment",
			zap.Error(err),
			zap.String("course_id", courseID.String()),
			zap.String("user_id", userID.String()),
		)
		return false, fmt.Errorf("delete enrollment of user %s in course %s: %w",
			userID.String(), courseID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *enrollmentRepository) FindCoursesByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Course, error) {
	query := `
		SELECT c.id, c.title, c.description, c.instructor_id, c.created_at, c.updated_at
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.user_id = $1
		ORDER BY e.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find enrolled courses",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find enrolled courses of user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	courses := make([]*entity.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			r.log.Error("Failed to scan enrolled course row", zap.Error(err))
			return nil, fmt.Errorf("scan enrolled course row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate enrolled course rows: %w", err)
	}

	return courses, nil
}
