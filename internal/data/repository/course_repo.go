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

type CourseRepository interface {
	Create(ctx context.Context, course *entity.Course) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error)
	FindByInstructorID(ctx context.Context, instructorID uuid.UUID) ([]*entity.Course, error)
	// Update applies the non-nil fields and returns the stored row, or nil
	// when no course has the given id.
	Update(ctx context.Context, id uuid.UUID, title, description *string) (*entity.Course, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type courseRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCourseRepository(db database.PgxIface, log *zap.Logger) CourseRepository {
	return &courseRepository{
		db:  db,
		log: log.With(zap.String("repository", "course")),
	}
}

const courseColumns = `id, title, description, instructor_id, created_at, updated_at`

func scanCourse(row pgx.Row) (*entity.Course, error) {
	var course entity.Course
	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.InstructorID,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	query := `
		INSERT INTO courses (id, title, description, instructor_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		course.ID,
		course.Title,
		course.Description,
		course.InstructorID,
		course.CreatedAt,
		course.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create course",
			zap.Error(err),
			zap.String("instructor_id", course.InstructorID.String()),
		)
		return fmt.Errorf("create course %q: %w", course.Title, classify(err))
	}

	return nil
}

func (r *courseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find course by ID",
			zap.Error(err),
			zap.String("course_id", id.String()),
		)
		return nil, fmt.Errorf("find course by ID %s: %w", id.String(), err)
	}

	return course, nil
}

func (r *courseRepository) FindByInstructorID(ctx context.Context, instructorID uuid.UUID) ([]*entity.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses
		WHERE instructor_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, instructorID)
	if err != nil {
		r.log.Error("Failed to find courses by instructor",
			zap.Error(err),
			zap.String("instructor_id", instructorID.String()),
		)
		return nil, fmt.Errorf("find courses by instructor %s: %w", instructorID.String(), err)
	}
	defer rows.Close()

	courses := make([]*entity.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			r.log.Error("Failed to scan course row", zap.Error(err))
			return nil, fmt.Errorf("scan course row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate course rows: %w", err)
	}

	return courses, nil
}

func (r *courseRepository) Update(ctx context.Context, id uuid.UUID, title, description *string) (*entity.Course, error) {
	query := `
		UPDATE courses
		SET title = COALESCE($2, title),
		    description = COALESCE($3, description),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + courseColumns

	course, err := scanCourse(r.db.QueryRow(ctx, query, id, title, description))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update course",
			zap.Error(err),
			zap.String("course_id", id.String()),
		)
		return nil, fmt.Errorf("update course %s: %w", id.String(), err)
	}

	return course, nil
}

func (r *courseRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM courses WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete course",
			zap.Error(err),
			zap.String("course_id", id.String()),
		)
		return false, fmt.Errorf("delete course %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	r.log.Info("Course deleted", zap.String("course_id", id.String()))
	return true, nil
}
