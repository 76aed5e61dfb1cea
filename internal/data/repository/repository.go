package repository

import (
	"course-enrollment/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Course     CourseRepository
	Enrollment EnrollmentRepository
	Review     ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Course:     NewCourseRepository(db, log),
		Enrollment: NewEnrollmentRepository(db, log),
		Review:     NewReviewRepository(db, log),
	}
}
