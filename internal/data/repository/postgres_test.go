package repository

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"course-enrollment/internal/data/entity"
	"course-enrollment/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// openTestDB connects to TEST_DATABASE_URL (postgres://...), applies the
// migrations and empties every table. The test is skipped when the variable
// is unset.
func openTestDB(t *testing.T) *Repository {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	migrateURL := "pgx5://" + strings.TrimPrefix(strings.TrimPrefix(url, "postgres://"), "postgresql://")
	require.NoError(t, database.RunMigrationsURL(migrateURL))

	pool, err := pgxpool.New(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(), `TRUNCATE reviews, enrollments, courses, users CASCADE`)
	require.NoError(t, err)

	return NewRepository(pool, zap.NewNop())
}

func seedUser(t *testing.T, repo *Repository, email string) *entity.User {
	t.Helper()

	user := &entity.User{
		BaseSimple:   entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Name:         strings.Split(email, "@")[0],
		Email:        email,
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleStudent,
	}
	require.NoError(t, repo.User.Create(context.Background(), user))
	return user
}

func seedCourse(t *testing.T, repo *Repository, instructorID uuid.UUID, title string) *entity.Course {
	t.Helper()

	now := time.Now()
	course := &entity.Course{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Title:        title,
		InstructorID: instructorID,
	}
	require.NoError(t, repo.Course.Create(context.Background(), course))
	return course
}

func TestPostgres_UserConstraints(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	user := seedUser(t, repo, "pg@example.com")

	dup := *user
	dup.ID = uuid.New()
	assert.ErrorIs(t, repo.User.Create(ctx, &dup), ErrDuplicate)

	found, err := repo.User.FindByEmail(ctx, "pg@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)

	missing, err := repo.User.FindByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPostgres_CourseLifecycle(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	err := repo.Course.Create(ctx, &entity.Course{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Title:        "Orphan",
		InstructorID: uuid.New(),
	})
	assert.ErrorIs(t, err, ErrForeignKey)

	instructor := seedUser(t, repo, "prof@example.com")
	course := seedCourse(t, repo, instructor.ID, "Go")

	desc := "Updated"
	updated, err := repo.Course.Update(ctx, course.ID, nil, &desc)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Go", updated.Title)
	assert.Equal(t, "Updated", *updated.Description)

	none, err := repo.Course.Update(ctx, uuid.New(), &desc, nil)
	require.NoError(t, err)
	assert.Nil(t, none)

	courses, err := repo.Course.FindByInstructorID(ctx, instructor.ID)
	require.NoError(t, err)
	assert.Len(t, courses, 1)

	deleted, err := repo.Course.Delete(ctx, course.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Course.Delete(ctx, course.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestPostgres_EnrollmentsAndReviews(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	instructor := seedUser(t, repo, "prof@example.com")
	student := seedUser(t, repo, "stu@example.com")
	course := seedCourse(t, repo, instructor.ID, "Go")

	enrollment := &entity.Enrollment{CourseID: course.ID, UserID: student.ID, CreatedAt: time.Now()}
	require.NoError(t, repo.Enrollment.Create(ctx, enrollment))
	assert.ErrorIs(t, repo.Enrollment.Create(ctx, enrollment), ErrDuplicate)

	courses, err := repo.Enrollment.FindCoursesByUserID(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, course.ID, courses[0].ID)

	for i, rating := range []int{3, 5} {
		require.NoError(t, repo.Review.Create(ctx, &entity.Review{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now().Add(time.Duration(i) * time.Second)},
			CourseID:   course.ID,
			UserID:     student.ID,
			Rating:     rating,
		}))
	}

	reviews, err := repo.Review.FindByCourseID(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "stu", reviews[0].ReviewerName)
	assert.Equal(t, 5, reviews[0].Rating)

	comment := "Solid"
	latest, err := repo.Review.UpdateByCourseAndUser(ctx, course.ID, student.ID, nil, &comment)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 5, latest.Rating)
	assert.Equal(t, "Solid", *latest.Comment)

	avg, count, err := repo.Review.GetCourseReviewStats(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.InDelta(t, 4.0, avg, 0.0001)

	// deleting the course cascades
	_, err = repo.Course.Delete(ctx, course.ID)
	require.NoError(t, err)

	found, err := repo.Enrollment.Find(ctx, course.ID, student.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}
