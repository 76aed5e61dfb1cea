package usecase

import (
	"context"
	"testing"

	"course-enrollment/internal/data/entity"
	"course-enrollment/internal/data/repository/repotest"
	"course-enrollment/internal/dto/request"
	"course-enrollment/pkg/security"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	store   *repotest.Store
	tokens  *security.TokenService
	service *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := repotest.New()
	tokens := security.NewTokenService("usecase-test-secret", 0)
	return &fixture{
		store:   store,
		tokens:  tokens,
		service: NewService(store.Repository(), tokens, zap.NewNop()),
	}
}

func (f *fixture) register(t *testing.T, name, email string, role entity.UserRole) uuid.UUID {
	t.Helper()

	user, err := f.service.Auth.Register(context.Background(), &request.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "secret123",
		Role:     string(role),
	})
	require.NoError(t, err)

	id, err := uuid.Parse(user.ID)
	require.NoError(t, err)
	return id
}

func (f *fixture) course(t *testing.T, instructorID uuid.UUID, title string) uuid.UUID {
	t.Helper()

	course, err := f.service.Course.CreateCourse(context.Background(), &request.CourseRequest{
		Title:        title,
		InstructorID: instructorID.String(),
	})
	require.NoError(t, err)

	id, err := uuid.Parse(course.ID)
	require.NoError(t, err)
	return id
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
