package usecase

import (
	"context"
	"testing"

	"course-enrollment/internal/data/entity"
	"course-enrollment/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollmentService_EnrollTwice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	instructorID := f.register(t, "Prof", "prof@example.com", entity.RoleInstructor)
	studentID := f.register(t, "Stu", "stu@example.com", entity.RoleStudent)
	courseID := f.course(t, instructorID, "Go")

	req := &request.EnrollmentRequest{CourseID: courseID.String(), UserID: studentID.String()}

	enrollment, err := f.service.Enrollment.Enroll(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, courseID.String(), enrollment.CourseID)
	assert.Equal(t, studentID.String(), enrollment.UserID)

	_, err = f.service.Enrollment.Enroll(ctx, req)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
}

func TestEnrollmentService_Enroll_UnknownReferences(t *testing.T) {
	f := newFixture(t)
	studentID := f.register(t, "Stu", "stu@example.com", entity.RoleStudent)

	_, err := f.service.Enrollment.Enroll(context.Background(), &request.EnrollmentRequest{
		CourseID: uuid.NewString(),
		UserID:   studentID.String(),
	})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestEnrollmentService_Disenroll(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	instructorID := f.register(t, "Prof", "prof@example.com", entity.RoleInstructor)
	studentID := f.register(t, "Stu", "stu@example.com", entity.RoleStudent)
	courseID := f.course(t, instructorID, "Go")

	req := &request.EnrollmentRequest{CourseID: courseID.String(), UserID: studentID.String()}

	err := f.service.Enrollment.Disenroll(ctx, req)
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)

	_, err = f.service.Enrollment.Enroll(ctx, req)
	require.NoError(t, err)

	courses, err := f.service.Enrollment.GetEnrolledCourses(ctx, studentID.String())
	require.NoError(t, err)
	require.Len(t, courses, 1)

	require.NoError(t, f.service.Enrollment.Disenroll(ctx, req))

	courses, err = f.service.Enrollment.GetEnrolledCourses(ctx, studentID.String())
	require.NoError(t, err)
	assert.Empty(t, courses)

	// the pair can enroll again after leaving
	_, err = f.service.Enrollment.Enroll(ctx, req)
	assert.NoError(t, err)
}

func TestEnrollmentService_GetEnrolledCourses(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	instructorID := f.register(t, "Prof", "prof@example.com", entity.RoleInstructor)
	studentID := f.register(t, "Stu", "stu@example.com", entity.RoleStudent)

	courses, err := f.service.Enrollment.GetEnrolledCourses(ctx, studentID.String())
	require.NoError(t, err)
	assert.Empty(t, courses)

	_, err = f.service.Enrollment.GetEnrolledCourses(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrUserNotFound)

	for _, title := range []string{"Go", "SQL"} {
		courseID := f.course(t, instructorID, title)
		_, err := f.service.Enrollment.Enroll(ctx, &request.EnrollmentRequest{
			CourseID: courseID.String(),
			UserID:   studentID.String(),
		})
		require.NoError(t, err)
	}

	courses, err = f.service.Enrollment.GetEnrolledCourses(ctx, studentID.String())
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "SQL", courses[0].Title)
}

func TestEnrollmentService_CourseDeletionCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	instructorID := f.register(t, "Prof", "prof@example.com", entity.RoleInstructor)
	studentID := f.register(t, "Stu", "stu@example.com", entity.RoleStudent)
	courseID := f.course(t, instructorID, "Go")

	_, err := f.service.Enrollment.Enroll(ctx, &request.EnrollmentRequest{
		CourseID: courseID.String(),
		UserID:   studentID.String(),
	})
	require.NoError(t, err)
	require.NoError(t, f.service.Course.DeleteCourse(ctx, courseID.String()))

	courses, err := f.service.Enrollment.GetEnrolledCourses(ctx, studentID.String())
	require.NoError(t, err)
	assert.Empty(t, courses)
}
