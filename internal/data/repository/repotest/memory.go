// Package repotest provides in-memory implementations of the repository
// interfaces. They mirror the PostgreSQL schema constraints (unique email,
// enrollment primary key, foreign keys with cascading deletes) so use cases
// and handlers can be tested without a database.
package repotest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"course-enrollment/internal/data/entity"
	"course-enrollment/internal/data/repository"

	"github.com/google/uuid"
)

// Store holds every table. The zero value is not usable, call New.
type Store struct {
	mu          sync.Mutex
	seq         int64
	users       map[uuid.UUID]entity.User
	courses     map[uuid.UUID]entity.Course
	enrollments map[enrollmentKey]enrollmentRow
	reviews     map[uuid.UUID]reviewRow
	courseSeq   map[uuid.UUID]int64

	// Err, when set, is returned by every operation.
	Err error
}

type enrollmentKey struct {
	courseID uuid.UUID
	userID   uuid.UUID
}

type enrollmentRow struct {
	entity.Enrollment
	seq int64
}

type reviewRow struct {
	entity.Review
	seq int64
}

func New() *Store {
	return &Store{
		users:       make(map[uuid.UUID]entity.User),
		courses:     make(map[uuid.UUID]entity.Course),
		enrollments: make(map[enrollmentKey]enrollmentRow),
		reviews:     make(map[uuid.UUID]reviewRow),
		courseSeq:   make(map[uuid.UUID]int64),
	}
}

// Repository returns a repository set backed by s.
func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		User:       userRepo{s},
		Course:     courseRepo{s},
		Enrollment: enrollmentRepo{s},
		Review:     reviewRepo{s},
	}
}

// ReviewCount returns the number of stored reviews for the pair.
func (s *Store) ReviewCount(courseID, userID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, row := range s.reviews {
		if row.CourseID == courseID && row.UserID == userID {
			n++
		}
	}
	return n
}

func (s *Store) next() int64 {
	s.seq++
	return s.seq
}

var errInjected = errors.New("injected")

func (s *Store) fail() error {
	if s.Err != nil {
		return fmt.Errorf("%w: %w", errInjected, s.Err)
	}
	return nil
}

// ==================== USERS ====================

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail(); err != nil {
		return err
	}

	for _, existing := range r.s.users {
		if existing.Email == user.Email {
			return fmt.Errorf("create user %s: %w", user.Email, repository.ErrDuplicate)
		}
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r userRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail(); err != nil {
		return nil, err
	}

	user, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r userRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail(); err != nil {
		return nil, err
	}

	for _, user := range r.s.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, nil
}

// ==================== COURSES ====================

type courseRepo struct{ s *Store }

func (r courseRepo) Create(_ context.Context, course *entity.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail(); err != nil {
		return err
	}

	if _, ok := r.s.users[course.InstructorID]; !ok {
		return fmt.Errorf("create course: %w", repository.ErrForeignKey)
	}
	if _, ok := r.s.courses[course.ID]; ok {
		return fmt.Errorf("create course: %w", repository.ErrDuplicate)
	}
	r.s.courses[course.ID] = *course
	r.s.courseSeq[course.ID] = r.s.next()
	return nil
}

func (r courseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail(); err != nil {
		return nil, err
	}

	course, ok := r.s.courses[id]
	if !ok {
		return nil, nil
	}
	return &course, nil
}

func (r courseRepo) FindByInstructorID(_ context.Context, instructorID uuid.UUID) ([]*entity.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail(); err != nil {
		return nil, err
	}

	courses := make([]*entity.Course, 0)
	for _, course := range r.s.courses {
		if course.InstructorID == instructorID {
			c := course
			courses = append(courses, &c)
		}
	}
	sort.Slice(courses, func(i, j int) bool {
		return r.s.courseSeq[courses[i].ID] > r.s.courseSeq[courses[j].ID]
	})
	return courses, nil
}

func (r courseRepo) Update(_ context.Context, id uuid.UUID, title, description *string) (*entity.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail(); err != nil {
		return nil, err
	}

	course, ok := r.s.courses[id]
	if !ok {
		return nil, nil
	}
	if title != nil {
		course.Title = *title
	}
	if description != nil {
		d := *description
		course.Description = &d
	}
	course.UpdatedAt = time.Now()
	r.s.courses[id] = course
	return &course, nil
}

func (r courseRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail(); err != nil {
		return false, err
	}

	if _, ok := r.s.courses[id]; !ok {
		return false, nil
	}
	delete(r.s.courses, id)
	delete(r.s.courseSeq, id)

	// ON DELETE CASCADE
	for key := range r.s.enrollments {
		if key.courseID == id {
			delete(r.s.enrollments, key)
		}
	}
	for reviewID, row := range r.s.reviews {
		if row.CourseID == id {
			delete(r.s.reviews, reviewID)
		}
	}
	return true, nil
}

// ==================== ENROLLMENTS ====================

type enrollmentRepo struct{ s *Store }

func (r enrollmentRepo) Create(_ context.Context, enrollment *entity.Enrollment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail(); err != nil {
		return err
	}

	if _, ok := r.s.courses[enrollment.CourseID]; !ok {
		return fmt.Errorf("enroll: %w", repository.ErrForeignKey)
	}
	if _, ok := r.s.users[enrollment.UserID]; !ok {
		return fmt.Errorf("enroll: %w", repository.ErrForeignKey)
	}

	key := enrollmentKey{courseID: enrollment.CourseID, userID: enrollment.UserID}
	if _, ok := r.s.enrollments[key]; ok {
		return fmt.Errorf("enroll: %w", repository.ErrDuplicate)
	}
	r.s.enrollments[key] = enrollmentRow{Enrollment: *enrollment, seq: r.s.next()}
	return nil
}

func (r enrollmentRepo) Find(_ context.Context, courseID, userID uuid.UUID) (*entity.Enrollment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail(); err != nil {
		return nil, err
	}

	row, ok := r.s.enrollments[enrollmentKey{courseID: courseID, userID: userID}]
	if !ok {
		return nil, nil
	}
	enrollment := row.Enrollment
	return &enrollment, nil
}

func (r enrollmentRepo) Delete(_ context.Context, courseID, userID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail(); err != nil {
		return false, err
	}

	key := enrollmentKey{courseID: courseID, userID: userID}
	if _, ok := r.s.enrollments[key]; !ok {
		return false, nil
	}
	delete(r.s.enrollments, key)
	return true, nil
}

func (r enrollmentRepo) FindCoursesByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail(); err != nil {
		return nil, err
	}

	rows := make([]enrollmentRow, 0)
	for key, row := range r.s.enrollments {
		if key.userID == userID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq > rows[j].seq })

	courses := make([]*entity.Course, 0, len(rows))
	for _, row := range rows {
		if course, ok := r.s.courses[row.CourseID]; ok {
			courses = append(courses, &course)
		}
	}
	return courses, nil
}

// ==================== REVIEWS ====================

type reviewRepo struct{ s *Store }

func (r reviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail(); err != nil {
		return err
	}

	if _, ok := r.s.courses[review.CourseID]; !ok {
		return fmt.Errorf("create review: %w", repository.ErrForeignKey)
	}
	if _, ok := r.s.users[review.UserID]; !ok {
		return fmt.Errorf("create review: %w", repository.ErrForeignKey)
	}
	r.s.reviews[review.ID] = reviewRow{Review: *review, seq: r.s.next()}
	return nil
}

// pairRows returns the reviews of the pair, most recent first. Caller holds mu.
func (r reviewRepo) pairRows(courseID, userID uuid.UUID) []reviewRow {
	rows := make([]reviewRow, 0)
	for _, row := range r.s.reviews {
		if row.CourseID == courseID && row.UserID == userID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq > rows[j].seq })
	return rows
}

func (r reviewRepo) FindByCourseAndUser(_ context.Context, courseID, userID uuid.UUID) (*entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail(); err != nil {
		return nil, err
	}

	rows := r.pairRows(courseID, userID)
	if len(rows) == 0 {
		return nil, nil
	}
	review := rows[0].Review
	return &review, nil
}

func (r reviewRepo) FindByCourseID(_ context.Context, courseID uuid.UUID) ([]*entity.ReviewWithAuthor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail(); err != nil {
		return nil, err
	}

	rows := make([]reviewRow, 0)
	for _, row := range r.s.reviews {
		if row.CourseID == courseID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq > rows[j].seq })

	reviews := make([]*entity.ReviewWithAuthor, 0, len(rows))
	for _, row := range rows {
		user, ok := r.s.users[row.UserID]
		if !ok {
			continue
		}
		reviews = append(reviews, &entity.ReviewWithAuthor{Review: row.Review, ReviewerName: user.Name})
	}
	return reviews, nil
}

func (r reviewRepo) UpdateByCourseAndUser(_ context.Context, courseID, userID uuid.UUID, rating *int, comment *string) (*entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail(); err != nil {
		return nil, err
	}

	rows := r.pairRows(courseID, userID)
	if len(rows) == 0 {
		return nil, nil
	}
	for _, row := range rows {
		if rating != nil {
			row.Rating = *rating
		}
		if comment != nil {
			c := *comment
			row.Comment = &c
		}
		r.s.reviews[row.ID] = row
	}

	latest := r.s.reviews[rows[0].ID].Review
	return &latest, nil
}

func (r reviewRepo) GetCourseReviewStats(_ context.Context, courseID uuid.UUID) (float64, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail(); err != nil {
		return 0, 0, err
	}

	var sum, count int64
	for _, row := range r.s.reviews {
		if row.CourseID == courseID {
			sum += int64(row.Rating)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}
