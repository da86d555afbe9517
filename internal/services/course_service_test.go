package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prolync/internal/models"
)

type fakeEnrollmentRepo struct {
	byUser        map[int][]int
	courseIDCalls int
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{byUser: map[int][]int{}}
}

func (f *fakeEnrollmentRepo) Enroll(userID, courseID int) error {
	for _, id := range f.byUser[userID] {
		if id == courseID {
			return nil
		}
	}
	f.byUser[userID] = append(f.byUser[userID], courseID)
	return nil
}

func (f *fakeEnrollmentRepo) ListByUser(userID int) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for _, id := range f.byUser[userID] {
		out = append(out, &models.Enrollment{UserID: userID, CourseID: id})
	}
	return out, nil
}

func (f *fakeEnrollmentRepo) CourseIDs(userID int) ([]int, error) {
	f.courseIDCalls++
	return f.byUser[userID], nil
}

func (f *fakeEnrollmentRepo) GetCount() (int, error) {
	total := 0
	for _, ids := range f.byUser {
		total += len(ids)
	}
	return total, nil
}

func (f *fakeEnrollmentRepo) GetCompletedCount() (int, error) { return 0, nil }

func (f *fakeEnrollmentRepo) StatusCounts(userID int) (int, int, error) {
	return 0, len(f.byUser[userID]), nil
}

func twoCourseCatalog() *fakeCourseRepo {
	return &fakeCourseRepo{courses: map[int]*models.Course{
		1: {ID: 1, Title: "Go Basics"},
		2: {ID: 2, Title: "SQL Deep Dive"},
	}}
}

func TestListMarksEnrollmentForAuthenticatedUser(t *testing.T) {
	enrollments := newFakeEnrollmentRepo()
	require.NoError(t, enrollments.Enroll(7, 2))

	svc := NewCourseService(twoCourseCatalog(), enrollments, nil)

	courses, err := svc.List(models.CourseFilter{}, 7)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.False(t, courses[0].IsEnrolled)
	assert.True(t, courses[1].IsEnrolled)
}

func TestListAnonymousSkipsEnrollmentLookup(t *testing.T) {
	enrollments := newFakeEnrollmentRepo()
	require.NoError(t, enrollments.Enroll(7, 1))

	svc := NewCourseService(twoCourseCatalog(), enrollments, nil)

	courses, err := svc.List(models.CourseFilter{}, 0)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	for _, course := range courses {
		assert.False(t, course.IsEnrolled)
	}
	assert.Zero(t, enrollments.courseIDCalls)
}

func TestEnrollUnknownCourse(t *testing.T) {
	svc := NewCourseService(twoCourseCatalog(), newFakeEnrollmentRepo(), nil)
	assert.ErrorIs(t, svc.Enroll(7, 99), ErrCourseNotFound)
}
