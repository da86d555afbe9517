package services

import (
	"errors"

	"prolync/internal/models"
	"prolync/internal/repositories"
)

var ErrCourseNotFound = errors.New("course not found")

type CourseService interface {
	List(filter models.CourseFilter, userID int) ([]*models.Course, error)
	GetByID(id int) (*models.Course, error)
	Create(c *models.Course) error
	Update(c *models.Course) error
	Delete(id int) error
	Enroll(userID, courseID int) error
	MyCourses(userID int) ([]*models.Enrollment, error)
}

type courseService struct {
	courses     repositories.CourseRepository
	enrollments repositories.EnrollmentRepository
	activity    ActivityService
}

func NewCourseService(
	courses repositories.CourseRepository,
	enrollments repositories.EnrollmentRepository,
	activity ActivityService,
) CourseService {
	return &courseService{courses: courses, enrollments: enrollments, activity: activity}
}

// List returns the catalog. A non-zero userID marks the courses that user
// is already enrolled in; userID 0 means an anonymous caller.
func (s *courseService) List(filter models.CourseFilter, userID int) ([]*models.Course, error) {
	courses, err := s.courses.List(filter)
	if err != nil {
		return nil, err
	}
	if userID > 0 {
		ids, err := s.enrollments.CourseIDs(userID)
		if err != nil {
			return nil, err
		}
		enrolled := make(map[int]struct{}, len(ids))
		for _, id := range ids {
			enrolled[id] = struct{}{}
		}
		for _, course := range courses {
			_, course.IsEnrolled = enrolled[course.ID]
		}
	}
	return courses, nil
}

func (s *courseService) GetByID(id int) (*models.Course, error) {
	return s.courses.GetByID(id)
}

func (s *courseService) Create(c *models.Course) error {
	if c.Category == "" {
		c.Category = "General"
	}
	if c.Level == "" {
		c.Level = "Beginner"
	}
	if c.Status == "" {
		c.Status = "Draft"
	}
	return s.courses.Create(c)
}

func (s *courseService) Update(c *models.Course) error {
	return s.courses.Update(c)
}

func (s *courseService) Delete(id int) error {
	return s.courses.Delete(id)
}

func (s *courseService) Enroll(userID, courseID int) error {
	course, err := s.courses.GetByID(courseID)
	if err != nil {
		return err
	}
	if course == nil {
		return ErrCourseNotFound
	}
	if err := s.enrollments.Enroll(userID, courseID); err != nil {
		return err
	}
	if s.activity != nil {
		s.activity.Log(userID, "ENROLL", "Enrolled in course: "+course.Title, "")
	}
	return nil
}

func (s *courseService) MyCourses(userID int) ([]*models.Enrollment, error) {
	return s.enrollments.ListByUser(userID)
}
