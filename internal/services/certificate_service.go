package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"prolync/internal/models"
	"prolync/internal/pdf"
	"prolync/internal/repositories"
)

var ErrCertificateNotFound = errors.New("certificate not found")

type CertificateService interface {
	Issue(userID, courseID int) (*models.Certificate, error)
	Verify(code string) (*models.Certificate, error)
}

type certificateService struct {
	certificates repositories.CertificateRepository
	users        repositories.UserRepository
	courses      repositories.CourseRepository
	generator    pdf.Generator
	activity     ActivityService

	now func() time.Time
}

func NewCertificateService(
	certificates repositories.CertificateRepository,
	users repositories.UserRepository,
	courses repositories.CourseRepository,
	generator pdf.Generator,
	activity ActivityService,
) CertificateService {
	return &certificateService{
		certificates: certificates,
		users:        users,
		courses:      courses,
		generator:    generator,
		activity:     activity,
		now:          time.Now,
	}
}

// Issue renders the PDF first and records the certificate only after the
// file is on disk. The verification code doubles as the file name.
func (s *certificateService) Issue(userID, courseID int) (*models.Certificate, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	course, err := s.courses.GetByID(courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	code := uuid.NewString()
	filePath, err := s.generator.GenerateCertificate(pdf.CertificateData{
		StudentName: user.Name,
		CourseTitle: course.Title,
		Code:        code,
		IssuedAt:    s.now(),
	})
	if err != nil {
		return nil, err
	}

	cert := &models.Certificate{
		Code:        code,
		UserID:      user.ID,
		UserName:    user.Name,
		CourseID:    course.ID,
		CourseTitle: course.Title,
		FilePath:    filePath,
	}
	if err := s.certificates.Create(cert); err != nil {
		return nil, err
	}

	if s.activity != nil {
		s.activity.Log(user.ID, "EARN_CERTIFICATE", "Certificate issued for course: "+course.Title, "")
	}
	return cert, nil
}

func (s *certificateService) Verify(code string) (*models.Certificate, error) {
	cert, err := s.certificates.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if cert == nil {
		return nil, ErrCertificateNotFound
	}
	return cert, nil
}
