package services

import (
	"errors"

	"prolync/internal/models"
	"prolync/internal/repositories"
)

var ErrJobNotFound = errors.New("job not found")

type JobService interface {
	List(jobType, status string) ([]*models.Job, error)
	GetByID(id int) (*models.Job, error)
	Create(j *models.Job) error
	Update(j *models.Job) error
	Delete(id int) error
}

type jobService struct {
	jobs repositories.JobRepository
}

func NewJobService(jobs repositories.JobRepository) JobService {
	return &jobService{jobs: jobs}
}

func (s *jobService) List(jobType, status string) ([]*models.Job, error) {
	return s.jobs.List(jobType, status)
}

func (s *jobService) GetByID(id int) (*models.Job, error) {
	j, err := s.jobs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, ErrJobNotFound
	}
	return j, nil
}

func (s *jobService) Create(j *models.Job) error {
	if j.Status == "" {
		j.Status = "Active"
	}
	return s.jobs.Create(j)
}

func (s *jobService) Update(j *models.Job) error {
	return s.jobs.Update(j)
}

func (s *jobService) Delete(id int) error {
	return s.jobs.Delete(id)
}
