package repositories

import (
	"database/sql"
	"fmt"

	"prolync/internal/models"
)

type JobRepository interface {
	List(jobType, status string) ([]*models.Job, error)
	GetByID(id int) (*models.Job, error)
	Create(j *models.Job) error
	Update(j *models.Job) error
	Delete(id int) error
}

type jobRepository struct {
	DB *sql.DB
}

func NewJobRepository(db *sql.DB) JobRepository {
	return &jobRepository{DB: db}
}

const jobColumns = `job_id, job_title, company_name, job_type, work_mode, location,
	salary_package, required_skills, job_description, responsibilities, eligibility,
	application_deadline, application_link, status, created_at`

func scanJob(s interface{ Scan(...interface{}) error }) (*models.Job, error) {
	var j models.Job
	if err := s.Scan(
		&j.JobID, &j.JobTitle, &j.CompanyName, &j.JobType, &j.WorkMode, &j.Location,
		&j.SalaryPackage, &j.RequiredSkills, &j.JobDescription, &j.Responsibilities, &j.Eligibility,
		&j.ApplicationDeadline, &j.ApplicationLink, &j.Status, &j.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *jobRepository) List(jobType, status string) ([]*models.Job, error) {
	q := `SELECT ` + jobColumns + ` FROM jobs WHERE 1=1`
	var args []interface{}
	if jobType != "" {
		args = append(args, jobType)
		q += fmt.Sprintf(" AND job_type = $%d", len(args))
	}
	if status != "" {
		args = append(args, status)
		q += fmt.Sprintf(" AND status = $%d", len(args))
	}
	q += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*models.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (r *jobRepository) GetByID(id int) (*models.Job, error) {
	q := `SELECT ` + jobColumns + ` FROM jobs WHERE job_id = $1`
	j, err := scanJob(r.DB.QueryRow(q, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	return j, nil
}

func (r *jobRepository) Create(j *models.Job) error {
	const q = `
		INSERT INTO jobs (job_title, company_name, job_type, work_mode, location,
			salary_package, required_skills, job_description, responsibilities, eligibility,
			application_deadline, application_link, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING job_id, created_at
	`
	if err := r.DB.QueryRow(q,
		j.JobTitle, j.CompanyName, j.JobType, j.WorkMode, j.Location,
		j.SalaryPackage, j.RequiredSkills, j.JobDescription, j.Responsibilities, j.Eligibility,
		j.ApplicationDeadline, j.ApplicationLink, j.Status,
	).Scan(&j.JobID, &j.CreatedAt); err != nil {
		return fmt.Errorf("create job: %w", err)
	}
	return nil
}

func (r *jobRepository) Update(j *models.Job) error {
	const q = `
		UPDATE jobs
		SET job_title = $1, company_name = $2, job_type = $3, work_mode = $4, location = $5,
			salary_package = $6, required_skills = $7, job_description = $8,
			responsibilities = $9, eligibility = $10, application_deadline = $11,
			application_link = $12, status = $13
		WHERE job_id = $14
	`
	if _, err := r.DB.Exec(q,
		j.JobTitle, j.CompanyName, j.JobType, j.WorkMode, j.Location,
		j.SalaryPackage, j.RequiredSkills, j.JobDescription, j.Responsibilities, j.Eligibility,
		j.ApplicationDeadline, j.ApplicationLink, j.Status, j.JobID,
	); err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

func (r *jobRepository) Delete(id int) error {
	if _, err := r.DB.Exec(`DELETE FROM jobs WHERE job_id = $1`, id); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}
