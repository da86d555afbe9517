package models

import "time"

type Job struct {
	JobID               int        `json:"job_id"`
	JobTitle            string     `json:"job_title"`
	CompanyName         string     `json:"company_name"`
	JobType             string     `json:"job_type"`
	WorkMode            string     `json:"work_mode"`
	Location            string     `json:"location"`
	SalaryPackage       string     `json:"salary_package"`
	RequiredSkills      string     `json:"required_skills"`
	JobDescription      string     `json:"job_description"`
	Responsibilities    string     `json:"responsibilities"`
	Eligibility         string     `json:"eligibility"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	ApplicationLink     string     `json:"application_link"`
	Status              string     `json:"status"`
	CreatedAt           time.Time  `json:"created_at"`
}
