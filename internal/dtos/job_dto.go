package dtos

import (
	"time"

	"github.com/BahathJob/Bahath-Jobs-sub000/internal/models"
)

// JobFilters is the parsed query surface of GET /jobs. Absent filters stay
// empty and are omitted from the query entirely.
type JobFilters struct {
	Page      int
	Limit     int
	Search    string
	Location  string
	Industry  string
	WorkType  string
	Seniority string
}

type JobCreateRequest struct {
	Title            string     `json:"title" binding:"required"`
	Description      string     `json:"description" binding:"required"`
	Responsibilities string     `json:"responsibilities"`
	Requirements     string     `json:"requirements"`
	Benefits         string     `json:"benefits"`
	Location         string     `json:"location"`
	Industry         string     `json:"industry"`
	WorkType         string     `json:"work_type" binding:"omitempty,oneof=remote onsite hybrid"`
	Seniority        string     `json:"seniority" binding:"omitempty,oneof=entry mid senior executive"`
	SalaryMin        int        `json:"salary_min"`
	SalaryMax        int        `json:"salary_max"`
	Currency         string     `json:"currency"`
	Deadline         *time.Time `json:"deadline"`
}

type JobUpdateRequest struct {
	Title            string     `json:"title" binding:"required"`
	Description      string     `json:"description" binding:"required"`
	Responsibilities string     `json:"responsibilities"`
	Requirements     string     `json:"requirements"`
	Benefits         string     `json:"benefits"`
	Location         string     `json:"location"`
	Industry         string     `json:"industry"`
	WorkType         string     `json:"work_type" binding:"omitempty,oneof=remote onsite hybrid"`
	Seniority        string     `json:"seniority" binding:"omitempty,oneof=entry mid senior executive"`
	SalaryMin        int        `json:"salary_min"`
	SalaryMax        int        `json:"salary_max"`
	Currency         string     `json:"currency"`
	Deadline         *time.Time `json:"deadline"`
	IsActive         *bool      `json:"is_active"`
}

// JobSummary is a listing row: the job joined with its company's name/logo.
type JobSummary struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Location    string     `json:"location"`
	Industry    string     `json:"industry"`
	WorkType    string     `json:"work_type"`
	Seniority   string     `json:"seniority"`
	SalaryMin   int        `json:"salary_min"`
	SalaryMax   int        `json:"salary_max"`
	Currency    string     `json:"currency"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompanyName string     `json:"company_name"`
	CompanyLogo string     `json:"company_logo"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type JobListResponse struct {
	Jobs       []JobSummary `json:"jobs"`
	Pagination Pagination   `json:"pagination"`
}

type EngagementStats struct {
	Likes     int64 `json:"likes"`
	Comments  int64 `json:"comments"`
	Favorites int64 `json:"favorites"`
	Interests int64 `json:"interests"`
}

type JobDetailResponse struct {
	models.Job
	Stats EngagementStats `json:"stats"`
}

func NewJobSummary(j *models.Job) JobSummary {
	return JobSummary{
		ID:          j.ID,
		Title:       j.Title,
		Location:    j.Location,
		Industry:    j.Industry,
		WorkType:    string(j.WorkType),
		Seniority:   string(j.Seniority),
		SalaryMin:   j.SalaryMin,
		SalaryMax:   j.SalaryMax,
		Currency:    j.Currency,
		Deadline:    j.Deadline,
		CreatedAt:   j.CreatedAt,
		CompanyName: j.Company.Name,
		CompanyLogo: j.Company.Logo,
	}
}
