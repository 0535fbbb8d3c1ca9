package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/BahathJob/Bahath-Jobs-sub000/internal/dtos"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/models"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// publiclyVisible restricts a jobs query to active, approved jobs of
// approved companies. Every public read path goes through this scope so the
// listing and detail endpoints can never disagree.
func publiclyVisible(db *gorm.DB) *gorm.DB {
	return db.
		Joins("JOIN companies ON companies.id = jobs.company_id AND companies.deleted_at IS NULL").
		Where("jobs.is_active = ? AND jobs.is_approved = ? AND companies.is_approved = ?", true, true, true)
}

// filtered applies the optional listing filters on top of the visibility
// scope. Absent filters are omitted entirely, not compared against "".
func filtered(f dtos.JobFilters) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = publiclyVisible(db)
		if f.Search != "" {
			p := "%" + strings.ToLower(f.Search) + "%"
			db = db.Where("(LOWER(jobs.title) LIKE ? OR LOWER(jobs.description) LIKE ? OR LOWER(companies.name) LIKE ?)", p, p, p)
		}
		if f.Location != "" {
			db = db.Where("LOWER(jobs.location) LIKE ?", "%"+strings.ToLower(f.Location)+"%")
		}
		if f.Industry != "" {
			db = db.Where("LOWER(jobs.industry) LIKE ?", "%"+strings.ToLower(f.Industry)+"%")
		}
		if f.WorkType != "" {
			db = db.Where("jobs.work_type = ?", f.WorkType)
		}
		if f.Seniority != "" {
			db = db.Where("jobs.seniority = ?", f.Seniority)
		}
		return db
	}
}

// List returns one page of publicly visible jobs, newest first, plus an
// exact total counted against the identical predicate.
func (s *JobService) List(f dtos.JobFilters) (*dtos.JobListResponse, error) {
	page := f.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := f.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	scope := filtered(f)

	var total int64
	if err := scope(s.DB.Model(&models.Job{})).Count(&total).Error; err != nil {
		return nil, err
	}

	var jobs []models.Job
	err := scope(s.DB.Model(&models.Job{})).
		Select("jobs.*").
		Order("jobs.created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Preload("Company").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]dtos.JobSummary, 0, len(jobs))
	for i := range jobs {
		summaries = append(summaries, dtos.NewJobSummary(&jobs[i]))
	}

	return &dtos.JobListResponse{
		Jobs: summaries,
		Pagination: dtos.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: int((total + int64(limit) - 1) / int64(limit)),
		},
	}, nil
}

// Get fetches one publicly visible job with its company. Invisible and
// missing jobs are indistinguishable to the caller.
func (s *JobService) Get(id uint) (*models.Job, error) {
	var job models.Job
	err := publiclyVisible(s.DB.Model(&models.Job{})).
		Where("jobs.id = ?", id).
		Select("jobs.*").
		Preload("Company").
		First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Create inserts a job for the employer's approved company. New jobs are
// active but unapproved until moderation clears them.
func (s *JobService) Create(employer *models.User, req *dtos.JobCreateRequest) (*models.Job, error) {
	var company models.Company
	err := s.DB.Where("employer_id = ?", employer.ID).First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoCompany
	}
	if err != nil {
		return nil, err
	}
	if !company.IsApproved {
		return nil, ErrCompanyNotApproved
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	job := &models.Job{
		CompanyID:        company.ID,
		EmployerID:       employer.ID,
		Title:            req.Title,
		Description:      req.Description,
		Responsibilities: req.Responsibilities,
		Requirements:     req.Requirements,
		Benefits:         req.Benefits,
		Location:         req.Location,
		Industry:         req.Industry,
		WorkType:         models.WorkType(req.WorkType),
		Seniority:        models.Seniority(req.Seniority),
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		Currency:         currency,
		Deadline:         req.Deadline,
		IsActive:         true,
		IsApproved:       false,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Update rewrites the mutable fields of a job the employer owns. Approval is
// never touched here; that stays an admin operation.
func (s *JobService) Update(employerID, jobID uint, req *dtos.JobUpdateRequest) (*models.Job, error) {
	var job models.Job
	err := s.DB.Where("id = ? AND employer_id = ?", jobID, employerID).First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	job.Title = req.Title
	job.Description = req.Description
	job.Responsibilities = req.Responsibilities
	job.Requirements = req.Requirements
	job.Benefits = req.Benefits
	job.Location = req.Location
	job.Industry = req.Industry
	job.WorkType = models.WorkType(req.WorkType)
	job.Seniority = models.Seniority(req.Seniority)
	job.SalaryMin = req.SalaryMin
	job.SalaryMax = req.SalaryMax
	if req.Currency != "" {
		job.Currency = req.Currency
	}
	job.Deadline = req.Deadline
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}

	if err := s.DB.Save(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// Delete removes a job and everything hanging off it. Owning employer or a
// super admin only. The child deletes run in one transaction so a failure
// never leaves orphaned rows.
func (s *JobService) Delete(actor *models.User, jobID uint) error {
	var job models.Job
	err := s.DB.First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if actor.Role != models.RoleSuperAdmin && job.EmployerID != actor.ID {
		return ErrForbidden
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", job.ID).Delete(&models.Engagement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("job_id = ?", job.ID).Delete(&models.JobApplication{}).Error; err != nil {
			return err
		}
		if err := tx.Where("job_id = ?", job.ID).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		return tx.Delete(&job).Error
	})
}

// ListByEmployer returns every job the employer owns, including inactive and
// unapproved ones.
func (s *JobService) ListByEmployer(employerID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Preload("Company").
		Find(&jobs).Error
	return jobs, err
}

// ListAll is the moderation view: every job regardless of visibility.
func (s *JobService) ListAll() ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.Order("created_at DESC").Preload("Company").Find(&jobs).Error
	return jobs, err
}

// SetApproval flips the moderation flag on a job.
func (s *JobService) SetApproval(jobID uint, approved bool) (*models.Job, error) {
	var job models.Job
	err := s.DB.First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(&job).Update("is_approved", approved).Error; err != nil {
		return nil, err
	}
	return &job, nil
}
