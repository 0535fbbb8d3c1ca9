package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BahathJob/Bahath-Jobs-sub000/internal/dtos"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/models"
)

type ApplicationService struct {
	DB     *gorm.DB
	Mailer Mailer
	Logger *zap.SugaredLogger
}

func NewApplicationService(db *gorm.DB, mailer Mailer, logger *zap.SugaredLogger) *ApplicationService {
	return &ApplicationService{DB: db, Mailer: mailer, Logger: logger}
}

// Apply files an application for a publicly visible job and notifies the
// employer. The application and its notification commit together. The
// composite unique index is the real duplicate guard; the error translation
// below covers two concurrent first-time applies.
func (s *ApplicationService) Apply(seeker *models.User, jobID uint, req *dtos.ApplyRequest) error {
	var job models.Job
	err := publiclyVisible(s.DB.Model(&models.Job{})).
		Where("jobs.id = ?", jobID).
		Select("jobs.*").
		Preload("Employer").
		First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	var existing int64
	err = s.DB.Model(&models.JobApplication{}).
		Where("job_id = ? AND job_seeker_id = ?", job.ID, seeker.ID).
		Count(&existing).Error
	if err != nil {
		return err
	}
	if existing > 0 {
		return ErrAlreadyApplied
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		app := models.JobApplication{
			JobID:       job.ID,
			JobSeekerID: seeker.ID,
			CoverLetter: req.CoverLetter,
			ResumeURL:   req.ResumeURL,
			Status:      models.StatusApplied,
		}
		if err := tx.Create(&app).Error; err != nil {
			return err
		}

		payload, err := json.Marshal(map[string]uint{
			"job_id":         job.ID,
			"application_id": app.ID,
		})
		if err != nil {
			return err
		}
		notification := models.Notification{
			UserID:  job.EmployerID,
			JobID:   &job.ID,
			Title:   "New Job Application",
			Message: fmt.Sprintf("%s applied for your job posting %q.", seeker.Name, job.Title),
			Data:    datatypes.JSON(payload),
		}
		return tx.Create(&notification).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyApplied
	}
	if err != nil {
		return err
	}

	// Mail is best effort; the application already committed.
	if job.Employer.Email != "" {
		body := fmt.Sprintf("<p>%s applied for <strong>%s</strong>. Log in to review the application.</p>",
			seeker.Name, job.Title)
		if err := s.Mailer.Send(job.Employer.Email, "New Job Application", body); err != nil {
			s.Logger.Warnw("failed to send application email", "employer_id", job.EmployerID, "error", err)
		}
	}
	return nil
}

// UpdateStatus moves an application along the transition table. Only the
// employer owning the underlying job may move it; anyone else sees a
// not-found, not a forbidden.
func (s *ApplicationService) UpdateStatus(employer *models.User, applicationID uint, status string) (*models.JobApplication, error) {
	next := models.ApplicationStatus(status)
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}

	var app models.JobApplication
	err := s.DB.Preload("Job").First(&app, applicationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if app.Job.EmployerID != employer.ID {
		return nil, ErrNotFound
	}

	if !app.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	if err := s.DB.Model(&app).Update("status", next).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// ListBySeeker returns the caller's applications with job and company
// context, newest first.
func (s *ApplicationService) ListBySeeker(seekerID uint) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := s.DB.Where("job_seeker_id = ?", seekerID).
		Order("created_at DESC").
		Preload("Job").
		Preload("Job.Company").
		Find(&apps).Error
	return apps, err
}

// ListForJob returns the applications for one of the employer's jobs.
func (s *ApplicationService) ListForJob(employerID, jobID uint) ([]models.JobApplication, error) {
	var job models.Job
	err := s.DB.Where("id = ? AND employer_id = ?", jobID, employerID).First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var apps []models.JobApplication
	err = s.DB.Where("job_id = ?", job.ID).
		Order("created_at DESC").
		Preload("JobSeeker").
		Find(&apps).Error
	return apps, err
}
