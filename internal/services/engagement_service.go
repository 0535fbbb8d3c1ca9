package services

import (
	"errors"
	"html"
	"strings"

	"gorm.io/gorm"

	"github.com/BahathJob/Bahath-Jobs-sub000/internal/dtos"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/models"
)

type EngagementService struct {
	DB *gorm.DB
}

func NewEngagementService(db *gorm.DB) *EngagementService {
	return &EngagementService{DB: db}
}

// ToggleResult reports whether the engagement ended up present (added) or
// absent (removed). Comments are always added.
type ToggleResult struct {
	Type  models.EngagementType
	Added bool
}

// Engage records a reaction on a job. like/favorite/interest are presence
// toggles backed by a unique index: a second call removes the row. Comments
// append unconditionally.
func (s *EngagementService) Engage(user *models.User, jobID uint, typ, content string) (*ToggleResult, error) {
	t := models.EngagementType(typ)
	if !t.Valid() {
		return nil, ErrInvalidEngagement
	}

	// Same visibility rule as listing, detail and apply: a job nobody can
	// open is a job nobody can react to.
	var job models.Job
	err := publiclyVisible(s.DB.Model(&models.Job{})).
		Where("jobs.id = ?", jobID).
		Select("jobs.*").
		First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if t == models.EngagementComment {
		content = strings.TrimSpace(content)
		if content == "" {
			return nil, ErrCommentRequired
		}
		row := models.Engagement{
			JobID:  job.ID,
			UserID: user.ID,
			Type:   t,
			// Stored escaped; comments render as plain text, never markup.
			Content: html.EscapeString(content),
		}
		if err := s.DB.Create(&row).Error; err != nil {
			return nil, err
		}
		return &ToggleResult{Type: t, Added: true}, nil
	}

	// Toggle-off first: if a row exists, this request removes it.
	res := s.DB.Where("job_id = ? AND user_id = ? AND type = ?", job.ID, user.ID, t).
		Delete(&models.Engagement{})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected > 0 {
		return &ToggleResult{Type: t, Added: false}, nil
	}

	row := models.Engagement{JobID: job.ID, UserID: user.ID, Type: t}
	err = s.DB.Create(&row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost a race with a concurrent toggle-on for the same key. The
		// unique index kept a single row; treat this request as the off
		// half of the pair.
		delErr := s.DB.Where("job_id = ? AND user_id = ? AND type = ?", job.ID, user.ID, t).
			Delete(&models.Engagement{}).Error
		if delErr != nil {
			return nil, delErr
		}
		return &ToggleResult{Type: t, Added: false}, nil
	}
	if err != nil {
		return nil, err
	}
	return &ToggleResult{Type: t, Added: true}, nil
}

// Stats aggregates engagement rows for a job by type. Types the API does not
// know about are ignored; absent types count zero.
func (s *EngagementService) Stats(jobID uint) (*dtos.EngagementStats, error) {
	var rows []struct {
		Type  models.EngagementType
		Count int64
	}
	err := s.DB.Model(&models.Engagement{}).
		Select("type, COUNT(*) as count").
		Where("job_id = ?", jobID).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &dtos.EngagementStats{}
	for _, r := range rows {
		switch r.Type {
		case models.EngagementLike:
			stats.Likes = r.Count
		case models.EngagementComment:
			stats.Comments = r.Count
		case models.EngagementFavorite:
			stats.Favorites = r.Count
		case models.EngagementInterest:
			stats.Interests = r.Count
		}
	}
	return stats, nil
}

// Comments lists a job's comments, newest first.
func (s *EngagementService) Comments(jobID uint) ([]models.Engagement, error) {
	var comments []models.Engagement
	err := s.DB.Where("job_id = ? AND type = ?", jobID, models.EngagementComment).
		Order("created_at DESC").
		Preload("User").
		Find(&comments).Error
	return comments, err
}

// Favorites returns the publicly visible jobs the user has bookmarked.
func (s *EngagementService) Favorites(userID uint) ([]dtos.JobSummary, error) {
	var jobs []models.Job
	err := publiclyVisible(s.DB.Model(&models.Job{})).
		Joins("JOIN engagements ON engagements.job_id = jobs.id").
		Where("engagements.user_id = ? AND engagements.type = ?", userID, models.EngagementFavorite).
		Select("jobs.*").
		Order("engagements.created_at DESC").
		Preload("Company").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]dtos.JobSummary, 0, len(jobs))
	for i := range jobs {
		summaries = append(summaries, dtos.NewJobSummary(&jobs[i]))
	}
	return summaries, nil
}
