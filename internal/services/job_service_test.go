package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BahathJob/Bahath-Jobs-sub000/internal/dtos"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/models"
)

func TestListVisibilityPredicate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewJobService(db)

	employer := createUser(t, db, models.RoleEmployer, "employer@test.dev")
	approved := createCompany(t, db, employer.ID, true)

	other := createUser(t, db, models.RoleEmployer, "other@test.dev")
	unapproved := createCompany(t, db, other.ID, false)

	visible := createJob(t, db, &models.Job{CompanyID: approved.ID, EmployerID: employer.ID, Title: "Visible", IsActive: true, IsApproved: true})
	createJob(t, db, &models.Job{CompanyID: approved.ID, EmployerID: employer.ID, Title: "Inactive", IsActive: false, IsApproved: true})
	createJob(t, db, &models.Job{CompanyID: approved.ID, EmployerID: employer.ID, Title: "Unapproved", IsActive: true, IsApproved: false})
	createJob(t, db, &models.Job{CompanyID: unapproved.ID, EmployerID: other.ID, Title: "Hidden company", IsActive: true, IsApproved: true})

	result, err := svc.List(dtos.JobFilters{})
	require.NoError(t, err)
	require.Len(t, result.Jobs, 1)
	assert.Equal(t, "Visible", result.Jobs[0].Title)
	assert.EqualValues(t, 1, result.Pagination.Total)

	// Detail endpoint agrees with the listing on every flag combination.
	_, err = svc.Get(visible.ID)
	assert.NoError(t, err)

	var hidden []models.Job
	require.NoError(t, db.Where("title <> ?", "Visible").Find(&hidden).Error)
	for _, j := range hidden {
		_, err := svc.Get(j.ID)
		assert.ErrorIs(t, err, ErrNotFound, "job %q should be invisible", j.Title)
	}
}

func TestListSearchAndPagination(t *testing.T) {
	db := setupTestDB(t)
	svc := NewJobService(db)

	employer, company, _ := visibleJobFixture(t, db)

	// 12 matching jobs, oldest first so "React 12" is the newest.
	for i := 1; i <= 12; i++ {
		createJob(t, db, &models.Job{
			CompanyID:  company.ID,
			EmployerID: employer.ID,
			Title:      fmt.Sprintf("React Developer %02d", i),
			IsActive:   true,
			IsApproved: true,
			CreatedAt:  daysAgo(13 - i),
		})
	}

	result, err := svc.List(dtos.JobFilters{Search: "react", Page: 2, Limit: 5})
	require.NoError(t, err)
	require.Len(t, result.Jobs, 5)
	assert.EqualValues(t, 12, result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.Equal(t, 2, result.Pagination.Page)

	// Newest first: page 2 of 5 covers the 6th..10th newest, i.e. 07..03.
	assert.Equal(t, "React Developer 07", result.Jobs[0].Title)
	assert.Equal(t, "React Developer 03", result.Jobs[4].Title)

	// Out-of-range page: empty list, total still reported.
	far, err := svc.List(dtos.JobFilters{Search: "react", Page: 9, Limit: 5})
	require.NoError(t, err)
	assert.Empty(t, far.Jobs)
	assert.EqualValues(t, 12, far.Pagination.Total)
}

func TestListSearchMatchesCompanyName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewJobService(db)

	employer := createUser(t, db, models.RoleEmployer, "employer@test.dev")
	company := &models.Company{EmployerID: employer.ID, Name: "Acme Robotics", IsApproved: true}
	require.NoError(t, db.Create(company).Error)
	createJob(t, db, &models.Job{CompanyID: company.ID, EmployerID: employer.ID, Title: "Welder", Description: "Factory role", IsActive: true, IsApproved: true})

	result, err := svc.List(dtos.JobFilters{Search: "ACME"})
	require.NoError(t, err)
	require.Len(t, result.Jobs, 1)
	assert.Equal(t, "Acme Robotics", result.Jobs[0].CompanyName)
}

func TestListIndependentFilters(t *testing.T) {
	db := setupTestDB(t)
	svc := NewJobService(db)
	employer, company, _ := visibleJobFixture(t, db)

	createJob(t, db, &models.Job{
		CompanyID: company.ID, EmployerID: employer.ID,
		Title: "Remote Senior Dev", Location: "Riyadh", Industry: "Software",
		WorkType: models.WorkTypeRemote, Seniority: models.SenioritySenior,
		IsActive: true, IsApproved: true,
	})
	createJob(t, db, &models.Job{
		CompanyID: company.ID, EmployerID: employer.ID,
		Title: "Onsite Junior Dev", Location: "Jeddah", Industry: "Software",
		WorkType: models.WorkTypeOnsite, Seniority: models.SeniorityEntry,
		IsActive: true, IsApproved: true,
	})

	result, err := svc.List(dtos.JobFilters{Location: "riyadh", WorkType: "remote", Seniority: "senior"})
	require.NoError(t, err)
	require.Len(t, result.Jobs, 1)
	assert.Equal(t, "Remote Senior Dev", result.Jobs[0].Title)

	result, err = svc.List(dtos.JobFilters{Industry: "software"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, result.Pagination.Total)
}

func TestCreateRequiresApprovedCompany(t *testing.T) {
	db := setupTestDB(t)
	svc := NewJobService(db)

	req := &dtos.JobCreateRequest{Title: "DBA", Description: "Keep the lights on"}

	noCompany := createUser(t, db, models.RoleEmployer, "lonely@test.dev")
	_, err := svc.Create(noCompany, req)
	assert.ErrorIs(t, err, ErrNoCompany)

	pending := createUser(t, db, models.RoleEmployer, "pending@test.dev")
	createCompany(t, db, pending.ID, false)
	_, err = svc.Create(pending, req)
	assert.ErrorIs(t, err, ErrCompanyNotApproved)
}

func TestCreateDefaults(t *testing.T) {
	db := setupTestDB(t)
	svc := NewJobService(db)
	employer := createUser(t, db, models.RoleEmployer, "employer@test.dev")
	createCompany(t, db, employer.ID, true)

	job, err := svc.Create(employer, &dtos.JobCreateRequest{
		Title:       "Platform Engineer",
		Description: "Build the platform",
		SalaryMin:   80000,
		SalaryMax:   120000,
	})
	require.NoError(t, err)
	assert.Equal(t, "USD", job.Currency)
	assert.True(t, job.IsActive)
	assert.False(t, job.IsApproved, "new jobs wait for moderation")
}

func TestUpdateOwnershipAndApprovalUntouched(t *testing.T) {
	db := setupTestDB(t)
	svc := NewJobService(db)
	employer, _, job := visibleJobFixture(t, db)
	stranger := createUser(t, db, models.RoleEmployer, "stranger@test.dev")

	req := &dtos.JobUpdateRequest{Title: "Renamed", Description: "Updated"}

	_, err := svc.Update(stranger.ID, job.ID, req)
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := svc.Update(employer.ID, job.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.True(t, updated.IsApproved, "update must not reset approval")
}

func TestDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	svc := NewJobService(db)
	employer, _, job := visibleJobFixture(t, db)

	seeker := createUser(t, db, models.RoleJobSeeker, "seeker@test.dev")
	apps := NewApplicationService(db, &recordingMailer{}, zap.NewNop().Sugar())
	require.NoError(t, apps.Apply(seeker, job.ID, &dtos.ApplyRequest{CoverLetter: "Hello"}))
	require.NoError(t, db.Create(&models.Engagement{JobID: job.ID, UserID: seeker.ID, Type: models.EngagementLike}).Error)
	require.NoError(t, db.Create(&models.Engagement{JobID: job.ID, UserID: seeker.ID, Type: models.EngagementComment, Content: "Great role!"}).Error)

	// A notification about an unrelated event must survive the cascade.
	require.NoError(t, db.Create(&models.Notification{UserID: employer.ID, Title: "Welcome"}).Error)

	// A third party cannot delete.
	other := createUser(t, db, models.RoleEmployer, "other@test.dev")
	assert.ErrorIs(t, svc.Delete(other, job.ID), ErrForbidden)

	require.NoError(t, svc.Delete(employer, job.ID))

	var appRows, engagements, jobNotifications, otherNotifications int64
	require.NoError(t, db.Model(&models.JobApplication{}).Where("job_id = ?", job.ID).Count(&appRows).Error)
	require.NoError(t, db.Model(&models.Engagement{}).Where("job_id = ?", job.ID).Count(&engagements).Error)
	require.NoError(t, db.Model(&models.Notification{}).Where("job_id = ?", job.ID).Count(&jobNotifications).Error)
	require.NoError(t, db.Model(&models.Notification{}).Where("job_id IS NULL").Count(&otherNotifications).Error)
	assert.Zero(t, appRows)
	assert.Zero(t, engagements)
	assert.Zero(t, jobNotifications)
	assert.EqualValues(t, 1, otherNotifications)

	_, err := svc.Get(job.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteByAdmin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewJobService(db)
	_, _, job := visibleJobFixture(t, db)
	admin := createUser(t, db, models.RoleSuperAdmin, "admin@test.dev")

	require.NoError(t, svc.Delete(admin, job.ID))
	_, err := svc.Get(job.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetApproval(t *testing.T) {
	db := setupTestDB(t)
	svc := NewJobService(db)
	employer := createUser(t, db, models.RoleEmployer, "employer@test.dev")
	company := createCompany(t, db, employer.ID, true)
	job := createJob(t, db, &models.Job{CompanyID: company.ID, EmployerID: employer.ID, IsActive: true, IsApproved: false})

	_, err := svc.Get(job.ID)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.SetApproval(job.ID, true)
	require.NoError(t, err)

	_, err = svc.Get(job.ID)
	assert.NoError(t, err)
}
