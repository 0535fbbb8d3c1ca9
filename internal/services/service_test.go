package services

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BahathJob/Bahath-Jobs-sub000/internal/database"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/models"
)

// setupTestDB opens an isolated in-memory database per test and runs the
// real migrations, partial unique indexes included.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, db *gorm.DB, role models.Role, email string) *models.User {
	t.Helper()
	user := &models.User{
		Email:    email,
		Name:     strings.Split(email, "@")[0],
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createCompany(t *testing.T, db *gorm.DB, employerID uint, approved bool) *models.Company {
	t.Helper()
	company := &models.Company{
		EmployerID: employerID,
		Name:       fmt.Sprintf("Company %d", employerID),
		Logo:       "https://cdn.example.com/logo.png",
		IsApproved: approved,
	}
	require.NoError(t, db.Create(company).Error)
	return company
}

// createJob inserts a job, defaulting to publicly visible flags when the
// caller has not set them explicitly.
func createJob(t *testing.T, db *gorm.DB, job *models.Job) *models.Job {
	t.Helper()
	if job.Title == "" {
		job.Title = "Backend Engineer"
	}
	if job.Currency == "" {
		job.Currency = "USD"
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// recordingMailer captures outbound mail for assertions.
type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *recordingMailer) all() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentMail(nil), m.sent...)
}

// visibleJobFixture seeds an approved employer+company and one publicly
// visible job, the common starting point for most tests.
func visibleJobFixture(t *testing.T, db *gorm.DB) (*models.User, *models.Company, *models.Job) {
	t.Helper()
	employer := createUser(t, db, models.RoleEmployer, fmt.Sprintf("employer-%s@test.dev", strings.ReplaceAll(t.Name(), "/", "-")))
	company := createCompany(t, db, employer.ID, true)
	job := createJob(t, db, &models.Job{
		CompanyID:  company.ID,
		EmployerID: employer.ID,
		Title:      "Senior Go Engineer",
		IsActive:   true,
		IsApproved: true,
	})
	return employer, company, job
}

func daysAgo(n int) time.Time {
	return time.Now().Add(-time.Duration(n) * 24 * time.Hour)
}
