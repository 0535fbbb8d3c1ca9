package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Role string

const (
	RoleJobSeeker  Role = "job_seeker"
	RoleEmployer   Role = "employer"
	RoleSuperAdmin Role = "super_admin"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email string `gorm:"uniqueIndex;not null" json:"email"`
	// Empty for social-login accounts, which never authenticate by password.
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'job_seeker'" json:"role"`
	IsActive     bool   `gorm:"not null;default:true" json:"is_active"`
}

type Company struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// One company profile per employer account.
	EmployerID uint `gorm:"uniqueIndex;not null" json:"employer_id"`
	Employer   User `gorm:"foreignKey:EmployerID" json:"-"`

	Name        string `gorm:"not null" json:"name"`
	Logo        string `json:"logo"`
	Description string `gorm:"type:text" json:"description"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	Industry    string `json:"industry"`
	IsApproved  bool   `gorm:"not null;default:false" json:"is_approved"`

	// 'omitempty' prevents infinite loops when fetching a Job -> Company -> Jobs -> ...
	Jobs []Job `json:"jobs,omitempty"`
}

type WorkType string

const (
	WorkTypeRemote WorkType = "remote"
	WorkTypeOnsite WorkType = "onsite"
	WorkTypeHybrid WorkType = "hybrid"
)

type Seniority string

const (
	SeniorityEntry     Seniority = "entry"
	SeniorityMid       Seniority = "mid"
	SenioritySenior    Seniority = "senior"
	SeniorityExecutive Seniority = "executive"
)

// Job is publicly visible only when IsActive, IsApproved and the owning
// company's IsApproved all hold.
type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CompanyID uint    `gorm:"not null;index" json:"company_id"`
	Company   Company `json:"company,omitempty"`

	EmployerID uint `gorm:"not null;index" json:"employer_id"`
	Employer   User `gorm:"foreignKey:EmployerID" json:"-"`

	Title            string    `gorm:"not null" json:"title"`
	Description      string    `gorm:"type:text" json:"description"`
	Responsibilities string    `gorm:"type:text" json:"responsibilities"`
	Requirements     string    `gorm:"type:text" json:"requirements"`
	Benefits         string    `gorm:"type:text" json:"benefits"`
	Location         string    `json:"location"`
	Industry         string    `json:"industry"`
	WorkType         WorkType  `gorm:"type:varchar(16)" json:"work_type"`
	Seniority        Seniority `gorm:"type:varchar(16)" json:"seniority"`

	SalaryMin int    `json:"salary_min"`
	SalaryMax int    `json:"salary_max"`
	Currency  string `gorm:"type:varchar(8);not null;default:'USD'" json:"currency"`

	Deadline *time.Time `json:"deadline,omitempty"`

	IsActive   bool `gorm:"not null;default:true" json:"is_active"`
	IsApproved bool `gorm:"not null;default:false" json:"is_approved"`
}

type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "applied"
	StatusUnderReview ApplicationStatus = "under_review"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusRejected    ApplicationStatus = "rejected"
	StatusHired       ApplicationStatus = "hired"
)

// JobApplication rows are hard-deleted (no soft delete) so the composite
// unique index keeps holding the one-application-per-seeker-per-job rule.
type JobApplication struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	JobID uint `gorm:"not null;uniqueIndex:uq_job_applicant" json:"job_id"`
	Job   Job  `json:"job,omitempty"`

	JobSeekerID uint `gorm:"not null;uniqueIndex:uq_job_applicant" json:"job_seeker_id"`
	JobSeeker   User `gorm:"foreignKey:JobSeekerID" json:"job_seeker,omitempty"`

	CoverLetter string            `gorm:"type:text" json:"cover_letter"`
	ResumeURL   string            `json:"resume_url"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'applied'" json:"status"`
}

// statusTransitions is the server-side guard for application status moves.
// rejected and hired are terminal.
var statusTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusApplied:     {StatusUnderReview},
	StatusUnderReview: {StatusShortlisted, StatusRejected},
	StatusShortlisted: {StatusHired},
}

func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusUnderReview, StatusShortlisted, StatusRejected, StatusHired:
		return true
	}
	return false
}

type EngagementType string

const (
	EngagementLike     EngagementType = "like"
	EngagementComment  EngagementType = "comment"
	EngagementFavorite EngagementType = "favorite"
	EngagementInterest EngagementType = "interest"
)

func (t EngagementType) Valid() bool {
	switch t {
	case EngagementLike, EngagementComment, EngagementFavorite, EngagementInterest:
		return true
	}
	return false
}

// Engagement holds at most one row per (job, user, type) for the toggle
// types; comments are append-only, so the unique index is partial. Rows are
// hard-deleted: a soft-deleted row would still occupy the index slot and
// break re-toggling.
type Engagement struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	JobID  uint           `gorm:"not null;index;uniqueIndex:uq_engagement_toggle,where:type <> 'comment'" json:"job_id"`
	UserID uint           `gorm:"not null;uniqueIndex:uq_engagement_toggle,where:type <> 'comment'" json:"user_id"`
	User   User           `json:"user,omitempty"`
	Type   EngagementType `gorm:"type:varchar(16);not null;uniqueIndex:uq_engagement_toggle,where:type <> 'comment'" json:"type"`

	// Only comments carry content.
	Content string `gorm:"type:text" json:"content,omitempty"`
}

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID  uint           `gorm:"not null;index" json:"user_id"`
	JobID   *uint          `gorm:"index" json:"job_id,omitempty"`
	Title   string         `gorm:"not null" json:"title"`
	Message string         `gorm:"type:text" json:"message"`
	Data    datatypes.JSON `json:"data,omitempty"`
	IsRead  bool           `gorm:"not null;default:false" json:"is_read"`
	ReadAt  *time.Time     `json:"read_at,omitempty"`
}

type BlogPost struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	AuthorID uint `gorm:"not null" json:"author_id"`
	Author   User `gorm:"foreignKey:AuthorID" json:"-"`

	Title       string `gorm:"not null" json:"title"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Content     string `gorm:"type:text" json:"content"`
	IsPublished bool   `gorm:"not null;default:false" json:"is_published"`
}

type OTPPurpose string

const (
	OTPPurposePasswordReset OTPPurpose = "password_reset"
)

type OTP struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"-"`

	UserID    uint       `gorm:"not null;index" json:"-"`
	Code      string     `gorm:"type:varchar(12);not null" json:"-"`
	Purpose   OTPPurpose `gorm:"type:varchar(32);not null" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"-"`
	Used      bool       `gorm:"not null;default:false" json:"-"`
}
