package services

import "errors"

// Sentinel errors the handlers translate into HTTP statuses. Not-found and
// not-owned are deliberately the same error so responses never reveal
// whether a resource exists.
var (
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("you are not allowed to perform this action")

	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("this account has been deactivated")
	ErrInvalidOTP         = errors.New("invalid or expired code")

	ErrCompanyExists      = errors.New("a company profile already exists for this account")
	ErrNoCompany          = errors.New("you must create a company profile first")
	ErrCompanyNotApproved = errors.New("your company profile is not approved yet")

	ErrAlreadyApplied    = errors.New("you have already applied for this job")
	ErrInvalidTransition = errors.New("illegal application status transition")
	ErrInvalidStatus     = errors.New("invalid application status")
	ErrInvalidEngagement = errors.New("invalid engagement type")
	ErrCommentRequired   = errors.New("comment content is required")
	ErrSlugTaken         = errors.New("a post with this title already exists")
)
