package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BahathJob/Bahath-Jobs-sub000/internal/auth"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/dtos"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/models"
)

func newUserServiceForTest(t *testing.T, db *gorm.DB, mailer Mailer) *UserService {
	t.Helper()
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	// MinCost keeps the bcrypt work factor out of the test runtime.
	return NewUserService(db, issuer, mailer, zap.NewNop().Sugar(), 4, 10*time.Minute)
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserServiceForTest(t, db, &recordingMailer{})

	user, token, err := svc.Register(&dtos.RegisterRequest{
		Email:    "seeker@test.dev",
		Password: "hunter2hunter2",
		Name:     "Seeker",
		Role:     "job_seeker",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, models.RoleJobSeeker, user.Role)
	assert.NotEqual(t, "hunter2hunter2", user.PasswordHash)

	_, _, err = svc.Login(&dtos.LoginRequest{Email: "seeker@test.dev", Password: "hunter2hunter2"})
	assert.NoError(t, err)

	_, _, err = svc.Login(&dtos.LoginRequest{Email: "seeker@test.dev", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserServiceForTest(t, db, &recordingMailer{})

	req := &dtos.RegisterRequest{Email: "dup@test.dev", Password: "hunter2hunter2", Name: "A", Role: "employer"}
	_, _, err := svc.Register(req)
	require.NoError(t, err)
	_, _, err = svc.Register(req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginDisabledAccount(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserServiceForTest(t, db, &recordingMailer{})

	_, _, err := svc.Register(&dtos.RegisterRequest{Email: "off@test.dev", Password: "hunter2hunter2", Name: "Off", Role: "job_seeker"})
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "off@test.dev").Update("is_active", false).Error)

	_, _, err = svc.Login(&dtos.LoginRequest{Email: "off@test.dev", Password: "hunter2hunter2"})
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestSocialAccountCannotPasswordLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserServiceForTest(t, db, &recordingMailer{})

	social := createUser(t, db, models.RoleJobSeeker, "social@test.dev") // no password hash
	_, _, err := svc.Login(&dtos.LoginRequest{Email: social.Email, Password: "anything"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPasswordResetFlow(t *testing.T) {
	db := setupTestDB(t)
	mailer := &recordingMailer{}
	svc := newUserServiceForTest(t, db, mailer)

	_, _, err := svc.Register(&dtos.RegisterRequest{Email: "reset@test.dev", Password: "originalpass1", Name: "R", Role: "job_seeker"})
	require.NoError(t, err)

	// Unknown emails succeed silently and send nothing.
	require.NoError(t, svc.ForgotPassword("nobody@test.dev"))
	assert.Empty(t, mailer.all())

	require.NoError(t, svc.ForgotPassword("reset@test.dev"))
	require.Len(t, mailer.all(), 1)

	var otp models.OTP
	require.NoError(t, db.Order("created_at DESC").First(&otp).Error)
	assert.Contains(t, mailer.all()[0].Body, otp.Code)

	// Wrong code fails.
	err = svc.ResetPassword(&dtos.ResetPasswordRequest{Email: "reset@test.dev", Code: "000000x", NewPassword: "newpassword1"})
	assert.ErrorIs(t, err, ErrInvalidOTP)

	require.NoError(t, svc.ResetPassword(&dtos.ResetPasswordRequest{Email: "reset@test.dev", Code: otp.Code, NewPassword: "newpassword1"}))

	_, _, err = svc.Login(&dtos.LoginRequest{Email: "reset@test.dev", Password: "newpassword1"})
	assert.NoError(t, err)

	// The code is single use.
	err = svc.ResetPassword(&dtos.ResetPasswordRequest{Email: "reset@test.dev", Code: otp.Code, NewPassword: "anotherpass1"})
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestExpiredOTPRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserServiceForTest(t, db, &recordingMailer{})

	user := createUser(t, db, models.RoleJobSeeker, "expired@test.dev")
	otp := models.OTP{
		UserID:    user.ID,
		Code:      "123456",
		Purpose:   models.OTPPurposePasswordReset,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, db.Create(&otp).Error)

	err := svc.ResetPassword(&dtos.ResetPasswordRequest{Email: user.Email, Code: "123456", NewPassword: "newpassword1"})
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestChangePassword(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserServiceForTest(t, db, &recordingMailer{})

	user, _, err := svc.Register(&dtos.RegisterRequest{Email: "change@test.dev", Password: "originalpass1", Name: "C", Role: "job_seeker"})
	require.NoError(t, err)

	err = svc.ChangePassword(user, &dtos.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "newpassword1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, svc.ChangePassword(user, &dtos.ChangePasswordRequest{CurrentPassword: "originalpass1", NewPassword: "newpassword1"}))
	_, _, err = svc.Login(&dtos.LoginRequest{Email: "change@test.dev", Password: "newpassword1"})
	assert.NoError(t, err)
}

func TestSetActive(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserServiceForTest(t, db, &recordingMailer{})

	user := createUser(t, db, models.RoleJobSeeker, "victim@test.dev")
	updated, err := svc.SetActive(user.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	_, err = svc.SetActive(9999, false)
	assert.ErrorIs(t, err, ErrNotFound)
}
