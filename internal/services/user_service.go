package services

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BahathJob/Bahath-Jobs-sub000/internal/auth"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/dtos"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/models"
)

type UserService struct {
	DB         *gorm.DB
	Issuer     *auth.TokenIssuer
	Mailer     Mailer
	Logger     *zap.SugaredLogger
	BcryptCost int
	OTPExpiry  time.Duration
}

func NewUserService(db *gorm.DB, issuer *auth.TokenIssuer, mailer Mailer, logger *zap.SugaredLogger, bcryptCost int, otpExpiry time.Duration) *UserService {
	return &UserService{
		DB:         db,
		Issuer:     issuer,
		Mailer:     mailer,
		Logger:     logger,
		BcryptCost: bcryptCost,
		OTPExpiry:  otpExpiry,
	}
}

// Register creates an account and signs the caller straight in.
func (s *UserService) Register(req *dtos.RegisterRequest) (*models.User, string, error) {
	hash, err := auth.HashPassword(req.Password, s.BcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         models.Role(req.Role),
		IsActive:     true,
	}
	err = s.DB.Create(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, "", ErrEmailTaken
	}
	if err != nil {
		return nil, "", err
	}

	token, err := s.Issuer.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login verifies credentials and issues a token. Password-less accounts
// (social logins) cannot authenticate here.
func (s *UserService) Login(req *dtos.LoginRequest) (*models.User, string, error) {
	var user models.User
	err := s.DB.Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}
	if !user.IsActive {
		return nil, "", ErrAccountDisabled
	}
	if user.PasswordHash == "" || !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.Issuer.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *UserService) UpdateProfile(user *models.User, req *dtos.UpdateProfileRequest) (*models.User, error) {
	user.Name = req.Name
	user.Phone = req.Phone
	if err := s.DB.Model(user).Updates(map[string]interface{}{
		"name":  req.Name,
		"phone": req.Phone,
	}).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ChangePassword(user *models.User, req *dtos.ChangePasswordRequest) error {
	if user.PasswordHash == "" || !auth.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		return ErrInvalidCredentials
	}
	hash, err := auth.HashPassword(req.NewPassword, s.BcryptCost)
	if err != nil {
		return err
	}
	return s.DB.Model(user).Update("password_hash", hash).Error
}

// ForgotPassword issues a single-use reset code. Unknown emails succeed
// silently so the endpoint cannot be used to probe for accounts.
func (s *UserService) ForgotPassword(email string) error {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	code, err := auth.GenerateOTPCode()
	if err != nil {
		return err
	}
	otp := models.OTP{
		UserID:    user.ID,
		Code:      code,
		Purpose:   models.OTPPurposePasswordReset,
		ExpiresAt: time.Now().Add(s.OTPExpiry),
	}
	if err := s.DB.Create(&otp).Error; err != nil {
		return err
	}

	body := fmt.Sprintf("<p>Your password reset code is <strong>%s</strong>. It expires in %s.</p>",
		code, s.OTPExpiry)
	if err := s.Mailer.Send(user.Email, "Password Reset Code", body); err != nil {
		s.Logger.Warnw("failed to send otp email", "user_id", user.ID, "error", err)
	}
	return nil
}

// ResetPassword consumes a valid code and replaces the password hash.
func (s *UserService) ResetPassword(req *dtos.ResetPasswordRequest) error {
	var user models.User
	err := s.DB.Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrInvalidOTP
	}
	if err != nil {
		return err
	}

	var otp models.OTP
	err = s.DB.Where("user_id = ? AND code = ? AND purpose = ? AND used = ? AND expires_at > ?",
		user.ID, req.Code, models.OTPPurposePasswordReset, false, time.Now()).
		Order("created_at DESC").
		First(&otp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrInvalidOTP
	}
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.NewPassword, s.BcryptCost)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&otp).Update("used", true).Error; err != nil {
			return err
		}
		return tx.Model(&user).Update("password_hash", hash).Error
	})
}

// ListUsers is the admin directory view.
func (s *UserService) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.DB.Order("created_at DESC").Find(&users).Error
	return users, err
}

// SetActive enables or disables an account.
func (s *UserService) SetActive(userID uint, active bool) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(&user).Update("is_active", active).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
