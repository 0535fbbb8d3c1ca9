package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BahathJob/Bahath-Jobs-sub000/internal/dtos"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/middleware"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/services"
)

type AuthHandler struct {
	responder
	Users *services.UserService
}

func NewAuthHandler(users *services.UserService, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{responder: responder{logger: logger}, Users: users}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, token, err := h.Users.Register(&req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dtos.AuthResponse{
		Message: "account created successfully",
		Token:   token,
		User:    user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, token, err := h.Users.Login(&req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.AuthResponse{
		Message: "logged in successfully",
		Token:   token,
		User:    user,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) UpdateMe(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	var req dtos.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	updated, err := h.Users.UpdateProfile(user, &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated", "user": updated})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	var req dtos.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Users.ChangePassword(user, &req); err != nil {
		h.fail(c, err)
		return
	}
	message(c, http.StatusOK, "password changed successfully")
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dtos.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Users.ForgotPassword(req.Email); err != nil {
		h.fail(c, err)
		return
	}
	// Same answer whether or not the account exists.
	message(c, http.StatusOK, "if the email is registered, a reset code has been sent")
}

// AdminListUsers is the super admin directory view.
func (h *AuthHandler) AdminListUsers(c *gin.Context) {
	users, err := h.Users.ListUsers()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *AuthHandler) SetUserActive(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dtos.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.Users.SetActive(id, *req.Active)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user updated", "user": user})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dtos.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Users.ResetPassword(&req); err != nil {
		h.fail(c, err)
		return
	}
	message(c, http.StatusOK, "password reset successfully")
}
