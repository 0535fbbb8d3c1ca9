package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BahathJob/Bahath-Jobs-sub000/internal/middleware"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/services"
)

type NotificationHandler struct {
	responder
	Notifications *services.NotificationService
}

func NewNotificationHandler(notifications *services.NotificationService, logger *zap.SugaredLogger) *NotificationHandler {
	return &NotificationHandler{responder: responder{logger: logger}, Notifications: notifications}
}

func (h *NotificationHandler) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	notifications, err := h.Notifications.ListForUser(user.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	notification, err := h.Notifications.MarkRead(user.ID, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification marked as read", "notification": notification})
}
