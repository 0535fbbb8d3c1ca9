package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BahathJob/Bahath-Jobs-sub000/internal/dtos"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/middleware"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/services"
)

type ApplicationHandler struct {
	responder
	Applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService, logger *zap.SugaredLogger) *ApplicationHandler {
	return &ApplicationHandler{responder: responder{logger: logger}, Applications: applications}
}

// Apply is POST /jobs/:id/apply. Returns a confirmation only; the created
// row is fetched via GET /me/applications.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dtos.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Applications.Apply(user, id, &req); err != nil {
		h.fail(c, err)
		return
	}
	message(c, http.StatusCreated, "application submitted successfully")
}

// UpdateStatus is PATCH /applications/:id/status.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dtos.ApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	app, err := h.Applications.UpdateStatus(user, id, req.Status)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "application status updated", "application": app})
}

func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	apps, err := h.Applications.ListBySeeker(user.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// JobApplications lists applications for one of the employer's jobs.
func (h *ApplicationHandler) JobApplications(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	apps, err := h.Applications.ListForJob(user.ID, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}
