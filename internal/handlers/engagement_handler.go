package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BahathJob/Bahath-Jobs-sub000/internal/dtos"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/middleware"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/services"
)

type EngagementHandler struct {
	responder
	Engagements *services.EngagementService
}

func NewEngagementHandler(engagements *services.EngagementService, logger *zap.SugaredLogger) *EngagementHandler {
	return &EngagementHandler{responder: responder{logger: logger}, Engagements: engagements}
}

// Engage is POST /jobs/:id/engage. Toggle types answer 201 when the row was
// added and 200 when this call removed it; comments always answer 201.
func (h *EngagementHandler) Engage(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dtos.EngageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	result, err := h.Engagements.Engage(user, id, req.Type, req.Content)
	if err != nil {
		h.fail(c, err)
		return
	}
	if result.Added {
		message(c, http.StatusCreated, fmt.Sprintf("%s added successfully", result.Type))
		return
	}
	message(c, http.StatusOK, fmt.Sprintf("%s removed", result.Type))
}

func (h *EngagementHandler) Comments(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	comments, err := h.Engagements.Comments(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (h *EngagementHandler) Favorites(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	jobs, err := h.Engagements.Favorites(user.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}
