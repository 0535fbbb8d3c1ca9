package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BahathJob/Bahath-Jobs-sub000/internal/dtos"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/middleware"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/services"
)

type CompanyHandler struct {
	responder
	Companies *services.CompanyService
}

func NewCompanyHandler(companies *services.CompanyService, logger *zap.SugaredLogger) *CompanyHandler {
	return &CompanyHandler{responder: responder{logger: logger}, Companies: companies}
}

func (h *CompanyHandler) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	var req dtos.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	company, err := h.Companies.Create(user.ID, &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "company profile created, pending approval", "company": company})
}

func (h *CompanyHandler) Get(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	company, err := h.Companies.GetByEmployer(user.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

func (h *CompanyHandler) Update(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	var req dtos.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	company, err := h.Companies.Update(user.ID, &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "company profile updated", "company": company})
}

func (h *CompanyHandler) AdminList(c *gin.Context) {
	companies, err := h.Companies.ListAll()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

func (h *CompanyHandler) Approve(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dtos.SetApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	company, err := h.Companies.SetApproval(id, *req.Approved)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "company approval updated", "company": company})
}
