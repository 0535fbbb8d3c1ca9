package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BahathJob/Bahath-Jobs-sub000/internal/dtos"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/middleware"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/services"
)

type JobHandler struct {
	responder
	Jobs        *services.JobService
	Engagements *services.EngagementService
}

func NewJobHandler(jobs *services.JobService, engagements *services.EngagementService, logger *zap.SugaredLogger) *JobHandler {
	return &JobHandler{responder: responder{logger: logger}, Jobs: jobs, Engagements: engagements}
}

// List is GET /jobs: filtered, paginated, newest first.
func (h *JobHandler) List(c *gin.Context) {
	filters := dtos.JobFilters{
		Page:      intQuery(c, "page", services.DefaultPage),
		Limit:     intQuery(c, "limit", services.DefaultLimit),
		Search:    c.Query("search"),
		Location:  c.Query("location"),
		Industry:  c.Query("industry"),
		WorkType:  c.Query("workType"),
		Seniority: c.Query("seniority"),
	}
	result, err := h.Jobs.List(filters)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Get is GET /jobs/:id: the job with company details and engagement counts.
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	job, err := h.Jobs.Get(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	stats, err := h.Engagements.Stats(job.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.JobDetailResponse{Job: *job, Stats: *stats})
}

func (h *JobHandler) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	var req dtos.JobCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	job, err := h.Jobs.Create(user, &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "job created, pending approval", "job": job})
}

func (h *JobHandler) Update(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	job, err := h.Jobs.Update(user.ID, id, &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "job updated successfully", "job": job})
}

func (h *JobHandler) Delete(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Jobs.Delete(user, id); err != nil {
		h.fail(c, err)
		return
	}
	message(c, http.StatusOK, "job deleted successfully")
}

// EmployerJobs lists the caller's own postings, approved or not.
func (h *JobHandler) EmployerJobs(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	jobs, err := h.Jobs.ListByEmployer(user.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// AdminList is the moderation queue over all jobs.
func (h *JobHandler) AdminList(c *gin.Context) {
	jobs, err := h.Jobs.ListAll()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) Approve(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dtos.SetApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	job, err := h.Jobs.SetApproval(id, *req.Approved)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "job approval updated", "job": job})
}
