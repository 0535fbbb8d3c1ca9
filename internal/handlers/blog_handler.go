package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BahathJob/Bahath-Jobs-sub000/internal/dtos"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/middleware"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/services"
)

type BlogHandler struct {
	responder
	Blog *services.BlogService
}

func NewBlogHandler(blog *services.BlogService, logger *zap.SugaredLogger) *BlogHandler {
	return &BlogHandler{responder: responder{logger: logger}, Blog: blog}
}

func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.Blog.ListPublished()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *BlogHandler) Get(c *gin.Context) {
	post, err := h.Blog.GetBySlug(c.Param("slug"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

func (h *BlogHandler) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	var req dtos.BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	post, err := h.Blog.Create(user.ID, &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "post created", "post": post})
}

func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dtos.BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	post, err := h.Blog.Update(id, &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post updated", "post": post})
}

func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Blog.Delete(id); err != nil {
		h.fail(c, err)
		return
	}
	message(c, http.StatusOK, "post deleted")
}
