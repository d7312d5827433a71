package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/foodtour/foodtour-backend-go/internal/service"
	"github.com/foodtour/foodtour-backend-go/pkg/response"
)

// BlogHandler handles HTTP requests for editorial content
type BlogHandler struct {
	blogService *service.BlogService
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// List handles GET /api/v1/blog
func (h *BlogHandler) List(c *gin.Context) {
	result, err := h.blogService.List(intQuery(c, "page", 1), intQuery(c, "pageSize", 10))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, result)
}

// Get handles GET /api/v1/blog/:key
func (h *BlogHandler) Get(c *gin.Context) {
	post, err := h.blogService.Get(c.Param("key"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, post)
}
