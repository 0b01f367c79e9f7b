package handlers

import (
	"errors"
	"net/http"

	"team-site-backend/internal/service"
	"team-site-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PageHandler exposes page metadata as JSON.
type PageHandler struct {
	pageService *service.PageService
}

func NewPageHandler(pageService *service.PageService) *PageHandler {
	return &PageHandler{pageService: pageService}
}

func (h *PageHandler) GetAll(c *gin.Context) {
	if h == nil || h.pageService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "page service unavailable"})
		return
	}

	pages, err := h.pageService.List()
	if err != nil {
		logger.Error(err, "Failed to list pages", nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

func (h *PageHandler) GetBySlug(c *gin.Context) {
	if h == nil || h.pageService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "page service unavailable"})
		return
	}

	slug := c.Param("slug")
	page, err := h.pageService.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		logger.Error(err, "Failed to load page", map[string]interface{}{"slug": slug})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
		return
	}

	c.JSON(http.StatusOK, page)
}
