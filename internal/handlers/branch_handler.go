package handlers

import (
	"net/http"

	"team-site-backend/internal/service"
	"team-site-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// BranchHandler exposes the branch list as JSON for embedding consumers.
type BranchHandler struct {
	branchService *service.BranchService
}

func NewBranchHandler(branchService *service.BranchService) *BranchHandler {
	return &BranchHandler{branchService: branchService}
}

func (h *BranchHandler) GetAll(c *gin.Context) {
	if h == nil || h.branchService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "branch service unavailable"})
		return
	}

	branches, err := h.branchService.List()
	if err != nil {
		logger.Error(err, "Failed to list branches", nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load branches"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"branches": branches})
}
