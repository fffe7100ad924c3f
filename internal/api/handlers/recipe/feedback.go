package recipe

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nourish-generator/internal/core/feedback"
)

// FeedbackRequest 回饋請求的線上格式
type FeedbackRequest struct {
	RecipeTitle string `json:"recipeTitle"`
	Type        string `json:"type"`
}

// FeedbackHandler 食譜回饋處理程序
type FeedbackHandler struct {
	service *feedback.Service
}

// NewFeedbackHandler 創建回饋處理程序
func NewFeedbackHandler(service *feedback.Service) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// Submit 處理 POST /api/recipe-feedback
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	if err := h.service.Record(req.Type, req.RecipeTitle); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
