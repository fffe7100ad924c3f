package recipe

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	recipecore "nourish-generator/internal/core/recipe"
	"nourish-generator/internal/pkg/common"
)

// Generator 食譜生成介面，方便測試替身
type Generator interface {
	GenerateRecipes(ctx context.Context, req *common.RecipeRequest) (*recipecore.Result, error)
}

// GenerateRequest 生成請求的線上格式。
// recipeCount 前端送的是字串，沿用既有契約不改型別。
type GenerateRequest struct {
	Ingredients         string `json:"ingredients"`
	ServingSize         string `json:"servingSize"`
	GoalType            string `json:"goalType"`
	Cuisine             string `json:"cuisine"`
	DietaryRestrictions string `json:"dietaryRestrictions"`
	UnitSystem          string `json:"unitSystem"`
	RecipeCount         string `json:"recipeCount"`
}

// Handler 食譜生成處理程序
type Handler struct {
	generator Generator
}

// NewHandler 創建新的食譜處理程序
func NewHandler(generator Generator) *Handler {
	return &Handler{generator: generator}
}

// Generate 處理 POST /api/generate-recipe
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	// 缺漏欄位一次報齊，前端好提示
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"ingredients", req.Ingredients},
		{"servingSize", req.ServingSize},
		{"goalType", req.GoalType},
		{"cuisine", req.Cuisine},
		{"recipeCount", req.RecipeCount},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required fields: " + strings.Join(missing, ", "),
		})
		return
	}

	count, err := strconv.Atoi(strings.TrimSpace(req.RecipeCount))
	if err != nil || count < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "recipeCount must be a positive number",
		})
		return
	}

	units := common.UnitSystem(req.UnitSystem)
	if units != common.UnitCustomary {
		units = common.UnitMetric
	}

	coreReq := &common.RecipeRequest{
		Ingredients:         req.Ingredients,
		ServingSize:         req.ServingSize,
		GoalType:            common.GoalType(req.GoalType),
		Cuisine:             req.Cuisine,
		DietaryRestrictions: req.DietaryRestrictions,
		UnitSystem:          units,
		RecipeCount:         count,
	}

	result, err := h.generator.GenerateRecipes(c.Request.Context(), coreReq)
	if err != nil {
		common.LogError("食譜生成失敗",
			zap.Error(err),
			zap.String("request_id", c.GetHeader("X-Request-ID")),
		)
		message := "Server error"
		if err == common.ErrEmptyModelOutput {
			message = "No response from AI model"
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   message,
		})
		return
	}

	response := gin.H{
		"success":        true,
		"recipes":        result.Recipes,
		"rawResponse":    result.RawResponse,
		"requestedCount": result.Requested,
		"generatedCount": len(result.Recipes),
	}

	// 模型少給時明講，不要讓前端自己數
	if len(result.Recipes) < result.Requested {
		response["notice"] = fmt.Sprintf(
			"Due to limitations in available ingredients and dietary restrictions, we were only able to generate %d recipe(s) instead of the requested %d.",
			len(result.Recipes), result.Requested)
	}

	c.JSON(http.StatusOK, response)
}
