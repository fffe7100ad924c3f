package recipe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	recipecore "nourish-generator/internal/core/recipe"
	"nourish-generator/internal/pkg/common"
)

// stubGenerator 固定回應的測試生成器
type stubGenerator struct {
	result  *recipecore.Result
	err     error
	lastReq *common.RecipeRequest
}

func (s *stubGenerator) GenerateRecipes(ctx context.Context, req *common.RecipeRequest) (*recipecore.Result, error) {
	s.lastReq = req
	return s.result, s.err
}

func setupRouter(gen Generator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/generate-recipe", NewHandler(gen).Generate)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const validBody = `{
	"ingredients": "chicken, rice",
	"servingSize": "4",
	"goalType": "bulk",
	"cuisine": "Thai",
	"unitSystem": "metric",
	"recipeCount": "3"
}`

func TestGenerateMissingFields(t *testing.T) {
	router := setupRouter(&stubGenerator{})

	w := postJSON(router, "/api/generate-recipe", `{"ingredients": "chicken"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, common.ParseJSONBytes(w.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required fields: servingSize, goalType, cuisine, recipeCount", resp["error"])
}

func TestGenerateInvalidRecipeCount(t *testing.T) {
	router := setupRouter(&stubGenerator{})

	for _, count := range []string{"abc", "0", "-2"} {
		body := strings.Replace(validBody, `"3"`, `"`+count+`"`, 1)
		w := postJSON(router, "/api/generate-recipe", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "recipeCount=%s", count)
	}
}

func TestGenerateSuccess(t *testing.T) {
	gen := &stubGenerator{
		result: &recipecore.Result{
			Recipes: []common.Recipe{
				{Title: "Dish One"},
				{Title: "Dish Two"},
				{Title: "Dish Three"},
			},
			RawResponse: "raw model text",
			Requested:   3,
		},
	}
	router := setupRouter(gen)

	w := postJSON(router, "/api/generate-recipe", validBody)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success        bool            `json:"success"`
		Recipes        []common.Recipe `json:"recipes"`
		RawResponse    string          `json:"rawResponse"`
		RequestedCount int             `json:"requestedCount"`
		GeneratedCount int             `json:"generatedCount"`
		Notice         string          `json:"notice"`
	}
	require.NoError(t, common.ParseJSONBytes(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Len(t, resp.Recipes, 3)
	assert.Equal(t, "raw model text", resp.RawResponse)
	assert.Equal(t, 3, resp.RequestedCount)
	assert.Equal(t, 3, resp.GeneratedCount)
	assert.Empty(t, resp.Notice)

	// 線上格式轉核心請求
	require.NotNil(t, gen.lastReq)
	assert.Equal(t, 3, gen.lastReq.RecipeCount)
	assert.Equal(t, common.GoalBulk, gen.lastReq.GoalType)
	assert.Equal(t, common.UnitMetric, gen.lastReq.UnitSystem)
}

func TestGenerateUnderDeliveryNotice(t *testing.T) {
	gen := &stubGenerator{
		result: &recipecore.Result{
			Recipes:     []common.Recipe{{Title: "Dish One"}},
			RawResponse: "raw",
			Requested:   3,
		},
	}
	router := setupRouter(gen)

	w := postJSON(router, "/api/generate-recipe", validBody)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, common.ParseJSONBytes(w.Body.Bytes(), &resp))
	assert.Equal(t,
		"Due to limitations in available ingredients and dietary restrictions, we were only able to generate 1 recipe(s) instead of the requested 3.",
		resp["notice"])
}

func TestGenerateUnknownUnitSystemDefaultsToMetric(t *testing.T) {
	gen := &stubGenerator{result: &recipecore.Result{Requested: 3}}
	router := setupRouter(gen)

	body := strings.Replace(validBody, `"metric"`, `"imperial"`, 1)
	w := postJSON(router, "/api/generate-recipe", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, common.UnitMetric, gen.lastReq.UnitSystem)
}

func TestGenerateUpstreamError(t *testing.T) {
	router := setupRouter(&stubGenerator{err: errors.New("model blew up")})

	w := postJSON(router, "/api/generate-recipe", validBody)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	require.NoError(t, common.ParseJSONBytes(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Server error", resp["error"])
}

func TestGenerateEmptyModelOutput(t *testing.T) {
	router := setupRouter(&stubGenerator{err: common.ErrEmptyModelOutput})

	w := postJSON(router, "/api/generate-recipe", validBody)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	require.NoError(t, common.ParseJSONBytes(w.Body.Bytes(), &resp))
	assert.Equal(t, "No response from AI model", resp["error"])
}
