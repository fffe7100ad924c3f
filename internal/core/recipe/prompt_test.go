package recipe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"nourish-generator/internal/pkg/common"
)

func TestBuildRecipePrompt(t *testing.T) {
	req := testRequest()
	prompt := BuildRecipePrompt(req)

	assert.Contains(t, prompt, "Create exactly 3 unique recipes using ONLY these ingredients: chicken, rice")
	assert.Contains(t, prompt, "above 400 calories")
	assert.Contains(t, prompt, "bulk-friendly")
	assert.Contains(t, prompt, "metric units (g, ml, kg)")
	assert.Contains(t, prompt, "ALL recipes MUST be Thai cuisine")
	assert.NotContains(t, prompt, "DIETARY RESTRICTIONS TO FOLLOW")

	// 分隔線數量要跟要求的食譜數一致，解析端靠它切片
	assert.Equal(t, req.RecipeCount, strings.Count(prompt, "=== RECIPE "))
	assert.Contains(t, prompt, "=== RECIPE 3 ===")
	assert.NotContains(t, prompt, "=== RECIPE 4 ===")
}

func TestBuildRecipePromptGoalVariants(t *testing.T) {
	tests := []struct {
		goal         common.GoalType
		wantCalories string
		wantGoal     string
	}{
		{common.GoalCut, "under 250 calories", "cut-friendly"},
		{common.GoalNone, "250-400 calories (balanced)", "balanced and nutritious"},
		{common.GoalBulk, "above 400 calories", "bulk-friendly"},
	}

	for _, tt := range tests {
		req := testRequest()
		req.GoalType = tt.goal
		prompt := BuildRecipePrompt(req)
		assert.Contains(t, prompt, tt.wantCalories)
		assert.Contains(t, prompt, tt.wantGoal)
	}
}

func TestBuildRecipePromptDietaryRestrictions(t *testing.T) {
	req := testRequest()
	req.DietaryRestrictions = "no peanuts, vegetarian"
	prompt := BuildRecipePrompt(req)

	assert.Contains(t, prompt, "DIETARY RESTRICTIONS TO FOLLOW:\n- no peanuts, vegetarian")
	assert.Contains(t, prompt, "STRICTLY follow all dietary restrictions provided")
	assert.Contains(t, prompt, "All recipes must comply with: no peanuts, vegetarian")
}

func TestBuildRecipePromptCustomaryUnits(t *testing.T) {
	req := testRequest()
	req.UnitSystem = common.UnitCustomary
	prompt := BuildRecipePrompt(req)
	assert.Contains(t, prompt, "customary units (oz, cups, tbsp, tsp)")
	assert.NotContains(t, prompt, "metric units")
}

func TestBuildRecipePromptSingleRecipe(t *testing.T) {
	req := testRequest()
	req.RecipeCount = 1
	prompt := BuildRecipePrompt(req)
	assert.Equal(t, 1, strings.Count(prompt, "=== RECIPE "))
}
