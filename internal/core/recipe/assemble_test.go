package recipe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nourish-generator/internal/pkg/common"
)

const fullSegment = `Recipe Title: Spicy Chicken Rice
Cuisine: Thai
Prep Time + Cook Time: 10 minutes + 25 minutes
Number of Servings (per average adult) + Serving Size: 4 servings (1 bowl)
Caloric Amount per general serving for adults: 420
Balance Factor: 35% protein, 40% carbs, 10% fiber, 5% vitamins, 10% fats
Cooking Required: Yes
Required Tools: wok, knife, cutting board

List of Ingredients:
- Chicken breast - 200g (protein)
- Jasmine rice - 150g (carbs)

Actual recipe steps:
1. Cook the jasmine rice until fluffy.
2. Stir fry the chicken with spices.

Substitutes: Use tofu instead of chicken.

Cultural Background: This dish draws on Thai street food traditions and is eaten across Bangkok daily.`

func testRequest() *common.RecipeRequest {
	return &common.RecipeRequest{
		Ingredients: "chicken, rice",
		ServingSize: "4",
		GoalType:    common.GoalBulk,
		Cuisine:     "Thai",
		UnitSystem:  common.UnitMetric,
		RecipeCount: 3,
	}
}

func TestAssembleRecipeFullSegment(t *testing.T) {
	recipe, err := assembleRecipe(fullSegment, testRequest())
	require.NoError(t, err)

	assert.Equal(t, "Spicy Chicken Rice", recipe.Title)
	assert.Equal(t, "Thai", recipe.Cuisine)
	assert.Equal(t, "10 minutes", recipe.PrepTime)
	assert.Equal(t, "25 minutes", recipe.CookTime)
	assert.Equal(t, "4 servings", recipe.Servings)
	assert.Equal(t, "1 bowl", recipe.ServingSize)
	assert.Equal(t, 420, recipe.Calories)
	assert.Equal(t, common.BalanceFactor{
		"protein": 35, "carbs": 40, "fiber": 10, "vitamins": 5, "fats": 10,
	}, recipe.BalanceFactor)
	assert.Equal(t, common.GoalBulk, recipe.GoalType)
	assert.True(t, recipe.RequiresCooking)
	assert.Equal(t, "wok, knife, cutting board", recipe.Tools)
	assert.Equal(t, []common.IngredientLine{
		{Name: "Chicken breast", Amount: "200g", Category: []string{"protein"}},
		{Name: "Jasmine rice", Amount: "150g", Category: []string{"carbs"}},
	}, recipe.Ingredients)
	assert.Equal(t, []string{
		"Cook the jasmine rice until fluffy.",
		"Stir fry the chicken with spices.",
	}, recipe.Steps)
	assert.Equal(t, "Use tofu instead of chicken.", recipe.Substitutes)
	assert.Equal(t, "This dish draws on Thai street food traditions and is eaten across Bangkok daily.", recipe.History)
}

func TestAssembleRecipeDefaults(t *testing.T) {
	req := testRequest()
	req.GoalType = common.GoalCut
	segment := "Recipe Title: Mystery Bowl\nSome free text without any of the expected sections."

	recipe, err := assembleRecipe(segment, req)
	require.NoError(t, err)

	assert.Equal(t, "Mystery Bowl", recipe.Title)
	assert.Equal(t, defaultCuisine, recipe.Cuisine)
	assert.Equal(t, "15 minutes", recipe.PrepTime)
	assert.Equal(t, "20 minutes", recipe.CookTime)
	assert.Equal(t, "2 servings", recipe.Servings)
	assert.Equal(t, defaultServingSize, recipe.ServingSize)
	assert.Equal(t, 220, recipe.Calories)
	assert.True(t, recipe.RequiresCooking)
	assert.Equal(t, defaultTools, recipe.Tools)
	// 食材缺漏時退回請求清單
	assert.Equal(t, []common.IngredientLine{
		{Name: "chicken", Amount: "150g", Category: []string{"protein"}},
		{Name: "rice", Amount: "100g", Category: []string{"carbs"}},
	}, recipe.Ingredients)
	assert.Equal(t, []string{defaultStepInstruction}, recipe.Steps)
	assert.Equal(t, defaultSubstitutes, recipe.Substitutes)
	assert.Contains(t, recipe.History, "mystery bowl")
}

func TestAssembleRecipeGoalCalorieDefaults(t *testing.T) {
	tests := []struct {
		goal common.GoalType
		want int
	}{
		{common.GoalCut, 220},
		{common.GoalNone, 325},
		{common.GoalBulk, 450},
	}

	for _, tt := range tests {
		req := testRequest()
		req.GoalType = tt.goal
		recipe, err := assembleRecipe("Recipe Title: Plain Dish\nno calorie info", req)
		require.NoError(t, err)
		assert.Equal(t, tt.want, recipe.Calories)
	}
}

func TestAssembleRecipeRejectedIngredientLinesStayEmpty(t *testing.T) {
	// 區段存在但逐行無效時不得退回請求清單
	segment := "Recipe Title: Odd Dish\n" +
		"List of Ingredients:\nloose note without a bullet\n- AB - 5g\n\n" +
		"Actual recipe steps:\n1. Assemble everything carefully"

	recipe, err := assembleRecipe(segment, testRequest())
	require.NoError(t, err)
	assert.Empty(t, recipe.Ingredients)
	assert.NotNil(t, recipe.Ingredients)
}

func TestAssembleRecipeTimeWithoutPlus(t *testing.T) {
	recipe, err := assembleRecipe("Recipe Title: Quick Bites\nPrep Time + Cook Time: 30 minutes", testRequest())
	require.NoError(t, err)
	assert.Equal(t, "30 minutes", recipe.PrepTime)
	assert.Equal(t, "20 minutes", recipe.CookTime)
}

func TestAssembleRecipeNoCookingRequired(t *testing.T) {
	recipe, err := assembleRecipe("Recipe Title: Fresh Salad\nCooking Required: No heat needed", testRequest())
	require.NoError(t, err)
	assert.False(t, recipe.RequiresCooking)
}

func TestAssembleRecipeMissingTitle(t *testing.T) {
	_, err := assembleRecipe(strings.Repeat("filler text without a title line ", 5), testRequest())
	assert.ErrorIs(t, err, errMissingTitle)
}
