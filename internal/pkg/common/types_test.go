package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitIngredientList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"comma separated", "chicken, rice, olive oil", []string{"chicken", "rice", "olive oil"}},
		{"newline separated", "chicken\nrice", []string{"chicken", "rice"}},
		{"mixed with empty tokens", "chicken,,\n rice ,", []string{"chicken", "rice"}},
		{"empty input", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitIngredientList(tt.raw))
		})
	}
}

func TestIsBalanceCategory(t *testing.T) {
	for _, cat := range BalanceCategories {
		assert.True(t, IsBalanceCategory(cat))
	}
	assert.True(t, IsBalanceCategory(" Protein "))
	assert.False(t, IsBalanceCategory("sugar"))
	assert.False(t, IsBalanceCategory(""))
}

func TestRecipeJSONContract(t *testing.T) {
	recipe := Recipe{
		Title:         "Dish",
		BalanceFactor: BalanceFactor{"protein": 30, "carbs": 40, "fiber": 10, "vitamins": 10, "fats": 10},
		Ingredients: []IngredientLine{
			{Name: "chicken", Amount: "150g", Category: []string{"protein"}},
		},
	}

	out, err := ToJSON(recipe)
	assert.NoError(t, err)

	// 線上契約用 camelCase，欄位名不能走樣
	assert.Contains(t, out, `"servingSize"`)
	assert.Contains(t, out, `"balanceFactor"`)
	assert.Contains(t, out, `"requiresCooking"`)
	assert.NotContains(t, out, `"serving_size"`)
}
