package common

import "strings"

// GoalType 使用者的熱量目標
type GoalType string

const (
	GoalCut  GoalType = "cut"     // 低熱量
	GoalNone GoalType = "no_goal" // 均衡
	GoalBulk GoalType = "bulk"    // 高熱量
)

// UnitSystem 食材份量的單位系統
type UnitSystem string

const (
	UnitMetric    UnitSystem = "metric"
	UnitCustomary UnitSystem = "customary"
)

// BalanceCategories 營養平衡的五個固定類別，順序即為餘數分配順序
var BalanceCategories = []string{"protein", "carbs", "fiber", "vitamins", "fats"}

// BalanceFactor 五類營養百分比，五個類別必定齊全
type BalanceFactor map[string]int

// RecipeRequest 一次食譜生成請求，送出後不再變動
type RecipeRequest struct {
	Ingredients         string     `json:"ingredients"`
	ServingSize         string     `json:"servingSize"`
	GoalType            GoalType   `json:"goalType"`
	Cuisine             string     `json:"cuisine"`
	DietaryRestrictions string     `json:"dietaryRestrictions,omitempty"`
	UnitSystem          UnitSystem `json:"unitSystem"`
	RecipeCount         int        `json:"recipeCount"`
}

// IngredientLine 解析後的單行食材
// Category 一律為非空切片，解析時即正規化
type IngredientLine struct {
	Name     string   `json:"name"`
	Amount   string   `json:"amount"`
	Category []string `json:"category"`
}

// Recipe 正規化後的食譜紀錄
// JSON 欄位沿用前端既有的線上契約（camelCase），不要改名
type Recipe struct {
	Title           string           `json:"title"`
	Cuisine         string           `json:"cuisine"`
	PrepTime        string           `json:"prepTime"`
	CookTime        string           `json:"cookTime"`
	Servings        string           `json:"servings"`
	ServingSize     string           `json:"servingSize"`
	Calories        int              `json:"calories"`
	BalanceFactor   BalanceFactor    `json:"balanceFactor"`
	GoalType        GoalType         `json:"goalType"`
	RequiresCooking bool             `json:"requiresCooking"`
	Tools           string           `json:"tools"`
	Ingredients     []IngredientLine `json:"ingredients"`
	Steps           []string         `json:"steps"`
	Substitutes     string           `json:"substitutes"`
	History         string           `json:"history"`
}

// IsBalanceCategory 檢查是否為五大營養類別之一
func IsBalanceCategory(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range BalanceCategories {
		if s == c {
			return true
		}
	}
	return false
}

// SplitIngredientList 將自由輸入的食材清單切成逐項名稱（逗號或換行分隔）
func SplitIngredientList(raw string) []string {
	var items []string
	for _, tok := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n'
	}) {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			items = append(items, tok)
		}
	}
	return items
}
