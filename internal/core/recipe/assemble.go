package recipe

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"nourish-generator/internal/pkg/common"
)

// 缺少標題的片段視為無效食譜，整段捨棄
var errMissingTitle = errors.New("recipe segment has no title")

// 單行欄位只取標籤後到行尾的文字，避免把下一個欄位吃進來
var (
	titleLine    = regexp.MustCompile(`(?i)Recipe Title:[ \t]*([^\n]+)`)
	cuisineLine  = regexp.MustCompile(`(?i)Cuisine:[ \t]*([^\n]+)`)
	timeLine     = regexp.MustCompile(`(?i)Prep Time[^\n]*?Cook Time:[ \t]*([^\n]+)`)
	servingsLine = regexp.MustCompile(`(?i)Number of Servings[^\n]*?Serving Size:[ \t]*([^\n]+)`)
	caloriesLine = regexp.MustCompile(`(?i)Caloric Amount[^\n]*?(\d+)`)
	balanceLine  = regexp.MustCompile(`(?i)Balance Factor[^\n]*?:[ \t]*([^\n]+)`)
	cookingLine  = regexp.MustCompile(`(?i)Cooking Required:[ \t]*([^\n]+)`)
	toolsLine    = regexp.MustCompile(`(?i)Required Tools:[ \t]*([^\n]+)`)
	servingSize  = regexp.MustCompile(`\(([^)]+)\)`)
)

// 各欄位缺漏時的預設值，讓單一欄位的缺失不至於毀掉整份食譜
const (
	defaultCuisine      = "Global"
	defaultTimeRange    = "15 minutes + 20 minutes"
	defaultServingsText = "2 servings (1 plate)"
	defaultServingSize  = "1 plate"
	defaultTools        = "Basic kitchen tools"
	defaultBalanceText  = "40% carbs, 30% protein, 30% fats"
)

// 目標別的預設熱量，模型沒報數字時用
var defaultCalories = map[common.GoalType]int{
	common.GoalCut:  220,
	common.GoalNone: 325,
	common.GoalBulk: 450,
}

// assembleRecipe 將單一食譜片段組裝為正規化紀錄。
// 除了標題以外的欄位都容錯，缺漏時以預設值補齊。
func assembleRecipe(segment string, req *common.RecipeRequest) (*common.Recipe, error) {
	title := matchLine(titleLine, segment, "")
	if title == "" {
		return nil, errMissingTitle
	}

	cuisine := matchLine(cuisineLine, segment, defaultCuisine)

	// "Prep Time + Cook Time: 15 minutes + 20 minutes" 以第一個加號切分
	timeText := matchLine(timeLine, segment, defaultTimeRange)
	prepTime, cookTime := splitTimeRange(timeText)

	// "Number of Servings + Serving Size: 2 servings (1 plate)"
	servings, size := splitServings(matchLine(servingsLine, segment, defaultServingsText))

	calories := defaultCalories[common.GoalBulk]
	if v, ok := defaultCalories[req.GoalType]; ok {
		calories = v
	}
	if m := caloriesLine.FindStringSubmatch(segment); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			calories = v
		}
	}

	balance := NormalizeBalanceFactor(matchLine(balanceLine, segment, defaultBalanceText))

	requiresCooking := true
	if m := cookingLine.FindStringSubmatch(segment); m != nil {
		requiresCooking = strings.Contains(strings.ToLower(m[1]), "yes")
	}

	// 請求清單備援只在整個食材區段缺漏時啟用；
	// 區段存在但逐行都被剔除時，寧可回空清單也不妄加食材
	var ingredients []common.IngredientLine
	if section, ok := extractIngredientSection(segment); ok {
		ingredients = ParseIngredientLines(section)
	} else {
		ingredients = FallbackIngredients(req)
	}
	if ingredients == nil {
		ingredients = []common.IngredientLine{}
	}

	return &common.Recipe{
		Title:           title,
		Cuisine:         cuisine,
		PrepTime:        prepTime,
		CookTime:        cookTime,
		Servings:        servings,
		ServingSize:     size,
		Calories:        calories,
		BalanceFactor:   balance,
		GoalType:        req.GoalType,
		RequiresCooking: requiresCooking,
		Tools:           matchLine(toolsLine, segment, defaultTools),
		Ingredients:     ingredients,
		Steps:           extractSteps(segment),
		Substitutes:     extractSubstitutes(segment),
		History:         extractHistory(segment, title, cuisine),
	}, nil
}

func matchLine(re *regexp.Regexp, text, fallback string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		if v := strings.TrimSpace(m[1]); v != "" {
			return v
		}
	}
	return fallback
}

func splitTimeRange(text string) (prep, cook string) {
	before, after, _ := strings.Cut(text, "+")
	prep = strings.TrimSpace(before)
	cook = strings.TrimSpace(after)
	if prep == "" {
		prep = "15 minutes"
	}
	if cook == "" {
		cook = "20 minutes"
	}
	return prep, cook
}

func splitServings(text string) (servings, size string) {
	servings = strings.TrimSpace(text)
	if idx := strings.Index(servings, "("); idx >= 0 {
		servings = strings.TrimSpace(servings[:idx])
	}
	if servings == "" {
		servings = "2"
	}
	size = defaultServingSize
	if m := servingSize.FindStringSubmatch(text); m != nil {
		if v := strings.TrimSpace(m[1]); v != "" {
			size = v
		}
	}
	return servings, size
}
