package recipe

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"nourish-generator/internal/pkg/common"
)

// 提示詞要求模型以此分隔線切分多份食譜
var recipeDelimiter = regexp.MustCompile(`=== RECIPE \d+ ===`)

// 太短的片段多半是分隔線前後的殘句，直接跳過
const minSegmentLen = 100

// ParseRecipes 將模型原始回應切分並組裝為食譜列表。
// 單一片段解析失敗只記錄並跳過，不影響其餘片段；
// 結果數量不超過請求數，模型多給的尾段直接截掉。
func ParseRecipes(raw string, req *common.RecipeRequest) []common.Recipe {
	var recipes []common.Recipe
	for i, segment := range recipeDelimiter.Split(raw, -1) {
		segment = strings.TrimSpace(segment)
		if len(segment) < minSegmentLen {
			continue
		}

		recipe, err := assembleRecipe(segment, req)
		if err != nil {
			common.LogWarn("食譜片段解析失敗，已跳過",
				zap.Int("segment", i),
				zap.Error(err),
			)
			continue
		}
		recipes = append(recipes, *recipe)

		if len(recipes) >= req.RecipeCount {
			break
		}
	}
	return recipes
}
