package recipe

import (
	"regexp"
	"strings"

	"nourish-generator/internal/pkg/common"
)

var (
	// "名稱 - 份量 (類別)" 的括號尾綴，類別可為 protein/fats 這種複合寫法
	trailingCategory = regexp.MustCompile(`^(.*?)\s*\(([^)]*)\)\s*$`)
)

const defaultAmount = "1 portion"

// ParseIngredientLines 將食材區段逐行解析為結構化食材。
// 只接受列點行，名稱與份量以最後一個連字號切分，類別取自括號尾綴。
func ParseIngredientLines(section string) []common.IngredientLine {
	var out []common.IngredientLine
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if !bulletPrefix.MatchString(line) {
			continue
		}
		line = bulletPrefix.ReplaceAllString(line, "")

		category := []string{"ingredient"}
		if m := trailingCategory.FindStringSubmatch(line); m != nil {
			line = strings.TrimSpace(m[1])
			if cats := parseCategories(m[2]); len(cats) > 0 {
				category = cats
			}
		}

		name, amount := splitNameAmount(line)
		name = strings.TrimSpace(name)
		if len(name) <= 2 {
			continue
		}
		if amount == "" {
			amount = defaultAmount
		}
		if category[0] == "ingredient" && len(category) == 1 {
			category = []string{inferCategory(name)}
		}

		out = append(out, common.IngredientLine{
			Name:     name,
			Amount:   amount,
			Category: category,
		})
	}
	return out
}

// splitNameAmount 在最後一個連字號處切分名稱與份量，
// 讓 "all-purpose flour - 200g" 這種名稱內含連字號的行也能正確拆開
func splitNameAmount(line string) (string, string) {
	idx := strings.LastIndex(line, "-")
	if idx < 0 {
		return line, ""
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:])
}

// parseCategories 解析括號內的類別標記，只收已知類別，去重後維持出現順序
func parseCategories(raw string) []string {
	var cats []string
	seen := make(map[string]bool)
	for _, tok := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == '/' || r == ','
	}) {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if !common.IsBalanceCategory(tok) && tok != "minerals" {
			continue
		}
		if !seen[tok] {
			seen[tok] = true
			cats = append(cats, tok)
		}
	}
	return cats
}

// 常見食材的類別推斷關鍵字，查無對應時歸為 ingredient
var categoryKeywords = []struct {
	keywords []string
	category string
}{
	{[]string{"chicken", "beef", "fish", "egg"}, "protein"},
	{[]string{"rice", "pasta", "bread"}, "carbs"},
	{[]string{"spinach", "broccoli", "lettuce"}, "fiber"},
	{[]string{"tomato", "carrot", "bell pepper"}, "vitamins"},
	{[]string{"oil", "avocado", "cheese"}, "fats"},
}

func inferCategory(name string) string {
	lower := strings.ToLower(name)
	for _, group := range categoryKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.category
			}
		}
	}
	return "ingredient"
}

// FallbackIngredients 在模型回應缺少食材區段時，退回請求清單並補上預設份量
func FallbackIngredients(req *common.RecipeRequest) []common.IngredientLine {
	var out []common.IngredientLine
	for _, name := range common.SplitIngredientList(req.Ingredients) {
		out = append(out, common.IngredientLine{
			Name:     name,
			Amount:   defaultIngredientAmount(name, req.UnitSystem),
			Category: []string{inferCategory(name)},
		})
	}
	return out
}

// defaultIngredientAmount 依食材性質給出合理的預設份量
func defaultIngredientAmount(name string, units common.UnitSystem) string {
	lower := strings.ToLower(name)
	metric := units == common.UnitMetric

	switch {
	case strings.Contains(lower, "oil") || strings.Contains(lower, "butter"):
		if metric {
			return "15ml"
		}
		return "1 tbsp"
	case strings.Contains(lower, "salt") || strings.Contains(lower, "pepper"):
		if metric {
			return "5g"
		}
		return "1 tsp"
	case strings.Contains(lower, "chicken") || strings.Contains(lower, "beef"):
		if metric {
			return "150g"
		}
		return "5 oz"
	case strings.Contains(lower, "rice") || strings.Contains(lower, "pasta"):
		if metric {
			return "100g"
		}
		return "1/2 cup"
	default:
		if metric {
			return "100g"
		}
		return "1/2 cup"
	}
}
