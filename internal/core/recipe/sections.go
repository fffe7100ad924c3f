package recipe

import (
	"fmt"
	"regexp"
	"strings"
)

// extractRule 一條具名的區段擷取規則：起始標籤到任一結束標籤之間的內容。
// 規則為純函數，依序嘗試，第一個非空的結果勝出。
type extractRule struct {
	name    string
	pattern *regexp.Regexp // 捕獲群組 1 為區段內容
}

func (r extractRule) apply(text string) (string, bool) {
	m := r.pattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	body := strings.TrimSpace(m[1])
	if body == "" {
		return "", false
	}
	return body, true
}

// 模型被要求的區段標籤及其後繼標籤。提示詞格式一旦調整，這裡要跟著動。
var (
	ingredientRules = []extractRule{
		{"list-of-ingredients", regexp.MustCompile(`(?is)List of Ingredients:(.*?)(?:Actual recipe steps|Recipe steps|Steps:|Instructions:|$)`)},
		{"bare-ingredients", regexp.MustCompile(`(?is)Ingredients:(.*?)(?:Instructions:|Steps:|$)`)},
	}

	stepRules = []extractRule{
		{"actual-recipe-steps", regexp.MustCompile(`(?is)Actual recipe steps:(.*?)(?:Substitutes|Cultural Background|History|=== RECIPE|$)`)},
		{"bare-instructions", regexp.MustCompile(`(?is)Instructions:(.*?)(?:Substitutes|Cultural Background|History|=== RECIPE|$)`)},
	}

	substituteRules = []extractRule{
		{"substitutes", regexp.MustCompile(`(?is)Substitutes:(.*?)(?:Cultural Background|History|=== RECIPE|$)`)},
		{"substitutions", regexp.MustCompile(`(?is)Substitutions:(.*?)(?:Cultural Background|History|=== RECIPE|$)`)},
	}

	historyRules = []extractRule{
		{"cultural-background", regexp.MustCompile(`(?is)Cultural Background:(.*?)(?:=== RECIPE|$)`)},
		{"bare-history", regexp.MustCompile(`(?is)History:(.*?)(?:=== RECIPE|$)`)},
	}
)

func firstRuleMatch(rules []extractRule, text string) (string, bool) {
	for _, r := range rules {
		if body, ok := r.apply(text); ok {
			return body, true
		}
	}
	return "", false
}

// extractIngredientSection 回傳食材區段原文；找不到時由呼叫端改走請求清單備援
func extractIngredientSection(text string) (string, bool) {
	return firstRuleMatch(ingredientRules, text)
}

// 步驟區段完全缺漏時的單一預設指示
const defaultStepInstruction = "Follow the recipe instructions provided by the AI"

var (
	stepNumberPrefix = regexp.MustCompile(`^\d+\.\s*`)
	bulletPrefix     = regexp.MustCompile(`^[-•*]\s*`)
)

// extractSteps 取出逐步驟列表，去除編號與列點符號，過短的行視為雜訊
func extractSteps(text string) []string {
	body, ok := firstRuleMatch(stepRules, text)
	if !ok {
		return []string{defaultStepInstruction}
	}

	var steps []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		line = stepNumberPrefix.ReplaceAllString(line, "")
		line = bulletPrefix.ReplaceAllString(line, "")
		if len(line) > 5 {
			steps = append(steps, line)
		}
	}
	return steps
}

// 替代建議缺漏時的通用預設
const defaultSubstitutes = "Feel free to substitute ingredients based on your preferences and dietary needs."

func extractSubstitutes(text string) string {
	if body, ok := firstRuleMatch(substituteRules, text); ok {
		return body
	}
	return defaultSubstitutes
}

// 文化背景少於 30 字視同缺漏，改用合成句避免殘缺敘述上到畫面
const minHistoryLen = 30

var whitespaceRun = regexp.MustCompile(`\s+`)

// extractHistory 取出文化背景段落；過短或缺漏時以標題與菜系合成一段
func extractHistory(text, title, cuisine string) string {
	history, _ := firstRuleMatch(historyRules, text)
	history = strings.TrimSpace(whitespaceRun.ReplaceAllString(history, " "))

	if len(history) < minHistoryLen {
		if strings.TrimSpace(title) == "" {
			title = "this dish"
		}
		if strings.TrimSpace(cuisine) == "" {
			cuisine = "global"
		}
		history = fmt.Sprintf(
			"This %s represents a modern interpretation of %s culinary traditions. "+
				"The dish showcases how traditional cooking methods can be adapted to contemporary tastes "+
				"while maintaining authentic flavors and cultural significance.",
			strings.ToLower(title), strings.ToLower(cuisine))
	}

	return history
}
