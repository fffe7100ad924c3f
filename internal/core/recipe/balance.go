package recipe

import (
	"regexp"
	"strconv"
	"strings"

	"nourish-generator/internal/pkg/common"
)

// 模型未回報任何比例時使用的固定預設
var defaultBalance = common.BalanceFactor{
	"protein":  30,
	"carbs":    40,
	"fiber":    10,
	"vitamins": 10,
	"fats":     10,
}

// 支援兩種詞序："30% protein" 與 "protein 30%"，百分號前後允許空白
var (
	percentFirstPattern  = regexp.MustCompile(`(?i)(\d+)\s*%\s*(protein|carbs|fiber|vitamins|fats)`)
	categoryFirstPattern = regexp.MustCompile(`(?i)(protein|carbs|fiber|vitamins|fats)\s*(\d+)\s*%`)
)

// NormalizeBalanceFactor 將自由文字的營養比例敘述正規化為五個固定類別。
// 結果僅作為圓餅圖比例使用：五類必定齊全且可視覺化，但總和不保證恰為 100。
func NormalizeBalanceFactor(text string) common.BalanceFactor {
	out := make(common.BalanceFactor, len(common.BalanceCategories))
	for _, cat := range common.BalanceCategories {
		out[cat] = 0
	}

	if strings.TrimSpace(text) == "" {
		return cloneBalance(defaultBalance)
	}

	// 依序掃描兩種詞序，同一類別以最後一次出現為準
	found := false
	for _, m := range percentFirstPattern.FindAllStringSubmatch(text, -1) {
		pct, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		out[strings.ToLower(m[2])] = pct
		found = true
	}
	for _, m := range categoryFirstPattern.FindAllStringSubmatch(text, -1) {
		pct, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		out[strings.ToLower(m[1])] = pct
		found = true
	}

	if !found || allZero(out) {
		return cloneBalance(defaultBalance)
	}

	// 總和不足 100 時，把剩餘百分比平均分給未出現的類別，
	// 整數除法的餘數依固定順序補給前幾個
	total := 0
	for _, v := range out {
		total += v
	}
	var missing []string
	for _, cat := range common.BalanceCategories {
		if out[cat] == 0 {
			missing = append(missing, cat)
		}
	}
	if len(missing) > 0 && total < 100 {
		remaining := 100 - total
		per := remaining / len(missing)
		extra := remaining % len(missing)
		for i, cat := range missing {
			out[cat] = per
			if i < extra {
				out[cat]++
			}
		}
	}

	// 仍有類別掛零（總和已達 100 卻缺類別）時，從非零類別各挪出少量，
	// 每類下限 5，確保圓餅圖五色俱全
	if anyZero(out) {
		var nonZero, zero []string
		for _, cat := range common.BalanceCategories {
			if out[cat] > 0 {
				nonZero = append(nonZero, cat)
			} else {
				zero = append(zero, cat)
			}
		}
		if len(nonZero) > 0 && len(zero) > 0 {
			share := 100 / (len(nonZero) * len(zero))
			if share > 2 {
				share = 2
			}
			for _, cat := range nonZero {
				if v := out[cat] - share; v > 5 {
					out[cat] = v
				} else {
					out[cat] = 5
				}
			}
			for _, cat := range zero {
				out[cat] = share
			}
		}
	}

	return out
}

func cloneBalance(src common.BalanceFactor) common.BalanceFactor {
	out := make(common.BalanceFactor, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func allZero(bf common.BalanceFactor) bool {
	for _, v := range bf {
		if v != 0 {
			return false
		}
	}
	return true
}

func anyZero(bf common.BalanceFactor) bool {
	for _, v := range bf {
		if v == 0 {
			return true
		}
	}
	return false
}
