package recipe

import (
	"fmt"
	"strings"

	"nourish-generator/internal/pkg/common"
)

// 目標別在提示詞中的描述文字
func goalDescription(goal common.GoalType) string {
	switch goal {
	case common.GoalCut:
		return "cut-friendly"
	case common.GoalNone:
		return "balanced and nutritious"
	default:
		return "bulk-friendly"
	}
}

func calorieRange(goal common.GoalType) string {
	switch goal {
	case common.GoalCut:
		return "under 250 calories"
	case common.GoalNone:
		return "250-400 calories (balanced)"
	default:
		return "above 400 calories"
	}
}

func unitText(units common.UnitSystem) string {
	if units == common.UnitMetric {
		return "metric units (g, ml, kg)"
	}
	return "customary units (oz, cups, tbsp, tsp)"
}

// BuildRecipePrompt 組出完整的生成提示詞。
// 模型對格式非常敏感，範本中的標籤與分隔線都與解析器一一對應，改動時兩邊要同步。
func BuildRecipePrompt(req *common.RecipeRequest) string {
	units := unitText(req.UnitSystem)
	goal := goalDescription(req.GoalType)
	restrictions := strings.TrimSpace(req.DietaryRestrictions)

	var dietaryInstructions string
	if restrictions != "" {
		dietaryInstructions = fmt.Sprintf(`

DIETARY RESTRICTIONS TO FOLLOW:
- %s
- ALL recipes must strictly comply with these restrictions
- Do NOT use any ingredients that violate these restrictions
- Ensure all cooking methods and ingredients are compliant`, restrictions)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a professional chef and nutritionist for Nourish 'N' Flourish. Create exactly %d unique recipes using ONLY these ingredients: %s%s\n\n",
		req.RecipeCount, req.Ingredients, dietaryInstructions)

	fmt.Fprintf(&b, `CRITICAL REQUIREMENTS:
- Use ONLY the ingredients listed above
- Do NOT add any ingredients not in the list
- Create EXACTLY %d recipes; no more, no less.
- Each recipe must be %s
- Each recipe must be %s
- Provide detailed, step-by-step cooking instructions
- Include specific ingredient quantities and cooking methods
`, req.RecipeCount, calorieRange(req.GoalType), goal)
	if restrictions != "" {
		b.WriteString("- STRICTLY follow all dietary restrictions provided\n")
	}
	fmt.Fprintf(&b, "- CUISINE REQUIREMENT: ALL recipes MUST be %[1]s cuisine. Use authentic %[1]s cooking methods, spices, and techniques. Do NOT create generic recipes - make them truly %[1]s authentic.\n\n",
		req.Cuisine)

	b.WriteString("FORMAT EACH RECIPE EXACTLY LIKE THIS:\n\n")
	b.WriteString("=== RECIPE 1 ===\n")
	fmt.Fprintf(&b, `Recipe Title: [Creative, descriptive name]
Cuisine: [Specific cuisine type]
Prep Time + Cook Time: [e.g., 15 minutes + 25 minutes]
Number of Servings (per average adult) + Serving Size: [e.g., 2 servings (1 plate)]
Caloric Amount per general serving for adults: [specific number]
Balance Factor: [MUST include ALL categories: protein, carbs, fiber, vitamins, fats - e.g., 30%% protein, 35%% carbs, 15%% fiber, 10%% vitamins, 10%% fats]
Goal Type: [%s]
Cooking Required: [Yes/No - specify if this recipe requires cooking or can be made without heat]
Required Tools: [List specific tools needed: pan, blender, peeler, knife, cutting board, etc.]

List of Ingredients:
- [ingredient name] - [amount/quantity in %[2]s] (protein/carbs/fiber/vitamins/fats)
- [ingredient name] - [amount/quantity in %[2]s] (protein/carbs/fiber/vitamins/fats)
- [continue with all ingredients used]

Actual recipe steps:
1. [Detailed step using specific ingredients and quantities]
2. [Detailed step using specific ingredients and quantities]
3. [Continue with all steps]

Substitutes: [Specific substitution suggestions]

Cultural Background: [Write 2-3 COMPLETE sentences about THIS SPECIFIC DISH's history, cultural significance, and ethnic symbolism. Make it unique to this recipe. Do NOT cut off mid-sentence. Provide the FULL cultural background without truncation.]

CRITICAL REQUIREMENTS:
- You MUST include the "List of Ingredients:" section with ONLY the ingredients actually used in this specific recipe
- Each ingredient MUST show its exact amount/quantity in %[2]s and ALL applicable dietary classes (protein, carbs, fiber, vitamins, fats)
- Each Cultural Background MUST be unique to that specific dish, not generic
- Cultural Background MUST be complete and not truncated - write full sentences until the end
- Do NOT skip any sections
- EVERY recipe MUST include ALL dietary categories (protein, carbs, fiber, vitamins, fats) in the Balance Factor
- Ensure each recipe has a balanced nutritional profile with all categories represented
- IMPORTANT: Only list ingredients that are actually used in the cooking steps of this recipe
`, goal, units)

	for i := 2; i <= req.RecipeCount; i++ {
		fmt.Fprintf(&b, "\n=== RECIPE %d ===\n[Repeat exact same format]\n", i)
	}

	fmt.Fprintf(&b, "\nRemember: Use ONLY these ingredients: %s. Each recipe must be unique and include detailed cooking instructions.",
		req.Ingredients)
	if restrictions != "" {
		fmt.Fprintf(&b, " All recipes must comply with: %s", restrictions)
	}
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "CUISINE ENFORCEMENT: Every single recipe MUST be authentic %[1]s cuisine. Use traditional %[1]s cooking techniques, authentic %[1]s spices and seasonings, and follow %[1]s culinary traditions. Do NOT create generic recipes - make them genuinely %[1]s authentic.",
		req.Cuisine)

	return b.String()
}
