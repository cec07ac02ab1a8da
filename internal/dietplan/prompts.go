package dietplan

import (
	"fmt"
	"strings"
)

// AdvisorInstruction is the system instruction given to language models that
// talk about a plan.
const AdvisorInstruction = "You are a warm, evidence-based maternal and child nutrition assistant. " +
	"Only use the plan details you are given. Never change calorie targets or macro splits, " +
	"never diagnose, and suggest talking to a healthcare provider for medical questions."

// Digest renders the parts of a plan a language model needs as plain text.
func Digest(plan *DietPlan) string {
	var b strings.Builder

	p := plan.UserProfile
	fmt.Fprintf(&b, "Profile: %s", p.ProfileType)
	if p.PregnancyTrimester != "" {
		fmt.Fprintf(&b, ", %s trimester", p.PregnancyTrimester)
	}
	if p.ChildAge != "" {
		fmt.Fprintf(&b, ", child aged %s", p.ChildAge)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Daily calorie target: %.0f kcal\n", plan.CalorieTarget)
	fmt.Fprintf(&b, "Macros: %d%% protein, %d%% carbs, %d%% fats\n",
		plan.MacroBreakdown.Protein, plan.MacroBreakdown.Carbs, plan.MacroBreakdown.Fats)

	names := make([]string, len(plan.KeyNutrients))
	for i, n := range plan.KeyNutrients {
		names[i] = fmt.Sprintf("%s (%s)", n.Name, n.DailyTarget)
	}
	fmt.Fprintf(&b, "Key nutrients: %s\n", strings.Join(names, ", "))

	if len(plan.DailyPlans) > 0 {
		b.WriteString("Daily meals:\n")
		for _, slot := range plan.DailyPlans[0].Meals.Slots() {
			fmt.Fprintf(&b, "- %s: %s\n", slot.Name, slot.Meal.Name)
		}
	}

	fmt.Fprintf(&b, "Recommendations: %s\n", strings.Join(plan.Recommendations, " "))
	return b.String()
}

// SummaryPrompt asks for a short overview of a plan.
func SummaryPrompt(plan *DietPlan) string {
	return "Write a friendly summary of this weekly nutrition plan in at most 120 words. " +
		"Explain why the key nutrients matter at this stage and mention one or two meals by name. " +
		"Respond with plain text only, no markdown.\n\n" + Digest(plan)
}

// QuestionPrompt asks a question about a plan.
func QuestionPrompt(plan *DietPlan, question string) string {
	return "Answer the question below using this nutrition plan as context. " +
		"Keep the answer under 150 words and respond with plain text only.\n\n" +
		Digest(plan) + "\nQuestion: " + strings.TrimSpace(question)
}
