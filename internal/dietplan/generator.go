package dietplan

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// Weekdays lists the days of a weekly plan in order.
var Weekdays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Generate builds a weekly diet plan for a profile.
//
// It is a pure function of the profile: identical input yields an equal plan,
// and no two returned plans share memory. Every day of the week uses the same
// meal assignment.
func Generate(profile UserProfile) (*DietPlan, error) {
	if err := Validate(profile); err != nil {
		return nil, err
	}
	profile = profile.normalized()

	calories := CalorieTarget(profile)
	macros := Macros(profile)
	proteinGrams, carbGrams, fatGrams := MacroGrams(calories, macros)

	meals := mealsFor(profile)
	dailyPlans := make([]DailyPlan, 0, len(Weekdays))
	for _, day := range Weekdays {
		dailyPlans = append(dailyPlans, DailyPlan{
			Day:           day,
			TotalCalories: calories,
			ProteinGrams:  proteinGrams,
			CarbGrams:     carbGrams,
			FatGrams:      fatGrams,
			Meals:         meals.day(),
		})
	}

	safety, support, childTips := advisory(profile)

	return &DietPlan{
		UserProfile: ProfileSummary{
			Age:                profile.Age,
			ProfileType:        profile.ProfileType,
			PregnancyTrimester: profile.PregnancyTrimester,
			ChildAge:           profile.ChildAge,
			Weight:             profile.Weight,
			Height:             profile.Height,
		},
		CalorieTarget:        calories,
		MacroBreakdown:       macros,
		KeyNutrients:         KeyNutrients(profile),
		DailyPlans:           dailyPlans,
		Recommendations:      Recommendations(profile),
		FoodSafetyGuidelines: safety,
		BreastfeedingSupport: support,
		ChildFeedingTips:     childTips,
		ShoppingList:         BuildShoppingList(profile),
	}, nil
}

// PlanID derives a stable identifier from the fields that determine a plan.
// Profiles that differ only in pass-through fields, or in a trimester or
// child age their profile type does not use, share an id.
func PlanID(p UserProfile) string {
	p = p.normalized()
	key := strings.Join([]string{
		strconv.FormatFloat(p.Age, 'g', -1, 64),
		strconv.FormatFloat(p.Height, 'g', -1, 64),
		strconv.FormatFloat(p.Weight, 'g', -1, 64),
		string(p.ProfileType),
		string(p.PregnancyTrimester),
		string(p.ChildAge),
	}, "|")
	hash := sha256.Sum256([]byte(key))
	return hex.EncodeToString(hash[:])
}
