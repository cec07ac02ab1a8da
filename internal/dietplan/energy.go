package dietplan

import "math"

// Energy density in kcal per gram.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

const defaultChildCalories = 1200

// BMR computes the basal metabolic rate with the Mifflin-St Jeor equation.
// The female offset is always used.
func BMR(weightKg, heightCm, ageYears float64) float64 {
	return 10*weightKg + 6.25*heightCm - 5*ageYears - 161
}

var trimesterSurplus = map[Trimester]float64{
	FirstTrimester:  0,
	SecondTrimester: 340,
	ThirdTrimester:  450,
}

var childCalories = map[ChildAge]float64{
	Infant0To6Months:  550,
	Infant6To12Months: 750,
	Toddler1To3Years:  1000,
	Child4To8Years:    1400,
}

// CalorieTarget returns the daily energy target in kcal. Children use a fixed
// lookup by age band and ignore the BMR. The raw sum is returned unrounded.
func CalorieTarget(p UserProfile) float64 {
	switch p.ProfileType {
	case Pregnant:
		return BMR(p.Weight, p.Height, p.Age) + trimesterSurplus[p.PregnancyTrimester]
	case Breastfeeding:
		return BMR(p.Weight, p.Height, p.Age) + 500
	case Child:
		if kcal, ok := childCalories[p.ChildAge]; ok {
			return kcal
		}
		return defaultChildCalories
	default:
		return BMR(p.Weight, p.Height, p.Age)
	}
}

// Macros returns the macro percentage split for a profile.
func Macros(p UserProfile) MacroBreakdown {
	switch p.ProfileType {
	case Pregnant:
		return MacroBreakdown{Protein: 25, Carbs: 50, Fats: 25}
	case Breastfeeding:
		return MacroBreakdown{Protein: 20, Carbs: 50, Fats: 30}
	case Child:
		switch p.ChildAge {
		case Infant0To6Months, Infant6To12Months:
			return MacroBreakdown{Protein: 15, Carbs: 40, Fats: 45}
		case Toddler1To3Years:
			return MacroBreakdown{Protein: 15, Carbs: 45, Fats: 40}
		default:
			return MacroBreakdown{Protein: 15, Carbs: 50, Fats: 35}
		}
	default:
		return MacroBreakdown{Protein: 20, Carbs: 50, Fats: 30}
	}
}

// MacroGrams converts a calorie target and percentage split to grams, each
// rounded independently to the nearest gram.
func MacroGrams(calories float64, m MacroBreakdown) (protein, carbs, fats int) {
	protein = roundGrams(calories, m.Protein, kcalPerGramProtein)
	carbs = roundGrams(calories, m.Carbs, kcalPerGramCarbs)
	fats = roundGrams(calories, m.Fats, kcalPerGramFat)
	return protein, carbs, fats
}

func roundGrams(calories float64, percent int, kcalPerGram float64) int {
	return int(math.Round(calories * (float64(percent) / 100) / kcalPerGram))
}
