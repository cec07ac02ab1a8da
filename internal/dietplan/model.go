package dietplan

// ProfileType is the category of user a plan is generated for.
type ProfileType string

const (
	Pregnant      ProfileType = "pregnant"
	Breastfeeding ProfileType = "breastfeeding"
	Child         ProfileType = "child"
	Planning      ProfileType = "planning"
)

// Trimester is the pregnancy stage of a pregnant profile.
type Trimester string

const (
	FirstTrimester  Trimester = "first"
	SecondTrimester Trimester = "second"
	ThirdTrimester  Trimester = "third"
)

// ChildAge is the age band of a child profile.
type ChildAge string

const (
	Infant0To6Months  ChildAge = "0-6m"
	Infant6To12Months ChildAge = "6-12m"
	Toddler1To3Years  ChildAge = "1-3y"
	Child4To8Years    ChildAge = "4-8y"
)

// UserProfile is the input collected by the profile form.
//
// Only Age, Height, Weight, ProfileType, PregnancyTrimester and ChildAge take
// part in plan generation. The remaining fields are carried for display and
// are never read by Generate.
type UserProfile struct {
	Age                float64     `json:"age" validate:"gt=0"`
	Height             float64     `json:"height" validate:"gt=0"`
	Weight             float64     `json:"weight" validate:"gt=0"`
	ProfileType        ProfileType `json:"profileType" validate:"required,oneof=pregnant breastfeeding child planning"`
	PregnancyTrimester Trimester   `json:"pregnancyTrimester,omitempty" validate:"omitempty,oneof=first second third"`
	ChildAge           ChildAge    `json:"childAge,omitempty" validate:"omitempty,oneof=0-6m 6-12m 1-3y 4-8y"`

	PrePregnancyBMI     *float64 `json:"prePregnancyBMI,omitempty"`
	HealthConditions    string   `json:"healthConditions,omitempty"`
	Medications         string   `json:"medications,omitempty"`
	DietaryRestrictions string   `json:"dietaryRestrictions,omitempty"`
	FoodAllergies       string   `json:"foodAllergies,omitempty"`
	CuisinePreferences  string   `json:"cuisinePreferences,omitempty"`
	DislikedFoods       string   `json:"dislikedFoods,omitempty"`
	MealPrepTime        string   `json:"mealPrepTime,omitempty"`
	CookingSkill        string   `json:"cookingSkill,omitempty"`
	AdditionalInfo      string   `json:"additionalInfo,omitempty"`
}

// normalized clears the trimester of non-pregnant profiles and the child age
// of non-child profiles.
func (p UserProfile) normalized() UserProfile {
	if p.ProfileType != Pregnant {
		p.PregnancyTrimester = ""
	}
	if p.ProfileType != Child {
		p.ChildAge = ""
	}
	return p
}

// ProfileSummary echoes the profile fields a plan was computed from.
type ProfileSummary struct {
	Age                float64     `json:"age"`
	ProfileType        ProfileType `json:"profileType"`
	PregnancyTrimester Trimester   `json:"pregnancyTrimester,omitempty"`
	ChildAge           ChildAge    `json:"childAge,omitempty"`
	Weight             float64     `json:"weight"`
	Height             float64     `json:"height"`
}

// MacroBreakdown is the percentage split of daily calories. The three values
// always sum to 100.
type MacroBreakdown struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

// Nutrient is a key nutrient with its daily target and food sources.
type Nutrient struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Sources     []string `json:"sources"`
	DailyTarget string   `json:"dailyTarget"`
}

// Meal is a static meal template.
type Meal struct {
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	Portions     string   `json:"portions"`
	Calories     int      `json:"calories"`
	Protein      int      `json:"protein"`
	Carbs        int      `json:"carbs"`
	Fats         int      `json:"fats"`
	KeyNutrients []string `json:"keyNutrients"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	Alternatives []string `json:"alternatives"`
}

// Meals holds the meal slots of one day. EveningSnack is nil when the
// profile branch does not include a sixth slot.
type Meals struct {
	Breakfast      Meal  `json:"breakfast"`
	MorningSnack   Meal  `json:"morningSnack"`
	Lunch          Meal  `json:"lunch"`
	AfternoonSnack Meal  `json:"afternoonSnack"`
	Dinner         Meal  `json:"dinner"`
	EveningSnack   *Meal `json:"eveningSnack,omitempty"`
}

// DailyPlan is the plan for one weekday.
type DailyPlan struct {
	Day           string  `json:"day"`
	TotalCalories float64 `json:"totalCalories"`
	ProteinGrams  int     `json:"proteinGrams"`
	CarbGrams     int     `json:"carbGrams"`
	FatGrams      int     `json:"fatGrams"`
	Meals         Meals   `json:"meals"`
}

// DietPlan is the generated weekly nutrition plan.
type DietPlan struct {
	UserProfile          ProfileSummary `json:"userProfile"`
	CalorieTarget        float64        `json:"calorieTarget"`
	MacroBreakdown       MacroBreakdown `json:"macroBreakdown"`
	KeyNutrients         []Nutrient     `json:"keyNutrients"`
	DailyPlans           []DailyPlan    `json:"dailyPlans"`
	Recommendations      []string       `json:"recommendations"`
	FoodSafetyGuidelines []string       `json:"foodSafetyGuidelines,omitempty"`
	BreastfeedingSupport []string       `json:"breastfeedingSupport,omitempty"`
	ChildFeedingTips     []string       `json:"childFeedingTips,omitempty"`
	ShoppingList         ShoppingList   `json:"shoppingList"`
}

// Record is a generated plan together with its identifier.
type Record struct {
	ID   string    `json:"id" db:"plan_id"`
	Plan *DietPlan `json:"plan"`
}

// Slot is a labelled meal of one day.
type Slot struct {
	Name string
	Meal Meal
}

// Slots returns the day's meals in serving order, skipping an absent evening
// snack.
func (m Meals) Slots() []Slot {
	slots := []Slot{
		{Name: "Breakfast", Meal: m.Breakfast},
		{Name: "Morning snack", Meal: m.MorningSnack},
		{Name: "Lunch", Meal: m.Lunch},
		{Name: "Afternoon snack", Meal: m.AfternoonSnack},
		{Name: "Dinner", Meal: m.Dinner},
	}
	if m.EveningSnack != nil {
		slots = append(slots, Slot{Name: "Evening snack", Meal: *m.EveningSnack})
	}
	return slots
}
