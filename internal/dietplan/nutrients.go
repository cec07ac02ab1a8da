package dietplan

import "slices"

var pregnancyNutrients = []Nutrient{
	{
		Name:        "Folate",
		Description: "Supports neural tube development and red blood cell formation.",
		Sources:     []string{"Leafy greens", "Lentils", "Fortified cereals", "Citrus fruits", "Asparagus"},
		DailyTarget: "600 mcg DFE",
	},
	{
		Name:        "Iron",
		Description: "Builds the extra blood volume needed for you and your baby.",
		Sources:     []string{"Lean red meat", "Spinach", "Beans", "Fortified cereals", "Tofu"},
		DailyTarget: "27 mg",
	},
	{
		Name:        "Calcium",
		Description: "Builds your baby's bones and teeth while protecting your own bone density.",
		Sources:     []string{"Milk", "Yogurt", "Cheese", "Fortified plant milks", "Broccoli"},
		DailyTarget: "1000 mg",
	},
	{
		Name:        "DHA (Omega-3)",
		Description: "Supports brain and eye development.",
		Sources:     []string{"Salmon", "Sardines", "Walnuts", "Chia seeds", "Algae-based supplements"},
		DailyTarget: "200-300 mg",
	},
	{
		Name:        "Choline",
		Description: "Supports brain and spinal cord development.",
		Sources:     []string{"Eggs", "Chicken", "Soybeans", "Quinoa", "Brussels sprouts"},
		DailyTarget: "450 mg",
	},
}

var breastfeedingNutrients = []Nutrient{
	{
		Name:        "Calcium",
		Description: "Replaces the calcium transferred into breast milk.",
		Sources:     []string{"Milk", "Yogurt", "Cheese", "Fortified plant milks", "Almonds"},
		DailyTarget: "1000 mg",
	},
	{
		Name:        "Iodine",
		Description: "Supports your baby's brain development through breast milk.",
		Sources:     []string{"Iodized salt", "Dairy", "Eggs", "Seafood", "Seaweed"},
		DailyTarget: "290 mcg",
	},
	{
		Name:        "DHA (Omega-3)",
		Description: "Passes into breast milk and supports visual and brain development.",
		Sources:     []string{"Salmon", "Trout", "Sardines", "Walnuts", "Algae-based supplements"},
		DailyTarget: "200-300 mg",
	},
	{
		Name:        "Vitamin B12",
		Description: "Needed for your baby's nervous system; critical for vegetarian mothers.",
		Sources:     []string{"Eggs", "Dairy", "Fish", "Meat", "Fortified nutritional yeast"},
		DailyTarget: "2.8 mcg",
	},
	{
		Name:        "Choline",
		Description: "Demand peaks during lactation for infant memory development.",
		Sources:     []string{"Eggs", "Beef", "Chicken", "Soybeans", "Shiitake mushrooms"},
		DailyTarget: "550 mg",
	},
}

var planningNutrients = []Nutrient{
	{
		Name:        "Folic Acid",
		Description: "Lowers the risk of neural tube defects when started before conception.",
		Sources:     []string{"Prenatal supplement", "Fortified cereals", "Leafy greens", "Beans"},
		DailyTarget: "400 mcg",
	},
	{
		Name:        "Iron",
		Description: "Builds iron stores ahead of pregnancy.",
		Sources:     []string{"Lean red meat", "Lentils", "Spinach", "Pumpkin seeds"},
		DailyTarget: "18 mg",
	},
	{
		Name:        "Vitamin D",
		Description: "Supports fertility, immunity and calcium absorption.",
		Sources:     []string{"Sunlight", "Fatty fish", "Egg yolks", "Fortified milk"},
		DailyTarget: "600 IU",
	},
	{
		Name:        "Iodine",
		Description: "Supports thyroid function needed for a healthy pregnancy.",
		Sources:     []string{"Iodized salt", "Dairy", "Seafood", "Eggs"},
		DailyTarget: "150 mcg",
	},
	{
		Name:        "Omega-3 Fatty Acids",
		Description: "Supports hormone balance and prepares DHA stores.",
		Sources:     []string{"Salmon", "Walnuts", "Flaxseeds", "Chia seeds"},
		DailyTarget: "250 mg EPA+DHA",
	},
}

var infantNutrients = []Nutrient{
	{
		Name:        "Breast Milk or Formula",
		Description: "Provides complete nutrition for the first six months.",
		Sources:     []string{"Breast milk", "Iron-fortified infant formula"},
		DailyTarget: "On demand, 8-12 feeds",
	},
	{
		Name:        "Vitamin D",
		Description: "Breast milk is low in vitamin D; breastfed infants need drops.",
		Sources:     []string{"Infant vitamin D drops", "Fortified formula"},
		DailyTarget: "400 IU",
	},
	{
		Name:        "Iron",
		Description: "Born with stores that last about six months.",
		Sources:     []string{"Breast milk", "Iron-fortified formula"},
		DailyTarget: "0.27 mg",
	},
	{
		Name:        "DHA (Omega-3)",
		Description: "Supports rapid brain and eye growth.",
		Sources:     []string{"Breast milk", "DHA-enriched formula"},
		DailyTarget: "Supplied by milk feeds",
	},
}

var olderInfantNutrients = []Nutrient{
	{
		Name:        "Iron",
		Description: "Stores run low after six months; first foods should be iron-rich.",
		Sources:     []string{"Iron-fortified infant cereal", "Pureed meat", "Mashed lentils", "Egg yolk"},
		DailyTarget: "11 mg",
	},
	{
		Name:        "Zinc",
		Description: "Supports growth and immune development.",
		Sources:     []string{"Pureed meat", "Yogurt", "Beans", "Fortified cereal"},
		DailyTarget: "3 mg",
	},
	{
		Name:        "Vitamin D",
		Description: "Still needed as supplementation for breastfed babies.",
		Sources:     []string{"Infant vitamin D drops", "Fortified formula"},
		DailyTarget: "400 IU",
	},
	{
		Name:        "Healthy Fats",
		Description: "Fuel brain growth; fat should not be restricted under two.",
		Sources:     []string{"Breast milk", "Avocado", "Full-fat yogurt", "Nut butters thinned with water"},
		DailyTarget: "30 g",
	},
}

var toddlerNutrients = []Nutrient{
	{
		Name:        "Calcium",
		Description: "Builds strong bones during rapid growth.",
		Sources:     []string{"Whole milk", "Yogurt", "Cheese", "Fortified plant milks"},
		DailyTarget: "700 mg",
	},
	{
		Name:        "Iron",
		Description: "Prevents the iron deficiency common in toddlers who drink a lot of milk.",
		Sources:     []string{"Lean meat", "Beans", "Fortified cereals", "Eggs"},
		DailyTarget: "7 mg",
	},
	{
		Name:        "Vitamin D",
		Description: "Helps absorb calcium for bone growth.",
		Sources:     []string{"Fortified milk", "Eggs", "Fatty fish", "Sunlight"},
		DailyTarget: "600 IU",
	},
	{
		Name:        "Fiber",
		Description: "Keeps digestion regular as the diet diversifies.",
		Sources:     []string{"Fruits", "Vegetables", "Whole grains", "Beans"},
		DailyTarget: "19 g",
	},
}

var schoolChildNutrients = []Nutrient{
	{
		Name:        "Calcium",
		Description: "Supports bone mass during steady growth.",
		Sources:     []string{"Milk", "Yogurt", "Cheese", "Fortified plant milks", "Tofu"},
		DailyTarget: "1000 mg",
	},
	{
		Name:        "Iron",
		Description: "Supports concentration, energy and growth.",
		Sources:     []string{"Lean meat", "Beans", "Fortified cereals", "Spinach"},
		DailyTarget: "10 mg",
	},
	{
		Name:        "Fiber",
		Description: "Supports digestion and steady energy.",
		Sources:     []string{"Whole grains", "Fruits", "Vegetables", "Beans"},
		DailyTarget: "25 g",
	},
	{
		Name:        "Vitamin D",
		Description: "Works with calcium to build strong bones.",
		Sources:     []string{"Fortified milk", "Eggs", "Fatty fish", "Sunlight"},
		DailyTarget: "600 IU",
	},
}

// KeyNutrients returns the nutrient list for a profile. Trimester does not
// vary the pregnancy list.
func KeyNutrients(p UserProfile) []Nutrient {
	switch p.ProfileType {
	case Pregnant:
		return cloneNutrients(pregnancyNutrients)
	case Breastfeeding:
		return cloneNutrients(breastfeedingNutrients)
	case Child:
		switch p.ChildAge {
		case Infant0To6Months:
			return cloneNutrients(infantNutrients)
		case Infant6To12Months:
			return cloneNutrients(olderInfantNutrients)
		case Toddler1To3Years:
			return cloneNutrients(toddlerNutrients)
		default:
			return cloneNutrients(schoolChildNutrients)
		}
	default:
		return cloneNutrients(planningNutrients)
	}
}

func cloneNutrients(src []Nutrient) []Nutrient {
	out := make([]Nutrient, len(src))
	for i, n := range src {
		n.Sources = slices.Clone(n.Sources)
		out[i] = n
	}
	return out
}
