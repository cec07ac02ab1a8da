package dietplan

import (
	"slices"
	"sort"
)

// mealSet is the slot assignment used for every day of a profile branch.
// A nil eveningSnack means the branch has five slots.
type mealSet struct {
	breakfast      Meal
	morningSnack   Meal
	lunch          Meal
	afternoonSnack Meal
	dinner         Meal
	eveningSnack   *Meal
}

var (
	yogurtParfait = Meal{
		Slug:         "greek-yogurt-parfait",
		Name:         "Greek Yogurt Parfait with Iron-Rich Granola",
		Portions:     "1 bowl (300g)",
		Calories:     380,
		Protein:      22,
		Carbs:        48,
		Fats:         11,
		KeyNutrients: []string{"Calcium", "Protein", "Iron", "Vitamin D"},
		Ingredients: []string{
			"1 cup pasteurized Greek yogurt",
			"1/3 cup iron-fortified granola",
			"1/2 cup mixed berries",
			"1 tbsp ground flaxseed",
			"1 tsp honey",
		},
		Instructions: "Layer yogurt, granola and berries in a bowl. Top with flaxseed and a drizzle of honey.",
		Alternatives: []string{
			"Fortified cereal with milk and sliced banana",
			"Whole grain toast with peanut butter and a glass of milk",
			"Overnight oats with chia seeds and berries",
		},
	}
	appleAlmondButter = Meal{
		Slug:         "apple-almond-butter",
		Name:         "Apple Slices with Almond Butter",
		Portions:     "1 medium apple + 1 tbsp almond butter",
		Calories:     190,
		Protein:      4,
		Carbs:        25,
		Fats:         9,
		KeyNutrients: []string{"Fiber", "Healthy Fats", "Vitamin E"},
		Ingredients:  []string{"1 medium apple", "1 tbsp almond butter"},
		Instructions: "Wash and slice the apple. Serve with almond butter for dipping.",
		Alternatives: []string{
			"Pear with a cheese stick",
			"Banana with peanut butter",
			"Carrot sticks with hummus",
		},
	}
	lentilSalad = Meal{
		Slug:         "mediterranean-lentil-salad",
		Name:         "Mediterranean Lentil Salad with Feta",
		Portions:     "1 large bowl (350g)",
		Calories:     450,
		Protein:      24,
		Carbs:        52,
		Fats:         16,
		KeyNutrients: []string{"Iron", "Protein", "Vitamin C", "Folate"},
		Ingredients: []string{
			"1 cup cooked lentils",
			"1 cup baby spinach",
			"1/2 cup cherry tomatoes",
			"1/4 cucumber, diced",
			"2 tbsp pasteurized feta",
			"1 tbsp olive oil and lemon dressing",
		},
		Instructions: "Toss lentils with spinach, tomatoes and cucumber. Crumble feta on top and dress with olive oil and lemon.",
		Alternatives: []string{
			"Chickpea and quinoa salad",
			"Black bean soup with a side salad",
			"Turkey and spinach whole grain wrap",
		},
	}
	fruitNutMix = Meal{
		Slug:         "fruit-nut-dark-chocolate",
		Name:         "Fruit & Nut Mix with Dark Chocolate",
		Portions:     "1/3 cup",
		Calories:     200,
		Protein:      5,
		Carbs:        20,
		Fats:         12,
		KeyNutrients: []string{"Magnesium", "Antioxidants", "Fiber"},
		Ingredients: []string{
			"2 tbsp walnuts",
			"2 tbsp dried apricots",
			"1 tbsp pumpkin seeds",
			"1 tbsp dark chocolate chips",
		},
		Instructions: "Mix all ingredients and portion into a small container.",
		Alternatives: []string{
			"Yogurt with sliced peaches",
			"Whole grain crackers with cheese",
			"Smoothie with spinach and mango",
		},
	}
	salmonQuinoa = Meal{
		Slug:         "baked-salmon-quinoa",
		Name:         "Baked Salmon with Quinoa and Roasted Vegetables",
		Portions:     "4 oz salmon + 1/2 cup quinoa + 1 cup vegetables",
		Calories:     520,
		Protein:      34,
		Carbs:        42,
		Fats:         22,
		KeyNutrients: []string{"Omega-3", "Protein", "Vitamin A", "Zinc"},
		Ingredients: []string{
			"4 oz salmon fillet",
			"1/2 cup cooked quinoa",
			"1 cup broccoli and carrots",
			"1 tbsp olive oil",
			"Lemon, garlic and dill",
		},
		Instructions: "Bake seasoned salmon at 400°F for 12-15 minutes until it flakes easily (145°F internal). Roast vegetables in olive oil for 20 minutes. Serve over quinoa.",
		Alternatives: []string{
			"Baked chicken with brown rice and green beans",
			"Tofu and vegetable stir-fry over brown rice",
			"Lean beef chili with beans",
		},
	}
	warmMilkToast = Meal{
		Slug:         "warm-milk-toast",
		Name:         "Warm Milk with Whole Grain Toast",
		Portions:     "1 cup milk + 1 slice toast",
		Calories:     200,
		Protein:      11,
		Carbs:        27,
		Fats:         6,
		KeyNutrients: []string{"Calcium", "Vitamin D", "Fiber"},
		Ingredients:  []string{"1 cup pasteurized milk", "1 slice whole grain bread", "1 tsp butter"},
		Instructions: "Warm the milk gently. Toast the bread and spread with butter.",
		Alternatives: []string{
			"Small bowl of fortified cereal with milk",
			"Cottage cheese with pineapple",
			"Banana with a handful of almonds",
		},
	}

	lactationOats = Meal{
		Slug:         "lactation-overnight-oats",
		Name:         "Lactation Overnight Oats",
		Portions:     "1 jar (350g)",
		Calories:     450,
		Protein:      18,
		Carbs:        62,
		Fats:         15,
		KeyNutrients: []string{"Fiber", "Iron", "Omega-3", "B Vitamins"},
		Ingredients: []string{
			"2/3 cup rolled oats",
			"3/4 cup milk",
			"1 tbsp ground flaxseed",
			"1 tbsp brewer's yeast",
			"1 tbsp almond butter",
			"1/2 banana, sliced",
		},
		Instructions: "Combine oats, milk, flaxseed and brewer's yeast in a jar. Refrigerate overnight and top with almond butter and banana.",
		Alternatives: []string{
			"Oatmeal with walnuts and berries",
			"Whole grain toast with eggs and avocado",
			"Smoothie with oats, spinach and yogurt",
		},
	}
	hummusVeggies = Meal{
		Slug:         "hummus-veggie-sticks",
		Name:         "Hummus with Veggie Sticks",
		Portions:     "1/4 cup hummus + 1 cup vegetables",
		Calories:     180,
		Protein:      6,
		Carbs:        20,
		Fats:         9,
		KeyNutrients: []string{"Fiber", "Vitamin A", "Folate"},
		Ingredients:  []string{"1/4 cup hummus", "1 carrot", "1/2 bell pepper", "1/2 cucumber"},
		Instructions: "Cut vegetables into sticks and serve with hummus.",
		Alternatives: []string{
			"Whole grain crackers with cheese",
			"Edamame with sea salt",
			"Yogurt with granola",
		},
	}
	chickenPowerBowl = Meal{
		Slug:         "chicken-quinoa-power-bowl",
		Name:         "Chicken and Quinoa Power Bowl",
		Portions:     "1 large bowl (400g)",
		Calories:     560,
		Protein:      38,
		Carbs:        55,
		Fats:         20,
		KeyNutrients: []string{"Protein", "Iron", "Vitamin C", "Choline"},
		Ingredients: []string{
			"4 oz grilled chicken breast",
			"3/4 cup cooked quinoa",
			"1 cup roasted sweet potato",
			"1 cup kale",
			"1/4 avocado",
			"1 tbsp tahini dressing",
		},
		Instructions: "Arrange quinoa, sweet potato and kale in a bowl. Top with sliced chicken and avocado and drizzle with tahini.",
		Alternatives: []string{
			"Tuna (light) and white bean salad",
			"Lentil curry with brown rice",
			"Turkey and avocado sandwich on whole grain bread",
		},
	}
	trailMix = Meal{
		Slug:         "trail-mix-dried-fruit",
		Name:         "Trail Mix with Dried Fruit",
		Portions:     "1/3 cup",
		Calories:     220,
		Protein:      6,
		Carbs:        22,
		Fats:         13,
		KeyNutrients: []string{"Healthy Fats", "Magnesium", "Iron"},
		Ingredients:  []string{"2 tbsp almonds", "2 tbsp cashews", "2 tbsp raisins", "1 tbsp sunflower seeds"},
		Instructions: "Mix and keep a portion near your nursing chair.",
		Alternatives: []string{
			"Energy balls with oats and dates",
			"Cheese and apple slices",
			"Greek yogurt with honey",
		},
	}
	beefStirFry = Meal{
		Slug:         "beef-broccoli-stir-fry",
		Name:         "Beef and Broccoli Stir-Fry with Brown Rice",
		Portions:     "4 oz beef + 1 cup rice + 1 cup broccoli",
		Calories:     580,
		Protein:      36,
		Carbs:        60,
		Fats:         20,
		KeyNutrients: []string{"Iron", "Zinc", "Vitamin B12", "Vitamin C"},
		Ingredients: []string{
			"4 oz lean beef strips",
			"1 cup cooked brown rice",
			"1 cup broccoli florets",
			"1 tbsp low-sodium soy sauce",
			"1 tsp sesame oil",
			"Garlic and ginger",
		},
		Instructions: "Stir-fry beef in sesame oil until browned. Add broccoli, garlic, ginger and soy sauce and cook until tender-crisp. Serve over rice.",
		Alternatives: []string{
			"Salmon with sweet potato and asparagus",
			"Chicken and vegetable curry with rice",
			"Bean and cheese burrito bowl",
		},
	}
	bananaFlaxSmoothie = Meal{
		Slug:         "banana-flax-smoothie",
		Name:         "Banana Smoothie with Flaxseed",
		Portions:     "1 glass (300ml)",
		Calories:     240,
		Protein:      10,
		Carbs:        36,
		Fats:         7,
		KeyNutrients: []string{"Calcium", "Potassium", "Omega-3"},
		Ingredients:  []string{"1 banana", "3/4 cup milk", "1 tbsp ground flaxseed", "1/4 cup yogurt"},
		Instructions: "Blend all ingredients until smooth.",
		Alternatives: []string{
			"Warm milk with oat cookies",
			"Peanut butter on whole grain toast",
			"Cottage cheese with fruit",
		},
	}

	spinachOmelette = Meal{
		Slug:         "spinach-feta-omelette",
		Name:         "Spinach and Feta Omelette with Whole Grain Toast",
		Portions:     "2-egg omelette + 1 slice toast",
		Calories:     360,
		Protein:      22,
		Carbs:        24,
		Fats:         19,
		KeyNutrients: []string{"Folate", "Choline", "Protein", "Vitamin D"},
		Ingredients: []string{
			"2 eggs",
			"1 cup spinach",
			"2 tbsp pasteurized feta",
			"1 slice whole grain bread",
			"1 tsp olive oil",
		},
		Instructions: "Wilt spinach in olive oil, pour in beaten eggs and cook through. Add feta, fold and serve with toast.",
		Alternatives: []string{
			"Fortified cereal with milk and berries",
			"Avocado toast with a boiled egg",
			"Yogurt parfait with granola",
		},
	}
	orangeWalnuts = Meal{
		Slug:         "orange-walnuts",
		Name:         "Orange and Walnuts",
		Portions:     "1 orange + 1/4 cup walnuts",
		Calories:     210,
		Protein:      5,
		Carbs:        18,
		Fats:         14,
		KeyNutrients: []string{"Vitamin C", "Omega-3", "Folate"},
		Ingredients:  []string{"1 orange", "1/4 cup walnuts"},
		Instructions: "Peel the orange and serve with walnuts.",
		Alternatives: []string{
			"Kiwi with almonds",
			"Strawberries with pumpkin seeds",
			"Grapefruit with a cheese stick",
		},
	}
	chickpeaWrap = Meal{
		Slug:         "chickpea-vegetable-wrap",
		Name:         "Chickpea and Roasted Vegetable Wrap",
		Portions:     "1 large wrap",
		Calories:     470,
		Protein:      17,
		Carbs:        62,
		Fats:         17,
		KeyNutrients: []string{"Folate", "Iron", "Fiber"},
		Ingredients: []string{
			"1 whole wheat tortilla",
			"1/2 cup chickpeas, mashed",
			"1 cup roasted zucchini and peppers",
			"2 tbsp hummus",
			"Handful of arugula",
		},
		Instructions: "Spread hummus and mashed chickpeas on the tortilla, add roasted vegetables and arugula, and roll tightly.",
		Alternatives: []string{
			"Lentil soup with whole grain bread",
			"Quinoa salad with black beans",
			"Turkey and spinach sandwich",
		},
	}
	yogurtBerries = Meal{
		Slug:         "greek-yogurt-berries",
		Name:         "Greek Yogurt with Berries",
		Portions:     "3/4 cup yogurt + 1/2 cup berries",
		Calories:     160,
		Protein:      15,
		Carbs:        17,
		Fats:         3,
		KeyNutrients: []string{"Calcium", "Protein", "Antioxidants"},
		Ingredients:  []string{"3/4 cup Greek yogurt", "1/2 cup mixed berries", "1 tsp honey (optional)"},
		Instructions: "Mix berries into yogurt. Add honey if desired.",
		Alternatives: []string{
			"Cottage cheese with peaches",
			"Hard-boiled egg and cherry tomatoes",
			"Kefir smoothie",
		},
	}
	troutSweetPotato = Meal{
		Slug:         "grilled-trout-sweet-potato",
		Name:         "Grilled Trout with Sweet Potato and Greens",
		Portions:     "4 oz trout + 1 medium sweet potato + 1 cup greens",
		Calories:     500,
		Protein:      32,
		Carbs:        45,
		Fats:         19,
		KeyNutrients: []string{"Omega-3", "Vitamin A", "Vitamin D", "Iron"},
		Ingredients: []string{
			"4 oz trout fillet",
			"1 medium sweet potato",
			"1 cup sautéed Swiss chard",
			"1 tbsp olive oil",
			"Lemon and parsley",
		},
		Instructions: "Grill trout 4-5 minutes per side. Bake sweet potato at 400°F for 45 minutes. Sauté chard in olive oil and finish with lemon.",
		Alternatives: []string{
			"Chicken with farro and roasted vegetables",
			"Black bean and sweet potato tacos",
			"Shrimp stir-fry with brown rice",
		},
	}

	infantMilkFeed = Meal{
		Slug:         "infant-milk-feed",
		Name:         "Breast Milk or Formula Feed",
		Portions:     "2-6 oz (60-180 ml) per feed",
		Calories:     90,
		Protein:      2,
		Carbs:        10,
		Fats:         5,
		KeyNutrients: []string{"Complete Nutrition", "DHA", "Antibodies"},
		Ingredients:  []string{"Breast milk or iron-fortified infant formula"},
		Instructions: "Feed on demand when your baby shows hunger cues. Hold your baby semi-upright and burp halfway through.",
		Alternatives: []string{
			"Expressed breast milk by bottle",
			"Ready-to-feed infant formula",
		},
	}
	fortifiedCereal = Meal{
		Slug:         "iron-fortified-cereal-fruit",
		Name:         "Iron-Fortified Cereal with Fruit Puree",
		Portions:     "2-4 tbsp cereal + 2 tbsp puree",
		Calories:     90,
		Protein:      3,
		Carbs:        16,
		Fats:         2,
		KeyNutrients: []string{"Iron", "Zinc", "Vitamin C"},
		Ingredients: []string{
			"Iron-fortified infant oat cereal",
			"Breast milk or formula to thin",
			"Pear or apple puree",
		},
		Instructions: "Mix cereal with milk to a smooth consistency and swirl in fruit puree. Offer by spoon.",
		Alternatives: []string{
			"Mashed egg yolk with avocado",
			"Plain whole-milk yogurt with mashed banana",
		},
	}
	chickenSweetPotatoPuree = Meal{
		Slug:         "chicken-sweet-potato-puree",
		Name:         "Pureed Chicken and Sweet Potato",
		Portions:     "3-4 tbsp",
		Calories:     80,
		Protein:      6,
		Carbs:        9,
		Fats:         2,
		KeyNutrients: []string{"Iron", "Protein", "Vitamin A"},
		Ingredients:  []string{"Cooked chicken thigh", "Steamed sweet potato", "Breast milk or water to thin"},
		Instructions: "Blend chicken and sweet potato until smooth, thinning as needed. Serve lukewarm.",
		Alternatives: []string{
			"Pureed beef with carrots",
			"Mashed lentils with squash",
		},
	}
	lentilVegetableMash = Meal{
		Slug:         "lentil-vegetable-mash",
		Name:         "Lentil and Vegetable Mash",
		Portions:     "3-4 tbsp",
		Calories:     75,
		Protein:      5,
		Carbs:        12,
		Fats:         1,
		KeyNutrients: []string{"Iron", "Fiber", "Folate"},
		Ingredients:  []string{"Red lentils", "Carrot", "Zucchini", "A little olive oil"},
		Instructions: "Simmer lentils and vegetables until very soft, mash to the right texture and stir in olive oil.",
		Alternatives: []string{
			"Mashed peas with mint",
			"Avocado and banana mash",
		},
	}

	eggToastFingers = Meal{
		Slug:         "scrambled-egg-toast-fingers",
		Name:         "Scrambled Egg with Toast Fingers",
		Portions:     "1 egg + 1/2 slice toast",
		Calories:     150,
		Protein:      8,
		Carbs:        10,
		Fats:         8,
		KeyNutrients: []string{"Choline", "Protein", "Iron"},
		Ingredients:  []string{"1 egg", "1/2 slice whole grain bread", "1 tsp butter"},
		Instructions: "Scramble the egg in butter until fully set. Cut toast into fingers for self-feeding.",
		Alternatives: []string{
			"Oatmeal with mashed banana",
			"Mini whole grain pancake with yogurt",
		},
	}
	yogurtSoftBerries = Meal{
		Slug:         "yogurt-soft-berries",
		Name:         "Yogurt with Soft Berries",
		Portions:     "1/2 cup yogurt + 1/4 cup berries",
		Calories:     100,
		Protein:      5,
		Carbs:        12,
		Fats:         4,
		KeyNutrients: []string{"Calcium", "Vitamin C"},
		Ingredients:  []string{"1/2 cup whole-milk yogurt", "1/4 cup raspberries or quartered blueberries"},
		Instructions: "Stir berries into yogurt, mashing lightly for younger toddlers.",
		Alternatives: []string{
			"Cottage cheese with soft pear",
			"Banana slices with nut butter smear",
		},
	}
	turkeyMeatballs = Meal{
		Slug:         "mini-turkey-meatballs-pasta",
		Name:         "Mini Turkey Meatballs with Pasta",
		Portions:     "3 mini meatballs + 1/3 cup pasta",
		Calories:     230,
		Protein:      14,
		Carbs:        24,
		Fats:         9,
		KeyNutrients: []string{"Iron", "Zinc", "Protein"},
		Ingredients: []string{
			"Ground turkey",
			"Grated zucchini",
			"Whole wheat pasta",
			"Low-sodium tomato sauce",
		},
		Instructions: "Mix turkey with zucchini, roll into small balls and bake at 375°F for 15 minutes. Serve with pasta and sauce.",
		Alternatives: []string{
			"Bean and cheese quesadilla strips",
			"Flaked salmon with rice and peas",
		},
	}
	cheeseCrackers = Meal{
		Slug:         "cheese-whole-grain-crackers",
		Name:         "Cheese and Whole Grain Crackers",
		Portions:     "1 oz cheese + 4 crackers",
		Calories:     140,
		Protein:      7,
		Carbs:        10,
		Fats:         8,
		KeyNutrients: []string{"Calcium", "Protein"},
		Ingredients:  []string{"1 oz cheddar cheese", "4 whole grain crackers"},
		Instructions: "Cut cheese into small cubes and serve with crackers.",
		Alternatives: []string{
			"Hummus with soft-cooked carrot sticks",
			"Rice cake with avocado",
		},
	}
	salmonCakes = Meal{
		Slug:         "salmon-cakes-mashed-peas",
		Name:         "Salmon Cakes with Mashed Peas",
		Portions:     "2 small cakes + 1/4 cup peas",
		Calories:     220,
		Protein:      15,
		Carbs:        16,
		Fats:         10,
		KeyNutrients: []string{"Omega-3", "Vitamin D", "Protein"},
		Ingredients:  []string{"Canned salmon (boneless)", "Mashed potato", "1 egg", "Frozen peas"},
		Instructions: "Combine salmon, potato and egg, shape into small cakes and pan-fry until golden. Serve with mashed peas.",
		Alternatives: []string{
			"Chicken and vegetable rice",
			"Lentil pasta with tomato sauce",
		},
	}
	bedtimeMilk = Meal{
		Slug:         "bedtime-milk",
		Name:         "Warm Milk Before Bed",
		Portions:     "1/2 cup (120 ml)",
		Calories:     75,
		Protein:      4,
		Carbs:        6,
		Fats:         4,
		KeyNutrients: []string{"Calcium", "Vitamin D"},
		Ingredients:  []string{"1/2 cup whole milk"},
		Instructions: "Serve in an open or straw cup, then brush teeth.",
		Alternatives: []string{
			"Fortified soy milk",
			"Small yogurt",
		},
	}

	bananaPancakes = Meal{
		Slug:         "whole-grain-banana-pancakes",
		Name:         "Whole Grain Banana Pancakes",
		Portions:     "3 small pancakes",
		Calories:     300,
		Protein:      10,
		Carbs:        45,
		Fats:         9,
		KeyNutrients: []string{"Fiber", "Potassium", "Iron"},
		Ingredients: []string{
			"1/2 cup whole wheat flour",
			"1 ripe banana",
			"1 egg",
			"1/3 cup milk",
			"Berries to top",
		},
		Instructions: "Mash banana, whisk with egg and milk, stir in flour and cook small pancakes on a lightly oiled pan. Top with berries.",
		Alternatives: []string{
			"Whole grain cereal with milk",
			"Egg and cheese muffin",
		},
	}
	appleCheese = Meal{
		Slug:         "apple-cheese",
		Name:         "Apple Slices with Cheese",
		Portions:     "1 small apple + 1 cheese stick",
		Calories:     150,
		Protein:      7,
		Carbs:        16,
		Fats:         6,
		KeyNutrients: []string{"Calcium", "Fiber"},
		Ingredients:  []string{"1 small apple", "1 cheese stick"},
		Instructions: "Slice apple and serve alongside the cheese stick.",
		Alternatives: []string{
			"Grapes with whole grain crackers",
			"Yogurt tube with berries",
		},
	}
	turkeyWrap = Meal{
		Slug:         "turkey-veggie-wrap",
		Name:         "Turkey and Veggie Wrap",
		Portions:     "1 small wrap",
		Calories:     340,
		Protein:      18,
		Carbs:        38,
		Fats:         12,
		KeyNutrients: []string{"Protein", "Iron", "Fiber"},
		Ingredients: []string{
			"1 small whole wheat tortilla",
			"2 oz sliced turkey",
			"Shredded lettuce and carrot",
			"1 slice cheese",
			"1 tbsp hummus",
		},
		Instructions: "Spread hummus on the tortilla, layer turkey, cheese and vegetables, roll and slice into pinwheels.",
		Alternatives: []string{
			"Peanut butter and banana sandwich",
			"Bean and cheese quesadilla",
		},
	}
	kidHummusVeggies = Meal{
		Slug:         "kid-hummus-veggies",
		Name:         "Hummus with Cucumber and Pepper Sticks",
		Portions:     "2 tbsp hummus + 1/2 cup vegetables",
		Calories:     110,
		Protein:      4,
		Carbs:        12,
		Fats:         5,
		KeyNutrients: []string{"Fiber", "Vitamin C"},
		Ingredients:  []string{"2 tbsp hummus", "Cucumber sticks", "Red pepper sticks"},
		Instructions: "Cut vegetables into sticks and serve with hummus for dipping.",
		Alternatives: []string{
			"Popcorn with a glass of milk",
			"Trail mix without whole nuts",
		},
	}
	chickenStirFryRice = Meal{
		Slug:         "chicken-stir-fry-brown-rice",
		Name:         "Chicken Stir-Fry with Brown Rice",
		Portions:     "2 oz chicken + 1/2 cup rice + 1/2 cup vegetables",
		Calories:     380,
		Protein:      22,
		Carbs:        45,
		Fats:         11,
		KeyNutrients: []string{"Protein", "Vitamin A", "Vitamin C"},
		Ingredients: []string{
			"2 oz chicken strips",
			"1/2 cup cooked brown rice",
			"Broccoli, carrots and snap peas",
			"1 tsp low-sodium soy sauce",
			"1 tsp vegetable oil",
		},
		Instructions: "Stir-fry chicken until cooked through, add vegetables and soy sauce, and serve over rice.",
		Alternatives: []string{
			"Baked fish sticks with sweet potato fries",
			"Whole wheat pasta with meat sauce",
		},
	}
)

func pregnancyMeals() mealSet {
	return mealSet{
		breakfast:      yogurtParfait,
		morningSnack:   appleAlmondButter,
		lunch:          lentilSalad,
		afternoonSnack: fruitNutMix,
		dinner:         salmonQuinoa,
		eveningSnack:   &warmMilkToast,
	}
}

func breastfeedingMeals() mealSet {
	return mealSet{
		breakfast:      lactationOats,
		morningSnack:   hummusVeggies,
		lunch:          chickenPowerBowl,
		afternoonSnack: trailMix,
		dinner:         beefStirFry,
		eveningSnack:   &bananaFlaxSmoothie,
	}
}

func planningMeals() mealSet {
	return mealSet{
		breakfast:      spinachOmelette,
		morningSnack:   orangeWalnuts,
		lunch:          chickpeaWrap,
		afternoonSnack: yogurtBerries,
		dinner:         troutSweetPotato,
	}
}

func childMeals(age ChildAge) mealSet {
	switch age {
	case Infant0To6Months:
		// Milk feeds only: every slot, including the evening one.
		return mealSet{
			breakfast:      infantMilkFeed,
			morningSnack:   infantMilkFeed,
			lunch:          infantMilkFeed,
			afternoonSnack: infantMilkFeed,
			dinner:         infantMilkFeed,
			eveningSnack:   &infantMilkFeed,
		}
	case Infant6To12Months:
		// Solids at the main meals, milk feeds in between.
		return mealSet{
			breakfast:      fortifiedCereal,
			morningSnack:   infantMilkFeed,
			lunch:          chickenSweetPotatoPuree,
			afternoonSnack: infantMilkFeed,
			dinner:         lentilVegetableMash,
			eveningSnack:   &infantMilkFeed,
		}
	case Toddler1To3Years:
		return mealSet{
			breakfast:      eggToastFingers,
			morningSnack:   yogurtSoftBerries,
			lunch:          turkeyMeatballs,
			afternoonSnack: cheeseCrackers,
			dinner:         salmonCakes,
			eveningSnack:   &bedtimeMilk,
		}
	default:
		return mealSet{
			breakfast:      bananaPancakes,
			morningSnack:   appleCheese,
			lunch:          turkeyWrap,
			afternoonSnack: kidHummusVeggies,
			dinner:         chickenStirFryRice,
		}
	}
}

func mealsFor(p UserProfile) mealSet {
	switch p.ProfileType {
	case Pregnant:
		return pregnancyMeals()
	case Breastfeeding:
		return breastfeedingMeals()
	case Child:
		return childMeals(p.ChildAge)
	default:
		return planningMeals()
	}
}

// day materializes a set into the meal slots of one day. Every slot gets its
// own copy of the template.
func (s mealSet) day() Meals {
	m := Meals{
		Breakfast:      s.breakfast.clone(),
		MorningSnack:   s.morningSnack.clone(),
		Lunch:          s.lunch.clone(),
		AfternoonSnack: s.afternoonSnack.clone(),
		Dinner:         s.dinner.clone(),
	}
	if s.eveningSnack != nil {
		evening := s.eveningSnack.clone()
		m.EveningSnack = &evening
	}
	return m
}

func (m Meal) clone() Meal {
	m.KeyNutrients = slices.Clone(m.KeyNutrients)
	m.Ingredients = slices.Clone(m.Ingredients)
	m.Alternatives = slices.Clone(m.Alternatives)
	return m
}

// Catalog returns every meal template keyed by slug.
func Catalog() map[string]Meal {
	sets := []mealSet{
		pregnancyMeals(),
		breastfeedingMeals(),
		planningMeals(),
		childMeals(Infant0To6Months),
		childMeals(Infant6To12Months),
		childMeals(Toddler1To3Years),
		childMeals(Child4To8Years),
	}

	out := make(map[string]Meal)
	for _, s := range sets {
		for _, m := range s.slots() {
			if _, ok := out[m.Slug]; !ok {
				out[m.Slug] = m.clone()
			}
		}
	}
	return out
}

// CatalogSlugs returns the template slugs in sorted order.
func CatalogSlugs() []string {
	catalog := Catalog()
	slugs := make([]string, 0, len(catalog))
	for slug := range catalog {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

func (s mealSet) slots() []Meal {
	out := []Meal{s.breakfast, s.morningSnack, s.lunch, s.afternoonSnack, s.dinner}
	if s.eveningSnack != nil {
		out = append(out, *s.eveningSnack)
	}
	return out
}
