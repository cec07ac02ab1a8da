package dietplan

import "slices"

var baseRecommendations = []string{
	"Stay hydrated! Aim for at least 8-10 glasses of water daily.",
	"Eat small, frequent meals every 3-4 hours to keep energy steady.",
	"Prioritize whole, minimally processed foods.",
	"Talk to your healthcare provider before starting any new supplement.",
}

// Pregnancy and preconception share one block.
var pregnancyRecommendations = []string{
	"Take a daily prenatal vitamin with at least 400 mcg of folic acid.",
	"Pair iron-rich foods with vitamin C sources to improve absorption.",
	"Limit caffeine to 200 mg per day (about one 12 oz cup of coffee).",
	"Choose low-mercury fish such as salmon, sardines and trout 2-3 times a week.",
}

var breastfeedingRecommendations = []string{
	"Drink a glass of water every time you nurse.",
	"Keep nutrient-dense snacks within reach during feeding sessions.",
	"Continue your prenatal vitamin while breastfeeding.",
	"Wait 2-3 hours after an alcoholic drink before nursing, or avoid alcohol entirely.",
}

var childRecommendations = []string{
	"Offer new foods repeatedly; it can take 10-15 exposures before a food is accepted.",
	"Follow your child's hunger and fullness cues rather than insisting on a clean plate.",
	"Avoid added sugar and honey before 12 months, and limit juice afterwards.",
	"Eat together as a family to model healthy eating habits.",
}

var foodSafetyGuidelines = []string{
	"Avoid raw or undercooked meat, poultry, eggs and seafood.",
	"Avoid high-mercury fish such as shark, swordfish, king mackerel and tilefish.",
	"Choose only pasteurized milk, cheese and juice.",
	"Heat deli meats and hot dogs until steaming before eating.",
	"Avoid refrigerated smoked seafood unless cooked in a dish.",
	"Wash all fruits and vegetables thoroughly before eating.",
	"Avoid alcohol completely.",
	"Keep your refrigerator at 40°F (4°C) or below and reheat leftovers to 165°F (74°C).",
}

var breastfeedingSupport = []string{
	"Nurse on demand, usually 8-12 times in 24 hours in the early weeks.",
	"Make sure your baby has a deep latch to protect your nipples and milk supply.",
	"Oats, brewer's yeast and flaxseed are traditional lactation-supporting foods.",
	"Rest whenever your baby sleeps; fatigue can affect milk supply.",
	"Watch for fussiness after feeds that may signal sensitivity to dairy or caffeine in your diet.",
	"Count 6 or more wet diapers a day as a sign your baby is getting enough milk.",
	"Reach out to a lactation consultant if feeding is painful or weight gain is slow.",
	"Store expressed milk for up to 4 hours at room temperature or 4 days in the refrigerator.",
}

var infantFeedingTips = []string{
	"Feed breast milk or iron-fortified formula only; no water, juice or solids yet.",
	"Feed on demand, watching for early hunger cues such as rooting and hand-sucking.",
	"Give 400 IU of vitamin D drops daily if breastfeeding.",
	"Burp your baby during and after feeds.",
}

var olderInfantFeedingTips = []string{
	"Start solids around 6 months when your baby can sit up and shows interest in food.",
	"Make iron-rich foods such as fortified cereal and pureed meat the first foods.",
	"Introduce common allergens like peanut and egg early, one at a time.",
	"Breast milk or formula remains the main source of nutrition until 12 months.",
}

var toddlerFeedingTips = []string{
	"Offer 3 meals and 2-3 snacks at regular times each day.",
	"Limit cow's milk to 16-24 oz per day so it doesn't crowd out iron-rich foods.",
	"Cut round foods like grapes and hot dogs lengthwise to prevent choking.",
	"Let your toddler self-feed to build motor skills and independence.",
}

var schoolChildFeedingTips = []string{
	"Involve your child in shopping and cooking to build interest in healthy foods.",
	"Pack lunches with a protein, a whole grain, a fruit and a vegetable.",
	"Offer water and milk instead of sugary drinks.",
	"Keep cut fruit and vegetables visible and ready for after-school snacks.",
}

// Recommendations returns the base advice followed by the branch block.
func Recommendations(p UserProfile) []string {
	out := slices.Clone(baseRecommendations)
	switch p.ProfileType {
	case Pregnant, Planning:
		out = append(out, pregnancyRecommendations...)
	case Breastfeeding:
		out = append(out, breastfeedingRecommendations...)
	case Child:
		out = append(out, childRecommendations...)
	}
	return out
}

// advisory returns the one optional advisory block a profile gets. Exactly
// one of the three results is non-nil.
func advisory(p UserProfile) (safety, support, childTips []string) {
	switch p.ProfileType {
	case Pregnant, Planning:
		return slices.Clone(foodSafetyGuidelines), nil, nil
	case Breastfeeding:
		return nil, slices.Clone(breastfeedingSupport), nil
	case Child:
		switch p.ChildAge {
		case Infant0To6Months:
			return nil, nil, slices.Clone(infantFeedingTips)
		case Infant6To12Months:
			return nil, nil, slices.Clone(olderInfantFeedingTips)
		case Toddler1To3Years:
			return nil, nil, slices.Clone(toddlerFeedingTips)
		default:
			return nil, nil, slices.Clone(schoolChildFeedingTips)
		}
	}
	return nil, nil, nil
}
