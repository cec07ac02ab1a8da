package dietplan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// ShoppingCategory is one named group of shopping items.
type ShoppingCategory struct {
	Name  string
	Items []string
}

// ShoppingList is an ordered list of categories. It encodes as a JSON object
// whose keys keep the list order.
type ShoppingList []ShoppingCategory

// Items returns the items of the named category, or nil.
func (l ShoppingList) Items(category string) []string {
	for _, c := range l {
		if c.Name == category {
			return c.Items
		}
	}
	return nil
}

// Categories returns the category names in order.
func (l ShoppingList) Categories() []string {
	names := make([]string, len(l))
	for i, c := range l {
		names[i] = c.Name
	}
	return names
}

// MarshalJSON implements the json.Marshaler interface for ShoppingList.
func (l ShoppingList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		items := c.Items
		if items == nil {
			items = []string{}
		}
		val, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface for ShoppingList.
func (l *ShoppingList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*l = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("shopping list: expected object, got %v", tok)
	}

	var out ShoppingList
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("shopping list: expected category name, got %v", tok)
		}
		var items []string
		if err := dec.Decode(&items); err != nil {
			return fmt.Errorf("shopping list: category %q: %w", name, err)
		}
		out = append(out, ShoppingCategory{Name: name, Items: items})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*l = out
	return nil
}

var baseShoppingList = ShoppingList{
	{Name: "fruits", Items: []string{
		"Bananas",
		"Berries (strawberries, blueberries, raspberries)",
		"Oranges",
		"Apples",
		"Avocados",
		"Mangoes",
	}},
	{Name: "vegetables", Items: []string{
		"Spinach",
		"Broccoli",
		"Sweet potatoes",
		"Carrots",
		"Bell peppers",
		"Kale",
		"Peas",
	}},
	{Name: "protein", Items: []string{
		"Eggs",
		"Chicken breast",
		"Salmon fillets",
		"Lentils",
		"Chickpeas",
		"Lean beef",
		"Tofu",
	}},
	{Name: "dairy and alternatives", Items: []string{
		"Pasteurized milk",
		"Greek yogurt",
		"Pasteurized cheese",
		"Fortified plant milk",
	}},
	{Name: "grains and starches", Items: []string{
		"Rolled oats",
		"Quinoa",
		"Brown rice",
		"Whole grain bread",
		"Whole wheat pasta",
	}},
	{Name: "healthy fats", Items: []string{
		"Olive oil",
		"Walnuts",
		"Chia seeds",
		"Ground flaxseed",
		"Almond butter",
	}},
	{Name: "pantry items", Items: []string{
		"Iodized salt",
		"Herbs and spices",
		"Low-sodium vegetable broth",
		"Canned beans (low sodium)",
	}},
}

var pregnancyFoods = ShoppingCategory{Name: "pregnancy foods", Items: []string{
	"Prenatal vitamins",
	"Ginger tea (for nausea)",
	"Fortified breakfast cereal",
	"Dried apricots",
	"Pasteurized orange juice with calcium",
}}

var lactationFoods = ShoppingCategory{Name: "lactation foods", Items: []string{
	"Steel-cut oats",
	"Brewer's yeast",
	"Fenugreek tea",
	"Fennel",
	"Sesame seeds",
}}

var babyFoods = ShoppingCategory{Name: "baby foods", Items: []string{
	"Iron-fortified infant cereal",
	"Single-ingredient vegetable purees",
	"Single-ingredient fruit purees",
	"Plain whole-milk yogurt",
	"Soft finger foods (banana, avocado)",
}}

var childFoods = ShoppingCategory{Name: "child foods", Items: []string{
	"Whole milk or fortified alternative",
	"String cheese",
	"Whole grain crackers",
	"Hummus",
	"Cherry tomatoes (halved for toddlers)",
}}

// BuildShoppingList returns the base categories followed by the one category
// for the profile branch.
func BuildShoppingList(p UserProfile) ShoppingList {
	out := make(ShoppingList, 0, len(baseShoppingList)+1)
	for _, c := range baseShoppingList {
		out = append(out, cloneCategory(c))
	}

	switch p.ProfileType {
	case Pregnant, Planning:
		out = append(out, cloneCategory(pregnancyFoods))
	case Breastfeeding:
		out = append(out, cloneCategory(lactationFoods))
	case Child:
		if p.ChildAge == Infant6To12Months {
			out = append(out, cloneCategory(babyFoods))
		} else {
			out = append(out, cloneCategory(childFoods))
		}
	}
	return out
}

func cloneCategory(c ShoppingCategory) ShoppingCategory {
	return ShoppingCategory{Name: c.Name, Items: slices.Clone(c.Items)}
}
