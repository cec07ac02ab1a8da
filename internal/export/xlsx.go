package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"nurtureplan/internal/dietplan"
)

const (
	SheetOverview  = "Overview"
	SheetMealPlan  = "Meal Plan"
	SheetNutrients = "Nutrients"
	SheetShopping  = "Shopping List"
)

// ContentType is the MIME type of the workbook written by WritePlan.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WritePlan writes plan as an xlsx workbook to w.
func WritePlan(w io.Writer, planID string, plan *dietplan.DietPlan) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetOverview); err != nil {
		return fmt.Errorf("rename default sheet: %w", err)
	}
	for _, name := range []string{SheetMealPlan, SheetNutrients, SheetShopping} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %q: %w", name, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	writers := []func(*excelize.File, int) error{
		func(f *excelize.File, style int) error { return writeOverview(f, style, planID, plan) },
		func(f *excelize.File, style int) error { return writeMealPlan(f, style, plan) },
		func(f *excelize.File, style int) error { return writeNutrients(f, style, plan) },
		func(f *excelize.File, style int) error { return writeShoppingList(f, style, plan) },
	}
	for _, write := range writers {
		if err := write(f, header); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func writeHeader(f *excelize.File, sheet string, style, row int, titles ...interface{}) error {
	if err := setRow(f, sheet, row, titles...); err != nil {
		return err
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(titles), row)
	return f.SetCellStyle(sheet, first, last, style)
}

func writeOverview(f *excelize.File, style int, planID string, plan *dietplan.DietPlan) error {
	p := plan.UserProfile
	rows := [][]interface{}{
		{"Plan ID", planID},
		{"Profile type", string(p.ProfileType)},
		{"Pregnancy trimester", string(p.PregnancyTrimester)},
		{"Child age", string(p.ChildAge)},
		{"Age", p.Age},
		{"Height (cm)", p.Height},
		{"Weight (kg)", p.Weight},
		{"Calorie target (kcal)", plan.CalorieTarget},
		{"Protein (%)", plan.MacroBreakdown.Protein},
		{"Carbs (%)", plan.MacroBreakdown.Carbs},
		{"Fats (%)", plan.MacroBreakdown.Fats},
	}

	row := 1
	for _, values := range rows {
		if err := setRow(f, SheetOverview, row, values...); err != nil {
			return fmt.Errorf("write overview: %w", err)
		}
		row++
	}

	sections := []struct {
		title string
		items []string
	}{
		{"Recommendations", plan.Recommendations},
		{"Food safety guidelines", plan.FoodSafetyGuidelines},
		{"Breastfeeding support", plan.BreastfeedingSupport},
		{"Child feeding tips", plan.ChildFeedingTips},
	}
	for _, s := range sections {
		if len(s.items) == 0 {
			continue
		}
		row++
		if err := writeHeader(f, SheetOverview, style, row, s.title); err != nil {
			return fmt.Errorf("write overview: %w", err)
		}
		row++
		for _, item := range s.items {
			if err := setRow(f, SheetOverview, row, item); err != nil {
				return fmt.Errorf("write overview: %w", err)
			}
			row++
		}
	}

	return f.SetColWidth(SheetOverview, "A", "B", 30)
}

func writeMealPlan(f *excelize.File, style int, plan *dietplan.DietPlan) error {
	if err := writeHeader(f, SheetMealPlan, style, 1,
		"Day", "Meal", "Name", "Portions", "Calories", "Protein (g)", "Carbs (g)", "Fats (g)", "Ingredients", "Instructions"); err != nil {
		return fmt.Errorf("write meal plan: %w", err)
	}

	row := 2
	for _, day := range plan.DailyPlans {
		for _, slot := range day.Meals.Slots() {
			m := slot.Meal
			if err := setRow(f, SheetMealPlan, row, day.Day, slot.Name, m.Name, m.Portions,
				m.Calories, m.Protein, m.Carbs, m.Fats, strings.Join(m.Ingredients, ", "), m.Instructions); err != nil {
				return fmt.Errorf("write meal plan: %w", err)
			}
			row++
		}
	}

	return f.SetColWidth(SheetMealPlan, "C", "C", 35)
}

func writeNutrients(f *excelize.File, style int, plan *dietplan.DietPlan) error {
	if err := writeHeader(f, SheetNutrients, style, 1, "Nutrient", "Daily target", "Description", "Sources"); err != nil {
		return fmt.Errorf("write nutrients: %w", err)
	}
	for i, n := range plan.KeyNutrients {
		if err := setRow(f, SheetNutrients, i+2, n.Name, n.DailyTarget, n.Description, strings.Join(n.Sources, ", ")); err != nil {
			return fmt.Errorf("write nutrients: %w", err)
		}
	}
	return nil
}

func writeShoppingList(f *excelize.File, style int, plan *dietplan.DietPlan) error {
	if err := writeHeader(f, SheetShopping, style, 1, "Category", "Item"); err != nil {
		return fmt.Errorf("write shopping list: %w", err)
	}
	row := 2
	for _, category := range plan.ShoppingList {
		for _, item := range category.Items {
			if err := setRow(f, SheetShopping, row, category.Name, item); err != nil {
				return fmt.Errorf("write shopping list: %w", err)
			}
			row++
		}
	}
	return f.SetColWidth(SheetShopping, "A", "B", 25)
}
