package pricing

import (
	"math"

	"nest_configurator/internal/domain/entities"
)

// lineRule prices one non-core selection: the unit price and the factor it is multiplied by.
type lineRule func(t *Table, nestSize string, s entities.Selection) (unit int64, multiplier float64)

var lineRules = map[entities.RuleKind]lineRule{
	entities.RulePerUnit:   perUnitRule,
	entities.RulePerArea:   perAreaRule,
	entities.RuleSizedFlat: sizedFlatRule,
	entities.RuleFlat:      flatRule,
}

// lineCategories are priced as breakdown lines, in breakdown order. Add-ons follow.
var lineCategories = []entities.Category{
	entities.CategoryExposurePackage,
	entities.CategorySolar,
	entities.CategoryWindows,
	entities.CategoryPlanningPackage,
}

func perUnitRule(_ *Table, _ string, s entities.Selection) (int64, float64) {
	return s.Price, s.Multiplier()
}

func perAreaRule(_ *Table, _ string, s entities.Selection) (int64, float64) {
	return s.Price, s.Multiplier()
}

func sizedFlatRule(t *Table, nestSize string, s entities.Selection) (int64, float64) {
	if p, ok := t.SizedPrice(s.Category, s.Value, nestSize); ok && p != t.PriceOnRequest {
		return p, 1
	}
	return s.Price, 1
}

func flatRule(_ *Table, _ string, s entities.Selection) (int64, float64) {
	return s.Price, 1
}

// line computes the breakdown line of s. ok is false for categories without a line rule.
func line(t *Table, nestSize string, s entities.Selection) (entities.BreakdownLine, bool) {
	rule, ok := lineRules[s.Category.Kind()]
	if !ok {
		return entities.BreakdownLine{}, false
	}
	unit, mult := rule(t, nestSize, s)
	return entities.BreakdownLine{
		Category:   s.Category,
		Value:      s.Value,
		Name:       s.Name,
		UnitPrice:  unit,
		Multiplier: mult,
		Amount:     roundAmount(float64(unit) * mult),
	}, true
}

func roundAmount(v float64) int64 {
	return int64(math.Round(v))
}
