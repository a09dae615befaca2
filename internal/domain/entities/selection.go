package entities

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Category identifies one configurable aspect of a nest.
type Category string

const (
	CategoryNestSize        Category = "nest-size"
	CategoryEnvelope        Category = "envelope-material"
	CategoryInteriorLining  Category = "interior-lining"
	CategoryFlooring        Category = "flooring"
	CategoryExposurePackage Category = "exposure-package"
	CategorySolar           Category = "solar"
	CategoryWindows         Category = "windows"
	CategoryPlanningPackage Category = "planning-package"
	CategoryAddOn           Category = "add-on"
)

// RuleKind tags the pricing rule a category is priced with.
type RuleKind int

const (
	RuleUnknown RuleKind = iota
	// RuleModule scales the combination price by a module count.
	RuleModule
	// RuleCombination participates in the envelope-lining-flooring key.
	RuleCombination
	// RulePerUnit multiplies the unit price by Quantity.
	RulePerUnit
	// RulePerArea multiplies the unit price by AreaUnits.
	RulePerArea
	// RuleSizedFlat is a flat price that depends on the nest size.
	RuleSizedFlat
	// RuleFlat is a flat price.
	RuleFlat
)

var categoryKinds = map[Category]RuleKind{
	CategoryNestSize:        RuleModule,
	CategoryEnvelope:        RuleCombination,
	CategoryInteriorLining:  RuleCombination,
	CategoryFlooring:        RuleCombination,
	CategoryExposurePackage: RuleSizedFlat,
	CategorySolar:           RulePerUnit,
	CategoryWindows:         RulePerArea,
	CategoryPlanningPackage: RuleFlat,
	CategoryAddOn:           RuleFlat,
}

// Categories lists every selectable category in display order.
var Categories = []Category{
	CategoryNestSize,
	CategoryEnvelope,
	CategoryInteriorLining,
	CategoryFlooring,
	CategoryExposurePackage,
	CategorySolar,
	CategoryWindows,
	CategoryPlanningPackage,
	CategoryAddOn,
}

// CoreCategories form the combination key, in key order.
var CoreCategories = []Category{CategoryEnvelope, CategoryInteriorLining, CategoryFlooring}

// Kind returns the pricing rule tag for c, or RuleUnknown.
func (c Category) Kind() RuleKind {
	return categoryKinds[c]
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c.Kind() != RuleUnknown
}

// ParseCategory trims and validates a category coming from an untrusted source.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.TrimSpace(raw))
	if !c.Valid() {
		return "", &ValidationError{Field: "category", Reason: fmt.Sprintf("unknown category %q", raw)}
	}
	return c, nil
}

// Bounds for quantity and area selections. The maximums keep every line
// amount well inside int64.
const (
	MinSolarQuantity  = 1
	MaxSolarQuantity  = 1000
	MinWindowAreaUnit = 0.5
	MaxWindowAreaUnit = 10000.0
)

// ErrInvalidSelection is matched by every ValidationError.
var ErrInvalidSelection = errors.New("invalid selection")

// ValidationError describes why a selection was rejected before any mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid selection: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidSelection
}

// Selection is one chosen option for one category.
//
// Price is in whole currency units. For RulePerUnit and RulePerArea categories
// it is the unit price and Quantity / AreaUnits carry the multiplier.
type Selection struct {
	Category  Category `json:"category"`
	Value     string   `json:"value"`
	Name      string   `json:"name"`
	Price     int64    `json:"price"`
	Quantity  *int     `json:"quantity,omitempty"`
	AreaUnits *float64 `json:"area_units,omitempty"`
}

// Validate checks the selection shape and category-specific minimums.
func (s Selection) Validate() error {
	if !s.Category.Valid() {
		return &ValidationError{Field: "category", Reason: fmt.Sprintf("unknown category %q", s.Category)}
	}
	if strings.TrimSpace(s.Value) == "" {
		return &ValidationError{Field: "value", Reason: "must not be empty"}
	}
	if strings.TrimSpace(s.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if s.Price < 0 {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if s.Quantity != nil && *s.Quantity < 0 {
		return &ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	if s.AreaUnits != nil && (math.IsNaN(*s.AreaUnits) || math.IsInf(*s.AreaUnits, 0)) {
		return &ValidationError{Field: "area_units", Reason: "must be a finite number"}
	}
	if s.AreaUnits != nil && *s.AreaUnits < 0 {
		return &ValidationError{Field: "area_units", Reason: "must not be negative"}
	}

	switch s.Category.Kind() {
	case RulePerUnit:
		if s.Quantity == nil || *s.Quantity < MinSolarQuantity {
			return &ValidationError{Field: "quantity", Reason: fmt.Sprintf("must be at least %d", MinSolarQuantity)}
		}
		if *s.Quantity > MaxSolarQuantity {
			return &ValidationError{Field: "quantity", Reason: fmt.Sprintf("must be at most %d", MaxSolarQuantity)}
		}
	case RulePerArea:
		if s.AreaUnits == nil || *s.AreaUnits < MinWindowAreaUnit {
			return &ValidationError{Field: "area_units", Reason: fmt.Sprintf("must be at least %.1f", MinWindowAreaUnit)}
		}
		if *s.AreaUnits > MaxWindowAreaUnit {
			return &ValidationError{Field: "area_units", Reason: fmt.Sprintf("must be at most %.0f", MaxWindowAreaUnit)}
		}
	}
	return nil
}

// Multiplier returns the quantity or area factor, 1 for categories priced flat.
func (s Selection) Multiplier() float64 {
	switch s.Category.Kind() {
	case RulePerUnit:
		if s.Quantity == nil {
			return 0
		}
		return float64(*s.Quantity)
	case RulePerArea:
		if s.AreaUnits == nil {
			return 0
		}
		return *s.AreaUnits
	default:
		return 1
	}
}

// Clone returns a deep copy; the multiplier pointers are not shared.
func (s Selection) Clone() Selection {
	out := s
	if s.Quantity != nil {
		q := *s.Quantity
		out.Quantity = &q
	}
	if s.AreaUnits != nil {
		a := *s.AreaUnits
		out.AreaUnits = &a
	}
	return out
}

// IntPtr and FloatPtr build optional multipliers.
func IntPtr(v int) *int { return &v }

func FloatPtr(v float64) *float64 { return &v }
