// Package pricing holds the modular pricing table and the pure engine that
// prices configurations against it.
package pricing

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"nest_configurator/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

//go:embed default_table.yaml
var defaultTableYAML []byte

var (
	ErrEmptyTable          = errors.New("pricing table has no combinations")
	ErrMissingDefaultCombo = errors.New("pricing table default combination is not priced")
	ErrMissingDefaultSize  = errors.New("pricing table default nest size has no module count")
)

// ComboPrice is the modular price of one envelope-lining-flooring combination.
type ComboPrice struct {
	BasePrice      int64 `yaml:"base_price" json:"base_price"`
	PricePerModule int64 `yaml:"price_per_module" json:"price_per_module"`
}

// Option is one catalog entry of a category. Price is the list price used
// to build selections (unit price for quantity and area categories).
type Option struct {
	ID      string `yaml:"id" json:"id"`
	Name    string `yaml:"name" json:"name"`
	Price   int64  `yaml:"price" json:"price"`
	Default bool   `yaml:"default" json:"default"`
}

// Financing holds the amortization constants used for monthly rates.
type Financing struct {
	AnnualInterestRate float64 `yaml:"annual_interest_rate" json:"annual_interest_rate"`
	TermMonths         int     `yaml:"term_months" json:"term_months"`
}

// Table is static lookup data. It is never mutated after Validate; a reload
// produces a new Table.
type Table struct {
	Version            int                                               `yaml:"version"`
	PriceOnRequest     int64                                             `yaml:"price_on_request"`
	DefaultNestSize    string                                            `yaml:"default_nest_size"`
	DefaultCombination map[entities.Category]string                      `yaml:"default_combination"`
	ModuleCounts       map[string]int64                                  `yaml:"module_counts"`
	Financing          Financing                                         `yaml:"financing"`
	Combinations       map[string]ComboPrice                             `yaml:"combinations"`
	SizedPrices        map[entities.Category]map[string]map[string]int64 `yaml:"sized_prices"`
	Options            map[entities.Category][]Option                    `yaml:"options"`
}

// DefaultTable parses the embedded table.
func DefaultTable() (*Table, error) {
	return ParseTable(defaultTableYAML)
}

// MustDefaultTable panics if the embedded table is invalid.
func MustDefaultTable() *Table {
	t, err := DefaultTable()
	if err != nil {
		panic(fmt.Sprintf("embedded pricing table: %v", err))
	}
	return t
}

// LoadTable reads a YAML table from r.
func LoadTable(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseTable(data)
}

// LoadTableFile reads a YAML table from path.
func LoadTableFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTable(data)
}

// ParseTable decodes and validates a YAML table.
func ParseTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode pricing table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks the invariants the engine relies on for its fallbacks.
func (t *Table) Validate() error {
	if len(t.Combinations) == 0 {
		return ErrEmptyTable
	}
	if _, ok := t.Combinations[t.DefaultComboKey()]; !ok {
		return fmt.Errorf("%w: %s", ErrMissingDefaultCombo, t.DefaultComboKey())
	}
	if _, ok := t.ModuleCounts[t.DefaultNestSize]; !ok {
		return fmt.Errorf("%w: %s", ErrMissingDefaultSize, t.DefaultNestSize)
	}
	for cat := range t.Options {
		if !cat.Valid() {
			return fmt.Errorf("unknown option category %q", cat)
		}
	}
	for cat, opts := range t.Options {
		for _, o := range opts {
			if o.Price < 0 {
				return fmt.Errorf("option %s/%s: negative list price", cat, o.ID)
			}
		}
	}
	return nil
}

// ComboKey builds the combination key envelope-lining-flooring.
func ComboKey(envelope, lining, flooring string) string {
	return strings.Join([]string{envelope, lining, flooring}, "-")
}

// DefaultComboKey is the canonical fallback combination.
func (t *Table) DefaultComboKey() string {
	return ComboKey(
		t.DefaultCombination[entities.CategoryEnvelope],
		t.DefaultCombination[entities.CategoryInteriorLining],
		t.DefaultCombination[entities.CategoryFlooring],
	)
}

// ModuleCount returns the module scaling factor for a nest size.
// Unknown sizes count as the default size.
func (t *Table) ModuleCount(nestSize string) int64 {
	if n, ok := t.ModuleCounts[nestSize]; ok {
		return n
	}
	return t.ModuleCounts[t.DefaultNestSize]
}

// Combo returns the price entry for a key, falling back to the default combination.
func (t *Table) Combo(key string) (ComboPrice, bool) {
	if c, ok := t.Combinations[key]; ok {
		return c, true
	}
	return t.Combinations[t.DefaultComboKey()], false
}

// Option looks up a catalog entry.
func (t *Table) Option(cat entities.Category, id string) (Option, bool) {
	for _, o := range t.Options[cat] {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// DefaultOption returns the catalog default for a category, if it has one.
func (t *Table) DefaultOption(cat entities.Category) (Option, bool) {
	if cat == entities.CategoryNestSize {
		return t.Option(cat, t.DefaultNestSize)
	}
	if id, ok := t.DefaultCombination[cat]; ok {
		if o, found := t.Option(cat, id); found {
			return o, true
		}
		return Option{ID: id, Name: id}, true
	}
	for _, o := range t.Options[cat] {
		if o.Default {
			return o, true
		}
	}
	return Option{}, false
}

// SizedPrice returns the nest-size dependent price of an option, if the table has one.
func (t *Table) SizedPrice(cat entities.Category, id, nestSize string) (int64, bool) {
	byOption, ok := t.SizedPrices[cat]
	if !ok {
		return 0, false
	}
	bySize, ok := byOption[id]
	if !ok {
		return 0, false
	}
	p, ok := bySize[nestSize]
	return p, ok
}

// IsPriceOnRequest reports whether the option has no fixed price at nestSize.
func (t *Table) IsPriceOnRequest(cat entities.Category, id, nestSize string) bool {
	p, ok := t.SizedPrice(cat, id, nestSize)
	return ok && p == t.PriceOnRequest
}

// DefaultSelections builds the visually populated, financially inert defaults.
func (t *Table) DefaultSelections() map[entities.Category]entities.Selection {
	out := make(map[entities.Category]entities.Selection)
	for _, cat := range entities.Categories {
		if cat.Kind() == entities.RulePerUnit || cat.Kind() == entities.RulePerArea || cat == entities.CategoryAddOn {
			continue
		}
		o, ok := t.DefaultOption(cat)
		if !ok {
			continue
		}
		out[cat] = entities.Selection{Category: cat, Value: o.ID, Name: o.Name, Price: o.Price}
	}
	return out
}

// BuildSelection turns a catalog option into a selection, taking the price
// from the table rather than from the caller.
func (t *Table) BuildSelection(cat entities.Category, id string, quantity *int, areaUnits *float64) (entities.Selection, bool) {
	o, ok := t.Option(cat, id)
	if !ok {
		return entities.Selection{}, false
	}
	s := entities.Selection{Category: cat, Value: o.ID, Name: o.Name, Price: o.Price}
	switch cat.Kind() {
	case entities.RulePerUnit:
		s.Quantity = quantity
	case entities.RulePerArea:
		s.AreaUnits = areaUnits
	}
	return s, true
}
