package pricing

import (
	"math"
	"strconv"
	"sync/atomic"

	"nest_configurator/internal/domain/cache"
	"nest_configurator/internal/domain/entities"
)

// Engine prices configurations against a Table. Every result is a pure
// function of its inputs and the table, so results are memoized by key and the
// caches are only cleared wholesale (on reset or when the table is replaced).
type Engine struct {
	table      atomic.Pointer[Table]
	generation atomic.Int64

	prices  *cache.Memo[int64]
	options *cache.Memo[entities.OptionPrice]
}

// NewEngine creates an engine over t.
func NewEngine(t *Table) *Engine {
	e := &Engine{
		prices:  cache.NewMemo[int64]("price"),
		options: cache.NewMemo[entities.OptionPrice]("option_price"),
	}
	e.table.Store(t)
	return e
}

// Table returns the table currently in use.
func (e *Engine) Table() *Table {
	return e.table.Load()
}

// ReplaceTable swaps the table. Keys carry a generation, so lookups still in
// flight against the old table cannot be served to new callers.
func (e *Engine) ReplaceTable(t *Table) {
	e.table.Store(t)
	e.generation.Add(1)
	e.ClearCaches()
}

// ClearCaches drops every memoized price and option label.
func (e *Engine) ClearCaches() {
	e.prices.Clear()
	e.options.Clear()
}

// CacheSize returns the number of memoized combination prices and option labels.
func (e *Engine) CacheSize() (prices, options int) {
	return e.prices.Len(), e.options.Len()
}

func (e *Engine) gen() string {
	return strconv.FormatInt(e.generation.Load(), 10)
}

// CombinationPrice returns basePrice + moduleCount(nestSize) * pricePerModule.
// Unknown combinations fall back to the default combination.
func (e *Engine) CombinationPrice(nestSize, envelope, lining, flooring string) int64 {
	nestSize = cache.Sanitize(nestSize)
	envelope = cache.Sanitize(envelope)
	lining = cache.Sanitize(lining)
	flooring = cache.Sanitize(flooring)

	key := cache.Key("combo", e.gen(), nestSize, envelope, lining, flooring)
	return e.prices.GetOrCompute(key, func() int64 {
		t := e.Table()
		c, _ := t.Combo(ComboKey(envelope, lining, flooring))
		return c.BasePrice + t.ModuleCount(nestSize)*c.PricePerModule
	})
}

// TotalPrice prices the configuration. It is always equal to the breakdown total.
func (e *Engine) TotalPrice(cfg entities.Configuration) int64 {
	return e.Breakdown(cfg).TotalPrice
}

// Breakdown itemizes the configuration price: the core combination price as
// base plus one line per priced add-on category.
//
// Without a nest size nothing is priced. With a nest size but only some of the
// core categories, the default combination price is extended by the upgrade
// of every selected core category (progressive pricing).
func (e *Engine) Breakdown(cfg entities.Configuration) entities.Breakdown {
	nest, ok := cfg.Get(entities.CategoryNestSize)
	if !ok {
		return entities.Breakdown{}
	}
	t := e.Table()

	b := entities.Breakdown{BasePrice: e.basePrice(t, nest.Value, cfg)}
	for _, cat := range lineCategories {
		s, ok := cfg.Get(cat)
		if !ok {
			continue
		}
		if l, ok := line(t, nest.Value, s); ok {
			b.Lines = append(b.Lines, l)
		}
	}
	for _, s := range cfg.SortedAddOns() {
		if l, ok := line(t, nest.Value, s); ok {
			b.Lines = append(b.Lines, l)
		}
	}
	b.TotalPrice = b.BasePrice + b.LinesTotal()
	return b
}

func (e *Engine) basePrice(t *Table, nestSize string, cfg entities.Configuration) int64 {
	present := 0
	for _, cat := range entities.CoreCategories {
		if cfg.Has(cat) {
			present++
		}
	}

	if present == len(entities.CoreCategories) {
		return e.CombinationPrice(nestSize,
			cfg.Value(entities.CategoryEnvelope),
			cfg.Value(entities.CategoryInteriorLining),
			cfg.Value(entities.CategoryFlooring))
	}

	price := e.defaultComboPrice(t, nestSize)
	for _, cat := range entities.CoreCategories {
		if s, ok := cfg.Get(cat); ok {
			price += e.categoryUpgrade(t, nestSize, cat, s.Value)
		}
	}
	return price
}

func (e *Engine) defaultComboPrice(t *Table, nestSize string) int64 {
	d := t.DefaultCombination
	return e.CombinationPrice(nestSize,
		d[entities.CategoryEnvelope], d[entities.CategoryInteriorLining], d[entities.CategoryFlooring])
}

// categoryUpgrade is the price of swapping one core category of the default
// combination for value, at nestSize.
func (e *Engine) categoryUpgrade(t *Table, nestSize string, cat entities.Category, value string) int64 {
	combo := defaultCombo(t)
	combo[cat] = value
	return e.comboPrice(nestSize, combo) - e.defaultComboPrice(t, nestSize)
}

type combo map[entities.Category]string

func defaultCombo(t *Table) combo {
	c := make(combo, len(entities.CoreCategories))
	for _, cat := range entities.CoreCategories {
		c[cat] = t.DefaultCombination[cat]
	}
	return c
}

// currentCombo fills the categories missing from cfg with the defaults.
func currentCombo(t *Table, cfg entities.Configuration) combo {
	c := defaultCombo(t)
	for _, cat := range entities.CoreCategories {
		if v := cfg.Value(cat); v != "" {
			c[cat] = v
		}
	}
	return c
}

func (e *Engine) comboPrice(nestSize string, c combo) int64 {
	return e.CombinationPrice(nestSize,
		c[entities.CategoryEnvelope], c[entities.CategoryInteriorLining], c[entities.CategoryFlooring])
}

// UpgradePrice returns priceOf(current with next) - priceOf(current), scaled
// to nestSize. Negative values are discounts.
func (e *Engine) UpgradePrice(nestSize string, cfg entities.Configuration, next entities.Selection) int64 {
	t := e.Table()
	switch next.Category.Kind() {
	case entities.RuleModule:
		c := currentCombo(t, cfg)
		return e.comboPrice(next.Value, c) - e.comboPrice(nestSize, c)
	case entities.RuleCombination:
		c := currentCombo(t, cfg)
		swapped := make(combo, len(c))
		for k, v := range c {
			swapped[k] = v
		}
		swapped[next.Category] = next.Value
		return e.comboPrice(nestSize, swapped) - e.comboPrice(nestSize, c)
	default:
		nextLine, ok := line(t, nestSize, next)
		if !ok {
			return 0
		}
		var current entities.Selection
		var has bool
		if next.Category == entities.CategoryAddOn {
			current, has = cfg.AddOns[next.Value]
		} else {
			current, has = cfg.Get(next.Category)
		}
		if !has {
			return nextLine.Amount
		}
		currentLine, _ := line(t, nestSize, current)
		return nextLine.Amount - currentLine.Amount
	}
}

// OptionDisplayPrice labels optionID relative to what is selected in cat.
//
// Rules, in order: price on request at this nest size; the selected option;
// relative to the category default when nothing is selected; relative to the
// selected option otherwise.
func (e *Engine) OptionDisplayPrice(nestSize string, cfg entities.Configuration, cat entities.Category, optionID string) entities.OptionPrice {
	nestSize = cache.Sanitize(nestSize)
	optionID = cache.Sanitize(optionID)
	selected := cache.Sanitize(selectedValue(cfg, cat, optionID))

	key := cache.Key("option", e.gen(), string(cat), optionID, nestSize, selected,
		cfg.Value(entities.CategoryEnvelope),
		cfg.Value(entities.CategoryInteriorLining),
		cfg.Value(entities.CategoryFlooring))

	return e.options.GetOrCompute(key, func() entities.OptionPrice {
		t := e.Table()
		if t.IsPriceOnRequest(cat, optionID, nestSize) {
			return entities.OptionPrice{Kind: entities.PriceKindPriceOnRequest}
		}
		if selected != "" && selected == optionID {
			return entities.OptionPrice{Kind: entities.PriceKindSelected}
		}

		var defaultAbs int64
		if d, ok := t.DefaultOption(cat); ok {
			defaultAbs = e.absolutePrice(t, nestSize, cfg, cat, d.ID)
		}
		relative := e.absolutePrice(t, nestSize, cfg, cat, optionID) - defaultAbs

		if selected == "" {
			if relative == 0 {
				return entities.OptionPrice{Kind: entities.PriceKindIncluded}
			}
			return signedPrice(relative)
		}

		diff := relative - (e.absolutePrice(t, nestSize, cfg, cat, selected) - defaultAbs)
		if diff == 0 {
			return entities.OptionPrice{Kind: entities.PriceKindUpgrade}
		}
		return signedPrice(diff)
	})
}

func signedPrice(v int64) entities.OptionPrice {
	if v < 0 {
		return entities.OptionPrice{Kind: entities.PriceKindDiscount, Amount: -v}
	}
	return entities.OptionPrice{Kind: entities.PriceKindUpgrade, Amount: v}
}

// selectedValue is the option selected in cat; for add-ons, optionID if it is toggled on.
func selectedValue(cfg entities.Configuration, cat entities.Category, optionID string) string {
	if cat == entities.CategoryAddOn {
		if _, ok := cfg.AddOns[optionID]; ok {
			return optionID
		}
		return ""
	}
	return cfg.Value(cat)
}

// absolutePrice is the comparable price of one option. Price on request counts as 0.
func (e *Engine) absolutePrice(t *Table, nestSize string, cfg entities.Configuration, cat entities.Category, id string) int64 {
	if p, ok := t.SizedPrice(cat, id, nestSize); ok {
		if p == t.PriceOnRequest {
			return 0
		}
		return p
	}

	switch cat.Kind() {
	case entities.RuleModule:
		return e.comboPrice(id, currentCombo(t, cfg))
	case entities.RuleCombination:
		c := currentCombo(t, cfg)
		c[cat] = id
		return e.comboPrice(nestSize, c)
	default:
		if o, ok := t.Option(cat, id); ok {
			return o.Price
		}
		return 0
	}
}

// MonthlyPayment amortizes total over the table's financing term (annuity),
// rounded to whole units.
func (e *Engine) MonthlyPayment(total int64) int64 {
	f := e.Table().Financing
	if total <= 0 || f.TermMonths <= 0 {
		return 0
	}
	n := float64(f.TermMonths)
	r := f.AnnualInterestRate / 12
	if r == 0 {
		return roundAmount(float64(total) / n)
	}
	return roundAmount(float64(total) * r / (1 - math.Pow(1+r, -n)))
}
