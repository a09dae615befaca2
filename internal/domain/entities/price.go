package entities

// PriceKind classifies how an option price is displayed relative to the current selection.
type PriceKind string

const (
	PriceKindIncluded       PriceKind = "included"
	PriceKindSelected       PriceKind = "selected"
	PriceKindUpgrade        PriceKind = "upgrade"
	PriceKindDiscount       PriceKind = "discount"
	PriceKindPriceOnRequest PriceKind = "price-on-request"
)

// OptionPrice is the relative price label of one option.
// Amount is only meaningful for upgrade and discount and is never negative.
type OptionPrice struct {
	Kind   PriceKind `json:"kind"`
	Amount int64     `json:"amount,omitempty"`
}

// BreakdownLine is the contribution of one add-on category.
type BreakdownLine struct {
	Category   Category `json:"category"`
	Value      string   `json:"value"`
	Name       string   `json:"name"`
	UnitPrice  int64    `json:"unit_price"`
	Multiplier float64  `json:"multiplier"`
	Amount     int64    `json:"amount"`
}

// Breakdown itemizes a total price: BasePrice + sum(Lines.Amount) == TotalPrice.
type Breakdown struct {
	BasePrice  int64           `json:"base_price"`
	Lines      []BreakdownLine `json:"lines"`
	TotalPrice int64           `json:"total_price"`
}

// LinesTotal sums the line amounts.
func (b Breakdown) LinesTotal() int64 {
	var sum int64
	for _, l := range b.Lines {
		sum += l.Amount
	}
	return sum
}
