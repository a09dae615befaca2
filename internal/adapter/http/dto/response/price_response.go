package response

import (
	"nest_configurator/internal/domain/entities"
	"nest_configurator/internal/domain/pricing"
	"nest_configurator/internal/domain/view"
	"nest_configurator/internal/usecase"
)

type BreakdownLineResponse struct {
	Category   string  `json:"category"`
	OptionID   string  `json:"option_id"`
	Name       string  `json:"name"`
	UnitPrice  int64   `json:"unit_price"`
	Multiplier float64 `json:"multiplier"`
	Amount     int64   `json:"amount"`
}

type PriceResponse struct {
	Total       int64                   `json:"total"`
	BasePrice   int64                   `json:"base_price"`
	Lines       []BreakdownLineResponse `json:"lines"`
	MonthlyRate int64                   `json:"monthly_rate"`
}

func FromBreakdown(b entities.Breakdown) []BreakdownLineResponse {
	lines := make([]BreakdownLineResponse, 0, len(b.Lines))
	for _, l := range b.Lines {
		lines = append(lines, BreakdownLineResponse{
			Category:   string(l.Category),
			OptionID:   l.Value,
			Name:       l.Name,
			UnitPrice:  l.UnitPrice,
			Multiplier: l.Multiplier,
			Amount:     l.Amount,
		})
	}
	return lines
}

func FromQuote(q usecase.PriceQuote) PriceResponse {
	return PriceResponse{
		Total:       q.Price,
		BasePrice:   q.Breakdown.BasePrice,
		Lines:       FromBreakdown(q.Breakdown),
		MonthlyRate: q.MonthlyRate,
	}
}

type OptionPriceResponse struct {
	Category string `json:"category"`
	OptionID string `json:"option_id"`
	Kind     string `json:"kind"`
	Amount   int64  `json:"amount,omitempty"`
}

func FromOptionPrice(category, optionID string, p entities.OptionPrice) OptionPriceResponse {
	return OptionPriceResponse{Category: category, OptionID: optionID, Kind: string(p.Kind), Amount: p.Amount}
}

type ViewsResponse struct {
	Views []string `json:"views"`
}

func FromViews(vs []view.View) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, string(v))
	}
	return out
}

type PreviewResponse struct {
	View    string `json:"view"`
	AssetID string `json:"asset_id"`
	URL     string `json:"url,omitempty"`
}

func FromPreview(p usecase.PreviewAsset) PreviewResponse {
	return PreviewResponse{View: string(p.View), AssetID: p.AssetID, URL: p.URL}
}

type CatalogOptionResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Price   int64  `json:"price"`
	Default bool   `json:"default"`
}

type CatalogCategoryResponse struct {
	Category string                  `json:"category"`
	Options  []CatalogOptionResponse `json:"options"`
}

// FromCatalog lists categories in display order, skipping empty ones.
func FromCatalog(catalog map[entities.Category][]pricing.Option) []CatalogCategoryResponse {
	out := make([]CatalogCategoryResponse, 0, len(catalog))
	for _, cat := range entities.Categories {
		opts, ok := catalog[cat]
		if !ok || len(opts) == 0 {
			continue
		}
		c := CatalogCategoryResponse{Category: string(cat), Options: make([]CatalogOptionResponse, 0, len(opts))}
		for _, o := range opts {
			c.Options = append(c.Options, CatalogOptionResponse{ID: o.ID, Name: o.Name, Price: o.Price, Default: o.Default})
		}
		out = append(out, c)
	}
	return out
}
