package response

import (
	"time"

	"nest_configurator/internal/domain/entities"
)

type CartItemResponse struct {
	ID         string              `json:"id"`
	SessionID  string              `json:"session_id"`
	Selections []SelectionResponse `json:"selections"`
	AddOns     []SelectionResponse `json:"add_ons"`
	Price      PriceResponse       `json:"price"`
	Status     string              `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

func FromCartItem(c entities.CartItem) CartItemResponse {
	selections := make([]SelectionResponse, 0, len(c.Configuration.Selections))
	for _, cat := range entities.Categories {
		if sel, ok := c.Configuration.Selections[cat]; ok {
			selections = append(selections, FromSelection(sel))
		}
	}
	addOns := make([]SelectionResponse, 0, len(c.Configuration.AddOns))
	for _, sel := range c.Configuration.SortedAddOns() {
		addOns = append(addOns, FromSelection(sel))
	}
	return CartItemResponse{
		ID:         c.ID,
		SessionID:  c.SessionID,
		Selections: selections,
		AddOns:     addOns,
		Price: PriceResponse{
			Total:       c.Price,
			BasePrice:   c.Breakdown.BasePrice,
			Lines:       FromBreakdown(c.Breakdown),
			MonthlyRate: c.MonthlyRate,
		},
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
