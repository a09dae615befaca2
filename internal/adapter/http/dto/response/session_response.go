package response

import (
	"time"

	"nest_configurator/internal/domain/entities"
	"nest_configurator/internal/usecase"
)

type SelectionResponse struct {
	Category  string   `json:"category"`
	OptionID  string   `json:"option_id"`
	Name      string   `json:"name"`
	Price     int64    `json:"price"`
	Quantity  *int     `json:"quantity,omitempty"`
	AreaUnits *float64 `json:"area_units,omitempty"`
}

type PendingResponse struct {
	Selection      SelectionResponse `json:"selection"`
	EstimatedPrice int64             `json:"estimated_price"`
	IssuedAt       time.Time         `json:"issued_at"`
}

// SessionResponse is what the configurator UI renders. Price is 0 until the
// first interaction.
type SessionResponse struct {
	SessionID        string              `json:"session_id"`
	Phase            string              `json:"phase"`
	HasInteracted    bool                `json:"has_interacted"`
	Selections       []SelectionResponse `json:"selections"`
	AddOns           []SelectionResponse `json:"add_ons"`
	Price            PriceResponse       `json:"price"`
	Views            []string            `json:"views"`
	Pending          *PendingResponse    `json:"pending,omitempty"`
	SessionStartTime time.Time           `json:"session_start_time"`
	LastActivityTime time.Time           `json:"last_activity_time"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

func FromSelection(s entities.Selection) SelectionResponse {
	return SelectionResponse{
		Category:  string(s.Category),
		OptionID:  s.Value,
		Name:      s.Name,
		Price:     s.Price,
		Quantity:  s.Quantity,
		AreaUnits: s.AreaUnits,
	}
}

func FromSessionView(v usecase.SessionView) SessionResponse {
	cfg := v.Snapshot.Configuration

	selections := make([]SelectionResponse, 0, len(cfg.Selections))
	for _, cat := range entities.Categories {
		if sel, ok := cfg.Selections[cat]; ok {
			selections = append(selections, FromSelection(sel))
		}
	}
	addOns := make([]SelectionResponse, 0, len(cfg.AddOns))
	for _, sel := range cfg.SortedAddOns() {
		addOns = append(addOns, FromSelection(sel))
	}

	out := SessionResponse{
		SessionID:        cfg.SessionID,
		Phase:            string(v.Snapshot.State.Phase),
		HasInteracted:    v.Snapshot.State.HasInteracted,
		Selections:       selections,
		AddOns:           addOns,
		Price:            FromQuote(v.Quote),
		Views:            FromViews(v.Views),
		SessionStartTime: v.Snapshot.State.SessionStartTime,
		LastActivityTime: v.Snapshot.State.LastActivityTime,
		UpdatedAt:        cfg.Timestamp,
	}
	if v.Pending != nil {
		out.Pending = &PendingResponse{
			Selection:      FromSelection(v.Pending.PendingSelection),
			EstimatedPrice: v.Pending.EstimatedPrice,
			IssuedAt:       v.Pending.IssuedAt,
		}
	}
	return out
}
