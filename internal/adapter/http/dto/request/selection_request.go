package request

import (
	"strings"

	"nest_configurator/internal/usecase"
)

// SelectionRequest picks a catalog option. Clients never send prices.
type SelectionRequest struct {
	Category  string   `json:"category" binding:"required"`
	OptionID  string   `json:"option_id" binding:"required"`
	Quantity  *int     `json:"quantity,omitempty"`
	AreaUnits *float64 `json:"area_units,omitempty"`
}

func (r SelectionRequest) ToInput() usecase.SelectionInput {
	return usecase.SelectionInput{
		Category:  strings.TrimSpace(r.Category),
		OptionID:  strings.TrimSpace(r.OptionID),
		Quantity:  r.Quantity,
		AreaUnits: r.AreaUnits,
	}
}
