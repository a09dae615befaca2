package response

import (
	"time"

	"nest_configurator/internal/domain/entities"
)

type DepositPaymentResponse struct {
	PaymentID  string    `json:"payment_id"`
	CartItemID string    `json:"cart_item_id"`
	Amount     int64     `json:"amount"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromDepositPayment(p entities.DepositPayment) DepositPaymentResponse {
	return DepositPaymentResponse{
		PaymentID:          p.ID,
		CartItemID:         p.CartItemID,
		Amount:             p.Amount,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromDepositPayments(ps []entities.DepositPayment) []DepositPaymentResponse {
	out := make([]DepositPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromDepositPayment(p))
	}
	return out
}
