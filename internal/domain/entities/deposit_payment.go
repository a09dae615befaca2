package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the deposit payment outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// DepositPayment is the reservation deposit paid for a cart item.
//
// MercadoPago payload:
//   - ProviderPayloadRaw keeps the original provider body for traceability.
//   - ProviderPayload is the parsed representation, useful for debugging.
type DepositPayment struct {
	ID         string        `json:"id"`
	CartItemID string        `json:"cart_item_id"`
	Amount     int64         `json:"amount"`
	Date       time.Time     `json:"date"`
	Status     PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
