package request

import "encoding/json"

// DepositPaymentRequest is the optional envelope of the deposit route.
//
// `mp_payload` is passed through as raw JSON since Mercado Pago schemas vary
// by payment method. A bare Mercado Pago body is accepted too.
type DepositPaymentRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
