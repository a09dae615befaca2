package entities

import "time"

// CartItemStatus represents the lifecycle of a configured nest in the cart.
type CartItemStatus string

const (
	CartItemStatusPending  CartItemStatus = "pending"
	CartItemStatusDeposit  CartItemStatus = "deposit_paid"
	CartItemStatusCanceled CartItemStatus = "canceled"
)

// CartItem is the snapshot handed to the cart when the user proceeds to checkout.
//
// Domain notes:
//   - Configuration is a copy; the cart never feeds prices back into a session.
//   - Price is the authoritative total at checkout time, never the zero price of
//     a session that was not interacted with.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (session_id-index): session_id
type CartItem struct {
	ID            string         `json:"id"`
	SessionID     string         `json:"session_id"`
	Configuration Configuration  `json:"configuration"`
	Breakdown     Breakdown      `json:"breakdown"`
	Price         int64          `json:"price"`
	MonthlyRate   int64          `json:"monthly_rate"`
	Status        CartItemStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
