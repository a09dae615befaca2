package interfaces

import (
	"context"

	"nest_configurator/internal/domain/entities"
)

// ICartRepository abstracts DynamoDB persistence for CartItem.
//
// The configurator only writes snapshots into the cart; nothing read back from
// it is ever used to price a session.
type ICartRepository interface {
	Create(ctx context.Context, item entities.CartItem) (entities.CartItem, error)
	GetByID(ctx context.Context, id string) (entities.CartItem, error)
	UpdateStatus(ctx context.Context, id string, status entities.CartItemStatus) (entities.CartItem, error)
}
