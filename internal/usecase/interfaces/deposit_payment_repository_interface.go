package interfaces

import (
	"context"

	"nest_configurator/internal/domain/entities"
)

// IDepositPaymentRepository abstracts DynamoDB persistence for DepositPayment.
type IDepositPaymentRepository interface {
	Create(ctx context.Context, p entities.DepositPayment) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByCartItemID(ctx context.Context, cartItemID string) ([]entities.DepositPayment, error)
}
