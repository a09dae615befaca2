package usecase

import (
	"context"
	"errors"
	"strings"

	"nest_configurator/internal/domain/entities"
	"nest_configurator/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrNotInteracted       = errors.New("session has not been priced yet")
	ErrCartItemNotFound    = errors.New("cart item not found")
	ErrInvalidCartItemID   = errors.New("invalid cart item id")
	ErrCartItemNotPending  = errors.New("cart item is not pending")
	ErrCartNotConfigured   = errors.New("cart repository not configured")
	ErrSessionsUnavailable = errors.New("session registry not configured")
)

// ICheckoutUseCase hands configurations over to the cart.
//
//   - Checkout => snapshot of the session (copied configuration, new id, timestamp)
//   - GetCartItem => cart item by id
//   - CancelCartItem => pending cart item canceled
type ICheckoutUseCase interface {
	Checkout(ctx context.Context, sessionID string) (entities.CartItem, error)
	GetCartItem(ctx context.Context, id string) (entities.CartItem, error)
	CancelCartItem(ctx context.Context, id string) (entities.CartItem, error)
}

type sessionLookup interface {
	Get(id string) (*LiveSession, error)
}

type CheckoutUseCase struct {
	sessions sessionLookup
	repo     interfaces.ICartRepository
	clock    interfaces.IClock
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(sessions *SessionRegistry, repo interfaces.ICartRepository, clock interfaces.IClock) *CheckoutUseCase {
	uc := &CheckoutUseCase{repo: repo, clock: clock}
	if sessions != nil {
		uc.sessions = sessions
	}
	return uc
}

// Checkout copies the session into a new pending cart item. A session that
// was never interacted with has no price and cannot be checked out.
func (u *CheckoutUseCase) Checkout(ctx context.Context, sessionID string) (entities.CartItem, error) {
	if u.sessions == nil {
		return entities.CartItem{}, ErrSessionsUnavailable
	}
	if u.repo == nil {
		return entities.CartItem{}, ErrCartNotConfigured
	}
	live, err := u.sessions.Get(sessionID)
	if err != nil {
		return entities.CartItem{}, err
	}

	snap, quote := live.Session.Priced(ctx)
	if !snap.State.HasInteracted {
		return entities.CartItem{}, ErrNotInteracted
	}

	now := u.clock.Now().UTC()
	cfg := snap.Configuration.Clone()
	cfg.TotalPrice = quote.Price
	item := entities.CartItem{
		ID:            uuid.NewString(),
		SessionID:     live.Session.ID(),
		Configuration: cfg,
		Breakdown:     quote.Breakdown,
		Price:         quote.Price,
		MonthlyRate:   quote.MonthlyRate,
		Status:        entities.CartItemStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.repo.Create(ctx, item)
	if err != nil {
		log.Error().Err(err).Str("session_id", item.SessionID).Msg("failed to create cart item")
		return entities.CartItem{}, err
	}
	log.Info().Str("session_id", item.SessionID).Str("cart_item_id", created.ID).Int64("price", created.Price).Msg("checkout")
	return created, nil
}

func (u *CheckoutUseCase) GetCartItem(ctx context.Context, id string) (entities.CartItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CartItem{}, ErrInvalidCartItemID
	}

	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CartItem{}, err
	}
	if item.ID == "" {
		return entities.CartItem{}, ErrCartItemNotFound
	}
	return item, nil
}

func (u *CheckoutUseCase) CancelCartItem(ctx context.Context, id string) (entities.CartItem, error) {
	item, err := u.GetCartItem(ctx, id)
	if err != nil {
		return entities.CartItem{}, err
	}
	if item.Status != entities.CartItemStatusPending {
		return entities.CartItem{}, ErrCartItemNotPending
	}

	updated, err := u.repo.UpdateStatus(ctx, item.ID, entities.CartItemStatusCanceled)
	if err != nil {
		return entities.CartItem{}, err
	}
	if updated.ID == "" {
		return entities.CartItem{}, ErrCartItemNotFound
	}
	return updated, nil
}
