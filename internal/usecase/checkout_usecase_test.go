package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"nest_configurator/internal/domain/entities"
	"nest_configurator/internal/infrastructure/clock"
	mock_interfaces "nest_configurator/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newCheckoutFixture(t *testing.T) (*CheckoutUseCase, *SessionRegistry, *mock_interfaces.MockICartRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockICartRepository(ctrl)
	clk := clock.NewManual(testStart)
	registry := NewSessionRegistry(testDeps(clk, newRecordingSync()), nil, RegistryOptions{})
	return NewCheckoutUseCase(registry, repo, clk), registry, repo
}

func TestCheckoutUseCase_Checkout(t *testing.T) {
	t.Run("fresh session cannot be checked out", func(t *testing.T) {
		uc, registry, _ := newCheckoutFixture(t)
		live := registry.Create(context.Background())

		_, err := uc.Checkout(context.Background(), live.Session.ID())
		if !errors.Is(err, ErrNotInteracted) {
			t.Fatalf("expected ErrNotInteracted, got %v", err)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		uc, _, _ := newCheckoutFixture(t)
		_, err := uc.Checkout(context.Background(), "missing")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("registry not configured", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, clock.System{})
		_, err := uc.Checkout(context.Background(), "s1")
		if !errors.Is(err, ErrSessionsUnavailable) {
			t.Fatalf("expected ErrSessionsUnavailable, got %v", err)
		}
	})

	t.Run("snapshot is copied", func(t *testing.T) {
		uc, registry, repo := newCheckoutFixture(t)
		ctx := context.Background()
		live := registry.Create(ctx)
		table := live.Session.deps.Engine.Table()
		if _, err := live.Session.UpdateSelection(ctx, mustSelection(table, entities.CategoryEnvelope, "holzlattung")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, item entities.CartItem) (entities.CartItem, error) {
			return item, nil
		})

		item, err := uc.Checkout(ctx, live.Session.ID())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if item.ID == "" || item.SessionID != live.Session.ID() {
			t.Fatalf("unexpected ids: %+v", item)
		}
		if item.Price != 165100 || item.Configuration.TotalPrice != 165100 || item.Breakdown.TotalPrice != 165100 {
			t.Fatalf("expected price 165100, got %d", item.Price)
		}
		if item.MonthlyRate <= 0 {
			t.Fatalf("expected a monthly rate, got %d", item.MonthlyRate)
		}
		if item.Status != entities.CartItemStatusPending {
			t.Fatalf("expected pending, got %s", item.Status)
		}
		if !item.CreatedAt.Equal(testStart) {
			t.Fatalf("expected created at %v, got %v", testStart, item.CreatedAt)
		}

		if _, err := live.Session.UpdateSelection(ctx, mustSelection(table, entities.CategoryEnvelope, "fassadenplatten_weiss")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := item.Configuration.Value(entities.CategoryEnvelope); got != "holzlattung" {
			t.Fatalf("cart item changed with the session: %s", got)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		uc, registry, repo := newCheckoutFixture(t)
		ctx := context.Background()
		live := registry.Create(ctx)
		if _, err := live.Session.RemoveSelection(ctx, entities.CategorySolar); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.CartItem{}, errors.New("db"))

		_, err := uc.Checkout(ctx, live.Session.ID())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestCheckoutUseCase_GetCartItem(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc, _, _ := newCheckoutFixture(t)
		_, err := uc.GetCartItem(context.Background(), " ")
		if !errors.Is(err, ErrInvalidCartItemID) {
			t.Fatalf("expected ErrInvalidCartItemID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, _, repo := newCheckoutFixture(t)
		repo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.CartItem{}, nil)

		_, err := uc.GetCartItem(context.Background(), "c1")
		if !errors.Is(err, ErrCartItemNotFound) {
			t.Fatalf("expected ErrCartItemNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		uc, _, repo := newCheckoutFixture(t)
		repo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.CartItem{ID: "c1"}, nil)

		item, err := uc.GetCartItem(context.Background(), "c1")
		if err != nil || item.ID != "c1" {
			t.Fatalf("expected c1, got %+v, %v", item, err)
		}
	})
}

func TestCheckoutUseCase_CancelCartItem(t *testing.T) {
	t.Run("not pending", func(t *testing.T) {
		uc, _, repo := newCheckoutFixture(t)
		repo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.CartItem{ID: "c1", Status: entities.CartItemStatusDeposit}, nil)

		_, err := uc.CancelCartItem(context.Background(), "c1")
		if !errors.Is(err, ErrCartItemNotPending) {
			t.Fatalf("expected ErrCartItemNotPending, got %v", err)
		}
	})

	t.Run("vanished while updating", func(t *testing.T) {
		uc, _, repo := newCheckoutFixture(t)
		repo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.CartItem{ID: "c1", Status: entities.CartItemStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "c1", entities.CartItemStatusCanceled).Return(entities.CartItem{}, nil)

		_, err := uc.CancelCartItem(context.Background(), "c1")
		if !errors.Is(err, ErrCartItemNotFound) {
			t.Fatalf("expected ErrCartItemNotFound, got %v", err)
		}
	})

	t.Run("canceled", func(t *testing.T) {
		uc, _, repo := newCheckoutFixture(t)
		repo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.CartItem{ID: "c1", Status: entities.CartItemStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "c1", entities.CartItemStatusCanceled).
			Return(entities.CartItem{ID: "c1", Status: entities.CartItemStatusCanceled, UpdatedAt: time.Now()}, nil)

		item, err := uc.CancelCartItem(context.Background(), "c1")
		if err != nil || item.Status != entities.CartItemStatusCanceled {
			t.Fatalf("expected canceled item, got %+v, %v", item, err)
		}
	})
}
