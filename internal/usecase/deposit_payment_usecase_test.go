package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"nest_configurator/internal/domain/entities"
	"nest_configurator/internal/infrastructure/clock"
	mock_interfaces "nest_configurator/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type depositFixture struct {
	uc      *DepositPaymentUseCase
	repo    *mock_interfaces.MockIDepositPaymentRepository
	carts   *mock_interfaces.MockICartRepository
	gateway *mock_interfaces.MockIPaymentGateway
}

func newDepositFixture(t *testing.T, opts DepositOptions) depositFixture {
	ctrl := gomock.NewController(t)
	f := depositFixture{
		repo:    mock_interfaces.NewMockIDepositPaymentRepository(ctrl),
		carts:   mock_interfaces.NewMockICartRepository(ctrl),
		gateway: mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	f.uc = NewDepositPaymentUseCase(f.repo, f.carts, f.gateway, clock.NewManual(testStart), opts)
	return f
}

func pendingCartItem() entities.CartItem {
	return entities.CartItem{ID: "cart-1", Price: 165100, Status: entities.CartItemStatusPending}
}

func TestDepositPaymentUseCase_PayDeposit_Validations(t *testing.T) {
	t.Run("empty cart item id", func(t *testing.T) {
		uc := NewDepositPaymentUseCase(nil, nil, nil, clock.System{}, DepositOptions{})
		_, err := uc.PayDeposit(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidCartItemID) {
			t.Fatalf("expected ErrInvalidCartItemID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewDepositPaymentUseCase(nil, nil, nil, clock.System{}, DepositOptions{})
		_, err := uc.PayDeposit(context.Background(), "cart-1", nil)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewDepositPaymentUseCase(nil, nil, nil, clock.System{}, DepositOptions{})
		_, err := uc.PayDeposit(context.Background(), "cart-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewDepositPaymentUseCase(nil, carts, nil, clock.System{}, DepositOptions{})

		_, err := uc.PayDeposit(context.Background(), "cart-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("cart repository not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(nil, nil, gateway, clock.System{}, DepositOptions{})

		_, err := uc.PayDeposit(context.Background(), "cart-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrCartNotConfigured) {
			t.Fatalf("expected ErrCartNotConfigured, got %v", err)
		}
	})
}

func TestDepositPaymentUseCase_PayDeposit_CartChecks(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)

	t.Run("cart repo returns error", func(t *testing.T) {
		f := newDepositFixture(t, DepositOptions{})
		f.carts.EXPECT().GetByID(gomock.Any(), "cart-1").Return(entities.CartItem{}, errors.New("db"))

		_, err := f.uc.PayDeposit(context.Background(), "cart-1", payload)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("cart item not found", func(t *testing.T) {
		f := newDepositFixture(t, DepositOptions{})
		f.carts.EXPECT().GetByID(gomock.Any(), "cart-1").Return(entities.CartItem{}, nil)

		_, err := f.uc.PayDeposit(context.Background(), "cart-1", payload)
		if !errors.Is(err, ErrCartItemNotFound) {
			t.Fatalf("expected ErrCartItemNotFound, got %v", err)
		}
	})

	t.Run("cart item not pending", func(t *testing.T) {
		f := newDepositFixture(t, DepositOptions{})
		item := pendingCartItem()
		item.Status = entities.CartItemStatusCanceled
		f.carts.EXPECT().GetByID(gomock.Any(), "cart-1").Return(item, nil)

		_, err := f.uc.PayDeposit(context.Background(), "cart-1", payload)
		if !errors.Is(err, ErrCartItemNotPending) {
			t.Fatalf("expected ErrCartItemNotPending, got %v", err)
		}
	})
}

func TestDepositPaymentUseCase_PayDeposit_PayloadValidation(t *testing.T) {
	t.Run("missing payment_method_id", func(t *testing.T) {
		f := newDepositFixture(t, DepositOptions{})
		f.carts.EXPECT().GetByID(gomock.Any(), "cart-1").Return(pendingCartItem(), nil)

		_, err := f.uc.PayDeposit(context.Background(), "cart-1", json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("missing payer", func(t *testing.T) {
		f := newDepositFixture(t, DepositOptions{})
		f.carts.EXPECT().GetByID(gomock.Any(), "cart-1").Return(pendingCartItem(), nil)

		_, err := f.uc.PayDeposit(context.Background(), "cart-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("sandbox fills the payer email", func(t *testing.T) {
		f := newDepositFixture(t, DepositOptions{Sandbox: true, SandboxPayerEmail: "sandbox@test.com"})
		f.carts.EXPECT().GetByID(gomock.Any(), "cart-1").Return(pendingCartItem(), nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req json.RawMessage) (string, string, json.RawMessage, error) {
			var m map[string]any
			if err := json.Unmarshal(req, &m); err != nil {
				t.Fatalf("gateway got invalid json: %v", err)
			}
			payer := m["payer"].(map[string]any)
			if payer["email"] != "sandbox@test.com" || payer["type"] != "customer" {
				t.Fatalf("unexpected payer: %v", payer)
			}
			return "mp-1", "pending", json.RawMessage(`{"id":1}`), nil
		})
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.DepositPayment) (entities.DepositPayment, error) {
			return p, nil
		})

		if _, err := f.uc.PayDeposit(context.Background(), "cart-1", json.RawMessage(`{"payment_method_id":"pix"}`)); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("sandbox user id is swapped for its email", func(t *testing.T) {
		f := newDepositFixture(t, DepositOptions{Sandbox: true, SandboxPayerEmail: "sandbox@test.com", SandboxPayerUserID: "123"})
		f.carts.EXPECT().GetByID(gomock.Any(), "cart-1").Return(pendingCartItem(), nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req json.RawMessage) (string, string, json.RawMessage, error) {
			var m map[string]any
			_ = json.Unmarshal(req, &m)
			payer := m["payer"].(map[string]any)
			if _, ok := payer["id"]; ok || payer["email"] != "sandbox@test.com" {
				t.Fatalf("unexpected payer: %v", payer)
			}
			return "mp-1", "pending", json.RawMessage(`{}`), nil
		})
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.DepositPayment) (entities.DepositPayment, error) {
			return p, nil
		})

		if _, err := f.uc.PayDeposit(context.Background(), "cart-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"id":123}}`)); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

func TestDepositPaymentUseCase_PayDeposit_Success(t *testing.T) {
	t.Run("approved payment reserves the cart item", func(t *testing.T) {
		f := newDepositFixture(t, DepositOptions{})
		f.carts.EXPECT().GetByID(gomock.Any(), "cart-1").Return(pendingCartItem(), nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req json.RawMessage) (string, string, json.RawMessage, error) {
			var m map[string]any
			_ = json.Unmarshal(req, &m)
			if m["transaction_amount"] != float64(16510) {
				t.Fatalf("expected the deposit amount from the cart, got %v", m["transaction_amount"])
			}
			if m["external_reference"] != "cart-1" {
				t.Fatalf("expected external_reference cart-1, got %v", m["external_reference"])
			}
			return "mp-1", "approved", json.RawMessage(`{"id":1,"status":"approved"}`), nil
		})
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.DepositPayment) (entities.DepositPayment, error) {
			if p.ID != "mp-1" || p.CartItemID != "cart-1" || p.Amount != 16510 {
				t.Fatalf("unexpected payment: %+v", p)
			}
			if !p.Date.Equal(testStart) {
				t.Fatalf("expected date %v, got %v", testStart, p.Date)
			}
			if p.ProviderPayload["status"] != "approved" {
				t.Fatalf("expected parsed provider payload, got %v", p.ProviderPayload)
			}
			return p, nil
		})
		f.carts.EXPECT().UpdateStatus(gomock.Any(), "cart-1", entities.CartItemStatusDeposit).Return(entities.CartItem{ID: "cart-1"}, nil)

		p, err := f.uc.PayDeposit(context.Background(), "cart-1", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1,"payer":{"email":"x@test.com"}}`))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if p.Status != entities.PaymentStatusApproved {
			t.Fatalf("expected approved, got %s", p.Status)
		}
	})

	t.Run("pending payment leaves the cart item alone", func(t *testing.T) {
		f := newDepositFixture(t, DepositOptions{})
		f.carts.EXPECT().GetByID(gomock.Any(), "cart-1").Return(pendingCartItem(), nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-2", "in_process", json.RawMessage(`{}`), nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.DepositPayment) (entities.DepositPayment, error) {
			return p, nil
		})

		p, err := f.uc.PayDeposit(context.Background(), "cart-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"id":"42"}}`))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if p.Status != entities.PaymentStatusPending {
			t.Fatalf("expected pending, got %s", p.Status)
		}
	})

	t.Run("mock mode approves without the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		clk := mock_interfaces.NewMockIClock(ctrl)
		clk.EXPECT().Now().Return(testStart).AnyTimes()
		uc := NewDepositPaymentUseCase(repo, carts, nil, clk, DepositOptions{MockMode: true})

		carts.EXPECT().GetByID(gomock.Any(), "cart-1").Return(pendingCartItem(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.DepositPayment) (entities.DepositPayment, error) {
			return p, nil
		})
		carts.EXPECT().UpdateStatus(gomock.Any(), "cart-1", entities.CartItemStatusDeposit).Return(entities.CartItem{ID: "cart-1"}, nil)

		p, err := uc.PayDeposit(context.Background(), "cart-1", nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if p.ID == "" || p.Status != entities.PaymentStatusApproved || p.Amount != 16510 || !p.Date.Equal(testStart) {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})
}

func TestDepositPaymentUseCase_PayDeposit_Failures(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)

	t.Run("gateway errors are classified", func(t *testing.T) {
		cases := []struct {
			msg  string
			want error
		}{
			{`{"status":401,"error":"unauthorized"}`, ErrPaymentGatewayUnauthorized},
			{`{"status":400,"error":"bad_request"}`, ErrPaymentGatewayBadRequest},
			{`{"message":"Customer not found","code":2002}`, ErrPaymentGatewayCustomerNotFound},
			{`{"message":"Invalid users involved","code":2034}`, ErrPaymentGatewayInvalidUsers},
		}
		for _, tc := range cases {
			f := newDepositFixture(t, DepositOptions{})
			f.carts.EXPECT().GetByID(gomock.Any(), "cart-1").Return(pendingCartItem(), nil)
			f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(tc.msg))

			_, err := f.uc.PayDeposit(context.Background(), "cart-1", payload)
			if !errors.Is(err, tc.want) {
				t.Fatalf("%s: expected %v, got %v", tc.msg, tc.want, err)
			}
		}
	})

	t.Run("repository create fails", func(t *testing.T) {
		f := newDepositFixture(t, DepositOptions{})
		f.carts.EXPECT().GetByID(gomock.Any(), "cart-1").Return(pendingCartItem(), nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-1", "approved", json.RawMessage(`{}`), nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.DepositPayment{}, errors.New("db"))

		_, err := f.uc.PayDeposit(context.Background(), "cart-1", payload)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("reserving the cart item fails", func(t *testing.T) {
		f := newDepositFixture(t, DepositOptions{})
		f.carts.EXPECT().GetByID(gomock.Any(), "cart-1").Return(pendingCartItem(), nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-1", "approved", json.RawMessage(`{}`), nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.DepositPayment) (entities.DepositPayment, error) {
			return p, nil
		})
		f.carts.EXPECT().UpdateStatus(gomock.Any(), "cart-1", entities.CartItemStatusDeposit).Return(entities.CartItem{}, errors.New("db"))

		_, err := f.uc.PayDeposit(context.Background(), "cart-1", payload)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestDepositPaymentUseCase_DepositAmount(t *testing.T) {
	uc := NewDepositPaymentUseCase(nil, nil, nil, clock.System{}, DepositOptions{})
	if got := uc.DepositAmount(165104); got != 16510 {
		t.Fatalf("expected 16510, got %d", got)
	}
	if got := uc.DepositAmount(165105); got != 16511 {
		t.Fatalf("expected half up to 16511, got %d", got)
	}

	uc = NewDepositPaymentUseCase(nil, nil, nil, clock.System{}, DepositOptions{DepositRate: 0.25})
	if got := uc.DepositAmount(1000); got != 250 {
		t.Fatalf("expected 250, got %d", got)
	}
}

func TestPaymentStatus(t *testing.T) {
	cases := map[string]entities.PaymentStatus{
		"approved":     entities.PaymentStatusApproved,
		" Authorized ": entities.PaymentStatusApproved,
		"rejected":     entities.PaymentStatusDenied,
		"charged_back": entities.PaymentStatusDenied,
		"in_process":   entities.PaymentStatusPending,
		"":             entities.PaymentStatusPending,
	}
	for in, want := range cases {
		if got := paymentStatus(in); got != want {
			t.Fatalf("paymentStatus(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestDepositPaymentUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewDepositPaymentUseCase(nil, nil, nil, clock.System{}, DepositOptions{})
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidDepositPaymentID) {
			t.Fatalf("expected ErrInvalidDepositPaymentID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newDepositFixture(t, DepositOptions{})
		f.repo.EXPECT().GetByID(gomock.Any(), "mp-1").Return(entities.DepositPayment{}, nil)

		_, err := f.uc.GetByID(context.Background(), "mp-1")
		if !errors.Is(err, ErrDepositPaymentNotFound) {
			t.Fatalf("expected ErrDepositPaymentNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		f := newDepositFixture(t, DepositOptions{})
		f.repo.EXPECT().GetByID(gomock.Any(), "mp-1").Return(entities.DepositPayment{ID: "mp-1"}, nil)

		p, err := f.uc.GetByID(context.Background(), " mp-1 ")
		if err != nil || p.ID != "mp-1" {
			t.Fatalf("expected mp-1, got %+v, %v", p, err)
		}
	})
}

func TestDepositPaymentUseCase_ListByCartItemID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewDepositPaymentUseCase(nil, nil, nil, clock.System{}, DepositOptions{})
		_, err := uc.ListByCartItemID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidCartItemID) {
			t.Fatalf("expected ErrInvalidCartItemID, got %v", err)
		}
	})

	t.Run("delegates to the repository", func(t *testing.T) {
		f := newDepositFixture(t, DepositOptions{})
		f.repo.EXPECT().ListByCartItemID(gomock.Any(), "cart-1").Return([]entities.DepositPayment{{ID: "mp-1"}, {ID: "mp-2"}}, nil)

		list, err := f.uc.ListByCartItemID(context.Background(), "cart-1")
		if err != nil || len(list) != 2 {
			t.Fatalf("expected 2 payments, got %v, %v", list, err)
		}
	})
}
