package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"nest_configurator/internal/domain/entities"
	"nest_configurator/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var (
	ErrDepositPaymentNotFound         = errors.New("deposit payment not found")
	ErrInvalidDepositPaymentID        = errors.New("invalid deposit payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// DefaultDepositRate is the share of the cart price paid as reservation deposit.
const DefaultDepositRate = 0.1

// DepositOptions configure the Mercado Pago deposit flow.
type DepositOptions struct {
	// MockMode skips the gateway and approves every payment.
	MockMode    bool
	DepositRate float64
	// Sandbox is set for TEST- access tokens.
	Sandbox            bool
	SandboxPayerEmail  string
	SandboxPayerUserID string
}

// IDepositPaymentUseCase reserves a cart item by paying its deposit.
type IDepositPaymentUseCase interface {
	PayDeposit(ctx context.Context, cartItemID string, mpPayload json.RawMessage) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByCartItemID(ctx context.Context, cartItemID string) ([]entities.DepositPayment, error)
}

type DepositPaymentUseCase struct {
	repo    interfaces.IDepositPaymentRepository
	carts   interfaces.ICartRepository
	gateway interfaces.IPaymentGateway
	clock   interfaces.IClock
	opts    DepositOptions
}

var _ IDepositPaymentUseCase = (*DepositPaymentUseCase)(nil)

func NewDepositPaymentUseCase(repo interfaces.IDepositPaymentRepository, carts interfaces.ICartRepository, gateway interfaces.IPaymentGateway, clock interfaces.IClock, opts DepositOptions) *DepositPaymentUseCase {
	if opts.DepositRate <= 0 || opts.DepositRate > 1 {
		opts.DepositRate = DefaultDepositRate
	}
	return &DepositPaymentUseCase{repo: repo, carts: carts, gateway: gateway, clock: clock, opts: opts}
}

// DepositAmount is the deposit for a cart price, rounded half up.
func (u *DepositPaymentUseCase) DepositAmount(price int64) int64 {
	return int64(math.Floor(float64(price)*u.opts.DepositRate + 0.5))
}

func (u *DepositPaymentUseCase) PayDeposit(ctx context.Context, cartItemID string, mpPayload json.RawMessage) (entities.DepositPayment, error) {
	cartItemID = strings.TrimSpace(cartItemID)
	logger := log.With().Str("cart_item_id", cartItemID).Bool("mock", u.opts.MockMode).Logger()
	logger.Debug().Int("payload_len", len(mpPayload)).Msg("deposit payment start")

	if cartItemID == "" {
		return entities.DepositPayment{}, ErrInvalidCartItemID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.MockMode {
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !u.opts.MockMode {
		return entities.DepositPayment{}, ErrPaymentGatewayNotConfigured
	}
	if u.carts == nil {
		return entities.DepositPayment{}, ErrCartNotConfigured
	}

	item, err := u.carts.GetByID(ctx, cartItemID)
	if err != nil {
		logger.Error().Err(err).Msg("failed loading cart item")
		return entities.DepositPayment{}, err
	}
	if item.ID == "" {
		return entities.DepositPayment{}, ErrCartItemNotFound
	}
	if item.Status != entities.CartItemStatusPending {
		logger.Warn().Str("status", string(item.Status)).Msg("cart item not pending")
		return entities.DepositPayment{}, ErrCartItemNotPending
	}
	amount := u.DepositAmount(item.Price)

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if !u.opts.MockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}
		if !u.opts.MockMode {
			u.normalizeSandboxPayer(reqMap)
			u.ensurePayerDefaults(reqMap)
			if !hasPayer(reqMap) {
				return entities.DepositPayment{}, ErrInvalidMPPayload
			}
		}

		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = cartItemID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Deposit for nest %s", cartItemID)
		}
		// The amount always comes from the cart item.
		reqMap["transaction_amount"] = amount
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	} else {
		logger.Warn().Err(err).Msg("payload is not an object, sending as is")
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if u.opts.MockMode {
		providerPaymentID, providerStatus, providerResp, err = u.mockPayment(cartItemID, amount, mpPayload)
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		err = classifyGatewayError(err)
	}
	if err != nil {
		logger.Error().Err(err).Msg("payment gateway failed")
		return entities.DepositPayment{}, err
	}
	logger.Info().Str("provider_payment_id", providerPaymentID).Str("provider_status", providerStatus).Msg("payment gateway success")

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		logger.Warn().Err(err).Msg("provider response is not an object")
	}

	p := entities.DepositPayment{
		ID:                 providerPaymentID,
		CartItemID:         cartItemID,
		Amount:             amount,
		Date:               u.clock.Now().UTC(),
		Status:             paymentStatus(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		logger.Error().Err(err).Str("payment_id", p.ID).Msg("deposit payment create failed")
		return entities.DepositPayment{}, err
	}

	if created.Status == entities.PaymentStatusApproved {
		if _, err := u.carts.UpdateStatus(ctx, cartItemID, entities.CartItemStatusDeposit); err != nil {
			logger.Error().Err(err).Msg("failed to mark cart item as reserved")
			return entities.DepositPayment{}, err
		}
	}
	logger.Info().Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("deposit payment done")
	return created, nil
}

func (u *DepositPaymentUseCase) mockPayment(cartItemID string, amount int64, payload json.RawMessage) (string, string, json.RawMessage, error) {
	now := u.clock.Now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp := map[string]any{}
	_ = json.Unmarshal(payload, &resp)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now.Format(time.RFC3339Nano)
	resp["date_approved"] = resp["date_created"]
	if _, ok := resp["external_reference"]; !ok {
		resp["external_reference"] = cartItemID
	}
	resp["transaction_amount"] = amount
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func paymentStatus(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *DepositPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox either payer.id or payer.email may be used; fill the email
	// only when both are missing.
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	switch {
	case u.opts.SandboxPayerEmail != "":
		payer["email"] = u.opts.SandboxPayerEmail
	case u.opts.Sandbox:
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email,
// which is what the sandbox accepts.
func (u *DepositPaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	if !u.opts.Sandbox || u.opts.SandboxPayerUserID == "" || u.opts.SandboxPayerEmail == "" {
		return
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != u.opts.SandboxPayerUserID {
		return
	}
	payer["email"] = u.opts.SandboxPayerEmail
	delete(payer, "id")
	log.Debug().Msg("mapped sandbox payer user id to payer email")
}

func classifyGatewayError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, `"code":2002`):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, `"code":2034`):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, `"error":"unauthorized"`) || strings.Contains(msg, `"status":401`):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, `"error":"bad_request"`) || strings.Contains(msg, `"status":400`):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}

func (u *DepositPaymentUseCase) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DepositPayment{}, ErrInvalidDepositPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if p.ID == "" {
		return entities.DepositPayment{}, ErrDepositPaymentNotFound
	}
	return p, nil
}

func (u *DepositPaymentUseCase) ListByCartItemID(ctx context.Context, cartItemID string) ([]entities.DepositPayment, error) {
	cartItemID = strings.TrimSpace(cartItemID)
	if cartItemID == "" {
		return nil, ErrInvalidCartItemID
	}
	return u.repo.ListByCartItemID(ctx, cartItemID)
}
