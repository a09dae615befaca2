package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "nest_configurator/internal/adapter/http/dto/response"
	"nest_configurator/internal/usecase"
	"nest_configurator/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// DepositPaymentHandler handles reservation deposits of cart items.
type DepositPaymentHandler struct {
	usecase  usecase.IDepositPaymentUseCase
	mockMode bool
}

// NewDepositPaymentHandler builds the handler. In mock mode an unreadable
// body falls back to an empty payload.
func NewDepositPaymentHandler(uc usecase.IDepositPaymentUseCase, mockMode bool) *DepositPaymentHandler {
	return &DepositPaymentHandler{usecase: uc, mockMode: mockMode}
}

// PayDeposit godoc
// @Summary      Pay the deposit of a cart item
// @Description  Body is a Mercado Pago payment payload, bare or wrapped in mp_payload
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        cart_item_id  path  string  true  "Cart item ID"
// @Success      200  {object}  response.DepositPaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /cart/{cart_item_id}/payments [post]
func (h *DepositPaymentHandler) PayDeposit(c *gin.Context) {
	cartItemID := c.Param("cart_item_id")
	logger := log.With().Str("cart_item_id", cartItemID).Bool("mock", h.mockMode).Logger()

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			logger.Warn().Err(err).Msg("invalid deposit payload")
			writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
			return
		}
		logger.Debug().Err(err).Msg("invalid payload in mock mode, using empty payload")
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.PayDeposit(c.Request.Context(), cartItemID, mpPayload)
	if err != nil {
		writeError(c, mapDepositPaymentError(err))
		return
	}
	logger.Info().Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("deposit payment created")

	c.JSON(http.StatusOK, response.FromDepositPayment(created))
}

// ListPayments godoc
// @Summary      Deposit payments of a cart item
// @Tags         payments
// @Produce      json
// @Param        cart_item_id  path  string  true  "Cart item ID"
// @Success      200  {array}  response.DepositPaymentResponse
// @Router       /cart/{cart_item_id}/payments [get]
func (h *DepositPaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByCartItemID(c.Request.Context(), c.Param("cart_item_id"))
	if err != nil {
		writeError(c, mapDepositPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDepositPayments(payments))
}

// GetPayment godoc
// @Summary      Deposit payment by id
// @Tags         payments
// @Produce      json
// @Param        payment_id  path  string  true  "Payment ID"
// @Success      200  {object}  response.DepositPaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{payment_id} [get]
func (h *DepositPaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		writeError(c, mapDepositPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDepositPayment(p))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapDepositPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCartItemID), errors.Is(err, usecase.ErrInvalidDepositPaymentID),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrCartItemNotFound):
		return pkg.NewDomainErrorSimple("CART_ITEM_NOT_FOUND", "Cart item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCartItemNotPending):
		return pkg.NewDomainErrorSimple("CART_ITEM_NOT_PENDING", "Cart item is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
