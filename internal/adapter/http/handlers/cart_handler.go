package handlers

import (
	"errors"
	"net/http"

	response "nest_configurator/internal/adapter/http/dto/response"
	"nest_configurator/internal/usecase"
	"nest_configurator/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// CartHandler hands configured sessions over to the cart.
type CartHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCartHandler(uc usecase.ICheckoutUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

// Checkout godoc
// @Summary      Add the configured nest to the cart
// @Description  Snapshots the session; fails for sessions without a price
// @Tags         cart
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Success      201  {object}  response.CartItemResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	item, err := h.usecase.Checkout(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, mapCartError(err))
		return
	}
	log.Info().Str("cart_item_id", item.ID).Str("session_id", item.SessionID).Msg("cart item created")
	c.JSON(http.StatusCreated, response.FromCartItem(item))
}

// GetCartItem godoc
// @Summary      Cart item by id
// @Tags         cart
// @Produce      json
// @Param        cart_item_id  path  string  true  "Cart item ID"
// @Success      200  {object}  response.CartItemResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /cart/{cart_item_id} [get]
func (h *CartHandler) GetCartItem(c *gin.Context) {
	item, err := h.usecase.GetCartItem(c.Request.Context(), c.Param("cart_item_id"))
	if err != nil {
		writeError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCartItem(item))
}

// CancelCartItem godoc
// @Summary      Cancel a pending cart item
// @Tags         cart
// @Produce      json
// @Param        cart_item_id  path  string  true  "Cart item ID"
// @Success      200  {object}  response.CartItemResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /cart/{cart_item_id}/cancel [patch]
func (h *CartHandler) CancelCartItem(c *gin.Context) {
	item, err := h.usecase.CancelCartItem(c.Request.Context(), c.Param("cart_item_id"))
	if err != nil {
		writeError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCartItem(item))
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCartItemID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCartItemNotFound):
		return pkg.NewDomainErrorSimple("CART_ITEM_NOT_FOUND", "Cart item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCartItemNotPending):
		return pkg.NewDomainErrorSimple("CART_ITEM_NOT_PENDING", "Cart item is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrCartNotConfigured), errors.Is(err, usecase.ErrSessionsUnavailable):
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", "Cart is not available", err, http.StatusServiceUnavailable)
	default:
		return mapConfiguratorError(err)
	}
}
