package routes

import (
	"nest_configurator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions = "/sessions"
	PathCatalog  = "/catalog"
	PathCart     = "/cart"
	PathPayments = "/payments"
)

func addConfiguratorRoutes(rg *gin.RouterGroup, h *handlers.ConfiguratorHandler, cart *handlers.CartHandler) {
	rg.GET(PathCatalog, h.GetCatalog)

	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:session_id", h.OpenSession)
		sessions.POST("/:session_id/close", h.CloseSession)
		sessions.PUT("/:session_id/selections", h.ApplySelection)
		sessions.DELETE("/:session_id/selections/:category", h.RemoveSelection)
		sessions.POST("/:session_id/addons/:option_id", h.ToggleAddOn)
		sessions.POST("/:session_id/reset", h.Reset)
		sessions.GET("/:session_id/price", h.GetPrice)
		sessions.GET("/:session_id/options/:category/:option_id/price", h.GetOptionPrice)
		sessions.GET("/:session_id/views", h.GetViews)
		sessions.GET("/:session_id/preview/:view", h.GetPreview)
		sessions.POST("/:session_id/checkout", cart.Checkout)
	}
}

func addCartRoutes(rg *gin.RouterGroup, cart *handlers.CartHandler, payments *handlers.DepositPaymentHandler) {
	items := rg.Group(PathCart)
	{
		items.GET("/:cart_item_id", cart.GetCartItem)
		items.PATCH("/:cart_item_id/cancel", cart.CancelCartItem)
		items.POST("/:cart_item_id/payments", payments.PayDeposit)
		items.GET("/:cart_item_id/payments", payments.ListPayments)
	}

	rg.GET(PathPayments+"/:payment_id", payments.GetPayment)
}
