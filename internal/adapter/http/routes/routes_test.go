package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"nest_configurator/internal/adapter/http/handlers"
	"nest_configurator/internal/adapter/http/handlers/mocks"
	"nest_configurator/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	return newRouter(
		handlers.NewConfiguratorHandler(mocks.NewMockIConfiguratorUseCase(ctrl)),
		handlers.NewCartHandler(mocks.NewMockICheckoutUseCase(ctrl)),
		handlers.NewDepositPaymentHandler(mocks.NewMockIDepositPaymentUseCase(ctrl), false),
	)
}

func TestRouter_Ping(t *testing.T) {
	r := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestRouter_Routes(t *testing.T) {
	r := testRouter(t)

	got := map[string]bool{}
	for _, ri := range r.Routes() {
		got[ri.Method+" "+ri.Path] = true
	}
	for _, want := range []string{
		"POST /v1/sessions",
		"GET /v1/sessions/:session_id",
		"POST /v1/sessions/:session_id/close",
		"PUT /v1/sessions/:session_id/selections",
		"DELETE /v1/sessions/:session_id/selections/:category",
		"POST /v1/sessions/:session_id/addons/:option_id",
		"POST /v1/sessions/:session_id/reset",
		"GET /v1/sessions/:session_id/price",
		"GET /v1/sessions/:session_id/options/:category/:option_id/price",
		"GET /v1/sessions/:session_id/views",
		"GET /v1/sessions/:session_id/preview/:view",
		"POST /v1/sessions/:session_id/checkout",
		"GET /v1/catalog",
		"GET /v1/cart/:cart_item_id",
		"PATCH /v1/cart/:cart_item_id/cancel",
		"POST /v1/cart/:cart_item_id/payments",
		"GET /v1/cart/:cart_item_id/payments",
		"GET /v1/payments/:payment_id",
		"GET /v1/ping",
		"GET /swagger/*any",
	} {
		assert.True(t, got[want], "missing route %s", want)
	}
}

func TestLoadTable(t *testing.T) {
	table, err := loadTable(config.PricingConfig{})
	require.NoError(t, err)
	assert.NotEmpty(t, table.Combinations)

	_, err = loadTable(config.PricingConfig{TableFile: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)

	data, err := os.ReadFile(filepath.Join("..", "..", "..", "domain", "pricing", "default_table.yaml"))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "prices.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	table, err = loadTable(config.PricingConfig{TableFile: path})
	require.NoError(t, err)
	assert.NotEmpty(t, table.Combinations)
}
