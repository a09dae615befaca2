package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	g, err := NewMercadoPagoGateway("")
	assert.Nil(t, g)
	assert.True(t, errors.Is(err, ErrMissingMercadoPagoAccessToken))
}

func TestCreatePayment_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	assert.True(t, errors.Is(err, ErrMercadoPagoGatewayNotConfigured))
}

func TestCreatePayment_InvalidPayload(t *testing.T) {
	g, err := NewMercadoPagoGateway("TEST-0000")
	require.NoError(t, err)

	_, _, _, err = g.CreatePayment(context.Background(), json.RawMessage(`not json`))
	assert.Error(t, err)
}
