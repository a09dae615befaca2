package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"nest_configurator/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var at = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func sampleConfiguration(sessionID string) entities.Configuration {
	cfg := entities.NewConfiguration(sessionID, at)
	cfg.Selections[entities.CategoryNestSize] = entities.Selection{
		Category: entities.CategoryNestSize, Value: "nest100", Name: "Nest 100",
	}
	cfg.Selections[entities.CategorySolar] = entities.Selection{
		Category: entities.CategorySolar, Value: "pv", Name: "PV", Price: 3500, Quantity: entities.IntPtr(4),
	}
	cfg.AddOns["kamin"] = entities.Selection{
		Category: entities.CategoryAddOn, Value: "kamin", Name: "Kamin", Price: 9000,
	}
	cfg.TotalPrice = 250000
	return cfg
}

func TestConfigurationRepository_SaveLoad(t *testing.T) {
	ctx := context.Background()
	repo := NewConfigurationDynamoRepository(newFakeDynamo("session_id"), "")
	assert.Equal(t, defaultConfigurationsTableName, repo.tableName)

	_, found, err := repo.Load(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	snap := entities.SessionSnapshot{
		Configuration: sampleConfiguration("s1"),
		State: entities.SessionState{
			Phase:            entities.SessionPhaseActive,
			HasInteracted:    true,
			SessionStartTime: at,
			LastActivityTime: at.Add(time.Minute),
		},
	}
	require.NoError(t, repo.Save(ctx, snap))

	got, found, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, entities.SessionPhaseActive, got.State.Phase)
	assert.True(t, got.State.LastActivityTime.Equal(snap.State.LastActivityTime))
	assert.Equal(t, "nest100", got.Configuration.Value(entities.CategoryNestSize))
	require.NotNil(t, got.Configuration.Selections[entities.CategorySolar].Quantity)
	assert.Equal(t, 4, *got.Configuration.Selections[entities.CategorySolar].Quantity)
	assert.Equal(t, int64(9000), got.Configuration.AddOns["kamin"].Price)
	assert.Equal(t, int64(250000), got.Configuration.TotalPrice)

	// Saves overwrite.
	snap.State.Phase = entities.SessionPhaseFresh
	require.NoError(t, repo.Save(ctx, snap))
	got, _, err = repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, entities.SessionPhaseFresh, got.State.Phase)
}

func TestConfigurationRepository_Errors(t *testing.T) {
	ddb := newFakeDynamo("session_id")
	ddb.err = errors.New("throttled")
	repo := NewConfigurationDynamoRepository(ddb, "custom")
	assert.Equal(t, "custom", repo.tableName)

	assert.Error(t, repo.Save(context.Background(), entities.SessionSnapshot{Configuration: sampleConfiguration("s1")}))
	_, found, err := repo.Load(context.Background(), "s1")
	assert.Error(t, err)
	assert.False(t, found)
}

func TestCartItemRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCartItemDynamoRepository(newFakeDynamo("id"), "")
	later := at.Add(time.Hour)
	repo.now = func() time.Time { return later }

	item := entities.CartItem{
		ID:            "c1",
		SessionID:     "s1",
		Configuration: sampleConfiguration("s1"),
		Breakdown: entities.Breakdown{
			BasePrice:  200000,
			Lines:      []entities.BreakdownLine{{Category: entities.CategorySolar, Value: "pv", UnitPrice: 3500, Multiplier: 4, Amount: 14000}},
			TotalPrice: 214000,
		},
		Price:       214000,
		MonthlyRate: 990,
		Status:      entities.CartItemStatusPending,
		CreatedAt:   at,
		UpdatedAt:   at,
	}
	_, err := repo.Create(ctx, item)
	require.NoError(t, err)

	_, err = repo.Create(ctx, item)
	assert.Error(t, err, "ids are unique")

	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.SessionID)
	assert.Equal(t, item.Breakdown, got.Breakdown)
	assert.Equal(t, int64(214000), got.Price)
	assert.True(t, got.CreatedAt.Equal(at))

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	updated, err := repo.UpdateStatus(ctx, "c1", entities.CartItemStatusDeposit)
	require.NoError(t, err)
	assert.Equal(t, entities.CartItemStatusDeposit, updated.Status)
	assert.True(t, updated.UpdatedAt.Equal(later))

	none, err := repo.UpdateStatus(ctx, "nope", entities.CartItemStatusCanceled)
	require.NoError(t, err)
	assert.Empty(t, none.ID)
}

func TestDepositPaymentRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewDepositPaymentDynamoRepository(newFakeDynamo("id"), "")

	for _, p := range []entities.DepositPayment{
		{ID: "p1", CartItemID: "c1", Amount: 21400, Date: at, Status: entities.PaymentStatusApproved,
			ProviderPayloadRaw: json.RawMessage(`{"id":"1"}`), ProviderPayload: map[string]interface{}{"id": "1"}},
		{ID: "p2", CartItemID: "c1", Amount: 21400, Date: at, Status: entities.PaymentStatusDenied},
		{ID: "p3", CartItemID: "c2", Amount: 100, Date: at, Status: entities.PaymentStatusPending},
	} {
		_, err := repo.Create(ctx, p)
		require.NoError(t, err)
	}

	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(21400), got.Amount)
	assert.JSONEq(t, `{"id":"1"}`, string(got.ProviderPayloadRaw))
	assert.Equal(t, "1", got.ProviderPayload["id"])

	list, err := repo.ListByCartItemID(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}
