package usecase

import (
	"context"
	"testing"

	"nest_configurator/internal/domain/entities"
	"nest_configurator/internal/domain/view"
	"nest_configurator/internal/infrastructure/clock"
	mock_interfaces "nest_configurator/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestConfigurator(t *testing.T) (*ConfiguratorUseCase, *mock_interfaces.MockIAssetStore) {
	ctrl := gomock.NewController(t)
	assets := mock_interfaces.NewMockIAssetStore(ctrl)
	deps := testDeps(clock.NewManual(testStart), newRecordingSync())
	deps.Assets = assets
	registry := NewSessionRegistry(deps, nil, RegistryOptions{})
	return NewConfiguratorUseCase(registry, deps.Engine), assets
}

func TestConfiguratorUseCase_CreateAndOpen(t *testing.T) {
	uc, _ := newTestConfigurator(t)
	ctx := context.Background()

	created, err := uc.CreateSession(ctx)
	require.NoError(t, err)
	id := created.Snapshot.Configuration.SessionID
	assert.NotEmpty(t, id)
	assert.Equal(t, entities.SessionPhaseFresh, created.Snapshot.State.Phase)
	assert.Zero(t, created.Quote.Price)
	assert.Equal(t, []view.View{view.ViewExterior}, created.Views)
	assert.Nil(t, created.Pending)

	opened, err := uc.OpenSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, opened.Snapshot.Configuration.SessionID)

	require.NoError(t, uc.CloseSession(ctx, id))

	_, err = uc.OpenSession(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestConfiguratorUseCase_ApplySelection(t *testing.T) {
	uc, _ := newTestConfigurator(t)
	ctx := context.Background()
	created, _ := uc.CreateSession(ctx)
	id := created.Snapshot.Configuration.SessionID

	t.Run("prices come from the catalog", func(t *testing.T) {
		got, err := uc.ApplySelection(ctx, id, SelectionInput{Category: "envelope-material", OptionID: " holzlattung "})
		require.NoError(t, err)
		assert.Equal(t, int64(165100), got.Quote.Price)
		assert.Equal(t, int64(9600), got.Snapshot.Configuration.Selections[entities.CategoryEnvelope].Price)
		assert.True(t, got.Snapshot.State.HasInteracted)
	})

	t.Run("multipliers are passed through", func(t *testing.T) {
		got, err := uc.ApplySelection(ctx, id, SelectionInput{Category: "solar", OptionID: "pv_modul", Quantity: entities.IntPtr(4)})
		require.NoError(t, err)
		assert.Equal(t, int64(165100+4*2500), got.Quote.Price)
	})

	t.Run("oversized multipliers are rejected and keep the price", func(t *testing.T) {
		_, err := uc.ApplySelection(ctx, id, SelectionInput{Category: "solar", OptionID: "pv_modul", Quantity: entities.IntPtr(9223372036854775)})
		assert.ErrorIs(t, err, entities.ErrInvalidSelection)

		_, err = uc.ApplySelection(ctx, id, SelectionInput{Category: "windows", OptionID: "fenster_holz_alu", AreaUnits: entities.FloatPtr(1e300)})
		assert.ErrorIs(t, err, entities.ErrInvalidSelection)

		quote, err := uc.Price(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(165100+4*2500), quote.Price)
	})

	t.Run("unknown option", func(t *testing.T) {
		_, err := uc.ApplySelection(ctx, id, SelectionInput{Category: "flooring", OptionID: "marble"})
		assert.ErrorIs(t, err, entities.ErrInvalidSelection)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := uc.ApplySelection(ctx, id, SelectionInput{Category: "roof", OptionID: "x"})
		assert.ErrorIs(t, err, entities.ErrInvalidSelection)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := uc.ApplySelection(ctx, "missing", SelectionInput{Category: "flooring", OptionID: "granit"})
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestConfiguratorUseCase_RemoveToggleReset(t *testing.T) {
	uc, _ := newTestConfigurator(t)
	ctx := context.Background()
	created, _ := uc.CreateSession(ctx)
	id := created.Snapshot.Configuration.SessionID

	got, err := uc.ToggleAddOn(ctx, id, "fundament")
	require.NoError(t, err)
	assert.Contains(t, got.Snapshot.Configuration.AddOns, "fundament")
	assert.Equal(t, int64(155500+15500), got.Quote.Price)

	_, err = uc.ToggleAddOn(ctx, id, "sauna")
	assert.ErrorIs(t, err, entities.ErrInvalidSelection)

	got, err = uc.RemoveSelection(ctx, id, "add-on")
	require.NoError(t, err)
	assert.Empty(t, got.Snapshot.Configuration.AddOns)

	_, err = uc.RemoveSelection(ctx, id, "roof")
	assert.ErrorIs(t, err, entities.ErrInvalidSelection)

	got, err = uc.Reset(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entities.SessionPhaseFresh, got.Snapshot.State.Phase)
	assert.Zero(t, got.Quote.Price)
}

func TestConfiguratorUseCase_PriceAndOptions(t *testing.T) {
	uc, _ := newTestConfigurator(t)
	ctx := context.Background()
	created, _ := uc.CreateSession(ctx)
	id := created.Snapshot.Configuration.SessionID

	q, err := uc.Price(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, PriceQuote{}, q)

	op, err := uc.OptionPrice(ctx, id, "interior-lining", "kiefer")
	require.NoError(t, err)
	assert.Equal(t, entities.PriceKindSelected, op.Kind)

	op, err = uc.OptionPrice(ctx, id, "interior-lining", "fichte")
	require.NoError(t, err)
	assert.Equal(t, entities.OptionPrice{Kind: entities.PriceKindUpgrade, Amount: 4300}, op)

	_, err = uc.OptionPrice(ctx, id, "interior-lining", " ")
	assert.ErrorIs(t, err, entities.ErrInvalidSelection)

	_, err = uc.Price(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestConfiguratorUseCase_ViewsAndPreview(t *testing.T) {
	uc, assets := newTestConfigurator(t)
	ctx := context.Background()
	created, _ := uc.CreateSession(ctx)
	id := created.Snapshot.Configuration.SessionID

	views, err := uc.Views(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []view.View{view.ViewExterior}, views)

	assets.EXPECT().URL(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, assetID string) (string, error) {
		return "/assets/" + assetID + ".jpg", nil
	})
	preview, err := uc.Preview(ctx, id, "exterior")
	require.NoError(t, err)
	assert.Equal(t, view.ViewExterior, preview.View)
	assert.Equal(t, "/assets/"+preview.AssetID+".jpg", preview.URL)

	_, err = uc.Preview(ctx, id, "roof")
	assert.ErrorIs(t, err, entities.ErrInvalidSelection)
}

func TestConfiguratorUseCase_CatalogIsACopy(t *testing.T) {
	uc, _ := newTestConfigurator(t)

	catalog := uc.Catalog(context.Background())
	require.NotEmpty(t, catalog[entities.CategoryEnvelope])
	catalog[entities.CategoryEnvelope][0].Price = 1

	again := uc.Catalog(context.Background())
	assert.NotEqual(t, int64(1), again[entities.CategoryEnvelope][0].Price)
}
