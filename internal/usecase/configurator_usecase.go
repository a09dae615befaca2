package usecase

import (
	"context"
	"fmt"
	"strings"

	"nest_configurator/internal/domain/entities"
	"nest_configurator/internal/domain/pricing"
	"nest_configurator/internal/domain/view"
)

// SelectionInput is an untrusted selection request. The price always comes
// from the catalog.
type SelectionInput struct {
	Category  string
	OptionID  string
	Quantity  *int
	AreaUnits *float64
}

// SessionView is everything the UI renders for a session.
type SessionView struct {
	Snapshot entities.SessionSnapshot
	Quote    PriceQuote
	Views    []view.View
	Pending  *entities.OptimisticState
}

// IConfiguratorUseCase exposes the configurator operations by session id.
type IConfiguratorUseCase interface {
	CreateSession(ctx context.Context) (SessionView, error)
	OpenSession(ctx context.Context, sessionID string) (SessionView, error)
	CloseSession(ctx context.Context, sessionID string) error
	ApplySelection(ctx context.Context, sessionID string, in SelectionInput) (SessionView, error)
	RemoveSelection(ctx context.Context, sessionID, category string) (SessionView, error)
	ToggleAddOn(ctx context.Context, sessionID, optionID string) (SessionView, error)
	Reset(ctx context.Context, sessionID string) (SessionView, error)
	Price(ctx context.Context, sessionID string) (PriceQuote, error)
	OptionPrice(ctx context.Context, sessionID, category, optionID string) (entities.OptionPrice, error)
	Views(ctx context.Context, sessionID string) ([]view.View, error)
	Preview(ctx context.Context, sessionID, viewName string) (PreviewAsset, error)
	Catalog(ctx context.Context) map[entities.Category][]pricing.Option
}

type ConfiguratorUseCase struct {
	registry *SessionRegistry
	engine   *pricing.Engine
}

var _ IConfiguratorUseCase = (*ConfiguratorUseCase)(nil)

func NewConfiguratorUseCase(registry *SessionRegistry, engine *pricing.Engine) *ConfiguratorUseCase {
	return &ConfiguratorUseCase{registry: registry, engine: engine}
}

func (u *ConfiguratorUseCase) CreateSession(ctx context.Context) (SessionView, error) {
	return u.render(ctx, u.registry.Create(ctx)), nil
}

func (u *ConfiguratorUseCase) OpenSession(ctx context.Context, sessionID string) (SessionView, error) {
	live, err := u.registry.Open(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	return u.render(ctx, live), nil
}

func (u *ConfiguratorUseCase) CloseSession(ctx context.Context, sessionID string) error {
	return u.registry.Close(ctx, sessionID)
}

func (u *ConfiguratorUseCase) ApplySelection(ctx context.Context, sessionID string, in SelectionInput) (SessionView, error) {
	live, err := u.registry.Get(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	sel, err := u.buildSelection(in.Category, in.OptionID, in.Quantity, in.AreaUnits)
	if err != nil {
		return SessionView{}, err
	}
	if _, err := live.Coordinator.Apply(ctx, sel); err != nil {
		return SessionView{}, err
	}
	return u.render(ctx, live), nil
}

func (u *ConfiguratorUseCase) RemoveSelection(ctx context.Context, sessionID, category string) (SessionView, error) {
	live, err := u.registry.Get(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	cat, err := entities.ParseCategory(category)
	if err != nil {
		return SessionView{}, err
	}
	if _, err := live.Session.RemoveSelection(ctx, cat); err != nil {
		return SessionView{}, err
	}
	return u.render(ctx, live), nil
}

func (u *ConfiguratorUseCase) ToggleAddOn(ctx context.Context, sessionID, optionID string) (SessionView, error) {
	live, err := u.registry.Get(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	sel, err := u.buildSelection(string(entities.CategoryAddOn), optionID, nil, nil)
	if err != nil {
		return SessionView{}, err
	}
	if _, err := live.Session.ToggleAddOn(ctx, sel); err != nil {
		return SessionView{}, err
	}
	return u.render(ctx, live), nil
}

func (u *ConfiguratorUseCase) Reset(ctx context.Context, sessionID string) (SessionView, error) {
	live, err := u.registry.Get(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	live.Session.Reset(ctx)
	return u.render(ctx, live), nil
}

func (u *ConfiguratorUseCase) Price(ctx context.Context, sessionID string) (PriceQuote, error) {
	live, err := u.registry.Get(sessionID)
	if err != nil {
		return PriceQuote{}, err
	}
	return live.Session.Quote(ctx), nil
}

func (u *ConfiguratorUseCase) OptionPrice(ctx context.Context, sessionID, category, optionID string) (entities.OptionPrice, error) {
	live, err := u.registry.Get(sessionID)
	if err != nil {
		return entities.OptionPrice{}, err
	}
	cat, err := entities.ParseCategory(category)
	if err != nil {
		return entities.OptionPrice{}, err
	}
	optionID = strings.TrimSpace(optionID)
	if optionID == "" {
		return entities.OptionPrice{}, &entities.ValidationError{Field: "option_id", Reason: "must not be empty"}
	}
	return live.Session.OptionDisplayPrice(ctx, cat, optionID)
}

func (u *ConfiguratorUseCase) Views(ctx context.Context, sessionID string) ([]view.View, error) {
	live, err := u.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return live.Session.AvailableViews(ctx), nil
}

func (u *ConfiguratorUseCase) Preview(ctx context.Context, sessionID, viewName string) (PreviewAsset, error) {
	live, err := u.registry.Get(sessionID)
	if err != nil {
		return PreviewAsset{}, err
	}
	v, ok := view.ParseView(viewName)
	if !ok {
		return PreviewAsset{}, &entities.ValidationError{Field: "view", Reason: fmt.Sprintf("unknown view %q", viewName)}
	}
	return live.Session.ResolvePreviewAsset(ctx, v), nil
}

func (u *ConfiguratorUseCase) Catalog(ctx context.Context) map[entities.Category][]pricing.Option {
	t := u.engine.Table()
	out := make(map[entities.Category][]pricing.Option, len(t.Options))
	for cat, opts := range t.Options {
		out[cat] = append([]pricing.Option(nil), opts...)
	}
	return out
}

func (u *ConfiguratorUseCase) buildSelection(category, optionID string, qty *int, area *float64) (entities.Selection, error) {
	cat, err := entities.ParseCategory(category)
	if err != nil {
		return entities.Selection{}, err
	}
	optionID = strings.TrimSpace(optionID)
	sel, ok := u.engine.Table().BuildSelection(cat, optionID, qty, area)
	if !ok {
		return entities.Selection{}, &entities.ValidationError{Field: "option_id", Reason: fmt.Sprintf("unknown option %q in %s", optionID, cat)}
	}
	return sel, nil
}

func (u *ConfiguratorUseCase) render(ctx context.Context, live *LiveSession) SessionView {
	return SessionView{
		Snapshot: live.Session.Snapshot(ctx),
		Quote:    live.Session.Quote(ctx),
		Views:    live.Session.AvailableViews(ctx),
		Pending:  live.Coordinator.Pending(),
	}
}
