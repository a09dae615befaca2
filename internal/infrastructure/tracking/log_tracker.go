// Package tracking forwards selection events to the analytics sink.
package tracking

import (
	"context"

	"nest_configurator/internal/domain/entities"
	"nest_configurator/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// LogTracker writes selection events as structured log lines, for a log
// pipeline to ship to analytics.
type LogTracker struct {
	logger zerolog.Logger
}

var _ interfaces.ISelectionTracker = (*LogTracker)(nil)

func NewLogTracker(logger zerolog.Logger) *LogTracker {
	return &LogTracker{logger: logger.With().Str("component", "tracking").Logger()}
}

func (t *LogTracker) Track(_ context.Context, ev entities.SelectionEvent) error {
	t.logger.Info().
		Str("session_id", ev.SessionID).
		Str("action", string(ev.Action)).
		Str("category", string(ev.Category)).
		Str("value", ev.Value).
		Int64("price", ev.Price).
		Time("at", ev.At).
		Msg("selection event")
	return nil
}
