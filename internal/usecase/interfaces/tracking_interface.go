package interfaces

import (
	"context"

	"nest_configurator/internal/domain/entities"
)

// ISelectionTracker is the analytics collaborator. Best effort, never awaited.
type ISelectionTracker interface {
	Track(ctx context.Context, event entities.SelectionEvent) error
}
