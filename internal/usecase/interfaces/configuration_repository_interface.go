package interfaces

import (
	"context"

	"nest_configurator/internal/domain/entities"
)

// IConfigurationRepository is the persistence collaborator for session snapshots.
//
// Callers treat every failure as best effort:
//   - Save runs in the background and its error is only logged.
//   - Load reports found=false for unknown sessions; an error is treated the same way.
type IConfigurationRepository interface {
	Save(ctx context.Context, snapshot entities.SessionSnapshot) error
	Load(ctx context.Context, sessionID string) (snapshot entities.SessionSnapshot, found bool, err error)
}
