package interfaces

import "context"

// ISessionMarkerStore keeps the short-lived marker used to tell a reload from a
// closed and reopened browser. Markers expire on their own.
type ISessionMarkerStore interface {
	Set(ctx context.Context, sessionID string) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	Clear(ctx context.Context, sessionID string) error
}
