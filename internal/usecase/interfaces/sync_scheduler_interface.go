package interfaces

import "context"

// ISyncScheduler runs background collaborator calls.
//
// Scheduling is non-blocking. Tasks scheduled under the same key within the
// coalescing window collapse into the last one. Task errors are logged by the
// scheduler and never reach the caller.
type ISyncScheduler interface {
	Schedule(key string, task func(ctx context.Context) error)
}
