package interfaces

import "time"

// IClock is the time source of the session state machine.
type IClock interface {
	Now() time.Time
}
