package entities

import "time"

// SelectionAction names what the user did to a category.
type SelectionAction string

const (
	SelectionActionSelected SelectionAction = "selected"
	SelectionActionRemoved  SelectionAction = "removed"
	SelectionActionToggled  SelectionAction = "toggled"
	SelectionActionReset    SelectionAction = "reset"
)

// SelectionEvent is the discrete event handed to the tracking collaborator.
type SelectionEvent struct {
	SessionID string          `json:"session_id"`
	Action    SelectionAction `json:"action"`
	Category  Category        `json:"category,omitempty"`
	Value     string          `json:"value,omitempty"`
	Price     int64           `json:"price"`
	At        time.Time       `json:"at"`
}
