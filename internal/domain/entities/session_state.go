package entities

import "time"

// SessionPhase is the lifecycle position of a configurator session.
type SessionPhase string

const (
	// SessionPhaseFresh shows defaults but keeps the price at zero.
	SessionPhaseFresh SessionPhase = "fresh"
	// SessionPhaseActive is entered on the first mutating user action.
	SessionPhaseActive SessionPhase = "active"
	// SessionPhaseExpired is transient: an expired session immediately re-enters Fresh.
	SessionPhaseExpired SessionPhase = "expired"
)

// SessionState gates price computation behind the first interaction.
type SessionState struct {
	Phase            SessionPhase `json:"phase"`
	HasInteracted    bool         `json:"has_interacted"`
	SessionStartTime time.Time    `json:"session_start_time"`
	LastActivityTime time.Time    `json:"last_activity_time"`
}

// NewSessionState returns a Fresh state started at now.
func NewSessionState(now time.Time) SessionState {
	return SessionState{
		Phase:            SessionPhaseFresh,
		SessionStartTime: now,
		LastActivityTime: now,
	}
}

// IdleFor returns how long the session has been idle at now.
func (s SessionState) IdleFor(now time.Time) time.Duration {
	return now.Sub(s.LastActivityTime)
}

// OptimisticState is the tentative result published before reconciliation.
type OptimisticState struct {
	PendingSelection Selection `json:"pending_selection"`
	EstimatedPrice   int64     `json:"estimated_price"`
	IssuedAt         time.Time `json:"issued_at"`
}

// SessionSnapshot is what the persistence collaborator stores per session.
// Configuration.TotalPrice is 0 whenever State.HasInteracted is false.
type SessionSnapshot struct {
	Configuration Configuration `json:"configuration"`
	State         SessionState  `json:"state"`
}
