package entities

import (
	"sort"
	"time"
)

// Configuration is the aggregate of the current selections of one session.
//
// Ownership:
//   - exclusively owned by the configurator session; callers only get clones.
//   - TotalPrice is always derived by the pricing engine, never set by hand.
//
// Storage model (DynamoDB):
//   - PK: session_id
type Configuration struct {
	SessionID  string                 `json:"session_id"`
	Selections map[Category]Selection `json:"selections"`
	AddOns     map[string]Selection   `json:"add_ons"`
	TotalPrice int64                  `json:"total_price"`
	Timestamp  time.Time              `json:"timestamp"`
}

// NewConfiguration returns an empty configuration for a session.
func NewConfiguration(sessionID string, now time.Time) Configuration {
	return Configuration{
		SessionID:  sessionID,
		Selections: make(map[Category]Selection),
		AddOns:     make(map[string]Selection),
		Timestamp:  now,
	}
}

// Get returns the selection for c, if any.
func (c Configuration) Get(cat Category) (Selection, bool) {
	s, ok := c.Selections[cat]
	return s, ok
}

// Value returns the selected option id for c or "".
func (c Configuration) Value(cat Category) string {
	if s, ok := c.Selections[cat]; ok {
		return s.Value
	}
	return ""
}

// Has reports whether c has a selection.
func (c Configuration) Has(cat Category) bool {
	_, ok := c.Selections[cat]
	return ok
}

// SortedAddOns returns the add-ons ordered by option id.
func (c Configuration) SortedAddOns() []Selection {
	out := make([]Selection, 0, len(c.AddOns))
	for _, s := range c.AddOns {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

// IsEmpty reports whether nothing is selected.
func (c Configuration) IsEmpty() bool {
	return len(c.Selections) == 0 && len(c.AddOns) == 0
}

// Clone returns a deep copy that shares no maps or pointers with c.
func (c Configuration) Clone() Configuration {
	out := c
	out.Selections = make(map[Category]Selection, len(c.Selections))
	for k, v := range c.Selections {
		out.Selections[k] = v.Clone()
	}
	out.AddOns = make(map[string]Selection, len(c.AddOns))
	for k, v := range c.AddOns {
		out.AddOns[k] = v.Clone()
	}
	return out
}
