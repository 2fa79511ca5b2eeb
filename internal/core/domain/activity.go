package domain

import "time"

// ActivityEntry is an audit trail record of a mutation performed through
// the API. Entries are written asynchronously and never read back by the
// application itself.
type ActivityEntry struct {
	ID          string         `json:"id"`
	Action      string         `json:"action"` // create, update, delete
	Entity      string         `json:"entity"` // user, resident, household, ...
	EntityID    string         `json:"entity_id"`
	PerformedBy string         `json:"performed_by"`
	Detail      map[string]any `json:"detail,omitempty"`
	RecordedAt  time.Time      `json:"recorded_at"`
}
