package domain

import (
	"errors"
	"time"
)

var ErrOfficialNotFound = errors.New("official not found")

// Official is an elected or appointed barangay officer.
type Official struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position,omitempty"`
	TermStart string    `json:"term_start,omitempty"` // YYYY-MM-DD
	TermEnd   string    `json:"term_end,omitempty"`   // YYYY-MM-DD
	Contact   string    `json:"contact,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
