package domain

import (
	"errors"
	"time"
)

// BlotterStatus is the handling state of an incident report.
type BlotterStatus string

const (
	BlotterOpen    BlotterStatus = "Open"
	BlotterClosed  BlotterStatus = "Closed"
	BlotterPending BlotterStatus = "Pending"
)

var ErrBlotterNotFound = errors.New("blotter entry not found")

// BlotterEntry is an incident logged in the barangay blotter. The resident
// reference is optional; incidents may involve non-residents.
type BlotterEntry struct {
	ID             string        `json:"id"`
	ResidentID     string        `json:"resident_id,omitempty"`
	IncidentDate   string        `json:"incident_date,omitempty"` // YYYY-MM-DD
	Description    string        `json:"description,omitempty"`
	ReportedBy     string        `json:"reported_by,omitempty"`
	AccommodatedBy string        `json:"accommodated_by,omitempty"`
	Status         BlotterStatus `json:"status"`
	Resident       *Resident     `json:"resident,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
