package domain

import (
	"errors"
	"time"
)

var ErrCertificateNotFound = errors.New("certificate not found")

// Certificate records a document issued to a resident, e.g. a barangay
// clearance or a certificate of indigency.
type Certificate struct {
	ID         string    `json:"id"`
	ResidentID string    `json:"resident_id"`
	Type       string    `json:"type"`
	IssuedAt   time.Time `json:"issued_at"`
	IssuedBy   string    `json:"issued_by,omitempty"`
	Remarks    string    `json:"remarks,omitempty"`
	Resident   *Resident `json:"resident,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
