package domain

import (
	"errors"
	"time"
)

// Gender values accepted on resident records.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// CivilStatus values accepted on resident records.
type CivilStatus string

const (
	CivilSingle    CivilStatus = "Single"
	CivilMarried   CivilStatus = "Married"
	CivilWidowed   CivilStatus = "Widowed"
	CivilSeparated CivilStatus = "Separated"
	CivilDivorced  CivilStatus = "Divorced"
	CivilOther     CivilStatus = "Other"
)

// RecordStatus is the lifecycle state of a resident record. Deleted
// residents are retained for history but hidden from default queries.
type RecordStatus string

const (
	RecordActive  RecordStatus = "active"
	RecordDeleted RecordStatus = "deleted"
)

var ErrResidentNotFound = errors.New("resident not found")

// Resident is a person registered in the barangay.
type Resident struct {
	ID            string       `json:"id"`
	HouseholdID   string       `json:"household_id,omitempty"`
	FirstName     string       `json:"first_name"`
	MiddleName    string       `json:"middle_name,omitempty"`
	LastName      string       `json:"last_name"`
	Suffix        string       `json:"suffix,omitempty"`
	BirthDate     string       `json:"birth_date,omitempty"` // YYYY-MM-DD
	Address       string       `json:"address,omitempty"`
	Gender        Gender       `json:"gender"`
	CivilStatus   CivilStatus  `json:"civil_status"`
	Occupation    string       `json:"occupation,omitempty"`
	ContactNumber string       `json:"contact_number,omitempty"`
	Email         string       `json:"email,omitempty"`
	NationalID    string       `json:"national_id,omitempty"`
	VoterStatus   bool         `json:"voter_status"`
	IsHead        bool         `json:"is_head"`
	Remarks       string       `json:"remarks,omitempty"`
	Status        RecordStatus `json:"status"`
	Household     *Household   `json:"household,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
	DeletedAt     *time.Time   `json:"deleted_at,omitempty"`
}
