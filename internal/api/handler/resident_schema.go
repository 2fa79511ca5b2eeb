package handler

import "github.com/barangaylink/records-system/internal/core/domain"

// residentRequest carries the writable resident fields for creates.
type residentRequest struct {
	HouseholdID   string `json:"household_id,omitempty"`
	FirstName     string `json:"first_name"`
	MiddleName    string `json:"middle_name,omitempty"`
	LastName      string `json:"last_name"`
	Suffix        string `json:"suffix,omitempty"`
	BirthDate     string `json:"birth_date,omitempty"`
	Address       string `json:"address,omitempty"`
	Gender        string `json:"gender,omitempty"        validate:"omitempty,oneof=Male Female Other"`
	CivilStatus   string `json:"civil_status,omitempty"  validate:"omitempty,oneof=Single Married Widowed Separated Divorced Other"`
	Occupation    string `json:"occupation,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`
	Email         string `json:"email,omitempty"         validate:"omitempty,email"`
	NationalID    string `json:"national_id,omitempty"`
	VoterStatus   bool   `json:"voter_status,omitempty"`
	IsHead        bool   `json:"is_head,omitempty"`
	Remarks       string `json:"remarks,omitempty"`
}

// updateResidentRequest is a partial update; absent fields stay untouched.
type updateResidentRequest struct {
	HouseholdID   *string `json:"household_id,omitempty"`
	FirstName     *string `json:"first_name,omitempty"`
	MiddleName    *string `json:"middle_name,omitempty"`
	LastName      *string `json:"last_name,omitempty"`
	Suffix        *string `json:"suffix,omitempty"`
	BirthDate     *string `json:"birth_date,omitempty"`
	Address       *string `json:"address,omitempty"`
	Gender        *string `json:"gender,omitempty"       validate:"omitempty,oneof=Male Female Other"`
	CivilStatus   *string `json:"civil_status,omitempty" validate:"omitempty,oneof=Single Married Widowed Separated Divorced Other"`
	Occupation    *string `json:"occupation,omitempty"`
	ContactNumber *string `json:"contact_number,omitempty"`
	Email         *string `json:"email,omitempty"        validate:"omitempty,email"`
	NationalID    *string `json:"national_id,omitempty"`
	VoterStatus   *bool   `json:"voter_status,omitempty"`
	IsHead        *bool   `json:"is_head,omitempty"`
	Remarks       *string `json:"remarks,omitempty"`
}

// listResidentsResponse mirrors the {rows, count} contract the frontend
// table pagination expects.
type listResidentsResponse struct {
	Rows  []*domain.Resident `json:"rows"`
	Count int64              `json:"count"`
}
