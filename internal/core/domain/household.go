package domain

import (
	"errors"
	"time"
)

var ErrHouseholdNotFound = errors.New("household not found")
var ErrHouseholdExists = errors.New("household code already exists")

// Household groups residents living at the same address. The household
// code is unique across the barangay.
type Household struct {
	ID               string    `json:"id"`
	HouseholdCode    string    `json:"household_code"`
	AddressLine      string    `json:"address_line,omitempty"`
	Barangay         string    `json:"barangay,omitempty"`
	CityMunicipality string    `json:"city_municipality,omitempty"`
	Province         string    `json:"province,omitempty"`
	PostalCode       string    `json:"postal_code,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
