package ports

import (
	"context"
	"io"

	"github.com/barangaylink/records-system/internal/core/domain"
)

// ListResidentsInput carries raw query parameters from the transport layer.
// Page and PageSize are normalised by the service (1 and 50 by default).
type ListResidentsInput struct {
	Query    string
	Page     int
	PageSize int
}

// ListResidentsResult mirrors the {rows, count} contract the frontend
// pagination expects.
type ListResidentsResult struct {
	Rows  []*domain.Resident
	Count int64
}

// CreateResidentInput carries all writable resident fields.
type CreateResidentInput struct {
	HouseholdID   string
	FirstName     string
	MiddleName    string
	LastName      string
	Suffix        string
	BirthDate     string
	Address       string
	Gender        domain.Gender
	CivilStatus   domain.CivilStatus
	Occupation    string
	ContactNumber string
	Email         string
	NationalID    string
	VoterStatus   bool
	IsHead        bool
	Remarks       string
}

// UpdateResidentInput is a partial update: nil fields are left untouched.
type UpdateResidentInput struct {
	HouseholdID   *string
	FirstName     *string
	MiddleName    *string
	LastName      *string
	Suffix        *string
	BirthDate     *string
	Address       *string
	Gender        *domain.Gender
	CivilStatus   *domain.CivilStatus
	Occupation    *string
	ContactNumber *string
	Email         *string
	NationalID    *string
	VoterStatus   *bool
	IsHead        *bool
	Remarks       *string
}

// ResidentService defines use-case operations over the resident registry.
type ResidentService interface {
	List(ctx context.Context, input ListResidentsInput) (*ListResidentsResult, error)
	Get(ctx context.Context, id string) (*domain.Resident, error)
	Create(ctx context.Context, input CreateResidentInput, actor string) (*domain.Resident, error)
	Update(ctx context.Context, id string, input UpdateResidentInput, actor string) (*domain.Resident, error)
	Delete(ctx context.Context, id string, actor string) error
	// ExportCSV streams every active resident matching query to w as CSV
	// with a header row.
	ExportCSV(ctx context.Context, query string, w io.Writer) error
}
