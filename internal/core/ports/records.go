package ports

import (
	"context"

	"github.com/barangaylink/records-system/internal/core/domain"
)

// HouseholdRepository defines persistence operations for households.
type HouseholdRepository interface {
	// List returns all households ordered by household code.
	List(ctx context.Context) ([]*domain.Household, error)
	Create(ctx context.Context, h *domain.Household) (*domain.Household, error)
	Delete(ctx context.Context, id string) error
}

// CertificateRepository defines persistence operations for certificates.
type CertificateRepository interface {
	// List returns all certificates with their resident joined, newest
	// issuance first.
	List(ctx context.Context) ([]*domain.Certificate, error)
	Create(ctx context.Context, c *domain.Certificate) (*domain.Certificate, error)
	Delete(ctx context.Context, id string) error
}

// BlotterRepository defines persistence operations for blotter entries.
type BlotterRepository interface {
	// List returns all entries with their resident joined, newest incident
	// first.
	List(ctx context.Context) ([]*domain.BlotterEntry, error)
	Create(ctx context.Context, b *domain.BlotterEntry) (*domain.BlotterEntry, error)
	Delete(ctx context.Context, id string) error
}

// OfficialRepository defines persistence operations for officials.
type OfficialRepository interface {
	List(ctx context.Context) ([]*domain.Official, error)
	Create(ctx context.Context, o *domain.Official) (*domain.Official, error)
	Delete(ctx context.Context, id string) error
}

// CreateCertificateInput carries the writable certificate fields.
type CreateCertificateInput struct {
	ResidentID string
	Type       string
	IssuedBy   string
	Remarks    string
}

// CreateBlotterInput carries the writable blotter fields.
type CreateBlotterInput struct {
	ResidentID     string
	IncidentDate   string
	Description    string
	ReportedBy     string
	AccommodatedBy string
	Status         domain.BlotterStatus
}

// CreateOfficialInput carries the writable official fields.
type CreateOfficialInput struct {
	Name      string
	Position  string
	TermStart string
	TermEnd   string
	Contact   string
}

// CreateHouseholdInput carries the writable household fields.
type CreateHouseholdInput struct {
	HouseholdCode    string
	AddressLine      string
	Barangay         string
	CityMunicipality string
	Province         string
	PostalCode       string
}

// HouseholdService exposes the household registry.
type HouseholdService interface {
	List(ctx context.Context) ([]*domain.Household, error)
	Create(ctx context.Context, input CreateHouseholdInput, actor string) (*domain.Household, error)
	Delete(ctx context.Context, id string, actor string) error
}

// CertificateService exposes certificate issuance.
type CertificateService interface {
	List(ctx context.Context) ([]*domain.Certificate, error)
	Create(ctx context.Context, input CreateCertificateInput, actor string) (*domain.Certificate, error)
	Delete(ctx context.Context, id string, actor string) error
}

// BlotterService exposes the incident log.
type BlotterService interface {
	List(ctx context.Context) ([]*domain.BlotterEntry, error)
	Create(ctx context.Context, input CreateBlotterInput, actor string) (*domain.BlotterEntry, error)
	Delete(ctx context.Context, id string, actor string) error
}

// OfficialService exposes the officials roster.
type OfficialService interface {
	List(ctx context.Context) ([]*domain.Official, error)
	Create(ctx context.Context, input CreateOfficialInput, actor string) (*domain.Official, error)
	Delete(ctx context.Context, id string, actor string) error
}
