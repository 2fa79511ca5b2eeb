package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/barangaylink/records-system/internal/core/domain"
	"github.com/barangaylink/records-system/internal/core/ports"
)

// HouseholdService implements the household registry.
type HouseholdService struct {
	repo   ports.HouseholdRepository
	audit  ports.AuditDispatcher
	logger zerolog.Logger
}

func NewHouseholdService(repo ports.HouseholdRepository, audit ports.AuditDispatcher, logger zerolog.Logger) *HouseholdService {
	return &HouseholdService{repo: repo, audit: audit, logger: logger}
}

func (s *HouseholdService) List(ctx context.Context) ([]*domain.Household, error) {
	return s.repo.List(ctx)
}

func (s *HouseholdService) Create(ctx context.Context, input ports.CreateHouseholdInput, actor string) (*domain.Household, error) {
	if input.HouseholdCode == "" {
		return nil, domain.Validation("household_code required")
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Household{
		HouseholdCode:    input.HouseholdCode,
		AddressLine:      input.AddressLine,
		Barangay:         input.Barangay,
		CityMunicipality: input.CityMunicipality,
		Province:         input.Province,
		PostalCode:       input.PostalCode,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		return nil, err
	}

	record(s.audit, "create", "household", created.ID, actor)
	return created, nil
}

func (s *HouseholdService) Delete(ctx context.Context, id string, actor string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	record(s.audit, "delete", "household", id, actor)
	return nil
}

// CertificateService implements certificate issuance.
type CertificateService struct {
	repo   ports.CertificateRepository
	audit  ports.AuditDispatcher
	logger zerolog.Logger
}

func NewCertificateService(repo ports.CertificateRepository, audit ports.AuditDispatcher, logger zerolog.Logger) *CertificateService {
	return &CertificateService{repo: repo, audit: audit, logger: logger}
}

func (s *CertificateService) List(ctx context.Context) ([]*domain.Certificate, error) {
	return s.repo.List(ctx)
}

func (s *CertificateService) Create(ctx context.Context, input ports.CreateCertificateInput, actor string) (*domain.Certificate, error) {
	if input.ResidentID == "" || input.Type == "" {
		return nil, domain.Validation("resident_id and type required")
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Certificate{
		ResidentID: input.ResidentID,
		Type:       input.Type,
		IssuedAt:   now,
		IssuedBy:   input.IssuedBy,
		Remarks:    input.Remarks,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("type", created.Type).Str("resident_id", created.ResidentID).Msg("certificate issued")
	record(s.audit, "create", "certificate", created.ID, actor)
	return created, nil
}

func (s *CertificateService) Delete(ctx context.Context, id string, actor string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	record(s.audit, "delete", "certificate", id, actor)
	return nil
}

// BlotterService implements the incident log.
type BlotterService struct {
	repo   ports.BlotterRepository
	audit  ports.AuditDispatcher
	logger zerolog.Logger
}

func NewBlotterService(repo ports.BlotterRepository, audit ports.AuditDispatcher, logger zerolog.Logger) *BlotterService {
	return &BlotterService{repo: repo, audit: audit, logger: logger}
}

func (s *BlotterService) List(ctx context.Context) ([]*domain.BlotterEntry, error) {
	return s.repo.List(ctx)
}

func (s *BlotterService) Create(ctx context.Context, input ports.CreateBlotterInput, actor string) (*domain.BlotterEntry, error) {
	status := input.Status
	if status == "" {
		status = domain.BlotterOpen
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.BlotterEntry{
		ResidentID:     input.ResidentID,
		IncidentDate:   input.IncidentDate,
		Description:    input.Description,
		ReportedBy:     input.ReportedBy,
		AccommodatedBy: input.AccommodatedBy,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, err
	}

	record(s.audit, "create", "blotter", created.ID, actor)
	return created, nil
}

func (s *BlotterService) Delete(ctx context.Context, id string, actor string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	record(s.audit, "delete", "blotter", id, actor)
	return nil
}

// OfficialService implements the officials roster.
type OfficialService struct {
	repo   ports.OfficialRepository
	audit  ports.AuditDispatcher
	logger zerolog.Logger
}

func NewOfficialService(repo ports.OfficialRepository, audit ports.AuditDispatcher, logger zerolog.Logger) *OfficialService {
	return &OfficialService{repo: repo, audit: audit, logger: logger}
}

func (s *OfficialService) List(ctx context.Context) ([]*domain.Official, error) {
	return s.repo.List(ctx)
}

func (s *OfficialService) Create(ctx context.Context, input ports.CreateOfficialInput, actor string) (*domain.Official, error) {
	if input.Name == "" {
		return nil, domain.Validation("name required")
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Official{
		Name:      input.Name,
		Position:  input.Position,
		TermStart: input.TermStart,
		TermEnd:   input.TermEnd,
		Contact:   input.Contact,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	record(s.audit, "create", "official", created.ID, actor)
	return created, nil
}

func (s *OfficialService) Delete(ctx context.Context, id string, actor string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	record(s.audit, "delete", "official", id, actor)
	return nil
}

func record(audit ports.AuditDispatcher, action, entity, entityID, actor string) {
	if audit == nil {
		return
	}
	audit.Enqueue(ports.ActivityInput{
		Action:      action,
		Entity:      entity,
		EntityID:    entityID,
		PerformedBy: actor,
	})
}
