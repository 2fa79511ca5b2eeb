package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/barangaylink/records-system/internal/core/domain"
	"github.com/barangaylink/records-system/internal/core/ports"
)

type stubHouseholdRepo struct {
	households map[string]*domain.Household
	nextID     int
}

func newStubHouseholdRepo() *stubHouseholdRepo {
	return &stubHouseholdRepo{households: make(map[string]*domain.Household)}
}

func (s *stubHouseholdRepo) List(_ context.Context) ([]*domain.Household, error) {
	out := make([]*domain.Household, 0, len(s.households))
	for _, h := range s.households {
		clone := *h
		out = append(out, &clone)
	}
	return out, nil
}

func (s *stubHouseholdRepo) Create(_ context.Context, h *domain.Household) (*domain.Household, error) {
	for _, existing := range s.households {
		if existing.HouseholdCode == h.HouseholdCode {
			return nil, domain.ErrHouseholdExists
		}
	}
	clone := *h
	s.nextID++
	clone.ID = "h" + strconv.Itoa(s.nextID)
	s.households[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (s *stubHouseholdRepo) Delete(_ context.Context, id string) error {
	if _, ok := s.households[id]; !ok {
		return domain.ErrHouseholdNotFound
	}
	delete(s.households, id)
	return nil
}

type stubCertificateRepo struct {
	created *domain.Certificate
}

func (s *stubCertificateRepo) List(_ context.Context) ([]*domain.Certificate, error) {
	return nil, nil
}

func (s *stubCertificateRepo) Create(_ context.Context, c *domain.Certificate) (*domain.Certificate, error) {
	clone := *c
	clone.ID = "c1"
	s.created = &clone
	return &clone, nil
}

func (s *stubCertificateRepo) Delete(_ context.Context, id string) error {
	if s.created == nil || s.created.ID != id {
		return domain.ErrCertificateNotFound
	}
	s.created = nil
	return nil
}

type stubBlotterRepo struct {
	created *domain.BlotterEntry
}

func (s *stubBlotterRepo) List(_ context.Context) ([]*domain.BlotterEntry, error) {
	return nil, nil
}

func (s *stubBlotterRepo) Create(_ context.Context, b *domain.BlotterEntry) (*domain.BlotterEntry, error) {
	clone := *b
	clone.ID = "b1"
	s.created = &clone
	return &clone, nil
}

func (s *stubBlotterRepo) Delete(_ context.Context, id string) error {
	if s.created == nil || s.created.ID != id {
		return domain.ErrBlotterNotFound
	}
	s.created = nil
	return nil
}

func TestHouseholdService_Create_RequiresCode(t *testing.T) {
	svc := NewHouseholdService(newStubHouseholdRepo(), nil, zerolog.Nop())

	var vErr *domain.ValidationError
	if _, err := svc.Create(context.Background(), ports.CreateHouseholdInput{}, "tester"); !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestHouseholdService_Create_DuplicateCode(t *testing.T) {
	repo := newStubHouseholdRepo()
	svc := NewHouseholdService(repo, nil, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateHouseholdInput{HouseholdCode: "HH-001"}, "tester"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateHouseholdInput{HouseholdCode: "HH-001"}, "tester"); !errors.Is(err, domain.ErrHouseholdExists) {
		t.Fatalf("expected ErrHouseholdExists, got %v", err)
	}
}

func TestHouseholdService_Delete_NotFound(t *testing.T) {
	svc := NewHouseholdService(newStubHouseholdRepo(), nil, zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing", "tester"); !errors.Is(err, domain.ErrHouseholdNotFound) {
		t.Fatalf("expected ErrHouseholdNotFound, got %v", err)
	}
}

func TestCertificateService_Create_RequiresResidentAndType(t *testing.T) {
	svc := NewCertificateService(&stubCertificateRepo{}, nil, zerolog.Nop())

	var vErr *domain.ValidationError
	if _, err := svc.Create(context.Background(), ports.CreateCertificateInput{Type: "clearance"}, "tester"); !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCertificateService_Create_StampsIssuance(t *testing.T) {
	repo := &stubCertificateRepo{}
	svc := NewCertificateService(repo, nil, zerolog.Nop())

	cert, err := svc.Create(context.Background(), ports.CreateCertificateInput{
		ResidentID: "r1",
		Type:       "barangay clearance",
		IssuedBy:   "clerk",
	}, "clerk")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if cert.IssuedAt.IsZero() {
		t.Fatalf("expected issued_at to be stamped")
	}
	if cert.IssuedBy != "clerk" {
		t.Fatalf("expected issuer recorded, got %q", cert.IssuedBy)
	}
}

func TestBlotterService_Create_DefaultsStatusOpen(t *testing.T) {
	repo := &stubBlotterRepo{}
	svc := NewBlotterService(repo, nil, zerolog.Nop())

	entry, err := svc.Create(context.Background(), ports.CreateBlotterInput{
		IncidentDate: "2026-08-01",
		Description:  "noise complaint",
	}, "tester")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if entry.Status != domain.BlotterOpen {
		t.Fatalf("expected default status Open, got %s", entry.Status)
	}

	entry, err = svc.Create(context.Background(), ports.CreateBlotterInput{
		IncidentDate: "2026-08-02",
		Description:  "dispute",
		Status:       domain.BlotterPending,
	}, "tester")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if entry.Status != domain.BlotterPending {
		t.Fatalf("expected explicit status kept, got %s", entry.Status)
	}
}

func TestRecordsServices_EnqueueActivity(t *testing.T) {
	audit := &stubAudit{}
	households := NewHouseholdService(newStubHouseholdRepo(), audit, zerolog.Nop())
	blotter := NewBlotterService(&stubBlotterRepo{}, audit, zerolog.Nop())

	if _, err := households.Create(context.Background(), ports.CreateHouseholdInput{HouseholdCode: "HH-001"}, "clerk"); err != nil {
		t.Fatalf("household create failed: %v", err)
	}
	if _, err := blotter.Create(context.Background(), ports.CreateBlotterInput{Description: "x"}, "clerk"); err != nil {
		t.Fatalf("blotter create failed: %v", err)
	}

	if len(audit.entries) != 2 {
		t.Fatalf("expected 2 activity entries, got %d", len(audit.entries))
	}
	if audit.entries[0].Entity != "household" || audit.entries[1].Entity != "blotter" {
		t.Fatalf("unexpected entities: %+v", audit.entries)
	}
	if audit.entries[0].PerformedBy != "clerk" {
		t.Fatalf("expected actor recorded, got %q", audit.entries[0].PerformedBy)
	}
}
