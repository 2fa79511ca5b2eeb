package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/barangaylink/records-system/internal/core/ports"
)

// ReportService builds the dashboard and analytics projections.
type ReportService struct {
	repo   ports.ReportRepository
	now    func() time.Time
	logger zerolog.Logger
}

func NewReportService(repo ports.ReportRepository, logger zerolog.Logger) *ReportService {
	return &ReportService{repo: repo, now: time.Now, logger: logger}
}

func (s *ReportService) Summary(ctx context.Context) (*ports.Summary, error) {
	residents, err := s.repo.CountActiveResidents(ctx)
	if err != nil {
		return nil, fmt.Errorf("report summary: %w", err)
	}
	certificates, err := s.repo.CountCertificates(ctx)
	if err != nil {
		return nil, fmt.Errorf("report summary: %w", err)
	}
	incidents, err := s.repo.CountBlotterEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("report summary: %w", err)
	}

	return &ports.Summary{
		Residents:    residents,
		Certificates: certificates,
		Incidents:    incidents,
	}, nil
}

func (s *ReportService) ResidentDemographics(ctx context.Context) ([]ports.LabelCount, error) {
	counts, err := s.repo.GenderCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("resident demographics: %w", err)
	}
	return counts, nil
}

// MonthlyIncidents returns one entry per calendar month of the current
// year in chronological order. Months with no incidents report zero so
// charts never show gaps.
func (s *ReportService) MonthlyIncidents(ctx context.Context) ([]ports.MonthCount, error) {
	year := s.now().UTC().Year()
	byMonth, err := s.repo.MonthlyIncidentCounts(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("monthly incidents: %w", err)
	}

	out := make([]ports.MonthCount, 12)
	for m := 1; m <= 12; m++ {
		out[m-1] = ports.MonthCount{
			Month: fmt.Sprintf("%04d-%02d", year, m),
			Count: byMonth[m],
		}
	}
	return out, nil
}
