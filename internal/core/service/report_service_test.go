package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/barangaylink/records-system/internal/core/ports"
)

type stubReportRepo struct {
	residents    int64
	certificates int64
	incidents    int64
	genders      []ports.LabelCount
	byMonth      map[int]int64
	yearAsked    int
}

func (r *stubReportRepo) CountActiveResidents(_ context.Context) (int64, error) {
	return r.residents, nil
}

func (r *stubReportRepo) CountCertificates(_ context.Context) (int64, error) {
	return r.certificates, nil
}

func (r *stubReportRepo) CountBlotterEntries(_ context.Context) (int64, error) {
	return r.incidents, nil
}

func (r *stubReportRepo) GenderCounts(_ context.Context) ([]ports.LabelCount, error) {
	return r.genders, nil
}

func (r *stubReportRepo) MonthlyIncidentCounts(_ context.Context, year int) (map[int]int64, error) {
	r.yearAsked = year
	return r.byMonth, nil
}

func TestReportService_Summary(t *testing.T) {
	repo := &stubReportRepo{residents: 120, certificates: 45, incidents: 7}
	svc := NewReportService(repo, zerolog.Nop())

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.Residents != 120 || summary.Certificates != 45 || summary.Incidents != 7 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestReportService_MonthlyIncidents_ZeroFilled(t *testing.T) {
	repo := &stubReportRepo{byMonth: map[int]int64{3: 5, 11: 2}}
	svc := NewReportService(repo, zerolog.Nop())
	svc.now = func() time.Time {
		return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	}

	rows, err := svc.MonthlyIncidents(context.Background())
	if err != nil {
		t.Fatalf("monthly incidents failed: %v", err)
	}
	if repo.yearAsked != 2025 {
		t.Fatalf("expected query for 2025, got %d", repo.yearAsked)
	}
	if len(rows) != 12 {
		t.Fatalf("expected 12 months, got %d", len(rows))
	}
	if rows[0].Month != "2025-01" || rows[11].Month != "2025-12" {
		t.Fatalf("months out of order: first=%s last=%s", rows[0].Month, rows[11].Month)
	}
	for i, row := range rows {
		want := int64(0)
		switch i + 1 {
		case 3:
			want = 5
		case 11:
			want = 2
		}
		if row.Count != want {
			t.Fatalf("month %s: expected %d, got %d", row.Month, want, row.Count)
		}
	}
}

func TestReportService_ResidentDemographics(t *testing.T) {
	repo := &stubReportRepo{genders: []ports.LabelCount{
		{Label: "Female", Count: 60},
		{Label: "Male", Count: 58},
	}}
	svc := NewReportService(repo, zerolog.Nop())

	rows, err := svc.ResidentDemographics(context.Background())
	if err != nil {
		t.Fatalf("demographics failed: %v", err)
	}
	if len(rows) != 2 || rows[0].Label != "Female" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
