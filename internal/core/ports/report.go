package ports

import "context"

// Summary holds the aggregate counts shown on the dashboard.
type Summary struct {
	Residents    int64 `json:"residents"`
	Certificates int64 `json:"certificates"`
	Incidents    int64 `json:"incidents"`
}

// LabelCount is a generic group-by projection row.
type LabelCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// MonthCount is the incident count for one calendar month.
type MonthCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int64  `json:"count"`
}

// ReportRepository provides the aggregate projections backing reports.
type ReportRepository interface {
	// CountActiveResidents counts residents excluding soft-deleted records.
	CountActiveResidents(ctx context.Context) (int64, error)
	CountCertificates(ctx context.Context) (int64, error)
	CountBlotterEntries(ctx context.Context) (int64, error)
	// GenderCounts groups active residents by gender.
	GenderCounts(ctx context.Context) ([]LabelCount, error)
	// MonthlyIncidentCounts returns per-month incident counts for the given
	// year. Months with no incidents are absent from the result.
	MonthlyIncidentCounts(ctx context.Context, year int) (map[int]int64, error)
}

// ReportService exposes the dashboard and analytics projections.
type ReportService interface {
	Summary(ctx context.Context) (*Summary, error)
	ResidentDemographics(ctx context.Context) ([]LabelCount, error)
	// MonthlyIncidents always returns exactly 12 entries for the current
	// year, in calendar order, zero-filled for quiet months.
	MonthlyIncidents(ctx context.Context) ([]MonthCount, error)
}
