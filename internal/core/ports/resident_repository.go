package ports

import (
	"context"

	"github.com/barangaylink/records-system/internal/core/domain"
)

// ListResidentsFilter carries the query parameters for listing residents.
// Soft-deleted records are always excluded.
type ListResidentsFilter struct {
	// Query is a case-insensitive substring matched against the first or
	// last name. Empty means no name filter.
	Query    string
	Page     int // 1-based
	PageSize int
}

// ResidentRepository defines persistence operations for residents.
type ResidentRepository interface {
	Create(ctx context.Context, r *domain.Resident) (*domain.Resident, error)
	// FindByID returns the resident with its household joined, or
	// domain.ErrResidentNotFound when absent or soft-deleted.
	FindByID(ctx context.Context, id string) (*domain.Resident, error)
	Update(ctx context.Context, r *domain.Resident) error
	// SoftDelete marks the record deleted without removing it.
	SoftDelete(ctx context.Context, id string) error
	// List returns one page of household-joined residents ordered by last
	// name ascending, plus the total matching count.
	List(ctx context.Context, filter ListResidentsFilter) ([]*domain.Resident, int64, error)
	// ListAll returns every active resident matching the query, unpaginated,
	// in the same order as List.
	ListAll(ctx context.Context, query string) ([]*domain.Resident, error)
}
