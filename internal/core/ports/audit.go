package ports

import (
	"context"

	"github.com/barangaylink/records-system/internal/core/domain"
)

// ActivityInput is the DTO handed from services to the audit dispatcher.
type ActivityInput struct {
	Action      string
	Entity      string
	EntityID    string
	PerformedBy string
	Detail      map[string]any
}

// AuditRepository persists activity entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.ActivityEntry) error
}

// AuditService processes queued activity entries.
type AuditService interface {
	Process(ctx context.Context, input ActivityInput) error
}

// AuditDispatcher enqueues activity entries for asynchronous persistence.
// Services treat a nil dispatcher as "auditing disabled".
type AuditDispatcher interface {
	Enqueue(input ActivityInput)
}
