package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/barangaylink/records-system/internal/core/domain"
	"github.com/barangaylink/records-system/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns the AuditService implementation used by the
// activity dispatcher workers.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists one activity entry. The trail is best-effort: callers
// log failures instead of surfacing them to the request path.
func (s *auditService) Process(ctx context.Context, in ports.ActivityInput) error {
	entry := &domain.ActivityEntry{
		Action:      in.Action,
		Entity:      in.Entity,
		EntityID:    in.EntityID,
		PerformedBy: in.PerformedBy,
		Detail:      in.Detail,
		RecordedAt:  time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	s.log.Debug().
		Str("action", in.Action).
		Str("entity", in.Entity).
		Str("entity_id", in.EntityID).
		Msg("activity recorded")

	return nil
}
