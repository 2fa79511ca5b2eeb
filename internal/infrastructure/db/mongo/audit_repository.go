package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/barangaylink/records-system/internal/core/domain"
)

const collectionActivityLog = "activity_log"

// AuditRepository appends to the write-only activity trail.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(collectionActivityLog)}
}

func (r *AuditRepository) Insert(ctx context.Context, entry *domain.ActivityEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := map[string]any{
		"action":       entry.Action,
		"entity":       entry.Entity,
		"entity_id":    entry.EntityID,
		"performed_by": entry.PerformedBy,
		"recorded_at":  entry.RecordedAt,
	}
	if len(entry.Detail) > 0 {
		doc["detail"] = entry.Detail
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity entry: %w", err)
	}
	return nil
}
