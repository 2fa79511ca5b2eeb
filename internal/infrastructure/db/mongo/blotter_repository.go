package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/barangaylink/records-system/internal/core/domain"
)

const collectionBlotter = "blotter_entries"

type BlotterRepository struct {
	coll *mongo.Collection
}

func NewBlotterRepository(db *mongo.Database) *BlotterRepository {
	return &BlotterRepository{coll: db.Collection(collectionBlotter)}
}

type mongoBlotter struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty"`
	ResidentID     *primitive.ObjectID `bson:"resident_id,omitempty"`
	IncidentDate   string              `bson:"incident_date,omitempty"`
	Description    string              `bson:"description,omitempty"`
	ReportedBy     string              `bson:"reported_by,omitempty"`
	AccommodatedBy string              `bson:"accommodated_by,omitempty"`
	Status         string              `bson:"status"`
	CreatedAt      time.Time           `bson:"created_at"`
	UpdatedAt      time.Time           `bson:"updated_at"`
	Resident       []mongoResident     `bson:"resident,omitempty"` // $lookup output
}

func (m mongoBlotter) toDomain() *domain.BlotterEntry {
	b := &domain.BlotterEntry{
		ID:             m.ID.Hex(),
		IncidentDate:   m.IncidentDate,
		Description:    m.Description,
		ReportedBy:     m.ReportedBy,
		AccommodatedBy: m.AccommodatedBy,
		Status:         domain.BlotterStatus(m.Status),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.ResidentID != nil {
		b.ResidentID = m.ResidentID.Hex()
	}
	if len(m.Resident) > 0 {
		b.Resident = m.Resident[0].toDomain()
	}
	return b
}

func (r *BlotterRepository) List(ctx context.Context) ([]*domain.BlotterEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.D{{Key: "incident_date", Value: -1}}}},
		residentLookup,
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list blotter entries: %w", err)
	}
	defer cur.Close(ctx)

	entries := make([]*domain.BlotterEntry, 0)
	for cur.Next(ctx) {
		var m mongoBlotter
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode blotter entry: %w", err)
		}
		entries = append(entries, m.toDomain())
	}
	return entries, cur.Err()
}

func (r *BlotterRepository) Create(ctx context.Context, b *domain.BlotterEntry) (*domain.BlotterEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoBlotter{
		IncidentDate:   b.IncidentDate,
		Description:    b.Description,
		ReportedBy:     b.ReportedBy,
		AccommodatedBy: b.AccommodatedBy,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
	if b.ResidentID != "" {
		oid, err := primitive.ObjectIDFromHex(b.ResidentID)
		if err != nil {
			return nil, domain.Validation("invalid resident_id")
		}
		doc.ResidentID = &oid
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert blotter entry: %w", err)
	}

	created := *b
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *BlotterRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBlotterNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete blotter entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBlotterNotFound
	}
	return nil
}
