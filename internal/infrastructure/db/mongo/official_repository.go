package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/barangaylink/records-system/internal/core/domain"
)

const collectionOfficials = "officials"

type OfficialRepository struct {
	coll *mongo.Collection
}

func NewOfficialRepository(db *mongo.Database) *OfficialRepository {
	return &OfficialRepository{coll: db.Collection(collectionOfficials)}
}

type mongoOfficial struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Position  string             `bson:"position,omitempty"`
	TermStart string             `bson:"term_start,omitempty"`
	TermEnd   string             `bson:"term_end,omitempty"`
	Contact   string             `bson:"contact,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (m mongoOfficial) toDomain() *domain.Official {
	return &domain.Official{
		ID:        m.ID.Hex(),
		Name:      m.Name,
		Position:  m.Position,
		TermStart: m.TermStart,
		TermEnd:   m.TermEnd,
		Contact:   m.Contact,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *OfficialRepository) List(ctx context.Context) ([]*domain.Official, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list officials: %w", err)
	}
	defer cur.Close(ctx)

	officials := make([]*domain.Official, 0)
	for cur.Next(ctx) {
		var m mongoOfficial
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode official: %w", err)
		}
		officials = append(officials, m.toDomain())
	}
	return officials, cur.Err()
}

func (r *OfficialRepository) Create(ctx context.Context, o *domain.Official) (*domain.Official, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoOfficial{
		Name:      o.Name,
		Position:  o.Position,
		TermStart: o.TermStart,
		TermEnd:   o.TermEnd,
		Contact:   o.Contact,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert official: %w", err)
	}

	created := *o
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *OfficialRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrOfficialNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete official: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrOfficialNotFound
	}
	return nil
}
