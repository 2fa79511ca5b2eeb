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

type HouseholdRepository struct {
	coll *mongo.Collection
}

func NewHouseholdRepository(db *mongo.Database) *HouseholdRepository {
	return &HouseholdRepository{coll: db.Collection(collectionHouseholds)}
}

type mongoHousehold struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	HouseholdCode    string             `bson:"household_code"`
	AddressLine      string             `bson:"address_line,omitempty"`
	Barangay         string             `bson:"barangay,omitempty"`
	CityMunicipality string             `bson:"city_municipality,omitempty"`
	Province         string             `bson:"province,omitempty"`
	PostalCode       string             `bson:"postal_code,omitempty"`
	CreatedAt        time.Time          `bson:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at"`
}

func (m mongoHousehold) toDomain() *domain.Household {
	return &domain.Household{
		ID:               m.ID.Hex(),
		HouseholdCode:    m.HouseholdCode,
		AddressLine:      m.AddressLine,
		Barangay:         m.Barangay,
		CityMunicipality: m.CityMunicipality,
		Province:         m.Province,
		PostalCode:       m.PostalCode,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func (r *HouseholdRepository) List(ctx context.Context) ([]*domain.Household, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "household_code", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list households: %w", err)
	}
	defer cur.Close(ctx)

	households := make([]*domain.Household, 0)
	for cur.Next(ctx) {
		var m mongoHousehold
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode household: %w", err)
		}
		households = append(households, m.toDomain())
	}
	return households, cur.Err()
}

func (r *HouseholdRepository) Create(ctx context.Context, h *domain.Household) (*domain.Household, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoHousehold{
		HouseholdCode:    h.HouseholdCode,
		AddressLine:      h.AddressLine,
		Barangay:         h.Barangay,
		CityMunicipality: h.CityMunicipality,
		Province:         h.Province,
		PostalCode:       h.PostalCode,
		CreatedAt:        h.CreatedAt,
		UpdatedAt:        h.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrHouseholdExists
		}
		return nil, fmt.Errorf("insert household: %w", err)
	}

	created := *h
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *HouseholdRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrHouseholdNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete household: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrHouseholdNotFound
	}
	return nil
}
