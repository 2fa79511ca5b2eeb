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

const collectionCertificates = "certificates"

type CertificateRepository struct {
	coll *mongo.Collection
}

func NewCertificateRepository(db *mongo.Database) *CertificateRepository {
	return &CertificateRepository{coll: db.Collection(collectionCertificates)}
}

type mongoCertificate struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ResidentID primitive.ObjectID `bson:"resident_id"`
	Type       string             `bson:"type"`
	IssuedAt   time.Time          `bson:"issued_at"`
	IssuedBy   string             `bson:"issued_by,omitempty"`
	Remarks    string             `bson:"remarks,omitempty"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
	Resident   []mongoResident    `bson:"resident,omitempty"` // $lookup output
}

func (m mongoCertificate) toDomain() *domain.Certificate {
	c := &domain.Certificate{
		ID:         m.ID.Hex(),
		ResidentID: m.ResidentID.Hex(),
		Type:       m.Type,
		IssuedAt:   m.IssuedAt,
		IssuedBy:   m.IssuedBy,
		Remarks:    m.Remarks,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if len(m.Resident) > 0 {
		c.Resident = m.Resident[0].toDomain()
	}
	return c
}

// residentLookup joins the resident referenced by a record.
var residentLookup = bson.D{{Key: "$lookup", Value: bson.M{
	"from":         collectionResidents,
	"localField":   "resident_id",
	"foreignField": "_id",
	"as":           "resident",
}}}

func (r *CertificateRepository) List(ctx context.Context) ([]*domain.Certificate, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.D{{Key: "issued_at", Value: -1}}}},
		residentLookup,
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	defer cur.Close(ctx)

	certificates := make([]*domain.Certificate, 0)
	for cur.Next(ctx) {
		var m mongoCertificate
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode certificate: %w", err)
		}
		certificates = append(certificates, m.toDomain())
	}
	return certificates, cur.Err()
}

func (r *CertificateRepository) Create(ctx context.Context, c *domain.Certificate) (*domain.Certificate, error) {
	residentOID, err := primitive.ObjectIDFromHex(c.ResidentID)
	if err != nil {
		return nil, domain.Validation("invalid resident_id")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCertificate{
		ResidentID: residentOID,
		Type:       c.Type,
		IssuedAt:   c.IssuedAt,
		IssuedBy:   c.IssuedBy,
		Remarks:    c.Remarks,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert certificate: %w", err)
	}

	created := *c
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CertificateRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCertificateNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete certificate: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCertificateNotFound
	}
	return nil
}
