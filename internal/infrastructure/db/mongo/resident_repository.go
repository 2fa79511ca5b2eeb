package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/barangaylink/records-system/internal/core/domain"
	"github.com/barangaylink/records-system/internal/core/ports"
)

const (
	collectionResidents  = "residents"
	collectionHouseholds = "households"
)

type ResidentRepository struct {
	coll *mongo.Collection
}

func NewResidentRepository(db *mongo.Database) *ResidentRepository {
	return &ResidentRepository{coll: db.Collection(collectionResidents)}
}

type mongoResident struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty"`
	HouseholdID   *primitive.ObjectID `bson:"household_id,omitempty"`
	FirstName     string              `bson:"first_name"`
	MiddleName    string              `bson:"middle_name,omitempty"`
	LastName      string              `bson:"last_name"`
	Suffix        string              `bson:"suffix,omitempty"`
	BirthDate     string              `bson:"birth_date,omitempty"`
	Address       string              `bson:"address,omitempty"`
	Gender        string              `bson:"gender"`
	CivilStatus   string              `bson:"civil_status"`
	Occupation    string              `bson:"occupation,omitempty"`
	ContactNumber string              `bson:"contact_number,omitempty"`
	Email         string              `bson:"email,omitempty"`
	NationalID    string              `bson:"national_id,omitempty"`
	VoterStatus   bool                `bson:"voter_status"`
	IsHead        bool                `bson:"is_head"`
	Remarks       string              `bson:"remarks,omitempty"`
	Status        string              `bson:"status"`
	CreatedAt     time.Time           `bson:"created_at"`
	UpdatedAt     time.Time           `bson:"updated_at"`
	DeletedAt     *time.Time          `bson:"deleted_at,omitempty"`
	Household     []mongoHousehold    `bson:"household,omitempty"` // $lookup output
}

func (m mongoResident) toDomain() *domain.Resident {
	r := &domain.Resident{
		ID:            m.ID.Hex(),
		FirstName:     m.FirstName,
		MiddleName:    m.MiddleName,
		LastName:      m.LastName,
		Suffix:        m.Suffix,
		BirthDate:     m.BirthDate,
		Address:       m.Address,
		Gender:        domain.Gender(m.Gender),
		CivilStatus:   domain.CivilStatus(m.CivilStatus),
		Occupation:    m.Occupation,
		ContactNumber: m.ContactNumber,
		Email:         m.Email,
		NationalID:    m.NationalID,
		VoterStatus:   m.VoterStatus,
		IsHead:        m.IsHead,
		Remarks:       m.Remarks,
		Status:        domain.RecordStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     m.DeletedAt,
	}
	if m.HouseholdID != nil {
		r.HouseholdID = m.HouseholdID.Hex()
	}
	if len(m.Household) > 0 {
		r.Household = m.Household[0].toDomain()
	}
	return r
}

func (r *ResidentRepository) toDoc(res *domain.Resident) (bson.M, error) {
	doc := bson.M{
		"first_name":     res.FirstName,
		"middle_name":    res.MiddleName,
		"last_name":      res.LastName,
		"suffix":         res.Suffix,
		"birth_date":     res.BirthDate,
		"address":        res.Address,
		"gender":         string(res.Gender),
		"civil_status":   string(res.CivilStatus),
		"occupation":     res.Occupation,
		"contact_number": res.ContactNumber,
		"email":          res.Email,
		"national_id":    res.NationalID,
		"voter_status":   res.VoterStatus,
		"is_head":        res.IsHead,
		"remarks":        res.Remarks,
		"status":         string(res.Status),
		"created_at":     res.CreatedAt,
		"updated_at":     res.UpdatedAt,
	}
	if res.HouseholdID != "" {
		oid, err := primitive.ObjectIDFromHex(res.HouseholdID)
		if err != nil {
			return nil, domain.Validation("invalid household_id")
		}
		doc["household_id"] = oid
	} else {
		doc["household_id"] = nil
	}
	return doc, nil
}

func (r *ResidentRepository) Create(ctx context.Context, res *domain.Resident) (*domain.Resident, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := r.toDoc(res)
	if err != nil {
		return nil, err
	}

	ins, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert resident: %w", err)
	}

	created := *res
	created.ID = ins.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// activeByID matches an active resident by id.
func activeByID(oid primitive.ObjectID) bson.M {
	return bson.M{"_id": oid, "status": string(domain.RecordActive)}
}

// householdLookup joins the household referenced by the resident.
var householdLookup = bson.D{{Key: "$lookup", Value: bson.M{
	"from":         collectionHouseholds,
	"localField":   "household_id",
	"foreignField": "_id",
	"as":           "household",
}}}

func (r *ResidentRepository) FindByID(ctx context.Context, id string) (*domain.Resident, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrResidentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: activeByID(oid)}},
		householdLookup,
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("find resident: %w", err)
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return nil, fmt.Errorf("find resident: %w", err)
		}
		return nil, domain.ErrResidentNotFound
	}

	var m mongoResident
	if err := cur.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode resident: %w", err)
	}
	return m.toDomain(), nil
}

func (r *ResidentRepository) Update(ctx context.Context, res *domain.Resident) error {
	oid, err := primitive.ObjectIDFromHex(res.ID)
	if err != nil {
		return domain.ErrResidentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := r.toDoc(res)
	if err != nil {
		return err
	}

	upd, err := r.coll.UpdateOne(ctx, activeByID(oid), bson.M{"$set": doc})
	if err != nil {
		return fmt.Errorf("update resident: %w", err)
	}
	if upd.MatchedCount == 0 {
		return domain.ErrResidentNotFound
	}
	return nil
}

func (r *ResidentRepository) SoftDelete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrResidentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx, activeByID(oid), bson.M{"$set": bson.M{
		"status":     string(domain.RecordDeleted),
		"deleted_at": now,
		"updated_at": now,
	}})
	if err != nil {
		return fmt.Errorf("delete resident: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrResidentNotFound
	}
	return nil
}

// nameFilter builds the active-record filter, optionally narrowed by a
// case-insensitive substring match on first or last name.
func nameFilter(query string) bson.M {
	filter := bson.M{"status": string(domain.RecordActive)}
	if query != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"first_name": re},
			bson.M{"last_name": re},
		}
	}
	return filter
}

func (r *ResidentRepository) List(ctx context.Context, f ports.ListResidentsFilter) ([]*domain.Resident, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := nameFilter(f.Query)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count residents: %w", err)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "last_name", Value: 1}, {Key: "first_name", Value: 1}}}},
		bson.D{{Key: "$skip", Value: int64(f.Page-1) * int64(f.PageSize)}},
		bson.D{{Key: "$limit", Value: int64(f.PageSize)}},
		householdLookup,
	}

	rows, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *ResidentRepository) ListAll(ctx context.Context, query string) ([]*domain.Resident, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: nameFilter(query)}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "last_name", Value: 1}, {Key: "first_name", Value: 1}}}},
		householdLookup,
	}
	return r.aggregate(ctx, pipeline)
}

func (r *ResidentRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]*domain.Resident, error) {
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list residents: %w", err)
	}
	defer cur.Close(ctx)

	residents := make([]*domain.Resident, 0)
	for cur.Next(ctx) {
		var m mongoResident
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode resident: %w", err)
		}
		residents = append(residents, m.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list residents: %w", err)
	}
	return residents, nil
}
