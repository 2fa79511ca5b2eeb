package mongo

import (
	"context"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/barangaylink/records-system/internal/core/domain"
	"github.com/barangaylink/records-system/internal/core/ports"
)

// ReportRepository runs the aggregate projections behind the dashboard.
type ReportRepository struct {
	db *mongo.Database
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) CountActiveResidents(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.db.Collection(collectionResidents).
		CountDocuments(ctx, bson.M{"status": string(domain.RecordActive)})
}

func (r *ReportRepository) CountCertificates(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.db.Collection(collectionCertificates).CountDocuments(ctx, bson.M{})
}

func (r *ReportRepository) CountBlotterEntries(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.db.Collection(collectionBlotter).CountDocuments(ctx, bson.M{})
}

func (r *ReportRepository) GenderCounts(ctx context.Context) ([]ports.LabelCount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"status": string(domain.RecordActive)}}},
		bson.D{{Key: "$group", Value: bson.M{"_id": "$gender", "count": bson.M{"$sum": 1}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cur, err := r.db.Collection(collectionResidents).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("gender counts: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]ports.LabelCount, 0)
	for cur.Next(ctx) {
		var row struct {
			Label string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode gender count: %w", err)
		}
		out = append(out, ports.LabelCount{Label: row.Label, Count: row.Count})
	}
	return out, cur.Err()
}

// MonthlyIncidentCounts groups blotter entries by the month of their
// incident date. Incident dates are stored as YYYY-MM-DD strings, so the
// month is extracted with $substrBytes rather than a date operator.
func (r *ReportRepository) MonthlyIncidentCounts(ctx context.Context, year int) (map[int]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	prefix := fmt.Sprintf("%04d-", year)
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"incident_date": bson.M{"$gte": prefix + "01-01", "$lte": prefix + "12-31"},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$substrBytes": bson.A{"$incident_date", 5, 2}},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.db.Collection(collectionBlotter).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("monthly incident counts: %w", err)
	}
	defer cur.Close(ctx)

	out := make(map[int]int64)
	for cur.Next(ctx) {
		var row struct {
			Month string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode monthly count: %w", err)
		}
		m, err := strconv.Atoi(row.Month)
		if err != nil || m < 1 || m > 12 {
			continue
		}
		out[m] = row.Count
	}
	return out, cur.Err()
}
