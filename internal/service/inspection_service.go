package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sentinel/internal/model"
	"sentinel/internal/repository"
)

// sampleLimit caps the number of documents returned by an inspection.
const sampleLimit = 5

// InspectionService exposes collection listing and per-collection reports.
type InspectionService interface {
	Collections(ctx context.Context) ([]string, error)
	Inspect(ctx context.Context, collection string) (*model.CollectionReport, error)
}

type inspectionService struct {
	repo repository.InspectionRepository
}

// NewInspectionService creates a new introspection service.
func NewInspectionService(repo repository.InspectionRepository) InspectionService {
	return &inspectionService{repo: repo}
}

func (s *inspectionService) Collections(ctx context.Context) ([]string, error) {
	return s.repo.Collections(ctx)
}

// Inspect reports the document count, a bounded sample, and a schema derived
// from the first sampled document only. The schema is a sampling heuristic:
// fields absent from that one document are not reported.
func (s *inspectionService) Inspect(ctx context.Context, collection string) (*model.CollectionReport, error) {
	count, err := s.repo.Count(ctx, collection)
	if err != nil {
		return nil, err
	}
	sample, err := s.repo.Sample(ctx, collection, sampleLimit)
	if err != nil {
		return nil, err
	}

	schema := make(map[string]string)
	if len(sample) > 0 {
		for key, value := range sample[0] {
			schema[key] = valueKind(value)
		}
	}

	return &model.CollectionReport{
		Collection: collection,
		Count:      count,
		Schema:     schema,
		Sample:     sample,
	}, nil
}

// valueKind names the runtime kind of a decoded BSON value in
// driver-agnostic terms.
func valueKind(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case int32, int64, float64, primitive.Decimal128:
		return "number"
	case primitive.DateTime:
		return "date"
	case primitive.ObjectID:
		return "objectId"
	case primitive.A:
		return "array"
	case bson.M, bson.D:
		return "object"
	case primitive.Binary:
		return "binary"
	default:
		return "unknown"
	}
}
