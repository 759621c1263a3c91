package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InspectionRepository defines database-level introspection access.
type InspectionRepository interface {
	Collections(ctx context.Context) ([]string, error)
	Count(ctx context.Context, collection string) (int64, error)
	Sample(ctx context.Context, collection string, limit int64) ([]bson.M, error)
}

type inspectionRepository struct {
	db *mongo.Database
}

// NewInspectionRepository creates a new introspection repository.
func NewInspectionRepository(db *mongo.Database) InspectionRepository {
	return &inspectionRepository{db: db}
}

func (r *inspectionRepository) Collections(ctx context.Context) ([]string, error) {
	names, err := r.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

func (r *inspectionRepository) Count(ctx context.Context, collection string) (int64, error) {
	n, err := r.db.Collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

// Sample returns up to limit arbitrary documents from a collection.
func (r *inspectionRepository) Sample(ctx context.Context, collection string, limit int64) ([]bson.M, error) {
	opts := options.Find().SetLimit(limit)
	cur, err := r.db.Collection(collection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("sample %s: %w", collection, err)
	}
	docs := make([]bson.M, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s sample: %w", collection, err)
	}
	return docs, nil
}
