package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sentinel/internal/model"
)

// TaskRepository defines task/product collection access.
type TaskRepository interface {
	List(ctx context.Context) ([]model.Task, error)
	Count(ctx context.Context) (int64, error)
	CountByType(ctx context.Context, taskType model.TaskType) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	CountByCategory(ctx context.Context) ([]model.CategoryCount, error)
	TotalValue(ctx context.Context) (float64, error)
	EarningsByType(ctx context.Context, commissionRate float64) ([]model.TypeEarnings, error)
}

type taskRepository struct {
	col *mongo.Collection
}

// NewTaskRepository creates a new task repository over the products collection.
func NewTaskRepository(db *mongo.Database) TaskRepository {
	return &taskRepository{col: db.Collection("products")}
}

// List returns all tasks, newest first.
func (r *taskRepository) List(ctx context.Context) ([]model.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	var tasks []model.Task
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return tasks, nil
}

func (r *taskRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return n, nil
}

func (r *taskRepository) CountByType(ctx context.Context, taskType model.TaskType) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"task_type": taskType})
	if err != nil {
		return 0, fmt.Errorf("count %s tasks: %w", taskType, err)
	}
	return n, nil
}

func (r *taskRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": since}})
	if err != nil {
		return 0, fmt.Errorf("count recent tasks: %w", err)
	}
	return n, nil
}

// CountByCategory groups tasks by category, sorted by count descending.
// Tie order between equal counts is whatever the store returns.
func (r *taskRepository) CountByCategory(ctx context.Context) ([]model.CategoryCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "category", Value: "$_id"},
			{Key: "count", Value: 1},
			{Key: "_id", Value: 0},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("group tasks by category: %w", err)
	}
	stats := make([]model.CategoryCount, 0)
	if err := cur.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("decode category stats: %w", err)
	}
	return stats, nil
}

// TotalValue sums the price field across all tasks. Documents without a
// numeric price contribute zero; an empty collection totals zero.
func (r *taskRepository) TotalValue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("sum task value: %w", err)
	}
	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("decode task value: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

// EarningsByType groups tasks by task_type with per-group value totals and
// the commission computed inside the pipeline.
func (r *taskRepository) EarningsByType(ctx context.Context, commissionRate float64) ([]model.TypeEarnings, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$task_type"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalValue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "type", Value: "$_id"},
			{Key: "count", Value: 1},
			{Key: "totalValue", Value: 1},
			{Key: "commission", Value: bson.D{{Key: "$multiply", Value: bson.A{"$totalValue", commissionRate}}}},
			{Key: "_id", Value: 0},
		}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("group earnings by type: %w", err)
	}
	rows := make([]model.TypeEarnings, 0)
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode type earnings: %w", err)
	}
	return rows, nil
}
