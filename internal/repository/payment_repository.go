package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sentinel/internal/model"
)

// PaymentRepository defines payment collection access.
type PaymentRepository interface {
	List(ctx context.Context) ([]model.Payment, error)
	Insert(ctx context.Context, payment *model.Payment) (primitive.ObjectID, error)
}

type paymentRepository struct {
	col *mongo.Collection
}

// NewPaymentRepository creates a new payment repository.
func NewPaymentRepository(db *mongo.Database) PaymentRepository {
	return &paymentRepository{col: db.Collection("payments")}
}

// List returns all payments, newest first.
func (r *paymentRepository) List(ctx context.Context) ([]model.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	var payments []model.Payment
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	return payments, nil
}

// Insert stores one payment and returns its generated identity.
func (r *paymentRepository) Insert(ctx context.Context, payment *model.Payment) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, payment)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert payment: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}
