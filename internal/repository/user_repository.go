package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sentinel/internal/model"
)

// UserRepository defines user collection access.
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	Count(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	FindIdentityByID(ctx context.Context, id primitive.ObjectID) (*model.UserIdentity, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error)
}

type userRepository struct {
	col *mongo.Collection
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{col: db.Collection("users")}
}

// List returns all users with credential fields excluded at the query level.
func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	opts := options.Find().SetProjection(bson.M{
		"password":     0,
		"access_token": 0,
		"otp":          0,
	})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	var users []model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *userRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": since}})
	if err != nil {
		return 0, fmt.Errorf("count recent users: %w", err)
	}
	return n, nil
}

// FindIdentityByID looks up the projected identity fields of one user.
// A missing user returns (nil, nil): absence is data, not an error.
func (r *userRepository) FindIdentityByID(ctx context.Context, id primitive.ObjectID) (*model.UserIdentity, error) {
	opts := options.FindOne().SetProjection(bson.M{"name": 1, "email": 1, "phone": 1})
	var identity model.UserIdentity
	err := r.col.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&identity)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", id.Hex(), err)
	}
	return &identity, nil
}

// UpdateStatus applies a partial $set and returns the modified count.
func (r *userRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, fmt.Errorf("update user %s: %w", id.Hex(), err)
	}
	return res.ModifiedCount, nil
}
