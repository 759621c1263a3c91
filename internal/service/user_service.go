package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sentinel/internal/errors"
	"sentinel/internal/model"
	"sentinel/internal/repository"
)

// StatusUpdate carries the optional fields of a user status mutation. Nil
// means the field was not supplied and must not be touched.
type StatusUpdate struct {
	Status  *string
	Blocked *bool
}

// UserService exposes user listing and the status mutation.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, int64, error)
	UpdateStatus(ctx context.Context, userID string, update StatusUpdate) (int64, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// ListUsers returns all users (credentials stripped) and the total count.
func (s *userService) ListUsers(ctx context.Context) ([]model.User, int64, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// UpdateStatus applies a partial update of status/blocked plus an updatedAt
// refresh. A malformed id fails validation before any store call; a missing
// user is not an error, it just modifies zero documents.
func (s *userService) UpdateStatus(ctx context.Context, userID string, update StatusUpdate) (int64, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return 0, errors.ErrInvalidObjectID
	}

	fields := bson.M{"updatedAt": time.Now()}
	if update.Status != nil {
		fields["status"] = *update.Status
	}
	if update.Blocked != nil {
		fields["blocked"] = *update.Blocked
	}

	return s.repo.UpdateStatus(ctx, id, fields)
}
