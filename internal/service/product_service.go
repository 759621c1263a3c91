package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"sentinel/internal/model"
	"sentinel/internal/repository"
)

// ProductService exposes the enriched task/product listing.
type ProductService interface {
	ListProducts(ctx context.Context) ([]model.EnrichedTask, error)
}

type productService struct {
	taskRepo repository.TaskRepository
	users    UserResolver
}

// NewProductService creates a new product service.
func NewProductService(taskRepo repository.TaskRepository, users UserResolver) ProductService {
	return &productService{taskRepo: taskRepo, users: users}
}

// ListProducts returns all tasks, newest first, each with its creator's
// identity attached (null when the creator no longer exists).
func (s *productService) ListProducts(ctx context.Context) ([]model.EnrichedTask, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, len(tasks))
	for i, t := range tasks {
		ids[i] = t.CreatedBy
	}
	creators, err := resolveUsers(ctx, s.users, ids)
	if err != nil {
		return nil, err
	}

	products := make([]model.EnrichedTask, len(tasks))
	for i := range tasks {
		products[i] = model.EnrichedTask{Task: tasks[i], Creator: creators[i]}
	}
	return products, nil
}
