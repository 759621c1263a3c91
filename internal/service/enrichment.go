package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"sentinel/internal/model"
)

// UserResolver looks up the projected identity of a related user document.
// Implemented by repository.UserRepository.
type UserResolver interface {
	FindIdentityByID(ctx context.Context, id primitive.ObjectID) (*model.UserIdentity, error)
}

// resolveUsers performs one point lookup per foreign key, fanning out
// concurrently and waiting for the whole batch. The result slice is aligned
// with ids: a missing user leaves nil at its index, and only a store error
// fails the batch. Rows are never dropped.
func resolveUsers(ctx context.Context, resolver UserResolver, ids []primitive.ObjectID) ([]*model.UserIdentity, error) {
	identities := make([]*model.UserIdentity, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			identity, err := resolver.FindIdentityByID(ctx, id)
			if err != nil {
				return err
			}
			identities[i] = identity
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return identities, nil
}
