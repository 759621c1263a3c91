package db

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"sentinel/internal/errors"
)

// Store owns the process-wide Mongo handle. Connect may be called from
// concurrent requests; calls serialize on the mutex, the first success wins
// and every later call reuses the cached handle. Close resets the cached
// state so a later Connect can re-establish it.
type Store struct {
	uri    string
	dbName string
	logger *zap.Logger

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

// NewStore creates an unconnected Store for the given connection string.
func NewStore(uri, dbName string, logger *zap.Logger) *Store {
	return &Store{uri: uri, dbName: dbName, logger: logger}
}

// Connect dials the store once. Subsequent calls return nil without
// re-connecting until Close has been called.
func (s *Store) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
	if err != nil {
		return fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("ping mongodb: %w", err)
	}

	s.client = client
	s.db = client.Database(s.dbName)
	s.logger.Info("connected to mongodb", zap.String("database", s.dbName))
	return nil
}

// Database returns the cached handle or ErrNotInitialized before a
// successful Connect. Hitting that error is a wiring bug, not an
// operational condition.
func (s *Store) Database() (*mongo.Database, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, errors.ErrNotInitialized
	}
	return s.db, nil
}

// Collection returns a named collection from the cached handle.
func (s *Store) Collection(name string) (*mongo.Collection, error) {
	db, err := s.Database()
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

// Close disconnects and clears the cached handle.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	s.db = nil
	s.logger.Info("database connection closed")
	return err
}
