package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"sentinel/internal/config"
	"sentinel/internal/db"
	"sentinel/internal/model"
)

// Seeds the configured database with a small demo dataset so the admin API
// has something to report on locally. Collections that already hold
// documents are left untouched.
func main() {
	logger := zap.Must(zap.NewDevelopment())
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	store := db.NewStore(cfg.MongoURI, config.DatabaseName(cfg.MongoURI), logger)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := store.Connect(ctx); err != nil {
		logger.Fatal("mongodb connect", zap.Error(err))
	}
	defer func() {
		_ = store.Close(context.Background())
	}()

	database, err := store.Database()
	if err != nil {
		logger.Fatal("mongodb handle", zap.Error(err))
	}

	userIDs, err := seedUsers(ctx, database.Collection("users"), logger)
	if err != nil {
		logger.Fatal("seed users", zap.Error(err))
	}
	taskIDs, err := seedTasks(ctx, database.Collection("products"), userIDs, logger)
	if err != nil {
		logger.Fatal("seed tasks", zap.Error(err))
	}
	if err := seedPayments(ctx, database.Collection("payments"), userIDs, taskIDs, logger); err != nil {
		logger.Fatal("seed payments", zap.Error(err))
	}

	logger.Info("seed completed")
}

func seedUsers(ctx context.Context, col *mongo.Collection, logger *zap.Logger) ([]primitive.ObjectID, error) {
	if skip, err := alreadySeeded(ctx, col, logger); skip || err != nil {
		return nil, err
	}

	now := time.Now()
	users := []interface{}{
		demoUser("Amina Yusuf", "amina@example.com", "+2348012340001", "active", now.AddDate(0, -3, 0)),
		demoUser("Bola Adeyemi", "bola@example.com", "+2348012340002", "active", now.AddDate(0, -1, 0)),
		demoUser("Chidi Okafor", "chidi@example.com", "+2348012340003", "pending", now.AddDate(0, 0, -10)),
		demoUser("Dada Balogun", "dada@example.com", "+2348012340004", "active", now.AddDate(0, 0, -2)),
	}

	res, err := col.InsertMany(ctx, users)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, len(res.InsertedIDs))
	for i, raw := range res.InsertedIDs {
		ids[i] = raw.(primitive.ObjectID)
	}
	logger.Info("seeded users", zap.Int("count", len(ids)))
	return ids, nil
}

func seedTasks(ctx context.Context, col *mongo.Collection, userIDs []primitive.ObjectID, logger *zap.Logger) ([]primitive.ObjectID, error) {
	if skip, err := alreadySeeded(ctx, col, logger); skip || err != nil {
		return nil, err
	}
	if len(userIDs) == 0 {
		return nil, nil
	}

	now := time.Now()
	tasks := []interface{}{
		demoTask("groceries", model.TaskTypeBuy, 120.50, userIDs[0], now.AddDate(0, 0, -1)),
		demoTask("groceries", model.TaskTypeBuy, 89.99, userIDs[1], now.AddDate(0, 0, -3)),
		demoTask("electronics", model.TaskTypeSell, 450.00, userIDs[1], now.AddDate(0, 0, -5)),
		demoTask("errands", model.TaskTypeBuy, 35.00, userIDs[2], now.AddDate(0, 0, -12)),
		demoTask("electronics", model.TaskTypeSell, 220.00, userIDs[3], now.AddDate(0, -1, 0)),
		demoTask("furniture", model.TaskTypeSell, 780.00, userIDs[0], now.AddDate(0, -2, 0)),
	}

	res, err := col.InsertMany(ctx, tasks)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, len(res.InsertedIDs))
	for i, raw := range res.InsertedIDs {
		ids[i] = raw.(primitive.ObjectID)
	}
	logger.Info("seeded tasks", zap.Int("count", len(ids)))
	return ids, nil
}

func seedPayments(ctx context.Context, col *mongo.Collection, userIDs, taskIDs []primitive.ObjectID, logger *zap.Logger) error {
	if skip, err := alreadySeeded(ctx, col, logger); skip || err != nil {
		return err
	}
	if len(userIDs) == 0 || len(taskIDs) == 0 {
		return nil
	}

	now := time.Now()
	payments := []interface{}{
		model.Payment{
			UserID:      userIDs[0],
			Amount:      120.50,
			Method:      "card",
			ProductID:   &taskIDs[0],
			Description: "grocery run",
			Status:      model.PaymentStatusCompleted,
			PaidAt:      now.AddDate(0, 0, -1),
			CreatedAt:   now.AddDate(0, 0, -1),
		},
		model.Payment{
			UserID:      userIDs[1],
			Amount:      450.00,
			Method:      "transfer",
			ProductID:   &taskIDs[2],
			Description: "used laptop",
			Status:      model.PaymentStatusCompleted,
			PaidAt:      now.AddDate(0, 0, -4),
			CreatedAt:   now.AddDate(0, 0, -4),
		},
		model.Payment{
			UserID:      userIDs[2],
			Amount:      35.00,
			Method:      "wallet",
			Description: "errand fee",
			Status:      model.PaymentStatusCompleted,
			PaidAt:      now.AddDate(0, 0, -11),
			CreatedAt:   now.AddDate(0, 0, -11),
		},
	}

	res, err := col.InsertMany(ctx, payments)
	if err != nil {
		return err
	}
	logger.Info("seeded payments", zap.Int("count", len(res.InsertedIDs)))
	return nil
}

// alreadySeeded reports whether a collection holds documents; seeding never
// overwrites existing data.
func alreadySeeded(ctx context.Context, col *mongo.Collection, logger *zap.Logger) (bool, error) {
	n, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	if n > 0 {
		logger.Info("collection not empty, skipping", zap.String("collection", col.Name()), zap.Int64("count", n))
		return true, nil
	}
	return false, nil
}

func demoUser(name, email, phone, status string, createdAt time.Time) model.User {
	return model.User{
		Name:      name,
		Email:     email,
		Phone:     phone,
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func demoTask(category string, taskType model.TaskType, price float64, createdBy primitive.ObjectID, createdAt time.Time) model.Task {
	return model.Task{
		Category:  category,
		TaskType:  taskType,
		Price:     price,
		CreatedBy: createdBy,
		CreatedAt: createdAt,
	}
}
