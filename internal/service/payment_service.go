package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sentinel/internal/errors"
	"sentinel/internal/model"
	"sentinel/internal/repository"
)

// RecordPaymentInput carries the fields of a payment insertion. Amount
// arrives as presented by the caller and is coerced here; ProductID is
// optional and empty means absent.
type RecordPaymentInput struct {
	UserID      string
	Amount      string
	Method      string
	ProductID   string
	Description string
}

// PaymentService exposes payment recording and the enriched listing.
type PaymentService interface {
	RecordPayment(ctx context.Context, input RecordPaymentInput) (string, error)
	ListPayments(ctx context.Context) ([]model.EnrichedPayment, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	users       UserResolver
}

// NewPaymentService creates a new payment service.
func NewPaymentService(paymentRepo repository.PaymentRepository, users UserResolver) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, users: users}
}

// RecordPayment validates identities and the amount, then inserts one
// completed payment stamped with the current time. Returns the new
// document's identity.
func (s *paymentService) RecordPayment(ctx context.Context, input RecordPaymentInput) (string, error) {
	userID, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		return "", errors.ErrInvalidObjectID
	}

	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		return "", errors.ErrInvalidAmount
	}

	var productID *primitive.ObjectID
	if input.ProductID != "" {
		pid, err := primitive.ObjectIDFromHex(input.ProductID)
		if err != nil {
			return "", errors.ErrInvalidObjectID
		}
		productID = &pid
	}

	now := time.Now()
	payment := &model.Payment{
		UserID:      userID,
		Amount:      amount.InexactFloat64(),
		Method:      input.Method,
		ProductID:   productID,
		Description: input.Description,
		Status:      model.PaymentStatusCompleted,
		PaidAt:      now,
		CreatedAt:   now,
	}

	id, err := s.paymentRepo.Insert(ctx, payment)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// ListPayments returns all payments, newest first, each with the payer's
// identity attached (null when the payer no longer exists).
func (s *paymentService) ListPayments(ctx context.Context) ([]model.EnrichedPayment, error) {
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, len(payments))
	for i, p := range payments {
		ids[i] = p.UserID
	}
	users, err := resolveUsers(ctx, s.users, ids)
	if err != nil {
		return nil, err
	}

	enriched := make([]model.EnrichedPayment, len(payments))
	for i := range payments {
		enriched[i] = model.EnrichedPayment{Payment: payments[i], User: users[i]}
	}
	return enriched, nil
}
