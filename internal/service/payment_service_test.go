package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sentinel/internal/errors"
	"sentinel/internal/model"
)

func TestPaymentService_RecordPayment(t *testing.T) {
	repo := new(MockPaymentRepository)
	users := new(MockUserRepository)

	userID := primitive.NewObjectID()
	newID := primitive.NewObjectID()

	repo.On("Insert", mock.Anything, mock.MatchedBy(func(p *model.Payment) bool {
		return p.Amount == 49.99 &&
			p.Status == model.PaymentStatusCompleted &&
			p.UserID == userID &&
			p.ProductID == nil &&
			!p.PaidAt.IsZero() &&
			!p.CreatedAt.IsZero()
	})).Return(newID, nil)

	svc := NewPaymentService(repo, users)
	paymentID, err := svc.RecordPayment(context.Background(), RecordPaymentInput{
		UserID:      userID.Hex(),
		Amount:      "49.99",
		Method:      "card",
		Description: "x",
	})

	assert.NoError(t, err)
	assert.Equal(t, newID.Hex(), paymentID)
	repo.AssertExpectations(t)
}

func TestPaymentService_RecordPayment_WithProduct(t *testing.T) {
	repo := new(MockPaymentRepository)
	users := new(MockUserRepository)

	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	repo.On("Insert", mock.Anything, mock.MatchedBy(func(p *model.Payment) bool {
		return p.ProductID != nil && *p.ProductID == productID
	})).Return(primitive.NewObjectID(), nil)

	svc := NewPaymentService(repo, users)
	_, err := svc.RecordPayment(context.Background(), RecordPaymentInput{
		UserID:    userID.Hex(),
		Amount:    "10",
		Method:    "wallet",
		ProductID: productID.Hex(),
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestPaymentService_RecordPayment_ValidationFailsBeforeStore(t *testing.T) {
	tests := []struct {
		name    string
		input   RecordPaymentInput
		wantErr error
	}{
		{
			name:    "malformed user id",
			input:   RecordPaymentInput{UserID: "nope", Amount: "10", Method: "card"},
			wantErr: errors.ErrInvalidObjectID,
		},
		{
			name:    "non-numeric amount",
			input:   RecordPaymentInput{UserID: primitive.NewObjectID().Hex(), Amount: "abc", Method: "card"},
			wantErr: errors.ErrInvalidAmount,
		},
		{
			name:    "malformed product id",
			input:   RecordPaymentInput{UserID: primitive.NewObjectID().Hex(), Amount: "10", Method: "card", ProductID: "bad"},
			wantErr: errors.ErrInvalidObjectID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockPaymentRepository)
			users := new(MockUserRepository)

			svc := NewPaymentService(repo, users)
			paymentID, err := svc.RecordPayment(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, paymentID)
			repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		})
	}
}

func TestPaymentService_ListPayments_EnrichesWithUser(t *testing.T) {
	repo := new(MockPaymentRepository)
	users := new(MockUserRepository)

	payerID := primitive.NewObjectID()
	ghostID := primitive.NewObjectID()
	now := time.Now()

	payments := []model.Payment{
		{ID: primitive.NewObjectID(), UserID: payerID, Amount: 120.50, CreatedAt: now},
		{ID: primitive.NewObjectID(), UserID: ghostID, Amount: 35, CreatedAt: now.Add(-time.Hour)},
	}
	repo.On("List", mock.Anything).Return(payments, nil)
	users.On("FindIdentityByID", mock.Anything, payerID).Return(&model.UserIdentity{ID: payerID, Name: "Amina"}, nil)
	users.On("FindIdentityByID", mock.Anything, ghostID).Return(nil, nil)

	svc := NewPaymentService(repo, users)
	enriched, err := svc.ListPayments(context.Background())

	assert.NoError(t, err)
	assert.Len(t, enriched, 2)
	assert.NotNil(t, enriched[0].User)
	assert.Equal(t, "Amina", enriched[0].User.Name)
	assert.Nil(t, enriched[1].User)
	users.AssertExpectations(t)
}
