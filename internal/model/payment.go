package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatus represents the status of a payment.
type PaymentStatus string

// PaymentStatusCompleted is the only status this gateway writes.
const PaymentStatusCompleted PaymentStatus = "completed"

// Payment represents a payment record.
type Payment struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	UserID      primitive.ObjectID  `bson:"userId" json:"userId"`
	Amount      float64             `bson:"amount" json:"amount"`
	Method      string              `bson:"method,omitempty" json:"method,omitempty"`
	ProductID   *primitive.ObjectID `bson:"productId" json:"productId"`
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	Status      PaymentStatus       `bson:"status" json:"status"`
	PaidAt      time.Time           `bson:"paidAt" json:"paidAt"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
}

// EnrichedPayment is a Payment with the payer's identity attached. User is
// null when the referenced user does not exist.
type EnrichedPayment struct {
	Payment
	User *UserIdentity `json:"user"`
}
