package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskType enumerates marketplace task kinds.
type TaskType string

const (
	TaskTypeBuy  TaskType = "buy"
	TaskTypeSell TaskType = "sell"
)

// Task represents a marketplace task/product document. A missing price
// decodes to zero, which is exactly how aggregates treat it.
type Task struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
	TaskType  TaskType           `bson:"task_type,omitempty" json:"task_type,omitempty"`
	Price     float64            `bson:"price,omitempty" json:"price"`
	CreatedBy primitive.ObjectID `bson:"created_by,omitempty" json:"created_by,omitempty"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}

// EnrichedTask is a Task with its creator's identity attached. Creator is
// null when the referenced user does not exist.
type EnrichedTask struct {
	Task
	Creator *UserIdentity `json:"creator"`
}
