package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a marketplace user document. The credential fields are
// excluded from every listing at the query level; the `json:"-"` tags are a
// second line of defense so they can never serialize even if decoded.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Status      string             `bson:"status,omitempty" json:"status,omitempty"`
	Blocked     bool               `bson:"blocked,omitempty" json:"blocked"`
	Password    string             `bson:"password,omitempty" json:"-"`
	AccessToken string             `bson:"access_token,omitempty" json:"-"`
	OTP         string             `bson:"otp,omitempty" json:"-"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// UserIdentity is the projected subset of User attached to enriched rows.
type UserIdentity struct {
	ID    primitive.ObjectID `bson:"_id" json:"_id"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone string             `bson:"phone,omitempty" json:"phone,omitempty"`
}
