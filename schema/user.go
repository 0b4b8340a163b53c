package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UserCollection = "users"
)

// User is identified by the opaque id assigned by the external identity
// provider. It is created lazily on first sighting and lives independently
// of any trip.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ClerkUserID string             `bson:"clerkUserId" json:"clerkUserId"`
	Email       string             `bson:"email" json:"email"`
	Name        string             `bson:"name" json:"name"`
}
