package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wanderplan/tripplanner-api/schema"
)

var (
	ErrUserNotFound = fmt.Errorf("user not found")
)

type UserStore interface {
	GetUserByClerkID(clerkUserID string) (*schema.User, error)
	CreateUser(clerkUserID, email, name string) (*schema.User, error)
}

// GetUserByClerkID finds a user by its external identity key
func (m *mongoDB) GetUserByClerkID(clerkUserID string) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	var user schema.User
	query := bson.M{"clerkUserId": clerkUserID}
	if err := c.FindOne(ctx, query).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// CreateUser registers a user on first sighting of its identity key
func (m *mongoDB) CreateUser(clerkUserID, email, name string) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	user := schema.User{
		ClerkUserID: clerkUserID,
		Email:       email,
		Name:        name,
	}

	result, err := c.InsertOne(ctx, &user)
	if err != nil {
		return nil, err
	}
	user.ID = result.InsertedID.(primitive.ObjectID)

	return &user, nil
}
