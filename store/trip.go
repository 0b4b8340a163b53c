package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wanderplan/tripplanner-api/schema"
)

var (
	ErrTripNotFound        = fmt.Errorf("trip not found")
	ErrItineraryNotUpdated = fmt.Errorf("itinerary not updated")
)

type TripStore interface {
	CreateTrip(trip *schema.Trip) (*schema.Trip, error)
	GetTrip(tripID primitive.ObjectID) (*schema.Trip, error)
	ListTripsByUser(userID primitive.ObjectID) ([]schema.Trip, error)

	AppendPlaceToVisit(tripID primitive.ObjectID, place schema.Place) (*schema.Trip, error)
	AppendItineraryActivity(tripID primitive.ObjectID, date string, activity schema.Activity) (*schema.Trip, error)
	AppendExpense(tripID primitive.ObjectID, expense schema.Expense) (*schema.Trip, error)
}

// CreateTrip inserts a new trip aggregate
func (m *mongoDB) CreateTrip(trip *schema.Trip) (*schema.Trip, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.TripCollection)

	trip.CreatedAt = time.Now().UTC()
	result, err := c.InsertOne(ctx, trip)
	if err != nil {
		return nil, err
	}
	trip.ID = result.InsertedID.(primitive.ObjectID)

	if err := m.populateTravelers(ctx, trip); err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"trip":   trip.ID.Hex(),
			"error":  err,
		}).Warn("populate trip travelers")
	}

	return trip, nil
}

// GetTrip finds a trip by id with its traveler references populated
func (m *mongoDB) GetTrip(tripID primitive.ObjectID) (*schema.Trip, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.TripCollection)

	var trip schema.Trip
	query := bson.M{"_id": tripID}
	if err := c.FindOne(ctx, query).Decode(&trip); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	if err := m.populateTravelers(ctx, &trip); err != nil {
		return nil, err
	}

	return &trip, nil
}

// ListTripsByUser finds every trip the user hosts or travels on
func (m *mongoDB) ListTripsByUser(userID primitive.ObjectID) ([]schema.Trip, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.TripCollection)

	query := bson.M{"$or": bson.A{
		bson.M{"host": userID},
		bson.M{"travelers": userID},
	}}
	cursor, err := c.Find(ctx, query)
	if err != nil {
		return nil, err
	}

	trips := []schema.Trip{}
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, err
	}

	for i := range trips {
		if err := m.populateTravelers(ctx, &trips[i]); err != nil {
			return nil, err
		}
	}

	return trips, nil
}

// AppendPlaceToVisit pushes a place to the flat undated list. Repeated
// attachment of the same place produces repeated entries; the upstream
// source is not guaranteed to return identical results twice anyway.
func (m *mongoDB) AppendPlaceToVisit(tripID primitive.ObjectID, place schema.Place) (*schema.Trip, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.TripCollection)

	query := bson.M{"_id": tripID}
	update := bson.M{"$push": bson.M{"placesToVisit": place}}
	result, err := c.UpdateOne(ctx, query, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrTripNotFound
	}

	return m.GetTrip(tripID)
}

// AppendExpense pushes an expense onto the trip
func (m *mongoDB) AppendExpense(tripID primitive.ObjectID, expense schema.Expense) (*schema.Trip, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.TripCollection)

	query := bson.M{"_id": tripID}
	update := bson.M{"$push": bson.M{"expenses": expense}}
	result, err := c.UpdateOne(ctx, query, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrTripNotFound
	}

	return m.GetTrip(tripID)
}

// AppendItineraryActivity merges an activity into the trip's date-keyed
// itinerary. Both branches are single conditional document updates, so two
// concurrent merges for a brand-new date cannot both create a day: the loser
// of the new-day guard retries the append branch.
func (m *mongoDB) AppendItineraryActivity(tripID primitive.ObjectID, date string, activity schema.Activity) (*schema.Trip, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.TripCollection)

	for attempt := 0; attempt < 2; attempt++ {
		// append to the existing day for this date, if any
		query := bson.M{"_id": tripID, "itinerary.date": date}
		update := bson.M{"$push": bson.M{"itinerary.$.activities": activity}}
		result, err := c.UpdateOne(ctx, query, update)
		if err != nil {
			return nil, err
		}
		if result.MatchedCount > 0 {
			return m.GetTrip(tripID)
		}

		// no day for this date yet: create one, guarded against a
		// concurrent creator
		query = bson.M{"_id": tripID, "itinerary.date": bson.M{"$ne": date}}
		update = bson.M{"$push": bson.M{"itinerary": schema.ItineraryDay{
			Date:       date,
			Activities: []schema.Activity{activity},
		}}}
		result, err = c.UpdateOne(ctx, query, update)
		if err != nil {
			return nil, err
		}
		if result.MatchedCount > 0 {
			return m.GetTrip(tripID)
		}

		// either the trip is gone or another writer just created the day;
		// loop to retry the append branch once
	}

	if _, err := m.GetTrip(tripID); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"prefix": mongoLogPrefix,
		"trip":   tripID.Hex(),
		"date":   date,
	}).Error("itinerary merge made no progress")
	return nil, ErrItineraryNotUpdated
}

// populateTravelers resolves the weak host/traveler references into user
// documents for response shaping.
func (m *mongoDB) populateTravelers(ctx context.Context, trip *schema.Trip) error {
	ids := make([]primitive.ObjectID, 0, len(trip.Travelers)+1)
	ids = append(ids, trip.Host)
	ids = append(ids, trip.Travelers...)

	c := m.client.Database(m.database).Collection(schema.UserCollection)
	cursor, err := c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}

	var users []schema.User
	if err := cursor.All(ctx, &users); err != nil {
		return err
	}

	byID := make(map[primitive.ObjectID]schema.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	if host, ok := byID[trip.Host]; ok {
		trip.HostUser = &host
	}
	trip.TravelerUsers = make([]schema.User, 0, len(trip.Travelers))
	for _, id := range trip.Travelers {
		if u, ok := byID[id]; ok {
			trip.TravelerUsers = append(trip.TravelerUsers, u)
		}
	}

	return nil
}
