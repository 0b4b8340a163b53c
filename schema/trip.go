package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TripCollection = "trips"
)

type Expense struct {
	Category string  `bson:"category" json:"category"`
	Price    float64 `bson:"price" json:"price"`
	SpitBy   string  `bson:"spitBy" json:"spitBy"`
	PaidBy   string  `bson:"paidBy" json:"paidBy"`
}

// ItineraryDay is a date bucket of activities. A trip holds at most one day
// per distinct date string.
type ItineraryDay struct {
	Date       string     `bson:"date" json:"date"`
	Activities []Activity `bson:"activities" json:"activities"`
}

// Trip is the aggregate root owning places, itinerary, expenses and traveler
// references. Host and travelers are weak references to users.
type Trip struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	TripName   string               `bson:"tripName" json:"tripName"`
	StartDate  string               `bson:"startDate" json:"startDate"`
	EndDate    string               `bson:"endDate" json:"endDate"`
	StartDay   string               `bson:"startDay" json:"startDay"`
	EndDay     string               `bson:"endDay" json:"endDay"`
	Background string               `bson:"background" json:"background"`
	Host       primitive.ObjectID   `bson:"host" json:"-"`
	Travelers  []primitive.ObjectID `bson:"travelers" json:"-"`
	Budget     float64              `bson:"budget" json:"budget"`
	Expenses   []Expense            `bson:"expenses" json:"expenses"`
	Places     []Place              `bson:"placesToVisit" json:"placesToVisit"`
	Itinerary  []ItineraryDay       `bson:"itinerary" json:"itinerary"`
	CreatedAt  time.Time            `bson:"createdAt" json:"createdAt"`

	// populated views of the weak references above
	HostUser      *User  `bson:"-" json:"host,omitempty"`
	TravelerUsers []User `bson:"-" json:"travelers,omitempty"`
}

// ItineraryDayFor returns the bucket for a given date, or nil.
func (t *Trip) ItineraryDayFor(date string) *ItineraryDay {
	for i := range t.Itinerary {
		if t.Itinerary[i].Date == date {
			return &t.Itinerary[i]
		}
	}
	return nil
}
