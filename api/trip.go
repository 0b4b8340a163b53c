package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wanderplan/tripplanner-api/schema"
	"github.com/wanderplan/tripplanner-api/store"
)

type createTripParams struct {
	TripName   string                `json:"tripName"`
	StartDate  string                `json:"startDate"`
	EndDate    string                `json:"endDate"`
	StartDay   string                `json:"startDay"`
	EndDay     string                `json:"endDay"`
	Background string                `json:"background"`
	Budget     float64               `json:"budget"`
	Expenses   []schema.Expense      `json:"expenses"`
	Places     []schema.Place        `json:"placesToVisit"`
	Itinerary  []schema.ItineraryDay `json:"itinerary"`
	Travelers  []string              `json:"travelers"`

	ClerkUserID string `json:"clerkUserId"`
	UserData    struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"userData"`
}

func (p createTripParams) missingFields() []string {
	missing := []string{}
	for _, field := range []struct {
		name  string
		value string
	}{
		{"tripName", p.TripName},
		{"startDate", p.StartDate},
		{"endDate", p.EndDate},
		{"startDay", p.StartDay},
		{"endDay", p.EndDay},
		{"background", p.Background},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

// createTrip is the API to create a trip, lazily registering its host on
// first sighting
func (s *Server) createTrip(c *gin.Context) {
	logger := log.WithField("api", "createTrip")

	var params createTripParams
	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorCannotParseRequest.Error)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if params.ClerkUserID == "" {
		abortWithEncoding(c, http.StatusUnauthorized, errorUserIDRequired)
		return
	}

	if missing := params.missingFields(); len(missing) > 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorMissingTripFields.withMissing(missing))
		return
	}

	user, err := s.mongoStore.GetUserByClerkID(params.ClerkUserID)
	if err == store.ErrUserNotFound {
		if params.UserData.Email == "" {
			abortWithEncoding(c, http.StatusBadRequest, errorUserEmailRequired)
			return
		}
		user, err = s.mongoStore.CreateUser(params.ClerkUserID, params.UserData.Email, params.UserData.Name)
	}
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorCreateTripFailed, err)
		return
	}

	travelers := []primitive.ObjectID{user.ID}
	for _, t := range params.Travelers {
		id, err := primitive.ObjectIDFromHex(t)
		if err != nil {
			logger.WithField("traveler", t).Warn("skip unparsable traveler reference")
			continue
		}
		travelers = append(travelers, id)
	}

	trip := &schema.Trip{
		TripName:   params.TripName,
		StartDate:  params.StartDate,
		EndDate:    params.EndDate,
		StartDay:   params.StartDay,
		EndDay:     params.EndDay,
		Background: params.Background,
		Host:       user.ID,
		Travelers:  travelers,
		Budget:     params.Budget,
		Expenses:   params.Expenses,
		Places:     params.Places,
		Itinerary:  params.Itinerary,
	}
	if trip.Expenses == nil {
		trip.Expenses = []schema.Expense{}
	}
	if trip.Places == nil {
		trip.Places = []schema.Place{}
	}
	if trip.Itinerary == nil {
		trip.Itinerary = []schema.ItineraryDay{}
	}

	trip, err = s.mongoStore.CreateTrip(trip)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorCreateTripFailed, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Trip created successfully",
		"trip":    trip,
	})
}

// listTrips is the API to list every trip the user hosts or travels on
func (s *Server) listTrips(c *gin.Context) {
	clerkUserID := c.Query("clerkUserId")
	if clerkUserID == "" {
		abortWithEncoding(c, http.StatusUnauthorized, errorUserIDRequired)
		return
	}

	user, err := s.mongoStore.GetUserByClerkID(clerkUserID)
	if err == store.ErrUserNotFound {
		email := c.Query("email")
		if email == "" {
			abortWithEncoding(c, http.StatusBadRequest, errorUserEmailRequired)
			return
		}
		user, err = s.mongoStore.CreateUser(clerkUserID, email, "")
	}
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorFetchTripsFailed, err)
		return
	}

	trips, err := s.mongoStore.ListTripsByUser(user.ID)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorFetchTripsFailed, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// getTrip is the API to fetch one trip by id
func (s *Server) getTrip(c *gin.Context) {
	clerkUserID := c.Query("clerkUserId")
	if clerkUserID == "" {
		abortWithEncoding(c, http.StatusUnauthorized, errorUserIDRequired)
		return
	}

	if _, err := s.mongoStore.GetUserByClerkID(clerkUserID); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorUserNotFound)
		return
	}

	tripID, err := primitive.ObjectIDFromHex(c.Param("tripID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidTripID)
		return
	}

	trip, err := s.mongoStore.GetTrip(tripID)
	if err != nil {
		switch err {
		case store.ErrTripNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorNoTripFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorFetchTripsFailed, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"trip": trip})
}
