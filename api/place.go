package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wanderplan/tripplanner-api/place"
	"github.com/wanderplan/tripplanner-api/schema"
	"github.com/wanderplan/tripplanner-api/store"
)

// addPlaceToTrip is the API to attach a normalized place to the trip's flat
// list. Repeated attachment of the same name appends repeated entries.
func (s *Server) addPlaceToTrip(c *gin.Context) {
	tripID, err := primitive.ObjectIDFromHex(c.Param("tripID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidTripID)
		return
	}

	var params struct {
		PlaceName string `json:"placeName"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if params.PlaceName == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorPlaceNameRequired)
		return
	}

	if _, err := s.mongoStore.GetTrip(tripID); err != nil {
		switch err {
		case store.ErrTripNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorTripNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorAddPlaceFailed, err)
		}
		return
	}

	normalized, err := s.normalizer.Normalize(c.Request.Context(), params.PlaceName)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorPlaceNotFound)
		return
	}

	trip, err := s.mongoStore.AppendPlaceToVisit(tripID, *normalized)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorAddPlaceFailed, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Place added successfully",
		"trip":    trip,
	})
}

// addItineraryActivity is the API to merge a place into the trip's
// date-keyed itinerary. A caller-supplied placeData payload is trusted as-is
// after defaulting; a placeName routes through the normalizer.
func (s *Server) addItineraryActivity(c *gin.Context) {
	tripID, err := primitive.ObjectIDFromHex(c.Param("tripID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidTripID)
		return
	}

	var params struct {
		Date      string        `json:"date"`
		PlaceName string        `json:"placeName"`
		PlaceData *schema.Place `json:"placeData"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Date == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorDateRequired)
		return
	}
	if params.PlaceName == "" && params.PlaceData == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorPlaceReferenceRequired)
		return
	}

	if _, err := s.mongoStore.GetTrip(tripID); err != nil {
		switch err {
		case store.ErrTripNotFound:
			abortWithEncoding(c, http.StatusBadRequest, errorTripNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorAddItineraryFailed, err)
		}
		return
	}

	var activityPlace schema.Place
	if params.PlaceData != nil {
		activityPlace = place.Defaulted(*params.PlaceData)
	} else {
		normalized, err := s.normalizer.Normalize(c.Request.Context(), params.PlaceName)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorPlaceNotFound)
			return
		}
		activityPlace = *normalized
	}

	trip, err := s.mongoStore.AppendItineraryActivity(tripID, params.Date, schema.Activity{
		Date:  params.Date,
		Place: activityPlace,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorAddItineraryFailed, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Activity added to itinerary successfully",
		"trip":    trip,
	})
}

// addExpense is the API to record a shared expense on the trip
func (s *Server) addExpense(c *gin.Context) {
	tripID, err := primitive.ObjectIDFromHex(c.Param("tripID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidTripID)
		return
	}

	var params schema.Expense
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	missing := []string{}
	if params.Category == "" {
		missing = append(missing, "category")
	}
	if params.Price <= 0 {
		missing = append(missing, "price")
	}
	if params.SpitBy == "" {
		missing = append(missing, "spitBy")
	}
	if params.PaidBy == "" {
		missing = append(missing, "paidBy")
	}
	if len(missing) > 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorMissingExpenseFields.withMissing(missing))
		return
	}

	trip, err := s.mongoStore.AppendExpense(tripID, params)
	if err != nil {
		switch err {
		case store.ErrTripNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorTripNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorAddExpenseFailed, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Expense added successfully",
		"trip":    trip,
	})
}

// placeDetails is the API to fetch the normalized details of a place by name
func (s *Server) placeDetails(c *gin.Context) {
	placeName := c.Query("placeName")
	if placeName == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorPlaceNameRequired)
		return
	}

	normalized, err := s.normalizer.Normalize(c.Request.Context(), placeName)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorPlaceNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          "Fetched Place details successfully",
		"placeWithDetails": normalized,
	})
}
