package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wanderplan/tripplanner-api/api/mocks"
	"github.com/wanderplan/tripplanner-api/external/nominatim"
	"github.com/wanderplan/tripplanner-api/place"
	"github.com/wanderplan/tripplanner-api/schema"
	"github.com/wanderplan/tripplanner-api/store"
)

func testPlaceRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/trips/:tripID/places", s.addPlaceToTrip)
	router.POST("/trips/:tripID/itinerary", s.addItineraryActivity)
	router.POST("/trips/:tripID/expenses", s.addExpense)
	router.GET("/place/details", s.placeDetails)
	return router
}

// newSearchNormalizer backs the normalizer with a canned geocode response
// served over httptest. An empty result list makes every lookup miss.
func newSearchNormalizer(results string) (*place.Normalizer, *httptest.Server) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(results))
	}))
	n := place.NewNormalizer(nominatim.New(ts.URL, "tripplanner-test/1.0", http.DefaultClient), nil, nil)
	return n, ts
}

func TestAddPlaceToTrip(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	n, ts := newSearchNormalizer(`[{"lat":"35.0116","lon":"135.7681","display_name":"Kyoto, Japan","class":"boundary","type":"administrative"}]`)
	defer ts.Close()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m, normalizer: n}

	tripID, _ := primitive.ObjectIDFromHex("5e8bf47a0ff4f2d27df71bb7")

	m.EXPECT().GetTrip(tripID).Return(&schema.Trip{ID: tripID}, nil).Times(1)
	m.EXPECT().AppendPlaceToVisit(tripID, gomock.Any()).DoAndReturn(
		func(id primitive.ObjectID, p schema.Place) (*schema.Trip, error) {
			assert.Equal(t, "Kyoto, Japan", p.FormattedAddress)
			assert.Equal(t, 35.0116, p.Geometry.Location.Lat)
			return &schema.Trip{ID: id, Places: []schema.Place{p}}, nil
		}).Times(1)

	router := testPlaceRouter(&s)
	req := httptest.NewRequest("POST", "/trips/5e8bf47a0ff4f2d27df71bb7/places", strings.NewReader(`{"placeName": "Kyoto"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Message string      `json:"message"`
		Trip    schema.Trip `json:"trip"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "Place added successfully", jResp.Message)
	assert.Len(t, jResp.Trip.Places, 1)
}

func TestAddPlaceToTripMissingName(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	router := testPlaceRouter(&s)
	req := httptest.NewRequest("POST", "/trips/5e8bf47a0ff4f2d27df71bb7/places", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "placeName required", jResp.Error)
}

func TestAddPlaceToTripUnknownPlace(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	n, ts := newSearchNormalizer(`[]`)
	defer ts.Close()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m, normalizer: n}

	tripID, _ := primitive.ObjectIDFromHex("5e8bf47a0ff4f2d27df71bb7")
	m.EXPECT().GetTrip(tripID).Return(&schema.Trip{ID: tripID}, nil).Times(1)

	router := testPlaceRouter(&s)
	req := httptest.NewRequest("POST", "/trips/5e8bf47a0ff4f2d27df71bb7/places", strings.NewReader(`{"placeName": "zzzzz"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "Place not found", jResp.Error)
}

func TestAddPlaceToTripNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	tripID, _ := primitive.ObjectIDFromHex("5e8bf47a0ff4f2d27df71bb7")
	m.EXPECT().GetTrip(tripID).Return(nil, store.ErrTripNotFound).Times(1)

	router := testPlaceRouter(&s)
	req := httptest.NewRequest("POST", "/trips/5e8bf47a0ff4f2d27df71bb7/places", strings.NewReader(`{"placeName": "Kyoto"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "Trip not found", jResp.Error)
}

func TestAddItineraryActivityMissingDate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	router := testPlaceRouter(&s)
	req := httptest.NewRequest("POST", "/trips/5e8bf47a0ff4f2d27df71bb7/itinerary", strings.NewReader(`{"placeName": "Kyoto"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "Date is required", jResp.Error)
}

func TestAddItineraryActivityMissingPlaceReference(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	router := testPlaceRouter(&s)
	req := httptest.NewRequest("POST", "/trips/5e8bf47a0ff4f2d27df71bb7/itinerary", strings.NewReader(`{"date": "2026-04-02"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "Either placeName or placeData is required", jResp.Error)
}

// A caller-supplied place payload goes straight into the itinerary after
// defaulting, never through the normalizer.
func TestAddItineraryActivityWithPlaceData(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	tripID, _ := primitive.ObjectIDFromHex("5e8bf47a0ff4f2d27df71bb7")

	m.EXPECT().GetTrip(tripID).Return(&schema.Trip{ID: tripID}, nil).Times(1)
	m.EXPECT().AppendItineraryActivity(tripID, "2026-04-02", gomock.Any()).DoAndReturn(
		func(id primitive.ObjectID, date string, activity schema.Activity) (*schema.Trip, error) {
			assert.Equal(t, "2026-04-02", activity.Date)
			assert.Equal(t, "Fushimi Inari", activity.Name)
			assert.Equal(t, "No address available", activity.FormattedAddress)
			assert.Equal(t, "No description available", activity.BriefDescription)
			assert.Equal(t, []string{}, activity.Photos)
			return &schema.Trip{ID: id}, nil
		}).Times(1)

	body := `{"date": "2026-04-02", "placeData": {"name": "Fushimi Inari"}}`

	router := testPlaceRouter(&s)
	req := httptest.NewRequest("POST", "/trips/5e8bf47a0ff4f2d27df71bb7/itinerary", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Message string `json:"message"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "Activity added to itinerary successfully", jResp.Message)
}

func TestAddExpense(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	tripID, _ := primitive.ObjectIDFromHex("5e8bf47a0ff4f2d27df71bb7")
	expense := schema.Expense{
		Category: "Food",
		Price:    42.5,
		SpitBy:   "Everyone",
		PaidBy:   "clerk_1",
	}

	m.EXPECT().AppendExpense(tripID, expense).Return(&schema.Trip{
		ID:       tripID,
		Expenses: []schema.Expense{expense},
	}, nil).Times(1)

	body := `{"category": "Food", "price": 42.5, "spitBy": "Everyone", "paidBy": "clerk_1"}`

	router := testPlaceRouter(&s)
	req := httptest.NewRequest("POST", "/trips/5e8bf47a0ff4f2d27df71bb7/expenses", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Message string      `json:"message"`
		Trip    schema.Trip `json:"trip"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "Expense added successfully", jResp.Message)
	assert.Len(t, jResp.Trip.Expenses, 1)
}

func TestAddExpenseMissingFields(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	router := testPlaceRouter(&s)
	req := httptest.NewRequest("POST", "/trips/5e8bf47a0ff4f2d27df71bb7/expenses", strings.NewReader(`{"category": "Food"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "Missing required expense fields", jResp.Error)
	assert.Equal(t, []string{"price", "spitBy", "paidBy"}, jResp.Missing)
}

func TestPlaceDetails(t *testing.T) {
	n, ts := newSearchNormalizer(`[{"lat":"35.0116","lon":"135.7681","display_name":"Kyoto, Japan","class":"boundary","type":"administrative"}]`)
	defer ts.Close()

	s := Server{normalizer: n}

	router := testPlaceRouter(&s)
	req := httptest.NewRequest("GET", "/place/details?placeName=Kyoto", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Message string       `json:"message"`
		Place   schema.Place `json:"placeWithDetails"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "Fetched Place details successfully", jResp.Message)
	assert.Equal(t, "Kyoto, Japan", jResp.Place.FormattedAddress)
}

func TestPlaceDetailsMissingName(t *testing.T) {
	s := Server{}

	router := testPlaceRouter(&s)
	req := httptest.NewRequest("GET", "/place/details", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "placeName required", jResp.Error)
}
