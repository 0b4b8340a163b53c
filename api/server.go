package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/wanderplan/tripplanner-api/external/mailrelay"
	"github.com/wanderplan/tripplanner-api/logmodule"
	"github.com/wanderplan/tripplanner-api/place"
	"github.com/wanderplan/tripplanner-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	mongoStore store.MongoStore

	// Place pipeline
	normalizer *place.Normalizer
	suggester  *place.Suggester

	// External services
	mailer mailrelay.Mailer
}

// NewServer new instance of server
func NewServer(
	mongoStore store.MongoStore,
	normalizer *place.Normalizer,
	suggester *place.Suggester,
	mailer mailrelay.Mailer) *Server {
	return &Server{
		mongoStore: mongoStore,
		normalizer: normalizer,
		suggester:  suggester,
		mailer:     mailer,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(s.requestIDMiddleware())

	tripRoute := apiRoute.Group("/trips")
	{
		tripRoute.POST("", s.createTrip)
		tripRoute.GET("", s.listTrips)
		tripRoute.GET("/:tripID", s.getTrip)
		tripRoute.POST("/:tripID/places", s.addPlaceToTrip)
		tripRoute.POST("/:tripID/itinerary", s.addItineraryActivity)
		tripRoute.POST("/:tripID/expenses", s.addExpense)
	}

	placeRoute := apiRoute.Group("/place")
	{
		placeRoute.GET("/details", s.placeDetails)
		placeRoute.GET("/suggestions", s.suggestPlaces)
	}

	apiRoute.POST("/send-email", s.sendEmail)

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
