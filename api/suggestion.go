package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/wanderplan/tripplanner-api/place"
)

// suggestPlaces is the API to get AI-generated place suggestions for a
// destination, each independently normalized.
func (s *Server) suggestPlaces(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorDestinationRequired)
		return
	}

	maxCount := viper.GetInt("assistant.count")
	if maxCount <= 0 {
		maxCount = 5
	}

	count := maxCount
	if raw := c.Query("count"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed < maxCount {
			count = parsed
		}
	}

	places, err := s.suggester.Suggest(c.Request.Context(), destination, count)
	if err != nil {
		switch err {
		case place.ErrMalformedSuggestions:
			abortWithEncoding(c, http.StatusBadGateway, errorMalformedSuggestions, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorMalformedSuggestions, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"places": places})
}
