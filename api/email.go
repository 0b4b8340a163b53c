package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// sendEmail is the API to relay a plain-text email to a traveler
func (s *Server) sendEmail(c *gin.Context) {
	var params struct {
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Email == "" || params.Subject == "" || params.Message == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorEmailFieldsRequired)
		return
	}

	if err := s.mailer.Send(c.Request.Context(), params.Email, params.Subject, params.Message); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorSendEmailFailed, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email sent successfully"})
}
