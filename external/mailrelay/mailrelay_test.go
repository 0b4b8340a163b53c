package mailrelay_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wanderplan/tripplanner-api/external/mailrelay"
)

func TestSend(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/send", r.URL.Path)
		assert.Equal(t, "Bearer relay-key", r.Header.Get("Authorization"))

		var req struct {
			MessageID string `json:"message_id"`
			From      string `json:"from"`
			To        string `json:"to"`
			Subject   string `json:"subject"`
			Text      string `json:"text"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req.MessageID)
		assert.Equal(t, "trips@example.org", req.From)
		assert.Equal(t, "traveler@example.org", req.To)
		assert.Equal(t, "Trip invite", req.Subject)
		assert.Equal(t, "Join my trip!", req.Text)

		w.WriteHeader(http.StatusAccepted)
	}))
	defer ts.Close()

	m := mailrelay.New(mailrelay.Config{
		Endpoint: ts.URL,
		APIKey:   "relay-key",
		Sender:   "trips@example.org",
	}, http.DefaultClient)

	err := m.Send(context.Background(), "traveler@example.org", "Trip invite", "Join my trip!")
	assert.NoError(t, err)
}

func TestSendRejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer ts.Close()

	m := mailrelay.New(mailrelay.Config{Endpoint: ts.URL}, http.DefaultClient)
	err := m.Send(context.Background(), "traveler@example.org", "s", "m")
	assert.Error(t, err)
}
