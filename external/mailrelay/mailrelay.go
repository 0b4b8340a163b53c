package mailrelay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	logPrefix      = "mailrelay"
	defaultTimeout = 10 * time.Second
)

// Mailer - interface to the fire-and-forget email relay
type Mailer interface {
	Send(ctx context.Context, to, subject, message string) error
}

// Config carries the relay credentials and sender identity. It is injected
// into the endpoint layer instead of living in package state, so tests can
// substitute the whole transport.
type Config struct {
	Endpoint string
	APIKey   string
	Sender   string
}

type mailer struct {
	config Config
	client *http.Client
}

type sendRequest struct {
	MessageID string `json:"message_id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Text      string `json:"text"`
}

// Send delivers a plain-text message through the relay.
func (m mailer) Send(ctx context.Context, to, subject, message string) error {
	messageID := uuid.New().String()

	log.WithFields(log.Fields{
		"prefix":     logPrefix,
		"message_id": messageID,
		"to":         to,
	}).Info("send email")

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	body, err := json.Marshal(sendRequest{
		MessageID: messageID,
		From:      m.config.Sender,
		To:        to,
		Subject:   subject,
		Text:      message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.Endpoint+"/send", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("mail relay responded with status %d", resp.StatusCode)
	}

	return nil
}

// New - new Mailer interface
func New(config Config, client *http.Client) Mailer {
	return &mailer{
		config: config,
		client: client,
	}
}
