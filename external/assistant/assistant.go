package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	logPrefix      = "assistant"
	defaultTimeout = 30 * time.Second
)

var (
	ErrEmptyCompletion = fmt.Errorf("empty completion")
)

// Assistant - interface to the generative text-completion source
type Assistant interface {
	SuggestPlaces(ctx context.Context, destination string, count int) (string, error)
}

type assistant struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// SuggestPlaces asks the completion source for a fixed-shape JSON array of
// suggested places and returns the raw response text. The caller is
// responsible for digging the array out of whatever wrapping the model adds.
func (a assistant) SuggestPlaces(ctx context.Context, destination string, count int) (string, error) {
	log.WithFields(log.Fields{
		"prefix":      logPrefix,
		"destination": destination,
		"count":       count,
	}).Info("request place suggestions")

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	system := fmt.Sprintf(`You are a travel assistant for %s. Return a JSON array of %d objects, each representing a top place to visit. Each object must have exactly these fields: "name" (string), "description" (string, 50-100 words), "address" (string). Ensure the response is valid JSON, with no backticks, markdown, or extra text. Example: [{"name":"Place 1","description":"A beautiful place...","address":"123 Main St"}]`,
		destination, count)
	user := fmt.Sprintf("List %d top places to visit in %s in JSON format.", count, destination)

	body, err := json.Marshal(chatRequest{
		Model: a.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion source responded with status %d", resp.StatusCode)
	}

	var r chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", err
	}

	if len(r.Choices) == 0 || r.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}

	return r.Choices[0].Message.Content, nil
}

// New - new Assistant interface
func New(endpoint, apiKey, model string, client *http.Client) Assistant {
	return &assistant{
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
		client:   client,
	}
}
