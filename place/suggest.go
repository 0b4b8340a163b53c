package place

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/wanderplan/tripplanner-api/external/assistant"
	"github.com/wanderplan/tripplanner-api/schema"
)

const (
	placeholderPhoto = "https://via.placeholder.com/150"
)

var (
	// ErrMalformedSuggestions means no parsable array of suggestions could be
	// located in the completion text. Per-item lookup failures never cause it.
	ErrMalformedSuggestions = fmt.Errorf("malformed suggestion response")
)

// suggestion is the per-item shape the completion source is asked for.
type suggestion struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

// Suggester turns a destination name into a batch of normalized places
// suggested by the generative source.
type Suggester struct {
	assistant  assistant.Assistant
	normalizer *Normalizer
}

func NewSuggester(a assistant.Assistant, n *Normalizer) *Suggester {
	return &Suggester{
		assistant:  a,
		normalizer: n,
	}
}

// Suggest returns up to count suggested places for a destination. Each item
// is normalized independently and concurrently: one failed lookup degrades
// that item to the minimal shape built from the suggestion itself instead of
// discarding the batch.
func (s *Suggester) Suggest(ctx context.Context, destination string, count int) ([]schema.Place, error) {
	raw, err := s.assistant.SuggestPlaces(ctx, destination, count)
	if err != nil {
		return nil, err
	}

	suggestions, err := parseSuggestions(raw)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":      logPrefix,
			"destination": destination,
			"error":       err,
		}).Error("parse suggestion response")
		return nil, err
	}

	if len(suggestions) > count {
		suggestions = suggestions[:count]
	}

	places := make([]schema.Place, len(suggestions))

	g, ctx := errgroup.WithContext(ctx)
	for i, sug := range suggestions {
		i, sug := i, sug
		g.Go(func() error {
			normalized, err := s.normalizer.Normalize(ctx, sug.Name)
			if err != nil {
				log.WithFields(log.Fields{
					"prefix": logPrefix,
					"place":  sug.Name,
					"error":  err,
				}).Warn("suggested place lookup failed")
				places[i] = minimalPlace(sug)
				return nil
			}
			places[i] = *normalized
			return nil
		})
	}

	// branches never return errors, so this only waits for the fan-in
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return places, nil
}

// parseSuggestions digs the first well-formed array literal out of the raw
// completion text. Models wrap their output in code fences or prose more
// often than not.
func parseSuggestions(raw string) ([]suggestion, error) {
	content := strings.TrimSpace(raw)
	content = strings.ReplaceAll(content, "```json", "")
	content = strings.ReplaceAll(content, "```", "")

	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || end < start {
		return nil, ErrMalformedSuggestions
	}

	var suggestions []suggestion
	if err := json.Unmarshal([]byte(content[start:end+1]), &suggestions); err != nil {
		return nil, ErrMalformedSuggestions
	}
	if len(suggestions) == 0 {
		return nil, ErrMalformedSuggestions
	}

	return suggestions, nil
}

// minimalPlace builds the fallback shape straight from the suggestion, with
// empty media and contact fields.
func minimalPlace(sug suggestion) schema.Place {
	place := schema.Place{
		Name:             sug.Name,
		BriefDescription: sug.Description,
		FormattedAddress: sug.Address,
		OpeningHours:     []string{},
		Photos:           []string{placeholderPhoto},
		Reviews:          []schema.Review{},
		Types:            []string{"point_of_interest"},
	}
	return Defaulted(place)
}
