package googleplaces

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"
)

const (
	logPrefix      = "googleplaces"
	defaultTimeout = 10 * time.Second

	photoMaxWidth = 400
)

var (
	ErrNoCandidate = fmt.Errorf("no place candidate")
)

// PlaceSource - interface to operate the paid place-details source
type PlaceSource interface {
	Details(ctx context.Context, query string) (*maps.PlaceDetailsResult, error)
	PhotoURL(reference string) string
}

type placeSource struct {
	client *maps.Client
	apiKey string
}

// Details resolves a free-text query to its best candidate and fetches the
// full detail record for it.
func (p placeSource) Details(ctx context.Context, query string) (*maps.PlaceDetailsResult, error) {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"query":  query,
	}).Info("query place details")

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	found, err := p.client.FindPlaceFromText(ctx, &maps.FindPlaceFromTextRequest{
		Input:     query,
		InputType: maps.FindPlaceFromTextInputTypeTextQuery,
		Fields:    []maps.PlaceSearchFieldMask{maps.PlaceSearchFieldMaskPlaceID},
	})
	if err != nil {
		return nil, err
	}
	if len(found.Candidates) == 0 {
		return nil, ErrNoCandidate
	}

	details, err := p.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: found.Candidates[0].PlaceID,
	})
	if err != nil {
		return nil, err
	}

	return &details, nil
}

// PhotoURL renders the fetchable URL of a photo reference.
func (p placeSource) PhotoURL(reference string) string {
	return fmt.Sprintf("https://maps.googleapis.com/maps/api/place/photo?maxwidth=%d&photoreference=%s&key=%s",
		photoMaxWidth, reference, p.apiKey)
}

// New - new PlaceSource interface
func New(apiKey string) (PlaceSource, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &placeSource{
		client: client,
		apiKey: apiKey,
	}, nil
}
