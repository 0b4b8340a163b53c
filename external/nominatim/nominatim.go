package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	logPrefix      = "nominatim"
	defaultURL     = "https://nominatim.openstreetmap.org"
	defaultTimeout = 10 * time.Second
)

var (
	ErrNoMatch = fmt.Errorf("no matching place")
)

// SearchResult is one raw geocoding candidate. Every field beyond the
// coordinates is optional and may be absent for sparse map data.
type SearchResult struct {
	Lat         string            `json:"lat"`
	Lon         string            `json:"lon"`
	DisplayName string            `json:"display_name"`
	Class       string            `json:"class"`
	Type        string            `json:"type"`
	BoundingBox []string          `json:"boundingbox"`
	Address     map[string]string `json:"address"`
	ExtraTags   map[string]string `json:"extratags"`
	NameDetails map[string]string `json:"namedetails"`
}

// Geocoder - interface to search the free geocoding source
type Geocoder interface {
	Search(ctx context.Context, query string) (*SearchResult, error)
}

type geocoder struct {
	endpoint  string
	userAgent string
	client    *http.Client
}

// Search asks for the single best match of a free-text place query.
func (g geocoder) Search(ctx context.Context, query string) (*SearchResult, error) {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"query":  query,
	}).Info("search place")

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	u := fmt.Sprintf("%s/search?q=%s&format=json&addressdetails=1&extratags=1&namedetails=1&limit=1",
		g.endpoint, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept-Language", "en")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search responded with status %d", resp.StatusCode)
	}

	var results []SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, ErrNoMatch
	}

	return &results[0], nil
}

// New - new Geocoder interface
func New(endpoint, userAgent string, client *http.Client) Geocoder {
	e := defaultURL
	if endpoint != "" {
		e = endpoint
	}

	return &geocoder{
		endpoint:  e,
		userAgent: userAgent,
		client:    client,
	}
}
