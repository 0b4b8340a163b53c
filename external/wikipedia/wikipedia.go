package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	logPrefix      = "wikipedia"
	defaultURL     = "https://en.wikipedia.org"
	defaultTimeout = 10 * time.Second

	geosearchRadius = 10000
	thumbnailSize   = 400
)

var (
	ErrNoNearbyArticle = fmt.Errorf("no nearby article")
)

// PageSummary is the extract and thumbnail of the article nearest to a
// coordinate. Thumbnail may be empty.
type PageSummary struct {
	Title     string
	PageID    int64
	Extract   string
	Thumbnail string
	URL       string
}

// Wiki - interface to look up the nearest encyclopedia article
type Wiki interface {
	Nearby(ctx context.Context, lat, lng float64) (*PageSummary, error)
}

type wiki struct {
	endpoint string
	client   *http.Client
}

type geosearchResponse struct {
	Query struct {
		Geosearch []struct {
			PageID int64  `json:"pageid"`
			Title  string `json:"title"`
		} `json:"geosearch"`
	} `json:"query"`
}

type pageResponse struct {
	Query struct {
		Pages map[string]struct {
			PageID    int64  `json:"pageid"`
			Title     string `json:"title"`
			Extract   string `json:"extract"`
			Thumbnail *struct {
				Source string `json:"source"`
			} `json:"thumbnail"`
		} `json:"pages"`
	} `json:"query"`
}

// Nearby finds the nearest article by geosearch and fetches its intro
// extract and thumbnail.
func (w wiki) Nearby(ctx context.Context, lat, lng float64) (*PageSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	geoURL := fmt.Sprintf("%s/w/api.php?action=query&list=geosearch&gscoord=%f%%7C%f&gsradius=%d&gslimit=1&format=json",
		w.endpoint, lat, lng, geosearchRadius)

	var geo geosearchResponse
	if err := w.get(ctx, geoURL, &geo); err != nil {
		return nil, err
	}
	if len(geo.Query.Geosearch) == 0 {
		return nil, ErrNoNearbyArticle
	}

	pageID := geo.Query.Geosearch[0].PageID
	pageURL := fmt.Sprintf("%s/w/api.php?action=query&prop=extracts%%7Cpageimages&exintro=1&explaintext=1&pageids=%d&pithumbsize=%d&format=json",
		w.endpoint, pageID, thumbnailSize)

	var page pageResponse
	if err := w.get(ctx, pageURL, &page); err != nil {
		return nil, err
	}

	for _, p := range page.Query.Pages {
		summary := PageSummary{
			Title:   p.Title,
			PageID:  p.PageID,
			Extract: p.Extract,
			URL:     fmt.Sprintf("https://en.wikipedia.org/?curid=%d", p.PageID),
		}
		if p.Thumbnail != nil {
			summary.Thumbnail = p.Thumbnail.Source
		}
		return &summary, nil
	}

	return nil, ErrNoNearbyArticle
}

func (w wiki) get(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := w.client.Do(req)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Warn("query wikipedia")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("wikipedia responded with status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// New - new Wiki interface
func New(endpoint string, client *http.Client) Wiki {
	e := defaultURL
	if endpoint != "" {
		e = endpoint
	}

	return &wiki{
		endpoint: e,
		client:   client,
	}
}
