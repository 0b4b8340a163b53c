package place

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/wanderplan/tripplanner-api/external/googleplaces"
	"github.com/wanderplan/tripplanner-api/external/nominatim"
	"github.com/wanderplan/tripplanner-api/external/wikipedia"
	"github.com/wanderplan/tripplanner-api/schema"
)

const (
	logPrefix = "place"

	// viewport pad applied when the source carries no bounding box
	viewportPad = 0.005

	descriptionLimit = 200

	noAddress     = "No address available"
	noDescription = "No description available"
	unknownPlace  = "Unknown place"
)

var (
	// ErrPlaceNotFound is the only error the normalizer surfaces. Everything
	// else degrades to a default field value.
	ErrPlaceNotFound = fmt.Errorf("place not found")
)

// key priority for contact data hidden in free-form tags
var (
	phoneKeys   = []string{"phone", "contact:phone", "telephone"}
	websiteKeys = []string{"website", "contact:website", "url"}
)

// Normalizer reconciles raw third-party place payloads into the canonical
// Place shape. The search source is mandatory; the encyclopedia lookup is
// best-effort; the paid detail source takes over both when configured.
type Normalizer struct {
	search  nominatim.Geocoder
	wiki    wikipedia.Wiki
	details googleplaces.PlaceSource
}

// NewNormalizer builds a normalizer on the free search and encyclopedia
// sources. details may be nil; when present it replaces the free pipeline.
func NewNormalizer(search nominatim.Geocoder, wiki wikipedia.Wiki, details googleplaces.PlaceSource) *Normalizer {
	return &Normalizer{
		search:  search,
		wiki:    wiki,
		details: details,
	}
}

// Normalize resolves a free-text place name to a fully-populated Place.
// The function is total over any syntactically valid search response: a
// missing optional field never fails the call, only a total absence of a
// match does.
func (n *Normalizer) Normalize(ctx context.Context, placeName string) (*schema.Place, error) {
	if n.details != nil {
		return n.normalizeDetails(ctx, placeName)
	}

	result, err := n.search.Search(ctx, placeName)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"query":  placeName,
			"error":  err,
		}).Warn("place search failed")
		return nil, ErrPlaceNotFound
	}

	lat := parseCoordinate(result.Lat)
	lng := parseCoordinate(result.Lon)

	// best-effort augmentation; any failure means "no augmentation"
	var summary *wikipedia.PageSummary
	if n.wiki != nil {
		if s, err := n.wiki.Nearby(ctx, lat, lng); err == nil {
			summary = s
		}
	}

	place := fromSearchResult(result, summary, placeName, lat, lng)
	return &place, nil
}

func fromSearchResult(result *nominatim.SearchResult, summary *wikipedia.PageSummary, query string, lat, lng float64) schema.Place {
	place := schema.Place{
		Name:             resultName(result, query),
		PhoneNumber:      pickTag(result.ExtraTags, phoneKeys),
		OpeningHours:     []string{},
		Photos:           []string{},
		Reviews:          []schema.Review{},
		Types:            resultTypes(result),
		FormattedAddress: noAddress,
		Geometry: schema.Geometry{
			Location: schema.LatLng{Lat: lat, Lng: lng},
			Viewport: viewportFromBoundingBox(result.BoundingBox, lat, lng),
		},
	}

	if website := pickTag(result.ExtraTags, websiteKeys); website != "" {
		place.Website = &website
	}

	// the schedule arrives as a single opaque string in the source's format
	if hours := result.ExtraTags["opening_hours"]; hours != "" {
		place.OpeningHours = []string{hours}
	}

	if result.DisplayName != "" {
		place.FormattedAddress = result.DisplayName
	}

	var extract, thumbnail string
	if summary != nil {
		extract = summary.Extract
		thumbnail = summary.Thumbnail
	}
	place.BriefDescription = describe(extract, result.Address)
	if thumbnail != "" {
		place.Photos = []string{thumbnail}
	}

	return place
}

func resultName(result *nominatim.SearchResult, query string) string {
	if name := result.NameDetails["name"]; name != "" {
		return name
	}
	if result.DisplayName != "" {
		return strings.TrimSpace(strings.SplitN(result.DisplayName, ",", 2)[0])
	}
	return query
}

func resultTypes(result *nominatim.SearchResult) []string {
	types := []string{}
	if result.Class != "" {
		types = append(types, result.Class)
	}
	if result.Type != "" {
		types = append(types, result.Type)
	}
	if t := result.NameDetails["type"]; t != "" {
		types = append(types, t)
	}
	return types
}

// pickTag returns the first non-empty value among the prioritized keys.
func pickTag(tags map[string]string, keys []string) string {
	for _, key := range keys {
		if v := tags[key]; v != "" {
			return v
		}
	}
	return ""
}

// parseCoordinate treats an unparsable coordinate as a failure of that field
// only, substituting zero.
func parseCoordinate(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// viewportFromBoundingBox converts the source's [south, north, west, east]
// box into northeast/southwest corners. A missing or malformed box becomes a
// small pad around the point.
func viewportFromBoundingBox(box []string, lat, lng float64) schema.Viewport {
	if len(box) != 4 {
		return padViewport(lat, lng)
	}

	south, errS := strconv.ParseFloat(box[0], 64)
	north, errN := strconv.ParseFloat(box[1], 64)
	west, errW := strconv.ParseFloat(box[2], 64)
	east, errE := strconv.ParseFloat(box[3], 64)

	if errS != nil {
		south = lat
	}
	if errN != nil {
		north = lat
	}
	if errW != nil {
		west = lng
	}
	if errE != nil {
		east = lng
	}

	return schema.Viewport{
		Northeast: schema.LatLng{Lat: north, Lng: east},
		Southwest: schema.LatLng{Lat: south, Lng: west},
	}
}

func padViewport(lat, lng float64) schema.Viewport {
	return schema.Viewport{
		Northeast: schema.LatLng{Lat: lat + viewportPad, Lng: lng + viewportPad},
		Southwest: schema.LatLng{Lat: lat - viewportPad, Lng: lng - viewportPad},
	}
}

// describe composes the brief description: encyclopedia extract first, then
// a sentence referencing the best-available locality field.
func describe(extract string, address map[string]string) string {
	if extract != "" {
		return truncate(extract, descriptionLimit) + "..."
	}

	locality := "this area"
	for _, key := range []string{"city", "town", "village", "county"} {
		if v := address[key]; v != "" {
			locality = v
			break
		}
	}
	return fmt.Sprintf("Located in %s. A nice place to visit.", locality)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// normalizeDetails serves the paid path: one detail source carries contact
// data, photos, reviews and geometry all at once.
func (n *Normalizer) normalizeDetails(ctx context.Context, placeName string) (*schema.Place, error) {
	details, err := n.details.Details(ctx, placeName)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"query":  placeName,
			"error":  err,
		}).Warn("place details lookup failed")
		return nil, ErrPlaceNotFound
	}

	place := schema.Place{
		Name:             placeName,
		PhoneNumber:      details.FormattedPhoneNumber,
		OpeningHours:     []string{},
		Photos:           []string{},
		Reviews:          []schema.Review{},
		Types:            []string{},
		FormattedAddress: noAddress,
		Geometry: schema.Geometry{
			Location: schema.LatLng{
				Lat: details.Geometry.Location.Lat,
				Lng: details.Geometry.Location.Lng,
			},
		},
	}

	if details.Name != "" {
		place.Name = details.Name
	}
	if details.Website != "" {
		website := details.Website
		place.Website = &website
	}
	if details.OpeningHours != nil && len(details.OpeningHours.WeekdayText) > 0 {
		place.OpeningHours = details.OpeningHours.WeekdayText
	}
	for _, photo := range details.Photos {
		place.Photos = append(place.Photos, n.details.PhotoURL(photo.PhotoReference))
	}
	for _, review := range details.Reviews {
		author := review.AuthorName
		if author == "" {
			author = "Unknown"
		}
		place.Reviews = append(place.Reviews, schema.Review{
			AuthorName: author,
			Rating:     strconv.Itoa(review.Rating),
			Text:       review.Text,
		})
	}
	if len(details.Types) > 0 {
		place.Types = details.Types
	}
	if details.FormattedAddress != "" {
		place.FormattedAddress = details.FormattedAddress
	}

	place.BriefDescription = describeDetails(details)
	place.Geometry.Viewport = detailsViewport(details.Geometry, place.Geometry.Location)

	return &place, nil
}

func describeDetails(details *maps.PlaceDetailsResult) string {
	if len(details.Reviews) > 0 && details.Reviews[0].Text != "" {
		return truncate(details.Reviews[0].Text, descriptionLimit) + "..."
	}

	locality := "this area"
	if len(details.AddressComponents) > 2 && details.AddressComponents[2].LongName != "" {
		locality = details.AddressComponents[2].LongName
	} else if details.FormattedAddress != "" {
		locality = details.FormattedAddress
	}
	return fmt.Sprintf("Located in %s. A nice place to visit.", locality)
}

func detailsViewport(geometry maps.AddressGeometry, location schema.LatLng) schema.Viewport {
	ne := geometry.Viewport.NorthEast
	sw := geometry.Viewport.SouthWest
	if ne.Lat == 0 && ne.Lng == 0 && sw.Lat == 0 && sw.Lng == 0 {
		return padViewport(location.Lat, location.Lng)
	}

	return schema.Viewport{
		Northeast: schema.LatLng{Lat: ne.Lat, Lng: ne.Lng},
		Southwest: schema.LatLng{Lat: sw.Lat, Lng: sw.Lng},
	}
}

// Defaulted fills every required field of a caller-supplied place payload
// with its documented fallback. The payload is trusted as-is and never
// re-fetched.
func Defaulted(p schema.Place) schema.Place {
	if p.Name == "" {
		p.Name = unknownPlace
	}
	if p.OpeningHours == nil {
		p.OpeningHours = []string{}
	}
	if p.Photos == nil {
		p.Photos = []string{}
	}
	if p.Reviews == nil {
		p.Reviews = []schema.Review{}
	}
	if p.Types == nil {
		p.Types = []string{}
	}
	if p.FormattedAddress == "" {
		p.FormattedAddress = noAddress
	}
	if p.BriefDescription == "" {
		p.BriefDescription = noDescription
	}
	return p
}
