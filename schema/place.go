package schema

// LatLng is a single coordinate pair.
type LatLng struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Viewport is the bounding box recommended for displaying a place.
type Viewport struct {
	Northeast LatLng `bson:"northeast" json:"northeast"`
	Southwest LatLng `bson:"southwest" json:"southwest"`
}

type Geometry struct {
	Location LatLng   `bson:"location" json:"location"`
	Viewport Viewport `bson:"viewport" json:"viewport"`
}

type Review struct {
	AuthorName string `bson:"authorName" json:"authorName"`
	Rating     string `bson:"rating" json:"rating"`
	Text       string `bson:"text" json:"text"`
}

// Place is the canonical point-of-interest record. Every required field is
// populated with a concrete value by the normalizer, even when only the bare
// geocode survives.
type Place struct {
	Name             string   `bson:"name" json:"name"`
	PhoneNumber      string   `bson:"phoneNumber" json:"phoneNumber"`
	Website          *string  `bson:"website" json:"website"`
	OpeningHours     []string `bson:"openingHours" json:"openingHours"`
	Photos           []string `bson:"photos" json:"photos"`
	Reviews          []Review `bson:"reviews" json:"reviews"`
	Types            []string `bson:"types" json:"types"`
	FormattedAddress string   `bson:"formatted_address" json:"formatted_address"`
	BriefDescription string   `bson:"briefDescription" json:"briefDescription"`
	Geometry         Geometry `bson:"geometry" json:"geometry"`
}

// Activity is a place pinned to an itinerary date.
type Activity struct {
	Date  string `bson:"date" json:"date"`
	Place `bson:",inline"`
}
