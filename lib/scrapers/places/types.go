package places

import "strings"

// SearchTextURL is the Places API (New) text search endpoint.
const SearchTextURL = "https://places.googleapis.com/v1/places:searchText"

const (
	// PageSize is the number of results requested per page.
	PageSize = 20
	// MaxPages caps pagination per zone, the first page included.
	MaxPages = 3
)

// FieldMask limits responses to the fields stored in Place.
var FieldMask = strings.Join([]string{
	"places.id",
	"places.displayName",
	"places.formattedAddress",
	"places.rating",
	"places.userRatingCount",
	"places.nationalPhoneNumber",
	"places.websiteUri",
	"places.googleMapsUri",
	"nextPageToken",
}, ",")

type LocalizedText struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode,omitempty"`
}

// Place is a single search result. ID is unique per place across every
// query made with the same key.
type Place struct {
	ID                  string        `json:"id"`
	DisplayName         LocalizedText `json:"displayName"`
	FormattedAddress    string        `json:"formattedAddress"`
	NationalPhoneNumber string        `json:"nationalPhoneNumber"`
	WebsiteURI          string        `json:"websiteUri"`
	Rating              *float64      `json:"rating,omitempty"`
	UserRatingCount     *int          `json:"userRatingCount,omitempty"`
	GoogleMapsURI       string        `json:"googleMapsUri"`
}

type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Circle struct {
	Center LatLng `json:"center"`
	// meters
	Radius float64 `json:"radius"`
}

type LocationBias struct {
	Circle Circle `json:"circle"`
}

type SearchRequest struct {
	TextQuery    string       `json:"textQuery"`
	PageSize     int          `json:"pageSize"`
	LocationBias LocationBias `json:"locationBias"`
	PageToken    string       `json:"pageToken,omitempty"`
}

type SearchResponse struct {
	Places        []Place `json:"places"`
	NextPageToken string  `json:"nextPageToken"`
}

// Zone is a named search center, results are biased toward the circle
// around it.
type Zone struct {
	Name      string
	Latitude  float64
	Longitude float64
	// meters
	Radius float64
}

func (z Zone) bias() LocationBias {
	return LocationBias{
		Circle: Circle{
			Center: LatLng{Latitude: z.Latitude, Longitude: z.Longitude},
			Radius: z.Radius,
		},
	}
}
