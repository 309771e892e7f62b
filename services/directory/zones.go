package directory

import (
	"fmt"

	"capstone-leads/lib/scrapers/places"
)

// ZoneRadius is the location bias radius around each zone center, in meters.
const ZoneRadius = 15000

// Zones are the search centers covering Tampa Bay, searched in this order.
var Zones = []places.Zone{
	{Name: "Downtown Tampa", Latitude: 27.9506, Longitude: -82.4572, Radius: ZoneRadius},
	{Name: "Brandon/Riverview", Latitude: 27.8986, Longitude: -82.2868, Radius: ZoneRadius},
	{Name: "Valrico", Latitude: 27.9375, Longitude: -82.2362, Radius: ZoneRadius},
	{Name: "Wesley Chapel", Latitude: 28.2395, Longitude: -82.3275, Radius: ZoneRadius},
	{Name: "Carrollwood/Lutz", Latitude: 28.0755, Longitude: -82.4950, Radius: ZoneRadius},
	{Name: "St. Petersburg", Latitude: 27.7676, Longitude: -82.6403, Radius: ZoneRadius},
	{Name: "Clearwater", Latitude: 27.9659, Longitude: -82.8001, Radius: ZoneRadius},
	{Name: "Largo/Seminole", Latitude: 27.8948, Longitude: -82.7539, Radius: ZoneRadius},
	{Name: "Plant City", Latitude: 28.0186, Longitude: -82.1193, Radius: ZoneRadius},
	{Name: "New Port Richey", Latitude: 28.2444, Longitude: -82.7193, Radius: ZoneRadius},
	{Name: "Bradenton", Latitude: 27.4989, Longitude: -82.5749, Radius: ZoneRadius},
	{Name: "Lakeland", Latitude: 28.0395, Longitude: -81.9498, Radius: ZoneRadius},
	{Name: "Sarasota", Latitude: 27.3364, Longitude: -82.5307, Radius: ZoneRadius},
}

// Trades are the search keywords of an all-trades run, in order.
var Trades = []string{
	"framing contractor",
	"roofing contractor",
	"electrician",
	"plumber",
	"HVAC contractor",
	"concrete contractor",
	"drywall contractor",
	"painter",
	"flooring contractor",
	"landscaping contractor",
	"fence contractor",
	"insulation contractor",
	"foundation contractor",
	"demolition contractor",
	"excavation contractor",
	"masonry contractor",
	"siding contractor",
	"window installer",
	"cabinet installer",
	"general contractor",
}

func Query(trade string, zone places.Zone) string {
	return fmt.Sprintf("%s near %s FL", trade, zone.Name)
}

type ZoneQuery struct {
	Trade string
	Zone  places.Zone
	Query string
}

// Enumerate returns every (trade, zone) pair, trades in the outer loop.
func Enumerate(trades []string, zones []places.Zone) []ZoneQuery {
	out := make([]ZoneQuery, 0, len(trades)*len(zones))
	for _, trade := range trades {
		for _, zone := range zones {
			out = append(out, ZoneQuery{
				Trade: trade,
				Zone:  zone,
				Query: Query(trade, zone),
			})
		}
	}
	return out
}
