package directory

import (
	"strconv"
	"strings"

	"capstone-leads/lib/leadstore"
	"capstone-leads/lib/scrapers/places"
)

const StatusNew = "New"

var header = []string{
	"Trade",
	"Business Name",
	"Address",
	"Phone",
	"Website",
	"Google Rating",
	"Total Reviews",
	"Google Maps Link",
	"Status",
	"Notes",
}

func Header() []string {
	out := make([]string, len(header))
	copy(out, header)
	return out
}

// TradeResults are the unique places found for one trade in discovery order.
type TradeResults struct {
	Trade  string
	Places []places.Place
}

// TradeResultSet keeps trades in the order they were searched.
type TradeResultSet []TradeResults

func (s TradeResultSet) Total() int {
	total := 0
	for _, t := range s {
		total += len(t.Places)
	}
	return total
}

// DisplayTrade drops the first " contractor" and then the first
// " installer" from a trade keyword.
func DisplayTrade(trade string) string {
	trade = strings.Replace(trade, " contractor", "", 1)
	return strings.Replace(trade, " installer", "", 1)
}

func formatRating(rating *float64) string {
	if rating == nil || *rating == 0 {
		return ""
	}
	return strconv.FormatFloat(*rating, 'f', -1, 64)
}

func formatReviews(count *int) string {
	if count == nil || *count == 0 {
		return ""
	}
	return strconv.Itoa(*count)
}

// Lead converts a place into its archived form under a trade.
func Lead(trade string, p places.Place) leadstore.Place {
	return leadstore.Place{
		Trade:   trade,
		PlaceID: p.ID,
		Name:    p.DisplayName.Text,
		Address: p.FormattedAddress,
		Phone:   p.NationalPhoneNumber,
		Website: p.WebsiteURI,
		Rating:  p.Rating,
		Reviews: p.UserRatingCount,
		MapsURL: p.GoogleMapsURI,
	}
}

// Row renders an archived place as a report row.
func Row(p leadstore.Place) []string {
	return []string{
		DisplayTrade(p.Trade),
		p.Name,
		p.Address,
		p.Phone,
		p.Website,
		formatRating(p.Rating),
		formatReviews(p.Reviews),
		p.MapsURL,
		StatusNew,
		"",
	}
}

// Leads flattens the set in trade order, then discovery order.
func (s TradeResultSet) Leads() []leadstore.Place {
	out := make([]leadstore.Place, 0, s.Total())
	for _, t := range s {
		for _, p := range t.Places {
			out = append(out, Lead(t.Trade, p))
		}
	}
	return out
}

// BuildRows renders the set as report rows, nothing is re-sorted.
func BuildRows(set TradeResultSet) [][]string {
	leads := set.Leads()
	rows := make([][]string, len(leads))
	for i, l := range leads {
		rows[i] = Row(l)
	}
	return rows
}
