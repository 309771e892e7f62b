package crossref

import (
	"strconv"
)

var header = []string{
	"Trade Group",
	"Trade",
	"Business / Licensee Name",
	"License #",
	"County",
	"Expires",
	"Business Name",
	"Phone",
	"Website",
	"Google Rating",
	"Total Reviews",
	"Google Maps Link",
	"Match",
	"Score",
}

func Header() []string {
	out := make([]string, len(header))
	copy(out, header)
	return out
}

func optionalFloat(v *float64) string {
	if v == nil || *v == 0 {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func optionalInt(v *int) string {
	if v == nil || *v == 0 {
		return ""
	}
	return strconv.Itoa(*v)
}

func matchKind(m Match) string {
	if m.Exact {
		return "exact"
	}
	return "similar"
}

func BuildRows(matches []Match) [][]string {
	rows := make([][]string, len(matches))
	for i, m := range matches {
		rows[i] = []string{
			m.License.Group,
			m.License.Trade,
			LicenseName(m.License),
			m.License.LicenseNumber,
			m.License.County,
			m.License.Expires,
			m.Place.Name,
			m.Place.Phone,
			m.Place.Website,
			optionalFloat(m.Place.Rating),
			optionalInt(m.Place.Reviews),
			m.Place.MapsURL,
			matchKind(m),
			strconv.FormatFloat(m.Score, 'f', 3, 64),
		}
	}
	return rows
}
