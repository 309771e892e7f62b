package dbpr

// Status codes used by the extracts, these are the provider's literals.
const (
	// primary status: current
	StatusCurrent = "C"
	// secondary status: active
	StatusActive = "A"
)

// TampaCounties are the county codes kept by default,
// Hillsborough=39, Pinellas=62, Pasco=61, Manatee=51, Polk=63, Hernando=37, Sarasota=68
var TampaCounties = []string{"39", "62", "61", "51", "63", "37", "68"}

// RegionFilter keeps active licenses within a set of counties.
type RegionFilter struct {
	counties map[string]struct{}
}

func NewRegionFilter(counties []string) RegionFilter {
	set := make(map[string]struct{}, len(counties))
	for _, c := range counties {
		set[c] = struct{}{}
	}
	return RegionFilter{counties: set}
}

func (f RegionFilter) Keep(r LicenseRecord) bool {
	_, ok := f.counties[r.CountyCode]
	return ok &&
		r.PrimaryStatus == StatusCurrent &&
		r.SecondaryStatus == StatusActive
}

// Apply returns the records that pass Keep, in their original order.
func (f RegionFilter) Apply(records []LicenseRecord) []LicenseRecord {
	var out []LicenseRecord
	for _, r := range records {
		if f.Keep(r) {
			out = append(out, r)
		}
	}
	return out
}
