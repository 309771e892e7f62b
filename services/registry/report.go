package registry

import (
	"sort"

	"capstone-leads/lib/leadstore"
	"capstone-leads/lib/scrapers/dbpr"
)

// StatusNew and the empty notes column are filled in for every row, the
// sales team edits them by hand afterwards.
const StatusNew = "New"

var header = []string{
	"Trade Group",
	"Trade",
	"Business / Licensee Name",
	"DBA Name",
	"License #",
	"Class",
	"Address",
	"City",
	"State",
	"Zip",
	"County",
	"Licensed Since",
	"Expires",
	"Status",
	"Notes",
}

// Header returns the column names of the registry report.
func Header() []string {
	out := make([]string, len(header))
	copy(out, header)
	return out
}

// SortRecords orders records by (group, licensee name) in place. The sort
// is stable so ties keep their input order, strings compare byte-wise.
func (t Tables) SortRecords(records []dbpr.LicenseRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		gi := t.Classify(records[i].OccupationCode).Group
		gj := t.Classify(records[j].OccupationCode).Group
		if gi != gj {
			return gi < gj
		}
		return records[i].LicenseeName < records[j].LicenseeName
	})
}

// License converts a record into its report form.
func (t Tables) License(r dbpr.LicenseRecord) leadstore.License {
	c := t.Classify(r.OccupationCode)
	return leadstore.License{
		Group:         c.Group,
		Trade:         c.Trade,
		Licensee:      r.LicenseeName,
		DBA:           r.DBAName,
		LicenseNumber: r.LicenseNumber,
		Class:         r.ClassCode,
		Address:       r.Address(),
		City:          r.City,
		State:         r.State,
		Zip:           r.Zip,
		County:        t.County(r.CountyCode),
		LicensedSince: r.OriginalLicenseDate,
		Expires:       r.ExpirationDate,
	}
}

func Row(l leadstore.License) []string {
	return []string{
		l.Group,
		l.Trade,
		l.Licensee,
		l.DBA,
		l.LicenseNumber,
		l.Class,
		l.Address,
		l.City,
		l.State,
		l.Zip,
		l.County,
		l.LicensedSince,
		l.Expires,
		StatusNew,
		"",
	}
}

// BuildRows renders records as report rows, in the given order.
func (t Tables) BuildRows(records []dbpr.LicenseRecord) [][]string {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = Row(t.License(r))
	}
	return rows
}

type GroupCount struct {
	Group string
	Count int
}

// Breakdown counts records per group in table order, groups without any
// record are omitted. Records classified as Other are not counted.
func (t Tables) Breakdown(records []dbpr.LicenseRecord) []GroupCount {
	counts := map[string]int{}
	for _, r := range records {
		counts[t.Classify(r.OccupationCode).Group]++
	}

	var out []GroupCount
	for _, g := range t.groups {
		n := counts[g.Name]
		if n == 0 {
			continue
		}
		out = append(out, GroupCount{Group: g.Name, Count: n})
	}
	return out
}
