package dbpr

import (
	"strings"

	"capstone-leads/lib/csvutil"
)

// MinFields is the fewest fields a line may parse to and still count as a
// license row, shorter lines are dropped.
const MinFields = 15

// LicenseRecord is one row of a DBPR license extract. The extracts carry no
// header, the column order below is asserted positionally.
type LicenseRecord struct {
	BoardNumber         string
	OccupationCode      string
	LicenseeName        string
	DBAName             string
	ClassCode           string
	Address1            string
	Address2            string
	Address3            string
	City                string
	State               string
	Zip                 string
	CountyCode          string
	LicenseNumber       string
	PrimaryStatus       string
	SecondaryStatus     string
	OriginalLicenseDate string
	EffectiveDate       string
	ExpirationDate      string
	Blank               string
	RenewalPeriod       string
	AlternateLicense    string
}

// Address joins the non-empty address lines with a space.
func (r LicenseRecord) Address() string {
	var parts []string
	for _, p := range []string{r.Address1, r.Address2, r.Address3} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

type column struct {
	name string
	set  func(r *LicenseRecord, v string)
}

var schema = []column{
	{"board_number", func(r *LicenseRecord, v string) { r.BoardNumber = v }},
	{"occupation_code", func(r *LicenseRecord, v string) { r.OccupationCode = v }},
	{"licensee_name", func(r *LicenseRecord, v string) { r.LicenseeName = v }},
	{"dba_name", func(r *LicenseRecord, v string) { r.DBAName = v }},
	{"class_code", func(r *LicenseRecord, v string) { r.ClassCode = v }},
	{"address1", func(r *LicenseRecord, v string) { r.Address1 = v }},
	{"address2", func(r *LicenseRecord, v string) { r.Address2 = v }},
	{"address3", func(r *LicenseRecord, v string) { r.Address3 = v }},
	{"city", func(r *LicenseRecord, v string) { r.City = v }},
	{"state", func(r *LicenseRecord, v string) { r.State = v }},
	{"zip", func(r *LicenseRecord, v string) { r.Zip = v }},
	{"county_code", func(r *LicenseRecord, v string) { r.CountyCode = v }},
	{"license_number", func(r *LicenseRecord, v string) { r.LicenseNumber = v }},
	{"primary_status", func(r *LicenseRecord, v string) { r.PrimaryStatus = v }},
	{"secondary_status", func(r *LicenseRecord, v string) { r.SecondaryStatus = v }},
	{"original_license_date", func(r *LicenseRecord, v string) { r.OriginalLicenseDate = v }},
	{"effective_date", func(r *LicenseRecord, v string) { r.EffectiveDate = v }},
	{"expiration_date", func(r *LicenseRecord, v string) { r.ExpirationDate = v }},
	{"blank", func(r *LicenseRecord, v string) { r.Blank = v }},
	{"renewal_period", func(r *LicenseRecord, v string) { r.RenewalPeriod = v }},
	{"alternate_license", func(r *LicenseRecord, v string) { r.AlternateLicense = v }},
}

// Columns lists the extract's column names in file order.
func Columns() []string {
	names := make([]string, len(schema))
	for i, c := range schema {
		names[i] = c.name
	}
	return names
}

// RecordFromFields zips fields against the column schema, missing trailing
// fields are left empty and extra fields are ignored.
func RecordFromFields(fields []string) LicenseRecord {
	var r LicenseRecord
	for i, c := range schema {
		if i >= len(fields) {
			break
		}
		c.set(&r, strings.TrimSpace(fields[i]))
	}
	return r
}

// ParseRecords parses a whole extract. Blank lines are skipped and lines
// with fewer than MinFields fields are dropped, the number of dropped lines
// is returned alongside the records.
func ParseRecords(text string) ([]LicenseRecord, int) {
	var records []LicenseRecord
	dropped := 0

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := csvutil.ParseLine(line)
		if len(fields) < MinFields {
			dropped++
			continue
		}
		records = append(records, RecordFromFields(fields))
	}

	return records, dropped
}
