package dbpr

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func extractLine(occupation, name, county, primary, secondary string) string {
	fields := []string{
		"06", occupation, name, "", "Certified",
		"123 MAIN ST", "", "", "TAMPA", "FL", "33602",
		county, occupation + "1234567", primary, secondary,
		"01/02/2003", "04/05/2024", "08/31/2026", "", "2024", "",
	}
	for i, f := range fields {
		if strings.ContainsAny(f, ",\"") {
			fields[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
		}
	}
	return strings.Join(fields, ",")
}

func TestColumns(t *testing.T) {
	columns := Columns()
	require.Len(t, columns, 21)
	require.Equal(t, "board_number", columns[0])
	require.Equal(t, "county_code", columns[11])
	require.Equal(t, "alternate_license", columns[20])
}

func TestParseRecords(t *testing.T) {
	text := strings.Join([]string{
		extractLine("CGC", `SMITH, "BOB" CONSTRUCTION`, "39", "C", "A"),
		"",
		"   ",
		"too,few,fields",
		extractLine("QB", "SPARKY ELECTRIC", "62", "C", "A"),
	}, "\n")

	records, dropped := ParseRecords(text)
	require.Equal(t, 1, dropped)
	require.Len(t, records, 2)

	require.Equal(t, `SMITH, "BOB" CONSTRUCTION`, records[0].LicenseeName)
	require.Equal(t, "CGC", records[0].OccupationCode)
	require.Equal(t, "39", records[0].CountyCode)
	require.Equal(t, "CGC1234567", records[0].LicenseNumber)
	require.Equal(t, "08/31/2026", records[0].ExpirationDate)
	require.Equal(t, "SPARKY ELECTRIC", records[1].LicenseeName)
}

func TestParseRecordsCardinality(t *testing.T) {
	lines := []string{
		extractLine("CGC", "A", "39", "C", "A"),
		"1,2,3,4,5,6,7,8,9,10,11,12,13,14",
		"1,2,3,4,5,6,7,8,9,10,11,12,13,14,15",
	}
	records, dropped := ParseRecords(strings.Join(lines, "\n"))
	require.LessOrEqual(t, len(records), len(lines))
	require.Len(t, records, 2)
	require.Equal(t, 1, dropped)
}

func TestRecordFromFieldsShortRow(t *testing.T) {
	fields := strings.Split("06,CRC,JOHN DOE,DOE HOMES,Registered,1 A ST,STE 2,,TAMPA,FL,33602,39,CRC123,C,A", ",")
	record := RecordFromFields(fields)

	expected := LicenseRecord{
		BoardNumber:     "06",
		OccupationCode:  "CRC",
		LicenseeName:    "JOHN DOE",
		DBAName:         "DOE HOMES",
		ClassCode:       "Registered",
		Address1:        "1 A ST",
		Address2:        "STE 2",
		City:            "TAMPA",
		State:           "FL",
		Zip:             "33602",
		CountyCode:      "39",
		LicenseNumber:   "CRC123",
		PrimaryStatus:   "C",
		SecondaryStatus: "A",
	}
	if diff := cmp.Diff(expected, record); diff != "" {
		t.Fatal(diff)
	}
	require.Equal(t, "1 A ST STE 2", record.Address())
}
