package registry

import (
	"testing"

	"capstone-leads/lib/scrapers/dbpr"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestHeader(t *testing.T) {
	require.Equal(t, []string{
		"Trade Group", "Trade", "Business / Licensee Name", "DBA Name", "License #",
		"Class", "Address", "City", "State", "Zip", "County", "Licensed Since",
		"Expires", "Status", "Notes",
	}, Header())
}

func TestSortRecordsIsStable(t *testing.T) {
	tables := defaultTables(t)
	records := []dbpr.LicenseRecord{
		{OccupationCode: "RF", LicenseeName: "ZED PLUMBING", LicenseNumber: "1"},
		{OccupationCode: "CGC", LicenseeName: "BETA", LicenseNumber: "2"},
		{OccupationCode: "RG", LicenseeName: "ALPHA", LicenseNumber: "3"},
		{OccupationCode: "ZZZ", LicenseeName: "MYSTERY", LicenseNumber: "4"},
		{OccupationCode: "CGC", LicenseeName: "ALPHA", LicenseNumber: "5"},
		{OccupationCode: "CFC", LicenseeName: "ZED PLUMBING", LicenseNumber: "6"},
		{OccupationCode: "CGC", LicenseeName: "alpha", LicenseNumber: "7"},
	}

	tables.SortRecords(records)

	var got []string
	for _, r := range records {
		got = append(got, r.LicenseNumber)
	}
	// General Contractor < Other < Plumbing, upper case sorts before lower
	// case, ties keep input order
	require.Equal(t, []string{"3", "5", "2", "7", "4", "1", "6"}, got)
}

func TestBuildRows(t *testing.T) {
	tables := defaultTables(t)
	records := []dbpr.LicenseRecord{
		{
			OccupationCode:      "CCC",
			LicenseeName:        "SMITH, BOB",
			DBAName:             "BOB'S ROOFS",
			LicenseNumber:       "CCC1330000",
			ClassCode:           "Certified",
			Address1:            "1 MAIN ST",
			Address3:            "SUITE 4",
			City:                "TAMPA",
			State:               "FL",
			Zip:                 "33602",
			CountyCode:          "39",
			OriginalLicenseDate: "01/02/2003",
			ExpirationDate:      "08/31/2026",
		},
		{OccupationCode: "XYZ", LicenseeName: "UNKNOWN", CountyCode: "99"},
	}

	want := [][]string{
		{
			"Roofing", "Roofing (Cert)", "SMITH, BOB", "BOB'S ROOFS", "CCC1330000",
			"Certified", "1 MAIN ST SUITE 4", "TAMPA", "FL", "33602", "Hillsborough",
			"01/02/2003", "08/31/2026", "New", "",
		},
		{
			"Other", "Other", "UNKNOWN", "", "", "", "", "", "", "", "99",
			"", "", "New", "",
		},
	}
	if diff := cmp.Diff(want, tables.BuildRows(records)); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestBreakdown(t *testing.T) {
	tables := defaultTables(t)
	records := []dbpr.LicenseRecord{
		{OccupationCode: "QB"},
		{OccupationCode: "CGC"},
		{OccupationCode: "QB"},
		{OccupationCode: "ZZZ"},
		{OccupationCode: "RG"},
		{OccupationCode: "FRO"},
	}

	want := []GroupCount{
		{Group: "General Contractor", Count: 2},
		{Group: "Electrical", Count: 2},
		{Group: "Fire Protection", Count: 1},
	}
	require.Equal(t, want, tables.Breakdown(records))
	require.Empty(t, tables.Breakdown(nil))
}
