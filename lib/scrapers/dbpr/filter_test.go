package dbpr

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRegionFilter(t *testing.T) {
	text := strings.Join([]string{
		extractLine("CGC", "HILLSBOROUGH BUILDER", "39", "C", "A"),
		extractLine("CGC", "PINELLAS BUILDER", "62", "C", "A"),
		extractLine("CGC", "FAR AWAY BUILDER", "99", "C", "A"),
		extractLine("CGC", "LAPSED BUILDER", "39", "N", "A"),
		extractLine("CGC", "INACTIVE BUILDER", "39", "C", "I"),
		extractLine("CGC", "LOWERCASE BUILDER", "39", "c", "a"),
	}, "\n")
	records, _ := ParseRecords(text)
	require.Len(t, records, 6)

	filter := NewRegionFilter(TampaCounties)
	kept := filter.Apply(records)

	names := make([]string, len(kept))
	for i, r := range kept {
		names[i] = r.LicenseeName
	}
	require.Equal(t, []string{"HILLSBOROUGH BUILDER", "PINELLAS BUILDER"}, names)
}

func TestRegionFilterIdempotent(t *testing.T) {
	var records []LicenseRecord
	for _, county := range []string{"39", "61", "12", "68", "37", "00"} {
		for _, status := range [][2]string{{"C", "A"}, {"C", "I"}, {"X", "A"}} {
			records = append(records, LicenseRecord{
				CountyCode:      county,
				PrimaryStatus:   status[0],
				SecondaryStatus: status[1],
			})
		}
	}

	filter := NewRegionFilter(TampaCounties)
	once := filter.Apply(records)
	twice := filter.Apply(once)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatal(diff)
	}
	require.Len(t, once, 4)
}
