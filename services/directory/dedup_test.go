package directory

import (
	"testing"

	"capstone-leads/lib/scrapers/places"

	"github.com/stretchr/testify/require"
)

func ids(results []places.Place) []string {
	out := make([]string, len(results))
	for i, p := range results {
		out[i] = p.ID
	}
	return out
}

func placesWithIds(list ...string) []places.Place {
	out := make([]places.Place, len(list))
	for i, id := range list {
		out[i] = places.Place{ID: id}
	}
	return out
}

func TestDeduperAcrossZones(t *testing.T) {
	dedup := NewDeduper()

	require.Equal(t, []string{"A", "B"}, ids(dedup.Add(placesWithIds("A", "B"))))
	require.Equal(t, []string{"C"}, ids(dedup.Add(placesWithIds("B", "C"))))
	require.Empty(t, dedup.Add(placesWithIds("A", "C")))
	require.Equal(t, 3, dedup.Len())
}

func TestDeduperWithinBatch(t *testing.T) {
	dedup := NewDeduper()
	require.Equal(t, []string{"A", "B"}, ids(dedup.Add(placesWithIds("A", "A", "B", "A"))))
}

func TestDeduperBatchingIndependent(t *testing.T) {
	stream := placesWithIds("A", "B", "A", "C", "D", "B", "E", "C")

	whole := NewDeduper().Add(stream)

	for size := 1; size <= len(stream); size++ {
		dedup := NewDeduper()
		var got []places.Place
		for start := 0; start < len(stream); start += size {
			end := min(start+size, len(stream))
			got = append(got, dedup.Add(stream[start:end])...)
		}
		require.Equal(t, ids(whole), ids(got), "batch size %d", size)
	}
	require.Equal(t, []string{"A", "B", "C", "D", "E"}, ids(whole))
}
