package directory

import "capstone-leads/lib/scrapers/places"

// Deduper remembers place ids across every zone searched for one trade.
type Deduper struct {
	seen map[string]struct{}
}

func NewDeduper() *Deduper {
	return &Deduper{seen: map[string]struct{}{}}
}

// Add returns the places whose id has not been seen yet, in input order,
// and marks them as seen.
func (d *Deduper) Add(results []places.Place) []places.Place {
	var fresh []places.Place
	for _, p := range results {
		if _, ok := d.seen[p.ID]; ok {
			continue
		}
		d.seen[p.ID] = struct{}{}
		fresh = append(fresh, p)
	}
	return fresh
}

func (d *Deduper) Len() int {
	return len(d.seen)
}
