package crossref

import (
	"capstone-leads/lib/leadstore"
	"capstone-leads/lib/textutil"

	"github.com/antzucaro/matchr"
)

// DefaultThreshold is the lowest Jaro-Winkler similarity accepted as a
// match between two normalized names.
const DefaultThreshold = 0.92

type Match struct {
	License leadstore.License
	Place   leadstore.Place
	// 1 for names that are equal after normalization
	Score float64
	Exact bool
}

// LicenseName is the name a licensee trades under, the DBA name when
// there is one.
func LicenseName(l leadstore.License) string {
	if l.DBA != "" {
		return l.DBA
	}
	return l.Licensee
}

// uniquePlaces drops repeated place ids, the same business can be listed
// under several trades.
func uniquePlaces(list []leadstore.Place) []leadstore.Place {
	seen := make(map[string]struct{}, len(list))
	var out []leadstore.Place
	for _, p := range list {
		if _, ok := seen[p.PlaceID]; ok {
			continue
		}
		seen[p.PlaceID] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Link pairs licenses with places by business name. Exact matches of the
// normalized names are taken first, the remaining licenses are paired with
// the most similar unmatched place scoring at least `threshold`. Every
// place is used at most once. Matches are returned in license order.
func Link(licenses []leadstore.License, directory []leadstore.Place, threshold float64) []Match {
	directory = uniquePlaces(directory)

	licenseNames := make([]string, len(licenses))
	for i, l := range licenses {
		licenseNames[i] = textutil.NormalizeBusinessName(LicenseName(l))
	}
	placeNames := make([]string, len(directory))
	placeByName := make(map[string][]int)
	for i, p := range directory {
		placeNames[i] = textutil.NormalizeBusinessName(p.Name)
		placeByName[placeNames[i]] = append(placeByName[placeNames[i]], i)
	}

	matches := make([]*Match, len(licenses))
	matchedPlace := make([]bool, len(directory))

	for i, name := range licenseNames {
		if name == "" {
			continue
		}
		for _, j := range placeByName[name] {
			if matchedPlace[j] {
				continue
			}
			matches[i] = &Match{
				License: licenses[i],
				Place:   directory[j],
				Score:   1,
				Exact:   true,
			}
			matchedPlace[j] = true
			break
		}
	}

	for i, name := range licenseNames {
		if matches[i] != nil || name == "" {
			continue
		}

		var mostSimilarity float64
		mostSimilar := -1
		for j, placeName := range placeNames {
			if matchedPlace[j] || placeName == "" {
				continue
			}
			similarity := matchr.JaroWinkler(name, placeName, false)
			if similarity > mostSimilarity {
				mostSimilarity = similarity
				mostSimilar = j
			}
		}

		if mostSimilar >= 0 && mostSimilarity >= threshold {
			matches[i] = &Match{
				License: licenses[i],
				Place:   directory[mostSimilar],
				Score:   mostSimilarity,
			}
			matchedPlace[mostSimilar] = true
		}
	}

	var out []Match
	for _, m := range matches {
		if m != nil {
			out = append(out, *m)
		}
	}
	return out
}
