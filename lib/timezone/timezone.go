package timezone

import (
	"time"
	_ "time/tzdata"
)

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/New_York")
	if err != nil {
		panic(err)
	}
}

// the leads are all in Tampa Bay, run times are shown in its timezone no
// matter where the scrapers ran
func Now() time.Time {
	return time.Now().In(Location)
}

// In converts t to the Tampa Bay timezone.
func In(t time.Time) time.Time {
	return t.In(Location)
}
