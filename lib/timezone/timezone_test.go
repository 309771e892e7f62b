package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIn(t *testing.T) {
	require.Equal(t, "America/New_York", Location.String())
	require.Equal(t, Location, Now().Location())

	cases := []struct {
		utc  time.Time
		want string
	}{
		// EST
		{time.Date(2024, time.January, 15, 17, 0, 0, 0, time.UTC), "2024-01-15 12:00:00"},
		// EDT
		{time.Date(2024, time.July, 15, 17, 0, 0, 0, time.UTC), "2024-07-15 13:00:00"},
	}
	for _, test := range cases {
		require.Equal(t, test.want, In(test.utc).Format(time.DateTime))
	}
}
