package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"capstone-leads/internal/appconfig"
	"capstone-leads/lib/leadstore"
	"capstone-leads/lib/scrapers/places"
	"capstone-leads/services/directory"

	"github.com/stretchr/testify/require"
)

// chdir moves the test into dir, config.json5 and .env.local are read from
// the cwd outside of a checkout.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		os.Chdir(prev)
	})
}

func writeConfig(t *testing.T, dir, endpoint, archive string) {
	t.Helper()
	config := fmt.Sprintf(`{
		archive: %q,
		directory: {
			endpoint: %q,
			page_delay_ms: -1,
			zone_delay_ms: -1,
			trade_delay_ms: -1,
		},
	}`, archive, endpoint)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json5"), []byte(config), 0644))
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func placesServer(t *testing.T, requests *atomic.Int32) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"places": [{
			"id": "p1",
			"displayName": {"text": "Bay Plumbing"},
			"formattedAddress": "1 Main St, Tampa, FL",
			"nationalPhoneNumber": "(813) 555-0100"
		}]}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRunMissingKeyMakesNoRequests(t *testing.T) {
	t.Setenv(appconfig.PlacesKeyEnv, "")

	var requests atomic.Int32
	srv := placesServer(t, &requests)

	dir := t.TempDir()
	writeConfig(t, dir, srv.URL, filepath.Join(dir, "leads.db"))
	chdir(t, dir)

	output := filepath.Join(dir, "report.csv")
	_, err := run(testContext(t), directory.Options{Trade: "plumber", Output: output})
	require.ErrorIs(t, err, places.ErrMissingKey)
	require.ErrorContains(t, err, appconfig.PlacesKeyEnv)
	require.Zero(t, requests.Load())

	_, err = os.Stat(output)
	require.True(t, os.IsNotExist(err))
	// the archive is only opened once a key is known
	_, err = os.Stat(filepath.Join(dir, "leads.db"))
	require.True(t, os.IsNotExist(err))
}

func TestRunArchivesAndReleasesStore(t *testing.T) {
	t.Setenv(appconfig.PlacesKeyEnv, "")

	var requests atomic.Int32
	srv := placesServer(t, &requests)

	dir := t.TempDir()
	archive := filepath.Join(dir, "leads.db")
	writeConfig(t, dir, srv.URL, archive)
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".env.local"),
		[]byte(appconfig.PlacesKeyEnv+"=test-key\n"),
		0644,
	))
	chdir(t, dir)

	output := filepath.Join(dir, "report.csv")
	result, err := run(testContext(t), directory.Options{Trade: "plumber", Output: output})
	require.NoError(t, err)
	require.Equal(t, output, result.Output)
	require.Equal(t, 1, result.Results.Total())
	require.NotEmpty(t, result.RunID)
	require.NotZero(t, requests.Load())

	report, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Contains(t, string(report), "Bay Plumbing")

	// the archive was closed by run, reopening sees the committed run
	store, err := leadstore.Open(archive)
	require.NoError(t, err)
	defer store.Close()
	saved, err := store.LatestPlaces(testContext(t))
	require.NoError(t, err)
	require.Len(t, saved, 1)
	require.Equal(t, "Bay Plumbing", saved[0].Name)
}
