package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"capstone-leads/lib/csvutil"
	"capstone-leads/lib/leadstore"
	"capstone-leads/lib/scrapers/dbpr"

	"github.com/stretchr/testify/require"
)

// chdir moves the test into dir, config.json5 is read from the cwd.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		os.Chdir(prev)
	})
}

func writeConfig(t *testing.T, dir, serverURL, archive string) {
	t.Helper()
	config := fmt.Sprintf(`{
		archive: %q,
		registry: {
			construction_url: "%s/construction.csv",
			electrical_url: "%s/electrical.csv",
		},
	}`, archive, serverURL, serverURL)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json5"), []byte(config), 0644))
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestRunArchivesAndReleasesStore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/construction.csv":
			w.Write([]byte(csvutil.JoinRow([]string{
				"06", "CGC", "ALPHA BUILDERS", "", "Certified",
				"1 MAIN ST", "", "", "TAMPA", "FL", "33602",
				"39", "CGC123", "C", "A",
				"01/02/2003", "04/05/2024", "08/31/2026", "", "2024", "",
			})))
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	defer srv.Close()

	dir := t.TempDir()
	archive := filepath.Join(dir, "leads.db")
	writeConfig(t, dir, srv.URL, archive)
	chdir(t, dir)

	output := filepath.Join(dir, "report.csv")
	result, err := run(testContext(t), output)
	require.NoError(t, err)
	require.True(t, result.ElectricalSkipped)
	require.Len(t, result.Records, 1)
	require.NotEmpty(t, result.RunID)

	// the archive was closed by run, reopening sees the committed run
	store, err := leadstore.Open(archive)
	require.NoError(t, err)
	defer store.Close()
	licenses, err := store.LatestLicenses(testContext(t))
	require.NoError(t, err)
	require.Len(t, licenses, 1)
	require.Equal(t, "ALPHA BUILDERS", licenses[0].Licensee)
}

func TestRunConstructionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	dir := t.TempDir()
	writeConfig(t, dir, srv.URL, filepath.Join(dir, "leads.db"))
	chdir(t, dir)

	output := filepath.Join(dir, "report.csv")
	_, err := run(testContext(t), output)

	var statusErr *dbpr.StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)

	_, err = os.Stat(output)
	require.True(t, os.IsNotExist(err))
}
