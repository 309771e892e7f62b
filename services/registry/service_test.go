package registry

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"capstone-leads/lib/csvutil"
	"capstone-leads/lib/leadstore"
	"capstone-leads/lib/leadstore/db"
	"capstone-leads/lib/scrapers/dbpr"
	"capstone-leads/lib/testutil"

	"github.com/stretchr/testify/require"
)

type fakeSource map[string]any

func (f fakeSource) Download(ctx context.Context, url, label string) (string, error) {
	switch v := f[url].(type) {
	case string:
		return v, nil
	case error:
		return "", v
	}
	return "", &dbpr.StatusError{Label: label, StatusCode: 404}
}

func line(occupation, name, county string) string {
	return csvutil.JoinRow([]string{
		"06", occupation, name, "", "Certified",
		"1 MAIN ST", "", "", "TAMPA", "FL", "33602",
		county, occupation + "123", "C", "A",
		"01/02/2003", "04/05/2024", "08/31/2026", "", "2024", "",
	})
}

const (
	constructionURL = "https://example.test/construction.csv"
	electricalURL   = "https://example.test/electrical.csv"
)

func runOptions(dir string) Options {
	return Options{
		Output:          filepath.Join(dir, "out", "report.csv"),
		ConstructionURL: constructionURL,
		ElectricalURL:   electricalURL,
	}
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestRun(t *testing.T) {
	source := fakeSource{
		constructionURL: strings.Join([]string{
			line("RG", "ZETA BUILDERS", "39"),
			line("CGC", "ALPHA BUILDERS", "62"),
			line("CFC", "FAR AWAY PLUMBING", "99"),
			"short,row",
			line("CPC", "POOLS R US", "68"),
		}, "\n"),
		electricalURL: line("QB", `SMITH, "BOB" ELECTRIC`, "61"),
	}
	tel := &testutil.RecordingAPI{}
	service := NewService(tel, source, defaultTables(t), nil)
	opts := runOptions(t.TempDir())

	result, err := service.Run(testContext(t), opts)
	require.NoError(t, err)
	require.False(t, result.ElectricalSkipped)
	require.Empty(t, tel.Warnings)
	require.Equal(t, int64(1), tel.Counts["parse-construction.dropped"])

	var names []string
	for _, r := range result.Records {
		names = append(names, r.LicenseeName)
	}
	require.Equal(t, []string{"SMITH, \"BOB\" ELECTRIC", "ALPHA BUILDERS", "ZETA BUILDERS", "POOLS R US"}, names)

	require.Equal(t, []GroupCount{
		{Group: "General Contractor", Count: 2},
		{Group: "Electrical", Count: 1},
		{Group: "Pool & Spa", Count: 1},
	}, result.Breakdown)

	written, err := os.ReadFile(opts.Output)
	require.NoError(t, err)
	lines := strings.Split(string(written), "\n")
	require.Len(t, lines, 5)
	require.Equal(t, csvutil.JoinRow(Header()), lines[0])
	require.True(t, strings.HasPrefix(lines[1], `Electrical,Electrical Contractor,"SMITH, ""BOB"" ELECTRIC"`))
	require.False(t, strings.HasSuffix(string(written), "\n"))
}

func TestRunSkipsElectricalFailure(t *testing.T) {
	source := fakeSource{
		constructionURL: line("CGC", "ALPHA BUILDERS", "39"),
		electricalURL:   &dbpr.StatusError{Label: "electrical", StatusCode: 503},
	}
	tel := &testutil.RecordingAPI{}
	service := NewService(tel, source, defaultTables(t), nil)
	opts := runOptions(t.TempDir())

	result, err := service.Run(testContext(t), opts)
	require.NoError(t, err)
	require.True(t, result.ElectricalSkipped)
	require.Equal(t, []string{"download-electrical"}, tel.Warnings)
	require.Len(t, result.Records, 1)

	_, err = os.Stat(opts.Output)
	require.NoError(t, err)
}

func TestRunConstructionFailureLeavesOutputUntouched(t *testing.T) {
	source := fakeSource{
		constructionURL: &dbpr.StatusError{Label: "construction", StatusCode: 500},
		electricalURL:   line("QB", "SPARKY", "39"),
	}
	dir := t.TempDir()

	t.Run("absent", func(t *testing.T) {
		tel := &testutil.RecordingAPI{}
		opts := runOptions(dir)
		_, err := NewService(tel, source, defaultTables(t), nil).Run(testContext(t), opts)

		var statusErr *dbpr.StatusError
		require.True(t, errors.As(err, &statusErr))
		require.Equal(t, 500, statusErr.StatusCode)
		require.Equal(t, []string{"download-construction"}, tel.Broken)

		_, err = os.Stat(opts.Output)
		require.True(t, os.IsNotExist(err))
	})

	t.Run("existing", func(t *testing.T) {
		opts := runOptions(dir)
		require.NoError(t, os.MkdirAll(filepath.Dir(opts.Output), 0755))
		require.NoError(t, os.WriteFile(opts.Output, []byte("previous"), 0644))

		_, err := NewService(&testutil.RecordingAPI{}, source, defaultTables(t), nil).Run(testContext(t), opts)
		require.Error(t, err)

		written, err := os.ReadFile(opts.Output)
		require.NoError(t, err)
		require.Equal(t, "previous", string(written))
	})
}

func TestRunArchives(t *testing.T) {
	store := leadstore.NewStore(testutil.OpenDB(t, db.Schema))

	source := fakeSource{
		constructionURL: line("CGC", "ALPHA BUILDERS", "39"),
		electricalURL:   line("QB", "SPARKY", "62"),
	}
	ctx := testContext(t)
	result, err := NewService(&testutil.RecordingAPI{}, source, defaultTables(t), store).Run(ctx, runOptions(t.TempDir()))
	require.NoError(t, err)
	require.NotEmpty(t, result.RunID)

	licenses, err := store.LatestLicenses(ctx)
	require.NoError(t, err)
	require.Len(t, licenses, 2)
	require.Equal(t, "Electrical", licenses[0].Group)
	require.Equal(t, "Pinellas", licenses[0].County)
	require.Equal(t, "ALPHA BUILDERS", licenses[1].Licensee)
}
