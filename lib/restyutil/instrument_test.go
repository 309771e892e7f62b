package restyutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

type memoryOutput map[string]string

func (m memoryOutput) Write(id string, contents string) {
	m[id] = contents
}

func TestDumpExchangesRedactsKeys(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	out := memoryOutput{}
	client := resty.New()
	DumpExchanges(client, out)

	_, err := client.R().
		SetHeader("X-Goog-Api-Key", "super-secret").
		SetBody(map[string]string{"textQuery": "plumber"}).
		Post(srv.URL)
	require.NoError(t, err)

	require.Len(t, out, 1)
	dump := out["1"]
	require.Contains(t, dump, "POST "+srv.URL)
	require.Contains(t, dump, `{"ok":true}`)
	require.NotContains(t, dump, "super-secret")
	require.True(t, strings.Contains(dump, "<redacted>"))
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", maxDumpedBody+10)
	require.Contains(t, truncate(long), "(10 bytes truncated)")
	require.Equal(t, "short", truncate("short"))
}
