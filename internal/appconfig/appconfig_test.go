package appconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadFromMissing(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json5"))
	require.NoError(t, err)
	require.Equal(t, Config{}, cfg)
}

func TestLoadFromWithLocalOverride(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "leads.db")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json5"), []byte(`{
		// shared defaults
		archive: "`+archive+`",
		registry: { timeout_seconds: 60, counties: ["39"] },
		directory: { zone_delay_ms: 250 },
	}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.local.json5"), []byte(`{
		verbose: true,
		directory: { page_delay_ms: -1 },
	}`), 0644))

	cfg, err := LoadFrom(filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.True(t, cfg.Verbose)
	require.Equal(t, archive, cfg.Archive)
	require.Equal(t, time.Minute, cfg.Registry.Timeout())
	require.Equal(t, []string{"39"}, cfg.Registry.Counties)
	require.Equal(t, 250*time.Millisecond, cfg.Directory.ZoneDelay())
	require.Equal(t, -time.Millisecond, cfg.Directory.PageDelay())
	require.Equal(t, time.Duration(0), cfg.Directory.TradeDelay())
}
