// Package appconfig is the configuration shared by the lead binaries, they
// all read the same config.json5 (and config.local.json5) from the cwd.
package appconfig

import (
	"time"

	devenv "capstone-leads/dev/env"
	"capstone-leads/lib/configutil"
)

const (
	File = "config.json5"
	// the secret used by the directory pipeline
	PlacesKeyEnv = "GOOGLE_PLACES_API_KEY"
)

type RegistryConfig struct {
	ConstructionURL string `json:"construction_url"`
	ElectricalURL   string `json:"electrical_url"`
	// county codes to keep, empty keeps the Tampa Bay counties
	Counties []string `json:"counties"`
	// json5 file merged over the compiled in trade tables
	Trades           string `json:"trades"`
	TimeoutSeconds   int    `json:"timeout_seconds"`
	CloudflareBypass bool   `json:"cloudflare_bypass"`
}

func (c RegistryConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type DirectoryConfig struct {
	Endpoint string `json:"endpoint"`
	// negative values disable the delay, zero keeps the default
	PageDelayMs  int `json:"page_delay_ms"`
	ZoneDelayMs  int `json:"zone_delay_ms"`
	TradeDelayMs int `json:"trade_delay_ms"`
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func (c DirectoryConfig) PageDelay() time.Duration  { return millis(c.PageDelayMs) }
func (c DirectoryConfig) ZoneDelay() time.Duration  { return millis(c.ZoneDelayMs) }
func (c DirectoryConfig) TradeDelay() time.Duration { return millis(c.TradeDelayMs) }

type Config struct {
	Verbose bool `json:"verbose"`
	// sqlite file every run is archived to, empty disables archiving,
	// a leading <dev_state> resolves to dev/.state in the checkout
	Archive   string          `json:"archive"`
	Registry  RegistryConfig  `json:"registry"`
	Directory DirectoryConfig `json:"directory"`
}

// Load reads File from the cwd, a missing file is the zero Config.
func Load() (Config, error) {
	return LoadFrom(File)
}

func LoadFrom(path string) (Config, error) {
	cfg, err := configutil.ReadConfigOr(path, Config{})
	if err != nil {
		return Config{}, err
	}
	if cfg.Archive != "" {
		cfg.Archive, err = devenv.ResolvePath(cfg.Archive)
		if err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// LoadEnv resolves secrets from the process environment and the dotenv
// files at the root of the checkout (or the cwd outside of one).
func LoadEnv() (configutil.Env, error) {
	return configutil.LoadEnv(devenv.WorkspaceRootOrCwd())
}
