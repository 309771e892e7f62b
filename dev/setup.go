package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	devenv "capstone-leads/dev/env"
	"capstone-leads/internal/appconfig"
	"capstone-leads/lib/configutil"
	leadstoredb "capstone-leads/lib/leadstore/db"
	"capstone-leads/lib/sqliteutil"

	"github.com/joho/godotenv"
	"github.com/tcnksm/go-input"
)

const archivePath = "<dev_state>/leads.db"

func CreateArchive() error {
	path, err := devenv.ResolvePath(archivePath)
	if err != nil {
		return err
	}

	_, err = os.Stat(path)
	if err == nil {
		fmt.Println("archive already created at", path)
		return nil
	}

	fmt.Println("creating archive at", path)
	db, err := sqliteutil.OpenDB(leadstoredb.Schema, path)
	if err != nil {
		return err
	}
	return db.Close()
}

const localConfig = `{
  verbose: true,
  archive: "` + archivePath + `",
}
`

func WriteLocalConfig() error {
	_, err := os.Stat("config.local.json5")
	if err == nil {
		fmt.Println("config.local.json5 already exists")
		return nil
	}
	fmt.Println("writing config.local.json5")
	return os.WriteFile("config.local.json5", []byte(localConfig), 0644)
}

func SetupPlacesKey() error {
	root, err := devenv.GetWorkspaceRoot()
	if err != nil {
		return err
	}
	env, err := configutil.LoadEnv(root)
	if err != nil {
		return err
	}
	if _, ok := env.Lookup(appconfig.PlacesKeyEnv); ok {
		slog.Info("a google places api key has already been provided")
		return nil
	}

	ui := input.DefaultUI()
	key, err := ui.Ask("google places api key (empty to skip):", &input.Options{
		Mask:     true,
		Required: false,
		Loop:     false,
	})
	if err != nil {
		return err
	}
	if key == "" {
		slog.Info("skipped, the subs scraper will not run until the key is set")
		return nil
	}

	path := filepath.Join(root, ".env.local")
	values := map[string]string{}
	_, err = os.Stat(path)
	if err == nil {
		values, err = godotenv.Read(path)
		if err != nil {
			return err
		}
	}
	values[appconfig.PlacesKeyEnv] = key
	return godotenv.Write(values, path)
}

func PrintConfigLocations() {
	slog.Info("config.json5 and config.local.json5 in the repository root configure the scrapers, .env.local holds the api key.")
}
