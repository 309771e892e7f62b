package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"capstone-leads/internal/appconfig"
	"capstone-leads/lib/leadstore"
	"capstone-leads/lib/serviceutil"

	"github.com/spf13/cobra"
)

var archivePath *string

func init() {
	archivePath = rootCmd.PersistentFlags().String("archive", "", "The archive database, defaults to `archive` in config.json5.")
}

var rootCmd = &cobra.Command{
	Use:   "leads-cli",
	Short: "leads-cli inspects the archived registry and directory runs.",
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openArchive opens the archive named by --archive or the config and
// sets up logging from the config. The returned function releases both.
func openArchive(ctx context.Context) (leadstore.Store, func()) {
	cfg, err := appconfig.Load()
	if err != nil {
		serviceutil.Fatal("read config", err)
	}
	shutdown := serviceutil.InitTelemetry(ctx, "leads-cli", cfg.Verbose)

	path := cfg.Archive
	if *archivePath != "" {
		path = *archivePath
	}
	if path == "" {
		serviceutil.Fatal("open archive", errors.New("no archive configured, set `archive` in config.json5 or pass --archive"))
	}

	store, err := leadstore.Open(path)
	if err != nil {
		serviceutil.Fatal("open archive", err)
	}
	return store, func() {
		store.Close()
		shutdown()
	}
}
