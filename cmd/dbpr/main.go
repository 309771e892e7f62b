package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"capstone-leads/internal/appconfig"
	"capstone-leads/lib/leadstore"
	"capstone-leads/lib/scrapers/dbpr"
	"capstone-leads/lib/serviceutil"
	"capstone-leads/lib/telemetry"
	"capstone-leads/services/registry"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var output *string

func init() {
	output = rootCmd.Flags().String("output", "", fmt.Sprintf("Where to write the report (default %s).", registry.DefaultOutput))
}

// run performs one registry run. Every resource it opens is released
// before it returns, callers only have to report the error.
func run(ctx context.Context, output string) (registry.Result, error) {
	cfg, err := appconfig.Load()
	if err != nil {
		return registry.Result{}, fmt.Errorf("read config: %w", err)
	}
	shutdown := serviceutil.InitTelemetry(ctx, "dbpr", cfg.Verbose)
	defer shutdown()

	tables, err := registry.DefaultTables()
	if cfg.Registry.Trades != "" {
		tables, err = registry.LoadTables(cfg.Registry.Trades)
	}
	if err != nil {
		return registry.Result{}, fmt.Errorf("load trade tables: %w", err)
	}
	err = tables.Validate()
	if err != nil {
		slog.Warn("trade tables are inconsistent", "err", err)
	}

	var archive registry.Archive
	if cfg.Archive != "" {
		store, err := leadstore.Open(cfg.Archive)
		if err != nil {
			return registry.Result{}, err
		}
		defer store.Close()
		archive = store
	}

	client := dbpr.NewClient(dbpr.ClientOptions{
		Timeout:          cfg.Registry.Timeout(),
		CloudflareBypass: cfg.Registry.CloudflareBypass,
		Dump:             serviceutil.RestyDump(cfg.Verbose, "dbpr"),
	})
	service := registry.NewService(
		telemetry.NewScopedAPI("registry", telemetry.SlogAPI{}),
		client,
		tables,
		archive,
	)

	return service.Run(ctx, registry.Options{
		Output:          output,
		ConstructionURL: cfg.Registry.ConstructionURL,
		ElectricalURL:   cfg.Registry.ElectricalURL,
		Counties:        cfg.Registry.Counties,
	})
}

var rootCmd = &cobra.Command{
	Use:   "dbpr [--output <path/to/report.csv>]",
	Short: "Downloads the DBPR license extracts and writes the active Tampa Bay contractors to a CSV.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		result, err := run(cmd.Context(), *output)
		if err != nil {
			serviceutil.Fatal("registry run failed", err)
		}

		if result.ElectricalSkipped {
			fmt.Println("Electrical licenses could not be downloaded, the report only has construction licenses.")
		}
		fmt.Printf("Total Tampa-area active licenses: %d\n\n", len(result.Records))

		t := serviceutil.NewTable(os.Stdout)
		t.AppendHeader(table.Row{"Trade Group", "Licenses"})
		for _, g := range result.Breakdown {
			t.AppendRow(table.Row{g.Group, g.Count})
		}
		t.Render()

		fmt.Printf("\nSaved to %s\n", result.Output)
		if result.RunID != "" {
			fmt.Printf("Archived as run %s, cross-reference with `leads-cli crossref`.\n", result.RunID)
		}
	},
}

func main() {
	ctx := serviceutil.SignalContext()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
