package main

import (
	"context"
	"fmt"
	"os"

	"capstone-leads/internal/appconfig"
	"capstone-leads/lib/leadstore"
	"capstone-leads/lib/scrapers/places"
	"capstone-leads/lib/serviceutil"
	"capstone-leads/lib/telemetry"
	"capstone-leads/services/directory"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	trade  *string
	all    *bool
	list   *bool
	output *string
)

func init() {
	trade = rootCmd.Flags().String("trade", "", `Search a single trade, ex. "roofing contractor".`)
	all = rootCmd.Flags().Bool("all", false, "Search every trade.")
	list = rootCmd.Flags().Bool("list", false, "Print the trades searched by --all and exit.")
	output = rootCmd.Flags().String("output", "", "Where to write the report (default output/tampa_subs_<trade>.csv or output/tampa_subcontractors.csv).")
}

func printTrades() {
	fmt.Println("Available trades:")
	t := serviceutil.NewTable(os.Stdout)
	t.AppendHeader(table.Row{"#", "Trade"})
	for i, name := range directory.Trades {
		t.AppendRow(table.Row{i + 1, name})
	}
	t.Render()
	fmt.Printf("\nRun one:  subs --trade %q\n", directory.Trades[1])
	fmt.Println("Run all:  subs --all")
}

// run performs one directory run. The api key is resolved before any
// telemetry is set up, every resource opened is released before it returns.
func run(ctx context.Context, opts directory.Options) (directory.Result, error) {
	cfg, err := appconfig.Load()
	if err != nil {
		return directory.Result{}, fmt.Errorf("read config: %w", err)
	}

	env, err := appconfig.LoadEnv()
	if err != nil {
		return directory.Result{}, fmt.Errorf("read env files: %w", err)
	}
	key, ok := env.Lookup(appconfig.PlacesKeyEnv)
	if !ok {
		return directory.Result{}, fmt.Errorf(
			"%w: set %s in .env.local or as an environment variable",
			places.ErrMissingKey, appconfig.PlacesKeyEnv,
		)
	}

	shutdown := serviceutil.InitTelemetry(ctx, "subs", cfg.Verbose)
	defer shutdown()

	client, err := places.NewClient(places.ClientOptions{
		APIKey:    key,
		Endpoint:  cfg.Directory.Endpoint,
		PageDelay: cfg.Directory.PageDelay(),
		Dump:      serviceutil.RestyDump(cfg.Verbose, "places"),
	})
	if err != nil {
		return directory.Result{}, fmt.Errorf("create places client: %w", err)
	}

	var archive directory.Archive
	if cfg.Archive != "" {
		store, err := leadstore.Open(cfg.Archive)
		if err != nil {
			return directory.Result{}, fmt.Errorf("open archive: %w", err)
		}
		defer store.Close()
		archive = store
	}

	service := directory.NewService(
		telemetry.NewScopedAPI("directory", telemetry.SlogAPI{}),
		client,
		directory.ServiceOptions{
			ZoneDelay:  cfg.Directory.ZoneDelay(),
			TradeDelay: cfg.Directory.TradeDelay(),
			Archive:    archive,
		},
	)

	fmt.Printf("Searching %d zones across Tampa Bay\n", len(service.Zones()))
	return service.Run(ctx, opts)
}

var rootCmd = &cobra.Command{
	Use:   `subs (--trade "<trade>" | --all | --list) [--output <path/to/report.csv>]`,
	Short: "Searches Google Places for subcontractors across Tampa Bay and writes them to a CSV.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if *trade == "" && !*all && !*list {
			cmd.Usage()
			os.Exit(1)
		}
		if *list {
			printTrades()
			return
		}

		result, err := run(cmd.Context(), directory.Options{
			Trade:  *trade,
			All:    *all,
			Output: *output,
		})
		if err != nil {
			serviceutil.Fatal("directory run failed", err)
		}

		fmt.Printf("\nSaved to %s\n", result.Output)
		fmt.Printf(
			"Done! %d subcontractors across %d trade(s).\n",
			result.Results.Total(), len(result.Results),
		)
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
