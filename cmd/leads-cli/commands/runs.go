package commands

import (
	"os"
	"time"

	"capstone-leads/lib/serviceutil"
	"capstone-leads/lib/timezone"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runsCmd)
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Prints every archived run, newest first.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, done := openArchive(cmd.Context())
		defer done()

		runs, err := store.Runs(cmd.Context())
		if err != nil {
			serviceutil.Fatal("list runs", err)
		}

		t := serviceutil.NewTable(os.Stdout)
		t.AppendHeader(table.Row{"Run", "Kind", "Scope", "Rows", "Created", "Output"})
		for _, r := range runs {
			t.AppendRow(table.Row{
				r.ID,
				r.Kind,
				r.Scope,
				r.Rows,
				timezone.In(r.CreatedAt).Format(time.DateTime),
				r.Output,
			})
		}
		t.Render()
	},
}
