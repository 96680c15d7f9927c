package cmd

import (
	"encoding/json"

	"github.com/fekuna/omnipos-supplychain-service/internal/report"
	"github.com/spf13/cobra"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Print inventory, order and customer analysis",
	Long: `Load a snapshot of both stores and print inventory statistics, the category
and order-status distributions, the top products by revenue and customer
statistics.`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the report as JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	a, err := newApp(cfg, backends{})
	if err != nil {
		return err
	}
	defer a.Close()

	r, err := a.usecases().analytics.Report(cmd.Context())
	if err != nil {
		return err
	}

	if analyzeJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	return report.NewPrinter(cmd.OutOrStdout()).Print(r)
}
