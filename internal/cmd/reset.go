package cmd

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var resetConfirmed bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every record in both stores",
	Long: `Delete every supplier, product, customer, order and order item, then clear
the product list cache and drop the product search index.`,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().BoolVar(&resetConfirmed, "yes", false, "Confirm deleting all data")
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetConfirmed {
		return errors.New("refusing to delete all data without --yes")
	}

	a, err := newApp(cfg, backends{cache: true, search: true})
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := a.usecases().admin.Reset(cmd.Context())
	if err != nil {
		return err
	}

	tables := make([]string, 0, len(res.Deleted))
	for t := range res.Deleted {
		tables = append(tables, t)
	}
	sort.Strings(tables)
	for _, t := range tables {
		fmt.Fprintf(cmd.OutOrStdout(), "%-12s %d rows deleted\n", t, res.Deleted[t])
	}
	return nil
}
