package cmd

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations to both stores",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cfg, backends{})
		if err != nil {
			return err
		}
		defer a.Close()
		return a.migrate()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
