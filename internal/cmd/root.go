package cmd

import (
	"fmt"
	"os"

	"github.com/fekuna/omnipos-supplychain-service/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	envFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "scm",
	Short: "Supply-chain service: inventory and order stores with cross-store analytics",
	Long: `scm serves the supply-chain HTTP API and runs the maintenance tasks around it.

The inventory store holds suppliers and products; the order store holds
customers, orders and order items. Order items reference products only by SKU.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(envFile); err != nil && cmd.Flags().Changed("env-file") {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
		cfg = config.LoadEnv()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load if present")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
