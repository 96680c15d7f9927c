package cmd

import (
	"fmt"

	"github.com/fekuna/omnipos-supplychain-service/internal/seed"
	"github.com/spf13/cobra"
)

var seedOpts seed.Config

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate random sample data in both stores",
	Long: `Generate suppliers, products, customers and orders with realistic random
values. Records are created through the same usecases as the API, so product
search indexing and order events apply when those backends are enabled.

Flags default to the SEED_* environment variables.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().IntVar(&seedOpts.Suppliers, "suppliers", -1, "Number of suppliers (default SEED_SUPPLIERS)")
	seedCmd.Flags().IntVar(&seedOpts.Products, "products", -1, "Number of products (default SEED_PRODUCTS)")
	seedCmd.Flags().IntVar(&seedOpts.Customers, "customers", -1, "Number of customers (default SEED_CUSTOMERS)")
	seedCmd.Flags().IntVar(&seedOpts.Orders, "orders", -1, "Number of orders (default SEED_ORDERS)")
	seedCmd.Flags().Int64Var(&seedOpts.Seed, "seed", 0, "Random seed, 0 for a random one (default SEED_RANDOM_SEED)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	opts := seedConfig(cmd)

	a, err := newApp(cfg, backends{cache: true, search: true, broker: true})
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.migrate(); err != nil {
		return err
	}

	uc := a.usecases()
	seeder := seed.NewSeeder(uc.suppliers, uc.products, uc.customers, uc.orders, opts.Seed, a.logger)

	res, err := seeder.Run(cmd.Context(), opts)
	uc.drain()
	if res != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Generated %d suppliers, %d products, %d customers, %d orders (%d items)\n",
			res.Suppliers, res.Products, res.Customers, res.Orders, res.Items)
	}
	return err
}

// seedConfig fills every flag left unset from the environment config.
func seedConfig(cmd *cobra.Command) seed.Config {
	opts := seedOpts
	flags := cmd.Flags()
	if !flags.Changed("suppliers") {
		opts.Suppliers = cfg.Seed.Suppliers
	}
	if !flags.Changed("products") {
		opts.Products = cfg.Seed.Products
	}
	if !flags.Changed("customers") {
		opts.Customers = cfg.Seed.Customers
	}
	if !flags.Changed("orders") {
		opts.Orders = cfg.Seed.Orders
	}
	if !flags.Changed("seed") {
		opts.Seed = cfg.Seed.Seed
	}
	return opts
}
