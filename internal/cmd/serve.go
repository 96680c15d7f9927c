package cmd

import (
	"context"
	"os/signal"
	"syscall"

	admH "github.com/fekuna/omnipos-supplychain-service/internal/admin/handler"
	anaH "github.com/fekuna/omnipos-supplychain-service/internal/analytics/handler"
	custH "github.com/fekuna/omnipos-supplychain-service/internal/customer/handler"
	ordH "github.com/fekuna/omnipos-supplychain-service/internal/order/handler"
	prodH "github.com/fekuna/omnipos-supplychain-service/internal/product/handler"
	"github.com/fekuna/omnipos-supplychain-service/internal/server"
	supH "github.com/fekuna/omnipos-supplychain-service/internal/supplier/handler"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API and the gRPC health service",
	Long: `Serve the /api/v1 HTTP API, /health and /metrics, and the grpc.health.v1
service. Pending migrations are applied on start unless AUTO_MIGRATE=false.
DELETE /admin/data is only mounted when ADMIN_RESET_ENABLED=true.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// 1. Connections
	a, err := newApp(cfg, backends{cache: true, search: true, broker: true})
	if err != nil {
		return err
	}
	defer a.Close()

	// 2. Schema
	if cfg.Server.AutoMigrate {
		if err := a.migrate(); err != nil {
			return err
		}
	}

	// 3. UseCases
	uc := a.usecases()

	// 4. Handlers
	routes := []server.Route{
		{Prefix: "/suppliers", Handler: supH.NewSupplierHandler(uc.suppliers)},
		{Prefix: "/products", Handler: prodH.NewProductHandler(uc.products)},
		{Prefix: "/customers", Handler: custH.NewCustomerHandler(uc.customers)},
		{Prefix: "/orders", Handler: ordH.NewOrderHandler(uc.orders)},
		{Prefix: "/analytics", Handler: anaH.NewAnalyticsHandler(uc.analytics, cfg.Analytics.TopN)},
	}
	var admin server.Handler
	if cfg.Admin.ResetEnabled {
		admin = admH.NewAdminHandler(uc.admin)
	}

	// 5. Servers
	srv := server.New(server.Config{
		HTTPAddr:        cfg.Server.HTTPPort,
		GRPCAddr:        cfg.Server.GRPCPort,
		HealthInterval:  cfg.Server.HealthInterval,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, routes, admin, []server.Store{
		{Name: "inventory", DB: a.inventoryDB},
		{Name: "orders", DB: a.orderDB},
	}, a.logger)

	// Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	err = srv.Run(ctx)
	uc.drain()
	return err
}
