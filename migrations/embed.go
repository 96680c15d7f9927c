// Package migrations embeds the schema for both stores.
package migrations

import "embed"

//go:embed inventory/*.sql orders/*.sql
var FS embed.FS

const (
	InventoryDir   = "inventory"
	InventoryTable = "inventory_schema_migrations"
	OrdersDir      = "orders"
	OrdersTable    = "orders_schema_migrations"
)
