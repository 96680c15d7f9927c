package analytics

import (
	"context"

	"github.com/fekuna/omnipos-supplychain-service/internal/analytics/dto"
)

// SnapshotRepository loads whole-store snapshots. Each call reads its store in
// its own read-only transaction that is released before returning.
type SnapshotRepository interface {
	InventorySnapshot(ctx context.Context) (*dto.InventorySnapshot, error)
	OrderSnapshot(ctx context.Context) (*dto.OrderSnapshot, error)
}
