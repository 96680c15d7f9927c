package admin

import "context"

type UseCase interface {
	Reset(ctx context.Context) (*ResetResult, error)
}

type ResetResult struct {
	Deleted          map[string]int64 `json:"deleted"`
	CacheKeysDeleted int              `json:"cache_keys_deleted"`
	IndexDropped     bool             `json:"index_dropped"`
}
