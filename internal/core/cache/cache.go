package cache

import (
	"context"
)

// Store 辨識/搜尋結果快取。辨識是輸入與字典快照的純函數，
// 所以回應可以按正規化後的輸入安全快取。
type Store interface {
	Get(ctx context.Context, operation, key string) (string, error)
	Set(ctx context.Context, operation, key, value string) error
	Close() error
}
