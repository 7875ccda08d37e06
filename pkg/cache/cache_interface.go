package cache

import (
	"context"
	"time"
)

// Cache interface định nghĩa contract cho cache layer
// Cho phép swap implementation (Redis, Memcached, In-memory)
type Cache interface {
	// Get lấy data từ cache và unmarshal vào dest
	// Returns: (found bool, error)
	// - found = true: cache hit, data đã unmarshal vào dest
	// - found = false: cache miss, dest không bị thay đổi
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set marshal value và lưu vào cache với TTL
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete xóa một key khỏi cache
	Delete(ctx context.Context, key string) error

	// DeleteByPrefix xóa tất cả keys có prefix cho trước
	// Dùng để invalidate list caches sau khi write
	DeleteByPrefix(ctx context.Context, prefix string) error
}
