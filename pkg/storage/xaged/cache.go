package xaged

import (
	"time"
)

// Cache 是带保留期的懒淘汰键值缓存。
// 非并发安全：多 goroutine 共享时请使用 [NewSynced] 包装。
type Cache[K comparable, V any] interface {
	// Put 写入条目，保留期从当前时刻起算。
	// 同 key 的旧条目（无论是否过期）先被移除，再头插新条目。
	// retention 为零或负值是合法的：条目写入即过期，对后续查询不可见。
	// Put 不触发过期清理。
	Put(key K, value V, retention time.Duration)

	// Get 返回 key 对应的未过期值。
	// 未命中（从未写入，或已过期）返回零值和 false，两种情况不可区分。
	Get(key K) (value V, ok bool)

	// Delete 移除 key 对应的未过期条目，返回是否确实移除了条目。
	// 已过期的条目在清理阶段被移除，Delete 对其返回 false。
	// Delete 不触发 OnExpired 回调。
	Delete(key K) bool

	// Len 返回当前未过期条目数，O(n) 全链遍历。
	Len() int

	// IsEmpty 报告缓存是否为空。
	// 等价于 Len() == 0，但不做计数遍历，清理后直接判空。
	IsEmpty() bool

	// Keys 返回所有未过期条目的 key 快照，按插入顺序最新在前。
	// 每次调用分配新切片。
	Keys() []K

	// Clear 移除所有条目（包括未过期的），不触发 OnExpired 回调。
	Clear()

	// Stats 返回统计计数快照。
	Stats() Stats
}

// Stats 是缓存的统计计数快照。
// 计数单调递增，Clear 不重置。
type Stats struct {
	// Hits Get 命中次数。
	Hits uint64

	// Misses Get 未命中次数（含已过期被清理的情况）。
	Misses uint64

	// Expired 被清理移除的过期条目数。
	Expired uint64

	// Replaced Put 覆盖已有 key 的次数。
	Replaced uint64
}

// New 创建新的缓存实例。
// 默认使用系统时钟，可通过 [WithClock] 注入自定义时钟。
// 没有失败路径：所有可选配置都在归一化时容错（nil 选项被忽略）。
func New[K comparable, V any](opts ...Option[K, V]) Cache[K, V] {
	o := defaultOptions[K, V]()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return &agedCache[K, V]{
		clock:     o.clock,
		onExpired: o.onExpired,
	}
}
