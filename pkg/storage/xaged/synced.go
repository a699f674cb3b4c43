package xaged

import (
	"sync"
	"time"
)

// NewSynced 用单个互斥锁包装 inner，使其可被多 goroutine 共享。
// inner 为 nil 时返回 ErrNilCache。
//
// 设计决策: 核心实现刻意不加锁（见包文档"并发安全"一节），
// 并发控制作为显式的可选包装提供，而非静默内建。
// 所有操作共用一把锁：清理会改写链表，读操作也必须互斥，
// 读写锁在这里没有收益。
func NewSynced[K comparable, V any](inner Cache[K, V]) (Cache[K, V], error) {
	if inner == nil {
		return nil, ErrNilCache
	}
	return &syncedCache[K, V]{inner: inner}, nil
}

// syncedCache 对 inner 的每个操作加锁转发。
type syncedCache[K comparable, V any] struct {
	mu    sync.Mutex
	inner Cache[K, V]
}

func (s *syncedCache[K, V]) Put(key K, value V, retention time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Put(key, value, retention)
}

func (s *syncedCache[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Get(key)
}

func (s *syncedCache[K, V]) Delete(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Delete(key)
}

func (s *syncedCache[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Len()
}

func (s *syncedCache[K, V]) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.IsEmpty()
}

func (s *syncedCache[K, V]) Keys() []K {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Keys()
}

func (s *syncedCache[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Clear()
}

func (s *syncedCache[K, V]) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Stats()
}
