package xaged

import (
	"time"
)

// entry 是链表中的一个条目。
// 除 next 外不可变；next 仅在摘链/头插时被改写。
type entry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt int64 // Unix 毫秒
	next      *entry[K, V]
}

// agedCache 实现 Cache 接口。
// head 指向最新插入的条目，链表按插入顺序排列。
type agedCache[K comparable, V any] struct {
	clock     Clock
	head      *entry[K, V]
	onExpired func(key K, value V)
	stats     Stats
}

func (c *agedCache[K, V]) Put(key K, value V, retention time.Duration) {
	expiresAt := c.clock.Now().UnixMilli() + retention.Milliseconds()
	if c.remove(key) {
		c.stats.Replaced++
	}
	c.head = &entry[K, V]{
		key:       key,
		value:     value,
		expiresAt: expiresAt,
		next:      c.head,
	}
}

func (c *agedCache[K, V]) Get(key K) (V, bool) {
	c.sweep()
	for e := c.head; e != nil; e = e.next {
		if e.key == key {
			c.stats.Hits++
			return e.value, true
		}
	}
	c.stats.Misses++
	var zero V
	return zero, false
}

func (c *agedCache[K, V]) Delete(key K) bool {
	c.sweep()
	return c.remove(key)
}

func (c *agedCache[K, V]) Len() int {
	c.sweep()
	n := 0
	for e := c.head; e != nil; e = e.next {
		n++
	}
	return n
}

func (c *agedCache[K, V]) IsEmpty() bool {
	c.sweep()
	return c.head == nil
}

func (c *agedCache[K, V]) Keys() []K {
	c.sweep()
	var keys []K
	for e := c.head; e != nil; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

func (c *agedCache[K, V]) Clear() {
	c.head = nil
}

func (c *agedCache[K, V]) Stats() Stats {
	return c.stats
}

// sweep 摘除所有过期条目。
// 时钟只在扫描开始时读取一次，整趟扫描基于同一时刻判定；
// expiresAt == now 不算过期（严格小于）。
// 条目不按过期时间排序，因此必须扫完全链，不能提前终止。
func (c *agedCache[K, V]) sweep() {
	now := c.clock.Now().UnixMilli()
	var prev *entry[K, V]
	cur := c.head
	for cur != nil {
		if cur.expiresAt < now {
			if prev == nil {
				c.head = cur.next
			} else {
				prev.next = cur.next
			}
			c.stats.Expired++
			if c.onExpired != nil {
				c.onExpired(cur.key, cur.value)
			}
		} else {
			prev = cur
		}
		cur = cur.next
	}
}

// remove 摘除第一个 key 相等的条目，返回是否找到。
// 只匹配第一个：Put 保证链上同 key 至多一个条目，找到即可停。
func (c *agedCache[K, V]) remove(key K) bool {
	var prev *entry[K, V]
	for cur := c.head; cur != nil; cur = cur.next {
		if cur.key == key {
			if prev == nil {
				c.head = cur.next
			} else {
				prev.next = cur.next
			}
			return true
		}
		prev = cur
	}
	return false
}
