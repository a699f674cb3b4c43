package xaged

import (
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

// =============================================================================
// 基本操作基准测试
// =============================================================================

func BenchmarkCache_Get(b *testing.B) {
	c := New[string, int]()
	c.Put("benchmark_key", 42, time.Hour)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Get("benchmark_key")
	}
}

func BenchmarkCache_Get_Miss(b *testing.B) {
	c := New[string, int]()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Get("nonexistent")
	}
}

func BenchmarkCache_Put(b *testing.B) {
	c := New[string, int]()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Put("benchmark_key", 42, time.Hour)
	}
}

// BenchmarkCache_Get_Depth 链表长度对查找的影响（O(n) 扫描）。
func BenchmarkCache_Get_Depth(b *testing.B) {
	for _, n := range []int{16, 256, 4096} {
		b.Run(fmt.Sprintf("entries_%d", n), func(b *testing.B) {
			c := New[string, int]()
			for i := 0; i < n; i++ {
				c.Put(fmt.Sprintf("key_%d", i), i, time.Hour)
			}

			// key_0 最早插入，位于链表尾部，是最坏情况。
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = c.Get("key_0")
			}
		})
	}
}

// BenchmarkCache_Sweep 全链过期后的单次清理开销。
func BenchmarkCache_Sweep(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		clk := clockwork.NewFakeClockAt(baseTime)
		c := New[string, int](WithClock[string, int](clk))
		for i := 0; i < 1024; i++ {
			c.Put(fmt.Sprintf("key_%d", i), i, 10*time.Millisecond)
		}
		clk.Advance(time.Second)
		b.StartTimer()

		_ = c.IsEmpty()
	}
}

func BenchmarkSynced_Get(b *testing.B) {
	inner := New[string, int]()
	c, err := NewSynced(inner)
	if err != nil {
		b.Fatal(err)
	}
	c.Put("benchmark_key", 42, time.Hour)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Get("benchmark_key")
	}
}
