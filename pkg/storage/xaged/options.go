package xaged

import "github.com/jonboulle/clockwork"

// Option 定义缓存可选配置函数类型。
type Option[K comparable, V any] func(*options[K, V])

// options 内部可选配置。
type options[K comparable, V any] struct {
	clock     Clock
	onExpired func(key K, value V)
}

func defaultOptions[K comparable, V any]() options[K, V] {
	return options[K, V]{
		clock: clockwork.NewRealClock(),
	}
}

// WithClock 注入时钟。
// nil 时钟被忽略，保持默认的系统时钟。
// 测试中可注入 clockwork.NewFakeClockAt 返回的 fake 时钟，确定性推进时间。
func WithClock[K comparable, V any](clock Clock) Option[K, V] {
	return func(o *options[K, V]) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithOnExpired 设置过期条目被清理时的回调函数。
// 回调仅由清理触发：Delete、Clear 和 Put 覆盖都不会触发。
//
// 回调在查询操作内部同步执行，调用方必须遵守以下约束：
//   - 严禁在回调中调用 Cache 自身的任何方法，清理正在遍历链表，
//     重入修改会破坏链表结构
//   - 应避免耗时操作，回调阻塞期间查询操作无法返回
func WithOnExpired[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(o *options[K, V]) {
		o.onExpired = fn
	}
}
