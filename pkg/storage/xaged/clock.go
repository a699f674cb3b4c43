package xaged

import "time"

// Clock 提供当前时间，是缓存与真实时钟解耦的测试接缝。
// [github.com/jonboulle/clockwork] 的真实时钟和 fake 时钟都满足该接口。
type Clock interface {
	// Now 返回当前时刻。
	Now() time.Time
}
