// Package xaged 提供带保留期（retention）的懒淘汰键值缓存。
//
// 每个条目在写入时指定保留期，到期后对所有查询不可见。
// 过期条目的清理是惰性的：仅在查询操作（Get/Len/IsEmpty/Keys/Delete）
// 开始时做一次全链表扫描，没有后台定时器或清理 goroutine。
//
// # 核心特性
//
//   - 泛型支持：支持任意 comparable 的键类型和任意值类型
//   - 条目级保留期：每次 Put 独立指定，零值或负值表示写入即过期
//   - 懒淘汰：仅在查询路径清理过期条目，无后台 goroutine
//   - 键唯一性：Put 覆盖同 key 的旧条目，旧条目的剩余保留期被丢弃
//   - 可注入时钟：通过 WithClock 注入 Clock，测试可用 fake 时钟确定性推进时间
//   - 内置统计：Stats() 返回命中/未命中/过期/覆盖计数快照
//
// # 数据结构
//
// 设计决策: 底层是手写单向链表（头插），而非 map 或现成缓存库。
// 条目按插入顺序排列（最新在前），过期清理和 key 查找都是 O(n) 单趟扫描。
// 该结构刻意保持与引用实现一致：不维护过期顺序索引，清理必须扫完全链，
// 因为插入顺序与保留期长短无关。适合条目数较小（数百以内）的场景；
// 大数据集请使用 hashicorp/golang-lru 或 ristretto 这类 O(1) 缓存。
//
// # 过期语义
//
// 过期时间 = Put 时刻的毫秒时间戳 + 保留期毫秒数。
// 条目过期当且仅当 expiresAt < now（严格小于，毫秒精度）：
// 恰好等于过期时间戳的瞬间条目仍然可见。
// 一次清理只在扫描开始时读取一次时钟，整趟扫描基于同一时刻判定。
//
// # 并发安全
//
// Cache 本身不是并发安全的：所有操作都在调用方的 goroutine 上同步完成，
// 无锁、无原子操作。多 goroutine 共享同一实例时，请使用 NewSynced
// 包装（单个互斥锁守护所有操作），或在业务层自行加锁。
// 不加锁的核心是有意为之的扩展点，并发控制不会被静默引入。
//
// # 已知限制
//
//   - Put 不触发清理：只写不读的负载下，过期条目会持续占用内存，
//     直到下一次查询操作执行清理
//   - 无容量上限：不做 LRU/大小淘汰，仅按时间过期
//   - 无法区分"从未写入"与"已过期被清理"：两者都表现为未命中
//   - Len/Keys 是 O(n) 全链遍历
//
// # 注意事项
//
//   - 保留期从 Put 时刻起算，覆盖同 key 时重新计算
//   - Get 不延长保留期
//   - OnExpired 回调在查询操作内部同步执行，严禁在回调中调用
//     Cache 自身方法（会破坏扫描中的链表），应避免耗时操作
//   - 键按值相等比较（Go == 语义），键类型必须 comparable
package xaged
