// Package storage 提供数据存储相关的子包。
//
// 子包列表：
//   - xaged: 带保留期的懒淘汰键值缓存，单向链表实现
//
// 设计原则：
//   - 无外部存储依赖，纯进程内数据结构
//   - 时间来源可注入，保证确定性测试
package storage
