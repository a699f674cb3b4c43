package xaged

import "errors"

var (
	// ErrNilCache 表示传入的缓存实例为 nil。
	ErrNilCache = errors.New("xaged: nil cache")
)
