// Package source 负责“从哪里拿到文本”：直接文本、网页、文件。
//
// 约束：
// - 适配器只取文本，不做匹配；匹配规则全部在 postcode 包
// - Load 一次阻塞调用，不重试、不缓存
package source

import (
	"context"
)

// Source 是单一文本来源。
type Source interface {
	Name() string
	Load(ctx context.Context, input string) (string, error)
}
