package source

import (
	"errors"
	"fmt"
)

// ErrUnsupportedScheme 表示 URL 不是 http/https。
var ErrUnsupportedScheme = errors.New("仅支持 http/https URL")

// HTTPStatusError 表示站点返回了非 2xx 的 HTTP 状态码。
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	if e == nil {
		return "HTTP status error"
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.URL)
}

// DecodeError 表示文件内容不是合法的 UTF-8。
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("文件 %q 不是合法的 UTF-8：%v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Error 是 source 阶段的可追溯错误。
type Error struct {
	Source string
	Input  string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("source=%s input=%q: %v", e.Source, e.Input, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
