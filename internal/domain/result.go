package domain

import (
	"encoding/json"
)

const (
	SourceText = "text"
	SourceURL  = "url"
	SourceFile = "file"
)

// Result 是一次“取文本 + 扫描”的结构化结果。
//
// 与 catch-all 的 []Code 不同，Result 保留失败原因，
// 让调用方能区分“来源为空/无匹配”和“来源不可读”。
type Result struct {
	Source string `json:"source"`
	Input  string `json:"input"`
	Codes  []Code `json:"codes"`
	Err    error  `json:"-"`
}

// OK 表示来源读取成功（不代表一定有匹配）。
func (r Result) OK() bool { return r.Err == nil }

// Found 返回匹配列表；保证非 nil（失败时为空切片）。
func (r Result) Found() []Code {
	if r.Err != nil || r.Codes == nil {
		return []Code{}
	}
	return r.Codes
}

// MarshalJSON 固定输出形态：codes 永远是数组（不会是 null），失败原因写入 error 字段。
func (r Result) MarshalJSON() ([]byte, error) {
	type out struct {
		Source string   `json:"source"`
		Input  string   `json:"input"`
		OK     bool     `json:"ok"`
		Error  string   `json:"error,omitempty"`
		Codes  []string `json:"codes"`
	}
	o := out{
		Source: r.Source,
		Input:  r.Input,
		OK:     r.OK(),
		Codes:  Strings(r.Found()),
	}
	if r.Err != nil {
		o.Error = r.Err.Error()
	}
	return json.Marshal(o)
}
