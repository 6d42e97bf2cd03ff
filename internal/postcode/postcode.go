// Package postcode 定义“什么算一个邮政编码”的唯一规则，并在扫描与校验两个入口上一致地应用它。
package postcode

import (
	"regexp"

	"github.com/John-Robertt/postcode/internal/domain"
)

// CorePattern 是编码本体：6 位 ASCII 数字，首位 1-9。
const CorePattern = `[1-9][0-9]{5}`

// 词字符按 Unicode 判定（字母、数字、下划线）。
// 注意：RE2 的 \b 只认 ASCII，会把 "индекс123456" 里的 123456 当成独立的词，这里不能用。
const wordPattern = `[\p{L}\p{N}_]+`

// Rule 是不可变的匹配规则，可并发使用。
//
// Scan 与 Validate 共用同一个锚定表达式 whole：
// Scan 先切出词，再让 whole 判断整个词；Validate 直接让 whole 判断整个输入。
type Rule struct {
	word  *regexp.Regexp
	whole *regexp.Regexp
}

// New 以 core 为编码本体构造规则。core 不得自带锚点。
func New(core string) (*Rule, error) {
	whole, err := regexp.Compile(`^(?:` + core + `)$`)
	if err != nil {
		return nil, err
	}
	return &Rule{
		word:  regexp.MustCompile(wordPattern),
		whole: whole,
	}, nil
}

// MustNew 与 New 相同，但在表达式非法时 panic。
func MustNew(core string) *Rule {
	r, err := New(core)
	if err != nil {
		panic(err)
	}
	return r
}

// Default 是 6 位、首位非 0 的规则。
var Default = MustNew(CorePattern)

// Scan 按从左到右的顺序返回 text 中所有编码，保留重复。
// 无匹配时返回空切片（非 nil）。
func (r *Rule) Scan(text string) []domain.Code {
	out := make([]domain.Code, 0, 4)
	if text == "" {
		return out
	}
	for _, w := range r.word.FindAllString(text, -1) {
		if r.whole.MatchString(w) {
			out = append(out, domain.Code(w))
		}
	}
	return out
}

// Validate 判断 candidate 整体是否恰好是一个编码（前后不允许多余字符）。
func (r *Rule) Validate(candidate string) bool {
	return r.whole.MatchString(candidate)
}

// Scan 使用 Default 规则扫描。
func Scan(text string) []domain.Code { return Default.Scan(text) }

// Validate 使用 Default 规则校验。
func Validate(candidate string) bool { return Default.Validate(candidate) }

// Parse 校验并返回 Code；不合法时 ok=false。
func (r *Rule) Parse(s string) (domain.Code, bool) {
	if !r.Validate(s) {
		return "", false
	}
	return domain.Code(s), true
}

// Parse 使用 Default 规则解析。
func Parse(s string) (domain.Code, bool) { return Default.Parse(s) }
