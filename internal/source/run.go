package source

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/John-Robertt/postcode/internal/domain"
	"github.com/John-Robertt/postcode/internal/postcode"
)

// Run 从 src 取文本并用 rule 扫描，返回结构化结果（保留失败原因）。
// rule 为 nil 时使用 postcode.Default。
func Run(ctx context.Context, src Source, input string, rule *postcode.Rule) domain.Result {
	if rule == nil {
		rule = postcode.Default
	}
	res := domain.Result{Source: src.Name(), Input: input}

	text, err := src.Load(ctx, input)
	if err != nil {
		res.Err = &Error{Source: src.Name(), Input: input, Err: err}
		res.Codes = []domain.Code{}
		return res
	}
	res.Codes = rule.Scan(text)
	log.Debug().
		Str("source", src.Name()).
		Str("input", input).
		Int("bytes", len(text)).
		Int("matches", len(res.Codes)).
		Msg("scan done")
	return res
}

// Extract 与 Run 相同，但失败时只记录诊断并返回空列表，不向上抛错。
func Extract(ctx context.Context, src Source, input string, rule *postcode.Rule) []domain.Code {
	res := Run(ctx, src, input, rule)
	Diagnose(res)
	return res.Found()
}

// Diagnose 在 res 失败时输出一条 warn 级别的诊断；成功时什么也不做。
func Diagnose(res domain.Result) {
	if res.Err == nil {
		return
	}
	log.Warn().
		Err(res.Err).
		Str("source", res.Source).
		Str("input", res.Input).
		Msg(failureMessage(res.Source))
}

func failureMessage(name string) string {
	switch name {
	case domain.SourceURL:
		return "Ошибка при загрузке страницы"
	case domain.SourceFile:
		return "Ошибка при чтении файла"
	default:
		return "Ошибка источника"
	}
}
