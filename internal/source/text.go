package source

import (
	"context"

	"github.com/John-Robertt/postcode/internal/domain"
)

// Text 原样返回输入文本。
type Text struct{}

func (Text) Name() string { return domain.SourceText }

func (Text) Load(_ context.Context, input string) (string, error) { return input, nil }
