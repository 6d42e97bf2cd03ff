package source

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/John-Robertt/postcode/internal/domain"
)

// File 读取整个文件内容；内容必须是合法 UTF-8。
type File struct{}

func (File) Name() string { return domain.SourceFile }

func (File) Load(ctx context.Context, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("文件路径不能为空")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	b, err := io.ReadAll(transform.NewReader(f, encoding.UTF8Validator))
	if err != nil {
		if errors.Is(err, encoding.ErrInvalidUTF8) {
			return "", &DecodeError{Path: path, Err: err}
		}
		return "", err
	}
	return string(b), nil
}
