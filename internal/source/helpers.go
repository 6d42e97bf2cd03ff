package source

import (
	"context"
	"net/http"

	"github.com/John-Robertt/postcode/internal/domain"
)

// FromText 扫描一段直接给出的文本。
func FromText(text string) []domain.Code {
	return Extract(context.Background(), Text{}, text, nil)
}

// FromURL 抓取页面并扫描，任何失败都退化为空列表。
func FromURL(ctx context.Context, c *http.Client, rawURL string) []domain.Code {
	return Extract(ctx, Page{Client: c}, rawURL, nil)
}

// FromFile 读取文件并扫描，任何失败都退化为空列表。
func FromFile(ctx context.Context, path string) []domain.Code {
	return Extract(ctx, File{}, path, nil)
}
