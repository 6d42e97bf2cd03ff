package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/John-Robertt/postcode/internal/domain"
)

// Page 用 GET 抓取网页，返回按响应 charset 解码后的 body。
//
// 约束：
// - 非 2xx 视为失败（*HTTPStatusError）
// - 默认不做任何变换（HTML 标记也参与扫描）
// - VisibleText=true 时去掉标记、script/style，只保留可见文本
type Page struct {
	Client      *http.Client
	VisibleText bool
}

func (Page) Name() string { return domain.SourceURL }

func (p Page) Load(ctx context.Context, rawURL string) (string, error) {
	if p.Client == nil {
		return "", errors.New("http client 不能为空")
	}
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w：%q", ErrUnsupportedScheme, rawURL)
	}

	body, err := fetchURL(ctx, p.Client, u.String())
	if err != nil {
		return "", err
	}
	if !p.VisibleText {
		return body, nil
	}
	return visibleText(body)
}

func fetchURL(ctx context.Context, c *http.Client, u string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// 丢弃 body，让连接可复用。
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &HTTPStatusError{URL: u, StatusCode: resp.StatusCode}
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("读取响应失败：%w", err)
	}
	return decodeBody(b, resp.Header.Get("Content-Type"))
}

var utf8BOM = []byte("\xef\xbb\xbf")

// decodeBody 把响应 body 转成 UTF-8 文本。
//
// 规则：
// - Content-Type 未声明 charset 且整个 body 是合法 UTF-8：原样使用（去掉 UTF-8 BOM）
// - 否则按 Content-Type / BOM / <meta charset> 推断编码后解码（例如 windows-1251 页面）
//
// 必须看完整个 body 再判断：charset 嗅探只看前 1024 字节，
// 多字节字符恰好跨过边界时会被误判为 windows-1252，结果随字节位置变化。
func decodeBody(b []byte, contentType string) (string, error) {
	if !declaresCharset(contentType) && utf8.Valid(b) {
		return string(bytes.TrimPrefix(b, utf8BOM)), nil
	}
	enc, _, _ := charset.DetermineEncoding(b, contentType)
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("解码响应失败：%w", err)
	}
	return string(out), nil
}

func declaresCharset(contentType string) bool {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.TrimSpace(params["charset"]) != ""
}

func visibleText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(html)))
	if err != nil {
		return "", err
	}
	doc.Find("script, style, noscript, template").Remove()

	// 块级元素之间补换行，避免相邻单元格的数字被粘成一个更长的数字串。
	doc.Find("br, p, div, li, td, th, tr, h1, h2, h3, h4, h5, h6, address, section, article").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})
	return doc.Text(), nil
}
