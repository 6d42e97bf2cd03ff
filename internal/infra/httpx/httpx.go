package httpx

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultTimeout 是抓取页面的总超时。
	DefaultTimeout = 5 * time.Second

	// DefaultUserAgent 在调用方未指定 UA 时使用。
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"
)

// Options 描述页面抓取 client 的网络策略。
type Options struct {
	Timeout   time.Duration
	UserAgent string
	ProxyURL  string
}

// Transport 在请求缺少 User-Agent 时补上固定 UA。
//
// 不做重试：一次失败就是失败，由上层决定如何降级。
type Transport struct {
	Base      http.RoundTripper
	UserAgent string
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}
	if t.Base == nil {
		return nil, errors.New("nil base transport")
	}
	if t.UserAgent == "" || req.Header.Get("User-Agent") != "" {
		return t.Base.RoundTrip(req)
	}
	// Clone 会复制 Header，避免在 RoundTripper 内部“污染”调用方的 request。
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.UserAgent)
	return t.Base.RoundTrip(r)
}

// NewClient 构造用于页面抓取的 HTTP client。
//
// 规则：
// - Timeout<=0：使用 DefaultTimeout
// - UserAgent 为空：使用 DefaultUserAgent
// - ProxyURL 非空：所有请求走代理，且禁用 keep-alive
func NewClient(opts Options) (*http.Client, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ua := strings.TrimSpace(opts.UserAgent)
	if ua == "" {
		ua = DefaultUserAgent
	}

	base := &http.Transport{
		Proxy:                 nil,
		TLSHandshakeTimeout:   timeout,
		ResponseHeaderTimeout: timeout,
	}

	if proxyURL := strings.TrimSpace(opts.ProxyURL); proxyURL != "" {
		u, err := url.Parse(proxyURL)
		if err != nil {
			return nil, err
		}
		if u.Scheme == "" || u.Host == "" {
			return nil, errors.New("proxy url 缺少 scheme 或 host：" + proxyURL)
		}
		base.Proxy = http.ProxyURL(u)
		base.DisableKeepAlives = true
	}

	return &http.Client{
		Transport: &Transport{Base: base, UserAgent: ua},
		Timeout:   timeout,
	}, nil
}
