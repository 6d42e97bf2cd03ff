package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// ErrCodeNotFound 表示 --config 显式指定的文件不存在。
	ErrCodeNotFound = "config_not_found"
	// ErrCodeInvalid 表示配置文件无法读取/解析，或字段不合法。
	ErrCodeInvalid = "config_invalid"
)

const (
	// FileName 是 cwd 下自动发现的配置文件名。
	FileName = "postcode.yaml"

	DefaultTimeout = 5 * time.Second
	MinTimeout     = 1 * time.Second
	MaxTimeout     = 60 * time.Second
)

// CLIArgs 保留“是否显式指定”的信息，保证 -v=false 这类覆盖可以实现。
type CLIArgs struct {
	ConfigPath string

	Verbose    bool
	VerboseSet bool
}

// FileConfig 对应 postcode.yaml 的解析结构。
type FileConfig struct {
	Timeout     string       `yaml:"timeout"`
	UserAgent   string       `yaml:"user_agent"`
	Proxy       *ProxyConfig `yaml:"proxy"`
	VisibleText bool         `yaml:"visible_text"`
	Verbose     *bool        `yaml:"verbose"`
}

type ProxyConfig struct {
	URL string `yaml:"url"`
}

// EffectiveConfig 是合并并做最小规范化后的最终配置。
type EffectiveConfig struct {
	// Source 是实际读取的配置文件路径；未使用配置文件时为空。
	Source string

	Timeout     time.Duration
	UserAgent   string
	ProxyURL    string
	VisibleText bool
	Verbose     bool
}

// Default 返回不读任何文件时的配置。
func Default() EffectiveConfig {
	return EffectiveConfig{Timeout: DefaultTimeout}
}

// Error 是配置阶段的结构化错误（带 error_code）。
type Error struct {
	Code string
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Code {
	case ErrCodeNotFound:
		return fmt.Sprintf("%s：未找到配置文件 %q", e.Code, e.Path)
	case ErrCodeInvalid:
		if e.Err != nil {
			return fmt.Sprintf("%s：配置文件 %q 无效：%v", e.Code, e.Path, e.Err)
		}
		return fmt.Sprintf("%s：配置文件 %q 无效", e.Code, e.Path)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s：%v", e.Code, e.Err)
		}
		return e.Code
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Code 从 error 中提取 error_code；若不是 *Error 则返回空串。
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// LoadEffective 发现并读取配置文件，然后与 CLI 参数合并为最终配置。
//
// 发现规则：
// 1) CLI 提供 --config：必须存在
// 2) 否则尝试 <cwd>/postcode.yaml（可选，不存在不报错）
//
// 覆盖优先级：CLI > 配置文件 > 默认值。
func LoadEffective(cwd string, cli CLIArgs) (EffectiveConfig, error) {
	if p := strings.TrimSpace(cli.ConfigPath); p != "" {
		cfgPath := absCleanFrom(cwd, p)
		fc, exists, err := readFileConfig(cfgPath)
		if err != nil {
			return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: err}
		}
		if !exists {
			return EffectiveConfig{}, &Error{Code: ErrCodeNotFound, Path: cfgPath, Err: os.ErrNotExist}
		}
		return merge(cli, fc, cfgPath)
	}

	cfgPath := absCleanFrom(cwd, FileName)
	fc, exists, err := readFileConfig(cfgPath)
	if err != nil {
		return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: err}
	}
	if !exists {
		cfgPath = ""
	}
	return merge(cli, fc, cfgPath)
}

func merge(cli CLIArgs, fc FileConfig, cfgPath string) (EffectiveConfig, error) {
	eff := Default()
	eff.Source = cfgPath

	if s := strings.TrimSpace(fc.Timeout); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: fmt.Errorf("timeout 无效：%w", err)}
		}
		// 超出范围截断，而不是报错。
		if d < MinTimeout {
			d = MinTimeout
		}
		if d > MaxTimeout {
			d = MaxTimeout
		}
		eff.Timeout = d
	}

	eff.UserAgent = strings.TrimSpace(fc.UserAgent)

	if fc.Proxy != nil {
		eff.ProxyURL = strings.TrimSpace(fc.Proxy.URL)
	}
	if eff.ProxyURL != "" {
		u, err := url.Parse(eff.ProxyURL)
		if err != nil {
			return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: fmt.Errorf("proxy.url 无效：%w", err)}
		}
		switch u.Scheme {
		case "http", "https", "socks5":
		default:
			return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: fmt.Errorf("proxy.url 只支持 http/https/socks5：%q", eff.ProxyURL)}
		}
		if u.Host == "" {
			return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: fmt.Errorf("proxy.url 缺少 host：%q", eff.ProxyURL)}
		}
	}

	eff.VisibleText = fc.VisibleText

	if cli.VerboseSet {
		eff.Verbose = cli.Verbose
	} else if fc.Verbose != nil {
		eff.Verbose = *fc.Verbose
	}
	return eff, nil
}

// absCleanFrom 以 base 为基准，把 p 变为 clean + absolute。
func absCleanFrom(base, p string) string {
	p = filepath.Clean(strings.TrimSpace(p))
	if filepath.IsAbs(p) {
		return p
	}
	if abs, err := filepath.Abs(base); err == nil {
		base = abs
	}
	return filepath.Clean(filepath.Join(base, p))
}

// readFileConfig 读取并解析 YAML 配置文件。
// 返回值 exists 表示该文件是否存在（不存在不算错误）。
func readFileConfig(path string) (fc FileConfig, exists bool, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, false, nil
		}
		return FileConfig{}, false, err
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return FileConfig{}, true, err
	}
	return fc, true, nil
}
