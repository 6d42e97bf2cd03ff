// Package logx 统一配置 zerolog：诊断信息只写 stderr，不与结果输出混在一起。
package logx

import (
	"io"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup 把全局 logger 指向 w（人类可读的 console 格式）。
// verbose=true 时输出 debug 级别。
func Setup(w io.Writer, verbose bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: !IsTerminal(w)}).
		With().Timestamp().Logger()
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

type fder interface{ Fd() uintptr }

// IsTerminal 判断 w 是否是一个终端（含 Cygwin/MSYS 伪终端）；非 *os.File 一律为 false。
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
