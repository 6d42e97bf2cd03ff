package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"github.com/John-Robertt/postcode/internal/config"
	"github.com/John-Robertt/postcode/internal/infra/httpx"
	"github.com/John-Robertt/postcode/internal/logx"
	"github.com/John-Robertt/postcode/internal/postcode"
	"github.com/John-Robertt/postcode/internal/source"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("postcode", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var (
		configPath string
		verbose    bool
		help       bool
	)
	fs.StringVar(&configPath, "config", "", "путь к postcode.yaml")
	fs.BoolVarP(&verbose, "verbose", "v", false, "подробный журнал (debug) в stderr")
	fs.BoolVarP(&help, "help", "h", false, "показать справку")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if help {
		printUsage(fs)
		return 0
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	eff, err := config.LoadEffective(cwd, config.CLIArgs{
		ConfigPath: configPath,
		Verbose:    verbose,
		VerboseSet: fs.Changed("verbose"),
	})
	logx.Setup(os.Stderr, eff.Verbose)
	if err != nil {
		log.Error().Err(err).Str("error_code", config.Code(err)).Msg("не удалось загрузить конфигурацию")
		return 1
	}
	if eff.Source != "" {
		log.Debug().Str("path", eff.Source).Msg("config loaded")
	}

	client, err := httpx.NewClient(httpx.Options{
		Timeout:   eff.Timeout,
		UserAgent: eff.UserAgent,
		ProxyURL:  eff.ProxyURL,
	})
	if err != nil {
		log.Error().Err(err).Msg("не удалось создать HTTP-клиент")
		return 1
	}

	menu := newMenu(source.Page{Client: client, VisibleText: eff.VisibleText})

	// stdout 非 TTY：stdout 只输出一行 JSON 结果，菜单与提示走 stderr。
	jsonOut := !logx.IsTerminal(os.Stdout)
	ui := os.Stdout
	if jsonOut {
		ui = os.Stderr
	}

	a := newApp(os.Stdin, os.Stdout, ui, menu, postcode.Default, jsonOut)
	return a.Run(context.Background())
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprint(os.Stdout, `Использование:
  postcode [--config PATH] [-v]

Интерактивная проверка и поиск почтовых индексов (6 цифр, первая не 0).

Параметры:
`)
	fmt.Fprint(os.Stdout, fs.FlagUsages())
}
