package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/John-Robertt/postcode/internal/domain"
	"github.com/John-Robertt/postcode/internal/postcode"
	"github.com/John-Robertt/postcode/internal/source"
)

// app 是交互菜单：一次启动只执行一个模式。
type app struct {
	in       *bufio.Reader
	out      io.Writer // 结果
	ui       io.Writer // 菜单与提示
	menu     []menuItem
	rule     *postcode.Rule
	jsonMode bool
}

// menuItem 是菜单中的一项；src 为 nil 表示“校验单个编码”模式。
type menuItem struct {
	key    string
	label  string
	prompt string
	src    source.Source
}

// newMenu 按固定编号排列菜单：1 校验，2 文本，3 网页，4 文件。
func newMenu(page source.Page) []menuItem {
	return []menuItem{
		{key: "1", label: "Проверить отдельный индекс", prompt: "Введите индекс: "},
		{key: "2", label: "Найти индексы в тексте", prompt: "Введите текст: ", src: source.Text{}},
		{key: "3", label: "Найти индексы на веб-странице", prompt: "Введите URL страницы: ", src: page},
		{key: "4", label: "Найти индексы в файле", prompt: "Введите путь к файлу: ", src: source.File{}},
	}
}

func newApp(in io.Reader, out, ui io.Writer, menu []menuItem, rule *postcode.Rule, jsonMode bool) *app {
	if rule == nil {
		rule = postcode.Default
	}
	return &app{
		in:       bufio.NewReader(in),
		out:      out,
		ui:       ui,
		menu:     menu,
		rule:     rule,
		jsonMode: jsonMode,
	}
}

func (a *app) lookup(key string) (menuItem, bool) {
	for _, it := range a.menu {
		if it.key == key {
			return it, true
		}
	}
	return menuItem{}, false
}

func (a *app) Run(ctx context.Context) int {
	fmt.Fprintln(a.ui, "=== Проверка почтовых индексов ===")
	fmt.Fprintln(a.ui, "Выберите режим работы:")
	for _, it := range a.menu {
		fmt.Fprintf(a.ui, "%s — %s\n", it.key, it.label)
	}

	choice, err := a.prompt("Введите номер режима: ")
	if err != nil {
		return 1
	}

	it, ok := a.lookup(choice)
	if !ok {
		fmt.Fprintln(a.ui, "Неизвестная команда.")
		return 0
	}
	input, err := a.prompt(it.prompt)
	if err != nil {
		return 1
	}

	if it.src == nil {
		a.emitValidation(input, a.rule.Validate(input))
		return 0
	}

	res := source.Run(ctx, it.src, input, a.rule)
	source.Diagnose(res)
	a.emitResult(res)
	return 0
}

// prompt 读取一行，只去掉行尾换行（不 TrimSpace：校验必须看到原样输入）。
// 输入流在空行处结束时返回 io.ErrUnexpectedEOF。
func (a *app) prompt(msg string) (string, error) {
	fmt.Fprint(a.ui, msg)
	line, err := a.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(a.ui)
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (a *app) emitValidation(code string, valid bool) {
	if a.jsonMode {
		_ = json.NewEncoder(a.out).Encode(struct {
			Input string `json:"input"`
			Valid bool   `json:"valid"`
		}{code, valid})
		return
	}
	if valid {
		fmt.Fprintln(a.out, "✅ Индекс корректный.")
		return
	}
	fmt.Fprintln(a.out, "❌ Индекс некорректный.")
}

func (a *app) emitResult(res domain.Result) {
	if a.jsonMode {
		_ = json.NewEncoder(a.out).Encode(res)
		return
	}
	fmt.Fprintln(a.out, "Найденные индексы:", formatCodes(res.Found()))
}

// formatCodes 输出形如 ['123456', '654321'] 的列表；无匹配时为 []。
func formatCodes(codes []domain.Code) string {
	parts := make([]string, 0, len(codes))
	for _, c := range codes {
		parts = append(parts, "'"+string(c)+"'")
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
