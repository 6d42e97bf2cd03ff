package postcode

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/John-Robertt/postcode/internal/domain"
)

func TestValidate_Valid(t *testing.T) {
	assert.True(t, Validate("123456"))
	assert.True(t, Validate("654321"))
}

func TestValidate_Invalid(t *testing.T) {
	cases := []string{
		"012345",  // 前导 0
		"12345",   // 5 位
		"1234567", // 7 位
		"12a456",  // 中间夹字母
		"",
		" 123456",
		"123456 ",
		"123456\n",
		"１２３４５６", // 全角数字不是 ASCII
		"+123456",
	}
	for _, c := range cases {
		assert.Falsef(t, Validate(c), "Validate(%q) 应为 false", c)
	}
}

func TestValidate_AllSixDigitNonZeroLeading(t *testing.T) {
	// 抽样覆盖每个首位与若干尾部组合，避免 90 万次循环拖慢测试。
	for first := '1'; first <= '9'; first++ {
		for _, tail := range []string{"00000", "12345", "99999", "50505"} {
			s := string(first) + tail
			require.Truef(t, Validate(s), "Validate(%q) 应为 true", s)
		}
	}
	for _, tail := range []string{"00000", "12345", "99999"} {
		s := "0" + tail
		require.Falsef(t, Validate(s), "Validate(%q) 应为 false", s)
	}
}

func TestValidate_WrongLength(t *testing.T) {
	for n := 0; n <= 12; n++ {
		if n == 6 {
			continue
		}
		s := strings.Repeat("7", n)
		assert.Falsef(t, Validate(s), "长度 %d 的 %q 不应合法", n, s)
	}
}

func TestScan_RussianSentence(t *testing.T) {
	got := Scan("Мой индекс 123456, а у друга 654321.")
	assert.Equal(t, []domain.Code{"123456", "654321"}, got)
}

func TestScan_Empty(t *testing.T) {
	got := Scan("")
	require.NotNil(t, got)
	assert.Empty(t, got)

	got = Scan("нет тут никаких индексов")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestScan_OrderAndDuplicates(t *testing.T) {
	got := Scan("654321 then 123456 and again 654321")
	assert.Equal(t, []domain.Code{"654321", "123456", "654321"}, got)
}

func TestScan_BoundaryRule(t *testing.T) {
	cases := []struct {
		text string
		want []domain.Code
	}{
		{"1234567", []domain.Code{}},
		{"12345", []domain.Code{}},
		{"012345", []domain.Code{}},
		{"12a456", []domain.Code{}},
		{"abc123456", []domain.Code{}},
		{"123456abc", []domain.Code{}},
		{"индекс123456", []domain.Code{}}, // 西里尔字母也是词字符
		{"_123456", []domain.Code{}},
		{"123456_", []domain.Code{}},
		{"(123456)", []domain.Code{"123456"}},
		{"123456-654321", []domain.Code{"123456", "654321"}},
		{"тел.:123456;", []domain.Code{"123456"}},
		{"<td>101000</td>", []domain.Code{"101000"}},
		{"123456\n654321", []domain.Code{"123456", "654321"}},
		{"12345612345", []domain.Code{}},
	}
	for _, c := range cases {
		got := Scan(c.text)
		assert.Equalf(t, c.want, got, "Scan(%q)", c.text)
	}
}

func TestScan_NeverReturnsSubstringOfOtherRunLength(t *testing.T) {
	for n := 1; n <= 12; n++ {
		run := "1" + strings.Repeat("2", n-1)
		text := fmt.Sprintf("x %s y", run)
		got := Scan(text)
		if n == 6 {
			assert.Equal(t, []domain.Code{domain.Code(run)}, got)
			continue
		}
		assert.Emptyf(t, got, "长度 %d 的数字串不应产生匹配", n)
	}
}

func TestScan_Idempotent(t *testing.T) {
	text := "a 111111 b 222222 c 0333333 d 444444"
	first := Scan(text)
	second := Scan(text)
	assert.Equal(t, first, second)
	assert.Equal(t, []domain.Code{"111111", "222222", "444444"}, first)
}

func TestScan_EveryTokenValidates(t *testing.T) {
	text := "Индексы: 190000, 620014; неверные: 012345, 1234567, 12a456; ещё 101000."
	for _, c := range Scan(text) {
		assert.Truef(t, Validate(string(c)), "Scan 返回的 %q 必须通过 Validate", c)
	}
}

func TestParse(t *testing.T) {
	c, ok := Parse("190000")
	require.True(t, ok)
	assert.Equal(t, domain.Code("190000"), c)

	_, ok = Parse("090000")
	assert.False(t, ok)
}

func TestNew_CustomCore(t *testing.T) {
	r, err := New(`[0-9]{5}`)
	require.NoError(t, err)
	assert.True(t, r.Validate("01234"))
	assert.Equal(t, []domain.Code{"01234"}, r.Scan("zip 01234 and 123456"))

	_, err = New(`[0-9`)
	assert.Error(t, err)
}
