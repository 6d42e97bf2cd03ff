package domain

// Code 是一个语法上合法的邮政编码：恰好 6 位 ASCII 数字，首位不为 0。
//
// 约束：只做字符串层面的校验，不做数值转换（前导 0 的排除是模式约束，而不是数值范围）。
// 构造与校验统一走 postcode 包，domain 不重复定义规则。
type Code string

// Strings 把 Code 列表转换为 []string（保持顺序，保留重复）。
func Strings(codes []Code) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		out = append(out, string(c))
	}
	return out
}
