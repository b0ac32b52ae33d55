package parser

import "strings"

const fieldSeparator = ','

// SplitFields делит текст кортежа на сырые поля по запятым верхнего уровня.
// Кавычки и экранирование сохраняются в поле как есть, их снимает DecodeField.
// Незакрытая строка не считается ошибкой: остаток уходит в последнее поле.
func SplitFields(tuple string) []string {
	fields := make([]string, 0, 4)
	var cur strings.Builder
	state := Normal
	for i := 0; i < len(tuple); i++ {
		c := tuple[i]
		var act Action
		state, act = Step(state, c, fieldSeparator)
		if act == Split {
			fields = append(fields, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	return append(fields, cur.String())
}
