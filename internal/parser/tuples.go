package parser

import (
	"regexp"
	"strings"
)

// tupleSeparator — граница между кортежами: ")" , "," , "(" с произвольными пробелами
var tupleSeparator = regexp.MustCompile(`\)\s*,\s*\(`)

// SplitTuples режет список VALUES на кортежи без внешних скобок.
// Разбиение текстовое: значение поля, содержащее "),(", будет разрезано неверно.
// Для таких дампов есть SplitTuplesStrict.
func SplitTuples(payload string) []string {
	s := strings.TrimSpace(payload)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	return tupleSeparator.Split(s, -1)
}

// SplitTuplesStrict — вариант с учётом кавычек: кортеж открывается '(' и закрывается ')'
// только на нулевой глубине вложенности и вне строкового литерала.
// Текст между кортежами (запятые, пробелы) отбрасывается.
func SplitTuplesStrict(payload string) []string {
	var (
		tuples []string
		state  = Normal
		depth  int
		begin  int
	)
	for i := 0; i < len(payload); i++ {
		c := payload[i]
		wasNormal := state == Normal
		// разделитель не нужен: скобки обрабатываются ниже
		state, _ = Step(state, c, 0)
		if !wasNormal {
			continue
		}
		switch c {
		case '(':
			if depth == 0 {
				begin = i + 1
			}
			depth++
		case ')':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				tuples = append(tuples, payload[begin:i])
			}
		}
	}
	// незакрытый последний кортеж отдаём как есть, валидацию сделает сборщик записей
	if depth > 0 {
		tuples = append(tuples, payload[begin:])
	}
	return tuples
}
