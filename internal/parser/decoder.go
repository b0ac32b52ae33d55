package parser

import (
	"regexp"
	"strconv"
	"strings"

	"TarotDumpPump/internal/models"
)

var numberRegexp = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// DecodeField превращает сырое поле в TypedValue. Ошибок не бывает:
// всё, что не NULL, не строка в кавычках и не число, возвращается как строка.
func DecodeField(raw string) models.TypedValue {
	s := strings.TrimSpace(raw)
	if strings.EqualFold(s, "NULL") {
		return models.Null()
	}
	if s != "" && s[0] == quoteChar && s[len(s)-1] == quoteChar {
		// одиночная кавычка — и открывающая, и закрывающая: пустая строка
		if len(s) == 1 {
			return models.String("")
		}
		return models.String(unescape(s[1 : len(s)-1]))
	}
	if numberRegexp.MatchString(s) {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return models.Number(n)
		}
	}
	return models.String(s)
}

// unescape снимает только \' и \\, за один проход слева направо.
// Прочие последовательности (\n, \t, ...) остаются как есть.
func unescape(body string) string {
	if strings.IndexByte(body, escapeChar) == -1 {
		return body
	}
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == escapeChar && i+1 < len(body) {
			if next := body[i+1]; next == quoteChar || next == escapeChar {
				b.WriteByte(next)
				i++
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}
