package parser

import (
	"errors"
	"fmt"
	"strings"

	"TarotDumpPump/internal/models"
)

var (
	// ErrNotFound — в дампе нет INSERT INTO нужной таблицы
	ErrNotFound = errors.New("insert statement not found")
	// ErrMalformedStatement — нет VALUES или нет ';' вне строк
	ErrMalformedStatement = errors.New("malformed insert statement")
)

const (
	insertKeyword = "INSERT INTO "
	valuesKeyword = "VALUES"
	terminator    = ';'
)

// Locate находит оператор INSERT INTO <table> и возвращает диапазон его списка кортежей:
// от конца ключевого слова VALUES до завершающей ';', стоящей вне строкового литерала.
func Locate(dump, table string) (models.StatementSpan, error) {
	start, markerLen := findMarker(dump, table)
	if start == -1 {
		return models.StatementSpan{}, fmt.Errorf("%w: %s%s", ErrNotFound, insertKeyword, table)
	}

	rel := strings.Index(dump[start+markerLen:], valuesKeyword)
	if rel == -1 {
		return models.StatementSpan{}, fmt.Errorf("%w: no %s after %s%s", ErrMalformedStatement, valuesKeyword, insertKeyword, table)
	}
	valuesEnd := start + markerLen + rel + len(valuesKeyword)

	end := scanTerminator(dump, valuesEnd)
	if end == -1 {
		return models.StatementSpan{}, fmt.Errorf("%w: no %q outside string literals after %s", ErrMalformedStatement, terminator, valuesKeyword)
	}
	return models.StatementSpan{Start: valuesEnd, End: end}, nil
}

// findMarker ищет сначала форму с обратными кавычками (INSERT INTO `CARD`),
// затем голое имя, за которым идёт пробел или '('.
func findMarker(dump, table string) (int, int) {
	quoted := insertKeyword + "`" + table + "`"
	if i := strings.Index(dump, quoted); i != -1 {
		return i, len(quoted)
	}

	bare := insertKeyword + table
	for from := 0; from < len(dump); {
		i := strings.Index(dump[from:], bare)
		if i == -1 {
			return -1, 0
		}
		pos := from + i
		next := pos + len(bare)
		if next < len(dump) && isMarkerBoundary(dump[next]) {
			return pos, len(bare)
		}
		from = pos + 1
	}
	return -1, 0
}

func isMarkerBoundary(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '(':
		return true
	}
	return false
}

// scanTerminator возвращает индекс первой ';' вне строки, начиная с from, или -1
func scanTerminator(dump string, from int) int {
	state := Normal
	for i := from; i < len(dump); i++ {
		var act Action
		state, act = Step(state, dump[i], terminator)
		if act == Split {
			return i
		}
	}
	return -1
}
