package parser

// State — состояние сканера кавычек
type State uint8

const (
	Normal   State = iota // вне строкового литерала
	InString              // внутри '...'
	Escaped               // предыдущий символ внутри строки — обратный слэш
)

// Action — что делать с очередным символом
type Action uint8

const (
	Keep  Action = iota // символ принадлежит текущему фрагменту
	Split               // символ — разделитель верхнего уровня
)

const (
	quoteChar  = '\''
	escapeChar = '\\'
)

// Step — один шаг автомата кавычек/экранирования.
// sep — разделитель, который имеет смысл только вне строки (';' для оператора, ',' для полей).
// После '\' следующий символ поглощается целиком, поэтому \' и \\ не переключают InString.
func Step(s State, ch, sep byte) (State, Action) {
	switch s {
	case InString:
		switch ch {
		case escapeChar:
			return Escaped, Keep
		case quoteChar:
			return Normal, Keep
		}
		return InString, Keep
	case Escaped:
		return InString, Keep
	}
	// Normal
	switch ch {
	case quoteChar:
		return InString, Keep
	case sep:
		return Normal, Split
	}
	return Normal, Keep
}
