package models

// Kind — вид декодированного значения поля
type Kind uint8

const (
	KindNull Kind = iota
	KindNumber
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	}
	return "unknown"
}

// TypedValue — декодированное поле кортежа: NULL, число или строка.
// Для KindNumber заполнен Num, для KindString — Str.
type TypedValue struct {
	Kind Kind
	Num  float64
	Str  string
}

func Null() TypedValue { return TypedValue{Kind: KindNull} }

func Number(n float64) TypedValue { return TypedValue{Kind: KindNumber, Num: n} }

func String(s string) TypedValue { return TypedValue{Kind: KindString, Str: s} }

func (v TypedValue) IsNull() bool { return v.Kind == KindNull }

func (v TypedValue) IsNumber() bool { return v.Kind == KindNumber }

func (v TypedValue) IsString() bool { return v.Kind == KindString }

// StatementSpan — полуоткрытый диапазон [Start, End) списка кортежей:
// Start — позиция сразу после ключевого слова VALUES, End — позиция ';'.
type StatementSpan struct {
	Start int
	End   int
}

// Text возвращает текст диапазона из дампа
func (s StatementSpan) Text(dump string) string {
	return dump[s.Start:s.End]
}

// CardRecord — одна карта колоды. Порядок полей совпадает с порядком в JSON.
type CardRecord struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
}

// CardCatalog — итоговый артефакт: карты по возрастанию ID
type CardCatalog struct {
	Table string       `json:"table"`
	Cards []CardRecord `json:"cards"`
}

// Stats — счётчики одного прогона извлечения
type Stats struct {
	Tuples    int
	Accepted  int
	Discarded int
}
