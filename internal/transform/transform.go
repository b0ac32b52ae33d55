package transform

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"TarotDumpPump/internal/models"
)

// ErrMalformedRow — кортеж не превращается в карту; строка отбрасывается, прогон продолжается
var ErrMalformedRow = errors.New("malformed row")

// cardFields — число столбцов в таблице карт: id, name, image_url, description
const cardFields = 4

// BuildRecord собирает CardRecord из декодированных полей кортежа.
// Возвращает ErrMalformedRow (с причиной), если строку нужно пропустить.
func BuildRecord(values []models.TypedValue) (models.CardRecord, error) {
	if len(values) != cardFields {
		return models.CardRecord{}, fmt.Errorf("%w: %d fields, want %d", ErrMalformedRow, len(values), cardFields)
	}

	id, err := recordID(values[0])
	if err != nil {
		return models.CardRecord{}, err
	}
	name, err := requiredString(values[1], "name")
	if err != nil {
		return models.CardRecord{}, err
	}
	imageURL, err := requiredString(values[2], "image_url")
	if err != nil {
		return models.CardRecord{}, err
	}
	description, err := requiredString(values[3], "description")
	if err != nil {
		return models.CardRecord{}, err
	}

	return models.CardRecord{
		ID:          id,
		Name:        name,
		ImageURL:    imageURL,
		Description: description,
	}, nil
}

// BuildCatalog упорядочивает принятые записи по ID.
// Сортировка устойчивая: при равных ID сохраняется порядок из дампа.
func BuildCatalog(table string, records []models.CardRecord) models.CardCatalog {
	cards := slices.Clone(records)
	if cards == nil {
		cards = []models.CardRecord{}
	}
	slices.SortStableFunc(cards, func(a, b models.CardRecord) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return models.CardCatalog{Table: table, Cards: cards}
}

func recordID(v models.TypedValue) (int64, error) {
	if !v.IsNumber() {
		return 0, fmt.Errorf("%w: id is %s, want number", ErrMalformedRow, v.Kind)
	}
	n := v.Num
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%w: id is not finite", ErrMalformedRow)
	}
	if n != math.Trunc(n) || n >= math.MaxInt64 || n < math.MinInt64 {
		return 0, fmt.Errorf("%w: id %v is not an integer", ErrMalformedRow, n)
	}
	return int64(n), nil
}

func requiredString(v models.TypedValue, field string) (string, error) {
	if !v.IsString() || v.Str == "" {
		return "", fmt.Errorf("%w: %s is empty or not a string", ErrMalformedRow, field)
	}
	return v.Str, nil
}
