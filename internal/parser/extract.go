package parser

import (
	"errors"

	"TarotDumpPump/internal/models"
	"TarotDumpPump/internal/transform"
)

// Options — параметры одного прогона извлечения
type Options struct {
	Table string
	// StrictTuples включает SplitTuplesStrict вместо текстового разбиения
	StrictTuples bool
}

// Extract — чистая функция: текст дампа -> каталог карт.
// Фатальны только ErrNotFound и ErrMalformedStatement; битые строки попадают в Stats.Discarded.
func Extract(dump string, opts Options) (models.CardCatalog, models.Stats, error) {
	var stats models.Stats

	span, err := Locate(dump, opts.Table)
	if err != nil {
		return models.CardCatalog{}, stats, err
	}

	payload := span.Text(dump)
	var tuples []string
	if opts.StrictTuples {
		tuples = SplitTuplesStrict(payload)
	} else {
		tuples = SplitTuples(payload)
	}
	stats.Tuples = len(tuples)

	records := make([]models.CardRecord, 0, len(tuples))
	for _, t := range tuples {
		rec, err := transform.BuildRecord(DecodeTuple(t))
		if err != nil {
			if errors.Is(err, transform.ErrMalformedRow) {
				stats.Discarded++
				continue
			}
			return models.CardCatalog{}, stats, err
		}
		records = append(records, rec)
	}
	stats.Accepted = len(records)

	return transform.BuildCatalog(opts.Table, records), stats, nil
}

// DecodeTuple делит кортеж на поля и декодирует каждое
func DecodeTuple(tuple string) []models.TypedValue {
	fields := SplitFields(tuple)
	values := make([]models.TypedValue, len(fields))
	for i, f := range fields {
		values[i] = DecodeField(f)
	}
	return values
}
