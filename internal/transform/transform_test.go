package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TarotDumpPump/internal/models"
)

func row(id models.TypedValue, rest ...models.TypedValue) []models.TypedValue {
	return append([]models.TypedValue{id}, rest...)
}

func TestBuildRecord(t *testing.T) {
	name := models.String("The Tower")
	img := models.String("images/tower.png")
	desc := models.String("Sudden change")

	rec, err := BuildRecord(row(models.Number(16), name, img, desc))
	require.NoError(t, err)
	assert.Equal(t, models.CardRecord{ID: 16, Name: "The Tower", ImageURL: "images/tower.png", Description: "Sudden change"}, rec)

	rec, err = BuildRecord(row(models.Number(-3), name, img, desc))
	require.NoError(t, err)
	assert.Equal(t, int64(-3), rec.ID)

	bad := map[string][]models.TypedValue{
		"three fields":    row(models.Number(1), name, img),
		"five fields":     row(models.Number(1), name, img, desc, desc),
		"string id":       row(models.String("1"), name, img, desc),
		"null id":         row(models.Null(), name, img, desc),
		"fractional id":   row(models.Number(1.5), name, img, desc),
		"infinite id":     row(models.Number(math.Inf(1)), name, img, desc),
		"nan id":          row(models.Number(math.NaN()), name, img, desc),
		"empty name":      row(models.Number(1), models.String(""), img, desc),
		"null image":      row(models.Number(1), name, models.Null(), desc),
		"numeric desc":    row(models.Number(1), name, img, models.Number(7)),
		"null everything": row(models.Null(), models.Null(), models.Null(), models.Null()),
	}
	for label, values := range bad {
		t.Run(label, func(t *testing.T) {
			_, err := BuildRecord(values)
			assert.ErrorIs(t, err, ErrMalformedRow)
		})
	}
}

func TestBuildCatalogSortsStable(t *testing.T) {
	records := []models.CardRecord{
		{ID: 3, Name: "c"},
		{ID: 1, Name: "a"},
		{ID: 2, Name: "b1"},
		{ID: 2, Name: "b2"},
	}
	catalog := BuildCatalog("CARD", records)

	assert.Equal(t, "CARD", catalog.Table)
	names := make([]string, 0, len(catalog.Cards))
	for _, c := range catalog.Cards {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"a", "b1", "b2", "c"}, names)
	// исходный срез не трогаем
	assert.Equal(t, int64(3), records[0].ID)
}

func TestBuildCatalogEmpty(t *testing.T) {
	catalog := BuildCatalog("CARD", nil)
	assert.NotNil(t, catalog.Cards)
	assert.Empty(t, catalog.Cards)
}
