package reading

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TarotDumpPump/internal/models"
)

var deck = models.CardCatalog{Table: "CARD", Cards: []models.CardRecord{
	{ID: 0, Name: "The Fool", ImageURL: "images/fool.png", Description: "New beginnings"},
	{ID: 1, Name: "The Magician", ImageURL: "images/magician.png", Description: "Manifestation"},
	{ID: 2, Name: "The High Priestess", ImageURL: "images/priestess.png", Description: "Intuition"},
}}

func TestValidate(t *testing.T) {
	one, err := Draw(deck, []int64{1}, nil)
	require.NoError(t, err)

	assert.NoError(t, Request{Cards: one}.Validate())
	assert.ErrorIs(t, Request{}.Validate(), ErrInvalidRequest)
	assert.ErrorIs(t, Request{Cards: make([]DrawnCard, 6)}.Validate(), ErrInvalidRequest)
	assert.NoError(t, Request{Cards: one, Question: strings.Repeat("я", 500)}.Validate())
	assert.ErrorIs(t, Request{Cards: one, Question: strings.Repeat("a", 501)}.Validate(), ErrInvalidRequest)
}

func TestDraw(t *testing.T) {
	cards, err := Draw(deck, []int64{2, 0}, []bool{true})
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "The High Priestess", cards[0].Name)
	assert.True(t, cards[0].Reversed)
	assert.False(t, cards[1].Reversed)

	_, err = Draw(deck, []int64{42}, nil)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestMockInterpreter(t *testing.T) {
	cards, err := Draw(deck, []int64{0, 1, 2}, []bool{false, true, false})
	require.NoError(t, err)

	t.Run("past present future", func(t *testing.T) {
		req := Request{Cards: cards, Spread: SpreadPastPresentFuture}
		text, err := MockInterpreter{}.Interpret(context.Background(), req)
		require.NoError(t, err)
		assert.Contains(t, text, "**Past: The Fool**")
		assert.Contains(t, text, "**Present: The Magician (in shadow)**")
		assert.Contains(t, text, "**Future: The High Priestess**")

		again, err := MockInterpreter{}.Interpret(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, text, again)
	})

	t.Run("simple", func(t *testing.T) {
		text, err := MockInterpreter{}.Interpret(context.Background(), Request{Cards: cards[:2], Spread: SpreadSimple, Question: "Work?"})
		require.NoError(t, err)
		assert.Contains(t, text, "The Fool, The Magician in shadow")
		assert.Contains(t, text, "Reversed cards")
		assert.Contains(t, text, "Your question")
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := MockInterpreter{}.Interpret(context.Background(), Request{})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}
