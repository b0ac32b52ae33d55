// Package reading описывает контракт с ретранслятором толкований:
// какие данные каталога он получает и что возвращает. Сам вызов
// языковой модели находится вне этого модуля.
package reading

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"TarotDumpPump/internal/models"
)

const (
	MinCards          = 1
	MaxCards          = 5
	MaxQuestionLength = 500

	SpreadSimple            = "simple"
	SpreadPastPresentFuture = "past-present-future"
)

var ErrInvalidRequest = errors.New("invalid request")

// DrawnCard — карта из каталога в раскладе; позиция задаётся индексом в Request.Cards
type DrawnCard struct {
	models.CardRecord
	Reversed bool `json:"reversed,omitempty"`
}

type Request struct {
	Cards    []DrawnCard `json:"cards"`
	Question string      `json:"question"`
	Spread   string      `json:"spread"`
}

// Response — либо Reading, либо Error
type Response struct {
	Reading string `json:"reading,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Interpreter превращает расклад в текст толкования
type Interpreter interface {
	Interpret(ctx context.Context, req Request) (string, error)
}

func (r Request) Validate() error {
	if n := len(r.Cards); n < MinCards || n > MaxCards {
		return fmt.Errorf("%w: must include between %d and %d cards, got %d", ErrInvalidRequest, MinCards, MaxCards, n)
	}
	if utf8.RuneCountInString(r.Question) > MaxQuestionLength {
		return fmt.Errorf("%w: question is longer than %d characters", ErrInvalidRequest, MaxQuestionLength)
	}
	return nil
}

// Positions — подписи позиций; только для расклада прошлое/настоящее/будущее из трёх карт
func (r Request) Positions() []string {
	if r.Spread == SpreadPastPresentFuture && len(r.Cards) == 3 {
		return []string{"Past", "Present", "Future"}
	}
	return nil
}

// Draw собирает расклад из каталога по ID карт.
// reversed[i] относится к ids[i]; недостающие значения считаются false.
func Draw(catalog models.CardCatalog, ids []int64, reversed []bool) ([]DrawnCard, error) {
	byID := make(map[int64]models.CardRecord, len(catalog.Cards))
	for _, c := range catalog.Cards {
		if _, dup := byID[c.ID]; !dup {
			byID[c.ID] = c
		}
	}
	out := make([]DrawnCard, 0, len(ids))
	for i, id := range ids {
		card, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: card %d is not in catalog %s", ErrInvalidRequest, id, catalog.Table)
		}
		out = append(out, DrawnCard{CardRecord: card, Reversed: i < len(reversed) && reversed[i]})
	}
	return out, nil
}
