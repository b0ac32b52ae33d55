package extractor

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"TarotDumpPump/internal/config"
	"TarotDumpPump/internal/models"
	"TarotDumpPump/internal/parser"
	"TarotDumpPump/internal/storage"
)

// Runner выполняет один полный прогон: дамп -> каталог -> все получатели
type Runner struct {
	cfg    *config.Config
	logger *zap.Logger
	sinks  []storage.CatalogSink
}

func New(cfg *config.Config, logger *zap.Logger, sinks ...storage.CatalogSink) *Runner {
	return &Runner{cfg: cfg, logger: logger, sinks: sinks}
}

// Run читает дамп, извлекает каталог и передаёт его получателям по порядку.
// Ошибки parser.ErrNotFound и parser.ErrMalformedStatement возвращаются обёрнутыми.
func (r *Runner) Run(ctx context.Context) (models.CardCatalog, error) {
	start := time.Now()

	raw, err := os.ReadFile(r.cfg.Input)
	if err != nil {
		return models.CardCatalog{}, fmt.Errorf("read dump: %w", err)
	}

	catalog, stats, err := parser.Extract(string(raw), parser.Options{
		Table:        r.cfg.Table,
		StrictTuples: r.cfg.Parser.StrictTuples,
	})
	if err != nil {
		return models.CardCatalog{}, fmt.Errorf("extract %s from %s: %w", r.cfg.Table, r.cfg.Input, err)
	}
	if stats.Discarded > 0 {
		r.logger.Debug("Пропущены некорректные строки", zap.Int("discarded", stats.Discarded))
	}

	for _, sink := range r.sinks {
		if err := ctx.Err(); err != nil {
			return catalog, err
		}
		if err := sink.Save(ctx, catalog); err != nil {
			return catalog, fmt.Errorf("write catalog: %w", err)
		}
	}

	r.logger.Info("Каталог извлечён",
		zap.String("table", r.cfg.Table),
		zap.Int("tuples", stats.Tuples),
		zap.Int("count", stats.Accepted),
		zap.Duration("elapsed", time.Since(start)),
	)
	return catalog, nil
}
