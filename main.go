package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"TarotDumpPump/internal/clickhouseclient"
	"TarotDumpPump/internal/config"
	"TarotDumpPump/internal/extractor"
	"TarotDumpPump/internal/logger"
	"TarotDumpPump/internal/parser"
	"TarotDumpPump/internal/storage"
	"TarotDumpPump/internal/watcher"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, config.DefaultPath)
	stop()
	os.Exit(code)
}

// run возвращает код выхода: 0 — каталог записан, 1 — любая фатальная ошибка
func run(ctx context.Context, cfgPath string) int {
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка загрузки %s: %v\n", cfgPath, err)
		return 1
	}

	rootLogger, err := logger.InitZap(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка инициализации логгера: %v\n", err)
		return 1
	}
	lg := rootLogger.Named("main")
	defer lg.Sync()

	sinks := []storage.CatalogSink{storage.NewFileStore(cfg.Output)}
	if cfg.ClickHouse.Enabled() {
		chClient, err := clickhouseclient.New(cfg.ClickHouse, rootLogger.Named("clickhouse"))
		if err != nil {
			lg.Error("Ошибка подключения к ClickHouse", zap.Error(err))
			return 1
		}
		defer chClient.Close()
		sinks = append(sinks, chClient)
	}

	runner := extractor.New(cfg, rootLogger.Named("extractor"), sinks...)
	catalog, err := runner.Run(ctx)
	if err != nil {
		lg.Error("Извлечение не удалось", zap.String("kind", errorKind(err)), zap.Error(err))
		return 1
	}
	lg.Info("Каталог записан", zap.String("file", cfg.Output), zap.Int("count", len(catalog.Cards)))

	if !cfg.Watch {
		return 0
	}

	w := watcher.New(watcher.Config{
		Path:     cfg.Input,
		Debounce: cfg.Debounce(),
		Logger:   rootLogger.Named("watcher"),
		OnChange: func(ctx context.Context) {
			catalog, err := runner.Run(ctx)
			if err != nil {
				lg.Error("Повторное извлечение не удалось", zap.String("kind", errorKind(err)), zap.Error(err))
				return
			}
			lg.Info("Каталог обновлён", zap.String("file", cfg.Output), zap.Int("count", len(catalog.Cards)))
		},
	})
	if err := w.Start(ctx); err != nil {
		lg.Error("Ошибка наблюдения за дампом", zap.Error(err))
		return 1
	}
	lg.Info("Сервис завершил работу")
	return 0
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, parser.ErrNotFound):
		return "NotFound"
	case errors.Is(err, parser.ErrMalformedStatement):
		return "MalformedStatement"
	case errors.Is(err, os.ErrNotExist):
		return "InputMissing"
	}
	return "IO"
}
