package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

type Config struct {
	Path     string        // отслеживаемый дамп
	Debounce time.Duration // пауза после последнего события перед повторным прогоном
	Logger   *zap.Logger
	// OnChange вызывается из цикла Start, поэтому вызовы никогда не пересекаются
	OnChange func(ctx context.Context)
}

// Watcher следит за файлом дампа и перезапускает извлечение при его изменении.
// Наблюдение идёт за каталогом: редакторы и выгрузки часто заменяют файл через rename.
type Watcher struct {
	cfg  Config
	path string
}

func New(cfg Config) *Watcher {
	return &Watcher{cfg: cfg, path: filepath.Clean(cfg.Path)}
}

// Start блокируется до отмены ctx
func (w *Watcher) Start(ctx context.Context) error {
	dw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer dw.Close()

	dir := filepath.Dir(w.path)
	if err := dw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.cfg.Logger.Info("Наблюдение за дампом запущено", zap.String("file", w.path))

	// nil-канал, пока нет отложенного прогона
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			w.cfg.Logger.Info("Watcher остановлен по сигналу shutdown")
			return nil
		case ev, ok := <-dw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.cfg.Logger.Debug("Изменение дампа", zap.String("op", ev.Op.String()))
			pending = time.After(w.cfg.Debounce)
		case <-pending:
			pending = nil
			w.cfg.Logger.Info("Дамп изменился, повторное извлечение", zap.String("file", w.path))
			w.cfg.OnChange(ctx)
		case err, ok := <-dw.Errors:
			if !ok {
				return nil
			}
			w.cfg.Logger.Error("Ошибка watcher-а дампа", zap.Error(err))
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op&(fsnotify.Write|fsnotify.Create) != 0
}
