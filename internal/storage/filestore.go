package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"TarotDumpPump/internal/models"
)

// ErrEmptyCatalog — в артефакте нет массива cards или он пуст
var ErrEmptyCatalog = errors.New("catalog has no cards")

// FileStore пишет каталог в JSON-файл
type FileStore struct {
	Path string
	mu   sync.Mutex // защита от одновременной записи из watcher-а
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Save атомарно записывает каталог: сначала во временный файл, затем Rename.
// Одинаковый каталог всегда даёт одинаковые байты.
func (f *FileStore) Save(_ context.Context, catalog models.CardCatalog) error {
	bs, err := Encode(catalog)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir %s: %w", dir, err)
		}
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, bs, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	// Удаляем старый файл, чтобы Rename не ошибся (актуально для Windows)
	_ = os.Remove(f.Path)
	if err := os.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}

// Encode — JSON с отступом в два пробела, без HTML-экранирования (&, <, > как есть)
func Encode(catalog models.CardCatalog) ([]byte, error) {
	if catalog.Cards == nil {
		catalog.Cards = []models.CardRecord{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(catalog); err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadCatalog читает артефакт так, как его читает UI: пустой cards — ошибка загрузки
func LoadCatalog(path string) (models.CardCatalog, error) {
	var catalog models.CardCatalog
	bs, err := os.ReadFile(path)
	if err != nil {
		return catalog, err
	}
	if err := json.Unmarshal(bs, &catalog); err != nil {
		return catalog, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	if len(catalog.Cards) == 0 {
		return catalog, fmt.Errorf("%s: %w", path, ErrEmptyCatalog)
	}
	return catalog, nil
}
