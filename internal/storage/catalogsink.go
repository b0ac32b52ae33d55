package storage

import (
	"context"

	"TarotDumpPump/internal/models"
)

// CatalogSink — получатель готового каталога (файл, ClickHouse)
type CatalogSink interface {
	Save(ctx context.Context, catalog models.CardCatalog) error
}
