package clickhouseclient

import (
	"TarotDumpPump/internal/config"
	"TarotDumpPump/internal/models"
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"go.uber.org/zap"
)

// Row — строка таблицы карт в ClickHouse
type Row struct {
	ID          int64
	Name        string
	ImageURL    string
	Description string
	LoadedAt    time.Time
}

// Client публикует каталог карт в ClickHouse
type Client struct {
	conn      clickhouse.Conn
	Table     string
	BatchSize int
	Logger    *zap.Logger
}

// New создает клиента ClickHouse
func New(cfg config.ClickHouseConfig, logger *zap.Logger) (*Client, error) {
	protocol := clickhouse.Native
	if cfg.Protocol == "http" {
		protocol = clickhouse.HTTP
	}

	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{cfg.Address},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		DialTimeout: 5 * time.Second,
		Compression: &clickhouse.Compression{Method: clickhouse.CompressionLZ4},
		Protocol:    protocol,
	})
	if err != nil {
		return nil, fmt.Errorf("clickhouse open: %w", err)
	}
	return &Client{
		conn:      conn,
		Table:     cfg.Table,
		BatchSize: cfg.BatchSize,
		Logger:    logger,
	}, nil
}

// CreateTableSQL — DDL таблицы карт
func CreateTableSQL(table string) string {
	return "CREATE TABLE IF NOT EXISTS " + table + " (" +
		"Id Int64, Name String, ImageURL String, Description String, LoadedAt DateTime64(3)" +
		") ENGINE = MergeTree ORDER BY Id"
}

// InsertSQL — заготовка пакетной вставки
func InsertSQL(table string) string {
	return "INSERT INTO " + table + " (Id, Name, ImageURL, Description, LoadedAt)"
}

// Rows конвертирует каталог в строки ClickHouse с общей меткой загрузки
func Rows(catalog models.CardCatalog, loadedAt time.Time) []Row {
	rows := make([]Row, 0, len(catalog.Cards))
	for _, c := range catalog.Cards {
		rows = append(rows, Row{
			ID:          c.ID,
			Name:        c.Name,
			ImageURL:    c.ImageURL,
			Description: c.Description,
			LoadedAt:    loadedAt,
		})
	}
	return rows
}

// Chunks режет строки на пачки не длиннее size
func Chunks(rows []Row, size int) [][]Row {
	if size <= 0 {
		size = len(rows)
	}
	var out [][]Row
	for start := 0; start < len(rows); start += size {
		end := min(start+size, len(rows))
		out = append(out, rows[start:end])
	}
	return out
}

// Save заменяет содержимое таблицы каталогом: TRUNCATE и вставка пачками.
// Повторный прогон на том же дампе оставляет таблицу в том же состоянии.
func (c *Client) Save(ctx context.Context, catalog models.CardCatalog) error {
	// Отдельный контекст с таймаутом, чтобы сигнал остановки не оборвал публикацию на середине
	dbCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 60*time.Second)
	defer cancel()

	if err := c.conn.Exec(dbCtx, CreateTableSQL(c.Table)); err != nil {
		c.Logger.Error("create table", zap.Error(err), zap.String("table", c.Table))
		return fmt.Errorf("create table: %w", err)
	}
	if err := c.conn.Exec(dbCtx, "TRUNCATE TABLE "+c.Table); err != nil {
		c.Logger.Error("truncate table", zap.Error(err), zap.String("table", c.Table))
		return fmt.Errorf("truncate table: %w", err)
	}

	for _, chunk := range Chunks(Rows(catalog, time.Now()), c.BatchSize) {
		batch, err := c.conn.PrepareBatch(dbCtx, InsertSQL(c.Table))
		if err != nil {
			c.Logger.Error("prepare batch", zap.Error(err), zap.String("table", c.Table))
			return fmt.Errorf("prepare batch: %w", err)
		}
		for _, row := range chunk {
			if err := batch.Append(row.ID, row.Name, row.ImageURL, row.Description, row.LoadedAt); err != nil {
				_ = batch.Abort()
				c.Logger.Error("append batch", zap.Error(err), zap.Int64("id", row.ID))
				return fmt.Errorf("append: %w", err)
			}
		}
		if err := batch.Send(); err != nil {
			c.Logger.Error("send batch", zap.Error(err), zap.String("table", c.Table))
			return fmt.Errorf("send batch: %w", err)
		}
		c.Logger.Debug("Пачка карт отправлена", zap.Int("count", len(chunk)))
	}
	c.Logger.Info("Каталог опубликован в ClickHouse", zap.Int("count", len(catalog.Cards)), zap.String("table", c.Table))
	return nil
}

// Close закрывает соединение с ClickHouse
func (c *Client) Close() error {
	return c.conn.Close()
}
