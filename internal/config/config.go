package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// DefaultPath — необязательный конфиг в рабочем каталоге
const DefaultPath = "config.yaml"

// EnvPrefix — префикс переменных окружения: TAROTPUMP_INPUT, TAROTPUMP_CLICKHOUSE_ADDRESS, ...
const EnvPrefix = "TAROTPUMP"

// ParserConfig — параметры разбора дампа
type ParserConfig struct {
	// StrictTuples — разбиение кортежей с учётом кавычек вместо поиска "),("
	StrictTuples bool `mapstructure:"StrictTuples"`
}

// ClickHouseConfig — необязательная публикация каталога в ClickHouse.
// Пустой Address отключает публикацию.
type ClickHouseConfig struct {
	Address   string `mapstructure:"Address"`
	Username  string `mapstructure:"Username"`
	Password  string `mapstructure:"Password"`
	Database  string `mapstructure:"Database"`
	Table     string `mapstructure:"Table"`
	Protocol  string `mapstructure:"Protocol"` // "native" или "http"
	BatchSize int    `mapstructure:"BatchSize"`
}

// Enabled — задан ли адрес сервера
func (c ClickHouseConfig) Enabled() bool {
	return c.Address != ""
}

// LoggingConfig содержит настройки логирования
type LoggingConfig struct {
	Level   string `mapstructure:"Level"`   // debug, info, warn, error
	LogFile string `mapstructure:"LogFile"` // путь к файлу логов (только Error+)
}

// Config описывает настройки извлечения.
// Input, Output и Table обязательны, но у всех есть значения по умолчанию.
type Config struct {
	Input      string           `mapstructure:"Input"`
	Output     string           `mapstructure:"Output"`
	Table      string           `mapstructure:"Table"`
	Watch      bool             `mapstructure:"Watch"`
	DebounceMs int              `mapstructure:"DebounceMs"`
	Parser     ParserConfig     `mapstructure:"Parser"`
	ClickHouse ClickHouseConfig `mapstructure:"ClickHouse"`
	Logging    LoggingConfig    `mapstructure:"Logging"`
}

// Debounce — пауза перед повторным извлечением в режиме наблюдения
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("Input", "data/tarot_dump.sql")
	v.SetDefault("Output", "data/cards.json")
	v.SetDefault("Table", "CARD")
	v.SetDefault("Watch", false)
	v.SetDefault("DebounceMs", 500)
	v.SetDefault("Parser.StrictTuples", false)
	v.SetDefault("ClickHouse.Address", "")
	v.SetDefault("ClickHouse.Username", "default")
	v.SetDefault("ClickHouse.Password", "")
	v.SetDefault("ClickHouse.Database", "default")
	v.SetDefault("ClickHouse.Table", "tarot_cards")
	v.SetDefault("ClickHouse.Protocol", "native")
	v.SetDefault("ClickHouse.BatchSize", 1000)
	v.SetDefault("Logging.Level", "info")
	v.SetDefault("Logging.LogFile", "")
}

// LoadConfig читает конфиг по пути path. Отсутствующий файл не ошибка:
// тогда работают значения по умолчанию и переменные окружения.
// Шаги:
// 1. Значения по умолчанию и окружение
// 2. Чтение и очистка файла (BOM, табуляции)
// 3. Разбор YAML через viper
// 4. Валидация
func LoadConfig(path string) (*Config, error) {
	// 1. Умолчания и окружение
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 2. Чтение
	raw, err := readFile(path)
	switch {
	case err == nil:
		// 3. Разбор
		v.SetConfigType("yaml")
		if err := v.ReadConfig(bytes.NewReader(sanitize(raw))); err != nil {
			return nil, fmt.Errorf("unmarshal yaml: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// 4. Валидация
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// readFile читает все байты из файла по пути
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// sanitize удаляет BOM и табуляции
func sanitize(data []byte) []byte {
	// Удаляем UTF-8 BOM
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	// Заменяем табы на два пробела
	data = bytes.ReplaceAll(data, []byte("\t"), []byte("  "))
	return data
}

// Validate проверяет обязательные поля конфигурации
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return fmt.Errorf("Input must not be empty")
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("Output must not be empty")
	}
	if strings.TrimSpace(c.Table) == "" {
		return fmt.Errorf("Table must not be empty")
	}
	if c.DebounceMs <= 0 {
		return fmt.Errorf("DebounceMs must be positive")
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("Logging.Level: %w", err)
	}
	if c.ClickHouse.Enabled() {
		if c.ClickHouse.Table == "" {
			return fmt.Errorf("ClickHouse.Table must not be empty")
		}
		if c.ClickHouse.BatchSize <= 0 {
			return fmt.Errorf("ClickHouse.BatchSize must be positive")
		}
		if c.ClickHouse.Protocol != "native" && c.ClickHouse.Protocol != "http" {
			return fmt.Errorf("ClickHouse.Protocol must be native or http")
		}
	}
	return nil
}
