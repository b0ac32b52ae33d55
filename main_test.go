package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TarotDumpPump/internal/parser"
	"TarotDumpPump/internal/storage"
)

// setupEnv направляет вход и выход во временный каталог
func setupEnv(t *testing.T, dump string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "tarot_dump.sql")
	out := filepath.Join(dir, "data", "cards.json")
	require.NoError(t, os.WriteFile(in, []byte(dump), 0o644))
	t.Setenv("TAROTPUMP_INPUT", in)
	t.Setenv("TAROTPUMP_OUTPUT", out)
	t.Setenv("TAROTPUMP_LOGGING_LEVEL", "error")
	return filepath.Join(dir, "config.yaml"), out
}

func TestRunSuccess(t *testing.T) {
	cfgPath, out := setupEnv(t, "INSERT INTO `CARD` (`id`,`name`,`image_url`,`description`) VALUES "+
		"(1,'The Fool','images/fool.png','New beginnings'),"+
		"(2,'The Magician','images/magician.png','Manifestation');")

	assert.Equal(t, 0, run(context.Background(), cfgPath))

	catalog, err := storage.LoadCatalog(out)
	require.NoError(t, err)
	assert.Equal(t, "CARD", catalog.Table)
	require.Len(t, catalog.Cards, 2)
	assert.Equal(t, "The Magician", catalog.Cards[1].Name)
}

func TestRunFailures(t *testing.T) {
	tests := []struct {
		name string
		dump string
	}{
		{"not found", "INSERT INTO `SPREAD` VALUES (1);"},
		{"malformed", "INSERT INTO `CARD` VALUES (1,'a','b','c')"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgPath, out := setupEnv(t, tt.dump)
			assert.Equal(t, 1, run(context.Background(), cfgPath))
			_, err := os.Stat(out)
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestRunBadConfig(t *testing.T) {
	cfgPath, _ := setupEnv(t, "")
	require.NoError(t, os.WriteFile(cfgPath, []byte("DebounceMs: -1\n"), 0o644))
	assert.Equal(t, 1, run(context.Background(), cfgPath))
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "NotFound", errorKind(fmt.Errorf("extract: %w", parser.ErrNotFound)))
	assert.Equal(t, "MalformedStatement", errorKind(fmt.Errorf("extract: %w", parser.ErrMalformedStatement)))
	assert.Equal(t, "InputMissing", errorKind(fmt.Errorf("read dump: %w", os.ErrNotExist)))
	assert.Equal(t, "IO", errorKind(errors.New("disk full")))
}
