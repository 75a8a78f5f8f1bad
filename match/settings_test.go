package match

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsFromEnv(t *testing.T) {
	t.Setenv("GOMOKU_BOARD_SIZE", "9")
	t.Setenv("GOMOKU_BOT", "false")
	t.Setenv("GOMOKU_DEPTH", "2")
	t.Setenv("GOMOKU_WORKERS", "not-a-number")
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.BoardSize != 9 || settings.BotEnabled || settings.Engine.Depth != 2 {
		t.Fatalf("env not applied: %+v", settings)
	}
	if settings.Engine.Workers != DefaultSettings().Engine.Workers {
		t.Fatalf("invalid integer should keep default, got %d", settings.Engine.Workers)
	}
}

func TestLoadSettingsFromDotEnv(t *testing.T) {
	t.Setenv("GOMOKU_GROW_MARGIN", "")
	os.Unsetenv("GOMOKU_GROW_MARGIN")
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("GOMOKU_GROW_MARGIN=5\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.GrowMargin != 5 {
		t.Fatalf("expected grow margin from file, got %d", settings.GrowMargin)
	}
}

func TestLoadSettingsRejectsInvalid(t *testing.T) {
	t.Setenv("GOMOKU_BOARD_SIZE", "0")
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected error for zero board size")
	}
}
