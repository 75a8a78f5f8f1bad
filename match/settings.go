package match

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/LilConsul/Endless-TicTacToe/engine"
	"github.com/joho/godotenv"
)

type Settings struct {
	BoardSize  int           `json:"board_size"`
	GrowMargin int           `json:"grow_margin"`
	BotEnabled bool          `json:"bot_enabled"`
	Engine     engine.Config `json:"engine"`
}

func DefaultSettings() Settings {
	return Settings{
		BoardSize:  7,
		GrowMargin: 3,
		BotEnabled: true,
		Engine:     engine.DefaultConfig(),
	}
}

func (s Settings) Validate() error {
	if s.BoardSize < 1 {
		return fmt.Errorf("board size must be positive, got %d", s.BoardSize)
	}
	if s.GrowMargin < 0 {
		return fmt.Errorf("grow margin must not be negative, got %d", s.GrowMargin)
	}
	if s.Engine.Depth < 0 {
		return fmt.Errorf("search depth must not be negative, got %d", s.Engine.Depth)
	}
	return nil
}

// LoadSettings starts from DefaultSettings, loads the given .env files (or
// ./.env when none is named) and applies the GOMOKU_* variables found in the
// environment. Variables already set in the process win over the files.
func LoadSettings(files ...string) (Settings, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[match] no .env file loaded: %v", err)
	}
	s := DefaultSettings()
	s.BoardSize = getEnvAsInt("GOMOKU_BOARD_SIZE", s.BoardSize)
	s.GrowMargin = getEnvAsInt("GOMOKU_GROW_MARGIN", s.GrowMargin)
	s.BotEnabled = getEnvAsBool("GOMOKU_BOT", s.BotEnabled)
	s.Engine.Depth = getEnvAsInt("GOMOKU_DEPTH", s.Engine.Depth)
	s.Engine.Workers = getEnvAsInt("GOMOKU_WORKERS", s.Engine.Workers)
	s.Engine.EvalCacheSize = getEnvAsInt("GOMOKU_EVAL_CACHE_SIZE", s.Engine.EvalCacheSize)
	s.Engine.LogSearchStats = getEnvAsBool("GOMOKU_LOG_SEARCH_STATS", s.Engine.LogSearchStats)
	if err := s.Validate(); err != nil {
		return DefaultSettings(), fmt.Errorf("load settings: %w", err)
	}
	return s, nil
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[match] invalid integer for %s: %q, using default %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("[match] invalid boolean for %s: %q, using default %v", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
