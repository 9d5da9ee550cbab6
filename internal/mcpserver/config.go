package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/erraggy/casekit/caser"
	"github.com/erraggy/casekit/internal/cliutil"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// MaxInputSize bounds inline content and files read by any tool.
	MaxInputSize int64

	// DefaultStyles is what convert_case renders when no styles are requested.
	// Empty means all styles.
	DefaultStyles []caser.Style

	// JSONIndent is the json_format indent in spaces when none is requested.
	JSONIndent int

	LogLevel slog.Level
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from CASEKIT_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxInputSize:  envInt64("CASEKIT_MAX_INPUT_SIZE", cliutil.DefaultMaxInputSize),
		DefaultStyles: envStyles("CASEKIT_DEFAULT_STYLES"),
		JSONIndent:    envIntRange("CASEKIT_JSON_INDENT", 2, 0, 10),
		LogLevel:      envLevel("CASEKIT_LOG_LEVEL", slog.LevelWarn),
	}
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envIntRange(key string, fallback, lo, hi int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < lo || n > hi {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "min", lo, "max", hi, "default", fallback)
		return fallback
	}
	return n
}

func envStyles(key string) []caser.Style {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	styles, err := caser.ParseStyleList(v)
	if err != nil {
		slog.Warn("invalid styles env var, rendering all styles", "key", key, "value", v, "error", err)
		return nil
	}
	return styles
}

func envLevel(key string, fallback slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
		slog.Warn("invalid log level env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return level
}
