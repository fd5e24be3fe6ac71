package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config is the resolved runtime configuration.
type Config struct {
	Home     string // state dir: prefs.yaml, theme.yaml
	Catalog  string // findings file; empty means the bundled sample
	Theme    string // "dark" or "light"
	LogFile  string // empty disables logging
	LogLevel slog.Level
	DocType  string // initial document type
}

const (
	envHome     = "RISKSCAN_HOME"
	envCatalog  = "RISKSCAN_CATALOG"
	envTheme    = "RISKSCAN_THEME"
	envLogFile  = "RISKSCAN_LOG_FILE"
	envLogLevel = "RISKSCAN_LOG_LEVEL"
	envDocType  = "RISKSCAN_DOC_TYPE"
)

// Flag names shared by RegisterFlags and Load.
const (
	FlagHome     = "home"
	FlagCatalog  = "catalog"
	FlagTheme    = "theme"
	FlagLogFile  = "log-file"
	FlagLogLevel = "log-level"
	FlagDocType  = "doc-type"
)

// RegisterFlags adds the config flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagHome, "", "State directory (default: <user config dir>/riskscan)")
	fs.String(FlagCatalog, "", "Findings catalog YAML (default: bundled sample)")
	fs.String(FlagTheme, "dark", "Base theme: dark or light")
	fs.String(FlagLogFile, "", "Write logs to this file")
	fs.String(FlagLogLevel, "info", "Log level: debug, info, warn, error")
	fs.String(FlagDocType, "contract", "Initially selected document type")
}

// Load resolves defaults, then .env, then environment, then any flag the
// user set explicitly.
func Load(fs *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Theme:    "dark",
		LogLevel: slog.LevelInfo,
		DocType:  "contract",
	}

	home := os.Getenv(envHome)
	cfg.Catalog = os.Getenv(envCatalog)
	cfg.Theme = firstNonEmpty(strings.TrimSpace(os.Getenv(envTheme)), cfg.Theme)
	cfg.LogFile = os.Getenv(envLogFile)
	level := firstNonEmpty(strings.TrimSpace(os.Getenv(envLogLevel)), "info")
	cfg.DocType = firstNonEmpty(strings.TrimSpace(os.Getenv(envDocType)), cfg.DocType)

	if fs != nil {
		override(fs, FlagHome, &home)
		override(fs, FlagCatalog, &cfg.Catalog)
		override(fs, FlagTheme, &cfg.Theme)
		override(fs, FlagLogFile, &cfg.LogFile)
		override(fs, FlagLogLevel, &level)
		override(fs, FlagDocType, &cfg.DocType)
	}

	if home == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home: %w", err)
		}
		home = filepath.Join(dir, "riskscan")
	}
	cfg.Home = home

	if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	switch cfg.Theme {
	case "dark", "light":
	default:
		return nil, fmt.Errorf("unknown theme %q", cfg.Theme)
	}
	return cfg, nil
}

func override(fs *pflag.FlagSet, name string, dst *string) {
	f := fs.Lookup(name)
	if f == nil || !f.Changed {
		return
	}
	*dst = f.Value.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
