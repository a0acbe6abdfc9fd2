package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the editor settings. Sources are applied in order: defaults,
// the YAML file, environment (including .env), then command-line flags.
type Config struct {
	Image     string `yaml:"image"`
	ExportDir string `yaml:"export_dir"`
	Script    string `yaml:"script"`
	// ExitOnScriptEnd closes the window once the script has run.
	ExitOnScriptEnd bool      `yaml:"exit_on_script_end"`
	Width           int       `yaml:"width"`
	Height          int       `yaml:"height"`
	Debug           bool      `yaml:"debug"`
	Clipboard       bool      `yaml:"clipboard"`
	Watch           bool      `yaml:"watch"`
	Log             LogConfig `yaml:"log"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		ExportDir: ".",
		Width:     1280,
		Height:    720,
		Clipboard: true,
		Log: LogConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

// loadYAML overlays the YAML file at path onto cfg. Keys missing from the
// file keep their current values.
func loadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("spritecut: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("spritecut: parse config %s: %w", path, err)
	}
	return nil
}

// loadDotEnv reads .env from the working directory if present. Variables
// already set in the environment win.
func loadDotEnv() {
	_ = godotenv.Load()
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

// applyEnv overlays SPRITECUT_* environment variables onto cfg.
func applyEnv(cfg *Config) {
	cfg.Image = getEnv("SPRITECUT_IMAGE", cfg.Image)
	cfg.ExportDir = getEnv("SPRITECUT_EXPORT_DIR", cfg.ExportDir)
	cfg.Log.Level = getEnv("SPRITECUT_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.File = getEnv("SPRITECUT_LOG_FILE", cfg.Log.File)
	cfg.Debug = getEnvBool("SPRITECUT_DEBUG", cfg.Debug)
	cfg.Width = getEnvInt("SPRITECUT_WIDTH", cfg.Width)
	cfg.Height = getEnvInt("SPRITECUT_HEIGHT", cfg.Height)
}

// Validate rejects settings the editor cannot start with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("spritecut: window size must be positive, got %dx%d", c.Width, c.Height)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("spritecut: unknown log level %q", c.Log.Level)
	}
	return nil
}
