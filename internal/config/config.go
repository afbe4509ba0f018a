package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/proj-dev/proj/internal/pathutil"
	"github.com/proj-dev/proj/internal/store"
)

// OpenConfig holds settings for the open command.
type OpenConfig struct {
	StartScript string `toml:"start_script"` // script run by open when present in the project
}

// Config holds the proj configuration
type Config struct {
	StorePath   string     `toml:"store_path"`   // optional: where the project map lives
	CommandFile string     `toml:"command_file"` // channel file read by the shell wrapper
	Editor      string     `toml:"editor"`       // overrides $EDITOR for the edit command
	Open        OpenConfig `toml:"open"`
}

// DefaultCommandFile is the channel file the shell wrapper watches.
// Keep in sync with the wrapper scripts printed by `proj init`.
const DefaultCommandFile = "/tmp/proj_cmd"

// Default returns the default configuration
func Default() Config {
	return Config{
		StorePath:   "",
		CommandFile: DefaultCommandFile,
		Open: OpenConfig{
			StartScript: "start",
		},
	}
}

// GetStorePath returns the configured store path, falling back to
// ~/.proj/projects.json.
func (c *Config) GetStorePath() (string, error) {
	if c.StorePath != "" {
		return c.StorePath, nil
	}
	return store.DefaultPath()
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "proj", "config.toml"), nil
}

// Load reads config from ~/.config/proj/config.toml
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
// Environment overrides apply to every returned config, including the
// fallback when the file is unreadable or invalid.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return withEnv(Default()), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return withEnv(Default()), nil
		}
		return withEnv(Default()), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	return withEnv(cfg), err
}

// withEnv applies environment overrides. PROJ_CMD_FILE wins over the
// config file so the shell wrapper and the binary stay in sync.
func withEnv(cfg Config) Config {
	if v := os.Getenv("PROJ_CMD_FILE"); v != "" {
		cfg.CommandFile = v
	}
	return cfg
}

// Parse decodes and validates a TOML config document.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidatePath(cfg.StorePath, "store_path"); err != nil {
		return Default(), err
	}
	if err := ValidatePath(cfg.CommandFile, "command_file"); err != nil {
		return Default(), err
	}

	// Expand ~ (shell doesn't expand in config files)
	if cfg.StorePath != "" {
		expanded, err := pathutil.Expand(cfg.StorePath)
		if err != nil {
			return Default(), fmt.Errorf("expand store_path: %w", err)
		}
		cfg.StorePath = expanded
	}
	if cfg.CommandFile != "" {
		expanded, err := pathutil.Expand(cfg.CommandFile)
		if err != nil {
			return Default(), fmt.Errorf("expand command_file: %w", err)
		}
		cfg.CommandFile = expanded
	}

	if cfg.CommandFile == "" {
		cfg.CommandFile = DefaultCommandFile
	}
	if cfg.Open.StartScript == "" {
		cfg.Open.StartScript = "start"
	}

	return cfg, nil
}

type ctxKey struct{}

// WithConfig attaches a config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns the default config if none is attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	cfg := Default()
	return &cfg
}
