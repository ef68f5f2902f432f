package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the resolved runtime configuration.
type Config struct {
	DataDir        string
	Backend        string
	EnhanceEnabled bool
	EnhanceCommand string
	EnhanceTimeout time.Duration
	PolishPrefix   string
	SkipUnchanged  bool
}

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
// This centralizes default values and descriptions in one place.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents, and env.
func Load(ctx context.Context, v *viper.Viper) error {
	// Configure Viper search paths. If SetConfigFile was provided upstream,
	// it takes precedence; these paths are harmless fallbacks.
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "notepolish"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "notepolish"))
		}
		v.AddConfigPath(".")
	}

	// Apply centralized defaults (lowest precedence)
	applyDefaults(v)

	// Read config file if present (overrides defaults)
	_ = v.ReadInConfig()

	// Environment variables: NOTEPOLISH_* (highest among these sources)
	v.SetEnvPrefix("notepolish")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Normalize dependent values post-merge
	if v.GetString("data_dir") == "" {
		v.Set("data_dir", defaultDataDir())
	}
	if strings.TrimSpace(v.GetString("notebook.backend")) == "" {
		v.Set("notebook.backend", "sqlite")
	}
	return nil
}

// FromViper materializes the typed Config from resolved Viper state.
func FromViper(v *viper.Viper) Config {
	return Config{
		DataDir:        v.GetString("data_dir"),
		Backend:        v.GetString("notebook.backend"),
		EnhanceEnabled: v.GetBool("enhance.enabled"),
		EnhanceCommand: v.GetString("enhance.command"),
		EnhanceTimeout: time.Duration(v.GetInt("enhance.timeout_seconds")) * time.Second,
		PolishPrefix:   v.GetString("polish.prefix"),
		SkipUnchanged:  v.GetBool("polish.skip_unchanged"),
	}
}

// defaultDataDir resolves the default data dir: $XDG_DATA_HOME/notepolish or
// ~/.local/share/notepolish
func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "notepolish")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "notepolish")
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "notepolish", "config.toml")
}

// ResolveDBPath uses data_dir to return the sqlite notebook file path.
func ResolveDBPath(v *viper.Viper) string {
	dir := v.GetString("data_dir")
	if dir == "" {
		dir = defaultDataDir()
	}
	// Expand ~ for convenience
	if len(dir) > 0 && dir[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, dir[1:])
		}
	}
	return filepath.Join(dir, "notepolish.db")
}
