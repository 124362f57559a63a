package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LogConfig holds logger settings. An empty Path disables logging.
type LogConfig struct {
	Path  string
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
}

// Load reads configuration from file and env. Env var overrides use prefix ONBOARDED_.
// A non-empty path takes precedence over ONBOARDED_CONFIG and the default location.
func Load(path string) (Config, error) {
	v := viper.New()

	dataDir := defaultDataDir()
	v.SetDefault("database.path", filepath.Join(dataDir, "onboarded.db"))
	v.SetDefault("log.path", filepath.Join(dataDir, "onboarded.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.alt_screen", true)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("ONBOARDED_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(defaultConfigDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ONBOARDED")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file is fine; a malformed one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	return c, nil
}

// Path resolves where Save writes: path, then ONBOARDED_CONFIG, then
// config.toml in the user config dir.
func Path(path string) string {
	if path == "" {
		path = os.Getenv("ONBOARDED_CONFIG")
	}
	if path == "" {
		path = filepath.Join(defaultConfigDir(), "config.toml")
	}
	return path
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(path string, cfg Config) error {
	path = Path(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func defaultConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "onboarded")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "onboarded")
}

func defaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "onboarded")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "onboarded")
}
