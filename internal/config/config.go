// Package config loads fixtura settings from file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/motion"
	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/palette"
)

// EnvPrefix prefixes every environment override, e.g. FIXTURA_RENDER_FPS.
const EnvPrefix = "FIXTURA"

// Config is the full fixtura configuration.
type Config struct {
	Render   RenderConfig   `mapstructure:"render" yaml:"render"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
	Preview  PreviewConfig  `mapstructure:"preview" yaml:"preview"`
}

// RenderConfig holds defaults for planning compositions.
type RenderConfig struct {
	FPS        int    `mapstructure:"fps" yaml:"fps"`
	Theme      string `mapstructure:"theme" yaml:"theme"`
	Palette    string `mapstructure:"palette" yaml:"palette"`
	FontFamily string `mapstructure:"font_family" yaml:"font_family"`
}

// DatabaseConfig locates the render history database.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// PreviewConfig tunes the terminal previewer.
type PreviewConfig struct {
	// Speed multiplies playback rate; 1 is real time.
	Speed float64 `mapstructure:"speed" yaml:"speed"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			FPS:        int(motion.DefaultFPS),
			Theme:      "basic",
			Palette:    string(palette.KindPrimary),
			FontFamily: "sans-serif",
		},
		Database: DatabaseConfig{
			Path: filepath.Join(DataDir(), "fixtura.db"),
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Preview: PreviewConfig{
			Speed: 1,
		},
	}
}

// ConfigDir is where fixtura looks for config.yaml.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "fixtura")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".fixtura")
	}
	return filepath.Join(home, ".config", "fixtura")
}

// DataDir is where fixtura keeps its database.
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "fixtura")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".fixtura")
	}
	return filepath.Join(home, ".local", "share", "fixtura")
}

// Load reads configuration. An explicit path must exist; without one the
// default config file is optional. Environment variables override the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Database.Path = expandHome(cfg.Database.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("render.fps", d.Render.FPS)
	v.SetDefault("render.theme", d.Render.Theme)
	v.SetDefault("render.palette", d.Render.Palette)
	v.SetDefault("render.font_family", d.Render.FontFamily)
	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("preview.speed", d.Preview.Speed)
}

// Validate checks values that would otherwise fail later and far from the
// config file.
func (c *Config) Validate() error {
	var problems []string

	if c.Render.FPS <= 0 || c.Render.FPS > 240 {
		problems = append(problems, fmt.Sprintf("render.fps must be between 1 and 240, got %d", c.Render.FPS))
	}
	if strings.TrimSpace(c.Render.Theme) == "" {
		problems = append(problems, "render.theme is required")
	}
	if _, ok := palette.ParseKind(c.Render.Palette); !ok {
		problems = append(problems, fmt.Sprintf("render.palette %q is not a palette kind", c.Render.Palette))
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		problems = append(problems, "database.path is required")
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format must be console or json, got %q", c.Logging.Format))
	}
	if c.Preview.Speed <= 0 {
		problems = append(problems, "preview.speed must be greater than 0")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
