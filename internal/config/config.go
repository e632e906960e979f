package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the optional config file looked up in the config directory.
const FileName = "accidentsketch.cfg.json"

// Config is the resolved application configuration.
type Config struct {
	LogLevel   string           `mapstructure:"logLevel"`
	LogPretty  bool             `mapstructure:"logPretty"`
	Canvas     CanvasConfig     `mapstructure:"canvas"`
	Background BackgroundConfig `mapstructure:"background"`
	Share      ShareConfig      `mapstructure:"share"`
	Export     ExportConfig     `mapstructure:"export"`
}

// CanvasConfig is the logical editor canvas size.
type CanvasConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// BackgroundConfig points at the map image drawn behind the sketch.
type BackgroundConfig struct {
	Path string `mapstructure:"path"`
}

// ShareConfig controls the LAN hand-off of saved sketches.
type ShareConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// ExportConfig holds where exported files go.
type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logPretty", true)

	viper.SetDefault("canvas.width", 800)
	viper.SetDefault("canvas.height", 500)

	viper.SetDefault("background.path", "map.png")

	viper.SetDefault("share.enabled", false)
	viper.SetDefault("share.port", 8888)

	viper.SetDefault("export.dir", ".")
}

// Load reads configuration from configDir, the environment
// (ACCIDENTSKETCH_SHARE_PORT and friends) and defaults. A missing config
// file is not an error.
func Load(configDir string) (Config, error) {
	setDefaults()

	viper.SetEnvPrefix("ACCIDENTSKETCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(FileName)
	viper.SetConfigType("json")
	if configDir != "" {
		viper.AddConfigPath(configDir)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if cfg.Canvas.Width <= 0 || cfg.Canvas.Height <= 0 {
		return Config{}, fmt.Errorf("canvas size must be positive, got %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	return cfg, nil
}
