package internal

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/vxdy/open-electribe-editor/internal/logging"
	"github.com/vxdy/open-electribe-editor/internal/record"
)

type Config struct {
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
	PlayLevel int    `mapstructure:"play-level"`
	Backup    bool   `mapstructure:"backup"`
}

const DEFAULT_LOG_LEVEL = "info"
const DEFAULT_LOG_FORMAT = logging.FormatText
const DEFAULT_PLAY_LEVEL = record.DefaultPlayLevel
const ENV_PREFIX = "ESX"

func DefaultConfig() *Config {
	return &Config{
		LogLevel:  DEFAULT_LOG_LEVEL,
		LogFormat: DEFAULT_LOG_FORMAT,
		PlayLevel: DEFAULT_PLAY_LEVEL,
	}
}

// NewViper returns a viper instance carrying the defaults and reading
// ESX_* environment overrides, e.g. ESX_LOG_LEVEL.
func NewViper() *viper.Viper {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault("log-level", def.LogLevel)
	v.SetDefault("log-format", def.LogFormat)
	v.SetDefault("play-level", def.PlayLevel)
	v.SetDefault("backup", def.Backup)

	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads the optional config file at path into v and decodes the
// result. An empty path uses defaults and the environment only.
func LoadConfig(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %v", err)
		}
	}

	c := new(Config)
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %v", err)
	}

	if c.PlayLevel < 0 || c.PlayLevel > 255 {
		return nil, fmt.Errorf("play-level %d outside [0, 255]", c.PlayLevel)
	}
	switch c.LogFormat {
	case logging.FormatText, logging.FormatJSON:
	default:
		return nil, fmt.Errorf("unknown log-format %q", c.LogFormat)
	}

	return c, nil
}
