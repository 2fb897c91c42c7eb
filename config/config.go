// Package config loads threat-shooter settings from TOML and the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/threat-shooter/parameter"
)

const (
	// FileName is the config file base name, searched in SearchPaths
	FileName = "threat-shooter"
	// EnvPrefix prefixes environment overrides, e.g. SHOOTER_GAME_DIFFICULTY
	EnvPrefix = "SHOOTER"
)

// Config is the full application configuration
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Game      GameConfig      `mapstructure:"game"`
	Audio     AudioConfig     `mapstructure:"audio"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

type LogConfig struct {
	Level   string        `mapstructure:"level"`
	File    string        `mapstructure:"file"`
	Graylog GraylogConfig `mapstructure:"graylog"`
}

type GraylogConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

// GameConfig holds play area and tuning settings
type GameConfig struct {
	Width        float64       `mapstructure:"width"`
	Height       float64       `mapstructure:"height"`
	Difficulty   float64       `mapstructure:"difficulty"`
	PlayerSpeed  float64       `mapstructure:"playerSpeed"`
	TickInterval time.Duration `mapstructure:"tickInterval"`
	HitTest      string        `mapstructure:"hitTest"` // cone | segment
}

type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// StorageConfig selects the user store backend
type StorageConfig struct {
	Type     string              `mapstructure:"type"` // json | sqlite | postgres | memory
	JSON     JSONStorageConfig   `mapstructure:"json"`
	SQLite   SQLiteStorageConfig `mapstructure:"sqlite"`
	Postgres PostgresConfig      `mapstructure:"postgres"`
}

type JSONStorageConfig struct {
	Path string `mapstructure:"path"`
}

type SQLiteStorageConfig struct {
	Path string `mapstructure:"path"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"sslmode"`
}

type TelemetryConfig struct {
	Influx  InfluxConfig  `mapstructure:"influx"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// InfluxConfig enables per-session result points in InfluxDB
type InfluxConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
	Token   string `mapstructure:"token"`
	Org     string `mapstructure:"org"`
	Bucket  string `mapstructure:"bucket"`
}

// MetricsConfig enables OpenTelemetry gauges over the status registry
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DataDir returns the per-user data directory, falling back to the working directory
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, FileName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", FileName)
	}
	return "."
}

// SearchPaths returns the directories searched for the config file
func SearchPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, FileName))
	}
	return paths
}

func setDefaults(v *viper.Viper) {
	dataDir := DataDir()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(dataDir, FileName+".log"))
	v.SetDefault("log.graylog.enabled", false)
	v.SetDefault("log.graylog.address", "localhost:12201")

	v.SetDefault("game.width", parameter.DefaultWorldWidth)
	v.SetDefault("game.height", parameter.DefaultWorldHeight)
	v.SetDefault("game.difficulty", parameter.DefaultDifficulty)
	v.SetDefault("game.playerSpeed", parameter.DefaultPlayerSpeed)
	v.SetDefault("game.tickInterval", parameter.TickInterval)
	v.SetDefault("game.hitTest", "cone")

	v.SetDefault("audio.enabled", true)

	v.SetDefault("storage.type", "json")
	v.SetDefault("storage.json.path", filepath.Join(dataDir, "users.json"))
	v.SetDefault("storage.sqlite.path", filepath.Join(dataDir, "users.db"))
	v.SetDefault("storage.postgres.host", "localhost")
	v.SetDefault("storage.postgres.port", 5432)
	v.SetDefault("storage.postgres.username", "postgres")
	v.SetDefault("storage.postgres.password", "postgres")
	v.SetDefault("storage.postgres.database", "threat_shooter")
	v.SetDefault("storage.postgres.sslmode", "disable")

	v.SetDefault("telemetry.influx.enabled", false)
	v.SetDefault("telemetry.influx.url", "http://localhost:8086")
	v.SetDefault("telemetry.influx.token", "")
	v.SetDefault("telemetry.influx.org", "threat-shooter")
	v.SetDefault("telemetry.influx.bucket", "sessions")
	v.SetDefault("telemetry.metrics.enabled", false)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads FileName.toml from the first matching directory, then applies env overrides
// A missing file is not an error: defaults apply
func Load(dirs ...string) (*Config, error) {
	v := newViper()
	v.SetConfigName(FileName)
	if len(dirs) == 0 {
		dirs = SearchPaths()
	}
	for _, d := range dirs {
		v.AddConfigPath(d)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

// LoadFile reads an explicit config file path
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unusable settings and clamps tuning values into range
func (c *Config) Validate() error {
	if c.Game.Width <= 0 || c.Game.Height <= 0 {
		return fmt.Errorf("invalid play area %vx%v", c.Game.Width, c.Game.Height)
	}
	if c.Game.TickInterval <= 0 {
		return fmt.Errorf("invalid tick interval %v", c.Game.TickInterval)
	}
	switch c.Game.HitTest {
	case "cone", "segment":
	default:
		return fmt.Errorf("unknown hit test %q", c.Game.HitTest)
	}
	switch c.Storage.Type {
	case "json", "sqlite", "postgres", "memory":
	default:
		return fmt.Errorf("unknown storage type %q", c.Storage.Type)
	}

	c.Game.Difficulty = max(parameter.MinDifficulty, min(parameter.MaxDifficulty, c.Game.Difficulty))
	c.Game.PlayerSpeed = max(parameter.MinPlayerSpeed, min(parameter.MaxPlayerSpeed, c.Game.PlayerSpeed))
	return nil
}
