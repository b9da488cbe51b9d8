package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces environment overrides, e.g. SNAGOR_SPEED=8.
const EnvPrefix = "SNAGOR"

var (
	ErrInvalidSpeed   = errors.New("speed must be positive")
	ErrTrailTooShort  = errors.New("trail length must be at least 2")
	ErrInvalidOverlap = errors.New("overlap must be at least 1")
	ErrInvalidWindow  = errors.New("window size must be positive")
	ErrInvalidChance  = errors.New("autopilot turn chance must be within [0,1]")
)

type Config struct {
	// Speed is the number of cells the head advances per second.
	Speed       float64   `mapstructure:"speed" yaml:"speed"`
	TrailLength int       `mapstructure:"trailLength" yaml:"trailLength"`
	Overlap     float64   `mapstructure:"overlap" yaml:"overlap"`
	ShowGrid    bool      `mapstructure:"showGrid" yaml:"showGrid"`
	Window      Window    `mapstructure:"window" yaml:"window"`
	Autopilot   Autopilot `mapstructure:"autopilot" yaml:"autopilot"`
	Debug       bool      `mapstructure:"debug" yaml:"debug"`
}

type Window struct {
	Width     int    `mapstructure:"width" yaml:"width"`
	Height    int    `mapstructure:"height" yaml:"height"`
	FPS       int    `mapstructure:"fps" yaml:"fps"`
	Title     string `mapstructure:"title" yaml:"title"`
	Resizable bool   `mapstructure:"resizable" yaml:"resizable"`
}

type Autopilot struct {
	Enabled    bool    `mapstructure:"enabled" yaml:"enabled"`
	Seed       uint64  `mapstructure:"seed" yaml:"seed"`
	TurnChance float64 `mapstructure:"turnChance" yaml:"turnChance"`
}

func Default() *Config {
	return &Config{
		Speed:       6,
		TrailLength: 3,
		Overlap:     1.03,
		ShowGrid:    true,
		Window: Window{
			Width:     800,
			Height:    800,
			FPS:       60,
			Title:     "snagor",
			Resizable: true,
		},
		Autopilot: Autopilot{
			Seed:       1,
			TurnChance: 0.25,
		},
	}
}

// Load reads a YAML file on top of the defaults. An empty path yields the
// defaults with environment overrides applied.
func Load(path string) (*Config, error) {
	vp := viper.New()
	setDefaults(vp, Default())
	vp.SetEnvPrefix(EnvPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	if path != "" {
		vp.SetConfigFile(path)
		vp.SetConfigType("yaml")
		if err := vp.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := vp.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override keys that
// never appear in the file.
func setDefaults(vp *viper.Viper, d *Config) {
	vp.SetDefault("speed", d.Speed)
	vp.SetDefault("trailLength", d.TrailLength)
	vp.SetDefault("overlap", d.Overlap)
	vp.SetDefault("showGrid", d.ShowGrid)
	vp.SetDefault("debug", d.Debug)
	vp.SetDefault("window.width", d.Window.Width)
	vp.SetDefault("window.height", d.Window.Height)
	vp.SetDefault("window.fps", d.Window.FPS)
	vp.SetDefault("window.title", d.Window.Title)
	vp.SetDefault("window.resizable", d.Window.Resizable)
	vp.SetDefault("autopilot.enabled", d.Autopilot.Enabled)
	vp.SetDefault("autopilot.seed", d.Autopilot.Seed)
	vp.SetDefault("autopilot.turnChance", d.Autopilot.TurnChance)
}

func (c *Config) Validate() error {
	if c.Speed <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidSpeed, c.Speed)
	}
	if c.TrailLength < 2 {
		return fmt.Errorf("%w: got %d", ErrTrailTooShort, c.TrailLength)
	}
	if c.Overlap < 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidOverlap, c.Overlap)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidWindow, c.Window.Width, c.Window.Height)
	}
	if c.Autopilot.TurnChance < 0 || c.Autopilot.TurnChance > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidChance, c.Autopilot.TurnChance)
	}
	return nil
}

// WriteYAML dumps the effective configuration.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
