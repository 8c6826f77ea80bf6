// Package config loads settings for the scdemo command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/gogpu/swapchain"
)

// EnvPrefix prefixes environment overrides, e.g. SCDEMO_WIDTH.
const EnvPrefix = "SCDEMO"

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Config holds the demo settings.
type Config struct {
	Backend      string `mapstructure:"backend"`
	Width        uint32 `mapstructure:"width"`
	Height       uint32 `mapstructure:"height"`
	Format       string `mapstructure:"format"`
	ImageCount   uint32 `mapstructure:"image_count"`
	SyncInterval uint32 `mapstructure:"sync_interval"`
	Frames       int    `mapstructure:"frames"`
	LogLevel     string `mapstructure:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Backend:      "noop",
		Width:        1280,
		Height:       720,
		Format:       "rgba8",
		ImageCount:   swapchain.DefaultImageCount,
		SyncInterval: 1,
		Frames:       120,
		LogLevel:     "info",
	}
}

// Load reads cfgFile, or scdemo.yaml from the working directory when
// cfgFile is empty, and applies SCDEMO_* environment overrides on top of
// the defaults. A missing default file is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("scdemo")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so that environment overrides are
// seen by Unmarshal.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("backend", d.Backend)
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("format", d.Format)
	v.SetDefault("image_count", d.ImageCount)
	v.SetDefault("sync_interval", d.SyncInterval)
	v.SetDefault("frames", d.Frames)
	v.SetDefault("log_level", d.LogLevel)
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if c.Width == 0 || c.Height == 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if _, err := ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Frames < 0 {
		return fmt.Errorf("%w: frames %d", ErrInvalid, c.Frames)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Dimensions converts the settings to swap chain dimensions.
func (c *Config) Dimensions() (swapchain.Dimensions, error) {
	f, err := ParseFormat(c.Format)
	if err != nil {
		return swapchain.Dimensions{}, err
	}
	return swapchain.Dimensions{
		Width:        c.Width,
		Height:       c.Height,
		Format:       f,
		ImageCount:   c.ImageCount,
		SyncInterval: c.SyncInterval,
	}, nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	return l, nil
}

// ParseFormat maps a short format name to a swap chain format.
func ParseFormat(name string) (swapchain.Format, error) {
	switch strings.ToLower(name) {
	case "rgba8":
		return swapchain.FormatRGBA8Unorm, nil
	case "rgb10a2", "hdr10":
		return swapchain.FormatRGB10A2Unorm, nil
	default:
		return swapchain.FormatUnknown, fmt.Errorf("%w: format %q", ErrInvalid, name)
	}
}
