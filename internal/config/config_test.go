package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/swapchain"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	data := "backend: dxgi\nwidth: 1920\nheight: 1080\nformat: rgb10a2\nimage_count: 2\nsync_interval: 0\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Backend != "dxgi" || cfg.Width != 1920 || cfg.Height != 1080 {
		t.Errorf("cfg = %+v", cfg)
	}
	dims, err := cfg.Dimensions()
	if err != nil {
		t.Fatal(err)
	}
	want := swapchain.Dimensions{Width: 1920, Height: 1080, Format: swapchain.FormatRGB10A2Unorm, ImageCount: 2}
	if dims != want {
		t.Errorf("Dimensions() = %+v, want %+v", dims, want)
	}
	if cfg.Frames != 120 {
		t.Errorf("Frames = %d, want default 120", cfg.Frames)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SCDEMO_WIDTH", "800")
	t.Setenv("SCDEMO_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Width != 800 {
		t.Errorf("Width = %d, want 800", cfg.Width)
	}
	if l, _ := cfg.Level(); l != slog.LevelDebug {
		t.Errorf("Level() = %v, want DEBUG", l)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing explicit file should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"bad format", func(c *Config) { c.Format = "bgra8" }},
		{"negative frames", func(c *Config) { c.Frames = -1 }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			if err := c.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want swapchain.Format
	}{
		{"rgba8", swapchain.FormatRGBA8Unorm},
		{"RGBA8", swapchain.FormatRGBA8Unorm},
		{"rgb10a2", swapchain.FormatRGB10A2Unorm},
		{"hdr10", swapchain.FormatRGB10A2Unorm},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}
