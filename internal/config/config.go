// Package config loads the preview's settings from YAML or TOML files on top
// of built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"video-transform-preview/internal/transform"
)

// ErrNoVideo means a video layer has no source path after the config file
// and command line are merged.
var ErrNoVideo = errors.New("no video source set")

const (
	PointerRaylib = "raylib"
	PointerX11    = "x11"
)

type Config struct {
	Window   WindowConfig       `yaml:"window" toml:"window"`
	Stage    StageConfig        `yaml:"stage" toml:"stage"`
	Renderer RendererConfig     `yaml:"renderer" toml:"renderer"`
	Videos   VideoConfig        `yaml:"videos" toml:"videos"`
	Pointer  string             `yaml:"pointer" toml:"pointer"`
	Assets   string             `yaml:"assets" toml:"assets"`
	Initial  map[string]float64 `yaml:"initial" toml:"initial"`
	Debug    bool               `yaml:"debug" toml:"debug"`
}

type WindowConfig struct {
	Width        int    `yaml:"width" toml:"width"`
	Height       int    `yaml:"height" toml:"height"`
	Title        string `yaml:"title" toml:"title"`
	FPS          int    `yaml:"fps" toml:"fps"`
	SidebarWidth int    `yaml:"sidebar_width" toml:"sidebar_width"`
}

type StageConfig struct {
	Scalar float64 `yaml:"scalar" toml:"scalar"`
}

type RendererConfig struct {
	PositionMultiplier float64 `yaml:"position_multiplier" toml:"position_multiplier"`
	DragDivisor        float64 `yaml:"drag_divisor" toml:"drag_divisor"`
	ScaleDragDivisor   float64 `yaml:"scale_drag_divisor" toml:"scale_drag_divisor"`
	OverlayPadding     float64 `yaml:"overlay_padding" toml:"overlay_padding"`
	HandleSize         float64 `yaml:"handle_size" toml:"handle_size"`
}

type VideoConfig struct {
	Primary   string  `yaml:"primary" toml:"primary"`
	Secondary string  `yaml:"secondary" toml:"secondary"`
	FrameRate float64 `yaml:"frame_rate" toml:"frame_rate"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:        1600,
			Height:       900,
			Title:        "Transform Preview",
			FPS:          60,
			SidebarWidth: 320,
		},
		Stage: StageConfig{Scalar: transform.DefaultStageScalar},
		Renderer: RendererConfig{
			PositionMultiplier: transform.DefaultPositionMultiplier,
			DragDivisor:        300,
			ScaleDragDivisor:   300,
			OverlayPadding:     6,
			HandleSize:         14,
		},
		Videos: VideoConfig{
			FrameRate: 30,
		},
		Pointer: PointerRaylib,
	}
}

// Load reads path over Default. The format follows the file extension:
// .yaml/.yml or .toml. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("config %s: unsupported format %q", path, filepath.Ext(path))
	}
	if err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.validateSettings(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the renderer cannot work with, including a
// missing video source. Call it once command-line overrides are applied;
// Load checks everything else.
func (c Config) Validate() error {
	if err := c.validateSettings(); err != nil {
		return err
	}
	if c.Videos.Primary == "" {
		return fmt.Errorf("videos.primary (--primary): %w", ErrNoVideo)
	}
	if c.Videos.Secondary == "" {
		return fmt.Errorf("videos.secondary (--secondary): %w", ErrNoVideo)
	}
	return nil
}

func (c Config) validateSettings() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.SidebarWidth < 0 || c.Window.SidebarWidth >= c.Window.Width {
		return fmt.Errorf("sidebar width %d does not fit a %d wide window", c.Window.SidebarWidth, c.Window.Width)
	}
	if c.Stage.Scalar <= 0 {
		return fmt.Errorf("stage scalar must be positive, got %v", c.Stage.Scalar)
	}
	if c.Renderer.DragDivisor == 0 || c.Renderer.ScaleDragDivisor == 0 {
		return fmt.Errorf("drag divisors must be non-zero")
	}
	if c.Videos.FrameRate <= 0 {
		return fmt.Errorf("video frame rate must be positive, got %v", c.Videos.FrameRate)
	}
	switch c.Pointer {
	case PointerRaylib, PointerX11:
	default:
		return fmt.Errorf("unknown pointer source %q", c.Pointer)
	}
	if _, err := transform.FromMap(c.Initial); err != nil {
		return fmt.Errorf("initial values: %w", err)
	}
	return nil
}

// InitialValues returns the starting TransformSet.
func (c Config) InitialValues() transform.Values {
	values, err := transform.FromMap(c.Initial)
	if err != nil {
		return transform.DefaultValues()
	}
	return values
}
