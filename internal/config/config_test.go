package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"video-transform-preview/internal/transform"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, transform.DefaultValues(), cfg.InitialValues())
}

func TestValidate_RequiresBothVideos(t *testing.T) {
	tests := []struct {
		name               string
		primary, secondary string
		wantErr            bool
	}{
		{"defaults have none", "", "", true},
		{"primary only", "dog.gif", "", true},
		{"secondary only", "", "waves.gif", true},
		{"both set", "dog.gif", "waves.gif", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Videos.Primary, cfg.Videos.Secondary = tt.primary, tt.secondary

			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoVideo)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_AcceptsMissingVideos(t *testing.T) {
	cfg, err := Load(writeConfig(t, "window.yaml", "window:\n  fps: 30\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Videos.Primary)
	assert.ErrorIs(t, cfg.Validate(), ErrNoVideo)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "preview.yaml", `
window:
  width: 1280
  fps: 30
renderer:
  drag_divisor: 150
videos:
  primary: clips/dog
pointer: x11
initial:
  x: 60
  scaleX: 25
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 900, cfg.Window.Height, "unset keys keep their defaults")
	assert.Equal(t, 30, cfg.Window.FPS)
	assert.Equal(t, 150.0, cfg.Renderer.DragDivisor)
	assert.Equal(t, 300.0, cfg.Renderer.ScaleDragDivisor)
	assert.Equal(t, "clips/dog", cfg.Videos.Primary)
	assert.Equal(t, PointerX11, cfg.Pointer)

	values := cfg.InitialValues()
	assert.Equal(t, 60.0, values[transform.ParamX])
	assert.Equal(t, 25.0, values[transform.ParamScaleX])
	assert.Equal(t, transform.Neutral, values[transform.ParamAngle])
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "preview.toml", `
pointer = "raylib"

[stage]
scalar = 40.0

[videos]
secondary = "waves.tex"
frame_rate = 24.0

[initial]
angle = 100.0
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 40.0, cfg.Stage.Scalar)
	assert.Equal(t, "waves.tex", cfg.Videos.Secondary)
	assert.Equal(t, 24.0, cfg.Videos.FrameRate)
	assert.Equal(t, 100.0, cfg.InitialValues()[transform.ParamAngle])
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unknown extension", "preview.json", `{}`},
		{"malformed yaml", "bad.yaml", "window: [1, 2"},
		{"unknown pointer", "pointer.yaml", "pointer: wayland\n"},
		{"unknown initial key", "initial.yaml", "initial:\n  depth: 3\n"},
		{"zero drag divisor", "divisor.yaml", "renderer:\n  drag_divisor: 0\n"},
		{"sidebar wider than window", "sidebar.yaml", "window:\n  width: 300\n  sidebar_width: 400\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_UnknownInitialKeyIsInvalidParameter(t *testing.T) {
	_, err := Load(writeConfig(t, "initial.yaml", "initial:\n  depth: 3\n"))
	assert.ErrorIs(t, err, transform.ErrInvalidParameter)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
