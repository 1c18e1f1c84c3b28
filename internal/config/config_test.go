package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bluekompass/bluekompass/internal/editor"
	"github.com/bluekompass/bluekompass/pkg/shape"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bluekompass.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, shape.DefaultStyle(), cfg.Style.ShapeStyle())
	assert.Equal(t, editor.ModeSelect, cfg.Editor.Mode())
	assert.Equal(t, 500*time.Millisecond, cfg.Watch.Debounce.Std())
	assert.Equal(t, logrus.InfoLevel, cfg.Log.ParsedLevel())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[window]
title = "Survey"

[editor]
select_threshold = 6.5
initial_mode = "Circle"

[style]
stroke_width = 2.0
selected = "#ff000080"
outline = "00ff00"

[watch]
debounce = "1.5s"

[log]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Survey", cfg.Window.Title)
	assert.Equal(t, 1400, cfg.Window.Width, "missing keys keep their default")
	assert.Equal(t, 6.5, cfg.Editor.SelectThreshold)
	assert.Equal(t, editor.DefaultThreshold, cfg.Editor.PointThreshold)
	assert.Equal(t, editor.ModeCircle, cfg.Editor.Mode())
	assert.Equal(t, 1500*time.Millisecond, cfg.Watch.Debounce.Std())
	assert.Equal(t, logrus.DebugLevel, cfg.Log.ParsedLevel())

	style := cfg.Style.ShapeStyle()
	assert.Equal(t, 2.0, style.StrokeWidth)
	assert.Equal(t, color.RGBA{255, 0, 0, 128}, style.Selected)
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, style.Outline)
	assert.Equal(t, 512, style.CircleSegments)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", `[window`},
		{"unknown key", "[editor]\nsnap = true\n"},
		{"bad color", "[style]\nstroke = \"#12345\"\n"},
		{"bad hex", "[style]\nstroke = \"#gggggg\"\n"},
		{"bad duration", "[watch]\ndebounce = \"soon\"\n"},
		{"bad mode", "[editor]\ninitial_mode = \"polygon\"\n"},
		{"zero threshold", "[editor]\nselect_threshold = 0.0\n"},
		{"few segments", "[style]\ncircle_segments = 2\n"},
		{"bad level", "[log]\nlevel = \"loud\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Window.Width = 0
	cfg.Editor.PointThreshold = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window size")
	assert.Contains(t, err.Error(), "point_threshold")
}

func TestValidateUnknownMode(t *testing.T) {
	cfg := Default()
	cfg.Editor.InitialMode = "erase"
	assert.ErrorIs(t, cfg.Validate(), editor.ErrUnknownMode)
}

func TestColorText(t *testing.T) {
	tests := []struct {
		text     string
		expected Color
	}{
		{"#2e65ff", Color{46, 101, 255, 255}},
		{"#000000", Color{0, 0, 0, 255}},
		{"#ffffff00", Color{255, 255, 255, 0}},
		{" #FFAA00 ", Color{255, 170, 0, 255}},
	}

	for _, tt := range tests {
		var c Color
		if err := c.UnmarshalText([]byte(tt.text)); err != nil {
			t.Fatalf("UnmarshalText(%q) failed: %v", tt.text, err)
		}
		if c != tt.expected {
			t.Errorf("UnmarshalText(%q) failed: expected %v, got %v", tt.text, tt.expected, c)
		}
	}

	text, err := Color{46, 101, 255, 255}.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#2e65ff", string(text))

	text, err = Color{1, 2, 3, 4}.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#01020304", string(text))
}

func TestEditorOptions(t *testing.T) {
	cfg := Default()
	cfg.Editor.InitialMode = "line"

	e := editor.New(cfg.Editor.Options()...)
	assert.Equal(t, editor.ModeLine, e.Mode())
}

func TestLoadOrDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := writeConfig(t, "[window]\ntitle = \"Custom\"\n")
	cfg, err = LoadOrDefault(path)
	require.NoError(t, err)
	assert.Equal(t, "Custom", cfg.Window.Title)
}

func TestConfigureLogger(t *testing.T) {
	logger := logrus.New()
	LogConfig{Level: "warn"}.Configure(logger)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}
