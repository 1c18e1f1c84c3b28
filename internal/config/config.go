// Package config loads the application settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/bluekompass/bluekompass/internal/editor"
	"github.com/bluekompass/bluekompass/pkg/shape"
	"github.com/sirupsen/logrus"
)

// Config holds every setting of the application
type Config struct {
	Window WindowConfig `toml:"window"`
	Editor EditorConfig `toml:"editor"`
	Style  StyleConfig  `toml:"style"`
	Watch  WatchConfig  `toml:"watch"`
	Log    LogConfig    `toml:"log"`
}

type WindowConfig struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	TargetFPS int    `toml:"target_fps"`
}

type EditorConfig struct {
	SelectThreshold float64 `toml:"select_threshold"`
	PointThreshold  float64 `toml:"point_threshold"`
	InitialMode     string  `toml:"initial_mode"`
}

type StyleConfig struct {
	StrokeWidth    float64 `toml:"stroke_width"`
	MarkerRadius   float64 `toml:"marker_radius"`
	OutlineWidth   float64 `toml:"outline_width"`
	CircleSegments int     `toml:"circle_segments"`
	Stroke         Color   `toml:"stroke"`
	Marker         Color   `toml:"marker"`
	Selected       Color   `toml:"selected"`
	Outline        Color   `toml:"outline"`
	Center         Color   `toml:"center"`
	Preview        Color   `toml:"preview"`
}

type WatchConfig struct {
	Enabled  bool     `toml:"enabled"`
	Debounce Duration `toml:"debounce"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in settings
func Default() *Config {
	style := shape.DefaultStyle()
	return &Config{
		Window: WindowConfig{
			Width:     1400,
			Height:    900,
			Title:     "BlueKompass",
			TargetFPS: 60,
		},
		Editor: EditorConfig{
			SelectThreshold: editor.DefaultThreshold,
			PointThreshold:  editor.DefaultThreshold,
			InitialMode:     editor.ModeSelect.String(),
		},
		Style: StyleConfig{
			StrokeWidth:    style.StrokeWidth,
			MarkerRadius:   style.MarkerRadius,
			OutlineWidth:   style.OutlineWidth,
			CircleSegments: style.CircleSegments,
			Stroke:         Color(style.Stroke),
			Marker:         Color(style.Marker),
			Selected:       Color(style.Selected),
			Outline:        Color(style.Outline),
			Center:         Color(style.Center),
			Preview:        Color(style.Preview),
		},
		Watch: WatchConfig{
			Enabled:  true,
			Debounce: Duration(500 * time.Millisecond),
		},
		Log: LogConfig{
			Level: logrus.InfoLevel.String(),
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default value.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns the per-user config file location
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "bluekompass", "config.toml"), nil
}

// LoadOrDefault loads path, or the per-user config file if path is empty
// and that file exists, or else returns the defaults
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	userPath, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	if _, err := os.Stat(userPath); err != nil {
		return Default(), nil
	}
	return Load(userPath)
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.TargetFPS <= 0 {
		errs = append(errs, fmt.Errorf("target_fps must be positive, got %d", c.Window.TargetFPS))
	}
	if c.Editor.SelectThreshold <= 0 {
		errs = append(errs, fmt.Errorf("select_threshold must be positive, got %v", c.Editor.SelectThreshold))
	}
	if c.Editor.PointThreshold <= 0 {
		errs = append(errs, fmt.Errorf("point_threshold must be positive, got %v", c.Editor.PointThreshold))
	}
	if _, err := editor.ParseMode(c.Editor.InitialMode); err != nil {
		errs = append(errs, fmt.Errorf("initial_mode: %w", err))
	}
	if c.Style.StrokeWidth <= 0 || c.Style.MarkerRadius <= 0 || c.Style.OutlineWidth < 0 {
		errs = append(errs, errors.New("style sizes must be positive"))
	}
	if c.Style.CircleSegments < 3 {
		errs = append(errs, fmt.Errorf("circle_segments must be at least 3, got %d", c.Style.CircleSegments))
	}
	if c.Watch.Debounce < 0 {
		errs = append(errs, fmt.Errorf("debounce must not be negative, got %v", c.Watch.Debounce))
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Mode returns the parsed initial mode
func (e EditorConfig) Mode() editor.Mode {
	mode, err := editor.ParseMode(e.InitialMode)
	if err != nil {
		return editor.ModeSelect
	}
	return mode
}

// Options returns the editor options for these settings
func (e EditorConfig) Options() []editor.Option {
	return []editor.Option{
		editor.WithThresholds(e.SelectThreshold, e.PointThreshold),
		editor.WithMode(e.Mode()),
	}
}

// ShapeStyle converts the style settings for the shape renderer
func (s StyleConfig) ShapeStyle() shape.Style {
	return shape.Style{
		Stroke:         color.RGBA(s.Stroke),
		Marker:         color.RGBA(s.Marker),
		Selected:       color.RGBA(s.Selected),
		Outline:        color.RGBA(s.Outline),
		Center:         color.RGBA(s.Center),
		Preview:        color.RGBA(s.Preview),
		StrokeWidth:    s.StrokeWidth,
		MarkerRadius:   s.MarkerRadius,
		OutlineWidth:   s.OutlineWidth,
		CircleSegments: s.CircleSegments,
	}
}

// ParsedLevel returns the log level, info if it is invalid
func (l LogConfig) ParsedLevel() logrus.Level {
	level, err := logrus.ParseLevel(l.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// Configure applies the level and the text format used by every command
func (l LogConfig) Configure(logger *logrus.Logger) {
	logger.SetLevel(l.ParsedLevel())
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})
}

// Color is an RGBA color written as "#rrggbb" or "#rrggbbaa"
type Color color.RGBA

func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color %q: expected #rrggbb or #rrggbbaa", text)
	}
	if len(s) == 6 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", text, err)
	}
	*c = Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return nil
}

func (c Color) MarshalText() ([]byte, error) {
	if c.A == 255 {
		return fmt.Appendf(nil, "#%02x%02x%02x", c.R, c.G, c.B), nil
	}
	return fmt.Appendf(nil, "#%02x%02x%02x%02x", c.R, c.G, c.B, c.A), nil
}

// Duration is a time.Duration written as a string such as "500ms"
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
