// Package script replays recorded input frames against an editor without a
// window. Scripts are TOML files:
//
//	[canvas]
//	width = 200
//	height = 100
//
//	[[frame]]
//	mode = "line"
//	cursor = [10.0, 20.0]
//	click = true
//
//	[[frame]]
//	cursor = [150.0, 20.0]
//	click = true
package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/bluekompass/bluekompass/internal/editor"
	"github.com/bluekompass/bluekompass/pkg/geometry"
	"github.com/sirupsen/logrus"
)

// ErrInvalidFrame is returned for frames that cannot be turned into input
var ErrInvalidFrame = errors.New("invalid frame")

// Script is a sequence of input frames
type Script struct {
	Canvas Canvas  `toml:"canvas"`
	Frames []Frame `toml:"frame"`
}

// Canvas is the size of the blank canvas used when no image is given
type Canvas struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Frame is one frame of input. A frame without a cursor has the pointer
// outside of the canvas. Mode, when set, is applied before the input.
type Frame struct {
	Mode      string    `toml:"mode"`
	Cursor    []float64 `toml:"cursor"`
	Click     bool      `toml:"click"`
	Hold      bool      `toml:"hold"`
	Secondary bool      `toml:"secondary"`
	Delete    bool      `toml:"delete"`
	Repeat    int       `toml:"repeat"`
}

// Input converts the frame to editor input
func (f Frame) Input() (editor.Input, error) {
	in := editor.Input{
		PrimaryClicked:   f.Click,
		PrimaryDown:      f.Hold,
		SecondaryClicked: f.Secondary,
		DeletePressed:    f.Delete,
	}
	if f.Click && f.Hold {
		return in, fmt.Errorf("%w: click and hold are exclusive", ErrInvalidFrame)
	}
	switch len(f.Cursor) {
	case 0:
	case 2:
		in = in.At(geometry.NewVector2(f.Cursor[0], f.Cursor[1]))
	default:
		return in, fmt.Errorf("%w: cursor needs 2 coordinates, got %d", ErrInvalidFrame, len(f.Cursor))
	}
	return in, nil
}

// Parse reads a script
func Parse(r io.Reader) (*Script, error) {
	s := &Script{Canvas: Canvas{Width: 800, Height: 600}}
	meta, err := toml.NewDecoder(r).Decode(s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %s", ErrInvalidFrame, undecoded[0])
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads the script at path
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Validate checks every frame
func (s *Script) Validate() error {
	if s.Canvas.Width <= 0 || s.Canvas.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", s.Canvas.Width, s.Canvas.Height)
	}
	for i, f := range s.Frames {
		if f.Mode != "" {
			if _, err := editor.ParseMode(f.Mode); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
		}
		if f.Repeat < 0 {
			return fmt.Errorf("frame %d: %w: negative repeat", i, ErrInvalidFrame)
		}
		if _, err := f.Input(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}

// Result counts what the replayed frames did
type Result struct {
	Frames  int
	Actions map[editor.Action]int
}

// Run feeds every frame to e in order. A frame with a repeat count is fed
// that many times.
func Run(e *editor.Editor, s *Script, log logrus.FieldLogger) (Result, error) {
	result := Result{Actions: make(map[editor.Action]int)}
	for i, f := range s.Frames {
		if f.Mode != "" {
			mode, err := editor.ParseMode(f.Mode)
			if err != nil {
				return result, fmt.Errorf("frame %d: %w", i, err)
			}
			e.SetMode(mode)
		}
		in, err := f.Input()
		if err != nil {
			return result, fmt.Errorf("frame %d: %w", i, err)
		}

		for range max(f.Repeat, 1) {
			intent := e.Update(in)
			result.Frames++
			if intent.Action != editor.ActionNone {
				result.Actions[intent.Action]++
				log.WithFields(logrus.Fields{"frame": i, "action": intent.Action}).Debug("replayed frame")
			}
		}
	}
	return result, nil
}
