package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bluekompass/bluekompass/pkg/builder"
)

// ErrUnknownMode is returned by ParseMode for unrecognized names
var ErrUnknownMode = errors.New("unknown mode")

// Mode is the current interaction mode
type Mode int

const (
	ModeDrag Mode = iota
	ModeSelect
	ModeLine
	ModeCircle
)

// Modes lists every mode in toolbar order
var Modes = []Mode{ModeDrag, ModeSelect, ModeLine, ModeCircle}

func (m Mode) String() string {
	switch m {
	case ModeDrag:
		return "drag"
	case ModeSelect:
		return "select"
	case ModeLine:
		return "line"
	case ModeCircle:
		return "circle"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name as written in config files and scripts
func ParseMode(name string) (Mode, error) {
	for _, m := range Modes {
		if strings.EqualFold(strings.TrimSpace(name), m.String()) {
			return m, nil
		}
	}
	return ModeSelect, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// strategy returns the builder strategy of a construction mode
func (m Mode) strategy() (builder.Strategy, bool) {
	switch m {
	case ModeLine:
		return builder.StrategyLine, true
	case ModeCircle:
		return builder.StrategyCircle, true
	}
	return 0, false
}

// Constructs reports whether the mode builds new shapes
func (m Mode) Constructs() bool {
	_, ok := m.strategy()
	return ok
}
