package app

import (
	"image"
	"time"

	"github.com/bluekompass/bluekompass/internal/editor"
	"github.com/bluekompass/bluekompass/internal/gesture"
	"github.com/bluekompass/bluekompass/pkg/geometry"
	"github.com/bluekompass/bluekompass/pkg/viewport"
	"github.com/bluekompass/bluekompass/pkg/watcher"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// CanvasState holds the background image and how it is mapped to the screen
type CanvasState struct {
	viewport   viewport.Viewport
	texture    rl.Texture2D
	hasTexture bool
	image      image.Image // Decoded background, used for export
	width      float64     // Canvas size in logical units
	height     float64
	needsFit   bool // Fit the canvas into the window on the next frame
}

// InteractionState holds mouse and interaction state
type InteractionState struct {
	tracker    *gesture.Tracker
	cursor     *geometry.Vector2 // Pointer in canvas space, nil outside of the canvas
	isPanning  bool
	overUI     bool
	lastIntent editor.RenderIntent
}

// loadResult is an image decoded in the background
type loadResult struct {
	path  string
	image image.Image
	err   error
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	imagePath        string               // Background image, empty for a blank canvas
	fileWatcher      *watcher.FileWatcher // File watcher for auto-reload
	isLoading        bool                 // A decode is running in the background
	loadingStartTime time.Time
	loaded           chan loadResult // Decoded images handed to the main thread
}

// UIState holds UI-related state
type UIState struct {
	toolbar     []toolbarButton
	message     string // Transient status line
	messageTime time.Time
}

// toolbarButton switches to a mode when clicked
type toolbarButton struct {
	mode   editor.Mode
	label  string
	bounds rl.Rectangle
}
