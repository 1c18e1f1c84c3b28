// Package app is the raylib window that hosts the shape editor.
package app

import (
	"context"
	"fmt"

	"github.com/bluekompass/bluekompass/internal/config"
	"github.com/bluekompass/bluekompass/internal/editor"
	"github.com/bluekompass/bluekompass/internal/gesture"
	"github.com/bluekompass/bluekompass/pkg/imageio"
	"github.com/bluekompass/bluekompass/pkg/viewport"
	"github.com/bluekompass/bluekompass/pkg/watcher"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"
)

// Canvas size used when no image is open
const (
	blankWidth  = 800
	blankHeight = 600
)

var backgroundColor = rl.NewColor(40, 44, 52, 255)

type App struct {
	Editor      *editor.Editor
	Canvas      CanvasState
	Interaction InteractionState
	FileWatch   FileWatchState
	UI          UIState

	config *config.Config
	log    logrus.FieldLogger
}

// Options configures Run
type Options struct {
	ImagePath string // Optional background image
	Config    *config.Config
	Log       logrus.FieldLogger
}

// Run opens the window and blocks until it is closed
func Run(opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	app := &App{
		Editor: editor.New(append(cfg.Editor.Options(),
			editor.WithStyle(cfg.Style.ShapeStyle()),
			editor.WithLogger(log),
		)...),
		Canvas: CanvasState{
			viewport: viewport.New(),
			width:    blankWidth,
			height:   blankHeight,
			needsFit: true,
		},
		Interaction: InteractionState{
			tracker: gesture.NewTracker(),
		},
		FileWatch: FileWatchState{
			loaded: make(chan loadResult, 1),
		},
		config: cfg,
		log:    log,
	}

	// Decode before opening the window so a bad path fails fast
	if opts.ImagePath != "" {
		path, err := watcher.Resolve(opts.ImagePath)
		if err != nil {
			return err
		}
		img, err := imageio.Load(path)
		if err != nil {
			return err
		}
		app.FileWatch.imagePath = path
		app.Canvas.image = img
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetTargetFPS(int32(cfg.Window.TargetFPS))
	// Escape cancels construction instead of closing the window
	rl.SetExitKey(rl.KeyNull)

	if app.Canvas.image != nil {
		app.applyImage(app.FileWatch.imagePath, app.Canvas.image)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Watch.Enabled && app.FileWatch.imagePath != "" {
		if err := app.setupFileWatcher(ctx); err != nil {
			log.WithError(err).Warn("auto-reload will not be available")
		}
	}
	defer func() {
		if app.FileWatch.fileWatcher != nil {
			app.FileWatch.fileWatcher.Close()
		}
	}()

	app.buildToolbar()
	app.notify(fmt.Sprintf("Mode: %s", app.Editor.Mode()))

	// Main loop
	for !rl.WindowShouldClose() {
		// Check for Ctrl+C to exit
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		// Apply a reloaded image if ready (must be on main thread)
		app.applyLoadedImage(ctx)
		app.handleDroppedFiles()

		if app.Canvas.needsFit {
			app.fitCanvas()
		}

		// Update
		app.handleInput()

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)

		app.drawCanvas()
		app.drawPrimitives(app.Editor.Draw())
		app.drawPrimitives(app.Interaction.lastIntent.Preview)
		app.drawUI()

		rl.EndDrawing()
	}

	// Cleanup
	if app.Canvas.hasTexture {
		rl.UnloadTexture(app.Canvas.texture)
	}
	rl.CloseWindow()
	return nil
}
