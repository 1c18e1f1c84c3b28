package app

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/bluekompass/bluekompass/pkg/imageio"
	"github.com/bluekompass/bluekompass/pkg/watcher"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"
)

// setupFileWatcher watches the background image for changes
func (app *App) setupFileWatcher(ctx context.Context) error {
	fw, err := watcher.NewFileWatcher(app.config.Watch.Debounce.Std(), app.log)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Runs on the watcher goroutine, decoding happens there too
	callback := func(changedFile string) {
		app.loadInBackground(changedFile)
	}

	if err := fw.Watch([]string{app.FileWatch.imagePath}, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch files: %w", err)
	}

	fw.Start(ctx)
	app.FileWatch.fileWatcher = fw
	app.log.WithField("file", app.FileWatch.imagePath).Info("watching image for changes")
	return nil
}

// loadInBackground decodes path and hands the result to the main thread
func (app *App) loadInBackground(path string) {
	go func() {
		img, err := imageio.Load(path)
		result := loadResult{path: path, image: img, err: err}

		// Keep only the newest result
		for {
			select {
			case app.FileWatch.loaded <- result:
				return
			default:
				select {
				case <-app.FileWatch.loaded:
				default:
				}
			}
		}
	}()
}

// openImage starts loading a new background image
func (app *App) openImage(path string) {
	if abs, err := watcher.Resolve(path); err == nil {
		path = abs
	}
	app.FileWatch.isLoading = true
	app.FileWatch.loadingStartTime = time.Now()
	app.loadInBackground(path)
}

// applyLoadedImage swaps in an image decoded in the background (must be
// called on main thread)
func (app *App) applyLoadedImage(ctx context.Context) {
	var result loadResult
	select {
	case result = <-app.FileWatch.loaded:
	default:
		return
	}
	app.FileWatch.isLoading = false

	if result.err != nil {
		app.log.WithError(result.err).WithField("file", result.path).Error("failed to load image")
		app.notify("Failed to load image")
		return
	}

	switched := result.path != app.FileWatch.imagePath
	app.applyImage(result.path, result.image)

	if switched && app.config.Watch.Enabled {
		if app.FileWatch.fileWatcher != nil {
			app.FileWatch.fileWatcher.Close()
			app.FileWatch.fileWatcher = nil
		}
		if err := app.setupFileWatcher(ctx); err != nil {
			app.log.WithError(err).Warn("auto-reload will not be available")
		}
	}
}

// applyImage uploads img as the canvas texture. Shapes are kept; the view is
// refitted only when the canvas size changed.
func (app *App) applyImage(path string, img image.Image) {
	rlImage := rl.NewImageFromImage(img)
	texture := rl.LoadTextureFromImage(rlImage)
	rl.UnloadImage(rlImage)

	if app.Canvas.hasTexture {
		rl.UnloadTexture(app.Canvas.texture)
	}
	app.Canvas.texture = texture
	app.Canvas.hasTexture = true
	app.Canvas.image = img

	bounds := img.Bounds()
	width, height := float64(bounds.Dx()), float64(bounds.Dy())
	if width != app.Canvas.width || height != app.Canvas.height {
		app.Canvas.width = width
		app.Canvas.height = height
		app.Canvas.needsFit = true
	}

	app.FileWatch.imagePath = path
	app.log.WithFields(logrus.Fields{
		"file":   path,
		"width":  bounds.Dx(),
		"height": bounds.Dy(),
	}).Info("image loaded")
	if !app.FileWatch.loadingStartTime.IsZero() {
		app.notify(fmt.Sprintf("Loaded in %.2fs", time.Since(app.FileWatch.loadingStartTime).Seconds()))
	}
}

// handleDroppedFiles opens an image dropped onto the window
func (app *App) handleDroppedFiles() {
	if !rl.IsFileDropped() {
		return
	}
	files := rl.LoadDroppedFiles()
	rl.UnloadDroppedFiles()

	for _, file := range files {
		if imageio.Supported(file) {
			app.openImage(file)
			return
		}
	}
	app.notify("Unsupported file type")
}
