package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/bluekompass/bluekompass/internal/config"
	"github.com/bluekompass/bluekompass/internal/editor"
	"github.com/bluekompass/bluekompass/pkg/export"
	"github.com/bluekompass/bluekompass/pkg/imageio"
	"github.com/bluekompass/bluekompass/pkg/viewer"
	"github.com/sirupsen/logrus"
)

type App struct {
	window fyne.Window
	view   *viewer.CanvasView
	info   *InfoPanel
	modes  *widget.RadioGroup
	log    *logrus.Logger
}

type InfoPanel struct {
	modeLabel      *widget.Label
	shapesLabel    *widget.Label
	selectionLabel *widget.Label
	pointsLabel    *widget.Label
	cursorLabel    *widget.Label
	statusLabel    *widget.Label
}

func main() {
	log := logrus.StandardLogger()
	cfg, err := config.LoadOrDefault(os.Getenv("BLUEKOMPASS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Log.Configure(log)

	a := app.New()
	w := a.NewWindow(cfg.Window.Title)

	ed := editor.New(append(cfg.Editor.Options(),
		editor.WithStyle(cfg.Style.ShapeStyle()),
		editor.WithLogger(log),
	)...)

	appInstance := &App{
		window: w,
		view:   viewer.NewCanvasView(ed, 800, 600, log),
		log:    log,
	}
	appInstance.setupMainUI()

	// Check if file was provided as argument
	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	}

	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	w.ShowAndRun()
}

func (a *App) showFileDialog() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter(imageio.Extensions))
	d.Show()
}

func (a *App) showExportDialog() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		base := a.view.Image()
		if base == nil {
			width, height := a.view.CanvasSize()
			if base, err = export.Blank(int(width), int(height)); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
		}
		if err := export.EncodePNG(writer, base, a.view.Editor().Draw()); err != nil {
			dialog.ShowError(fmt.Errorf("failed to export: %w", err), a.window)
			return
		}
		a.log.WithField("file", writer.URI().Path()).Info("snapshot exported")
		a.info.statusLabel.SetText("Exported " + writer.URI().Name())
	}, a.window)
	d.SetFileName("annotated.png")
	d.Show()
}

func (a *App) loadFile(filename string) {
	img, err := imageio.Load(filename)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	a.view.SetImage(img)
	a.window.SetTitle(fmt.Sprintf("BlueKompass - %s", filename))
	a.log.WithField("file", filename).Info("image loaded")
	a.updateInfo(editor.RenderIntent{})
}

func (a *App) setupMainUI() {
	a.info = &InfoPanel{
		modeLabel:      widget.NewLabel(""),
		shapesLabel:    widget.NewLabel(""),
		selectionLabel: widget.NewLabel(""),
		pointsLabel:    widget.NewLabel(""),
		cursorLabel:    widget.NewLabel(""),
		statusLabel:    widget.NewLabel(""),
	}
	a.info.selectionLabel.Wrapping = fyne.TextWrapWord
	a.info.statusLabel.TextStyle = fyne.TextStyle{Bold: true}

	// Mode selector
	names := make([]string, len(editor.Modes))
	for i, m := range editor.Modes {
		names[i] = m.String()
	}
	a.modes = widget.NewRadioGroup(names, func(selected string) {
		mode, err := editor.ParseMode(selected)
		if err != nil || mode == a.view.Editor().Mode() {
			return
		}
		a.view.SetMode(mode)
	})
	a.modes.Required = true
	a.modes.SetSelected(a.view.Editor().Mode().String())

	a.view.SetOnChange(a.updateInfo)

	openButton := widget.NewButton("Open Image", a.showFileDialog)
	exportButton := widget.NewButton("Export PNG", a.showExportDialog)
	fitButton := widget.NewButton("Fit", a.view.Fit)
	deleteButton := widget.NewButton("Delete Selected", func() {
		if a.view.Editor().DeleteSelected() {
			a.updateInfo(editor.RenderIntent{Action: editor.ActionDeleted})
			a.view.Refresh()
		}
	})

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Line: click two points\n" +
			"• Circle: click three points on the circle\n" +
			"• Select: click a shape, drag its points\n" +
			"• Drag: pan the image, scroll to zoom\n" +
			"• Delete, Backspace or D removes the selection\n" +
			"• Right click or Esc cancels",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Mode:"),
		a.modes,
		widget.NewSeparator(),
		a.info.modeLabel,
		a.info.shapesLabel,
		a.info.selectionLabel,
		a.info.pointsLabel,
		a.info.cursorLabel,
		a.info.statusLabel,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
		exportButton,
		fitButton,
		deleteButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(280, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.view,     // center
	)

	a.window.SetContent(content)
	a.window.Canvas().Focus(a.view)
	a.updateInfo(editor.RenderIntent{})
}

func (a *App) updateInfo(intent editor.RenderIntent) {
	ed := a.view.Editor()

	if a.modes.Selected != ed.Mode().String() {
		a.modes.SetSelected(ed.Mode().String())
	}
	a.info.modeLabel.SetText(fmt.Sprintf("Mode: %s", ed.Mode()))
	a.info.shapesLabel.SetText(fmt.Sprintf("Shapes: %d", ed.Len()))

	if shapeIndex, _, ok := ed.Selection(); ok {
		s, _ := ed.Shape(shapeIndex)
		a.info.selectionLabel.SetText(fmt.Sprintf("Selected: #%d %s", shapeIndex, s))
	} else {
		a.info.selectionLabel.SetText("Selected: none")
	}

	if ed.Mode().Constructs() {
		a.info.pointsLabel.SetText(fmt.Sprintf("Points: %d", ed.PendingPoints()))
	} else {
		a.info.pointsLabel.SetText("")
	}

	if c, ok := a.view.Cursor(); ok {
		a.info.cursorLabel.SetText(fmt.Sprintf("Cursor: (%.1f, %.1f)", c.X, c.Y))
	} else {
		a.info.cursorLabel.SetText("Cursor: -")
	}

	switch intent.Action {
	case editor.ActionRejected:
		a.info.statusLabel.SetText("Points are collinear, circle discarded")
	case editor.ActionShapeBuilt:
		a.info.statusLabel.SetText("Shape created")
	case editor.ActionDeleted:
		a.info.statusLabel.SetText("Shape deleted")
	case editor.ActionCancelled:
		a.info.statusLabel.SetText("Cancelled")
	}
}
