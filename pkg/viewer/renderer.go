package viewer

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/bluekompass/bluekompass/pkg/geometry"
	"github.com/bluekompass/bluekompass/pkg/shape"
)

// canvasRenderer implements fyne.WidgetRenderer
type canvasRenderer struct {
	view       *CanvasView
	background *canvas.Image
	sheet      *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *canvasRenderer) Layout(size fyne.Size) {
	r.view.size = size
	if !r.view.fitted {
		r.view.Fit()
	}
	r.rebuild()
}

func (r *canvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

func (r *canvasRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.view)
}

func (r *canvasRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *canvasRenderer) Destroy() {}

// rebuild recreates the canvas objects from the view state
func (r *canvasRenderer) rebuild() {
	v := r.view
	r.objects = make([]fyne.CanvasObject, 0, len(r.objects))

	origin := v.screen(geometry.Vector2{})
	size := fyne.NewSize(float32(v.width*v.viewport.Scale), float32(v.height*v.viewport.Scale))

	if v.image != nil {
		if r.background == nil || r.background.Image != v.image {
			r.background = canvas.NewImageFromImage(v.image)
			r.background.FillMode = canvas.ImageFillStretch
		}
		r.background.Move(origin)
		r.background.Resize(size)
		r.objects = append(r.objects, r.background)
	} else {
		if r.sheet == nil {
			r.sheet = canvas.NewRectangle(color.White)
		}
		r.sheet.Move(origin)
		r.sheet.Resize(size)
		r.objects = append(r.objects, r.sheet)
	}

	for _, p := range v.editor.Draw() {
		r.objects = append(r.objects, r.primitive(p)...)
	}
	for _, p := range v.preview {
		r.objects = append(r.objects, r.primitive(p)...)
	}
}

// primitive converts a render primitive to canvas objects
func (r *canvasRenderer) primitive(p shape.Primitive) []fyne.CanvasObject {
	var objects []fyne.CanvasObject
	switch p.Kind {
	case shape.PrimitivePolyline:
		for i := 1; i < len(p.Points); i++ {
			a, b := p.Points[i-1], p.Points[i]
			if !a.IsFinite() || !b.IsFinite() {
				continue
			}
			objects = append(objects, r.line(a, b, p.Color, p.Width))
		}
	case shape.PrimitiveMarker:
		for _, pt := range p.Points {
			if !pt.IsFinite() {
				continue
			}
			if p.Marker == shape.MarkerCross {
				objects = append(objects, r.cross(pt, p)...)
			} else {
				objects = append(objects, r.dot(pt, p))
			}
		}
	}
	return objects
}

func (r *canvasRenderer) line(a, b geometry.Vector2, col color.RGBA, width float64) *canvas.Line {
	line := canvas.NewLine(col)
	line.StrokeWidth = float32(width)
	line.Position1 = r.view.screen(a)
	line.Position2 = r.view.screen(b)
	return line
}

func (r *canvasRenderer) dot(center geometry.Vector2, p shape.Primitive) *canvas.Circle {
	marker := canvas.NewCircle(p.Color)
	marker.StrokeColor = p.Outline
	marker.StrokeWidth = float32(p.OutlineWidth)
	size := float32(2 * (p.Radius + p.OutlineWidth))
	pos := r.view.screen(center)
	marker.Resize(fyne.NewSize(size, size))
	marker.Move(fyne.NewPos(pos.X-size/2, pos.Y-size/2))
	return marker
}

func (r *canvasRenderer) cross(center geometry.Vector2, p shape.Primitive) []fyne.CanvasObject {
	pos := r.view.screen(center)
	radius := float32(p.Radius)
	width := float32(max(p.Width, 1))

	horizontal := canvas.NewLine(p.Color)
	horizontal.StrokeWidth = width
	horizontal.Position1 = fyne.NewPos(pos.X-radius, pos.Y)
	horizontal.Position2 = fyne.NewPos(pos.X+radius, pos.Y)

	vertical := canvas.NewLine(p.Color)
	vertical.StrokeWidth = width
	vertical.Position1 = fyne.NewPos(pos.X, pos.Y-radius)
	vertical.Position2 = fyne.NewPos(pos.X, pos.Y+radius)

	return []fyne.CanvasObject{horizontal, vertical}
}
