// Package export rasterizes shape annotations onto their background image.
package export

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/bluekompass/bluekompass/pkg/geometry"
	"github.com/bluekompass/bluekompass/pkg/shape"
	"github.com/gogpu/gg"
)

// Render draws prims over a copy of base. Primitive coordinates are image
// pixels relative to the image origin, and sizes are drawn at scale 1.
func Render(base image.Image, prims []shape.Primitive) (image.Image, error) {
	if base == nil {
		return nil, errors.New("no base image")
	}
	dc := gg.NewContextForImage(base)
	defer dc.Close()

	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	for i, p := range prims {
		if err := draw(dc, p); err != nil {
			return nil, fmt.Errorf("failed to draw primitive %d: %w", i, err)
		}
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("failed to flush: %w", err)
	}
	return dc.Image(), nil
}

// Blank returns a white canvas for annotating without a background image
func Blank(width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	dc := gg.NewContext(width, height)
	defer dc.Close()
	dc.ClearWithColor(gg.White)
	return dc.Image(), nil
}

// SavePNG renders prims over base and writes the result to path
func SavePNG(path string, base image.Image, prims []shape.Primitive) error {
	img, err := Render(base, prims)
	if err != nil {
		return err
	}
	dc := gg.NewContextForImage(img)
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// EncodePNG renders prims over base and writes the PNG to w
func EncodePNG(w io.Writer, base image.Image, prims []shape.Primitive) error {
	img, err := Render(base, prims)
	if err != nil {
		return err
	}
	dc := gg.NewContextForImage(img)
	defer dc.Close()
	return dc.EncodePNG(w)
}

func draw(dc *gg.Context, p shape.Primitive) error {
	switch p.Kind {
	case shape.PrimitivePolyline:
		return polyline(dc, p)
	case shape.PrimitiveMarker:
		for _, pt := range p.Points {
			if !pt.IsFinite() {
				continue
			}
			var err error
			if p.Marker == shape.MarkerCross {
				err = cross(dc, pt, p)
			} else {
				err = dot(dc, pt, p)
			}
			if err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown primitive kind %d", p.Kind)
}

func polyline(dc *gg.Context, p shape.Primitive) error {
	if len(p.Points) < 2 {
		return nil
	}
	for i, pt := range p.Points {
		if !pt.IsFinite() {
			return nil
		}
		if i == 0 {
			dc.MoveTo(pt.X, pt.Y)
		} else {
			dc.LineTo(pt.X, pt.Y)
		}
	}
	dc.SetColor(p.Color)
	dc.SetLineWidth(p.Width)
	return dc.Stroke()
}

// dot draws a filled disc on top of a slightly larger disc in the outline
// color
func dot(dc *gg.Context, pt geometry.Vector2, p shape.Primitive) error {
	if p.OutlineWidth > 0 {
		dc.DrawCircle(pt.X, pt.Y, p.Radius+p.OutlineWidth)
		dc.SetColor(p.Outline)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	dc.DrawCircle(pt.X, pt.Y, p.Radius)
	dc.SetColor(p.Color)
	return dc.Fill()
}

func cross(dc *gg.Context, pt geometry.Vector2, p shape.Primitive) error {
	r := p.Radius
	dc.DrawLine(pt.X-r, pt.Y, pt.X+r, pt.Y)
	dc.DrawLine(pt.X, pt.Y-r, pt.X, pt.Y+r)
	dc.SetColor(p.Color)
	dc.SetLineWidth(max(p.Width, 1))
	return dc.Stroke()
}
