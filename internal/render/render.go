// Package render rasterizes a sketch scene. Rendering is a pure function of
// the frame: the same elements, selection, preview and background always
// produce the same pixels.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"AccidentSketch/internal/fonts"
	"AccidentSketch/internal/geometry"
	"AccidentSketch/internal/state"
)

// Supersample is the ratio between backing pixels and logical units.
const Supersample = 2.0

const (
	strokeWidth     = 2.0
	labelSize       = 10.0
	arrowHeadLength = 10.0
	arrowHeadAngle  = math.Pi / 6
)

var fallbackBackground = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}

// Size is a canvas size in logical units.
type Size struct {
	Width  int
	Height int
}

// Backing returns the pixel size of the supersampled backing store.
func (s Size) Backing() (int, int) {
	return int(float64(s.Width) * Supersample), int(float64(s.Height) * Supersample)
}

// ArrowPreview is an arrow being drawn that is not part of the scene yet.
type ArrowPreview struct {
	Start, End geometry.Point
}

// Frame is everything one render depends on.
type Frame struct {
	Elements   []state.Element
	SelectedID string
	Preview    *ArrowPreview
	Background image.Image
}

// Renderer draws frames at a fixed logical size. It keeps the last
// resampled background, so it must not be shared between goroutines.
type Renderer struct {
	size      Size
	textFace  font.Face
	labelFace font.Face

	bg       scaledBackground
	bgScales int
}

func NewRenderer(size Size) *Renderer {
	return &Renderer{
		size:      size,
		textFace:  fonts.Regular(state.TextSize),
		labelFace: fonts.Bold(labelSize),
	}
}

func (r *Renderer) Size() Size {
	return r.size
}

// Resize changes the logical canvas size used by later renders.
func (r *Renderer) Resize(size Size) {
	r.size = size
}

// Render draws f into a new image of the backing size.
func (r *Renderer) Render(f Frame) *image.RGBA {
	w, h := r.size.Backing()
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	r.paintBackground(img, f.Background)

	dc := gg.NewContextForRGBA(img)
	dc.Scale(Supersample, Supersample)
	dc.SetLineCap(gg.LineCapRound)

	for _, e := range f.Elements {
		r.drawElement(dc, e)
	}

	if f.Preview != nil {
		drawArrow(dc, f.Preview.Start, f.Preview.End, state.ArrowColor)
	}

	if f.SelectedID != "" {
		for _, e := range f.Elements {
			if v, ok := e.(state.Vehicle); ok && v.ID == f.SelectedID {
				drawSelection(dc, v)
			}
		}
	}
	return img
}

func (r *Renderer) drawElement(dc *gg.Context, e state.Element) {
	switch el := e.(type) {
	case state.Line:
		drawLine(dc, el)
	case state.Vehicle:
		r.drawVehicle(dc, el)
	case state.Text:
		r.drawText(dc, el)
	case state.Arrow:
		drawArrow(dc, el.Start, el.End, el.Color)
	}
}

// setLineWidth takes a width in logical units. gg strokes in device pixels.
func setLineWidth(dc *gg.Context, w float64) {
	dc.SetLineWidth(w * Supersample)
}

func setDash(dc *gg.Context, dashes ...float64) {
	scaled := make([]float64, len(dashes))
	for i, d := range dashes {
		scaled[i] = d * Supersample
	}
	dc.SetDash(scaled...)
}

func drawLine(dc *gg.Context, l state.Line) {
	if len(l.Points) < 2 {
		return
	}
	dc.Push()
	defer dc.Pop()

	dc.SetColor(l.Color)
	setLineWidth(dc, strokeWidth)
	dc.MoveTo(l.Points[0].X, l.Points[0].Y)
	for _, p := range l.Points[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.Stroke()
}

func (r *Renderer) drawText(dc *gg.Context, t state.Text) {
	if t.Text == "" {
		return
	}
	dc.Push()
	defer dc.Pop()

	dc.SetFontFace(r.textFace)
	dc.SetColor(t.Color)
	// Left aligned on the alphabetic baseline.
	dc.DrawString(t.Text, t.Position.X, t.Position.Y)
}
