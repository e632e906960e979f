package render

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"AccidentSketch/internal/geometry"
	"AccidentSketch/internal/state"
)

const (
	wheelWidth  = 5.0
	wheelHeight = 3.0

	lightRadius = 1.5
	lightInset  = 3.0

	selectionPadding = 5.0
	handleRadius     = 4.0
)

var (
	headlightColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	taillightColor = color.RGBA{R: 0xff, A: 0xff}
	wheelColor     = color.RGBA{A: 0xff}
	labelColor     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	selectionColor = color.RGBA{R: 0x00, G: 0x7b, B: 0xff, A: 0xff}
)

type bodyPalette struct {
	fill, stroke color.RGBA
}

var palettes = map[state.Label]bodyPalette{
	state.LabelA: {
		fill:   color.RGBA{R: 0x00, G: 0x66, B: 0xcc, A: 0xff},
		stroke: color.RGBA{R: 0x00, G: 0x52, B: 0xa3, A: 0xff},
	},
	state.LabelB: {
		fill:   color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff},
		stroke: color.RGBA{R: 0xb9, G: 0x1c, B: 0x1c, A: 0xff},
	},
}

// BodyColor returns the fill colour used for a vehicle label.
func BodyColor(label state.Label) color.RGBA {
	if p, ok := palettes[label]; ok {
		return p.fill
	}
	return palettes[state.LabelA].fill
}

func (r *Renderer) drawVehicle(dc *gg.Context, v state.Vehicle) {
	r.drawVehicleBody(dc, v)
	drawLights(dc, v)
}

// drawVehicleBody draws everything that lives in the vehicle's own frame.
func (r *Renderer) drawVehicleBody(dc *gg.Context, v state.Vehicle) {
	dc.Push()
	defer dc.Pop()

	dc.Translate(v.Position.X, v.Position.Y)
	dc.Rotate(v.Rotation)
	scale := v.EffectiveScale()
	dc.Scale(scale, scale)

	p, ok := palettes[v.Label]
	if !ok {
		p = palettes[state.LabelA]
	}
	w, h := state.VehicleWidth, state.VehicleHeight

	dc.DrawRectangle(-w/2, -h/2, w, h)
	dc.SetColor(p.fill)
	dc.FillPreserve()
	dc.SetColor(p.stroke)
	// Stroke widths ignore the context scale, so this stays one logical unit wide.
	setLineWidth(dc, 1)
	dc.Stroke()

	wheelX := w * 0.3
	wheelY := h / 2
	dc.SetColor(wheelColor)
	for _, x := range []float64{-wheelX, wheelX} {
		dc.DrawRectangle(x-wheelWidth/2, -wheelY-wheelHeight, wheelWidth, wheelHeight)
		dc.DrawRectangle(x-wheelWidth/2, wheelY, wheelWidth, wheelHeight)
	}
	dc.Fill()

	// Undo the vehicle scale for the label so it keeps a constant size.
	dc.Scale(1/scale, 1/scale)
	dc.SetFontFace(r.labelFace)
	dc.SetColor(labelColor)
	dc.DrawStringAnchored(string(v.Label), 0, 0, 0.5, 0.35)
}

// LightPositions returns the world positions of the two headlights (front,
// towards local -Y) followed by the two taillights.
func LightPositions(v state.Vehicle) [4]geometry.Point {
	hw, hh := v.HalfExtents()
	local := [4]geometry.Point{
		{X: -hw + lightInset, Y: -hh + lightInset},
		{X: hw - lightInset, Y: -hh + lightInset},
		{X: -hw + lightInset, Y: hh - lightInset},
		{X: hw - lightInset, Y: hh - lightInset},
	}
	toWorld := geometry.Local(v.Position, v.Rotation, 1)
	var world [4]geometry.Point
	for i, p := range local {
		world[i] = toWorld.Apply(p)
	}
	return world
}

func drawLights(dc *gg.Context, v state.Vehicle) {
	dc.Push()
	defer dc.Pop()

	for i, p := range LightPositions(v) {
		if i < 2 {
			dc.SetColor(headlightColor)
		} else {
			dc.SetColor(taillightColor)
		}
		dc.DrawCircle(p.X, p.Y, lightRadius)
		dc.Fill()
	}
}

// drawSelection outlines v with a dashed box and draws its rotate/scale handle.
func drawSelection(dc *gg.Context, v state.Vehicle) {
	hw, hh := v.HalfExtents()

	func() {
		dc.Push()
		defer dc.Pop()

		dc.Translate(v.Position.X, v.Position.Y)
		dc.Rotate(v.Rotation)
		dc.SetColor(selectionColor)
		setLineWidth(dc, 1)
		setDash(dc, 3, 3)
		dc.DrawRectangle(-hw-selectionPadding, -hh-selectionPadding, 2*(hw+selectionPadding), 2*(hh+selectionPadding))
		dc.Stroke()
	}()

	dc.Push()
	defer dc.Pop()

	h := v.HandlePosition()
	dc.SetDash()
	dc.DrawCircle(h.X, h.Y, handleRadius)
	dc.SetColor(selectionColor)
	dc.FillPreserve()
	dc.SetColor(color.White)
	setLineWidth(dc, 1)
	dc.Stroke()
}

// arrowHead returns the two barb endpoints of an arrow ending at end.
func arrowHead(start, end geometry.Point) (geometry.Point, geometry.Point) {
	angle := math.Atan2(end.Y-start.Y, end.X-start.X)
	left := geometry.Point{
		X: end.X - arrowHeadLength*math.Cos(angle-arrowHeadAngle),
		Y: end.Y - arrowHeadLength*math.Sin(angle-arrowHeadAngle),
	}
	right := geometry.Point{
		X: end.X - arrowHeadLength*math.Cos(angle+arrowHeadAngle),
		Y: end.Y - arrowHeadLength*math.Sin(angle+arrowHeadAngle),
	}
	return left, right
}

func drawArrow(dc *gg.Context, start, end geometry.Point, c color.RGBA) {
	dc.Push()
	defer dc.Pop()

	dc.SetColor(c)
	setLineWidth(dc, strokeWidth)
	dc.DrawLine(start.X, start.Y, end.X, end.Y)
	dc.Stroke()

	left, right := arrowHead(start, end)
	dc.MoveTo(end.X, end.Y)
	dc.LineTo(left.X, left.Y)
	dc.MoveTo(end.X, end.Y)
	dc.LineTo(right.X, right.Y)
	dc.Stroke()
}
