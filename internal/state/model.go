package state

import (
	"image/color"
	"math"

	"AccidentSketch/internal/geometry"
)

const (
	// VehicleWidth and VehicleHeight are the unscaled body dimensions.
	VehicleWidth  = 30.0
	VehicleHeight = 15.0

	MinVehicleScale = 0.3
	MaxVehicleScale = 3.0

	// HandleOffset is how far the rotate/scale handle sits beyond the body's top edge.
	HandleOffset = 15.0

	TextSize = 14.0

	// strokeHitTolerance is the distance within which arrows and lines are hit.
	strokeHitTolerance = 6.0
)

var (
	DefaultTextColor = color.RGBA{A: 0xff}
	ArrowColor       = color.RGBA{R: 0xff, G: 0xd7, A: 0xff}
)

// Label identifies which party a vehicle belongs to.
type Label string

const (
	LabelA Label = "A"
	LabelB Label = "B"
)

// Element is a drawn element of the sketch. The concrete types are Line,
// Text, Vehicle and Arrow.
type Element interface {
	ElementID() string
	// Kind names the element type for logs.
	Kind() string
	// Anchor is the point a drag grabs relative to.
	Anchor() geometry.Point
	// MoveTo returns a copy translated so that its anchor is at p.
	MoveTo(p geometry.Point) Element
	// Contains reports whether p hits the element.
	Contains(p geometry.Point) bool

	isElement()
}

// Line is a freehand polyline. No tool creates them; they are kept so
// scenes containing them still draw.
type Line struct {
	ID     string
	Points []geometry.Point
	Color  color.RGBA
}

// Text is a label set on a baseline starting at Position.
type Text struct {
	ID       string
	Position geometry.Point
	Text     string
	Color    color.RGBA
}

// Vehicle is a rotatable, scalable car icon centred on Position.
type Vehicle struct {
	ID       string
	Position geometry.Point
	Label    Label
	Rotation float64 // radians
	Scale    float64
}

// Arrow is a directional arrow from Start to End.
type Arrow struct {
	ID         string
	Start, End geometry.Point
	Color      color.RGBA
}

func NewVehicle(label Label, at geometry.Point) Vehicle {
	return Vehicle{ID: NewID(), Position: at, Label: label, Rotation: 0, Scale: 1}
}

func NewText(at geometry.Point, text string) Text {
	return Text{ID: NewID(), Position: at, Text: text, Color: DefaultTextColor}
}

func NewArrow(start, end geometry.Point) Arrow {
	return Arrow{ID: NewID(), Start: start, End: end, Color: ArrowColor}
}

func NewLine(points []geometry.Point, c color.RGBA) Line {
	return Line{ID: NewID(), Points: append([]geometry.Point(nil), points...), Color: c}
}

// ExampleVehicles returns the two vehicles a new sketch starts with.
func ExampleVehicles() []Element {
	a := NewVehicle(LabelA, geometry.Pt(100, 100))
	b := NewVehicle(LabelB, geometry.Pt(250, 180))
	b.Rotation = math.Pi / 4
	b.Scale = 1.2
	return []Element{a, b}
}

func (l Line) ElementID() string    { return l.ID }
func (t Text) ElementID() string    { return t.ID }
func (v Vehicle) ElementID() string { return v.ID }
func (a Arrow) ElementID() string   { return a.ID }

func (Line) Kind() string    { return "line" }
func (Text) Kind() string    { return "text" }
func (Vehicle) Kind() string { return "vehicle" }
func (Arrow) Kind() string   { return "arrow" }

func (Line) isElement()    {}
func (Text) isElement()    {}
func (Vehicle) isElement() {}
func (Arrow) isElement()   {}

func (l Line) Anchor() geometry.Point {
	if len(l.Points) == 0 {
		return geometry.Point{}
	}
	return l.Points[0]
}

func (t Text) Anchor() geometry.Point    { return t.Position }
func (v Vehicle) Anchor() geometry.Point { return v.Position }
func (a Arrow) Anchor() geometry.Point   { return a.Start }

func (l Line) MoveTo(p geometry.Point) Element {
	delta := p.Sub(l.Anchor())
	moved := make([]geometry.Point, len(l.Points))
	for i, pt := range l.Points {
		moved[i] = pt.Add(delta)
	}
	l.Points = moved
	return l
}

func (t Text) MoveTo(p geometry.Point) Element {
	t.Position = p
	return t
}

func (v Vehicle) MoveTo(p geometry.Point) Element {
	v.Position = p
	return v
}

func (a Arrow) MoveTo(p geometry.Point) Element {
	delta := p.Sub(a.Start)
	a.Start = p
	a.End = a.End.Add(delta)
	return a
}

// HalfExtents returns half the scaled body width and height.
func (v Vehicle) HalfExtents() (halfWidth, halfHeight float64) {
	scale := v.EffectiveScale()
	return VehicleWidth * scale / 2, VehicleHeight * scale / 2
}

// EffectiveScale is the scale vehicles are drawn and hit-tested at. A
// vehicle built without NewVehicle has scale 0 and counts as unscaled.
func (v Vehicle) EffectiveScale() float64 {
	if v.Scale <= 0 {
		return 1
	}
	return v.Scale
}

// HandlePosition returns where the rotate/scale handle is drawn.
func (v Vehicle) HandlePosition() geometry.Point {
	return geometry.RotationHandlePosition(v.Position, v.Rotation, v.EffectiveScale(), VehicleHeight, HandleOffset)
}

// WithScale returns a copy with scale clamped to the allowed range.
func (v Vehicle) WithScale(scale float64) Vehicle {
	v.Scale = geometry.Clamp(scale, MinVehicleScale, MaxVehicleScale)
	return v
}
