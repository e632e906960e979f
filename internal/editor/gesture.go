package editor

import "AccidentSketch/internal/geometry"

// Gesture is the in-progress pointer interaction. Exactly one is active at
// a time; it is Idle between gestures.
type Gesture interface {
	isGesture()
}

type Idle struct{}

// Dragging moves an element so its anchor stays GrabOffset behind the pointer.
type Dragging struct {
	ElementID  string
	GrabOffset geometry.Point
}

// RotatingScaling turns and resizes a vehicle through its handle.
type RotatingScaling struct {
	ElementID              string
	InitialPointerDistance float64
	InitialScale           float64
	InitialRotation        float64
}

// DrawingArrow previews an arrow that is committed on release.
type DrawingArrow struct {
	Start      geometry.Point
	CurrentEnd geometry.Point
}

func (Idle) isGesture()            {}
func (Dragging) isGesture()        {}
func (RotatingScaling) isGesture() {}
func (DrawingArrow) isGesture()    {}

// Action is what a pointer press at some point would do.
type Action int

const (
	ActionDeselect Action = iota
	ActionRotateScale
	ActionDrag
	ActionPlaceVehicle
	ActionPlaceText
	ActionDrawArrow
)

func (a Action) String() string {
	switch a {
	case ActionRotateScale:
		return "rotate-scale"
	case ActionDrag:
		return "drag"
	case ActionPlaceVehicle:
		return "place-vehicle"
	case ActionPlaceText:
		return "place-text"
	case ActionDrawArrow:
		return "draw-arrow"
	}
	return "deselect"
}

// Button identifies a mouse button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonTertiary
)

// Pointer is one pointer event in canvas logical coordinates. Touches is
// the number of active touch points, zero for a mouse.
type Pointer struct {
	Position geometry.Point
	Button   Button
	Touches  int
}

// At builds a primary-button pointer event at (x, y).
func At(x, y float64) Pointer {
	return Pointer{Position: geometry.Pt(x, y)}
}

func (p Pointer) multiTouch() bool {
	return p.Touches > 1
}
