package state

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AccidentSketch/internal/geometry"
)

func newTestScene(elems ...Element) *Scene {
	s := NewScene(zerolog.Nop())
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

func TestExampleVehicles(t *testing.T) {
	seed := ExampleVehicles()
	require.Len(t, seed, 2)

	a := seed[0].(Vehicle)
	assert.Equal(t, LabelA, a.Label)
	assert.Equal(t, geometry.Pt(100, 100), a.Position)
	assert.Equal(t, 0.0, a.Rotation)
	assert.Equal(t, 1.0, a.Scale)

	b := seed[1].(Vehicle)
	assert.Equal(t, LabelB, b.Label)
	assert.Equal(t, geometry.Pt(250, 180), b.Position)
	assert.InDelta(t, math.Pi/4, b.Rotation, 1e-12)
	assert.Equal(t, 1.2, b.Scale)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestFindAtTopmostWins(t *testing.T) {
	bottom := NewVehicle(LabelA, geometry.Pt(100, 100))
	top := NewVehicle(LabelB, geometry.Pt(105, 100))
	s := newTestScene(bottom, top)

	hit, ok := s.FindAt(geometry.Pt(102, 100))
	require.True(t, ok)
	assert.Equal(t, top.ID, hit.ElementID())

	hit, ok = s.FindAt(geometry.Pt(87, 100))
	require.True(t, ok)
	assert.Equal(t, bottom.ID, hit.ElementID())

	_, ok = s.FindAt(geometry.Pt(400, 400))
	assert.False(t, ok)
}

func TestFindAtRespectsRotationAndScale(t *testing.T) {
	v := NewVehicle(LabelA, geometry.Pt(0, 0))
	v.Rotation = math.Pi / 2
	v = v.WithScale(2)
	s := newTestScene(v)

	// Rotated a quarter turn the 60-long body runs along y.
	_, ok := s.FindAt(geometry.Pt(0, 29))
	assert.True(t, ok)
	_, ok = s.FindAt(geometry.Pt(29, 0))
	assert.False(t, ok)
}

func TestFindAtOtherKinds(t *testing.T) {
	arrow := NewArrow(geometry.Pt(0, 0), geometry.Pt(100, 0))
	text := NewText(geometry.Pt(200, 200), "Intersecție")
	line := NewLine([]geometry.Point{geometry.Pt(300, 0), geometry.Pt(300, 50), geometry.Pt(350, 50)}, DefaultTextColor)
	s := newTestScene(arrow, text, line)

	hit, ok := s.FindAt(geometry.Pt(50, 4))
	require.True(t, ok)
	assert.Equal(t, arrow.ID, hit.ElementID())

	hit, ok = s.FindAt(geometry.Pt(205, 195))
	require.True(t, ok)
	assert.Equal(t, text.ID, hit.ElementID())

	hit, ok = s.FindAt(geometry.Pt(325, 52))
	require.True(t, ok)
	assert.Equal(t, line.ID, hit.ElementID())

	_, ok = s.FindAt(geometry.Pt(50, 20))
	assert.False(t, ok)
}

func TestSingleSelection(t *testing.T) {
	a := NewVehicle(LabelA, geometry.Pt(0, 0))
	b := NewVehicle(LabelB, geometry.Pt(50, 0))
	s := newTestScene(a, b)

	require.True(t, s.Select(a.ID))
	require.True(t, s.Select(b.ID))
	assert.Equal(t, b.ID, s.SelectedID())

	assert.False(t, s.Select("missing"))
	assert.Equal(t, b.ID, s.SelectedID())

	sel, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, b.ID, sel.ElementID())

	s.Select("")
	_, ok = s.Selected()
	assert.False(t, ok)
}

func TestRemoveAndPopLastClearSelection(t *testing.T) {
	a := NewVehicle(LabelA, geometry.Pt(0, 0))
	b := NewVehicle(LabelB, geometry.Pt(50, 0))
	s := newTestScene(a, b)

	s.Select(a.ID)
	require.True(t, s.Remove(a.ID))
	assert.Empty(t, s.SelectedID())
	assert.False(t, s.Remove(a.ID))

	s.Select(b.ID)
	last, ok := s.PopLast()
	require.True(t, ok)
	assert.Equal(t, b.ID, last.ElementID())
	assert.Empty(t, s.SelectedID())

	_, ok = s.PopLast()
	assert.False(t, ok)
}

func TestReplaceKeepsZOrder(t *testing.T) {
	a := NewVehicle(LabelA, geometry.Pt(0, 0))
	b := NewVehicle(LabelB, geometry.Pt(50, 0))
	s := newTestScene(a, b)

	moved := a.MoveTo(geometry.Pt(10, 10))
	require.True(t, s.Replace(moved))
	elems := s.Elements()
	assert.Equal(t, a.ID, elems[0].ElementID())
	assert.Equal(t, geometry.Pt(10, 10), elems[0].Anchor())

	assert.False(t, s.Replace(NewVehicle(LabelA, geometry.Pt(0, 0))))
}

func TestClear(t *testing.T) {
	a := NewVehicle(LabelA, geometry.Pt(0, 0))
	s := newTestScene(a)
	s.Select(a.ID)
	s.Clear()
	assert.Zero(t, s.Len())
	assert.Empty(t, s.SelectedID())
}

func TestMoveTo(t *testing.T) {
	arrow := NewArrow(geometry.Pt(0, 0), geometry.Pt(10, 5)).MoveTo(geometry.Pt(3, 3)).(Arrow)
	assert.Equal(t, geometry.Pt(3, 3), arrow.Start)
	assert.Equal(t, geometry.Pt(13, 8), arrow.End)

	line := NewLine([]geometry.Point{geometry.Pt(1, 1), geometry.Pt(2, 3)}, DefaultTextColor)
	movedLine := line.MoveTo(geometry.Pt(0, 0)).(Line)
	assert.Equal(t, []geometry.Point{geometry.Pt(0, 0), geometry.Pt(1, 2)}, movedLine.Points)
	assert.Equal(t, geometry.Pt(1, 1), line.Points[0], "stored line is not mutated")
}

func TestWithScaleClamps(t *testing.T) {
	v := NewVehicle(LabelA, geometry.Pt(0, 0))
	assert.Equal(t, MaxVehicleScale, v.WithScale(100).Scale)
	assert.Equal(t, MinVehicleScale, v.WithScale(0.001).Scale)
}

func TestZeroScaleVehicleCountsAsUnscaled(t *testing.T) {
	v := Vehicle{ID: "bare", Label: LabelA, Position: geometry.Pt(10, 10)}
	assert.Equal(t, 1.0, v.EffectiveScale())

	hw, hh := v.HalfExtents()
	assert.Equal(t, VehicleWidth/2, hw)
	assert.Equal(t, VehicleHeight/2, hh)
	assert.True(t, v.Contains(geometry.Pt(20, 12)))
	assert.Equal(t, NewVehicle(LabelA, geometry.Pt(10, 10)).HandlePosition(), v.HandlePosition())
}
