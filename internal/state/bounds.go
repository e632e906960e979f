package state

import (
	"AccidentSketch/internal/fonts"
	"AccidentSketch/internal/geometry"
)

// textPadding widens a text's glyph box so short labels stay easy to grab.
const textPadding = 2.0

// Contains tests the rotated, scaled body rectangle.
func (v Vehicle) Contains(p geometry.Point) bool {
	hw, hh := v.HalfExtents()
	return geometry.PointInRotatedRect(p, v.Position, v.Rotation, hw, hh)
}

// Bounds returns the glyph box of the text measured in the editor's text face.
func (t Text) Bounds() geometry.Rect {
	m := fonts.MeasureRegular(TextSize, t.Text)
	return geometry.Rect{
		X:      t.Position.X,
		Y:      t.Position.Y - m.Ascent,
		Width:  m.Width,
		Height: m.Ascent + m.Descent,
	}
}

func (t Text) Contains(p geometry.Point) bool {
	return t.Bounds().Pad(textPadding).Contains(p)
}

func (a Arrow) Contains(p geometry.Point) bool {
	return geometry.DistanceToSegment(p, a.Start, a.End) <= strokeHitTolerance
}

func (l Line) Contains(p geometry.Point) bool {
	switch len(l.Points) {
	case 0:
		return false
	case 1:
		return geometry.Distance(p, l.Points[0]) <= strokeHitTolerance
	}
	// Cheap reject before walking every segment.
	if !geometry.BoundsOf(l.Points).Pad(strokeHitTolerance).Contains(p) {
		return false
	}
	for i := 1; i < len(l.Points); i++ {
		if geometry.DistanceToSegment(p, l.Points[i-1], l.Points[i]) <= strokeHitTolerance {
			return true
		}
	}
	return false
}
