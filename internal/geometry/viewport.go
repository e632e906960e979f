package geometry

// Viewport describes how a canvas is shown on screen: where it sits, its
// displayed size, and the size of its pixel backing store.
type Viewport struct {
	Origin        Point
	DisplayWidth  float64
	DisplayHeight float64
	BackingWidth  float64
	BackingHeight float64
	// Factor is the supersampling factor between logical and backing pixels.
	Factor float64
}

// NewViewport builds a viewport for a canvas displayed at width x height
// with a backing store factor times larger.
func NewViewport(origin Point, width, height, factor float64) Viewport {
	return Viewport{
		Origin:        origin,
		DisplayWidth:  width,
		DisplayHeight: height,
		BackingWidth:  width * factor,
		BackingHeight: height * factor,
		Factor:        factor,
	}
}

// ToLogical maps client coordinates into canvas logical space.
func (v Viewport) ToLogical(client Point) Point {
	p := client.Sub(v.Origin)
	if v.DisplayWidth <= 0 || v.DisplayHeight <= 0 || v.Factor <= 0 {
		return p
	}
	return Point{
		X: p.X * v.BackingWidth / (v.DisplayWidth * v.Factor),
		Y: p.Y * v.BackingHeight / (v.DisplayHeight * v.Factor),
	}
}
