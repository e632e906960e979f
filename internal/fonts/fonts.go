// Package fonts provides the embedded Go font faces used to draw and measure
// sketch text.
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	parseOnce sync.Once
	regular   *truetype.Font
	bold      *truetype.Font
)

func load() {
	parseOnce.Do(func() {
		var err error
		if regular, err = truetype.Parse(goregular.TTF); err != nil {
			panic("fonts: parse goregular: " + err.Error())
		}
		if bold, err = truetype.Parse(gobold.TTF); err != nil {
			panic("fonts: parse gobold: " + err.Error())
		}
	})
}

// Regular returns a new Go Regular face at size pixels.
// Faces are not safe for concurrent use, so callers get their own.
func Regular(size float64) font.Face {
	load()
	return truetype.NewFace(regular, &truetype.Options{Size: size, Hinting: font.HintingFull})
}

// Bold returns a new Go Bold face at size pixels.
func Bold(size float64) font.Face {
	load()
	return truetype.NewFace(bold, &truetype.Options{Size: size, Hinting: font.HintingFull})
}

var (
	measureMu    sync.Mutex
	measureFaces = map[float64]font.Face{}
)

// MeasureRegular measures s in Go Regular at size using a face shared by
// all callers. Safe for concurrent use.
func MeasureRegular(size float64, s string) Metrics {
	measureMu.Lock()
	defer measureMu.Unlock()
	face, ok := measureFaces[size]
	if !ok {
		face = Regular(size)
		measureFaces[size] = face
	}
	return Measure(face, s)
}

// Metrics holds the dimensions of a run of text set on a baseline.
type Metrics struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Measure returns the advance width and vertical extents of s in face.
func Measure(face font.Face, s string) Metrics {
	m := face.Metrics()
	return Metrics{
		Width:   float64(font.MeasureString(face, s)) / 64,
		Ascent:  float64(m.Ascent) / 64,
		Descent: float64(m.Descent) / 64,
	}
}
