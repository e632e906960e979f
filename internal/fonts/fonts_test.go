package fonts

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasure(t *testing.T) {
	face := Regular(14)
	defer face.Close()

	empty := Measure(face, "")
	assert.Zero(t, empty.Width)
	assert.Greater(t, empty.Ascent, 0.0)

	short := Measure(face, "impact")
	long := Measure(face, "impact point")
	assert.Greater(t, short.Width, 0.0)
	assert.Greater(t, long.Width, short.Width)
}

func TestBoldIsWider(t *testing.T) {
	r := Regular(10)
	b := Bold(10)
	assert.GreaterOrEqual(t, Measure(b, "AB").Width, Measure(r, "AB").Width)
}

func TestMeasureRegularSharesFace(t *testing.T) {
	face := Regular(14)
	defer face.Close()
	want := Measure(face, "Strada Mare")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, MeasureRegular(14, "Strada Mare"))
		}()
	}
	wg.Wait()

	measureMu.Lock()
	first, ok := measureFaces[14.0]
	n := len(measureFaces)
	measureMu.Unlock()
	assert.True(t, ok)

	MeasureRegular(14, "x")
	measureMu.Lock()
	defer measureMu.Unlock()
	assert.Same(t, first, measureFaces[14.0])
	assert.Len(t, measureFaces, n)
}
