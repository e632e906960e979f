package editor

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AccidentSketch/internal/geometry"
	"AccidentSketch/internal/render"
	"AccidentSketch/internal/state"
)

const sampleScript = `{
  "blank": true,
  "events": [
    {"op": "tool", "tool": "carA"},
    {"op": "down", "x": 80, "y": 80},
    {"op": "up", "x": 80, "y": 80},
    {"op": "tool", "tool": "arrow"},
    {"op": "down", "x": 120, "y": 80},
    {"op": "move", "x": 200, "y": 80},
    {"op": "up", "x": 200, "y": 80},
    {"op": "tool", "tool": "text"},
    {"op": "down", "x": 20, "y": 150, "text": "Str. Lipscani"},
    {"op": "down", "x": 20, "y": 190},
    {"op": "tool", "tool": "select"},
    {"op": "down", "x": 80, "y": 80},
    {"op": "move", "x": 90, "y": 95},
    {"op": "up", "x": 90, "y": 95}
  ]
}`

func TestScriptReplay(t *testing.T) {
	sc, err := LoadScript(strings.NewReader(sampleScript))
	require.NoError(t, err)
	assert.True(t, sc.Blank)

	s := Open(Options{Size: render.Size{Width: 300, Height: 200}, Blank: sc.Blank, Logger: zerolog.Nop()})
	require.NoError(t, sc.Run(s))

	elems := s.Scene().Elements()
	require.Len(t, elems, 3)
	assert.Equal(t, geometry.Pt(90, 95), elems[0].(state.Vehicle).Position)
	assert.Equal(t, geometry.Pt(200, 80), elems[1].(state.Arrow).End)
	assert.Equal(t, "Str. Lipscani", elems[2].(state.Text).Text)
}

func TestScriptSaveStopsReplay(t *testing.T) {
	sc := Script{Events: []ScriptEvent{{Op: "save"}, {Op: "clear"}}}
	var saved []byte
	s := Open(Options{Size: render.Size{Width: 100, Height: 100}, Logger: zerolog.Nop(), OnSave: func(b []byte) { saved = b }})

	require.NoError(t, sc.Run(s))
	assert.NotEmpty(t, saved)
	assert.Equal(t, 2, s.Scene().Len(), "events after save are not applied")
}

func TestScriptErrors(t *testing.T) {
	s := Open(Options{Size: render.Size{Width: 100, Height: 100}, Logger: zerolog.Nop()})

	err := Script{Events: []ScriptEvent{{Op: "tool", Tool: "pencil"}}}.Run(s)
	assert.ErrorContains(t, err, "unknown tool")

	err = Script{Events: []ScriptEvent{{Op: "jump"}}}.Run(s)
	assert.ErrorContains(t, err, "unknown op")

	_, err = LoadScript(strings.NewReader(`{"events": [], "zoom": 2}`))
	assert.Error(t, err)
}

func TestParseTool(t *testing.T) {
	for _, tool := range Tools {
		got, err := ParseTool(tool.String())
		require.NoError(t, err)
		assert.Equal(t, tool, got)
	}
}
