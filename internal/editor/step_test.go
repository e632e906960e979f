package editor

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AccidentSketch/internal/render"
)

func TestStepLifecycle(t *testing.T) {
	var changed [][]byte
	continued, back := 0, 0
	st := NewStep(nil, func(b []byte) { changed = append(changed, b) }, func() { continued++ }, func() { back++ }, zerolog.Nop())

	assert.False(t, st.HasImage())
	assert.ErrorIs(t, st.Continue(), ErrNoImage)
	assert.Zero(t, continued)

	var callerSaw []byte
	s, err := st.Open(Options{Size: render.Size{Width: 200, Height: 100}, OnSave: func(b []byte) { callerSaw = b }})
	require.NoError(t, err)
	assert.Same(t, s, st.Session())

	_, err = st.Open(Options{})
	assert.ErrorIs(t, err, ErrEditorOpen)

	data, err := s.Save()
	require.NoError(t, err)

	assert.Equal(t, data, st.Image())
	require.Len(t, changed, 1)
	assert.Equal(t, data, changed[0])
	assert.Equal(t, data, callerSaw)
	assert.Nil(t, st.Session())

	require.NoError(t, st.Continue())
	assert.Equal(t, 1, continued)

	st.Back()
	assert.Equal(t, 1, back)
}

func TestStepCancelKeepsPreviousImage(t *testing.T) {
	initial := []byte("previous sketch")
	cancelled := false
	st := NewStep(initial, nil, nil, nil, zerolog.Nop())

	s, err := st.Open(Options{Size: render.Size{Width: 50, Height: 50}, OnCancel: func() { cancelled = true }})
	require.NoError(t, err)
	s.Cancel()

	assert.True(t, cancelled)
	assert.Equal(t, initial, st.Image())
	assert.Nil(t, st.Session())

	_, err = st.Open(Options{Size: render.Size{Width: 50, Height: 50}})
	assert.NoError(t, err, "a cancelled editor can be reopened")
}

func TestStepBackCancelsOpenEditor(t *testing.T) {
	st := NewStep(nil, nil, nil, nil, zerolog.Nop())
	s, err := st.Open(Options{Size: render.Size{Width: 50, Height: 50}})
	require.NoError(t, err)

	st.Back()
	assert.True(t, s.Closed())
	assert.False(t, st.HasImage())
}
