package editor

import (
	"errors"

	"github.com/rs/zerolog"
)

var (
	// ErrNoImage is returned when continuing past the sketch step without a saved sketch.
	ErrNoImage = errors.New("editor: no sketch saved")
	// ErrEditorOpen is returned when opening a second editor over an active one.
	ErrEditorOpen = errors.New("editor: already open")
)

// Step is the sketch step of the report wizard. It holds the last saved
// sketch and opens editing sessions over it.
type Step struct {
	image      []byte
	session    *Session
	onChange   func(png []byte)
	onContinue func()
	onBack     func()
	log        zerolog.Logger
}

// NewStep creates the step. initial is a previously saved sketch or nil.
func NewStep(initial []byte, onChange func([]byte), onContinue, onBack func(), log zerolog.Logger) *Step {
	return &Step{
		image:      initial,
		onChange:   onChange,
		onContinue: onContinue,
		onBack:     onBack,
		log:        log.With().Str("component", "step").Logger(),
	}
}

// Image returns the saved sketch, or nil.
func (st *Step) Image() []byte {
	return st.image
}

func (st *Step) HasImage() bool {
	return len(st.image) > 0
}

// Session returns the open editor, or nil.
func (st *Step) Session() *Session {
	if st.session != nil && st.session.Closed() {
		st.session = nil
	}
	return st.session
}

// Open starts an editing session logging through the step's logger. Saving
// stores the sketch on the step and reports it through onChange before
// opts.OnSave runs.
func (st *Step) Open(opts Options) (*Session, error) {
	if st.Session() != nil {
		return nil, ErrEditorOpen
	}
	opts.Logger = st.log

	onSave, onCancel := opts.OnSave, opts.OnCancel
	opts.OnSave = func(png []byte) {
		st.image = png
		st.session = nil
		if st.onChange != nil {
			st.onChange(png)
		}
		if onSave != nil {
			onSave(png)
		}
	}
	opts.OnCancel = func() {
		st.session = nil
		if onCancel != nil {
			onCancel()
		}
	}

	st.session = Open(opts)
	return st.session, nil
}

// Continue moves the wizard on. It refuses while no sketch has been saved.
func (st *Step) Continue() error {
	if !st.HasImage() {
		return ErrNoImage
	}
	if st.onContinue != nil {
		st.onContinue()
	}
	return nil
}

// Back returns to the previous wizard step, discarding any open editor.
func (st *Step) Back() {
	if s := st.Session(); s != nil {
		s.Cancel()
	}
	if st.onBack != nil {
		st.onBack()
	}
}
