// Package editor implements the accident sketch editing session: the tool
// palette, the pointer gesture state machine and the save/cancel lifecycle.
package editor

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/rs/zerolog"

	"AccidentSketch/internal/geometry"
	"AccidentSketch/internal/render"
	"AccidentSketch/internal/state"
)

const (
	// HandleHitRadius is how close a press must land to the rotate/scale handle.
	HandleHitRadius = 8.0
	// MinArrowLength is the length an arrow must exceed to be kept.
	MinArrowLength = 5.0

	// TextPromptMessage is shown when asking for the text to place.
	TextPromptMessage = "Introduceți textul:"
)

// ErrSessionClosed is returned by operations on a saved or cancelled session.
var ErrSessionClosed = errors.New("editor: session closed")

// TextPrompter asks the user for a line of text. ok is false when the
// prompt was dismissed.
type TextPrompter interface {
	PromptText(message string) (text string, ok bool)
}

// PromptFunc adapts a function to TextPrompter.
type PromptFunc func(message string) (string, bool)

func (f PromptFunc) PromptText(message string) (string, bool) {
	return f(message)
}

// Renderer turns a frame into pixels.
type Renderer interface {
	Render(f render.Frame) *image.RGBA
	Size() render.Size
	Resize(size render.Size)
}

// Options configures a new Session.
type Options struct {
	Size     render.Size
	Renderer Renderer
	Prompter TextPrompter
	// Background is loaded once, asynchronously, when the session opens.
	Background BackgroundLoader
	// OnChange is called after anything that changes the rendered output.
	OnChange func()
	// Post runs f on the goroutine that owns the session. Defaults to calling f directly.
	Post     func(f func())
	OnSave   func(png []byte)
	OnCancel func()
	// Blank skips the two example vehicles a new sketch starts with.
	Blank  bool
	Logger zerolog.Logger
}

// Session is one open editor. All methods must be called from the same
// goroutine, except that the background load reports back through Options.Post.
type Session struct {
	opts     Options
	scene    *state.Scene
	renderer Renderer
	prompter TextPrompter
	tool     Tool
	gesture  Gesture
	bg       *background
	closed   bool
	log      zerolog.Logger
}

// Open starts a session and kicks off the background load.
func Open(opts Options) *Session {
	if opts.Renderer == nil {
		opts.Renderer = render.NewRenderer(opts.Size)
	}
	if opts.Post == nil {
		opts.Post = func(f func()) { f() }
	}
	s := &Session{
		opts:     opts,
		scene:    state.NewScene(opts.Logger),
		renderer: opts.Renderer,
		prompter: opts.Prompter,
		tool:     ToolSelect,
		gesture:  Idle{},
		bg:       &background{},
		log:      opts.Logger.With().Str("component", "editor").Logger(),
	}
	if !opts.Blank {
		for _, e := range state.ExampleVehicles() {
			s.scene.Add(e)
		}
	}
	s.loadBackground()
	s.log.Debug().Int("width", s.renderer.Size().Width).Int("height", s.renderer.Size().Height).Msg("session opened")
	return s
}

func (s *Session) loadBackground() {
	load := s.opts.Background
	if load == nil || !s.bg.begin() {
		return
	}
	bg := s.bg
	go func() {
		img, err := load()
		if err != nil {
			s.log.Warn().Err(err).Msg("background image failed to load, using plain canvas")
		}
		bg.finish(img, err)
		s.opts.Post(func() {
			if !s.closed {
				s.changed()
			}
		})
	}()
}

func (s *Session) changed() {
	if s.opts.OnChange != nil {
		s.opts.OnChange()
	}
}

func (s *Session) Scene() *state.Scene {
	return s.scene
}

func (s *Session) Tool() Tool {
	return s.tool
}

// SetTool switches the active tool. An in-progress gesture is unaffected.
func (s *Session) SetTool(t Tool) {
	if s.tool == t {
		return
	}
	s.tool = t
	s.log.Debug().Stringer("tool", t).Msg("tool selected")
	s.changed()
}

// SetPrompter replaces the text prompter.
func (s *Session) SetPrompter(p TextPrompter) {
	s.prompter = p
}

func (s *Session) Gesture() Gesture {
	return s.gesture
}

func (s *Session) Closed() bool {
	return s.closed
}

// BackgroundPending reports whether the background is still loading.
func (s *Session) BackgroundPending() bool {
	return s.bg.pending()
}

// AwaitBackground blocks until the background load has finished. Headless
// callers use it so the first render already has the map.
func (s *Session) AwaitBackground(ctx context.Context) error {
	done := s.bg.wait()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Size is the logical canvas size.
func (s *Session) Size() render.Size {
	return s.renderer.Size()
}

// Resize changes the logical canvas size.
func (s *Session) Resize(size render.Size) {
	if size == s.renderer.Size() {
		return
	}
	s.renderer.Resize(size)
	s.changed()
}

// Classify reports what a press at p would do without doing it.
func (s *Session) Classify(p geometry.Point) Action {
	a, _ := s.classify(p)
	return a
}

func (s *Session) classify(p geometry.Point) (Action, state.Element) {
	if sel, ok := s.scene.Selected(); ok {
		if v, ok := sel.(state.Vehicle); ok && geometry.Distance(p, v.HandlePosition()) <= HandleHitRadius {
			return ActionRotateScale, v
		}
	}
	if hit, ok := s.scene.FindAt(p); ok {
		return ActionDrag, hit
	}
	if _, ok := s.tool.VehicleLabel(); ok {
		return ActionPlaceVehicle, nil
	}
	switch s.tool {
	case ToolText:
		return ActionPlaceText, nil
	case ToolArrow:
		return ActionDrawArrow, nil
	}
	return ActionDeselect, nil
}

// PointerDown starts whatever the press at ev selects.
func (s *Session) PointerDown(ev Pointer) {
	if s.closed || ev.multiTouch() || ev.Button != ButtonPrimary {
		return
	}
	p := ev.Position
	action, target := s.classify(p)

	switch action {
	case ActionRotateScale:
		v := target.(state.Vehicle)
		s.gesture = RotatingScaling{
			ElementID:              v.ID,
			InitialPointerDistance: geometry.Distance(p, v.Position),
			InitialScale:           v.EffectiveScale(),
			InitialRotation:        v.Rotation,
		}
	case ActionDrag:
		s.scene.Select(target.ElementID())
		s.gesture = Dragging{ElementID: target.ElementID(), GrabOffset: p.Sub(target.Anchor())}
	case ActionPlaceVehicle:
		label, _ := s.tool.VehicleLabel()
		v := state.NewVehicle(label, p)
		s.scene.Add(v)
		s.scene.Select(v.ID)
	case ActionPlaceText:
		s.scene.Select("")
		if s.prompter != nil {
			if text, ok := s.prompter.PromptText(TextPromptMessage); ok {
				s.PlaceText(p, text)
			}
		}
	case ActionDrawArrow:
		s.scene.Select("")
		s.gesture = DrawingArrow{Start: p, CurrentEnd: p}
	default:
		s.scene.Select("")
	}
	s.log.Debug().Stringer("action", action).Float64("x", p.X).Float64("y", p.Y).Msg("pointer down")
	s.changed()
}

// PlaceText adds a text element at p and selects it. Empty text is ignored.
// The desktop shell calls it once its asynchronous prompt is answered.
func (s *Session) PlaceText(p geometry.Point, text string) bool {
	if s.closed || text == "" {
		return false
	}
	t := state.NewText(p, text)
	s.scene.Add(t)
	s.scene.Select(t.ID)
	s.changed()
	return true
}

// PointerMove advances the active gesture.
func (s *Session) PointerMove(ev Pointer) {
	if s.closed || ev.multiTouch() {
		return
	}
	p := ev.Position

	switch g := s.gesture.(type) {
	case Dragging:
		e, ok := s.scene.Get(g.ElementID)
		if !ok {
			s.gesture = Idle{}
			return
		}
		s.scene.Replace(e.MoveTo(p.Sub(g.GrabOffset)))
	case RotatingScaling:
		e, ok := s.scene.Get(g.ElementID)
		v, isVehicle := e.(state.Vehicle)
		if !ok || !isVehicle {
			s.gesture = Idle{}
			return
		}
		dx, dy := p.X-v.Position.X, p.Y-v.Position.Y
		v.Rotation = math.Atan2(dy, dx) + math.Pi/2
		ratio := geometry.Distance(p, v.Position) / math.Max(g.InitialPointerDistance, 1)
		s.scene.Replace(v.WithScale(g.InitialScale * ratio))
	case DrawingArrow:
		g.CurrentEnd = p
		s.gesture = g
	default:
		return
	}
	s.changed()
}

// PointerUp ends the active gesture, committing a drawn arrow when it is long enough.
func (s *Session) PointerUp(ev Pointer) {
	if ev.multiTouch() {
		return
	}
	s.endGesture()
}

// PointerLeave ends the gesture like a release.
func (s *Session) PointerLeave() {
	s.endGesture()
}

// PointerCancel ends the gesture like a release.
func (s *Session) PointerCancel() {
	s.endGesture()
}

func (s *Session) endGesture() {
	if s.closed {
		return
	}
	if _, idle := s.gesture.(Idle); idle {
		return
	}
	if g, ok := s.gesture.(DrawingArrow); ok {
		if geometry.Distance(g.Start, g.CurrentEnd) > MinArrowLength {
			s.scene.Add(state.NewArrow(g.Start, g.CurrentEnd))
		}
	}
	s.gesture = Idle{}
	s.changed()
}

// Undo removes the most recently added element.
func (s *Session) Undo() bool {
	if s.closed {
		return false
	}
	last, ok := s.scene.PopLast()
	if !ok {
		return false
	}
	if s.targets(last.ElementID()) {
		s.gesture = Idle{}
	}
	s.log.Debug().Str("id", last.ElementID()).Str("kind", last.Kind()).Msg("undo")
	s.changed()
	return true
}

// Redo does nothing: only last-element removal is tracked, so there is
// nothing to reapply.
func (s *Session) Redo() {
	s.log.Debug().Msg("redo requested, nothing to redo")
}

// Clear empties the scene and resets the gesture.
func (s *Session) Clear() {
	if s.closed {
		return
	}
	s.scene.Clear()
	s.gesture = Idle{}
	s.changed()
}

// Cancel discards the session.
func (s *Session) Cancel() {
	if s.closed {
		return
	}
	s.close()
	s.log.Info().Msg("sketch discarded")
	if s.opts.OnCancel != nil {
		s.opts.OnCancel()
	}
}

// Save renders the scene without selection decorations, closes the session
// and hands the PNG to OnSave.
func (s *Session) Save() ([]byte, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	s.scene.Select("")
	s.gesture = Idle{}

	img := s.renderer.Render(s.Frame())
	data, err := render.EncodePNG(img)
	if err != nil {
		return nil, fmt.Errorf("save sketch: %w", err)
	}
	s.close()
	s.log.Info().Int("bytes", len(data)).Int("elements", s.scene.Len()).Msg("sketch saved")
	if s.opts.OnSave != nil {
		s.opts.OnSave(data)
	}
	return data, nil
}

func (s *Session) close() {
	s.closed = true
	s.gesture = Idle{}
	s.bg.reset()
}

// Frame captures everything the next render depends on.
func (s *Session) Frame() render.Frame {
	f := render.Frame{
		Elements:   s.scene.Elements(),
		SelectedID: s.scene.SelectedID(),
		Background: s.bg.image(),
	}
	if g, ok := s.gesture.(DrawingArrow); ok {
		f.Preview = &render.ArrowPreview{Start: g.Start, End: g.CurrentEnd}
	}
	return f
}

// Render draws the current frame.
func (s *Session) Render() *image.RGBA {
	return s.renderer.Render(s.Frame())
}

// Cursor returns the affordance for the current gesture and tool.
func (s *Session) Cursor() Cursor {
	switch s.gesture.(type) {
	case Dragging, RotatingScaling:
		return CursorGrabbing
	case DrawingArrow:
		return CursorCrosshair
	}
	switch s.tool {
	case ToolSelect:
		if s.scene.SelectedID() != "" {
			return CursorMove
		}
		return CursorGrab
	case ToolArrow:
		return CursorCrosshair
	case ToolText:
		return CursorText
	case ToolVehicleA, ToolVehicleB:
		return CursorCopy
	}
	return CursorDefault
}

func (s *Session) targets(id string) bool {
	switch g := s.gesture.(type) {
	case Dragging:
		return g.ElementID == id
	case RotatingScaling:
		return g.ElementID == id
	}
	return false
}
