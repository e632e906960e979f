package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"AccidentSketch/internal/editor"
	"AccidentSketch/internal/geometry"
	"AccidentSketch/internal/render"
)

// SketchWidget is the drawing surface of an editor session.
type SketchWidget struct {
	widget.BaseWidget
	session *editor.Session
	window  fyne.Window
	minSize fyne.Size
	log     zerolog.Logger
}

var _ fyne.Widget = (*SketchWidget)(nil)
var _ fyne.Draggable = (*SketchWidget)(nil)
var _ desktop.Mouseable = (*SketchWidget)(nil)
var _ desktop.Hoverable = (*SketchWidget)(nil)
var _ desktop.Cursorable = (*SketchWidget)(nil)

func NewSketchWidget(window fyne.Window, minSize fyne.Size, log zerolog.Logger) *SketchWidget {
	w := &SketchWidget{window: window, minSize: minSize, log: log}
	w.ExtendBaseWidget(w)
	return w
}

// Bind attaches the widget to a session; nil detaches it.
func (w *SketchWidget) Bind(s *editor.Session) {
	w.session = s
	if s != nil {
		w.syncSize(w.Size())
	}
	w.Refresh()
}

func (w *SketchWidget) active() *editor.Session {
	if w.session == nil || w.session.Closed() {
		return nil
	}
	return w.session
}

func (w *SketchWidget) syncSize(size fyne.Size) {
	s := w.active()
	if s == nil || size.Width < 1 || size.Height < 1 {
		return
	}
	s.Resize(render.Size{Width: int(size.Width), Height: int(size.Height)})
}

func (w *SketchWidget) toLogical(pos fyne.Position) geometry.Point {
	size := w.Size()
	vp := geometry.NewViewport(geometry.Point{}, float64(size.Width), float64(size.Height), render.Supersample)
	return vp.ToLogical(geometry.Pt(float64(pos.X), float64(pos.Y)))
}

func pointerFrom(e *desktop.MouseEvent, p geometry.Point) editor.Pointer {
	ev := editor.Pointer{Position: p}
	switch e.Button {
	case desktop.MouseButtonSecondary:
		ev.Button = editor.ButtonSecondary
	case desktop.MouseButtonTertiary:
		ev.Button = editor.ButtonTertiary
	}
	return ev
}

func (w *SketchWidget) MouseDown(e *desktop.MouseEvent) {
	s := w.active()
	if s == nil {
		return
	}
	p := w.toLogical(e.Position)
	action := s.Classify(p)
	s.PointerDown(pointerFrom(e, p))

	// The session has no prompter here; fyne dialogs are asynchronous so the
	// text is placed once the dialog is confirmed.
	if action == editor.ActionPlaceText && e.Button == desktop.MouseButtonPrimary {
		w.promptText(s, p)
	}
}

func (w *SketchWidget) promptText(s *editor.Session, p geometry.Point) {
	entry := widget.NewEntry()
	items := []*widget.FormItem{widget.NewFormItem("Text", entry)}
	dialog.ShowForm(editor.TextPromptMessage, "OK", "Anulează", items, func(ok bool) {
		if ok && !s.Closed() {
			s.PlaceText(p, entry.Text)
		}
	}, w.window)
	w.window.Canvas().Focus(entry)
}

func (w *SketchWidget) MouseUp(e *desktop.MouseEvent) {
	if s := w.active(); s != nil {
		s.PointerUp(editor.Pointer{Position: w.toLogical(e.Position)})
	}
}

func (w *SketchWidget) Dragged(e *fyne.DragEvent) {
	if s := w.active(); s != nil {
		s.PointerMove(editor.Pointer{Position: w.toLogical(e.Position)})
	}
}

func (w *SketchWidget) DragEnd() {
	if s := w.active(); s != nil {
		s.PointerUp(editor.Pointer{})
	}
}

func (w *SketchWidget) MouseOut() {
	if s := w.active(); s != nil {
		s.PointerLeave()
	}
}

func (w *SketchWidget) MouseIn(*desktop.MouseEvent)    {}
func (w *SketchWidget) MouseMoved(*desktop.MouseEvent) {}

// Cursor maps the session's affordance onto the cursors fyne offers.
func (w *SketchWidget) Cursor() desktop.Cursor {
	s := w.active()
	if s == nil {
		return desktop.DefaultCursor
	}
	return desktopCursor(s.Cursor())
}

func desktopCursor(c editor.Cursor) desktop.Cursor {
	switch c {
	case editor.CursorCrosshair:
		return desktop.CrosshairCursor
	case editor.CursorText:
		return desktop.TextCursor
	case editor.CursorGrab, editor.CursorGrabbing, editor.CursorMove, editor.CursorCopy:
		return desktop.PointerCursor
	}
	return desktop.DefaultCursor
}

func (w *SketchWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &sketchWidgetRenderer{sketch: w}
	r.raster = canvas.NewRaster(r.draw)
	return r
}

type sketchWidgetRenderer struct {
	sketch *SketchWidget
	raster *canvas.Raster
}

func (r *sketchWidgetRenderer) draw(_, _ int) image.Image {
	s := r.sketch.active()
	if s == nil {
		blank := image.NewRGBA(image.Rect(0, 0, 1, 1))
		blank.Set(0, 0, color.White)
		return blank
	}
	return s.Render()
}

func (r *sketchWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *sketchWidgetRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
	r.sketch.syncSize(size)
}

func (r *sketchWidgetRenderer) MinSize() fyne.Size {
	return r.sketch.minSize
}

func (r *sketchWidgetRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *sketchWidgetRenderer) Destroy() {}
