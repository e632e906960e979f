package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"AccidentSketch/internal/editor"
	"AccidentSketch/internal/render"
	"AccidentSketch/internal/state"
)

var toolLabels = map[editor.Tool]string{
	editor.ToolSelect:   "Selectează",
	editor.ToolArrow:    "Săgeată",
	editor.ToolText:     "Text",
	editor.ToolVehicleA: "Vehicul A",
	editor.ToolVehicleB: "Vehicul B",
}

var toolIcons = map[editor.Tool]fyne.Resource{
	editor.ToolSelect: theme.ViewRestoreIcon(),
	editor.ToolArrow:  theme.NavigateNextIcon(),
	editor.ToolText:   theme.DocumentCreateIcon(),
}

// --- Vehicle swatch shown next to the placement tools ---
type vehicleSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func()
}

func newVehicleSwatch(label state.Label, tapped func()) *vehicleSwatch {
	s := &vehicleSwatch{Color: render.BodyColor(label), OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *vehicleSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 12))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewCenter(container.NewStack(rect, border)))
}

func (s *vehicleSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped()
	}
}

// Palette is the editor's tool row. Sync re-highlights the active tool.
type Palette struct {
	board   *SketchWidget
	buttons map[editor.Tool]*widget.Button
	status  *widget.Label
	object  fyne.CanvasObject
}

// NewToolbar builds the palette acting on whatever session board is bound to.
func NewToolbar(board *SketchWidget) *Palette {
	p := &Palette{
		board:   board,
		buttons: make(map[editor.Tool]*widget.Button),
		status:  widget.NewLabel(""),
	}

	tools := container.NewHBox()
	for _, tool := range editor.Tools {
		btn := widget.NewButtonWithIcon(toolLabels[tool], toolIcons[tool], func() { p.selectTool(tool) })
		p.buttons[tool] = btn
		if label, ok := tool.VehicleLabel(); ok {
			tools.Add(container.NewHBox(newVehicleSwatch(label, func() { p.selectTool(tool) }), btn))
			continue
		}
		tools.Add(btn)
	}

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() {
			if s := board.active(); s != nil {
				s.Undo()
			}
		}),
		widget.NewToolbarAction(theme.ContentRedoIcon(), func() {
			if s := board.active(); s != nil {
				s.Redo()
			}
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			if s := board.active(); s != nil {
				s.Clear()
			}
		}),
	)

	p.object = container.NewHBox(
		widget.NewLabel("Unealtă:"),
		tools,
		widget.NewSeparator(),
		actions,
		layout.NewSpacer(),
		p.status,
	)
	p.Sync()
	return p
}

func (p *Palette) selectTool(t editor.Tool) {
	if s := p.board.active(); s != nil {
		s.SetTool(t)
	}
	p.Sync()
}

// Sync reflects the bound session's tool and background state.
func (p *Palette) Sync() {
	s := p.board.active()
	for tool, btn := range p.buttons {
		if s != nil && s.Tool() == tool {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
	if s != nil && s.BackgroundPending() {
		p.status.SetText("Se încarcă fundalul...")
	} else {
		p.status.SetText("")
	}
}

func (p *Palette) CanvasObject() fyne.CanvasObject {
	return p.object
}
