package editor

import (
	"fmt"

	"AccidentSketch/internal/state"
)

// Tool is the active palette entry.
type Tool int

const (
	ToolSelect Tool = iota
	ToolArrow
	ToolText
	ToolVehicleA
	ToolVehicleB
)

var toolNames = map[Tool]string{
	ToolSelect:   "select",
	ToolArrow:    "arrow",
	ToolText:     "text",
	ToolVehicleA: "carA",
	ToolVehicleB: "carB",
}

// Tools lists every tool in palette order.
var Tools = []Tool{ToolSelect, ToolArrow, ToolText, ToolVehicleA, ToolVehicleB}

func (t Tool) String() string {
	if name, ok := toolNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tool(%d)", int(t))
}

// ParseTool maps a tool name back to its Tool.
func ParseTool(name string) (Tool, error) {
	for t, n := range toolNames {
		if n == name {
			return t, nil
		}
	}
	return ToolSelect, fmt.Errorf("unknown tool %q", name)
}

// VehicleLabel reports which vehicle a placement tool drops.
func (t Tool) VehicleLabel() (state.Label, bool) {
	switch t {
	case ToolVehicleA:
		return state.LabelA, true
	case ToolVehicleB:
		return state.LabelB, true
	}
	return "", false
}

// Cursor is the pointer affordance the canvas should show.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorGrab
	CursorGrabbing
	CursorMove
	CursorCrosshair
	CursorText
	CursorCopy
)

func (c Cursor) String() string {
	switch c {
	case CursorGrab:
		return "grab"
	case CursorGrabbing:
		return "grabbing"
	case CursorMove:
		return "move"
	case CursorCrosshair:
		return "crosshair"
	case CursorText:
		return "text"
	case CursorCopy:
		return "copy"
	}
	return "default"
}
