package editor

import (
	"encoding/json"
	"fmt"
	"io"

	"AccidentSketch/internal/geometry"
)

// ScriptEvent is one recorded UI event.
type ScriptEvent struct {
	Op      string  `json:"op"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	Touches int     `json:"touches,omitempty"`
	Tool    string  `json:"tool,omitempty"`
	// Text answers the prompt a text-tool press raises. Nil dismisses it.
	Text *string `json:"text,omitempty"`
}

// Script is a recorded editing session that can be replayed headless.
type Script struct {
	Width  int           `json:"width,omitempty"`
	Height int           `json:"height,omitempty"`
	Blank  bool          `json:"blank,omitempty"`
	Events []ScriptEvent `json:"events"`
}

// LoadScript decodes a JSON script.
func LoadScript(r io.Reader) (Script, error) {
	var sc Script
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sc); err != nil {
		return Script{}, fmt.Errorf("decode script: %w", err)
	}
	return sc, nil
}

type scriptPrompter struct {
	answer *string
}

func (p *scriptPrompter) PromptText(string) (string, bool) {
	if p.answer == nil {
		return "", false
	}
	return *p.answer, true
}

// Run replays the script against s. Replay stops at the first bad event or
// once the session closes.
func (sc Script) Run(s *Session) error {
	prompter := &scriptPrompter{}
	s.SetPrompter(prompter)

	for i, ev := range sc.Events {
		if s.Closed() {
			return nil
		}
		ptr := Pointer{Position: geometry.Pt(ev.X, ev.Y), Touches: ev.Touches}
		switch ev.Op {
		case "tool":
			t, err := ParseTool(ev.Tool)
			if err != nil {
				return fmt.Errorf("event %d: %w", i, err)
			}
			s.SetTool(t)
		case "down":
			prompter.answer = ev.Text
			s.PointerDown(ptr)
			prompter.answer = nil
		case "move":
			s.PointerMove(ptr)
		case "up":
			s.PointerUp(ptr)
		case "leave":
			s.PointerLeave()
		case "cancel":
			s.PointerCancel()
		case "undo":
			s.Undo()
		case "redo":
			s.Redo()
		case "clear":
			s.Clear()
		case "save":
			if _, err := s.Save(); err != nil {
				return fmt.Errorf("event %d: %w", i, err)
			}
		default:
			return fmt.Errorf("event %d: unknown op %q", i, ev.Op)
		}
	}
	return nil
}
