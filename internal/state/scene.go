package state

import (
	"sync"

	"github.com/rs/zerolog"

	"AccidentSketch/internal/geometry"
)

// Scene is the ordered list of drawn elements plus the current selection.
// Insertion order is z-order: later elements draw on top and win hit tests.
type Scene struct {
	elements []Element
	selected string
	log      zerolog.Logger
	mu       sync.RWMutex
}

// NewScene creates an empty scene.
func NewScene(log zerolog.Logger) *Scene {
	return &Scene{log: log.With().Str("component", "scene").Logger()}
}

// Add appends e on top of the scene.
func (s *Scene) Add(e Element) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elements = append(s.elements, e)
	s.log.Debug().Str("id", e.ElementID()).Str("kind", e.Kind()).Msg("element added")
}

// Get returns the element with id.
func (s *Scene) Get(id string) (Element, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return s.elements[i], true
}

// Replace swaps in e for the element sharing its ID, keeping its z position.
func (s *Scene) Replace(e Element) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(e.ElementID())
	if i < 0 {
		return false
	}
	s.elements[i] = e
	return true
}

// Remove deletes the element with id, dropping the selection if it pointed there.
func (s *Scene) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.elements = append(s.elements[:i], s.elements[i+1:]...)
	if s.selected == id {
		s.selected = ""
	}
	s.log.Debug().Str("id", id).Msg("element removed")
	return true
}

// PopLast removes the most recently added element.
func (s *Scene) PopLast() (Element, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.elements) == 0 {
		return nil, false
	}
	last := s.elements[len(s.elements)-1]
	s.elements = s.elements[:len(s.elements)-1]
	if s.selected == last.ElementID() {
		s.selected = ""
	}
	return last, true
}

// FindAt returns the topmost element hit by p.
func (s *Scene) FindAt(p geometry.Point) (Element, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := len(s.elements) - 1; i >= 0; i-- {
		if s.elements[i].Contains(p) {
			return s.elements[i], true
		}
	}
	return nil, false
}

// Select makes id the only selected element. An empty id clears the
// selection. Unknown ids leave the selection untouched and return false.
func (s *Scene) Select(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == "" {
		s.selected = ""
		return true
	}
	if s.indexOf(id) < 0 {
		return false
	}
	s.selected = id
	return true
}

// SelectedID returns the selected element's id, or "" when nothing is selected.
func (s *Scene) SelectedID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Selected returns the selected element.
func (s *Scene) Selected() (Element, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == "" {
		return nil, false
	}
	i := s.indexOf(s.selected)
	if i < 0 {
		return nil, false
	}
	return s.elements[i], true
}

// Clear removes every element and the selection.
func (s *Scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log.Debug().Int("count", len(s.elements)).Msg("scene cleared")
	s.elements = nil
	s.selected = ""
}

// Elements returns a snapshot in z-order.
func (s *Scene) Elements() []Element {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Element, len(s.elements))
	copy(out, s.elements)
	return out
}

func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.elements)
}

func (s *Scene) indexOf(id string) int {
	for i, e := range s.elements {
		if e.ElementID() == id {
			return i
		}
	}
	return -1
}
