package listbox

import (
	"fmt"

	"github.com/BrandonKowalski/massrename/pkg/widget"
)

// State is the selection state of a ListBox. It outlives the ListBox, which
// is rebuilt every frame and borrows the State while it is alive.
//
// The zero value is an empty selection ready to use.
type State struct {
	containerSelected bool
	selected          []bool
	modifiers         widget.Modifiers
	anchor            int
	hasAnchor         bool
}

// NewState creates an empty State.
func NewState() *State {
	return &State{}
}

// Select performs a selection at index according to the held modifiers.
//
// With shift held and an anchor present, every element between index and
// the anchor is selected and everything else is deselected; the anchor
// stays put. Otherwise, with command held, the element at index is toggled
// and becomes the anchor. Otherwise only the element at index is selected
// and it becomes the anchor.
//
// Select panics if index, or the anchor in a range selection, is out of
// range.
func (s *State) Select(index int) {
	s.checkIndex(index)

	switch {
	case s.modifiers.Shift() && s.hasAnchor:
		s.checkIndex(s.anchor)
		lo, hi := min(index, s.anchor), max(index, s.anchor)
		for i := range s.selected {
			s.selected[i] = i >= lo && i <= hi
		}
	case s.modifiers.Command():
		s.selected[index] = !s.selected[index]
		s.anchor, s.hasAnchor = index, true
	default:
		clear(s.selected)
		s.selected[index] = true
		s.anchor, s.hasAnchor = index, true
	}
}

// Selected returns a copy of the per-element selection flags.
func (s *State) Selected() []bool {
	out := make([]bool, len(s.selected))
	copy(out, s.selected)
	return out
}

// IsSelected reports whether the element at index is selected.
func (s *State) IsSelected(index int) bool {
	return index >= 0 && index < len(s.selected) && s.selected[index]
}

// Len returns the number of elements the state tracks.
func (s *State) Len() int {
	return len(s.selected)
}

// Count returns the number of selected elements.
func (s *State) Count() int {
	n := 0
	for _, v := range s.selected {
		if v {
			n++
		}
	}
	return n
}

// Modifiers returns the last observed modifier keys.
func (s *State) Modifiers() widget.Modifiers {
	return s.modifiers
}

// SetModifiers records the held modifier keys.
func (s *State) SetModifiers(m widget.Modifiers) {
	s.modifiers = m
}

// Anchor returns the index range selections are measured from.
func (s *State) Anchor() (int, bool) {
	return s.anchor, s.hasAnchor
}

// IsContainerSelected reports whether the last pointer press landed inside
// the list, which arms the delete key.
func (s *State) IsContainerSelected() bool {
	return s.containerSelected
}

// Clear deselects every element and forgets the anchor.
func (s *State) Clear() {
	clear(s.selected)
	s.anchor, s.hasAnchor = 0, false
}

// resize makes the state track n elements. New elements are unselected.
// An anchor that no longer refers to an element is dropped.
func (s *State) resize(n int) {
	switch {
	case n < len(s.selected):
		s.selected = s.selected[:n]
	case n > len(s.selected):
		s.selected = append(s.selected, make([]bool, n-len(s.selected))...)
	}

	if s.hasAnchor && s.anchor >= n {
		s.anchor, s.hasAnchor = 0, false
	}
}

// push tracks one more unselected element.
func (s *State) push() {
	s.selected = append(s.selected, false)
}

// take returns the selection flags and leaves every element unselected.
func (s *State) take() []bool {
	taken := s.selected
	s.selected = make([]bool, len(taken))
	return taken
}

func (s *State) checkIndex(index int) {
	if index < 0 || index >= len(s.selected) {
		panic(fmt.Sprintf("listbox: index %d out of range for %d elements", index, len(s.selected)))
	}
}
