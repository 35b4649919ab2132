package widget

// Event is an input event delivered by the host. The concrete types below
// are the only implementations.
type Event interface {
	isEvent()
}

// KeyPressed is sent when a key goes down.
type KeyPressed struct {
	Key       KeyCode
	Modifiers Modifiers
}

// KeyReleased is sent when a key goes up.
type KeyReleased struct {
	Key       KeyCode
	Modifiers Modifiers
}

// ModifiersChanged is sent whenever the set of held modifier keys changes.
type ModifiersChanged struct {
	Modifiers Modifiers
}

// CharacterReceived carries one rune of text input.
type CharacterReceived struct {
	Char rune
}

// CursorMoved is sent when the mouse moves.
type CursorMoved struct {
	Position Point
}

// MouseButtonPressed is sent when a mouse button goes down.
// The pointer position is the cursor position passed alongside the event.
type MouseButtonPressed struct {
	Button MouseButton
}

// MouseButtonReleased is sent when a mouse button goes up.
type MouseButtonReleased struct {
	Button MouseButton
}

// WheelScrolled carries a scroll delta in lines.
type WheelScrolled struct {
	Delta Vector
}

// FingerPressed is sent when a touch begins.
type FingerPressed struct {
	ID       uint64
	Position Point
}

// FingerMoved is sent while a touch moves.
type FingerMoved struct {
	ID       uint64
	Position Point
}

// FingerLifted is sent when a touch ends.
type FingerLifted struct {
	ID       uint64
	Position Point
}

// WindowResized is sent when the host surface changes size.
type WindowResized struct {
	Width  uint32
	Height uint32
}

func (KeyPressed) isEvent()          {}
func (KeyReleased) isEvent()         {}
func (ModifiersChanged) isEvent()    {}
func (CharacterReceived) isEvent()   {}
func (CursorMoved) isEvent()         {}
func (MouseButtonPressed) isEvent()  {}
func (MouseButtonReleased) isEvent() {}
func (WheelScrolled) isEvent()       {}
func (FingerPressed) isEvent()       {}
func (FingerMoved) isEvent()         {}
func (FingerLifted) isEvent()        {}
func (WindowResized) isEvent()       {}

// Status is the outcome of offering an event to a widget.
type Status int

const (
	// Ignored leaves the event available to ancestors.
	Ignored Status = iota
	// Captured consumes the event.
	Captured
)

// Merge returns Captured if either status is Captured.
func (s Status) Merge(o Status) Status {
	if s == Captured || o == Captured {
		return Captured
	}
	return Ignored
}

func (s Status) String() string {
	if s == Captured {
		return "captured"
	}
	return "ignored"
}
