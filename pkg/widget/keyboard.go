package widget

import (
	"runtime"
	"strings"
)

// KeyCode identifies a physical key, independent of layout.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyTab
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyA
	KeyC
	KeyV
	KeyX
	KeyShift
	KeyControl
	KeyAlt
	KeyLogo
)

func (k KeyCode) GetName() string {
	switch k {
	case KeyDelete:
		return "Delete"
	case KeyBackspace:
		return "Backspace"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyTab:
		return "Tab"
	case KeySpace:
		return "Space"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyA:
		return "A"
	case KeyC:
		return "C"
	case KeyV:
		return "V"
	case KeyX:
		return "X"
	case KeyShift:
		return "Shift"
	case KeyControl:
		return "Control"
	case KeyAlt:
		return "Alt"
	case KeyLogo:
		return "Logo"
	default:
		return "Unknown"
	}
}

// IsModifier reports whether the key only changes the modifier state.
func (k KeyCode) IsModifier() bool {
	return k >= KeyShift && k <= KeyLogo
}

// Modifiers is a snapshot of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModLogo
)

func (m Modifiers) Shift() bool   { return m&ModShift != 0 }
func (m Modifiers) Control() bool { return m&ModControl != 0 }
func (m Modifiers) Alt() bool     { return m&ModAlt != 0 }
func (m Modifiers) Logo() bool    { return m&ModLogo != 0 }

// Command reports whether the platform's primary shortcut modifier is held:
// Logo on macOS, Control elsewhere.
func (m Modifiers) Command() bool {
	return m&CommandModifier() != 0
}

// CommandModifier returns the modifier Command checks on this platform.
func CommandModifier() Modifiers {
	if runtime.GOOS == "darwin" {
		return ModLogo
	}
	return ModControl
}

func (m Modifiers) String() string {
	var parts []string
	if m.Shift() {
		parts = append(parts, "shift")
	}
	if m.Control() {
		parts = append(parts, "ctrl")
	}
	if m.Alt() {
		parts = append(parts, "alt")
	}
	if m.Logo() {
		parts = append(parts, "logo")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseOther
)
