package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/massrename/pkg/widget"
)

var keyCodes = map[sdl.Keycode]widget.KeyCode{
	sdl.K_DELETE:    widget.KeyDelete,
	sdl.K_BACKSPACE: widget.KeyBackspace,
	sdl.K_RETURN:    widget.KeyEnter,
	sdl.K_KP_ENTER:  widget.KeyEnter,
	sdl.K_ESCAPE:    widget.KeyEscape,
	sdl.K_TAB:       widget.KeyTab,
	sdl.K_SPACE:     widget.KeySpace,
	sdl.K_UP:        widget.KeyUp,
	sdl.K_DOWN:      widget.KeyDown,
	sdl.K_LEFT:      widget.KeyLeft,
	sdl.K_RIGHT:     widget.KeyRight,
	sdl.K_HOME:      widget.KeyHome,
	sdl.K_END:       widget.KeyEnd,
	sdl.K_PAGEUP:    widget.KeyPageUp,
	sdl.K_PAGEDOWN:  widget.KeyPageDown,
	sdl.K_a:         widget.KeyA,
	sdl.K_c:         widget.KeyC,
	sdl.K_v:         widget.KeyV,
	sdl.K_x:         widget.KeyX,
	sdl.K_LSHIFT:    widget.KeyShift,
	sdl.K_RSHIFT:    widget.KeyShift,
	sdl.K_LCTRL:     widget.KeyControl,
	sdl.K_RCTRL:     widget.KeyControl,
	sdl.K_LALT:      widget.KeyAlt,
	sdl.K_RALT:      widget.KeyAlt,
	sdl.K_LGUI:      widget.KeyLogo,
	sdl.K_RGUI:      widget.KeyLogo,
}

func modifiersFrom(mod uint32) widget.Modifiers {
	var m widget.Modifiers
	if mod&sdl.KMOD_SHIFT != 0 {
		m |= widget.ModShift
	}
	if mod&sdl.KMOD_CTRL != 0 {
		m |= widget.ModControl
	}
	if mod&sdl.KMOD_ALT != 0 {
		m |= widget.ModAlt
	}
	if mod&sdl.KMOD_GUI != 0 {
		m |= widget.ModLogo
	}
	return m
}

// translator turns SDL events into widget events. It remembers the cursor
// and modifier state so it can report changes rather than raw key codes.
type translator struct {
	modifiers widget.Modifiers
	cursor    widget.Point
	width     float32
	height    float32
}

// translate returns the widget events for ev. quit is set for a window
// close request.
func (t *translator) translate(ev sdl.Event) (events []widget.Event, quit bool) {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return nil, true

	case *sdl.KeyboardEvent:
		events = t.syncModifiers(modifiersFrom(uint32(e.Keysym.Mod)))
		key, ok := keyCodes[e.Keysym.Sym]
		if !ok {
			key = widget.KeyUnknown
		}
		if e.Type == sdl.KEYDOWN {
			events = append(events, widget.KeyPressed{Key: key, Modifiers: t.modifiers})
		} else {
			events = append(events, widget.KeyReleased{Key: key, Modifiers: t.modifiers})
		}
		return events, false

	case *sdl.TextInputEvent:
		for _, r := range e.GetText() {
			events = append(events, widget.CharacterReceived{Char: r})
		}
		return events, false

	case *sdl.MouseMotionEvent:
		if e.Which == sdl.TOUCH_MOUSEID {
			return nil, false
		}
		t.cursor = widget.Point{X: float32(e.X), Y: float32(e.Y)}
		return []widget.Event{widget.CursorMoved{Position: t.cursor}}, false

	case *sdl.MouseButtonEvent:
		if e.Which == sdl.TOUCH_MOUSEID {
			return nil, false
		}
		t.cursor = widget.Point{X: float32(e.X), Y: float32(e.Y)}
		button := mouseButton(e.Button)
		if e.Type == sdl.MOUSEBUTTONDOWN {
			return []widget.Event{widget.MouseButtonPressed{Button: button}}, false
		}
		return []widget.Event{widget.MouseButtonReleased{Button: button}}, false

	case *sdl.MouseWheelEvent:
		return []widget.Event{widget.WheelScrolled{Delta: widget.Vector{X: float32(e.X), Y: float32(e.Y)}}}, false

	case *sdl.TouchFingerEvent:
		at := widget.Point{X: e.X * t.width, Y: e.Y * t.height}
		id := uint64(e.FingerID)
		switch e.Type {
		case sdl.FINGERDOWN:
			return []widget.Event{widget.FingerPressed{ID: id, Position: at}}, false
		case sdl.FINGERMOTION:
			return []widget.Event{widget.FingerMoved{ID: id, Position: at}}, false
		default:
			return []widget.Event{widget.FingerLifted{ID: id, Position: at}}, false
		}

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			t.resize(e.Data1, e.Data2)
			return []widget.Event{widget.WindowResized{Width: uint32(e.Data1), Height: uint32(e.Data2)}}, false
		}
	}

	return nil, false
}

func (t *translator) syncModifiers(m widget.Modifiers) []widget.Event {
	if m == t.modifiers {
		return nil
	}
	t.modifiers = m
	return []widget.Event{widget.ModifiersChanged{Modifiers: m}}
}

func (t *translator) resize(width, height int32) {
	t.width, t.height = float32(width), float32(height)
}

func mouseButton(b uint8) widget.MouseButton {
	switch b {
	case sdl.BUTTON_LEFT:
		return widget.MouseLeft
	case sdl.BUTTON_RIGHT:
		return widget.MouseRight
	case sdl.BUTTON_MIDDLE:
		return widget.MouseMiddle
	default:
		return widget.MouseOther
	}
}
