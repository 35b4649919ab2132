package listbox

import (
	"github.com/BrandonKowalski/massrename/internal/logging"
	"github.com/BrandonKowalski/massrename/pkg/widget"
)

// OnEvent offers the event to every row first. Container behaviour only
// applies when no row captured it:
//
//   - Delete publishes the selection through onDelete and clears it, if the
//     list was the target of the last pointer press.
//   - A pointer press arms or disarms Delete depending on whether it landed
//     inside the list, and selects the rows whose band it hit.
//
// Modifier changes are always recorded, whatever the rows do with them.
func (l *ListBox[M]) OnEvent(ev widget.Event, layout widget.Layout, cursor widget.Point, r widget.Renderer, clipboard widget.Clipboard, shell *widget.Shell[M]) widget.Status {
	childLayouts := layout.Children()
	statuses := make([]widget.Status, len(l.children))
	captured := false
	for i, child := range l.children {
		statuses[i] = child.OnEvent(ev, childLayouts[i], cursor, r, clipboard, shell)
		captured = captured || statuses[i] == widget.Captured
	}

	if e, ok := ev.(widget.ModifiersChanged); ok {
		l.state.SetModifiers(e.Modifiers)
	}

	switch e := ev.(type) {
	case widget.KeyPressed:
		if e.Key != widget.KeyDelete {
			break
		}
		if captured {
			return widget.Captured
		}
		return l.delete(shell)

	case widget.MouseButtonPressed:
		return l.press(cursor, layout, childLayouts, statuses, captured)

	case widget.FingerPressed:
		return l.press(e.Position, layout, childLayouts, statuses, captured)
	}

	if captured {
		return widget.Captured
	}
	return widget.Ignored
}

func (l *ListBox[M]) delete(shell *widget.Shell[M]) widget.Status {
	if !l.state.containerSelected {
		return widget.Ignored
	}

	mask := l.state.take()
	logging.GetInternalLogger().Debug("listbox delete", "rows", len(mask), "selected", countTrue(mask))
	shell.Publish(l.onDelete(mask))

	return widget.Captured
}

func (l *ListBox[M]) press(at widget.Point, layout widget.Layout, childLayouts []widget.Layout, statuses []widget.Status, captured bool) widget.Status {
	if captured {
		return widget.Captured
	}

	bounds := layout.Bounds()
	style := l.style.Style()

	var hits []int
	for i, status := range statuses {
		if status != widget.Ignored {
			continue
		}
		if l.selectionBounds(bounds, childLayouts[i].Bounds(), style).Contains(at) {
			hits = append(hits, i)
		}
	}

	l.state.containerSelected = bounds.Contains(at)

	for _, i := range hits {
		l.state.Select(i)
	}

	if len(hits) == 0 {
		return widget.Ignored
	}

	logging.GetInternalLogger().Debug("listbox select",
		"rows", hits,
		"modifiers", l.state.modifiers.String(),
		"selected", l.state.Count())

	return widget.Captured
}

func countTrue(mask []bool) int {
	n := 0
	for _, v := range mask {
		if v {
			n++
		}
	}
	return n
}
