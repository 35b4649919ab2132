package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/massrename/pkg/widget"
)

// frame holds the widget tree the host is currently showing. The tree is
// rebuilt after every batch of messages so the next event is routed
// against the updated layout.
type frame[M any] struct {
	host    *Host
	program Program[M]
	shell   *widget.Shell[M]
	events  translator

	// external is set to nil once its sender closes it.
	external <-chan M

	view   widget.Widget[M]
	node   widget.Node
	layout widget.Layout
	dirty  bool
}

func (f *frame[M]) rebuild() {
	w, h := f.host.window.size()
	limits := widget.NewLimits(widget.ZeroSize, widget.Size{Width: float32(w), Height: float32(h)})

	f.view = f.program.View()
	f.node = f.view.Layout(f.host.renderer, limits)
	f.layout = widget.NewLayout(&f.node)
	f.host.window.setTitle(f.program.Title())
	f.dirty = true
}

func (f *frame[M]) draw() {
	r := f.host.renderer
	r.clear(f.host.opts.Background)

	style := widget.RenderStyle{TextColor: f.host.opts.TextColor}
	f.view.Draw(r, style, f.layout, f.events.cursor, f.layout.Bounds())

	f.host.window.present()
	f.dirty = false
}

// handle routes one SDL event and reports whether the window should close.
func (f *frame[M]) handle(ev sdl.Event) bool {
	events, quit := f.events.translate(ev)
	if quit {
		return true
	}

	for _, e := range events {
		if _, ok := e.(widget.WindowResized); ok {
			f.rebuild()
		}

		f.view.OnEvent(e, f.layout, f.events.cursor, f.host.renderer, systemClipboard{}, f.shell)
		if f.shell.Len() > 0 {
			f.apply(f.shell.Drain())
		}
	}

	if len(events) > 0 {
		f.dirty = true
	}
	return false
}

func (f *frame[M]) apply(messages []M) {
	for _, msg := range messages {
		f.program.Update(msg)
	}
	f.rebuild()
}

// drain applies every message already waiting on the external channel.
func (f *frame[M]) drain() {
	if messages := f.pending(); len(messages) > 0 {
		f.apply(messages)
	}
}

// pending takes the messages waiting on the external channel without
// blocking.
func (f *frame[M]) pending() []M {
	var messages []M
	for f.external != nil {
		select {
		case msg, ok := <-f.external:
			if !ok {
				f.external = nil
				return messages
			}
			messages = append(messages, msg)
		default:
			return messages
		}
	}
	return messages
}
