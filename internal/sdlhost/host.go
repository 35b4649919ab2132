// Package sdlhost runs a widget tree in an SDL2 window. It owns the window,
// paints draw commands with the SDL renderer and SDL_ttf, and turns SDL
// input into widget events.
//
// SDL must be driven from the main OS thread, so Init, Run and Close have
// to be called from the goroutine that started the program.
package sdlhost

import (
	"context"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/massrename/internal/errs"
	"github.com/BrandonKowalski/massrename/internal/logging"
	"github.com/BrandonKowalski/massrename/pkg/widget"
)

func init() {
	runtime.LockOSThread()
}

// Program is an application the host can run.
type Program[M any] interface {
	Title() string
	Update(msg M)
	View() widget.Widget[M]
}

// Options configures Init.
type Options struct {
	Title      string
	Width      int32
	Height     int32
	FontPaths  []string // Font files to try in order; see FindFont
	FontSize   int      // Default text size in pixels
	Background widget.Color
	TextColor  widget.Color
	Window     WindowOptions
}

// Host is an initialised SDL window ready to run a program.
type Host struct {
	opts     Options
	window   *window
	fonts    *fontSet
	renderer *renderer
	cursors  map[widget.Interaction]*sdl.Cursor
	cursor   widget.Interaction
}

// Init starts SDL and opens the window.
func Init(opts Options) (*Host, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, errs.NewInfrastructureError("sdl_init", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, errs.NewInfrastructureError("ttf_init", err)
	}

	h := &Host{opts: opts}

	fontPath, err := FindFont(opts.FontPaths...)
	if err != nil {
		h.Close()
		return nil, err
	}
	logging.GetInternalLogger().Debug("Using font", "path", fontPath)

	if h.fonts, err = newFontSet(fontPath, opts.FontSize); err != nil {
		h.Close()
		return nil, err
	}

	if h.window, err = newWindow(opts.Title, opts.Width, opts.Height, opts.Window); err != nil {
		h.Close()
		return nil, err
	}

	h.renderer = newRenderer(h.window.renderer, h.fonts, opts.FontSize)
	h.cursors = systemCursors()
	sdl.StartTextInput()

	return h, nil
}

var cursorShapes = map[widget.Interaction]sdl.SystemCursor{
	widget.InteractionIdle:                 sdl.SYSTEM_CURSOR_ARROW,
	widget.InteractionPointer:              sdl.SYSTEM_CURSOR_HAND,
	widget.InteractionGrab:                 sdl.SYSTEM_CURSOR_HAND,
	widget.InteractionText:                 sdl.SYSTEM_CURSOR_IBEAM,
	widget.InteractionCrosshair:            sdl.SYSTEM_CURSOR_CROSSHAIR,
	widget.InteractionWorking:              sdl.SYSTEM_CURSOR_WAITARROW,
	widget.InteractionGrabbing:             sdl.SYSTEM_CURSOR_SIZEALL,
	widget.InteractionResizingHorizontally: sdl.SYSTEM_CURSOR_SIZEWE,
	widget.InteractionResizingVertically:   sdl.SYSTEM_CURSOR_SIZENS,
}

func systemCursors() map[widget.Interaction]*sdl.Cursor {
	cursors := make(map[widget.Interaction]*sdl.Cursor, len(cursorShapes))
	for interaction, shape := range cursorShapes {
		if c := sdl.CreateSystemCursor(shape); c != nil {
			cursors[interaction] = c
		}
	}
	return cursors
}

func (h *Host) setCursor(interaction widget.Interaction) {
	if interaction == h.cursor {
		return
	}
	h.cursor = interaction
	if c, ok := h.cursors[interaction]; ok {
		sdl.SetCursor(c)
	}
}

// Close releases every SDL resource. It is safe on a partly initialised
// host.
func (h *Host) Close() {
	for _, c := range h.cursors {
		sdl.FreeCursor(c)
	}
	if h.renderer != nil {
		h.renderer.destroy()
	}
	if h.window != nil {
		h.window.destroy()
	}
	if h.fonts != nil {
		h.fonts.close()
	}
	ttf.Quit()
	sdl.Quit()
}

// Run shows program until the window is closed or ctx is cancelled.
// Messages received on external are applied as if a widget had published
// them; external may be nil.
func Run[M any](ctx context.Context, h *Host, program Program[M], external <-chan M) error {
	quit := atomic.NewBool(false)
	stop := context.AfterFunc(ctx, func() {
		quit.Store(true)
		if _, err := sdl.PushEvent(&sdl.UserEvent{Type: sdl.USEREVENT}); err != nil {
			logging.GetInternalLogger().Debug("Failed to wake event loop", "error", err)
		}
	})
	defer stop()

	f := &frame[M]{host: h, program: program, shell: widget.NewShell[M](), external: external}
	w, hgt := h.window.size()
	f.events.resize(w, hgt)
	f.rebuild()

	for !quit.Load() {
		if f.dirty {
			f.draw()
		}

		ev := sdl.WaitEventTimeout(50)
		for ; ev != nil; ev = sdl.PollEvent() {
			if f.handle(ev) {
				quit.Store(true)
				break
			}
		}

		f.drain()
		h.setCursor(f.view.MouseInteraction(f.layout, f.events.cursor, f.layout.Bounds(), h.renderer))
	}

	logging.GetInternalLogger().Debug("Event loop stopped")
	return ctx.Err()
}
