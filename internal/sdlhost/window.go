package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/massrename/internal/errs"
	"github.com/BrandonKowalski/massrename/internal/logging"
)

// WindowOptions selects the SDL window flags.
type WindowOptions struct {
	Resizable   bool // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Maximized   bool // Start maximized (SDL_WINDOW_MAXIMIZED)
	AlwaysOnTop bool // Window stays above others (SDL_WINDOW_ALWAYS_ON_TOP)
	Hidden      bool // Start hidden (omits SDL_WINDOW_SHOWN)
	TopLeft     bool // Open at (50, 50) instead of centered
}

// DefaultWindowOptions is a shown, resizable window.
func DefaultWindowOptions() WindowOptions {
	return WindowOptions{Resizable: true}
}

func (wo WindowOptions) flags() uint32 {
	var flags uint32
	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Maximized {
		flags |= sdl.WINDOW_MAXIMIZED
	}
	if wo.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}
	return flags
}

// window wraps the SDL window and renderer.
type window struct {
	window          *sdl.Window
	renderer        *sdl.Renderer
	hasVSync        bool
	lastPresentTime uint64
}

func newWindow(title string, width, height int32, opts WindowOptions) (*window, error) {
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)

	if opts.TopLeft {
		x, y = 50, 50
	}

	logging.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	w, err := sdl.CreateWindow(title, x, y, width, height, opts.flags())
	if err != nil {
		return nil, errs.NewInfrastructureError("create_window", err)
	}

	r, err := sdl.CreateRenderer(w, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		logging.GetInternalLogger().Warn("Accelerated renderer unavailable; falling back to software", "error", err)
		r, err = sdl.CreateRenderer(w, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		w.Destroy()
		return nil, errs.NewInfrastructureError("create_renderer", err)
	}

	if err := r.SetDrawBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		logging.GetInternalLogger().Warn("Failed to enable blending", "error", err)
	}

	info, err := r.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &window{window: w, renderer: r, hasVSync: vsync}, nil
}

func (w *window) size() (int32, int32) {
	return w.window.GetSize()
}

func (w *window) setTitle(title string) {
	if w.window.GetTitle() != title {
		w.window.SetTitle(title)
	}
}

// present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available.
func (w *window) present() {
	w.renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

func (w *window) destroy() {
	w.renderer.Destroy()
	w.window.Destroy()
}
