// Package scrollable provides a vertical viewport over a child that may be
// taller than the space it is given.
//
// Like the list box, the widget is rebuilt every frame and the scroll
// position lives in a State the application keeps.
package scrollable

import (
	"math"

	"github.com/BrandonKowalski/massrename/pkg/widget"
)

// LineHeight is the distance one wheel notch scrolls.
const LineHeight float32 = 60

// outside is a cursor no child contains.
var outside = widget.Point{X: float32(math.Inf(-1)), Y: float32(math.Inf(-1))}

// State is the scroll position of a Scrollable.
type State struct {
	offset  float32
	grabbed bool
	grabAt  float32 // where the scroller was grabbed, as a fraction of its height
}

// NewState creates a State scrolled to the top.
func NewState() *State {
	return &State{}
}

// Offset returns how far the content is scrolled, in pixels.
func (s *State) Offset() float32 {
	return s.offset
}

// ScrollTo moves to offset. The value is clamped to the content the next
// time the widget lays it out against real bounds.
func (s *State) ScrollTo(offset float32) {
	s.offset = max(offset, 0)
}

// IsScrollerGrabbed reports whether the scroller is being dragged.
func (s *State) IsScrollerGrabbed() bool {
	return s.grabbed
}

func (s *State) clamp(bounds, content widget.Rectangle) float32 {
	hidden := max(content.Height-bounds.Height, 0)
	s.offset = min(max(s.offset, 0), hidden)
	return s.offset
}

func (s *State) scrollBy(delta float32, bounds, content widget.Rectangle) {
	s.offset += delta
	s.clamp(bounds, content)
}

// scrollToFraction scrolls so that fraction of the hidden content lies
// above the viewport.
func (s *State) scrollToFraction(fraction float32, bounds, content widget.Rectangle) {
	hidden := max(content.Height-bounds.Height, 0)
	s.offset = min(max(fraction, 0), 1) * hidden
}

// Style colours the scrollbar.
type Style struct {
	Background      widget.Color // Track
	Scroller        widget.Color
	ScrollerHovered widget.Color // Scroller under the cursor or being dragged
	BorderRadius    float32
}

// DefaultStyle is a grey scroller on a transparent track.
func DefaultStyle() Style {
	return Style{
		Background:      widget.Transparent,
		Scroller:        widget.RGBA8(0, 0, 0, 0x4D),
		ScrollerHovered: widget.RGBA8(0, 0, 0, 0x80),
		BorderRadius:    5,
	}
}

// Scrollable shows a vertical window onto its content.
type Scrollable[M any] struct {
	settings
	state   *State
	content widget.Widget[M]
}

type settings struct {
	width           widget.Length
	height          widget.Length
	maxHeight       uint32
	scrollbarWidth  float32
	scrollbarMargin float32
	scrollerWidth   float32
	style           Style
}

// Option configures a Scrollable.
type Option func(*settings)

// New wraps content. Width and height shrink to the content by default.
func New[M any](state *State, content widget.Widget[M], opts ...Option) *Scrollable[M] {
	s := &Scrollable[M]{
		settings: settings{
			width:          widget.Shrink,
			height:         widget.Shrink,
			maxHeight:      math.MaxUint32,
			scrollbarWidth: 10,
			scrollerWidth:  10,
			style:          DefaultStyle(),
		},
		state:   state,
		content: content,
	}
	for _, opt := range opts {
		opt(&s.settings)
	}
	return s
}

func WithWidth(width widget.Length) Option {
	return func(s *settings) { s.width = width }
}

func WithHeight(height widget.Length) Option {
	return func(s *settings) { s.height = height }
}

func WithMaxHeight(maxHeight uint32) Option {
	return func(s *settings) { s.maxHeight = maxHeight }
}

// WithScrollbarWidth sets the width of the track.
func WithScrollbarWidth(width uint16) Option {
	return func(s *settings) { s.scrollbarWidth = float32(width) }
}

// WithScrollbarMargin sets the gap between the track and the right edge.
func WithScrollbarMargin(margin uint16) Option {
	return func(s *settings) { s.scrollbarMargin = float32(margin) }
}

// WithScrollerWidth sets the width of the draggable scroller.
func WithScrollerWidth(width uint16) Option {
	return func(s *settings) { s.scrollerWidth = float32(width) }
}

func WithStyle(style Style) Option {
	return func(s *settings) { s.style = style }
}

func (s *Scrollable[M]) Width() widget.Length  { return s.width }
func (s *Scrollable[M]) Height() widget.Length { return s.height }

// Layout gives the content the full width and unbounded height, then fits
// the viewport to the limits.
func (s *Scrollable[M]) Layout(r widget.Renderer, limits widget.Limits) widget.Node {
	limits = limits.MaxHeight(s.maxHeight).Width(s.width).Height(s.height)

	contentLimits := widget.NewLimits(
		widget.Size{Width: limits.Min().Width},
		widget.Size{Width: limits.Max().Width, Height: widget.InfiniteSize.Height},
	)
	content := s.content.Layout(r, contentLimits)

	size := limits.Resolve(content.Size())
	return widget.NewNodeWithChildren(size, []widget.Node{content})
}

// viewport resolves the layout into the visible bounds and the content
// layout shifted by the clamped scroll offset.
func (s *Scrollable[M]) viewport(layout widget.Layout) (bounds widget.Rectangle, content widget.Layout) {
	bounds = layout.Bounds()
	content = layout.Children()[0]
	offset := s.state.clamp(bounds, content.Bounds())
	return bounds, content.Translate(widget.Vector{Y: -offset})
}

type scrollbar struct {
	track    widget.Rectangle
	scroller widget.Rectangle
}

// scrollbar places the track and scroller. ok is false when the content
// fits and nothing can scroll.
func (s *Scrollable[M]) scrollbar(bounds, content widget.Rectangle) (bar scrollbar, ok bool) {
	if content.Height <= bounds.Height || bounds.Height <= 0 {
		return scrollbar{}, false
	}

	width := max(s.scrollbarWidth, s.scrollerWidth)
	bar.track = widget.Rectangle{
		X:      bounds.Right() - width - s.scrollbarMargin,
		Y:      bounds.Y,
		Width:  width,
		Height: bounds.Height,
	}

	ratio := bounds.Height / content.Height
	bar.scroller = widget.Rectangle{
		X:      bar.track.X + (width-s.scrollerWidth)/2,
		Y:      bounds.Y + s.state.offset*ratio,
		Width:  s.scrollerWidth,
		Height: bounds.Height * ratio,
	}
	return bar, true
}

// drag scrolls so the grabbed point of the scroller follows y.
func (s *Scrollable[M]) drag(y float32, bounds, content widget.Rectangle, bar scrollbar) {
	travel := bounds.Height - bar.scroller.Height
	if travel <= 0 {
		return
	}
	fraction := (y - bounds.Y - bar.scroller.Height*s.state.grabAt) / travel
	s.state.scrollToFraction(fraction, bounds, content)
}

// contentCursor hides the cursor from the content when it is outside the
// viewport or over the scrollbar, so rows scrolled out of view cannot be
// hit.
func contentCursor(cursor widget.Point, bounds widget.Rectangle, bar scrollbar, hasBar bool) widget.Point {
	if !bounds.Contains(cursor) || (hasBar && bar.track.Contains(cursor)) {
		return outside
	}
	return cursor
}

// contentEvent hides touches outside the viewport from the content.
func contentEvent(ev widget.Event, bounds widget.Rectangle) widget.Event {
	switch e := ev.(type) {
	case widget.FingerPressed:
		if !bounds.Contains(e.Position) {
			e.Position = outside
		}
		return e
	case widget.FingerMoved:
		if !bounds.Contains(e.Position) {
			e.Position = outside
		}
		return e
	case widget.FingerLifted:
		if !bounds.Contains(e.Position) {
			e.Position = outside
		}
		return e
	}
	return ev
}

func (s *Scrollable[M]) Draw(r widget.Renderer, style widget.RenderStyle, layout widget.Layout, cursor widget.Point, viewport widget.Rectangle) {
	bounds, content := s.viewport(layout)
	visible, ok := bounds.Intersection(viewport)
	if !ok {
		return
	}
	bar, hasBar := s.scrollbar(bounds, layout.Children()[0].Bounds())

	r.PushClip(visible)
	s.content.Draw(r, style, content, contentCursor(cursor, bounds, bar, hasBar), visible)
	r.PopClip()

	if !hasBar {
		return
	}

	r.FillQuad(widget.Quad{Bounds: bar.track, BorderRadius: s.style.BorderRadius}, s.style.Background)

	scroller := s.style.Scroller
	if s.state.grabbed || bar.scroller.Contains(cursor) {
		scroller = s.style.ScrollerHovered
	}
	r.FillQuad(widget.Quad{Bounds: bar.scroller, BorderRadius: s.style.BorderRadius}, scroller)
}

// OnEvent drives the scrollbar and offers everything else to the content
// first. The wheel and paging keys scroll when the content ignores them and
// the cursor is over the viewport.
func (s *Scrollable[M]) OnEvent(ev widget.Event, layout widget.Layout, cursor widget.Point, r widget.Renderer, clipboard widget.Clipboard, shell *widget.Shell[M]) widget.Status {
	bounds, content := s.viewport(layout)
	full := layout.Children()[0].Bounds()
	bar, hasBar := s.scrollbar(bounds, full)

	if s.state.grabbed {
		switch ev.(type) {
		case widget.MouseButtonReleased:
			s.state.grabbed = false
			return widget.Captured
		case widget.CursorMoved:
			s.drag(cursor.Y, bounds, full, bar)
			return widget.Captured
		}
	}

	if _, ok := ev.(widget.MouseButtonPressed); ok && hasBar && bar.track.Contains(cursor) {
		s.state.grabAt = 0.5
		if bar.scroller.Contains(cursor) && bar.scroller.Height > 0 {
			s.state.grabAt = (cursor.Y - bar.scroller.Y) / bar.scroller.Height
		}
		s.state.grabbed = true
		s.drag(cursor.Y, bounds, full, bar)
		return widget.Captured
	}

	status := s.content.OnEvent(contentEvent(ev, bounds), content, contentCursor(cursor, bounds, bar, hasBar), r, clipboard, shell)
	if status == widget.Captured || !bounds.Contains(cursor) {
		return status
	}

	switch e := ev.(type) {
	case widget.WheelScrolled:
		s.state.scrollBy(-e.Delta.Y*LineHeight, bounds, full)
		return widget.Captured

	case widget.KeyPressed:
		switch e.Key {
		case widget.KeyPageDown:
			s.state.scrollBy(bounds.Height, bounds, full)
		case widget.KeyPageUp:
			s.state.scrollBy(-bounds.Height, bounds, full)
		case widget.KeyHome:
			s.state.scrollBy(-full.Height, bounds, full)
		case widget.KeyEnd:
			s.state.scrollBy(full.Height, bounds, full)
		default:
			return status
		}
		return widget.Captured
	}

	return status
}

func (s *Scrollable[M]) MouseInteraction(layout widget.Layout, cursor widget.Point, viewport widget.Rectangle, r widget.Renderer) widget.Interaction {
	bounds, content := s.viewport(layout)
	bar, hasBar := s.scrollbar(bounds, layout.Children()[0].Bounds())

	switch {
	case s.state.grabbed:
		return widget.InteractionGrabbing
	case hasBar && bar.scroller.Contains(cursor):
		return widget.InteractionGrab
	case hasBar && bar.track.Contains(cursor):
		return widget.InteractionIdle
	}

	visible, ok := bounds.Intersection(viewport)
	if !ok {
		return widget.InteractionIdle
	}
	return s.content.MouseInteraction(content, contentCursor(cursor, bounds, bar, hasBar), visible, r)
}

func (s *Scrollable[M]) Overlay(layout widget.Layout, r widget.Renderer) widget.Overlay[M] {
	_, content := s.viewport(layout)
	return s.content.Overlay(content, r)
}
