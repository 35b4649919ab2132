package widget

// Interaction is a hint for the mouse cursor shape. Values are ordered by
// priority: when several widgets answer, the host shows the highest.
type Interaction int

const (
	InteractionIdle Interaction = iota
	InteractionPointer
	InteractionGrab
	InteractionText
	InteractionCrosshair
	InteractionWorking
	InteractionGrabbing
	InteractionResizingHorizontally
	InteractionResizingVertically
)

// MaxInteraction returns the highest priority hint, or InteractionIdle.
func MaxInteraction(hints ...Interaction) Interaction {
	out := InteractionIdle
	for _, h := range hints {
		out = max(out, h)
	}
	return out
}

// Sizer is the part of a widget a layout resolver needs.
type Sizer interface {
	Width() Length
	Height() Length
	Layout(r Renderer, limits Limits) Node
}

// Widget is a node of the widget tree producing messages of type M.
type Widget[M any] interface {
	Sizer

	// Draw paints the widget at layout. viewport is the visible region.
	Draw(r Renderer, style RenderStyle, layout Layout, cursor Point, viewport Rectangle)

	// OnEvent handles one input event. Messages go to shell.
	OnEvent(ev Event, layout Layout, cursor Point, r Renderer, clipboard Clipboard, shell *Shell[M]) Status

	// MouseInteraction returns the cursor hint for the current position.
	MouseInteraction(layout Layout, cursor Point, viewport Rectangle, r Renderer) Interaction

	// Overlay returns a pop-up layer, or nil.
	Overlay(layout Layout, r Renderer) Overlay[M]
}

// Overlay is content drawn above the rest of the tree, such as an open
// dropdown menu.
type Overlay[M any] interface {
	Layout(r Renderer, bounds Size, position Point) Node
	Draw(r Renderer, style RenderStyle, layout Layout, cursor Point)
	OnEvent(ev Event, layout Layout, cursor Point, r Renderer, clipboard Clipboard, shell *Shell[M]) Status
	MouseInteraction(layout Layout, cursor Point, viewport Rectangle, r Renderer) Interaction
}

// Leaf provides the event, interaction and overlay behaviour of a widget
// that reacts to nothing. Embed it in passive widgets.
type Leaf[M any] struct{}

func (Leaf[M]) OnEvent(Event, Layout, Point, Renderer, Clipboard, *Shell[M]) Status {
	return Ignored
}

func (Leaf[M]) MouseInteraction(Layout, Point, Rectangle, Renderer) Interaction {
	return InteractionIdle
}

func (Leaf[M]) Overlay(Layout, Renderer) Overlay[M] {
	return nil
}
