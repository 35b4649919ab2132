package listbox

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/massrename/pkg/widget"
	"github.com/BrandonKowalski/massrename/pkg/widget/headless"
)

// row is a fixed-height child that records what it is given.
type row struct {
	height      float32
	status      widget.Status
	interaction widget.Interaction
	overlay     widget.Overlay[string]
	events      []widget.Event
	styles      []widget.RenderStyle
}

func (w *row) Width() widget.Length  { return widget.Shrink }
func (w *row) Height() widget.Length { return widget.Shrink }

func (w *row) Layout(_ widget.Renderer, limits widget.Limits) widget.Node {
	return widget.NewNode(limits.Width(w.Width()).Height(w.Height()).Resolve(widget.Size{Width: 40, Height: w.height}))
}

func (w *row) Draw(r widget.Renderer, style widget.RenderStyle, layout widget.Layout, _ widget.Point, _ widget.Rectangle) {
	w.styles = append(w.styles, style)
	r.FillText(widget.Text{Content: "row", Bounds: layout.Bounds(), Color: style.TextColor})
}

func (w *row) OnEvent(ev widget.Event, _ widget.Layout, _ widget.Point, _ widget.Renderer, _ widget.Clipboard, _ *widget.Shell[string]) widget.Status {
	w.events = append(w.events, ev)
	return w.status
}

func (w *row) MouseInteraction(widget.Layout, widget.Point, widget.Rectangle, widget.Renderer) widget.Interaction {
	return w.interaction
}

func (w *row) Overlay(widget.Layout, widget.Renderer) widget.Overlay[string] {
	return w.overlay
}

type fakeOverlay struct {
	name string
}

func (fakeOverlay) Layout(widget.Renderer, widget.Size, widget.Point) widget.Node {
	return widget.Node{}
}
func (fakeOverlay) Draw(widget.Renderer, widget.RenderStyle, widget.Layout, widget.Point) {}
func (fakeOverlay) OnEvent(widget.Event, widget.Layout, widget.Point, widget.Renderer, widget.Clipboard, *widget.Shell[string]) widget.Status {
	return widget.Ignored
}
func (fakeOverlay) MouseInteraction(widget.Layout, widget.Point, widget.Rectangle, widget.Renderer) widget.Interaction {
	return widget.InteractionIdle
}

// harness lays a list out once and drives events through it.
//
// With three 20px rows, padding [1, 23] and spacing 4 inside a 200px wide
// box, rows sit at y = 1, 25 and 49 and their bands are [1,23], [23,47]
// and [47,71].
type harness struct {
	t        *testing.T
	state    *State
	rows     []*row
	lb       *ListBox[string]
	node     widget.Node
	layout   widget.Layout
	renderer *headless.Renderer
	shell    *widget.Shell[string]
}

func newHarness(t *testing.T, state *State, n int, opts ...Option) *harness {
	t.Helper()

	h := &harness{t: t, state: state, renderer: headless.New(), shell: widget.NewShell[string]()}
	children := make([]widget.Widget[string], n)
	for i := range children {
		r := &row{height: 20}
		h.rows = append(h.rows, r)
		children[i] = r
	}

	defaults := []Option{
		WithPadding(widget.SymmetricPadding(1, 23)),
		WithSpacing(4),
		WithHeight(widget.Shrink),
	}
	h.lb = WithChildren(state, children, deleted, append(defaults, opts...)...)
	h.relayout()
	return h
}

func deleted(mask []bool) string {
	out := make([]byte, len(mask))
	for i, v := range mask {
		out[i] = '0'
		if v {
			out[i] = '1'
		}
	}
	return "deleted:" + string(out)
}

func (h *harness) relayout() {
	h.node = h.lb.Layout(h.renderer, widget.NewLimits(widget.ZeroSize, widget.Size{Width: 200, Height: 400}))
	h.layout = widget.NewLayout(&h.node)
}

func (h *harness) send(ev widget.Event, cursor widget.Point) widget.Status {
	return h.lb.OnEvent(ev, h.layout, cursor, h.renderer, widget.NullClipboard{}, h.shell)
}

func (h *harness) modifiers(m widget.Modifiers) {
	h.send(widget.ModifiersChanged{Modifiers: m}, widget.Point{})
}

func (h *harness) click(y float32) widget.Status {
	return h.send(widget.MouseButtonPressed{Button: widget.MouseLeft}, widget.Point{X: 100, Y: y})
}

func (h *harness) clickRow(i int) widget.Status {
	return h.click(12 + float32(i)*24)
}

func (h *harness) pressDelete() widget.Status {
	return h.send(widget.KeyPressed{Key: widget.KeyDelete}, widget.Point{})
}

func TestStateTracksChildCount(t *testing.T) {
	for _, n := range []int{0, 1, 3, 10} {
		state := NewState()
		lb := WithChildren(state, make([]widget.Widget[string], n), deleted)
		assert.Equal(t, n, state.Len())
		assert.Equal(t, n, lb.Len())

		lb.Push(&row{height: 10})
		assert.Equal(t, n+1, state.Len())
		assert.False(t, state.IsSelected(n))
	}

	t.Run("NewIsEmpty", func(t *testing.T) {
		state := &State{}
		state.resize(4)
		New(state, deleted)
		assert.Equal(t, 0, state.Len())
	})

	t.Run("RebuildKeepsSelection", func(t *testing.T) {
		state := NewState()
		newHarness(t, state, 3).clickRow(1)
		newHarness(t, state, 3)
		assert.Equal(t, []bool{false, true, false}, state.Selected())
	})
}

func TestSelect(t *testing.T) {
	newState := func(selected ...bool) *State {
		s := NewState()
		s.resize(len(selected))
		copy(s.selected, selected)
		return s
	}

	t.Run("SingleSelectsOnlyIndex", func(t *testing.T) {
		s := newState(true, false, true, true)
		s.Select(1)
		assert.Equal(t, []bool{false, true, false, false}, s.Selected())
		anchor, ok := s.Anchor()
		assert.True(t, ok)
		assert.Equal(t, 1, anchor)
	})

	t.Run("DisjointToggleTwiceRestores", func(t *testing.T) {
		s := newState(true, false, true)
		s.SetModifiers(widget.CommandModifier())
		s.Select(1)
		assert.Equal(t, []bool{true, true, true}, s.Selected())
		s.Select(1)
		assert.Equal(t, []bool{true, false, true}, s.Selected())
		anchor, _ := s.Anchor()
		assert.Equal(t, 1, anchor)
	})

	t.Run("RangeIsInclusiveSpan", func(t *testing.T) {
		for _, tc := range []struct{ anchor, target int }{{1, 4}, {4, 1}, {2, 2}, {0, 5}} {
			s := newState(true, false, false, false, false, true)
			s.Select(tc.anchor)
			s.SetModifiers(widget.ModShift)
			s.Select(tc.target)

			lo, hi := min(tc.anchor, tc.target), max(tc.anchor, tc.target)
			want := make([]bool, 6)
			for i := lo; i <= hi; i++ {
				want[i] = true
			}
			if diff := cmp.Diff(want, s.Selected()); diff != "" {
				t.Errorf("range %d..%d mismatch (-want +got):\n%s", tc.anchor, tc.target, diff)
			}
		}
	})

	t.Run("RangeKeepsAnchor", func(t *testing.T) {
		s := newState(false, false, false, false, false)
		s.Select(2)
		s.SetModifiers(widget.ModShift)
		s.Select(4)
		s.Select(0)
		assert.Equal(t, []bool{true, true, true, false, false}, s.Selected())
		anchor, _ := s.Anchor()
		assert.Equal(t, 2, anchor)
	})

	t.Run("ShiftWithoutAnchorIsSingle", func(t *testing.T) {
		s := newState(true, true, false)
		s.SetModifiers(widget.ModShift)
		s.Select(2)
		assert.Equal(t, []bool{false, false, true}, s.Selected())
		anchor, ok := s.Anchor()
		assert.True(t, ok)
		assert.Equal(t, 2, anchor)
	})

	t.Run("ShiftWinsOverCommand", func(t *testing.T) {
		s := newState(false, false, false, false)
		s.Select(0)
		s.SetModifiers(widget.ModShift | widget.CommandModifier())
		s.Select(2)
		assert.Equal(t, []bool{true, true, true, false}, s.Selected())
	})

	t.Run("OutOfRangePanics", func(t *testing.T) {
		s := newState(false, false)
		require.Panics(t, func() { s.Select(2) })
		require.Panics(t, func() { s.Select(-1) })
	})

	t.Run("ClearForgetsAnchor", func(t *testing.T) {
		s := newState(false, false)
		s.Select(1)
		s.Clear()
		assert.Equal(t, 0, s.Count())
		_, ok := s.Anchor()
		assert.False(t, ok)
	})
}

func TestResizeDropsStaleAnchor(t *testing.T) {
	s := NewState()
	s.resize(5)
	s.Select(4)

	s.resize(3)
	_, ok := s.Anchor()
	assert.False(t, ok)
	assert.Equal(t, []bool{false, false, false}, s.Selected())

	s.resize(5)
	assert.Equal(t, []bool{false, false, false, false, false}, s.Selected(), "grown rows start unselected")

	s.Select(1)
	s.resize(2)
	anchor, ok := s.Anchor()
	assert.True(t, ok)
	assert.Equal(t, 1, anchor)
}

func TestSelectionBounds(t *testing.T) {
	h := newHarness(t, NewState(), 4)
	bounds := h.layout.Bounds()
	style := DefaultStyle()

	var bands []widget.Rectangle
	for _, child := range h.layout.Children() {
		bands = append(bands, SelectionBounds(h.lb.padding, h.lb.spacing, bounds, child.Bounds(), style))
	}

	t.Run("FirstBandMeetsTopBorder", func(t *testing.T) {
		assert.Equal(t, bounds.Y+style.BorderWidth, bands[0].Y)
		assert.Equal(t, float32(22), bands[0].Height)
	})

	t.Run("BandsAreAdjacent", func(t *testing.T) {
		for i := 0; i+1 < len(bands); i++ {
			assert.Equal(t, bands[i].Bottom(), bands[i+1].Y, "band %d and %d", i, i+1)
		}
	})

	t.Run("BandsSpanInnerWidth", func(t *testing.T) {
		for _, b := range bands {
			assert.Equal(t, bounds.X+style.BorderWidth, b.X)
			assert.Equal(t, bounds.Width-2*style.BorderWidth, b.Width)
		}
	})

	t.Run("IndependentOfAlignment", func(t *testing.T) {
		centered := newHarness(t, NewState(), 4, WithAlignItems(widget.AlignCenter))
		for i, child := range centered.layout.Children() {
			assert.NotEqual(t, h.layout.Children()[i].Bounds().X, child.Bounds().X)
			got := SelectionBounds(centered.lb.padding, centered.lb.spacing, centered.layout.Bounds(), child.Bounds(), style)
			assert.Equal(t, bands[i], got)
		}
	})

	t.Run("ZeroSpacing", func(t *testing.T) {
		bounds := widget.Rectangle{X: 10, Y: 10, Width: 100, Height: 100}
		first := SelectionBounds(widget.Padding{}, 0, bounds, widget.Rectangle{X: 10, Y: 10, Width: 50, Height: 30}, style)
		second := SelectionBounds(widget.Padding{}, 0, bounds, widget.Rectangle{X: 10, Y: 40, Width: 50, Height: 30}, style)
		assert.Equal(t, widget.Rectangle{X: 11, Y: 11, Width: 98, Height: 29}, first)
		assert.Equal(t, widget.Rectangle{X: 11, Y: 40, Width: 98, Height: 30}, second)
	})
}

func TestLayout(t *testing.T) {
	h := newHarness(t, NewState(), 3)

	assert.Equal(t, widget.Rectangle{Width: 200, Height: 70}, h.layout.Bounds())

	var ys []float32
	for _, child := range h.layout.Children() {
		ys = append(ys, child.Bounds().Y)
		assert.Equal(t, float32(23), child.Bounds().X)
	}
	assert.Equal(t, []float32{1, 25, 49}, ys)

	t.Run("MaxWidth", func(t *testing.T) {
		h := newHarness(t, NewState(), 1, WithMaxWidth(120))
		assert.Equal(t, float32(120), h.layout.Bounds().Width)
	})

	t.Run("FillHeight", func(t *testing.T) {
		h := newHarness(t, NewState(), 1, WithHeight(widget.Fill), WithMaxHeight(300))
		assert.Equal(t, float32(300), h.layout.Bounds().Height)
	})
}

func TestDelete(t *testing.T) {
	t.Run("DisarmedPublishesNothing", func(t *testing.T) {
		h := newHarness(t, NewState(), 3)
		h.state.Select(0)

		assert.Equal(t, widget.Ignored, h.pressDelete())
		assert.Zero(t, h.shell.Len())
		assert.Equal(t, []bool{true, false, false}, h.state.Selected())
	})

	t.Run("ArmedPublishesMaskAndClears", func(t *testing.T) {
		h := newHarness(t, NewState(), 3)
		h.clickRow(0)
		h.modifiers(widget.CommandModifier())
		h.clickRow(2)
		h.modifiers(0)
		require.Equal(t, []bool{true, false, true}, h.state.Selected())

		assert.Equal(t, widget.Captured, h.pressDelete())
		assert.Equal(t, []string{"deleted:101"}, h.shell.Drain())
		assert.Equal(t, []bool{false, false, false}, h.state.Selected())
	})

	t.Run("ClickOutsideDisarms", func(t *testing.T) {
		h := newHarness(t, NewState(), 3)
		h.clickRow(1)
		assert.Equal(t, widget.Ignored, h.click(300))
		assert.False(t, h.state.IsContainerSelected())

		assert.Equal(t, widget.Ignored, h.pressDelete())
		assert.Zero(t, h.shell.Len())
	})

	t.Run("ChildCaptureWins", func(t *testing.T) {
		h := newHarness(t, NewState(), 3)
		h.clickRow(1)
		h.rows[2].status = widget.Captured

		assert.Equal(t, widget.Captured, h.pressDelete())
		assert.Zero(t, h.shell.Len())
		assert.Equal(t, []bool{false, true, false}, h.state.Selected())
	})

	t.Run("OtherKeysPassThrough", func(t *testing.T) {
		h := newHarness(t, NewState(), 2)
		h.clickRow(0)
		assert.Equal(t, widget.Ignored, h.send(widget.KeyPressed{Key: widget.KeyBackspace}, widget.Point{}))
		assert.Zero(t, h.shell.Len())
	})
}

func TestPointerPress(t *testing.T) {
	t.Run("SelectsHitRow", func(t *testing.T) {
		h := newHarness(t, NewState(), 3)
		assert.Equal(t, widget.Captured, h.clickRow(1))
		assert.Equal(t, []bool{false, true, false}, h.state.Selected())
		assert.True(t, h.state.IsContainerSelected())
	})

	t.Run("GapBelongsToNeighbour", func(t *testing.T) {
		h := newHarness(t, NewState(), 3)
		h.click(22)
		assert.Equal(t, []bool{true, false, false}, h.state.Selected())
		h.click(24)
		assert.Equal(t, []bool{false, true, false}, h.state.Selected())
	})

	t.Run("BorderArmsWithoutSelecting", func(t *testing.T) {
		h := newHarness(t, NewState(), 3)
		status := h.send(widget.MouseButtonPressed{}, widget.Point{X: 0.5, Y: 35})
		assert.Equal(t, widget.Ignored, status)
		assert.True(t, h.state.IsContainerSelected())
		assert.Equal(t, 0, h.state.Count())
	})

	t.Run("ChildCaptureBlocksSelection", func(t *testing.T) {
		h := newHarness(t, NewState(), 3)
		h.rows[0].status = widget.Captured

		assert.Equal(t, widget.Captured, h.clickRow(1))
		assert.Equal(t, 0, h.state.Count())
		assert.False(t, h.state.IsContainerSelected())
	})

	t.Run("EveryChildSeesEvent", func(t *testing.T) {
		h := newHarness(t, NewState(), 3)
		h.rows[0].status = widget.Captured
		h.clickRow(2)
		for i, r := range h.rows {
			assert.Len(t, r.events, 1, "row %d", i)
		}
	})

	t.Run("TouchUsesFingerPosition", func(t *testing.T) {
		h := newHarness(t, NewState(), 3)
		status := h.send(widget.FingerPressed{ID: 1, Position: widget.Point{X: 50, Y: 59}}, widget.Point{X: 500, Y: 500})
		assert.Equal(t, widget.Captured, status)
		assert.Equal(t, []bool{false, false, true}, h.state.Selected())
	})

	t.Run("SharedEdgeHitsBoth", func(t *testing.T) {
		h := newHarness(t, NewState(), 3)
		h.modifiers(widget.CommandModifier())
		h.click(23)
		assert.Equal(t, []bool{true, true, false}, h.state.Selected())
	})
}

func TestModifiersAlwaysTracked(t *testing.T) {
	h := newHarness(t, NewState(), 2)
	for _, r := range h.rows {
		r.status = widget.Captured
	}

	status := h.send(widget.ModifiersChanged{Modifiers: widget.ModShift}, widget.Point{})
	assert.Equal(t, widget.Captured, status)
	assert.True(t, h.state.Modifiers().Shift())

	for _, r := range h.rows {
		r.status = widget.Ignored
	}
	status = h.send(widget.ModifiersChanged{}, widget.Point{})
	assert.Equal(t, widget.Ignored, status)
	assert.False(t, h.state.Modifiers().Shift())
}

func TestSelectionScenario(t *testing.T) {
	h := newHarness(t, NewState(), 3)

	h.clickRow(1)
	assert.Equal(t, []bool{false, true, false}, h.state.Selected())

	h.modifiers(widget.ModShift)
	h.clickRow(0)
	assert.Equal(t, []bool{true, true, false}, h.state.Selected())

	h.modifiers(widget.CommandModifier())
	h.clickRow(2)
	assert.Equal(t, []bool{true, true, true}, h.state.Selected())
}

func TestDraw(t *testing.T) {
	style := Light(true)
	h := newHarness(t, NewState(), 3, WithStyle(style))
	h.clickRow(0)

	h.lb.Draw(h.renderer, widget.RenderStyle{}, h.layout, widget.Point{}, h.layout.Bounds())
	ops := h.renderer.Ops()
	require.NotEmpty(t, ops)

	t.Run("BackgroundFirst", func(t *testing.T) {
		assert.Equal(t, headless.OpQuad, ops[0].Kind)
		assert.Equal(t, h.layout.Bounds(), ops[0].Bounds)
		assert.Equal(t, style.Background, ops[0].Background)
	})

	t.Run("BorderLast", func(t *testing.T) {
		last := ops[len(ops)-1]
		assert.Equal(t, headless.OpQuad, last.Kind)
		assert.Equal(t, widget.Transparent, last.Background)
		assert.Equal(t, style.BorderWidth, last.Quad.BorderWidth)
		assert.Equal(t, style.BorderColor, last.Quad.BorderColor)
	})

	t.Run("Bands", func(t *testing.T) {
		quads := h.renderer.OpsOf(headless.OpQuad)
		require.Len(t, quads, 4, "background, selected row 0, stripe row 1, border")
		assert.Equal(t, style.SelectedBackground, quads[1].Background)
		assert.Equal(t, float32(1), quads[1].Bounds.Y)
		assert.Equal(t, *style.StripeBackground, quads[2].Background)
		assert.Equal(t, float32(23), quads[2].Bounds.Y)
	})

	t.Run("RowTextColors", func(t *testing.T) {
		assert.Equal(t, *style.SelectedTextColor, h.rows[0].styles[0].TextColor)
		assert.Equal(t, style.TextColor, h.rows[1].styles[0].TextColor)
		assert.Equal(t, style.TextColor, h.rows[2].styles[0].TextColor)
	})

	t.Run("NoStripes", func(t *testing.T) {
		h := newHarness(t, NewState(), 3, WithStyle(Light(false)))
		h.lb.Draw(h.renderer, widget.RenderStyle{}, h.layout, widget.Point{}, h.layout.Bounds())
		assert.Len(t, h.renderer.OpsOf(headless.OpQuad), 2)
	})

	t.Run("SelectedTextColorOptional", func(t *testing.T) {
		plain := Dark(false)
		plain.SelectedTextColor = nil
		h := newHarness(t, NewState(), 2, WithStyle(plain))
		h.clickRow(1)
		h.lb.Draw(h.renderer, widget.RenderStyle{}, h.layout, widget.Point{}, h.layout.Bounds())
		assert.Equal(t, plain.TextColor, h.rows[1].styles[0].TextColor)
	})
}

func TestDelegation(t *testing.T) {
	h := newHarness(t, NewState(), 3)

	t.Run("MouseInteractionIsMax", func(t *testing.T) {
		assert.Equal(t, widget.InteractionIdle, h.lb.MouseInteraction(h.layout, widget.Point{}, h.layout.Bounds(), h.renderer))
		h.rows[0].interaction = widget.InteractionPointer
		h.rows[2].interaction = widget.InteractionText
		assert.Equal(t, widget.InteractionText, h.lb.MouseInteraction(h.layout, widget.Point{}, h.layout.Bounds(), h.renderer))
	})

	t.Run("OverlayIsFirst", func(t *testing.T) {
		assert.Nil(t, h.lb.Overlay(h.layout, h.renderer))
		h.rows[1].overlay = fakeOverlay{name: "one"}
		h.rows[2].overlay = fakeOverlay{name: "two"}
		assert.Equal(t, fakeOverlay{name: "one"}, h.lb.Overlay(h.layout, h.renderer))
	})
}

func TestStylePresets(t *testing.T) {
	for name, s := range map[string]Style{"light": Light(true), "dark": Dark(true)} {
		t.Run(name, func(t *testing.T) {
			require.NotNil(t, s.StripeBackground)
			require.NotNil(t, s.SelectedTextColor)
			assert.NotEqual(t, s.Background, s.SelectedBackground)
			assert.NotEqual(t, s.Background, *s.StripeBackground)
			assert.Equal(t, s, s.Style())
		})
	}
	assert.Nil(t, Dark(false).StripeBackground)
	assert.Equal(t, Light(true), DefaultStyle())
}
