package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/massrename/pkg/widget"
	"github.com/BrandonKowalski/massrename/pkg/widget/headless"
)

var roomy = widget.NewLimits(widget.ZeroSize, widget.Size{Width: 500, Height: 500})

func TestLayout(t *testing.T) {
	r := headless.New()

	t.Run("DefaultSize", func(t *testing.T) {
		node := New[struct{}]("hello").Layout(r, roomy)
		assert.Equal(t, widget.Size{Width: 40, Height: 16}, node.Size())
	})

	t.Run("CustomSize", func(t *testing.T) {
		node := New[struct{}]("hello", WithSize(20)).Layout(r, roomy)
		assert.Equal(t, widget.Size{Width: 50, Height: 20}, node.Size())
	})

	t.Run("WideCharacters", func(t *testing.T) {
		node := New[struct{}]("日本").Layout(r, roomy)
		assert.Equal(t, float32(32), node.Size().Width)
	})

	t.Run("FillWidth", func(t *testing.T) {
		node := New[struct{}]("hi", WithWidth(widget.Fill)).Layout(r, roomy)
		assert.Equal(t, widget.Size{Width: 500, Height: 16}, node.Size())
	})

	t.Run("Clipped", func(t *testing.T) {
		tight := widget.NewLimits(widget.ZeroSize, widget.Size{Width: 10, Height: 10})
		node := New[struct{}]("hello").Layout(r, tight)
		assert.Equal(t, widget.Size{Width: 10, Height: 10}, node.Size())
	})
}

func TestDraw(t *testing.T) {
	layoutOf := func(r widget.Renderer, w *Text[struct{}]) widget.Layout {
		node := w.Layout(r, roomy)
		return widget.NewLayout(&node)
	}
	inherited := widget.RenderStyle{TextColor: widget.HexColor(0x112233)}

	t.Run("InheritsColor", func(t *testing.T) {
		r := headless.New()
		w := New[struct{}]("row", WithHorizontalAlignment(widget.TextAlignCenter))
		w.Draw(r, inherited, layoutOf(r, w), widget.Point{}, widget.Rectangle{})

		ops := r.OpsOf(headless.OpText)
		require.Len(t, ops, 1)
		assert.Equal(t, "row", ops[0].Text.Content)
		assert.Equal(t, inherited.TextColor, ops[0].Text.Color)
		assert.Equal(t, headless.DefaultTextSize, ops[0].Text.Size)
		assert.Equal(t, widget.TextAlignCenter, ops[0].Text.HorizontalAlignment)
	})

	t.Run("FixedColorWins", func(t *testing.T) {
		r := headless.New()
		w := New[struct{}]("row", WithColor(widget.Black))
		w.Draw(r, inherited, layoutOf(r, w), widget.Point{}, widget.Rectangle{})
		assert.Equal(t, widget.Black, r.Ops()[0].Text.Color)
	})
}

func TestIsPassive(t *testing.T) {
	var w widget.Widget[int] = New[int]("x")
	shell := widget.NewShell[int]()
	status := w.OnEvent(widget.KeyPressed{Key: widget.KeyDelete}, widget.Layout{}, widget.Point{}, headless.New(), widget.NullClipboard{}, shell)
	assert.Equal(t, widget.Ignored, status)
	assert.Nil(t, w.Overlay(widget.Layout{}, headless.New()))
}
