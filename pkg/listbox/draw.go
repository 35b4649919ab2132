package listbox

import "github.com/BrandonKowalski/massrename/pkg/widget"

// Draw paints the background, the row bands, the rows and finally the
// border. The border goes last so row bands never cover rounded corners.
func (l *ListBox[M]) Draw(r widget.Renderer, _ widget.RenderStyle, layout widget.Layout, cursor widget.Point, viewport widget.Rectangle) {
	style := l.style.Style()
	bounds := layout.Bounds()

	r.FillQuad(widget.Quad{Bounds: bounds}, style.Background)

	for i, childLayout := range layout.Children() {
		rowStyle := widget.RenderStyle{TextColor: style.TextColor}
		band := l.selectionBounds(bounds, childLayout.Bounds(), style)

		if l.state.selected[i] {
			r.FillQuad(widget.Quad{Bounds: band}, style.SelectedBackground)
			if style.SelectedTextColor != nil {
				rowStyle.TextColor = *style.SelectedTextColor
			}
		} else if style.StripeBackground != nil && i%2 == 1 {
			r.FillQuad(widget.Quad{Bounds: band}, *style.StripeBackground)
		}

		l.children[i].Draw(r, rowStyle, childLayout, cursor, viewport)
	}

	r.FillQuad(widget.Quad{
		Bounds:       bounds,
		BorderRadius: style.BorderRadius,
		BorderWidth:  style.BorderWidth,
		BorderColor:  style.BorderColor,
	}, widget.Transparent)
}
