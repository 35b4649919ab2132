package listbox

import "github.com/BrandonKowalski/massrename/pkg/widget"

// SelectionBounds returns the band painted behind a child to show selection
// or striping, which is also the area that selects the child when pressed.
//
// Bands span the full inner width of the container. The first child's band
// reaches up to the top border; every other band starts half the spacing
// above its child and covers the spacing below it, so consecutive bands
// meet at the middle of each gap.
func SelectionBounds(padding widget.Padding, spacing float32, bounds, child widget.Rectangle, style Style) widget.Rectangle {
	var y, height float32
	if child.Y == bounds.Y+padding.Top {
		y = bounds.Y + style.BorderWidth
		height = child.Height + padding.Top + spacing*0.5 - style.BorderWidth
	} else {
		y = child.Y - spacing*0.5
		height = child.Height + spacing
	}

	return widget.Rectangle{
		X:      bounds.X + style.BorderWidth,
		Y:      y,
		Width:  bounds.Width - style.BorderWidth*2,
		Height: height,
	}
}
