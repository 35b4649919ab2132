// Package flex lays out a sequence of widgets along one axis, in the manner
// of a CSS flex box with no wrapping.
package flex

import (
	"math"

	"github.com/BrandonKowalski/massrename/pkg/widget"
)

// Axis is the main axis of a flex layout.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) main(s widget.Size) float32 {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}

func (a Axis) cross(s widget.Size) float32 {
	if a == Horizontal {
		return s.Height
	}
	return s.Width
}

// pack turns main and cross extents into a width and a height.
func (a Axis) pack(main, cross float32) (float32, float32) {
	if a == Horizontal {
		return main, cross
	}
	return cross, main
}

func (a Axis) size(main, cross float32) widget.Size {
	w, h := a.pack(main, cross)
	return widget.Size{Width: w, Height: h}
}

func (a Axis) mainLength(s widget.Sizer) widget.Length {
	if a == Horizontal {
		return s.Width()
	}
	return s.Height()
}

func (a Axis) crossLength(s widget.Sizer) widget.Length {
	if a == Horizontal {
		return s.Height()
	}
	return s.Width()
}

// Resolve lays out items along axis within limits.
//
// Items that do not fill on the main axis are measured first against the
// space left over so far. Filling items then share whatever remains in
// proportion to their fill factor. Items are placed in order, spacing
// apart, and aligned on the cross axis. The returned node is the container;
// its children are the item nodes, positioned relative to it.
func Resolve[S widget.Sizer](
	axis Axis,
	r widget.Renderer,
	limits widget.Limits,
	padding widget.Padding,
	spacing float32,
	align widget.Alignment,
	items []S,
) widget.Node {
	limits = limits.Pad(padding)

	totalSpacing := spacing * float32(max(len(items)-1, 0))
	maxCross := axis.cross(limits.Max())
	cross := max(axis.cross(limits.Min()), axis.cross(limits.Fill()))
	available := axis.main(limits.Max()) - totalSpacing
	stretch := align == widget.AlignStretch

	var fillSum uint32
	nodes := make([]widget.Node, len(items))

	if stretch {
		fillCross := axis.cross(limits.Min())
		for _, item := range items {
			if axis.crossLength(item).FillFactor() != 0 {
				continue
			}
			childLimits := widget.NewLimits(widget.ZeroSize, axis.size(available, maxCross))
			node := item.Layout(r, childLimits)
			fillCross = max(fillCross, axis.cross(node.Size()))
		}
		cross = fillCross
	}

	for i, item := range items {
		if factor := axis.mainLength(item).FillFactor(); factor != 0 {
			fillSum += uint32(factor)
			continue
		}

		minSize := axis.size(0, 0)
		maxSize := axis.size(available, maxCross)
		if stretch {
			minSize = axis.size(0, cross)
			maxSize = axis.size(available, cross)
		}

		node := item.Layout(r, widget.NewLimits(minSize, maxSize))
		available -= axis.main(node.Size())
		if !stretch {
			cross = max(cross, axis.cross(node.Size()))
		}
		nodes[i] = node
	}

	remaining := max(available, 0)

	for i, item := range items {
		factor := axis.mainLength(item).FillFactor()
		if factor == 0 {
			continue
		}

		maxMain := remaining * float32(factor) / float32(fillSum)
		minMain := maxMain
		if math.IsInf(float64(maxMain), 1) {
			minMain = 0
		}

		minSize := axis.size(minMain, axis.cross(limits.Min()))
		maxSize := axis.size(maxMain, maxCross)
		if stretch {
			minSize = axis.size(minMain, cross)
			maxSize = axis.size(maxMain, cross)
		}

		node := item.Layout(r, widget.NewLimits(minSize, maxSize))
		if !stretch {
			cross = max(cross, axis.cross(node.Size()))
		}
		nodes[i] = node
	}

	padMain, padCross := axis.pack(padding.Left, padding.Top)
	main := padMain

	for i := range nodes {
		if i > 0 {
			main += spacing
		}

		x, y := axis.pack(main, padCross)
		nodes[i].MoveTo(widget.Point{X: x, Y: y})

		if axis == Horizontal {
			nodes[i].Align(widget.AlignStart, align, widget.Size{Height: cross})
		} else {
			nodes[i].Align(align, widget.AlignStart, widget.Size{Width: cross})
		}

		main += axis.main(nodes[i].Size())
	}

	content := axis.size(main-padMain, cross)
	size := limits.Resolve(content)

	return widget.NewNodeWithChildren(size.Pad(padding), nodes)
}
