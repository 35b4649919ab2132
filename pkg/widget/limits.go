package widget

import "math"

// Limits are the box constraints a parent hands to a child during layout.
//
// min and max bound the size the child may resolve to. fill is the size the
// child grows to when its Length asks to fill; it starts unbounded and is
// narrowed by Width and Height.
type Limits struct {
	min  Size
	max  Size
	fill Size
}

// NoLimits places no constraint on the child.
var NoLimits = Limits{min: ZeroSize, max: InfiniteSize, fill: InfiniteSize}

// NewLimits creates limits with the given bounds.
func NewLimits(min, max Size) Limits {
	return Limits{min: min, max: max, fill: InfiniteSize}
}

func (l Limits) Min() Size  { return l.min }
func (l Limits) Max() Size  { return l.max }
func (l Limits) Fill() Size { return l.fill }

// Width applies a horizontal sizing policy.
func (l Limits) Width(width Length) Limits {
	switch {
	case width.kind == lengthShrink:
		l.fill.Width = l.min.Width
	case width.IsFill():
		l.fill.Width = min(l.fill.Width, l.max.Width)
	case width.kind == lengthUnits:
		w := clamp(float32(width.value), l.min.Width, l.max.Width)
		l.min.Width = w
		l.max.Width = w
		l.fill.Width = w
	}
	return l
}

// Height applies a vertical sizing policy.
func (l Limits) Height(height Length) Limits {
	switch {
	case height.kind == lengthShrink:
		l.fill.Height = l.min.Height
	case height.IsFill():
		l.fill.Height = min(l.fill.Height, l.max.Height)
	case height.kind == lengthUnits:
		h := clamp(float32(height.value), l.min.Height, l.max.Height)
		l.min.Height = h
		l.max.Height = h
		l.fill.Height = h
	}
	return l
}

// MinWidth raises the minimum width, never above the maximum.
func (l Limits) MinWidth(width uint32) Limits {
	l.min.Width = min(max(l.min.Width, float32(width)), l.max.Width)
	return l
}

// MaxWidth lowers the maximum width, never below the minimum.
func (l Limits) MaxWidth(width uint32) Limits {
	l.max.Width = max(min(l.max.Width, float32(width)), l.min.Width)
	return l
}

// MinHeight raises the minimum height, never above the maximum.
func (l Limits) MinHeight(height uint32) Limits {
	l.min.Height = min(max(l.min.Height, float32(height)), l.max.Height)
	return l
}

// MaxHeight lowers the maximum height, never below the minimum.
func (l Limits) MaxHeight(height uint32) Limits {
	l.max.Height = max(min(l.max.Height, float32(height)), l.min.Height)
	return l
}

// Pad shrinks the limits by the padding.
func (l Limits) Pad(p Padding) Limits {
	return l.Shrink(Size{Width: p.Horizontal(), Height: p.Vertical()})
}

// Shrink removes the given size from every bound, flooring at zero.
func (l Limits) Shrink(s Size) Limits {
	return Limits{
		min:  Size{Width: max(l.min.Width-s.Width, 0), Height: max(l.min.Height-s.Height, 0)},
		max:  Size{Width: max(l.max.Width-s.Width, 0), Height: max(l.max.Height-s.Height, 0)},
		fill: Size{Width: max(l.fill.Width-s.Width, 0), Height: max(l.fill.Height-s.Height, 0)},
	}
}

// Loose drops the minimum.
func (l Limits) Loose() Limits {
	l.min = ZeroSize
	return l
}

// Resolve fits an intrinsic size into the limits.
func (l Limits) Resolve(intrinsic Size) Size {
	return Size{
		Width:  max(min(intrinsic.Width, l.max.Width), l.fill.Width),
		Height: max(min(intrinsic.Height, l.max.Height), l.fill.Height),
	}
}

func clamp(v, lo, hi float32) float32 {
	return float32(math.Max(float64(lo), math.Min(float64(v), float64(hi))))
}
