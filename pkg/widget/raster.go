package widget

import "math"

// Span is one horizontal run of pixels in row Y, from X0 up to X1.
type Span struct {
	Y  float32
	X0 float32
	X1 float32
}

// Width returns the run length.
func (s Span) Width() float32 {
	return s.X1 - s.X0
}

// QuadSpans rasterises a quad into pixel rows for backends that can only
// fill axis-aligned rectangles. fill covers the whole rounded shape; border
// covers only the stroke of width q.BorderWidth.
func QuadSpans(q Quad) (fill, border []Span) {
	b := q.Bounds
	if b.Width <= 0 || b.Height <= 0 {
		return nil, nil
	}

	left, right := float64(b.X), float64(b.Right())
	top, bottom := float64(b.Y), float64(b.Bottom())
	radius := math.Min(float64(q.BorderRadius), math.Min(float64(b.Width), float64(b.Height))/2)
	width := math.Min(float64(q.BorderWidth), math.Min(float64(b.Width), float64(b.Height))/2)
	innerRadius := math.Max(radius-width, 0)

	for y := math.Floor(top); y < bottom; y++ {
		cy := y + 0.5
		inset := cornerInset(cy, top, bottom, radius)
		outerL, outerR := left+inset, right-inset
		if outerR <= outerL {
			continue
		}

		row := float32(y)
		fill = append(fill, Span{Y: row, X0: float32(outerL), X1: float32(outerR)})

		if width <= 0 {
			continue
		}

		if cy < top+width || cy > bottom-width {
			border = append(border, Span{Y: row, X0: float32(outerL), X1: float32(outerR)})
			continue
		}

		innerInset := cornerInset(cy, top+width, bottom-width, innerRadius)
		innerL, innerR := left+width+innerInset, right-width-innerInset
		if innerR <= innerL {
			border = append(border, Span{Y: row, X0: float32(outerL), X1: float32(outerR)})
			continue
		}
		border = append(border,
			Span{Y: row, X0: float32(outerL), X1: float32(innerL)},
			Span{Y: row, X0: float32(innerR), X1: float32(outerR)},
		)
	}

	return fill, border
}

// cornerInset is how far a rounded edge is pulled in at row centre cy.
func cornerInset(cy, top, bottom, radius float64) float64 {
	if radius <= 0 {
		return 0
	}

	var dy float64
	switch {
	case cy < top+radius:
		dy = top + radius - cy
	case cy > bottom-radius:
		dy = cy - (bottom - radius)
	default:
		return 0
	}

	return radius - math.Sqrt(math.Max(radius*radius-dy*dy, 0))
}
