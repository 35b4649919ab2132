package widget

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    float32
	Right  float32
	Bottom float32
	Left   float32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value float32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// SymmetricPadding creates a Padding with one value for top and bottom and
// another for left and right.
func SymmetricPadding(vertical, horizontal float32) Padding {
	return Padding{
		Top:    vertical,
		Right:  horizontal,
		Bottom: vertical,
		Left:   horizontal,
	}
}

// Horizontal is the sum of the left and right padding.
func (p Padding) Horizontal() float32 {
	return p.Left + p.Right
}

// Vertical is the sum of the top and bottom padding.
func (p Padding) Vertical() float32 {
	return p.Top + p.Bottom
}
