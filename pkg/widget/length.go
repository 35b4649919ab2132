package widget

import "fmt"

type lengthKind uint8

const (
	lengthShrink lengthKind = iota
	lengthFill
	lengthFillPortion
	lengthUnits
)

// Length is a sizing policy for one axis of a widget.
// The zero value is Shrink.
type Length struct {
	kind  lengthKind
	value uint16
}

var (
	// Shrink sizes the widget to its content.
	Shrink = Length{kind: lengthShrink}

	// Fill takes all the space the parent offers.
	Fill = Length{kind: lengthFill}
)

// FillPortion takes a share of the remaining space proportional to n.
func FillPortion(n uint16) Length {
	return Length{kind: lengthFillPortion, value: n}
}

// Units is a fixed number of pixels.
func Units(n uint16) Length {
	return Length{kind: lengthUnits, value: n}
}

// FillFactor is the weight used when distributing leftover space.
// Shrink and fixed lengths have a factor of zero.
func (l Length) FillFactor() uint16 {
	switch l.kind {
	case lengthFill:
		return 1
	case lengthFillPortion:
		return l.value
	default:
		return 0
	}
}

// IsFill reports whether the length takes a share of leftover space.
func (l Length) IsFill() bool {
	return l.FillFactor() != 0
}

func (l Length) String() string {
	switch l.kind {
	case lengthFill:
		return "fill"
	case lengthFillPortion:
		return fmt.Sprintf("fill(%d)", l.value)
	case lengthUnits:
		return fmt.Sprintf("%dpx", l.value)
	default:
		return "shrink"
	}
}

// Alignment positions content on the cross axis of a layout.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	case AlignStretch:
		return "stretch"
	default:
		return "start"
	}
}
