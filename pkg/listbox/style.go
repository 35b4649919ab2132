package listbox

import "github.com/BrandonKowalski/massrename/pkg/widget"

// Style defines the appearance of a ListBox.
type Style struct {
	Background         widget.Color  // Base background behind every element
	StripeBackground   *widget.Color // Background of every second unselected element; nil disables stripes
	SelectedBackground widget.Color  // Background of selected elements
	TextColor          widget.Color  // Text colour of unselected elements
	SelectedTextColor  *widget.Color // Text colour of selected elements; nil keeps TextColor
	BorderRadius       float32       // Roundness of the border corners
	BorderWidth        float32       // Thickness of the border
	BorderColor        widget.Color  // Colour of the border
}

// StyleSheet produces the style a ListBox paints with.
type StyleSheet interface {
	Style() Style
}

// Style lets a plain Style act as its own StyleSheet.
func (s Style) Style() Style {
	return s
}

// Light is a style for light themes.
func Light(striped bool) Style {
	s := Style{
		Background:         widget.White,
		SelectedBackground: widget.HexColor(0x308EC9),
		TextColor:          widget.Black,
		SelectedTextColor:  colorRef(widget.White),
		BorderRadius:       0,
		BorderWidth:        1,
		BorderColor:        widget.HexColor(0xBEBEBE),
	}
	if striped {
		s.StripeBackground = colorRef(widget.HexColor(0xF5F5F5))
	}
	return s
}

// Dark is a style for dark themes.
func Dark(striped bool) Style {
	s := Style{
		Background:         widget.HexColor(0x1E1F22),
		SelectedBackground: widget.HexColor(0x2F65CA),
		TextColor:          widget.HexColor(0xDCDCDC),
		SelectedTextColor:  colorRef(widget.White),
		BorderRadius:       0,
		BorderWidth:        1,
		BorderColor:        widget.HexColor(0x43454A),
	}
	if striped {
		s.StripeBackground = colorRef(widget.HexColor(0x26282B))
	}
	return s
}

// DefaultStyle is the striped light style.
func DefaultStyle() Style {
	return Light(true)
}

func colorRef(c widget.Color) *widget.Color {
	return &c
}
