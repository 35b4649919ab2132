package massrename

import (
	"github.com/BrandonKowalski/massrename/pkg/listbox"
	"github.com/BrandonKowalski/massrename/pkg/widget"
	"github.com/BrandonKowalski/massrename/pkg/widget/scrollable"
)

// Theme defines the visual appearance of the window.
type Theme struct {
	Background widget.Color  // Window background behind everything
	Text       widget.Color  // Default text color
	List       listbox.Style // The file list
	Scrollbar  scrollable.Style
}

// LightTheme is dark text on white, matching the light list style.
func LightTheme(striped bool) Theme {
	return Theme{
		Background: widget.White,
		Text:       widget.Black,
		List:       listbox.Light(striped),
		Scrollbar:  scrollable.DefaultStyle(),
	}
}

// DarkTheme is light text on charcoal, matching the dark list style.
func DarkTheme(striped bool) Theme {
	return Theme{
		Background: widget.HexColor(0x2B2D30),
		Text:       widget.HexColor(0xDCDCDC),
		List:       listbox.Dark(striped),
		Scrollbar: scrollable.Style{
			Background:      widget.Transparent,
			Scroller:        widget.RGBA8(0xFF, 0xFF, 0xFF, 0x4D),
			ScrollerHovered: widget.RGBA8(0xFF, 0xFF, 0xFF, 0x80),
			BorderRadius:    5,
		},
	}
}
