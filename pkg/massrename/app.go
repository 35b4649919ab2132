// Package massrename is the bulk file renamer: the list of files the user
// has opened, and how it reacts to messages from the widget tree.
package massrename

import (
	"github.com/BrandonKowalski/massrename/internal/logging"
	"github.com/BrandonKowalski/massrename/pkg/listbox"
	"github.com/BrandonKowalski/massrename/pkg/massrename/constants"
	"github.com/BrandonKowalski/massrename/pkg/widget"
	"github.com/BrandonKowalski/massrename/pkg/widget/container"
	"github.com/BrandonKowalski/massrename/pkg/widget/icon"
	"github.com/BrandonKowalski/massrename/pkg/widget/scrollable"
	"github.com/BrandonKowalski/massrename/pkg/widget/text"
)

// App holds the application state between frames.
type App struct {
	theme       Theme
	loc         *Localizer
	entries     []Entry
	highlight   string
	listState   listbox.State
	scrollState scrollable.State
}

// New creates the application with an initial set of paths.
func New(cfg Config, loc *Localizer, paths []string) (*App, error) {
	theme, err := cfg.Style.Theme()
	if err != nil {
		return nil, err
	}

	return &App{
		theme:   theme,
		loc:     loc,
		entries: newEntries(paths),
	}, nil
}

// Title is the window title.
func (a *App) Title() string {
	return a.loc.WindowTitle(constants.Version)
}

// Theme is the palette the host paints the window with.
func (a *App) Theme() Theme {
	return a.theme
}

// Entries returns a copy of the current list.
func (a *App) Entries() []Entry {
	out := make([]Entry, len(a.entries))
	copy(out, a.entries)
	return out
}

// Highlight returns the text currently highlighted in entries.
func (a *App) Highlight() string {
	return a.highlight
}

// Update applies a message to the state.
func (a *App) Update(msg Message) {
	switch m := msg.(type) {
	case FilesReceived:
		a.entries = append(a.entries, newEntries(m.Paths)...)
		logging.GetLogger().Info("Files received", "added", len(m.Paths), "total", len(a.entries))

	case FilesDeleted:
		removed := a.deleteMasked(m.Mask)
		logging.GetLogger().Info("Files removed", "removed", removed, "total", len(a.entries))

	case HighlightChanged:
		a.highlight = m.Value
	}
}

// deleteMasked drops entries whose mask bit is set. Bits past the end of
// the list are ignored and entries past the end of the mask are kept.
func (a *App) deleteMasked(mask []bool) int {
	kept := a.entries[:0]
	for i, e := range a.entries {
		if i < len(mask) && mask[i] {
			continue
		}
		kept = append(kept, e)
	}

	removed := len(a.entries) - len(kept)
	clear(a.entries[len(kept):])
	a.entries = kept
	return removed
}

// View builds this frame's widget tree.
func (a *App) View() widget.Widget[Message] {
	header := a.loc.EmptyHint()
	if len(a.entries) > 0 {
		header = a.loc.EntryCount(len(a.entries))
	}

	children := []widget.Widget[Message]{
		text.New[Message](header, text.WithSize(constants.HeaderFontSize)),
	}
	if a.highlight != "" {
		children = append(children, text.New[Message](a.loc.HighlightLabel(a.highlight)))
	}
	children = append(children, a.list())

	return container.NewColumn(children,
		container.WithPadding(widget.UniformPadding(16)),
		container.WithSpacing(16),
		container.WithWidth(widget.Fill),
		container.WithHeight(widget.Fill),
	)
}

// list is the file list in a viewport filling the rest of the window.
func (a *App) list() *scrollable.Scrollable[Message] {
	rows := make([]widget.Widget[Message], len(a.entries))
	for i, e := range a.entries {
		rows[i] = entryRow(e)
	}

	list := listbox.WithChildren(&a.listState, rows, deleted,
		listbox.WithWidth(widget.Fill),
		listbox.WithHeight(widget.Shrink),
		listbox.WithPadding(widget.SymmetricPadding(1, 23)),
		listbox.WithSpacing(4),
		listbox.WithStyle(a.theme.List),
	)

	return scrollable.New[Message](&a.scrollState, list,
		scrollable.WithWidth(widget.Fill),
		scrollable.WithHeight(widget.Fill),
		scrollable.WithStyle(a.theme.Scrollbar),
	)
}

func entryRow(e Entry) widget.Widget[Message] {
	source := fileIcon
	if e.Malformed {
		source = warningIcon
	}

	return container.NewRow([]widget.Widget[Message]{
		icon.New[Message](source, constants.DefaultIconSize),
		text.New[Message](e.Text),
	}, container.WithSpacing(8), container.WithAlignItems(widget.AlignCenter))
}

func deleted(mask []bool) Message {
	return FilesDeleted{Mask: mask}
}
