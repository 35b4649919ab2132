package massrename

// Message is an event the application reacts to in Update.
type Message interface {
	isMessage()
}

// FilesReceived adds paths to the end of the list.
type FilesReceived struct {
	Paths []string
}

// FilesDeleted removes every entry whose mask bit is set.
type FilesDeleted struct {
	Mask []bool
}

// HighlightChanged sets the text to highlight in entries.
type HighlightChanged struct {
	Value string
}

func (FilesReceived) isMessage()    {}
func (FilesDeleted) isMessage()     {}
func (HighlightChanged) isMessage() {}
