package widget

// Shell collects the application messages widgets publish while handling
// events. The host drains it after each event and feeds the messages to
// the application's update function.
type Shell[M any] struct {
	messages []M
}

// NewShell creates an empty shell.
func NewShell[M any]() *Shell[M] {
	return &Shell[M]{}
}

// Publish queues a message for the application.
func (s *Shell[M]) Publish(msg M) {
	s.messages = append(s.messages, msg)
}

// Messages returns the queued messages without removing them.
func (s *Shell[M]) Messages() []M {
	return s.messages
}

// Len returns the number of queued messages.
func (s *Shell[M]) Len() int {
	return len(s.messages)
}

// Drain removes and returns every queued message.
func (s *Shell[M]) Drain() []M {
	out := s.messages
	s.messages = nil
	return out
}

// Clipboard gives widgets access to the system clipboard.
type Clipboard interface {
	Read() (string, bool)
	Write(contents string)
}

// NullClipboard discards writes and never has contents.
type NullClipboard struct{}

func (NullClipboard) Read() (string, bool) { return "", false }
func (NullClipboard) Write(string)         {}
