package sdlhost

import (
	"github.com/atotto/clipboard"

	"github.com/BrandonKowalski/massrename/internal/logging"
	"github.com/BrandonKowalski/massrename/pkg/widget"
)

// systemClipboard is the desktop clipboard.
type systemClipboard struct{}

var _ widget.Clipboard = systemClipboard{}

func (systemClipboard) Read() (string, bool) {
	if clipboard.Unsupported {
		return "", false
	}
	contents, err := clipboard.ReadAll()
	if err != nil {
		logging.GetInternalLogger().Debug("Clipboard read failed", "error", err)
		return "", false
	}
	return contents, true
}

func (systemClipboard) Write(contents string) {
	if clipboard.Unsupported {
		return
	}
	if err := clipboard.WriteAll(contents); err != nil {
		logging.GetInternalLogger().Warn("Clipboard write failed", "error", err)
	}
}
