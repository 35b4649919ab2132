package sdlhost

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPending(t *testing.T) {
	tests := []struct {
		name   string
		queued []string
		close  bool
		want   []string
		open   bool
	}{
		{name: "Empty", open: true},
		{name: "Queued", queued: []string{"a", "b"}, want: []string{"a", "b"}, open: true},
		{name: "ClosedAfterMessages", queued: []string{"a"}, close: true, want: []string{"a"}},
		{name: "ClosedEmpty", close: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := make(chan string, len(tt.queued))
			for _, m := range tt.queued {
				ch <- m
			}
			if tt.close {
				close(ch)
			}

			f := &frame[string]{external: ch}
			assert.Equal(t, tt.want, f.pending())
			assert.Equal(t, tt.open, f.external != nil)
			assert.Empty(t, f.pending(), "nothing is left for the next pass")
		})
	}
}

func TestPendingWithoutChannel(t *testing.T) {
	f := &frame[string]{}
	assert.Nil(t, f.pending())
}
