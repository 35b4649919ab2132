package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfrastructureError(t *testing.T) {
	cause := errors.New("no display")

	tests := []struct {
		name  string
		err   error
		infra bool
		text  string
	}{
		{name: "Wrapped", err: fmt.Errorf("start: %w", NewInfrastructureError("create_window", cause)), infra: true, text: "start: massrename: create_window: no display"},
		{name: "NoCause", err: NewInfrastructureError("render", nil), infra: true, text: "massrename: render"},
		{name: "FontMissing", err: NewInfrastructureError("find_font", ErrNoFont), infra: true, text: "massrename: find_font: no usable font found"},
		{name: "Sentinel", err: ErrInvalidStyle, infra: false, text: "invalid style"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.infra, IsInfrastructureError(tt.err))
			assert.EqualError(t, tt.err, tt.text)
		})
	}

	assert.ErrorIs(t, tests[0].err, cause)
	assert.ErrorIs(t, tests[2].err, ErrNoFont)
}
