package massrename

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/massrename/internal/errs"
)

func TestInfrastructureError(t *testing.T) {
	cause := errors.New("no display")
	err := fmt.Errorf("start: %w", NewInfrastructureError("create_window", cause))

	assert.True(t, IsInfrastructureError(err))
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "start: massrename: create_window: no display")
	assert.False(t, IsInfrastructureError(ErrInvalidStyle))
	assert.Equal(t, "massrename: render", NewInfrastructureError("render", nil).Error())
}

func TestHostErrorsMatch(t *testing.T) {
	err := errs.NewInfrastructureError("find_font", errs.ErrNoFont)

	assert.True(t, IsInfrastructureError(err))
	assert.ErrorIs(t, err, ErrNoFont)

	var infra *InfrastructureError
	assert.ErrorAs(t, err, &infra)
	assert.Equal(t, "find_font", infra.Op)
}
