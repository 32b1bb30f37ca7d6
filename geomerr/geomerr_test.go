package geomerr

import (
	"errors"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
)

func TestErrorPrefixAndData(t *testing.T) {
	err := NewStructureError("opt input must be sequence-like", 42)
	assert.Equal(t, "GEOM ERROR: opt input must be sequence-like", err.Error())

	d, ok := Data(err)
	assert.True(t, ok)
	assert.EqualValues(t, 42, d)
}

func TestErrorKinds(t *testing.T) {
	assert.True(t, IsStructure(NewStructureError("m", nil)))
	assert.True(t, IsType(NewTypeError("m", nil)))
	assert.True(t, IsCoercion(NewCoercionError("m", nil)))
	assert.True(t, IsConfig(NewConfigError("m", nil)))

	assert.False(t, IsStructure(NewTypeError("m", nil)))
	assert.False(t, IsCoercion(errors.New("other")))
}

func TestErrorUnwrapsToCommonSentinels(t *testing.T) {
	assert.True(t, errors.Is(NewTypeError("m", nil), commerr.ErrInvalidArgument))
	assert.True(t, errors.Is(NewConfigError("m", nil), commerr.ErrNotFound))
}

func TestWarning(t *testing.T) {
	w := NewWarning("control point count is high", 4096)
	assert.Equal(t, "GEOM WARNING: control point count is high", w.Error())
	assert.True(t, IsWarning(w))
	assert.False(t, IsWarning(NewTypeError("m", nil)))

	d, ok := Data(w)
	assert.True(t, ok)
	assert.EqualValues(t, 4096, d)
}
