package helpers

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNil(t *testing.T) {
	var err error
	assert.True(t, IsNil(err))

	var traceableErr Error = NilError
	assert.True(t, IsNil(traceableErr))

	var ptr *Error
	assert.True(t, IsNil(ptr))

	assert.False(t, IsNil(Errorf("boom")))
}

func TestJoin(t *testing.T) {
	assert.True(t, IsNil(Join()))
	assert.True(t, IsNil(Join(NilError, NilError)))

	a := Errorf("a")
	assert.Equal(t, a, Join(NilError, a))

	joined := Join(a, NilError, Errorf("b"))
	assert.Equal(t, 2, joined.NumErrors())
	assert.Equal(t, "a; b", joined.Error())
	assert.Contains(t, joined.String(), "a")
}

func TestWrap(t *testing.T) {
	assert.True(t, IsNil(Wrap(nil)))

	err := Wrap(io.EOF)
	assert.False(t, IsNil(err))
	assert.True(t, errors.Is(err, io.EOF))

	traced := Errorf("traced")
	assert.Equal(t, traced, Wrap(traced))
}

func TestWrapReturn(t *testing.T) {
	n, err := WrapReturn(3, nil)
	assert.Equal(t, 3, n)
	assert.True(t, IsNil(err))

	_, err = WrapReturn(0, io.EOF)
	assert.False(t, IsNil(err))
	assert.True(t, errors.Is(err, io.EOF))
}
