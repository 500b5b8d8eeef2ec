package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cricklet/chessmoves/internal/board"
	"github.com/cricklet/chessmoves/internal/helpers"
	"github.com/cricklet/chessmoves/internal/snapshot"
	"github.com/stretchr/testify/assert"
)

func TestBoard(t *testing.T) {
	b, err := board.BuildFromFen(snapshot.StartingFen)
	assert.True(t, helpers.IsNil(err))

	buffer := bytes.Buffer{}
	Board(&buffer, b)
	out := buffer.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `width="384"`)
	assert.Equal(t, 64, strings.Count(out, "<rect"))
	assert.Equal(t, 32+8, strings.Count(out, "<text"))
	assert.Equal(t, 8, strings.Count(out, "♟"))
	assert.Equal(t, 8, strings.Count(out, "♙"))
	assert.Equal(t, 1, strings.Count(out, "♔"))
	assert.Equal(t, 1, strings.Count(out, "♚"))
	assert.NotContains(t, out, _highlightFill)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

func TestBoardOptions(t *testing.T) {
	b, err := board.BuildFromFen("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.True(t, helpers.IsNil(err))

	e1, _ := helpers.SquareFromAlgebraic("e1")
	moves := b.MovesFrom(e1)
	highlights := helpers.MapSlice(moves, func(m board.Move) board.Square {
		return m.To
	})

	buffer := bytes.Buffer{}
	Board(&buffer, b, WithSquareSize(10), WithHighlights(highlights...))
	out := buffer.String()

	assert.Contains(t, out, `width="80"`)
	assert.Equal(t, 5, strings.Count(out, _highlightFill))
	assert.Equal(t, 2+8, strings.Count(out, "<text"))
}
