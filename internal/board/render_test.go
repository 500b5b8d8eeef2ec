package board

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/cricklet/chessmoves/internal/helpers"
	"github.com/cricklet/chessmoves/internal/snapshot"
	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	b := mustBoard(t, snapshot.StartingFen)
	expected := strings.Join([]string{
		"rnbqkbnr",
		"pppppppp",
		"........",
		"........",
		"........",
		"........",
		"PPPPPPPP",
		"RNBQKBNR",
	}, "\n")
	assert.Equal(t, expected, b.String())
}

func TestUnicode(t *testing.T) {
	b := mustBoard(t, snapshot.StartingFen)

	plain := b.Unicode()
	assert.NotContains(t, plain, _highlightBackground)

	lines := strings.Split(strings.TrimSuffix(helpers.StripAnsi(plain), "\n"), "\n")
	assert.Equal(t, 9, len(lines))
	assert.Equal(t, "   a  b  c  d  e  f  g  h ", lines[0])
	assert.Equal(t, "8  ♜  ♞  ♝  ♛  ♚  ♝  ♞  ♜ ", lines[1])
	assert.Equal(t, "5                         ", lines[4])
	for _, line := range lines[1:] {
		assert.Equal(t, 26, utf8.RuneCountInString(line))
	}

	highlighted := b.Unicode(targets(b.MovesFrom(sq("g1")))...)
	assert.Equal(t, 2, strings.Count(highlighted, _highlightBackground))
	assert.Equal(t, helpers.StripAnsi(plain), helpers.StripAnsi(highlighted))
}
