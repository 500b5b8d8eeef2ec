// Package render draws boards as SVG for the web client.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/cricklet/chessmoves/internal/board"
	"github.com/cricklet/chessmoves/internal/helpers"
)

const (
	_lightFill     = "fill:#f0d9b5"
	_darkFill      = "fill:#b58863"
	_highlightFill = "fill:#8fbc8f"
	_labelStyle    = "font-family:sans-serif;fill:#555"
)

var _glyphs = [2]map[board.PieceType]string{
	board.White: {
		helpers.King:   "♔",
		helpers.Queen:  "♕",
		helpers.Rook:   "♖",
		helpers.Bishop: "♗",
		helpers.Knight: "♘",
		helpers.Pawn:   "♙",
	},
	board.Black: {
		helpers.King:   "♚",
		helpers.Queen:  "♛",
		helpers.Rook:   "♜",
		helpers.Bishop: "♝",
		helpers.Knight: "♞",
		helpers.Pawn:   "♟",
	},
}

type options struct {
	squareSize int
	highlights []board.Square
}

type Option func(*options)

func WithSquareSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.squareSize = size
		}
	}
}

func WithHighlights(squares ...board.Square) Option {
	return func(o *options) {
		o.highlights = append(o.highlights, squares...)
	}
}

// Board writes b as an SVG document with rank 8 at the top and file labels below.
func Board(w io.Writer, b *board.Board, opts ...Option) {
	o := options{squareSize: 48}
	for _, opt := range opts {
		opt(&o)
	}
	size := o.squareSize
	labelHeight := size / 3

	canvas := svg.New(w)
	canvas.Start(size*8, size*8+labelHeight)

	for _, sq := range helpers.AllSquares {
		x, y := int(sq.File)*size, (7-int(sq.Rank))*size

		fill := _darkFill
		if helpers.Contains(o.highlights, sq) {
			fill = _highlightFill
		} else if helpers.SquareColorOf(sq) == board.Light {
			fill = _lightFill
		}
		canvas.Rect(x, y, size, size, fill)

		p := b.PieceAt(sq)
		if p.IsEmpty() {
			continue
		}
		// white pieces use the outlined glyphs
		canvas.Text(x+size/2, y+size*4/5, _glyphs[p.Value().Color()][p.Value().PieceType()],
			fmt.Sprintf("fill:#000;font-size:%vpx;text-anchor:middle", size*4/5))
	}

	for file := 0; file < 8; file++ {
		canvas.Text(file*size+size/2, size*8+labelHeight*4/5, helpers.File(file).String(),
			fmt.Sprintf("%v;font-size:%vpx;text-anchor:middle", _labelStyle, labelHeight*4/5))
	}

	canvas.End()
}
