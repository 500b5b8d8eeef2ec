package board

import (
	"github.com/cricklet/chessmoves/internal/helpers"
)

// String draws rank 8 at the top using FEN letters; empty squares are dots.
func (b *Board) String() string {
	result := ""
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			p := b.PieceAt(Square{File: helpers.File(file), Rank: helpers.Rank(rank)})
			if p.HasValue() {
				result += Letter(p.Value())
			} else {
				result += "."
			}
		}
		if rank != 0 {
			result += "\n"
		}
	}
	return result
}

const _hintForeground = "\033[38;5;244m"
const _whiteForeground = "\033[38;5;255m"
const _blackForeground = "\033[38;5;232m"
const _whiteBackground = "\033[48;5;244m"
const _blackBackground = "\033[48;5;243m"
const _highlightBackground = "\033[48;5;108m"
const _resetColors = "\x1b[0m"

var _unicodePieces = map[PieceType]string{
	helpers.King:   "♚",
	helpers.Queen:  "♛",
	helpers.Rook:   "♜",
	helpers.Bishop: "♝",
	helpers.Knight: "♞",
	helpers.Pawn:   "♟",
}

// Unicode draws the board with ANSI colours, shading the highlighted squares.
func (b *Board) Unicode(highlights ...Square) string {
	result := ""
	result += "  "
	for file := 0; file < 8; file++ {
		result += _hintForeground + " " + helpers.File(file).String() + " " + _resetColors
	}
	result += "\n"

	for rank := 7; rank >= 0; rank-- {
		result += _hintForeground + helpers.Rank(rank).String() + " " + _resetColors
		for file := 0; file < 8; file++ {
			sq := Square{File: helpers.File(file), Rank: helpers.Rank(rank)}
			piece := b.PieceAt(sq)

			if helpers.Contains(highlights, sq) {
				result += _highlightBackground
			} else if helpers.SquareColorOf(sq) == Light {
				result += _whiteBackground
			} else {
				result += _blackBackground
			}

			symbol := " "
			if piece.HasValue() {
				if piece.Value().Color() == White {
					result += _whiteForeground
				} else {
					result += _blackForeground
				}
				symbol = _unicodePieces[piece.Value().PieceType()]
			}

			result += " " + symbol + " "
			result += _resetColors
		}
		result += "\n"
	}

	return result
}
