package board

import (
	"github.com/cricklet/chessmoves/internal/helpers"
)

type Dir int

const (
	N Dir = iota
	S
	E
	W

	NE
	NW
	SE
	SW

	NNE
	NNW
	SSE
	SSW
	ENE
	ESE
	WNW
	WSW

	NumDirs
)

var KnightDirs = []Dir{
	NNE,
	NNW,
	SSE,
	SSW,
	ENE,
	ESE,
	WNW,
	WSW,
}

var RookDirs = []Dir{
	N,
	S,
	E,
	W,
}

var BishopDirs = []Dir{
	NE,
	NW,
	SE,
	SW,
}

var QueenDirs = []Dir{
	N,
	S,
	E,
	W,
	NE,
	NW,
	SE,
	SW,
}

var KingDirs = QueenDirs

type offset struct {
	file int
	rank int
}

var (
	offsetN = offset{0, 1}
	offsetS = offset{0, -1}
	offsetE = offset{1, 0}
	offsetW = offset{-1, 0}
)

func (o offset) plus(others ...offset) offset {
	for _, other := range others {
		o = offset{o.file + other.file, o.rank + other.rank}
	}
	return o
}

// Offsets holds the (file, rank) step of each direction.
var Offsets = [NumDirs]offset{
	offsetN,
	offsetS,
	offsetE,
	offsetW,

	offsetN.plus(offsetE),
	offsetN.plus(offsetW),
	offsetS.plus(offsetE),
	offsetS.plus(offsetW),

	offsetN.plus(offsetN, offsetE),
	offsetN.plus(offsetN, offsetW),
	offsetS.plus(offsetS, offsetE),
	offsetS.plus(offsetS, offsetW),
	offsetE.plus(offsetN, offsetE),
	offsetE.plus(offsetS, offsetE),
	offsetW.plus(offsetN, offsetW),
	offsetW.plus(offsetS, offsetW),
}

func (d Dir) step(from Square) helpers.Optional[Square] {
	o := Offsets[d]
	return from.Offset(o.file, o.rank)
}

// SlidingMoves walks each ray outward until the board edge, a friendly piece (excluded) or an
// enemy piece (included, then the ray stops).
func (b *Board) SlidingMoves(from Square, color Color, dirs []Dir) []Square {
	moves := []Square{}

	for _, dir := range dirs {
		current := from
		for {
			next := dir.step(current)
			if next.IsEmpty() {
				break
			}
			current = next.Value()

			occupant := b.PieceAt(current)
			if occupant.IsEmpty() {
				moves = append(moves, current)
				continue
			}
			if occupant.Value().Color() != color {
				moves = append(moves, current)
			}
			break
		}
	}

	return moves
}

func (b *Board) offsetMoves(from Square, color Color, dirs []Dir) []Square {
	moves := []Square{}
	for _, dir := range dirs {
		target := dir.step(from)
		if target.HasValue() && b.IsEmptyOrCapturable(target.Value(), color) {
			moves = append(moves, target.Value())
		}
	}
	return moves
}

func (b *Board) KnightMoves(from Square, color Color) []Square {
	return b.offsetMoves(from, color, KnightDirs)
}

func (b *Board) KingMoves(from Square, color Color) []Square {
	return b.offsetMoves(from, color, KingDirs)
}

// PawnMoves covers single and double pushes, diagonal captures and en passant. Promotion is left
// to the caller: a push onto the last rank is reported as a plain target.
func (b *Board) PawnMoves(from Square, color Color, hasMoved bool) []Square {
	moves := []Square{}
	direction := color.PawnDirection()

	if single := from.Offset(0, direction); single.HasValue() && b.PieceAt(single.Value()).IsEmpty() {
		moves = append(moves, single.Value())

		if !hasMoved {
			double := from.Offset(0, 2*direction)
			if double.HasValue() && b.PieceAt(double.Value()).IsEmpty() {
				moves = append(moves, double.Value())
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		target := from.Offset(df, direction)
		if target.IsEmpty() {
			continue
		}
		occupant := b.PieceAt(target.Value())
		if occupant.HasValue() {
			if occupant.Value().Color() == color.Opposite() {
				moves = append(moves, target.Value())
			}
		} else if b.isEnPassantCapture(from, target.Value(), color) {
			moves = append(moves, target.Value())
		}
	}

	return moves
}

// EnPassantCaptureSquare is where the pawn taken by an en-passant capture stands: the target's
// file on the capturing pawn's rank.
func EnPassantCaptureSquare(from Square, target Square) Square {
	return Square{File: target.File, Rank: from.Rank}
}

// EnPassantTargetRank is the rank color captures onto en passant: the sixth rank for white,
// the third for black.
func EnPassantTargetRank(color Color) helpers.Rank {
	if color == White {
		return 5
	}
	return 2
}

func (b *Board) isEnPassantCapture(from Square, target Square, color Color) bool {
	if b.enPassantTarget.IsEmpty() || b.enPassantTarget.Value() != target {
		return false
	}
	if target.Rank != EnPassantTargetRank(color) {
		return false
	}
	captured := b.PieceAt(EnPassantCaptureSquare(from, target))
	if captured.IsEmpty() {
		return false
	}
	victim := captured.Value()
	return victim.PieceType() == helpers.Pawn && victim.Color() == color.Opposite()
}

type MoveType int

const (
	QuietMove MoveType = iota
	CaptureMove
	DoublePawnPush
	EnPassantMove
)

func (t MoveType) Captures() bool {
	return t == CaptureMove || t == EnPassantMove
}

func (t MoveType) String() string {
	switch t {
	case QuietMove:
		return "QuietMove"
	case CaptureMove:
		return "CaptureMove"
	case DoublePawnPush:
		return "DoublePawnPush"
	case EnPassantMove:
		return "EnPassantMove"
	}
	return "Invalid"
}

type Move struct {
	MoveType MoveType
	Piece    Piece
	From     Square
	To       Square
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

func (m Move) DebugString() string {
	if m.MoveType.Captures() {
		return Letter(m.Piece) + m.From.String() + "x" + m.To.String()
	}
	return Letter(m.Piece) + m.From.String() + m.To.String()
}

// CapturedSquare is the square of the piece removed by the move, if any.
func (m Move) CapturedSquare() helpers.Optional[Square] {
	switch m.MoveType {
	case CaptureMove:
		return helpers.Some(m.To)
	case EnPassantMove:
		return helpers.Some(EnPassantCaptureSquare(m.From, m.To))
	}
	return helpers.Empty[Square]()
}

func (b *Board) classify(p Piece, to Square) MoveType {
	if b.PieceAt(to).HasValue() {
		return CaptureMove
	}
	if p.PieceType() == helpers.Pawn {
		_, dr := delta(p.Position(), to)
		if dr == 2 || dr == -2 {
			return DoublePawnPush
		}
		if p.Position().File != to.File {
			return EnPassantMove
		}
	}
	return QuietMove
}

func (b *Board) movesFor(p Piece) []Move {
	return helpers.MapSlice(p.ValidMoves(b), func(to Square) Move {
		return Move{b.classify(p, to), p, p.Position(), to}
	})
}

// MovesFrom lists the moves of the piece on sq; an empty square has none.
func (b *Board) MovesFrom(sq Square) []Move {
	p := b.PieceAt(sq)
	if p.IsEmpty() {
		return []Move{}
	}
	return b.movesFor(p.Value())
}

// Moves lists every pseudo-legal move of color, in the order of the snapshot's pieces.
func (b *Board) Moves(color Color) []Move {
	moves := []Move{}
	for _, p := range b.PiecesOfColor(color) {
		moves = append(moves, b.movesFor(p)...)
	}
	return moves
}
