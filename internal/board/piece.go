package board

import (
	"fmt"
	"strings"

	"github.com/cricklet/chessmoves/internal/helpers"
)

// Piece is implemented by exactly six types: *King, *Queen, *Rook, *Bishop, *Knight and *Pawn.
type Piece interface {
	Color() Color
	Position() Square
	PieceType() PieceType

	// CanMoveTo reports whether target matches the movement pattern, ignoring every other piece.
	CanMoveTo(target Square) bool

	// ValidMoves lists the pseudo-legal targets on b.
	ValidMoves(b *Board) []Square

	isPiece()
}

type base struct {
	color    Color
	position Square
}

func (p *base) Color() Color {
	return p.color
}

func (p *base) Position() Square {
	return p.position
}

func (p *base) isPiece() {}

func IsValidMove(p Piece, target Square, b *Board) bool {
	return helpers.Contains(p.ValidMoves(b), target)
}

func DisplayName(p Piece) string {
	return fmt.Sprintf("%v %v", p.Color(), p.PieceType())
}

// Letter is the FEN letter of the piece, upper case for white.
func Letter(p Piece) string {
	letter := p.PieceType().Letter()
	if p.Color() == White {
		return strings.ToUpper(letter)
	}
	return letter
}

func Describe(p Piece) string {
	return DisplayName(p) + " at " + p.Position().String()
}

type King struct {
	base
	hasMoved bool
}

func NewKing(color Color, position Square) *King {
	return &King{base: base{color, position}}
}

func (k *King) HasMoved() bool {
	return k.hasMoved
}

func (k *King) MarkMoved() {
	k.hasMoved = true
}

func (k *King) PieceType() PieceType {
	return helpers.King
}

func (k *King) CanMoveTo(target Square) bool {
	df, dr := delta(k.position, target)
	return helpers.MaxInt(helpers.Abs(df), helpers.Abs(dr)) == 1
}

func (k *King) ValidMoves(b *Board) []Square {
	return b.KingMoves(k.position, k.color)
}

type Queen struct {
	base
}

func NewQueen(color Color, position Square) *Queen {
	return &Queen{base{color, position}}
}

func (q *Queen) PieceType() PieceType {
	return helpers.Queen
}

func (q *Queen) CanMoveTo(target Square) bool {
	df, dr := delta(q.position, target)
	fileDiff, rankDiff := helpers.Abs(df), helpers.Abs(dr)
	return (fileDiff == 0 || rankDiff == 0 || fileDiff == rankDiff) && !(fileDiff == 0 && rankDiff == 0)
}

func (q *Queen) ValidMoves(b *Board) []Square {
	return b.SlidingMoves(q.position, q.color, QueenDirs)
}

type Rook struct {
	base
	hasMoved bool
}

func NewRook(color Color, position Square) *Rook {
	return &Rook{base: base{color, position}}
}

func (r *Rook) HasMoved() bool {
	return r.hasMoved
}

func (r *Rook) MarkMoved() {
	r.hasMoved = true
}

func (r *Rook) PieceType() PieceType {
	return helpers.Rook
}

func (r *Rook) CanMoveTo(target Square) bool {
	df, dr := delta(r.position, target)
	return (df == 0 || dr == 0) && !(df == 0 && dr == 0)
}

func (r *Rook) ValidMoves(b *Board) []Square {
	return b.SlidingMoves(r.position, r.color, RookDirs)
}

// Bishop records the shade of the squares it travels on. The shade is bookkeeping only.
type Bishop struct {
	base
	squareColor BishopSquareColor
}

func NewBishop(color Color, position Square, squareColor BishopSquareColor) *Bishop {
	return &Bishop{base{color, position}, squareColor}
}

// NewBishopOn derives the square colour from position.
func NewBishopOn(color Color, position Square) *Bishop {
	return NewBishop(color, position, helpers.SquareColorOf(position))
}

func (b *Bishop) SquareColor() BishopSquareColor {
	return b.squareColor
}

func (b *Bishop) PieceType() PieceType {
	return helpers.Bishop
}

func (b *Bishop) CanMoveTo(target Square) bool {
	df, dr := delta(b.position, target)
	fileDiff, rankDiff := helpers.Abs(df), helpers.Abs(dr)
	return fileDiff == rankDiff && fileDiff != 0
}

func (b *Bishop) ValidMoves(board *Board) []Square {
	return board.SlidingMoves(b.position, b.color, BishopDirs)
}

type Knight struct {
	base
}

func NewKnight(color Color, position Square) *Knight {
	return &Knight{base{color, position}}
}

func (n *Knight) PieceType() PieceType {
	return helpers.Knight
}

func (n *Knight) CanMoveTo(target Square) bool {
	df, dr := delta(n.position, target)
	fileDiff, rankDiff := helpers.Abs(df), helpers.Abs(dr)
	return (fileDiff == 2 && rankDiff == 1) || (fileDiff == 1 && rankDiff == 2)
}

func (n *Knight) ValidMoves(b *Board) []Square {
	return b.KnightMoves(n.position, n.color)
}

type Pawn struct {
	base
	hasMoved            bool
	promotedTo          helpers.Optional[PieceType]
	enPassantVulnerable bool
}

func NewPawn(color Color, position Square) *Pawn {
	return &Pawn{base: base{color, position}}
}

func (p *Pawn) HasMoved() bool {
	return p.hasMoved
}

func (p *Pawn) MarkMoved() {
	p.hasMoved = true
}

func (p *Pawn) PromotedTo() helpers.Optional[PieceType] {
	return p.promotedTo
}

func (p *Pawn) SetPromotedTo(pieceType PieceType) {
	p.promotedTo = helpers.Some(pieceType)
}

func (p *Pawn) EnPassantVulnerable() bool {
	return p.enPassantVulnerable
}

func (p *Pawn) SetEnPassantVulnerable(vulnerable bool) {
	p.enPassantVulnerable = vulnerable
}

func (p *Pawn) PieceType() PieceType {
	return helpers.Pawn
}

func (p *Pawn) CanMoveTo(target Square) bool {
	direction := p.color.PawnDirection()
	df, dr := delta(p.position, target)

	switch helpers.Abs(df) {
	case 0:
		return dr == direction || (dr == 2*direction && !p.hasMoved)
	case 1:
		return dr == direction
	default:
		return false
	}
}

func (p *Pawn) ValidMoves(b *Board) []Square {
	return b.PawnMoves(p.position, p.color, p.hasMoved)
}
