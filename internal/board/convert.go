package board

import (
	"github.com/cricklet/chessmoves/internal/helpers"
	"github.com/cricklet/chessmoves/internal/snapshot"
)

// SquareFromPosition converts a snapshot position. When strict, coordinates must lie in 1..8
// and a non-empty algebraic field must agree with them; otherwise the conversion saturates
// like helpers.SquareFromExternal.
func SquareFromPosition(p *snapshot.Position, strict bool) (Square, helpers.Error) {
	if p == nil {
		return Square{}, helpers.Errorf("missing position")
	}
	if strict && (p.File < 1 || p.Rank < 1) {
		return Square{}, helpers.Errorf("position (%v,%v) is not one-indexed", p.File, p.Rank)
	}
	sq := helpers.SquareFromExternal(p.File, p.Rank)
	if sq.IsEmpty() {
		return Square{}, helpers.Errorf("position (%v,%v) is off the board", p.File, p.Rank)
	}
	if strict && p.Algebraic != "" && p.Algebraic != sq.Value().Algebraic() {
		return Square{}, helpers.Errorf("position (%v,%v) disagrees with algebraic %q", p.File, p.Rank, p.Algebraic)
	}
	if strict && p.Index != 0 && int(p.Index) != sq.Value().Index() {
		return Square{}, helpers.Errorf("position (%v,%v) disagrees with index %v", p.File, p.Rank, p.Index)
	}
	return sq.Value(), helpers.NilError
}

// FromSnapshot converts one snapshot piece. Unknown codes and missing positions are errors;
// an unset bishop square colour is derived from the bishop's square.
func FromSnapshot(p *snapshot.Piece, strict bool) (Piece, helpers.Error) {
	kind, err := p.Kind()
	if !helpers.IsNil(err) {
		return nil, err
	}
	colorCode, position, _ := p.Common()
	color, err := helpers.ColorFromCode(colorCode)
	if !helpers.IsNil(err) {
		return nil, helpers.Errorf("%v: %w", kind, err)
	}
	sq, err := SquareFromPosition(position, strict)
	if !helpers.IsNil(err) {
		return nil, helpers.Errorf("%v: %w", kind, err)
	}

	switch kind {
	case helpers.King:
		k := NewKing(color, sq)
		k.hasMoved = p.King.HasMoved
		return k, helpers.NilError
	case helpers.Queen:
		return NewQueen(color, sq), helpers.NilError
	case helpers.Rook:
		r := NewRook(color, sq)
		r.hasMoved = p.Rook.HasMoved
		return r, helpers.NilError
	case helpers.Bishop:
		if p.Bishop.SquareColor == 0 {
			return NewBishopOn(color, sq), helpers.NilError
		}
		squareColor, err := helpers.BishopSquareColorFromCode(p.Bishop.SquareColor)
		if !helpers.IsNil(err) {
			return nil, helpers.Errorf("%v: %w", kind, err)
		}
		return NewBishop(color, sq, squareColor), helpers.NilError
	case helpers.Knight:
		return NewKnight(color, sq), helpers.NilError
	default:
		promotedTo, err := helpers.PieceTypeFromCode(p.Pawn.PromotedTo)
		if !helpers.IsNil(err) {
			return nil, helpers.Errorf("%v: %w", kind, err)
		}
		pawn := NewPawn(color, sq)
		pawn.hasMoved = p.Pawn.HasMoved
		pawn.promotedTo = promotedTo
		pawn.enPassantVulnerable = p.Pawn.EnPassantVulnerable
		return pawn, helpers.NilError
	}
}

// ToSnapshot is the inverse of FromSnapshot. Positions carry their derived index and
// algebraic fields.
func ToSnapshot(p Piece) snapshot.Piece {
	color := p.Color().Code()
	position := snapshot.NewPosition(p.Position())

	switch piece := p.(type) {
	case *King:
		return snapshot.Piece{King: &snapshot.KingState{
			Color: color, Position: position, HasMoved: piece.hasMoved,
		}}
	case *Queen:
		return snapshot.Piece{Queen: &snapshot.QueenState{Color: color, Position: position}}
	case *Rook:
		return snapshot.Piece{Rook: &snapshot.RookState{
			Color: color, Position: position, HasMoved: piece.hasMoved,
		}}
	case *Bishop:
		return snapshot.Piece{Bishop: &snapshot.BishopState{
			Color: color, Position: position, SquareColor: piece.squareColor.Code(),
		}}
	case *Knight:
		return snapshot.Piece{Knight: &snapshot.KnightState{Color: color, Position: position}}
	case *Pawn:
		promotedTo := int32(0)
		if piece.promotedTo.HasValue() {
			promotedTo = piece.promotedTo.Value().Code()
		}
		return snapshot.Piece{Pawn: &snapshot.PawnState{
			Color: color, Position: position, HasMoved: piece.hasMoved,
			PromotedTo: promotedTo, EnPassantVulnerable: piece.enPassantVulnerable,
		}}
	}
	return snapshot.Piece{}
}
