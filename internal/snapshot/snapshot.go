// Package snapshot is the external game-state model: one-indexed positions and numeric codes
// for colours and piece kinds, in the shape other services exchange. It is consumed, never
// mutated, by the board index.
package snapshot

import (
	"fmt"

	. "github.com/cricklet/chessmoves/internal/helpers"
)

// Position is a one-indexed square. Index (0..63) and Algebraic are derived from File and Rank.
type Position struct {
	File      int32  `json:"file"`
	Rank      int32  `json:"rank"`
	Index     int32  `json:"index"`
	Algebraic string `json:"algebraic"`
}

func NewPosition(sq Square) *Position {
	file, rank := sq.ToExternal()
	return &Position{
		File:      file,
		Rank:      rank,
		Index:     int32(sq.Index()),
		Algebraic: sq.Algebraic(),
	}
}

func (p *Position) String() string {
	if p == nil {
		return "<nil>"
	}
	if p.Algebraic != "" {
		return p.Algebraic
	}
	return fmt.Sprintf("(%v,%v)", p.File, p.Rank)
}

type KingState struct {
	Color    int32     `json:"color"`
	Position *Position `json:"position,omitempty"`
	HasMoved bool      `json:"hasMoved,omitempty"`
}

type QueenState struct {
	Color    int32     `json:"color"`
	Position *Position `json:"position,omitempty"`
}

type RookState struct {
	Color    int32     `json:"color"`
	Position *Position `json:"position,omitempty"`
	HasMoved bool      `json:"hasMoved,omitempty"`
}

type BishopState struct {
	Color       int32     `json:"color"`
	Position    *Position `json:"position,omitempty"`
	SquareColor int32     `json:"squareColor,omitempty"`
}

type KnightState struct {
	Color    int32     `json:"color"`
	Position *Position `json:"position,omitempty"`
}

type PawnState struct {
	Color               int32     `json:"color"`
	Position            *Position `json:"position,omitempty"`
	HasMoved            bool      `json:"hasMoved,omitempty"`
	PromotedTo          int32     `json:"promotedTo,omitempty"`
	EnPassantVulnerable bool      `json:"enPassantVulnerable,omitempty"`
}

// Piece is a one-of: exactly one kind field is expected to be set.
type Piece struct {
	Captured bool         `json:"captured,omitempty"`
	King     *KingState   `json:"king,omitempty"`
	Queen    *QueenState  `json:"queen,omitempty"`
	Rook     *RookState   `json:"rook,omitempty"`
	Bishop   *BishopState `json:"bishop,omitempty"`
	Knight   *KnightState `json:"knight,omitempty"`
	Pawn     *PawnState   `json:"pawn,omitempty"`
}

// Kind reports which kind field is set. Zero or several set kinds are an error.
func (p *Piece) Kind() (PieceType, Error) {
	kinds := []PieceType{}
	if p.King != nil {
		kinds = append(kinds, King)
	}
	if p.Queen != nil {
		kinds = append(kinds, Queen)
	}
	if p.Rook != nil {
		kinds = append(kinds, Rook)
	}
	if p.Bishop != nil {
		kinds = append(kinds, Bishop)
	}
	if p.Knight != nil {
		kinds = append(kinds, Knight)
	}
	if p.Pawn != nil {
		kinds = append(kinds, Pawn)
	}

	switch len(kinds) {
	case 0:
		return InvalidPiece, Errorf("piece has no kind")
	case 1:
		return kinds[0], NilError
	default:
		return InvalidPiece, Errorf("piece has %v kinds %v", len(kinds), kinds)
	}
}

// Common returns the colour code and position shared by every kind.
func (p *Piece) Common() (int32, *Position, Error) {
	kind, err := p.Kind()
	if !IsNil(err) {
		return 0, nil, err
	}
	switch kind {
	case King:
		return p.King.Color, p.King.Position, NilError
	case Queen:
		return p.Queen.Color, p.Queen.Position, NilError
	case Rook:
		return p.Rook.Color, p.Rook.Position, NilError
	case Bishop:
		return p.Bishop.Color, p.Bishop.Position, NilError
	case Knight:
		return p.Knight.Color, p.Knight.Position, NilError
	default:
		return p.Pawn.Color, p.Pawn.Position, NilError
	}
}

func (p Piece) String() string {
	kind, err := p.Kind()
	if !IsNil(err) {
		return "invalid piece"
	}
	color, position, _ := p.Common()
	s := fmt.Sprintf("%v(color=%v) at %v", kind, color, position)
	if p.Captured {
		s += " captured"
	}
	return s
}

type BoardState struct {
	Pieces []Piece `json:"pieces"`
}

type GameState struct {
	Board                  *BoardState `json:"board,omitempty"`
	CurrentPlayer          int32       `json:"currentPlayer"`
	WhiteKingsideCastling  bool        `json:"whiteKingsideCastling"`
	WhiteQueensideCastling bool        `json:"whiteQueensideCastling"`
	BlackKingsideCastling  bool        `json:"blackKingsideCastling"`
	BlackQueensideCastling bool        `json:"blackQueensideCastling"`
	EnPassantTarget        *Position   `json:"enPassantTarget,omitempty"`
	HalfmoveClock          int32       `json:"halfmoveClock"`
	FullmoveNumber         int32       `json:"fullmoveNumber"`
}

// Pieces returns the piece list, treating a missing board as empty.
func (g *GameState) Pieces() []Piece {
	if g == nil || g.Board == nil {
		return nil
	}
	return g.Board.Pieces
}

func clonePosition(p *Position) *Position {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func clonePointer[T any](t *T, withPosition func(*T)) *T {
	if t == nil {
		return nil
	}
	c := *t
	withPosition(&c)
	return &c
}

func (p Piece) Clone() Piece {
	return Piece{
		Captured: p.Captured,
		King:     clonePointer(p.King, func(k *KingState) { k.Position = clonePosition(k.Position) }),
		Queen:    clonePointer(p.Queen, func(q *QueenState) { q.Position = clonePosition(q.Position) }),
		Rook:     clonePointer(p.Rook, func(r *RookState) { r.Position = clonePosition(r.Position) }),
		Bishop:   clonePointer(p.Bishop, func(b *BishopState) { b.Position = clonePosition(b.Position) }),
		Knight:   clonePointer(p.Knight, func(n *KnightState) { n.Position = clonePosition(n.Position) }),
		Pawn:     clonePointer(p.Pawn, func(p *PawnState) { p.Position = clonePosition(p.Position) }),
	}
}

// Clone deep-copies the snapshot so callers holding the copy cannot affect the original.
func (g *GameState) Clone() *GameState {
	if g == nil {
		return nil
	}
	c := *g
	c.EnPassantTarget = clonePosition(g.EnPassantTarget)
	if g.Board != nil {
		c.Board = &BoardState{Pieces: MapSlice(g.Board.Pieces, Piece.Clone)}
	}
	return &c
}
