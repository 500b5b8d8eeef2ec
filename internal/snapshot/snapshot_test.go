package snapshot

import (
	"encoding/json"
	"testing"

	. "github.com/cricklet/chessmoves/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func TestCastlingRights(t *testing.T) {
	s := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w Kq - 0 1"
	g, err := FromFen(s)
	assert.True(t, IsNil(err))

	assert.True(t, g.WhiteKingsideCastling)
	assert.False(t, g.WhiteQueensideCastling)
	assert.False(t, g.BlackKingsideCastling)
	assert.True(t, g.BlackQueensideCastling)
}

func TestFenRoundTrip(t *testing.T) {
	for _, s := range []string{
		StartingFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"8/8/8/8/8/8/8/8 b - - 12 40",
	} {
		g, err := FromFen(s)
		assert.True(t, IsNil(err), s)
		assert.Equal(t, s, Fen(g))
	}
}

func TestFenShortForms(t *testing.T) {
	g, err := FromFen("8/8/8/8/8/8/8/4K3 b")
	assert.True(t, IsNil(err))
	assert.Equal(t, Black.Code(), g.CurrentPlayer)
	assert.Equal(t, int32(0), g.HalfmoveClock)
	assert.Equal(t, int32(1), g.FullmoveNumber)
	assert.Nil(t, g.EnPassantTarget)

	g, err = FromFen("8/8/8/8/8/8/8/4K3 w Q e3")
	assert.True(t, IsNil(err))
	assert.True(t, g.WhiteQueensideCastling)
	assert.Equal(t, "e3", g.EnPassantTarget.Algebraic)
}

func TestFenErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"8/8/8/8/8/8/8/8",
		"8/8/8/8/8/8/8 w - - 0 1",
		"8/8/8/8/8/8/8/9 w - - 0 1",
		"8/8/8/8/8/8/8/7x w - - 0 1",
		"8/8/8/8/8/8/8/8 x - - 0 1",
		"8/8/8/8/8/8/8/8 w X - 0 1",
		"8/8/8/8/8/8/8/8 w - z9 0 1",
		"8/8/8/8/8/8/8/8 w - - a 1",
		"8/8/8/8/8/8/8/8 w - - 0 b",
		"8/8/8/8/8/8/8/8/8 w - - 0 1",
		"08/8/8/8/8/8/8/8 w - - 0 1",
		"8/8/8/4k03/8/8/8/4K3 w - - 0 1",
	} {
		_, err := FromFen(s)
		assert.False(t, IsNil(err), s)
	}
}

func TestFenPieces(t *testing.T) {
	g, err := FromFen(StartingFen)
	assert.True(t, IsNil(err))
	assert.Equal(t, 32, len(g.Pieces()))

	first := g.Pieces()[0]
	kind, err := first.Kind()
	assert.True(t, IsNil(err))
	assert.Equal(t, Rook, kind)
	assert.Equal(t, "a1", first.Rook.Position.Algebraic)
	assert.Equal(t, White.Code(), first.Rook.Color)
	assert.False(t, first.Rook.HasMoved)

	last := g.Pieces()[31]
	assert.NotNil(t, last.Rook)
	assert.Equal(t, "h8", last.Rook.Position.Algebraic)
	assert.Equal(t, Black.Code(), last.Rook.Color)

	for _, p := range g.Pieces() {
		if p.Pawn != nil {
			assert.False(t, p.Pawn.HasMoved)
		}
		if p.King != nil {
			assert.False(t, p.King.HasMoved)
		}
		if p.Bishop != nil {
			sq := SquareFromExternal(p.Bishop.Position.File, p.Bishop.Position.Rank).Value()
			assert.Equal(t, SquareColorOf(sq).Code(), p.Bishop.SquareColor)
		}
	}
}

func TestFenEnPassantVulnerable(t *testing.T) {
	g, err := FromFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.True(t, IsNil(err))

	vulnerable := FilterSlice(g.Pieces(), func(p Piece) bool {
		return p.Pawn != nil && p.Pawn.EnPassantVulnerable
	})
	assert.Equal(t, 1, len(vulnerable))
	assert.Equal(t, "d5", vulnerable[0].Pawn.Position.Algebraic)
	assert.True(t, vulnerable[0].Pawn.HasMoved)

	// only targets on the third or sixth rank mark a pawn
	g, err = FromFen("4k3/8/8/3p4/8/8/8/4K3 w - d4 0 1")
	assert.True(t, IsNil(err))
	assert.Equal(t, 0, len(FilterSlice(g.Pieces(), func(p Piece) bool {
		return p.Pawn != nil && p.Pawn.EnPassantVulnerable
	})))
}

func TestPieceKind(t *testing.T) {
	p := Piece{}
	_, err := p.Kind()
	assert.False(t, IsNil(err))

	p = Piece{King: &KingState{Color: 1}, Queen: &QueenState{Color: 1}}
	_, err = p.Kind()
	assert.False(t, IsNil(err))

	p = Piece{Knight: &KnightState{Color: 2, Position: NewPosition(Square{File: 1, Rank: 7})}}
	kind, err := p.Kind()
	assert.True(t, IsNil(err))
	assert.Equal(t, Knight, kind)

	color, position, err := p.Common()
	assert.True(t, IsNil(err))
	assert.Equal(t, int32(2), color)
	assert.Equal(t, &Position{File: 2, Rank: 8, Index: 57, Algebraic: "b8"}, position)
	assert.Equal(t, "Knight(color=2) at b8", p.String())
}

func TestClone(t *testing.T) {
	g, err := FromFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.True(t, IsNil(err))

	c := g.Clone()
	assert.Equal(t, g, c)

	c.Board.Pieces[0].Rook.Position.File = 5
	c.EnPassantTarget.Rank = 1
	assert.Equal(t, int32(1), g.Board.Pieces[0].Rook.Position.File)
	assert.Equal(t, int32(6), g.EnPassantTarget.Rank)

	var missing *GameState
	assert.Nil(t, missing.Clone())
	assert.Nil(t, missing.Pieces())
}

func TestJson(t *testing.T) {
	g, err := FromFen("8/8/8/8/8/8/4P3/4K3 w - - 0 1")
	assert.True(t, IsNil(err))

	bytes, jsonErr := json.Marshal(g)
	assert.Nil(t, jsonErr)

	var decoded GameState
	assert.Nil(t, json.Unmarshal(bytes, &decoded))
	assert.Equal(t, g, &decoded)
	assert.Contains(t, string(bytes), `"pawn":{"color":1,"position":{"file":5,"rank":2,"index":12,"algebraic":"e2"}}`)
}
