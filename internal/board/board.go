package board

import (
	"fmt"

	"github.com/cricklet/chessmoves/internal/helpers"
	"github.com/cricklet/chessmoves/internal/snapshot"
)

// Strictness decides what Build does with malformed snapshot entries.
type Strictness int

const (
	// Strict rejects the snapshot, reporting every malformed entry.
	Strict Strictness = iota
	// Lenient drops malformed pieces and records an Issue for each.
	Lenient
)

func (s Strictness) String() string {
	if s == Lenient {
		return "lenient"
	}
	return "strict"
}

// Issue describes a snapshot entry that a lenient build dropped or replaced. PieceIndex is -1
// for game-level fields.
type Issue struct {
	PieceIndex int
	Err        helpers.Error
}

func (i Issue) String() string {
	if i.PieceIndex < 0 {
		return i.Err.Error()
	}
	return fmt.Sprintf("piece %v: %v", i.PieceIndex, i.Err.Error())
}

type buildOptions struct {
	strictness Strictness
	logger     helpers.Logger
}

type BuildOption func(*buildOptions)

func WithStrictness(strictness Strictness) BuildOption {
	return func(o *buildOptions) {
		o.strictness = strictness
	}
}

func WithLogger(logger helpers.Logger) BuildOption {
	return func(o *buildOptions) {
		o.logger = logger
	}
}

// Board is a read-only index over one snapshot. It is never updated in place: rebuild it
// whenever the snapshot changes. Concurrent readers may share a Board.
type Board struct {
	snapshot *snapshot.GameState

	squares [64]Piece
	pieces  []Piece
	byColor [2][]Piece

	currentPlayer   Color
	enPassantTarget helpers.Optional[Square]

	issues []Issue
}

type builder struct {
	options buildOptions
	board   *Board
	errs    []helpers.Error

	// pieceIndexAt remembers which snapshot piece claimed each square.
	pieceIndexAt [64]int
}

func (b *builder) report(pieceIndex int, err helpers.Error) {
	if b.options.strictness == Strict {
		if pieceIndex >= 0 {
			err = helpers.Errorf("piece %v: %w", pieceIndex, err)
		}
		b.errs = append(b.errs, err)
		return
	}
	issue := Issue{pieceIndex, err}
	b.options.logger.Println("dropping from board:", issue)
	b.board.issues = append(b.board.issues, issue)
}

func (b *builder) addPiece(pieceIndex int, p *snapshot.Piece) {
	if p.Captured {
		return
	}

	piece, err := FromSnapshot(p, b.options.strictness == Strict)
	if !helpers.IsNil(err) {
		b.report(pieceIndex, err)
		return
	}

	index := piece.Position().Index()
	if existing := b.board.squares[index]; existing != nil {
		b.report(pieceIndex, helpers.Errorf("%v on %v which is held by piece %v (%v)",
			DisplayName(piece), piece.Position(), b.pieceIndexAt[index], DisplayName(existing)))
		return
	}

	b.pieceIndexAt[index] = pieceIndex
	b.board.squares[index] = piece
	b.board.pieces = append(b.board.pieces, piece)
	b.board.byColor[piece.Color()] = append(b.board.byColor[piece.Color()], piece)
}

func (b *builder) setGameFields(g *snapshot.GameState) {
	player, err := helpers.ColorFromCode(g.CurrentPlayer)
	if !helpers.IsNil(err) {
		b.report(-1, helpers.Errorf("current player: %w", err))
	}
	b.board.currentPlayer = player

	if g.EnPassantTarget != nil {
		sq, err := SquareFromPosition(g.EnPassantTarget, b.options.strictness == Strict)
		if helpers.IsNil(err) {
			b.board.enPassantTarget = helpers.Some(sq)
		} else {
			b.report(-1, helpers.Errorf("en-passant target: %w", err))
		}
	}
}

// Build indexes every live piece of g. In Strict mode (the default) any malformed piece,
// two pieces on one square, an unknown current player or a bad en-passant square fails the
// build. In Lenient mode those entries are dropped (an unknown player becomes white) and
// listed by Issues.
func Build(g *snapshot.GameState, options ...BuildOption) (*Board, helpers.Error) {
	if g == nil {
		return nil, helpers.Errorf("nil snapshot")
	}

	b := builder{
		options: buildOptions{strictness: Strict, logger: &helpers.SilentLogger},
		board: &Board{
			snapshot: g.Clone(),
			pieces:   []Piece{},
			byColor:  [2][]Piece{{}, {}},
		},
	}
	for _, o := range options {
		o(&b.options)
	}

	b.setGameFields(g)
	pieces := g.Pieces()
	for i := range pieces {
		b.addPiece(i, &pieces[i])
	}

	if len(b.errs) > 0 {
		return nil, helpers.Join(b.errs...)
	}
	return b.board, helpers.NilError
}

func BuildFromFen(fen string, options ...BuildOption) (*Board, helpers.Error) {
	g, err := snapshot.FromFen(fen)
	if !helpers.IsNil(err) {
		return nil, err
	}
	return Build(g, options...)
}

// NewBoard builds a board holding pieces with currentPlayer to move and no castling rights.
func NewBoard(currentPlayer Color, pieces ...Piece) (*Board, helpers.Error) {
	g := &snapshot.GameState{
		Board: &snapshot.BoardState{
			Pieces: helpers.MapSlice(pieces, ToSnapshot),
		},
		CurrentPlayer:  currentPlayer.Code(),
		FullmoveNumber: 1,
	}
	return Build(g)
}

func (b *Board) PieceAt(sq Square) helpers.Optional[Piece] {
	if !sq.IsValid() {
		return helpers.Empty[Piece]()
	}
	if p := b.squares[sq.Index()]; p != nil {
		return helpers.Some(p)
	}
	return helpers.Empty[Piece]()
}

// IsEmptyOrCapturable is false only when sq holds a piece of color.
func (b *Board) IsEmptyOrCapturable(sq Square, color Color) bool {
	p := b.PieceAt(sq)
	return p.IsEmpty() || p.Value().Color() != color
}

func (b *Board) PiecesOfColor(color Color) []Piece {
	if color > Black {
		return []Piece{}
	}
	return append([]Piece{}, b.byColor[color]...)
}

// AllPieces lists the live pieces in snapshot order.
func (b *Board) AllPieces() []Piece {
	return append([]Piece{}, b.pieces...)
}

// Issues lists what a lenient build dropped.
func (b *Board) Issues() []Issue {
	return append([]Issue{}, b.issues...)
}

// Snapshot returns a copy of the snapshot the board was built from.
func (b *Board) Snapshot() *snapshot.GameState {
	return b.snapshot.Clone()
}

// Fen describes the indexed position; pieces dropped by a lenient build are not included.
func (b *Board) Fen() string {
	g := *b.snapshot
	g.Board = &snapshot.BoardState{Pieces: helpers.MapSlice(b.pieces, ToSnapshot)}
	g.CurrentPlayer = b.currentPlayer.Code()
	g.EnPassantTarget = nil
	if b.enPassantTarget.HasValue() {
		g.EnPassantTarget = snapshot.NewPosition(b.enPassantTarget.Value())
	}
	return snapshot.Fen(&g)
}

func (b *Board) CurrentPlayer() Color {
	return b.currentPlayer
}

func (b *Board) WhiteKingsideCastling() bool {
	return b.snapshot.WhiteKingsideCastling
}

func (b *Board) WhiteQueensideCastling() bool {
	return b.snapshot.WhiteQueensideCastling
}

func (b *Board) BlackKingsideCastling() bool {
	return b.snapshot.BlackKingsideCastling
}

func (b *Board) BlackQueensideCastling() bool {
	return b.snapshot.BlackQueensideCastling
}

func (b *Board) EnPassantTarget() helpers.Optional[Square] {
	return b.enPassantTarget
}

func (b *Board) HalfmoveClock() int {
	return int(b.snapshot.HalfmoveClock)
}

func (b *Board) FullmoveNumber() int {
	return int(b.snapshot.FullmoveNumber)
}
