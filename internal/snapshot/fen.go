package snapshot

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	. "github.com/cricklet/chessmoves/internal/helpers"
)

const StartingFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func FenStringForColor(c Color) string {
	if c == White {
		return "w"
	} else {
		return "b"
	}
}

func fenStringForCastlingAllowed(g *GameState) string {
	s := ""
	for _, castling := range []struct {
		allowed bool
		letter  string
	}{
		{g.WhiteKingsideCastling, "K"},
		{g.WhiteQueensideCastling, "Q"},
		{g.BlackKingsideCastling, "k"},
		{g.BlackQueensideCastling, "q"},
	} {
		if castling.allowed {
			s += castling.letter
		}
	}
	if len(s) == 0 {
		s += "-"
	}
	return s
}

func fenStringForEnPassant(enPassant *Position) string {
	if enPassant == nil {
		return "-"
	}
	sq := SquareFromExternal(enPassant.File, enPassant.Rank)
	if sq.IsEmpty() {
		return "-"
	}
	return sq.Value().String()
}

// letterGrid places every live, well-formed piece onto a 64-square letter grid. Malformed
// pieces are skipped here; the board index is the place that reports them.
func letterGrid(g *GameState) [64]string {
	grid := [64]string{}
	for i := range g.Pieces() {
		piece := &g.Board.Pieces[i]
		if piece.Captured {
			continue
		}
		kind, err := piece.Kind()
		if !IsNil(err) {
			continue
		}
		colorCode, position, _ := piece.Common()
		color, err := ColorFromCode(colorCode)
		if !IsNil(err) || position == nil {
			continue
		}
		sq := SquareFromExternal(position.File, position.Rank)
		if sq.IsEmpty() {
			continue
		}
		letter := kind.Letter()
		if color == White {
			letter = strings.ToUpper(letter)
		}
		grid[sq.Value().Index()] = letter
	}
	return grid
}

func FenStringForBoard(g *GameState) string {
	grid := letterGrid(g)
	s := ""
	for rank := 7; rank >= 0; rank-- {
		numSpaces := 0
		for file := 0; file < 8; file++ {
			letter := grid[rank*8+file]
			if letter == "" {
				numSpaces++
				continue
			}
			if numSpaces > 0 {
				s += fmt.Sprint(numSpaces)
				numSpaces = 0
			}
			s += letter
		}
		if numSpaces > 0 {
			s += fmt.Sprint(numSpaces)
		}
		if rank != 0 {
			s += "/"
		}
	}
	return s
}

// Fen serializes the snapshot. An unknown current-player code is written as white.
func Fen(g *GameState) string {
	player, _ := ColorFromCode(g.CurrentPlayer)
	return fmt.Sprintf("%v %v %v %v %v %v",
		FenStringForBoard(g),
		FenStringForColor(player),
		fenStringForCastlingAllowed(g),
		fenStringForEnPassant(g.EnPassantTarget),
		g.HalfmoveClock,
		g.FullmoveNumber)
}

var _homeRank = [2]Rank{0, 7}
var _pawnHomeRank = [2]Rank{1, 6}

// NewPiece builds the snapshot form of a piece standing on sq. Moved flags are inferred from
// whether the piece is still on its starting square.
func NewPiece(kind PieceType, color Color, sq Square) Piece {
	position := NewPosition(sq)
	onHomeRank := sq.Rank == _homeRank[color]
	switch kind {
	case King:
		return Piece{King: &KingState{
			Color: color.Code(), Position: position,
			HasMoved: !(onHomeRank && sq.File == 4),
		}}
	case Queen:
		return Piece{Queen: &QueenState{Color: color.Code(), Position: position}}
	case Rook:
		return Piece{Rook: &RookState{
			Color: color.Code(), Position: position,
			HasMoved: !(onHomeRank && (sq.File == 0 || sq.File == 7)),
		}}
	case Bishop:
		return Piece{Bishop: &BishopState{
			Color: color.Code(), Position: position,
			SquareColor: SquareColorOf(sq).Code(),
		}}
	case Knight:
		return Piece{Knight: &KnightState{Color: color.Code(), Position: position}}
	default:
		return Piece{Pawn: &PawnState{
			Color: color.Code(), Position: position,
			HasMoved: sq.Rank != _pawnHomeRank[color],
		}}
	}
}

func pieceFromRune(c rune, sq Square) (Piece, Error) {
	kind := PieceTypeFromLetter(string(c))
	if !kind.IsValid() {
		return Piece{}, Errorf("invalid piece %q", c)
	}
	color := Black
	if unicode.IsUpper(c) {
		color = White
	}
	return NewPiece(kind, color, sq), NilError
}

// markEnPassantVulnerable flags the pawn that just skipped over the en-passant target.
func markEnPassantVulnerable(pieces []Piece, target Square) {
	var pawnRank int
	switch target.Rank {
	case 2:
		pawnRank = 3
	case 5:
		pawnRank = 4
	default:
		return
	}
	pawnSquare := NewSquare(int(target.File), pawnRank)
	if pawnSquare.IsEmpty() {
		return
	}
	for i := range pieces {
		pawn := pieces[i].Pawn
		if pawn != nil && *pawn.Position == *NewPosition(pawnSquare.Value()) {
			pawn.EnPassantVulnerable = true
		}
	}
}

func FromFen(s string) (*GameState, Error) {
	ss := strings.Fields(s)
	if len(ss) != 6 && len(ss) != 4 && len(ss) != 2 {
		return &GameState{}, Errorf("wrong num %v of fields in str '%v'", len(ss), s)
	}

	boardStr, playerString := ss[0], ss[1]

	pieces := []Piece{}

	rankIndex := 7
	fileIndex := 0
	for _, c := range boardStr {
		if c == '/' {
			if fileIndex != 8 {
				return &GameState{}, Errorf("not enough squares in rank, '%v'", s)
			}
			rankIndex--
			fileIndex = 0
		} else if indicesToSkip, err := strconv.ParseInt(string(c), 10, 0); err == nil {
			if indicesToSkip < 1 || indicesToSkip > 8 {
				return &GameState{}, Errorf("invalid empty-square count '%c' in '%v'", c, s)
			}
			fileIndex += int(indicesToSkip)
		} else {
			sq := NewSquare(fileIndex, rankIndex)
			if sq.IsEmpty() {
				return &GameState{}, Errorf("too many squares at '%c' in '%v'", c, s)
			}
			p, err := pieceFromRune(c, sq.Value())
			if !IsNil(err) {
				return &GameState{}, Errorf("unknown character '%c' in '%v'", c, s)
			}
			pieces = append(pieces, p)
			fileIndex++
		}
		if fileIndex > 8 {
			return &GameState{}, Errorf("too many squares in rank, '%v'", s)
		}
	}
	if rankIndex != 0 || fileIndex != 8 {
		return &GameState{}, Errorf("wrong number of ranks in '%v'", s)
	}

	// FEN lists rank 8 first; snapshots list pieces from a1 upwards.
	pieces = sortedByIndex(pieces)

	player, err := ColorFromString(playerString)
	if !IsNil(err) {
		return &GameState{}, Errorf("invalid player '%v' in '%v'", playerString, s)
	}

	castlingRightsString, enPassantTargetString := "-", "-"
	if len(ss) >= 4 {
		castlingRightsString, enPassantTargetString = ss[2], ss[3]
	}

	halfMoveClockString, fullMoveClockString := "0", "1"
	if len(ss) == 6 {
		halfMoveClockString, fullMoveClockString = ss[4], ss[5]
	}

	g := &GameState{
		Board:         &BoardState{Pieces: pieces},
		CurrentPlayer: player.Code(),
	}

	for _, c := range castlingRightsString {
		switch c {
		case '-':
			continue
		case 'K':
			g.WhiteKingsideCastling = true
		case 'Q':
			g.WhiteQueensideCastling = true
		case 'k':
			g.BlackKingsideCastling = true
		case 'q':
			g.BlackQueensideCastling = true
		default:
			return &GameState{}, Errorf("invalid castling rights '%v' in '%v'", castlingRightsString, s)
		}
	}

	if enPassantTargetString != "-" {
		v, err := SquareFromAlgebraic(enPassantTargetString)
		if !IsNil(err) {
			return &GameState{}, Errorf("invalid en-passant target '%v' in '%v'", enPassantTargetString, s)
		}
		g.EnPassantTarget = NewPosition(v)
		markEnPassantVulnerable(pieces, v)
	}

	if v, err := strconv.ParseInt(halfMoveClockString, 10, 32); err == nil {
		g.HalfmoveClock = int32(v)
	} else {
		return &GameState{}, Errorf("invalid half move clock '%v' in '%v'", halfMoveClockString, s)
	}

	if v, err := strconv.ParseInt(fullMoveClockString, 10, 32); err == nil {
		g.FullmoveNumber = int32(v)
	} else {
		return &GameState{}, Errorf("invalid full move clock '%v' in '%v'", fullMoveClockString, s)
	}

	return g, NilError
}

func sortedByIndex(pieces []Piece) []Piece {
	byIndex := [64][]Piece{}
	for _, p := range pieces {
		_, position, _ := p.Common()
		byIndex[position.Index] = append(byIndex[position.Index], p)
	}
	result := make([]Piece, 0, len(pieces))
	for _, ps := range byIndex {
		result = append(result, ps...)
	}
	return result
}
