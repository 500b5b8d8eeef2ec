package helpers

type File uint8
type Rank uint8

func (f File) String() string {
	return string(rune('a' + f))
}
func (r Rank) String() string {
	return string(rune('1' + r))
}

func RankFromChar(c byte) (Rank, Error) {
	rank := int(c) - '1'
	if rank < 0 || rank >= 8 {
		return 0, Errorf("rank invalid %q", c)
	}
	return Rank(rank), NilError
}

func FileFromChar(c byte) (File, Error) {
	file := int(c) - 'a'
	if file < 0 || file >= 8 {
		return 0, Errorf("file invalid %q", c)
	}
	return File(file), NilError
}

// Square is a zero-indexed board coordinate: file 0 is the a-file, rank 0 is the first rank.
type Square struct {
	File File
	Rank Rank
}

func NewSquare(file int, rank int) Optional[Square] {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return Empty[Square]()
	}
	return Some(Square{File(file), Rank(rank)})
}

func SquareFromIndex(index int) Optional[Square] {
	if index < 0 || index >= 64 {
		return Empty[Square]()
	}
	return Some(Square{File(index & 0b111), Rank(index >> 3)})
}

// SquareFromExternal converts one-indexed coordinates. The conversion saturates: an external 0
// collapses onto internal 0 instead of failing. Values above 8 are not representable.
func SquareFromExternal(file int32, rank int32) Optional[Square] {
	return NewSquare(saturatingDecrement(file), saturatingDecrement(rank))
}

func saturatingDecrement(x int32) int {
	if x <= 0 {
		return 0
	}
	return int(x - 1)
}

func SquareFromAlgebraic(s string) (Square, Error) {
	if len(s) != 2 {
		return Square{}, Errorf("invalid location %q", s)
	}

	file, fileErr := FileFromChar(s[0])
	rank, rankErr := RankFromChar(s[1])

	if !IsNil(fileErr) || !IsNil(rankErr) {
		return Square{}, Errorf("invalid location %q: %v", s, Join(fileErr, rankErr))
	}

	return Square{file, rank}, NilError
}

func (s Square) IsValid() bool {
	return s.File <= 7 && s.Rank <= 7
}

func (s Square) Index() int {
	return int(s.Rank)*8 + int(s.File)
}

func (s Square) ToExternal() (int32, int32) {
	return int32(s.File) + 1, int32(s.Rank) + 1
}

func (s Square) Algebraic() string {
	return s.File.String() + s.Rank.String()
}

func (s Square) String() string {
	return s.Algebraic()
}

func (s Square) Offset(df int, dr int) Optional[Square] {
	return NewSquare(int(s.File)+df, int(s.Rank)+dr)
}

var AllSquares = func() [64]Square {
	result := [64]Square{}
	for i := range result {
		result[i] = SquareFromIndex(i).Value()
	}
	return result
}()

type Color uint8

const (
	White Color = iota
	Black
)

var AllColors = [2]Color{White, Black}

var _colorStrings = [2]string{
	"White", "Black",
}

func (c Color) String() string {
	if c > Black {
		return "Invalid"
	}
	return _colorStrings[c]
}

func (c Color) Opposite() Color {
	return 1 - c
}

// PawnDirection is the rank delta of a forward pawn step.
func (c Color) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// Code is the external colour code: 1 for white, 2 for black.
func (c Color) Code() int32 {
	return int32(c) + 1
}

func ColorFromCode(code int32) (Color, Error) {
	switch code {
	case 1:
		return White, NilError
	case 2:
		return Black, NilError
	default:
		return White, Errorf("invalid color code %v", code)
	}
}

func ColorFromString(c string) (Color, Error) {
	switch c {
	case "b":
		return Black, NilError
	case "w":
		return White, NilError
	default:
		return White, Errorf("invalid player char %q", c)
	}
}

type PieceType uint8

const (
	King PieceType = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
	InvalidPiece
)

var AllPieceTypes = [6]PieceType{King, Queen, Rook, Bishop, Knight, Pawn}

func (p PieceType) String() string {
	return [7]string{
		"King", "Queen", "Rook", "Bishop", "Knight", "Pawn", "Invalid",
	}[MinInt(int(p), int(InvalidPiece))]
}

// Letter is the lowercase FEN letter of the piece type.
func (p PieceType) Letter() string {
	return [7]string{
		"k", "q", "r", "b", "n", "p", "?",
	}[MinInt(int(p), int(InvalidPiece))]
}

func PieceTypeFromLetter(s string) PieceType {
	switch s {
	case "k", "K":
		return King
	case "q", "Q":
		return Queen
	case "r", "R":
		return Rook
	case "b", "B":
		return Bishop
	case "n", "N":
		return Knight
	case "p", "P":
		return Pawn
	default:
		return InvalidPiece
	}
}

func (p PieceType) IsValid() bool {
	return p <= Pawn
}

func (p PieceType) Code() int32 {
	return int32(p) + 1
}

// PieceTypeFromCode decodes an external promotion code; 0 means "none".
func PieceTypeFromCode(code int32) (Optional[PieceType], Error) {
	if code == 0 {
		return Empty[PieceType](), NilError
	}
	if code < 1 || code > 6 {
		return Empty[PieceType](), Errorf("invalid piece type code %v", code)
	}
	return Some(PieceType(code - 1)), NilError
}

type BishopSquareColor uint8

const (
	Light BishopSquareColor = iota
	Dark
)

func (c BishopSquareColor) String() string {
	if c == Dark {
		return "Dark"
	}
	return "Light"
}

func (c BishopSquareColor) Code() int32 {
	return int32(c) + 1
}

func BishopSquareColorFromCode(code int32) (BishopSquareColor, Error) {
	switch code {
	case 1:
		return Light, NilError
	case 2:
		return Dark, NilError
	default:
		return Light, Errorf("invalid square color code %v", code)
	}
}

// SquareColorOf reports the shade of a square; a1 is dark.
func SquareColorOf(s Square) BishopSquareColor {
	if (int(s.File)+int(s.Rank))%2 == 0 {
		return Dark
	}
	return Light
}
