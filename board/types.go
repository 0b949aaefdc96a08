package board

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// Team is one of the two sides.
type Team uint8

const (
	White Team = iota
	Black
)

// Opponent returns the other side.
func (t Team) Opponent() Team { return t ^ 1 }

func (t Team) String() string {
	if t == White {
		return "white"
	}
	return "black"
}

// ParseTeam accepts "white"/"w" and "black"/"b" in any case.
func ParseTeam(s string) (Team, error) {
	switch strings.ToLower(s) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return White, fmt.Errorf("unknown team %q", s)
}

// PieceType is a colorless piece kind. Values line up with dragontoothmg's
// piece constants so they can be converted directly.
type PieceType uint8

const (
	NoPieceType PieceType = PieceType(dragontoothmg.Nothing)
	Pawn        PieceType = PieceType(dragontoothmg.Pawn)
	Knight      PieceType = PieceType(dragontoothmg.Knight)
	Bishop      PieceType = PieceType(dragontoothmg.Bishop)
	Rook        PieceType = PieceType(dragontoothmg.Rook)
	Queen       PieceType = PieceType(dragontoothmg.Queen)
	King        PieceType = PieceType(dragontoothmg.King)
)

// KingValue is the sentinel point value of a king. It only needs to outrank
// every other piece.
const KingValue = 100

var pointValues = [7]int{
	NoPieceType: 0,
	Pawn:        1,
	Knight:      3,
	Bishop:      3,
	Rook:        5,
	Queen:       9,
	King:        KingValue,
}

// Value returns the static point value of the piece type.
func (pt PieceType) Value() int { return pointValues[pt&7] }

var pieceLetters = [7]byte{'.', 'p', 'n', 'b', 'r', 'q', 'k'}

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

// Piece is a placed piece. ID is assigned when the position is built and
// follows the piece through every applied move, so the same piece can be
// found again in a simulated copy.
type Piece struct {
	Type PieceType
	Team Team
	ID   uint8
}

// Value returns the point value of the piece.
func (p Piece) Value() int { return p.Type.Value() }

// IsZero reports whether p is the empty piece.
func (p Piece) IsZero() bool { return p.Type == NoPieceType }

func (p Piece) String() string {
	if p.IsZero() {
		return "none"
	}
	return p.Team.String() + " " + p.Type.String()
}

// Square indexes the board the way dragontoothmg does: a1 = 0, h1 = 7, a8 = 56.
type Square uint8

const NoSquare Square = 64

// NewSquare converts grid coordinates to a square. Row 0 is rank 8 and
// column 0 is file a, matching a board drawn with Black on top.
func NewSquare(row, col int) Square { return Square((7-row)*8 + col) }

// Row returns the grid row (0 = rank 8).
func (s Square) Row() int { return 7 - int(s)/8 }

// Col returns the grid column (0 = file a).
func (s Square) Col() int { return int(s) % 8 }

// Rank returns 0..7 for ranks 1..8.
func (s Square) Rank() int { return int(s) / 8 }

func (s Square) String() string {
	if s >= NoSquare {
		return "-"
	}
	return string([]byte{byte('a' + s.Col()), byte('1' + s.Rank())})
}

// ParseSquare reads algebraic coordinates such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return Square(int(s[1]-'1')*8 + int(s[0]-'a')), nil
}

func bit(sq Square) uint64 { return uint64(1) << sq }
