package board

import "github.com/dylhunn/dragontoothmg"

// MoveFlag marks the special properties of a move.
type MoveFlag uint8

const (
	FlagCapture MoveFlag = 1 << iota
	FlagPromotion
	FlagCastling
	FlagEnPassant
)

// Move is a legal move as produced by Position.LegalMoves. It carries the
// moving piece and the captured piece as they stood before the move.
type Move struct {
	From      Square
	To        Square
	Piece     Piece
	Captured  Piece
	Flags     MoveFlag
	Promotion PieceType

	raw dragontoothmg.Move
}

// NoMove is the empty result.
var NoMove Move

// IsNull reports whether m is the empty move.
func (m Move) IsNull() bool { return m.raw == 0 && m.From == m.To }

func (m Move) IsCapture() bool   { return m.Flags&FlagCapture != 0 }
func (m Move) IsPromotion() bool { return m.Flags&FlagPromotion != 0 }
func (m Move) IsCastling() bool  { return m.Flags&FlagCastling != 0 }
func (m Move) IsEnPassant() bool { return m.Flags&FlagEnPassant != 0 }

// CaptureSquare is where the captured piece stood. It differs from To only
// for en passant.
func (m Move) CaptureSquare() Square {
	if !m.IsEnPassant() {
		return m.To
	}
	if m.Piece.Team == White {
		return m.To - 8
	}
	return m.To + 8
}

// CapturedValue is the point value of the captured piece, 0 for quiet moves.
func (m Move) CapturedValue() int { return m.Captured.Value() }

// Equal compares the origin, destination and promotion of two moves.
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// String renders the move in coordinate notation, e.g. "e7e8q".
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPieceType {
		s += string(pieceLetters[m.Promotion])
	}
	return s
}

// Find returns the move of moves matching the coordinate notation text.
func Find(moves []Move, text string) (Move, bool) {
	for _, m := range moves {
		if m.String() == text {
			return m, true
		}
	}
	return NoMove, false
}
