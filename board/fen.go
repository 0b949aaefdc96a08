package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

var ErrInvalidFEN = errors.New("invalid FEN")

const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// StartPosition returns the standard initial position.
func StartPosition() *Position {
	return newPosition(dragontoothmg.ParseFen(StartFEN))
}

// ParseFEN builds a position from Forsyth-Edwards notation. The move
// counters may be omitted.
func ParseFEN(fen string) (pos *Position, err error) {
	fields := strings.Fields(fen)
	if len(fields) != 4 && len(fields) != 6 {
		return nil, fmt.Errorf("%w: want 4 or 6 fields, got %d", ErrInvalidFEN, len(fields))
	}
	if err := checkPlacement(fields[0]); err != nil {
		return nil, err
	}
	if fields[1] != "w" && fields[1] != "b" {
		return nil, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
	}
	if fields[2] != "-" && strings.Trim(fields[2], "KQkq") != "" {
		return nil, fmt.Errorf("%w: castling rights %q", ErrInvalidFEN, fields[2])
	}
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil || (sq.Rank() != 2 && sq.Rank() != 5) {
			return nil, fmt.Errorf("%w: en passant square %q", ErrInvalidFEN, fields[3])
		}
	}
	if len(fields) == 4 {
		fields = append(fields, "0", "1")
	}

	defer func() {
		if r := recover(); r != nil {
			pos, err = nil, fmt.Errorf("%w: %v", ErrInvalidFEN, r)
		}
	}()
	pos = newPosition(dragontoothmg.ParseFen(strings.Join(fields, " ")))

	waiting := pos.CurrentTeam().Opponent()
	if pos.InCheck(waiting) {
		return nil, fmt.Errorf("%w: %s king is in check with %s to move", ErrInvalidFEN, waiting, pos.CurrentTeam())
	}
	if err := pos.checkCastling(fields[2]); err != nil {
		return nil, err
	}
	if err := pos.checkEnPassant(fields[3]); err != nil {
		return nil, err
	}
	return pos, nil
}

// Home squares for each castling letter: king, then rook.
var castlingHomes = map[rune][2]Square{
	'K': {4, 7},
	'Q': {4, 0},
	'k': {60, 63},
	'q': {60, 56},
}

func (p *Position) checkCastling(rights string) error {
	if rights == "-" {
		return nil
	}
	for _, c := range rights {
		team := White
		if c == 'k' || c == 'q' {
			team = Black
		}
		homes := castlingHomes[c]
		king, _ := p.PieceAt(homes[0])
		rook, _ := p.PieceAt(homes[1])
		if king.Type != King || king.Team != team || rook.Type != Rook || rook.Team != team {
			return fmt.Errorf("%w: castling right %q without king and rook at home", ErrInvalidFEN, c)
		}
	}
	return nil
}

// checkEnPassant accepts a target only behind a pawn of the side not to move
// that can have just advanced two squares.
func (p *Position) checkEnPassant(field string) error {
	if field == "-" {
		return nil
	}
	target, _ := ParseSquare(field)
	mover := p.CurrentTeam()
	rank, pawnAt, from := 5, target-8, target+8
	if mover == Black {
		rank, pawnAt, from = 2, target+8, target-8
	}
	pawn, _ := p.PieceAt(pawnAt)
	_, targetTaken := p.PieceAt(target)
	_, fromTaken := p.PieceAt(from)
	if target.Rank() != rank || pawn.Type != Pawn || pawn.Team != mover.Opponent() || targetTaken || fromTaken {
		return fmt.Errorf("%w: en passant square %s has no pawn that just advanced two squares", ErrInvalidFEN, field)
	}
	return nil
}

// MustParseFEN is ParseFEN for fixtures known to be valid.
func MustParseFEN(fen string) *Position {
	pos, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

func checkPlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: want 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	kings := map[rune]int{}
	for i, rank := range ranks {
		files := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				files += int(c - '0')
			case strings.ContainsRune("pnbrqkPNBRQK", c):
				if (c == 'p' || c == 'P') && (i == 0 || i == 7) {
					return fmt.Errorf("%w: pawn on back rank", ErrInvalidFEN)
				}
				if c == 'k' || c == 'K' {
					kings[c]++
				}
				files++
			default:
				return fmt.Errorf("%w: unexpected %q in placement", ErrInvalidFEN, c)
			}
		}
		if files != 8 {
			return fmt.Errorf("%w: rank %d spans %d files", ErrInvalidFEN, 8-i, files)
		}
	}
	if kings['K'] != 1 || kings['k'] != 1 {
		return fmt.Errorf("%w: each side needs exactly one king", ErrInvalidFEN)
	}
	return nil
}

// FEN renders the position.
func (p *Position) FEN() string {
	return p.b.ToFen()
}
