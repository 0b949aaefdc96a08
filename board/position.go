package board

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
	"sync/atomic"

	"github.com/dylhunn/dragontoothmg"
)

var ErrIllegalMove = errors.New("illegal move")

// generations hands out a fresh stamp for every position state so cached
// derived data can be checked against the state it was computed from.
var generations atomic.Uint64

// Position wraps a dragontoothmg board with stable piece IDs.
//
// A Position is not safe for concurrent use. Callers that want to explore
// from the same position on several goroutines give each its own DeepCopy.
type Position struct {
	b   dragontoothmg.Board
	ids [64]uint8
	gen uint64

	// b with the other side to move, valid while altGen == gen
	alt    dragontoothmg.Board
	altGen uint64
}

func newPosition(b dragontoothmg.Board) *Position {
	p := &Position{b: b}
	var next uint8 = 1
	for occ := b.White.All | b.Black.All; occ != 0; occ &= occ - 1 {
		p.ids[bits.TrailingZeros64(occ)] = next
		next++
	}
	p.touch()
	return p
}

func (p *Position) touch() { p.gen = generations.Add(1) }

// DeepCopy returns a fully independent clone.
func (p *Position) DeepCopy() *Position {
	cp := *p
	return &cp
}

// CurrentTeam returns the side to move.
func (p *Position) CurrentTeam() Team {
	if p.b.Wtomove {
		return White
	}
	return Black
}

// ChangeCurrentPlayer hands the move to the other side. The en passant
// target does not survive the flip.
func (p *Position) ChangeCurrentPlayer() {
	p.b = p.turned()
	p.touch()
}

// Turned returns a copy of p with team to move.
func (p *Position) Turned(team Team) *Position {
	cp := p.DeepCopy()
	if cp.CurrentTeam() != team {
		cp.ChangeCurrentPlayer()
	}
	return cp
}

func (p *Position) turned() dragontoothmg.Board {
	if p.altGen != p.gen || p.gen == 0 {
		p.alt = flipSide(p.b)
		p.altGen = p.gen
	}
	return p.alt
}

// flipSide round-trips through FEN because dragontoothmg keeps the en
// passant and hash fields private.
func flipSide(b dragontoothmg.Board) dragontoothmg.Board {
	fields := strings.Fields(b.ToFen())
	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}
	fields[3] = "-"
	return dragontoothmg.ParseFen(strings.Join(fields, " "))
}

func (p *Position) bitboards(team Team) *dragontoothmg.Bitboards {
	if team == White {
		return &p.b.White
	}
	return &p.b.Black
}

func typeAt(bb *dragontoothmg.Bitboards, sq Square) PieceType {
	m := bit(sq)
	switch {
	case bb.Pawns&m != 0:
		return Pawn
	case bb.Knights&m != 0:
		return Knight
	case bb.Bishops&m != 0:
		return Bishop
	case bb.Rooks&m != 0:
		return Rook
	case bb.Queens&m != 0:
		return Queen
	case bb.Kings&m != 0:
		return King
	}
	return NoPieceType
}

func pieceBitboard(bb *dragontoothmg.Bitboards, pt PieceType) uint64 {
	switch pt {
	case Pawn:
		return bb.Pawns
	case Knight:
		return bb.Knights
	case Bishop:
		return bb.Bishops
	case Rook:
		return bb.Rooks
	case Queen:
		return bb.Queens
	case King:
		return bb.Kings
	}
	return 0
}

// PieceAt returns the piece on sq.
func (p *Position) PieceAt(sq Square) (Piece, bool) {
	if sq >= NoSquare {
		return Piece{}, false
	}
	m := bit(sq)
	team := White
	switch {
	case p.b.White.All&m != 0:
	case p.b.Black.All&m != 0:
		team = Black
	default:
		return Piece{}, false
	}
	return Piece{Type: typeAt(p.bitboards(team), sq), Team: team, ID: p.ids[sq]}, true
}

// TileAt returns the piece at grid coordinates (row 0 = rank 8, col 0 = file a).
func (p *Position) TileAt(row, col int) (Piece, bool) {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return Piece{}, false
	}
	return p.PieceAt(NewSquare(row, col))
}

// Squares lists the squares occupied by team in ascending order.
func (p *Position) Squares(team Team) []Square {
	all := p.bitboards(team).All
	out := make([]Square, 0, bits.OnesCount64(all))
	for ; all != 0; all &= all - 1 {
		out = append(out, Square(bits.TrailingZeros64(all)))
	}
	return out
}

// SquaresOf lists the squares holding team's pieces of type pt.
func (p *Position) SquaresOf(team Team, pt PieceType) []Square {
	var out []Square
	for x := pieceBitboard(p.bitboards(team), pt); x != 0; x &= x - 1 {
		out = append(out, Square(bits.TrailingZeros64(x)))
	}
	return out
}

// Locate finds the square of the piece with the given ID.
func (p *Position) Locate(id uint8) (Square, bool) {
	if id == 0 {
		return NoSquare, false
	}
	occ := p.b.White.All | p.b.Black.All
	for sq := Square(0); sq < NoSquare; sq++ {
		if p.ids[sq] == id && occ&bit(sq) != 0 {
			return sq, true
		}
	}
	return NoSquare, false
}

// KingSquare returns the square of team's king.
func (p *Position) KingSquare(team Team) (Square, bool) {
	k := p.bitboards(team).Kings
	if k == 0 {
		return NoSquare, false
	}
	return Square(bits.TrailingZeros64(k)), true
}

// Material sums the point values of team's pieces, king included.
func (p *Position) Material(team Team) int {
	bb := p.bitboards(team)
	total := 0
	for pt := Pawn; pt <= King; pt++ {
		total += bits.OnesCount64(pieceBitboard(bb, pt)) * pt.Value()
	}
	return total
}

// Apply plays a move produced by LegalMoves on this position and returns a
// function restoring the previous state. A move of the side not to move is
// played after handing it the turn.
func (p *Position) Apply(m Move) (undo func()) {
	offTurn := m.Piece.Team != p.CurrentTeam()
	if offTurn {
		p.turned()
	}
	prev := *p
	if offTurn {
		p.b = p.alt
	}
	p.b.Apply(m.raw)

	id := p.ids[m.From]
	if m.IsCapture() {
		p.ids[m.CaptureSquare()] = 0
	}
	p.ids[m.From] = 0
	p.ids[m.To] = id
	if m.IsCastling() {
		rookFrom, rookTo := m.From+3, m.From+1
		if m.To < m.From {
			rookFrom, rookTo = m.From-4, m.From-1
		}
		p.ids[rookTo] = p.ids[rookFrom]
		p.ids[rookFrom] = 0
	}
	p.touch()
	return func() { *p = prev }
}

// Play validates m against the side to move and applies it.
func (p *Position) Play(m Move) error {
	for _, legal := range p.LegalMoves(p.CurrentTeam()) {
		if legal.Equal(m) {
			p.Apply(legal)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrIllegalMove, m)
}

// PlayText applies a move given in coordinate notation ("e2e4", "e7e8q").
func (p *Position) PlayText(text string) (Move, error) {
	m, ok := Find(p.LegalMoves(p.CurrentTeam()), text)
	if !ok {
		return NoMove, fmt.Errorf("%w: %s", ErrIllegalMove, text)
	}
	p.Apply(m)
	return m, nil
}

func (p *Position) String() string { return p.FEN() }
