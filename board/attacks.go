package board

import "github.com/dylhunn/dragontoothmg"

var (
	knightMasks [64]uint64
	kingMasks   [64]uint64
	// pawnSources[team][sq] holds the squares from which a pawn of team
	// attacks sq.
	pawnSources [2][64]uint64
)

func init() {
	for sq := 0; sq < 64; sq++ {
		rank, file := sq/8, sq%8
		for _, d := range [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}} {
			if r, f := rank+d[0], file+d[1]; onBoard(r, f) {
				knightMasks[sq] |= 1 << (r*8 + f)
			}
		}
		for dr := -1; dr <= 1; dr++ {
			for df := -1; df <= 1; df++ {
				if r, f := rank+dr, file+df; (dr != 0 || df != 0) && onBoard(r, f) {
					kingMasks[sq] |= 1 << (r*8 + f)
				}
			}
		}
		for _, df := range [2]int{-1, 1} {
			if r, f := rank-1, file+df; onBoard(r, f) {
				pawnSources[White][sq] |= 1 << (r*8 + f)
			}
			if r, f := rank+1, file+df; onBoard(r, f) {
				pawnSources[Black][sq] |= 1 << (r*8 + f)
			}
		}
	}
}

func onBoard(rank, file int) bool { return rank >= 0 && rank < 8 && file >= 0 && file < 8 }

// attackersBB returns the pieces of team attacking sq given the occupancy occ.
// Pieces removed from occ are treated as gone, which lets exchange code
// uncover x-ray attackers.
func (p *Position) attackersBB(sq Square, team Team, occ uint64) uint64 {
	bb := p.bitboards(team)
	s := uint8(sq)
	diag := dragontoothmg.CalculateBishopMoveBitboard(s, occ) & (bb.Bishops | bb.Queens)
	line := dragontoothmg.CalculateRookMoveBitboard(s, occ) & (bb.Rooks | bb.Queens)
	jumps := knightMasks[sq]&bb.Knights | kingMasks[sq]&bb.Kings | pawnSources[team][sq]&bb.Pawns
	return (diag | line | jumps) & occ
}

// IsAttacked reports whether any piece of team attacks sq.
func (p *Position) IsAttacked(sq Square, team Team) bool {
	return p.attackersBB(sq, team, p.b.White.All|p.b.Black.All) != 0
}

// Exchange is the attacker and defender material bearing on one square.
type Exchange struct {
	Attackers []int // attacking piece values, cheapest first
	Defenders []int // defending piece values, cheapest first
}

// ExchangeOn collects the values of pieces of by that attack sq and of the
// other side that defend it, with x-ray attackers behind sliders included.
func (p *Position) ExchangeOn(sq Square, by Team) Exchange {
	occ := p.b.White.All | p.b.Black.All
	target := bit(sq)
	var ex Exchange
	ex.Attackers = p.collect(sq, by, occ&^target)
	ex.Defenders = p.collect(sq, by.Opponent(), occ&^target)
	return ex
}

// collect peels attackers off cheapest first, letting sliders behind them
// join in as the line opens.
func (p *Position) collect(sq Square, team Team, occ uint64) []int {
	var values []int
	for {
		att := p.attackersBB(sq, team, occ)
		if att == 0 {
			return values
		}
		bb := p.bitboards(team)
		for pt := Pawn; pt <= King; pt++ {
			if x := att & pieceBitboard(bb, pt); x != 0 {
				values = append(values, pt.Value())
				occ &^= x & -x
				break
			}
		}
	}
}

// InCheck reports whether team's king is attacked.
func (p *Position) InCheck(team Team) bool {
	k, ok := p.KingSquare(team)
	return ok && p.IsAttacked(k, team.Opponent())
}
