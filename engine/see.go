package engine

import "github.com/ManavGanesh/OOPS-Chess-Project-sub000/board"

// HasAdequateProtection runs a swap-list exchange on the piece at sq, with the
// opponent capturing first and both sides using their cheapest piece each
// time. The piece is adequately protected when the defending side ends no
// worse than -1 (pieces worth 3 or more) or 0 (pawns).
func HasAdequateProtection(pos *board.Position, sq board.Square) bool {
	piece, ok := pos.PieceAt(sq)
	if !ok {
		return true
	}
	ex := pos.ExchangeOn(sq, piece.Team.Opponent())
	if len(ex.Attackers) == 0 {
		return true
	}
	threshold := 0
	if piece.Value() >= 3 {
		threshold = -1
	}
	return -see(piece.Value(), ex.Attackers, ex.Defenders) >= threshold
}

// see returns the attacking side's net material from an exchange on one
// square where target stands. Either side may stop capturing when continuing
// would lose more.
func see(target int, attackers, defenders []int) int {
	if len(attackers) == 0 {
		return 0
	}
	var gain [34]int
	depth := 0
	gain[0] = target
	onSquare := attackers[0]
	sides := [2][]int{defenders, attackers[1:]}
	next := [2]int{}

	for side := 0; next[side] < len(sides[side]) && depth+1 < len(gain); side ^= 1 {
		depth++
		gain[depth] = onSquare - gain[depth-1]

		// Neither side gains by going on
		if Max(-gain[depth-1], gain[depth]) < 0 {
			break
		}
		onSquare = sides[side][next[side]]
		next[side]++
	}

	for x := depth; x > 0; x-- {
		gain[x-1] = -Max(-gain[x-1], gain[x])
	}
	return gain[0]
}
