package board

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(pos *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := pos.LegalMoves(pos.CurrentTeam())
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := pos.Apply(m)
		nodes += Perft(pos, depth-1)
		undo()
	}
	return nodes
}

// PerftDivide reports the perft count below each root move, keyed by the
// move in coordinate notation.
func PerftDivide(pos *Position, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	for _, m := range pos.LegalMoves(pos.CurrentTeam()) {
		undo := pos.Apply(m)
		out[m.String()] = Perft(pos, depth-1)
		undo()
	}
	return out
}
