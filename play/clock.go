package play

import (
	"time"

	"github.com/ManavGanesh/OOPS-Chess-Project-sub000/board"
)

// Game phase weights; 24 with every minor and major piece on the board
const (
	KnightPhase = 1
	BishopPhase = 1
	RookPhase   = 2
	QueenPhase  = 4
	TotalPhase  = KnightPhase*4 + BishopPhase*4 + RookPhase*4 + QueenPhase*2
)

// Phase returns 24 in the opening down to 0 with only pawns and kings left.
func Phase(pos *board.Position) int {
	phase := 0
	for _, team := range []board.Team{board.White, board.Black} {
		phase += len(pos.SquaresOf(team, board.Knight)) * KnightPhase
		phase += len(pos.SquaresOf(team, board.Bishop)) * BishopPhase
		phase += len(pos.SquaresOf(team, board.Rook)) * RookPhase
		phase += len(pos.SquaresOf(team, board.Queen)) * QueenPhase
	}
	if phase > TotalPhase {
		phase = TotalPhase
	}
	return phase
}

func estimateMovesRemaining(phase int) int {
	// Linearly interpolate between 20 (endgame) and 45 (opening/midgame)
	return (phase*25)/TotalPhase + 20
}

// Allot splits a game clock into a budget for the next move.
func Allot(remaining, increment time.Duration, pos *board.Position) time.Duration {
	const (
		overhead   = 30 * time.Millisecond // reserve for scheduling jitter
		minMove    = 5 * time.Millisecond
		maxFrac    = 0.7 // never spend more than 70% of what is left
		panicLimit = time.Second
		panicFrac  = 0.9 // share of the increment used in panic
	)
	if remaining <= 0 {
		return minMove
	}

	var moveTime time.Duration
	switch {
	case increment > 0 && remaining < panicLimit:
		moveTime = time.Duration(float64(increment) * panicFrac)
	case increment > 0:
		moveTime = remaining/time.Duration(estimateMovesRemaining(Phase(pos))) + increment
	default:
		moveTime = remaining / 40
	}

	if ceiling := time.Duration(float64(remaining) * maxFrac); moveTime > ceiling {
		moveTime = ceiling
	}
	if moveTime > remaining-overhead {
		moveTime = remaining - overhead
	}
	if moveTime < minMove {
		moveTime = minMove
	}
	return moveTime
}
