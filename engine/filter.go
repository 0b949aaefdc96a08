package engine

import (
	"github.com/samber/lo"

	"github.com/ManavGanesh/OOPS-Chess-Project-sub000/board"
)

// keepMove applies the three rejection rules. A move leaving a piece
// hanging survives only as a capture gaining at least the threshold; a moved
// piece losing its exchange survives only by capturing something at least
// as valuable; a pawn grab by a more valuable piece survives only when free.
func keepMove(f moveFacts) bool {
	if f.lost > 0 {
		if !f.move.IsCapture() || f.captured-f.lost < captureThreshold(f) {
			return false
		}
	}
	if !f.protected && f.captured < f.mover {
		return false
	}
	if f.move.IsCapture() && f.captured <= 1 && f.captured < f.mover && !f.free {
		return false
	}
	return true
}

func captureThreshold(f moveFacts) int {
	if f.move.Captured.Type == board.Queen {
		return Max(2, f.captured/2)
	}
	return Max(1, f.captured/3)
}

// filterMoves drops rejected moves. When nothing survives the input is
// returned unchanged.
func filterMoves(facts []moveFacts) []moveFacts {
	kept := lo.Filter(facts, func(f moveFacts, _ int) bool { return keepMove(f) })
	if len(kept) == 0 {
		return facts
	}
	return kept
}
