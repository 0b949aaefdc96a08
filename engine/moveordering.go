package engine

import (
	"sort"

	"github.com/ManavGanesh/OOPS-Chess-Project-sub000/board"
)

// Most Valuable Victim - Least Valuable Aggressor; used to sort captures inside the tree
var mvvLva = [7][7]int{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 15, 14, 13, 12, 11, 10}, // victim Pawn
	{0, 25, 24, 23, 22, 21, 20}, // victim Knight
	{0, 35, 34, 33, 32, 31, 30}, // victim Bishop
	{0, 45, 44, 43, 42, 41, 40}, // victim Rook
	{0, 55, 54, 53, 52, 51, 50}, // victim Queen
	{0, 0, 0, 0, 0, 0, 0},       // victim King
}

/*
	Root ordering tiers, best first:
	- free captures, scaled by the victim
	- queen captures that keep the capturer safe
	- a doomed piece selling itself for what it can take
	- a hanging piece stepping out of danger
	- promotions
	- ordinary captures by net material
	- quiet moves; heavy pieces shuffling around get a small malus
	Anything that leaves a piece hanging sinks below all of them, unless it
	wins the queen by a wide margin.
*/
const (
	freeCaptureOffset  = 10000
	queenCaptureOffset = 8000
	doomedOffset       = 6000
	escapeOffset       = 4000
	promotionOffset    = 2000
	captureOffset      = 1000

	hangPenalty     = 1000
	queenTradeCarve = 4
)

type scoredMove struct {
	facts moveFacts
	score int
}

func rootScore(f moveFacts) int {
	m := f.move
	if f.lost > 0 && !(m.Captured.Type == board.Queen && f.captured-f.lost >= queenTradeCarve) {
		return -hangPenalty*f.lost + f.captured
	}
	switch {
	case f.free:
		return freeCaptureOffset + 100*f.captured
	case m.Captured.Type == board.Queen && !f.moverHangs:
		return queenCaptureOffset
	case f.doomed && m.IsCapture():
		return doomedOffset + 100*f.captured
	case f.escaped:
		return escapeOffset + 100*f.mover
	case m.IsPromotion():
		return promotionOffset + 100*m.Promotion.Value()
	case m.IsCapture():
		net := f.captured
		if f.moverHangs {
			net -= f.mover
		}
		return captureOffset + net
	case f.mover >= 5:
		return -f.mover
	}
	return 0
}

// orderFacts sorts moves by their root tier. Ties keep generation order.
func orderFacts(facts []moveFacts) []moveFacts {
	scored := make([]scoredMove, len(facts))
	for i, f := range facts {
		scored[i] = scoredMove{facts: f, score: rootScore(f)}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	out := make([]moveFacts, len(scored))
	for i, s := range scored {
		out[i] = s.facts
	}
	return out
}

// orderMvvLva puts captures first, best victim and cheapest attacker leading.
func orderMvvLva(moves []board.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return mvvLva[moves[i].Captured.Type][moves[i].Piece.Type] > mvvLva[moves[j].Captured.Type][moves[j].Piece.Type]
	})
}
