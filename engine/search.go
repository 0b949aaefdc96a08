package engine

import (
	"math"

	"github.com/ManavGanesh/OOPS-Chess-Project-sub000/board"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MateScore = 1e6
	DrawScore = 0.0
)

var infinity = math.Inf(1)

// searchMoves is the move list an inner node explores: filtered, then
// captures first by MVV-LVA.
func (e *Engine) searchMoves(pos *board.Position, side board.Team, moves []board.Move) []board.Move {
	moves = factsMoves(filterMoves(analyzeMoves(pos, side, moves, false)))
	orderMvvLva(moves)
	return moves
}

// alphaBeta searches pos to a fixed depth from ai's point of view. The side
// to move is ai when maximizing. Mates are scored so that nearer ones count
// more.
func (e *Engine) alphaBeta(pos *board.Position, depth, ply int, alpha, beta float64, maximizing bool, ai board.Team) float64 {
	e.stats.nodes.Add(1)
	side := ai
	if !maximizing {
		side = ai.Opponent()
	}

	moves := pos.LegalMoves(side)
	if len(moves) == 0 {
		if !pos.InCheck(side) {
			return DrawScore
		}
		if maximizing {
			return -(MateScore - float64(ply))
		}
		return MateScore - float64(ply)
	}
	if depth <= 0 {
		return e.Evaluate(pos, ai)
	}

	moves = e.searchMoves(pos, side, moves)
	if maximizing {
		best := -infinity
		for _, m := range moves {
			undo := pos.Apply(m)
			score := e.alphaBeta(pos, depth-1, ply+1, alpha, beta, false, ai)
			undo()
			best = Max(best, score)
			alpha = Max(alpha, score)
			if beta <= alpha {
				e.stats.betaCutoffs.Add(1)
				break
			}
		}
		return best
	}

	best := infinity
	for _, m := range moves {
		undo := pos.Apply(m)
		score := e.alphaBeta(pos, depth-1, ply+1, alpha, beta, true, ai)
		undo()
		best = Min(best, score)
		beta = Min(beta, score)
		if beta <= alpha {
			e.stats.betaCutoffs.Add(1)
			break
		}
	}
	return best
}

// searchRoot scores each candidate with the opponent to reply and keeps the
// first one reaching the best score.
func (e *Engine) searchRoot(pos *board.Position, team board.Team, candidates []board.Move) (board.Move, float64) {
	best, bestScore := candidates[0], -infinity
	alpha := -infinity
	for _, m := range candidates {
		undo := pos.Apply(m)
		score := e.alphaBeta(pos, e.cfg.Depth-1, 1, alpha, infinity, false, team)
		undo()
		if score > bestScore {
			best, bestScore = m, score
		}
		alpha = Max(alpha, score)
	}
	return best, bestScore
}
