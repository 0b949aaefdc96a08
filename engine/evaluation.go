package engine

import "github.com/ManavGanesh/OOPS-Chess-Project-sub000/board"

// Scores are relative to the team asked about, so the team is folded into
// the placement hash before it keys the cache.
var teamSalt = [2]uint64{board.White: 0, board.Black: 0x9e3779b97f4a7c15}

// d4, e4, d5, e5
var centerSquares = [4]board.Square{27, 28, 35, 36}

// Evaluate scores pos for team in pawn units, memoized by placement.
func (e *Engine) Evaluate(pos *board.Position, team board.Team) float64 {
	key := pos.PlacementHash() ^ teamSalt[team]
	if score, ok := e.cache.Evaluation(key); ok {
		return score
	}
	score := e.evaluate(pos, team)
	e.cache.StoreEvaluation(key, score)
	return score
}

func (e *Engine) evaluate(pos *board.Position, team board.Team) float64 {
	e.stats.evaluations.Add(1)
	w := e.cfg.Weights
	material := float64(pos.Material(team) - pos.Material(team.Opponent()))
	return w.Material*material + w.Tactical*e.tactical(pos, team) + w.Positional*e.positional(pos, team)
}

func (e *Engine) tactical(pos *board.Position, team board.Team) float64 {
	w := e.cfg.Weights
	var score float64
	for _, h := range HangingPieces(pos, team) {
		v := float64(h.Piece.Value())
		score -= w.HangingOwn * v
		if v >= 5 {
			score -= w.HangingMajor
		}
	}
	if IsQueenReallyHanging(pos, team) {
		score -= w.QueenHanging
	}
	for _, h := range HangingPieces(pos, team.Opponent()) {
		score += w.HangingEnemy * float64(h.Piece.Value())
	}
	return score
}

func (e *Engine) positional(pos *board.Position, team board.Team) float64 {
	w := e.cfg.Weights
	var score float64
	for _, sq := range centerSquares {
		if p, ok := pos.PieceAt(sq); ok {
			if p.Team == team {
				score += w.Center
			} else {
				score -= w.Center
			}
		}
	}
	mobility := len(pos.LegalMoves(team)) - len(pos.LegalMoves(team.Opponent()))
	return score + w.Mobility*float64(mobility)
}
