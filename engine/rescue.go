package engine

import (
	"github.com/samber/lo"

	"github.com/ManavGanesh/OOPS-Chess-Project-sub000/board"
)

type DefenseKind uint8

const (
	Retreat DefenseKind = iota
	EfficientDefense
	InefficientDefense
)

func (k DefenseKind) String() string {
	switch k {
	case Retreat:
		return "retreat"
	case EfficientDefense:
		return "efficient-defense"
	}
	return "inefficient-defense"
}

// DefensiveOption is one way of saving a hanging piece. Cost is the value of
// the piece committed to the defense, zero for a retreat.
type DefensiveOption struct {
	Kind DefenseKind
	Move board.Move
	Cost int
}

// rescueQueen tries, in order, a safe queen move, taking the attacker with
// something no more valuable, blocking a slider, and finally cashing in a
// doomed queen for the best piece it can take.
func (e *Engine) rescueQueen(pos *board.Position, team board.Team, qsq board.Square, facts []moveFacts) (board.Move, bool) {
	queen, _ := pos.PieceAt(qsq)

	safe := lo.Filter(facts, func(f moveFacts, _ int) bool {
		return f.move.From == qsq && !f.moverHangs && f.lost == 0
	})
	if m, ok := e.bestByEvaluation(pos, team, safe); ok {
		return m, true
	}

	threats := lo.Filter(pos.LegalMoves(team.Opponent()), func(m board.Move, _ int) bool {
		return m.IsCapture() && m.CaptureSquare() == qsq
	})
	threatSquares := lo.Uniq(lo.Map(threats, func(m board.Move, _ int) board.Square { return m.From }))

	takers := lo.Filter(facts, func(f moveFacts, _ int) bool {
		return f.move.IsCapture() && lo.Contains(threatSquares, f.move.CaptureSquare()) &&
			f.mover <= f.captured && queenSafeAfter(pos, f.move, queen.ID)
	})
	if len(takers) > 0 {
		return lo.MaxBy(takers, func(a, b moveFacts) bool { return a.captured-a.mover > b.captured-b.mover }).move, true
	}

	var line []board.Square
	for _, from := range threatSquares {
		if p, _ := pos.PieceAt(from); p.Type == board.Bishop || p.Type == board.Rook || p.Type == board.Queen {
			line = append(line, between(from, qsq)...)
		}
	}
	blockers := lo.Filter(facts, func(f moveFacts, _ int) bool {
		return f.move.Piece.ID != queen.ID && lo.Contains(line, f.move.To) && queenSafeAfter(pos, f.move, queen.ID)
	})
	if len(blockers) > 0 {
		return lo.MinBy(blockers, func(a, b moveFacts) bool {
			if a.lost != b.lost {
				return a.lost < b.lost
			}
			return a.mover < b.mover
		}).move, true
	}

	if IsDoomed(pos, qsq) {
		trades := lo.Filter(facts, func(f moveFacts, _ int) bool { return f.move.From == qsq && f.move.IsCapture() })
		if len(trades) > 0 {
			return lo.MaxBy(trades, func(a, b moveFacts) bool { return a.captured > b.captured }).move, true
		}
	}
	return board.NoMove, false
}

func queenSafeAfter(pos *board.Position, m board.Move, id uint8) bool {
	undo := pos.Apply(m)
	defer undo()
	sq, ok := pos.Locate(id)
	return ok && !IsHanging(pos, sq)
}

// between lists the squares strictly between two squares on a shared rank,
// file or diagonal.
func between(a, b board.Square) []board.Square {
	dr, dc := b.Row()-a.Row(), b.Col()-a.Col()
	if dr != 0 && dc != 0 && dr != dc && dr != -dc {
		return nil
	}
	stepR, stepC := sign(dr), sign(dc)
	var out []board.Square
	for r, c := a.Row()+stepR, a.Col()+stepC; r != b.Row() || c != b.Col(); r, c = r+stepR, c+stepC {
		out = append(out, board.NewSquare(r, c))
	}
	return out
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// defensiveOptions lists the ways team can save the hanging piece on sq with
// one move.
func defensiveOptions(pos *board.Position, sq board.Square, facts []moveFacts) []DefensiveOption {
	target, ok := pos.PieceAt(sq)
	if !ok {
		return nil
	}
	var out []DefensiveOption
	for _, f := range facts {
		if f.move.From == sq {
			if !f.moverHangs && f.lost == 0 {
				out = append(out, DefensiveOption{Kind: Retreat, Move: f.move})
			}
			continue
		}
		if f.moverHangs || f.lost > 0 {
			continue
		}
		undo := pos.Apply(f.move)
		saved := !IsHanging(pos, sq)
		undo()
		if !saved {
			continue
		}
		kind := InefficientDefense
		if f.mover < target.Value() {
			kind = EfficientDefense
		}
		out = append(out, DefensiveOption{Kind: kind, Move: f.move, Cost: f.mover})
	}
	return out
}

// rescue saves the most valuable hanging piece it can: by retreating it to
// the best-evaluated safe square, else by defending it with something
// strictly cheaper.
func (e *Engine) rescue(pos *board.Position, team board.Team, facts []moveFacts) (board.Move, bool) {
	for _, h := range HangingPieces(pos, team) {
		options := defensiveOptions(pos, h.Square, facts)

		retreats := lo.FilterMap(options, func(o DefensiveOption, _ int) (moveFacts, bool) {
			return moveFacts{move: o.Move}, o.Kind == Retreat
		})
		if m, ok := e.bestByEvaluation(pos, team, retreats); ok {
			return m, true
		}

		defenses := lo.Filter(options, func(o DefensiveOption, _ int) bool { return o.Kind == EfficientDefense })
		if len(defenses) > 0 {
			return lo.MinBy(defenses, func(a, b DefensiveOption) bool { return a.Cost < b.Cost }).Move, true
		}
	}
	return board.NoMove, false
}

// bestByEvaluation plays each move and keeps the first with the highest
// evaluation for team.
func (e *Engine) bestByEvaluation(pos *board.Position, team board.Team, facts []moveFacts) (board.Move, bool) {
	if len(facts) == 0 {
		return board.NoMove, false
	}
	best, bestScore := board.NoMove, -infinity
	for _, f := range facts {
		undo := pos.Apply(f.move)
		score := e.Evaluate(pos, team)
		undo()
		if score > bestScore {
			best, bestScore = f.move, score
		}
	}
	return best, true
}
