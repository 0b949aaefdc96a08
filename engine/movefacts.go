package engine

import (
	"github.com/samber/lo"

	"github.com/ManavGanesh/OOPS-Chess-Project-sub000/board"
)

// moveFacts is what the orderer and the filter need to know about one move,
// gathered by playing it once.
type moveFacts struct {
	move     board.Move
	captured int // value of the captured piece
	mover    int // value of the piece on the destination after the move

	free       bool // capture with no reply landing on the destination
	moverHangs bool
	protected  bool // the moved piece survives the exchange on its square
	escaped    bool // the mover was hanging and no longer is
	doomed     bool // the mover was a doomed piece before moving

	// lost is the value of the most valuable piece the move leaves newly
	// hanging, the mover included unless it captured something at least as
	// valuable.
	lost int
}

// analyzeMoves plays each of team's moves on pos and records its facts. The
// doom check is costly and only done when withDoom is set.
func analyzeMoves(pos *board.Position, team board.Team, moves []board.Move, withDoom bool) []moveFacts {
	wasHanging := make(map[uint8]bool)
	for _, h := range HangingPieces(pos, team) {
		wasHanging[h.Piece.ID] = true
	}
	doomed := make(map[board.Square]bool)
	enemy := team.Opponent()

	facts := make([]moveFacts, len(moves))
	for i, m := range moves {
		f := moveFacts{move: m, captured: m.CapturedValue(), mover: m.Piece.Value()}
		if m.IsPromotion() {
			f.mover = m.Promotion.Value()
		}
		if withDoom && m.IsCapture() && wasHanging[m.Piece.ID] {
			d, ok := doomed[m.From]
			if !ok {
				d = IsDoomed(pos, m.From)
				doomed[m.From] = d
			}
			f.doomed = d
		}

		undo := pos.Apply(m)
		for _, h := range HangingPieces(pos, team) {
			if h.Piece.ID == m.Piece.ID {
				f.moverHangs = true
			} else if !wasHanging[h.Piece.ID] {
				f.lost = Max(f.lost, h.Piece.Value())
			}
		}
		f.protected = m.Piece.Type == board.King || HasAdequateProtection(pos, m.To)
		f.free = m.IsCapture() && !replyLands(pos, enemy, m.To)
		undo()

		if f.moverHangs && f.captured < f.mover {
			f.lost = Max(f.lost, f.mover)
		}
		f.escaped = wasHanging[m.Piece.ID] && !f.moverHangs
		facts[i] = f
	}
	return facts
}

func factsMoves(facts []moveFacts) []board.Move {
	return lo.Map(facts, func(f moveFacts, _ int) board.Move { return f.move })
}
