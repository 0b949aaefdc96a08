package engine

import (
	"sort"

	"github.com/samber/lo"

	"github.com/ManavGanesh/OOPS-Chess-Project-sub000/board"
)

// The detectors below simulate on the position they are given through
// Apply/undo and leave it as they found it.

// HangingPiece is an own piece found hanging and the square it stands on.
type HangingPiece struct {
	Square board.Square
	Piece  board.Piece
}

func captureMoves(moves []board.Move) []board.Move {
	return lo.Filter(moves, func(m board.Move, _ int) bool { return m.IsCapture() })
}

// IsHanging reports whether the piece on sq can be taken at a profit: either
// by something cheaper, or by any capture that cannot be answered with a
// recapture on the same square. Kings never hang.
func IsHanging(pos *board.Position, sq board.Square) bool {
	piece, ok := pos.PieceAt(sq)
	if !ok || piece.Type == board.King {
		return false
	}
	enemy := piece.Team.Opponent()
	if !pos.IsAttacked(sq, enemy) {
		return false
	}
	return hangsTo(pos, sq, piece, captureMoves(pos.LegalMoves(enemy)))
}

// HangingPieces lists team's hanging pieces, most valuable first.
func HangingPieces(pos *board.Position, team board.Team) []HangingPiece {
	enemy := team.Opponent()
	var targets []HangingPiece
	for _, sq := range pos.Squares(team) {
		p, _ := pos.PieceAt(sq)
		if p.Type != board.King && pos.IsAttacked(sq, enemy) {
			targets = append(targets, HangingPiece{Square: sq, Piece: p})
		}
	}
	if len(targets) == 0 {
		return nil
	}

	captures := captureMoves(pos.LegalMoves(enemy))
	out := targets[:0]
	for _, t := range targets {
		if hangsTo(pos, t.Square, t.Piece, captures) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Piece.Value() > out[j].Piece.Value() })
	return out
}

func hangsTo(pos *board.Position, sq board.Square, victim board.Piece, captures []board.Move) bool {
	for _, c := range captures {
		if c.CaptureSquare() != sq {
			continue
		}
		if c.Piece.Value() < victim.Value() || !canRecapture(pos, c) {
			return true
		}
	}
	return false
}

// canRecapture plays the capture c and looks for a legal reply landing on
// the same square.
func canRecapture(pos *board.Position, c board.Move) bool {
	undo := pos.Apply(c)
	defer undo()
	defender := c.Piece.Team.Opponent()
	if !pos.IsAttacked(c.To, defender) {
		return false
	}
	return landsOn(pos.LegalMoves(defender), c.To)
}

func landsOn(moves []board.Move, sq board.Square) bool {
	return lo.ContainsBy(moves, func(m board.Move) bool { return m.To == sq })
}

// IsQueenReallyHanging reports whether one of team's queens can be taken by
// a cheaper piece with no recapture available.
func IsQueenReallyHanging(pos *board.Position, team board.Team) bool {
	enemy := team.Opponent()
	var captures []board.Move
	for _, sq := range pos.SquaresOf(team, board.Queen) {
		if !pos.IsAttacked(sq, enemy) {
			continue
		}
		if captures == nil {
			captures = captureMoves(pos.LegalMoves(enemy))
		}
		for _, c := range captures {
			if c.CaptureSquare() == sq && c.Piece.Value() < board.Queen.Value() && !canRecapture(pos, c) {
				return true
			}
		}
	}
	return false
}

// IsFreeCapture reports whether, once m is played, the opponent has no move
// landing on its destination.
func IsFreeCapture(pos *board.Position, m board.Move) bool {
	if !m.IsCapture() {
		return false
	}
	undo := pos.Apply(m)
	defer undo()
	return !replyLands(pos, m.Piece.Team.Opponent(), m.To)
}

func replyLands(pos *board.Position, team board.Team, sq board.Square) bool {
	return pos.IsAttacked(sq, team) && landsOn(pos.LegalMoves(team), sq)
}

// IsDoomed reports whether a hanging piece worth 3 or more has almost no way
// out: fewer than a fifth of its legal moves leave it safe.
func IsDoomed(pos *board.Position, sq board.Square) bool {
	piece, ok := pos.PieceAt(sq)
	if !ok || piece.Type == board.King || piece.Value() < 3 || !IsHanging(pos, sq) {
		return false
	}
	moves := lo.Filter(pos.LegalMoves(piece.Team), func(m board.Move, _ int) bool { return m.From == sq })
	if len(moves) == 0 {
		return true
	}
	safe := 0
	for _, m := range moves {
		undo := pos.Apply(m)
		if !IsHanging(pos, m.To) {
			safe++
		}
		undo()
	}
	return safe*5 < len(moves)
}
