package engine

import (
	"testing"

	"github.com/ManavGanesh/OOPS-Chess-Project-sub000/board"
)

func TestRootTiers(t *testing.T) {
	capture := func(victim board.PieceType) board.Move {
		return board.Move{Captured: board.Piece{Type: victim}, Flags: board.FlagCapture}
	}
	tiers := []struct {
		name  string
		facts moveFacts
	}{
		{"free", moveFacts{move: capture(board.Pawn), captured: 1, mover: 3, free: true}},
		{"queen", moveFacts{move: capture(board.Queen), captured: 9, mover: 9}},
		{"doomed", moveFacts{move: capture(board.Rook), captured: 5, mover: 9, doomed: true, moverHangs: true}},
		{"escape", moveFacts{move: board.Move{}, mover: 5, escaped: true}},
		{"promotion", moveFacts{move: board.Move{Flags: board.FlagPromotion, Promotion: board.Queen}, mover: 9, protected: true}},
		{"capture", moveFacts{move: capture(board.Knight), captured: 3, mover: 3}},
		{"quiet", moveFacts{move: board.Move{}, mover: 1}},
		{"heavy-quiet", moveFacts{move: board.Move{}, mover: 5}},
		{"hangs", moveFacts{move: board.Move{}, mover: 3, lost: 3}},
	}

	// Feed them worst first.
	facts := make([]moveFacts, 0, len(tiers))
	for i := len(tiers) - 1; i >= 0; i-- {
		f := tiers[i].facts
		f.move.From = board.Square(i)
		facts = append(facts, f)
	}
	for i, f := range orderFacts(facts) {
		if int(f.move.From) != i {
			t.Fatalf("position %d holds %s, want %s", i, tiers[f.move.From].name, tiers[i].name)
		}
	}
}

func TestQueenTradeSurvivesHangPenalty(t *testing.T) {
	q := moveFacts{move: board.Move{Captured: board.Piece{Type: board.Queen}, Flags: board.FlagCapture}, captured: 9, mover: 5, lost: 5}
	if rootScore(q) < captureOffset {
		t.Fatalf("queen for rook scored %d", rootScore(q))
	}
	q.lost, q.mover = 7, 7
	if rootScore(q) >= 0 {
		t.Fatalf("queen for seven points scored %d", rootScore(q))
	}
}

func TestMvvLvaPutsKingCapturesBeforeQuietMoves(t *testing.T) {
	quiet := board.Move{Piece: board.Piece{Type: board.Knight}}
	kingTakes := board.Move{Piece: board.Piece{Type: board.King}, Captured: board.Piece{Type: board.Pawn}, Flags: board.FlagCapture}
	pawnTakesQueen := board.Move{Piece: board.Piece{Type: board.Pawn}, Captured: board.Piece{Type: board.Queen}, Flags: board.FlagCapture}
	moves := []board.Move{quiet, kingTakes, pawnTakesQueen}
	orderMvvLva(moves)
	if moves[0] != pawnTakesQueen || moves[1] != kingTakes || moves[2] != quiet {
		t.Fatalf("order %v", moves)
	}
}
