package bench

import (
	"testing"

	"github.com/ManavGanesh/OOPS-Chess-Project-sub000/board"
)

const (
	kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos6     = "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10"
)

func benchPerft(b *testing.B, fen string, depth int) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.Perft(pos, depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	benchPerft(b, board.StartFEN, 4)
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	benchPerft(b, kiwipete, 3)
}

func benchLegalMoves(b *testing.B, fen string) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	team := pos.CurrentTeam()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pos.LegalMoves(team)
	}
}

func BenchmarkLegalMoves_Initial(b *testing.B)  { benchLegalMoves(b, board.StartFEN) }
func BenchmarkLegalMoves_Kiwipete(b *testing.B) { benchLegalMoves(b, kiwipete) }

// Off-turn generation goes through the flipped board.
func BenchmarkLegalMoves_OffTurn(b *testing.B) {
	pos := board.MustParseFEN(pos6)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pos.LegalMoves(board.Black)
	}
}

func BenchmarkApplyUndo_AllMoves_Initial(b *testing.B) {
	pos := board.StartPosition()
	moves := pos.LegalMoves(board.White)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			undo := pos.Apply(m)
			undo()
		}
	}
}
