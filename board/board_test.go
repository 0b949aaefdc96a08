package board

import (
	"errors"
	"sort"
	"testing"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/notnil/chess"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func mustParse(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

func sq(t *testing.T, s string) Square {
	t.Helper()
	out, err := ParseSquare(s)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestPerftKnownCounts(t *testing.T) {
	cases := []struct {
		fen   string
		depth int
		want  uint64
	}{
		{StartFEN, 1, 20},
		{StartFEN, 2, 400},
		{StartFEN, 3, 8902},
		{kiwipete, 1, 48},
		{kiwipete, 2, 2039},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
	}
	for _, c := range cases {
		pos := mustParse(t, c.fen)
		if got := Perft(pos, c.depth); got != c.want {
			t.Fatalf("perft(%q, %d) = %d, want %d", c.fen, c.depth, got, c.want)
		}
		if pos.FEN() != mustParse(t, c.fen).FEN() {
			t.Fatalf("perft left the position modified: %s", pos.FEN())
		}
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	pos := mustParse(t, kiwipete)
	var sum uint64
	for _, n := range PerftDivide(pos, 2) {
		sum += n
	}
	if sum != 2039 {
		t.Fatalf("divide sum = %d, want 2039", sum)
	}
}

func TestLegalMovesMatchReferenceGenerators(t *testing.T) {
	fens := []string{
		StartFEN,
		kiwipete,
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"4k3/1P6/8/8/8/8/6p1/4K3 w - - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
	}
	for _, fen := range fens {
		pos := mustParse(t, fen)
		got := moveStrings(pos.LegalMoves(pos.CurrentTeam()))

		opt, err := chess.FEN(fen)
		if err != nil {
			t.Fatalf("chess.FEN(%q): %v", fen, err)
		}
		game := chess.NewGame(opt)
		var want []string
		for _, m := range game.ValidMoves() {
			want = append(want, m.String())
		}
		sort.Strings(want)
		if !equalStrings(got, want) {
			t.Fatalf("%s: moves differ from notnil/chess\n got %v\nwant %v", fen, got, want)
		}

		ref, err := gm.ParseFEN(fen)
		if err != nil {
			t.Fatalf("goosemg.ParseFEN(%q): %v", fen, err)
		}
		if n := len(ref.GenerateMoves()); n != len(got) {
			t.Fatalf("%s: %d moves, goosemg finds %d", fen, len(got), n)
		}
	}
}

func TestGameStateAgreesWithReference(t *testing.T) {
	cases := []struct {
		fen  string
		want State
	}{
		{"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", Normal},
		{"R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", Checkmate},
		{"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Stalemate},
		{"4k3/8/8/8/8/8/8/4R1K1 b - - 0 1", Check},
	}
	for _, c := range cases {
		pos := mustParse(t, c.fen)
		team := pos.CurrentTeam()
		if got := pos.GameState(team); got != c.want {
			t.Fatalf("%s: state %v, want %v", c.fen, got, c.want)
		}
		ref, err := gm.ParseFEN(c.fen)
		if err != nil {
			t.Fatalf("goosemg.ParseFEN: %v", err)
		}
		if ref.InCheckmate() != (c.want == Checkmate) {
			t.Fatalf("%s: goosemg checkmate = %v", c.fen, ref.InCheckmate())
		}
		if ref.InStalemate() != (c.want == Stalemate) {
			t.Fatalf("%s: goosemg stalemate = %v", c.fen, ref.InStalemate())
		}
	}
}

func TestParseFENRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"8/8/8/8/8/8/8/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQxq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1",
		"4k3/8/8/8/8/8/8/4RK2 w - - 0 1",
		"P3k3/8/8/8/8/8/8/4K3 w - - 0 1",
		// castling rights without the rook or king at home
		"4k3/8/8/8/8/8/8/4K3 w K - 0 1",
		"r3k3/8/8/8/8/8/8/4K3 b k - 0 1",
		"4k3/8/8/8/8/8/8/R2K4 w Q - 0 1",
		// en passant without a pawn that just double-pushed
		"4k3/8/8/3P4/8/8/8/4K3 w - e6 0 1",
		"4k3/8/8/3Pp3/8/8/8/4K3 b - e6 0 1",
		"4k3/8/8/8/4P3/8/8/4K3 w - e3 0 1",
		"4k3/4p3/8/3Pp3/8/8/8/4K3 w - e6 0 1",
	}
	for _, fen := range bad {
		if _, err := ParseFEN(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Fatalf("ParseFEN(%q) error = %v, want ErrInvalidFEN", fen, err)
		}
	}
	if _, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - -"); err != nil {
		t.Fatalf("four-field FEN rejected: %v", err)
	}
	if _, err := ParseFEN("4k3/8/8/3Pp3/8/8/8/4K3 w - e6 0 1"); err != nil {
		t.Fatalf("real en passant target rejected: %v", err)
	}
	if _, err := ParseFEN("4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1"); err != nil {
		t.Fatalf("real en passant target for black rejected: %v", err)
	}
	if _, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"); err != nil {
		t.Fatalf("castling rights with pieces at home rejected: %v", err)
	}
}

func TestTileAtUsesGridCoordinates(t *testing.T) {
	pos := StartPosition()
	p, ok := pos.TileAt(0, 0)
	if !ok || p.Type != Rook || p.Team != Black {
		t.Fatalf("TileAt(0,0) = %v, %v; want black rook", p, ok)
	}
	p, ok = pos.TileAt(7, 4)
	if !ok || p.Type != King || p.Team != White {
		t.Fatalf("TileAt(7,4) = %v, %v; want white king", p, ok)
	}
	if _, ok := pos.TileAt(4, 4); ok {
		t.Fatalf("TileAt(4,4) should be empty")
	}
	if _, ok := pos.TileAt(8, 0); ok {
		t.Fatalf("TileAt off the board should be empty")
	}
	if NewSquare(7, 4) != sq(t, "e1") || sq(t, "e1").Row() != 7 {
		t.Fatalf("grid and square indexing disagree")
	}
}

func TestApplyUndoRestoresPosition(t *testing.T) {
	pos := mustParse(t, kiwipete)
	before := pos.FEN()
	hash := pos.PlacementHash()
	for _, m := range pos.LegalMoves(White) {
		undo := pos.Apply(m)
		if pos.FEN() == before {
			t.Fatalf("%s did not change the position", m)
		}
		undo()
		if pos.FEN() != before || pos.PlacementHash() != hash {
			t.Fatalf("undo after %s left %s", m, pos.FEN())
		}
	}
}

func TestPieceIDsFollowMoves(t *testing.T) {
	pos := mustParse(t, kiwipete)
	rook, _ := pos.PieceAt(sq(t, "h1"))
	castle, ok := Find(pos.LegalMoves(White), "e1g1")
	if !ok || !castle.IsCastling() {
		t.Fatalf("expected castling move e1g1")
	}
	undo := pos.Apply(castle)
	if at, ok := pos.Locate(rook.ID); !ok || at != sq(t, "f1") {
		t.Fatalf("rook id %d at %v after castling, want f1", rook.ID, at)
	}
	undo()

	pos = mustParse(t, "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	pawn, _ := pos.PieceAt(sq(t, "b7"))
	if _, err := pos.PlayText("b7b8q"); err != nil {
		t.Fatal(err)
	}
	queen, ok := pos.PieceAt(sq(t, "b8"))
	if !ok || queen.Type != Queen || queen.ID != pawn.ID {
		t.Fatalf("promoted piece = %+v, want queen with id %d", queen, pawn.ID)
	}
}

func TestEnPassantMove(t *testing.T) {
	pos := mustParse(t, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	m, ok := Find(pos.LegalMoves(White), "e5f6")
	if !ok || !m.IsEnPassant() || m.Captured.Type != Pawn || m.CaptureSquare() != sq(t, "f5") {
		t.Fatalf("e5f6 = %+v, want en passant capture of f5", m)
	}
	victim, _ := pos.PieceAt(sq(t, "f5"))
	if m.Captured.ID != victim.ID {
		t.Fatalf("captured id %d, want %d", m.Captured.ID, victim.ID)
	}
	pos.Apply(m)
	if _, ok := pos.Locate(victim.ID); ok {
		t.Fatalf("captured pawn still located")
	}
}

func TestOffTurnMoves(t *testing.T) {
	pos := StartPosition()
	moves := pos.LegalMoves(Black)
	if len(moves) != 20 {
		t.Fatalf("black has %d moves with white to move, want 20", len(moves))
	}
	if pos.CurrentTeam() != White {
		t.Fatalf("generating off-turn moves changed the side to move")
	}
	m, _ := Find(moves, "e7e5")
	undo := pos.Apply(m)
	if pos.CurrentTeam() != White {
		t.Fatalf("after black's off-turn move white should be to move")
	}
	undo()
	if pos.FEN() != StartFEN {
		t.Fatalf("undo left %s", pos.FEN())
	}
}

func TestOffTurnMovesNeverCaptureKing(t *testing.T) {
	// Black gives check; generating white moves from black's perspective
	// would otherwise include the king capture.
	pos := mustParse(t, "4k3/8/8/8/8/8/8/r3K3 w - - 0 1")
	for _, m := range pos.LegalMoves(Black) {
		if m.Captured.Type == King {
			t.Fatalf("king capture %s generated", m)
		}
	}
}

func TestPlacementHashIgnoresSideToMove(t *testing.T) {
	a := mustParse(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	b := mustParse(t, "4k3/8/8/8/8/8/8/4K2R b - - 0 1")
	if a.PlacementHash() != b.PlacementHash() {
		t.Fatalf("hash depends on side to move or castling")
	}
	c := mustParse(t, "4k3/8/8/8/8/8/8/4KR2 w - - 0 1")
	if a.PlacementHash() == c.PlacementHash() {
		t.Fatalf("different placements hash equal")
	}
}

func TestDeepCopyIsIndependent(t *testing.T) {
	pos := StartPosition()
	cp := pos.DeepCopy()
	if _, err := cp.PlayText("e2e4"); err != nil {
		t.Fatal(err)
	}
	if pos.FEN() != StartFEN {
		t.Fatalf("original changed to %s", pos.FEN())
	}
	if err := pos.Play(Move{From: sq(t, "e2"), To: sq(t, "e5")}); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("Play(e2e5) = %v, want ErrIllegalMove", err)
	}
}

func TestTurnedClearsEnPassant(t *testing.T) {
	pos := mustParse(t, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	turned := pos.Turned(Black).Turned(White)
	if _, ok := Find(turned.LegalMoves(White), "e5f6"); ok {
		t.Fatalf("en passant survived a side flip")
	}
	if pos.Turned(White) == pos {
		t.Fatalf("Turned must return a copy")
	}
}

func TestExchangeOnCollectsXRays(t *testing.T) {
	// White rooks doubled on the d-file against a black pawn on d5 defended
	// by a pawn on e6.
	pos := mustParse(t, "4k3/8/4p3/3p4/8/8/3R4/3RK3 w - - 0 1")
	ex := pos.ExchangeOn(sq(t, "d5"), White)
	if len(ex.Attackers) != 2 || ex.Attackers[0] != 5 || ex.Attackers[1] != 5 {
		t.Fatalf("attackers = %v, want [5 5]", ex.Attackers)
	}
	if len(ex.Defenders) != 1 || ex.Defenders[0] != 1 {
		t.Fatalf("defenders = %v, want [1]", ex.Defenders)
	}
	if !pos.IsAttacked(sq(t, "d5"), White) || pos.IsAttacked(sq(t, "d7"), White) {
		t.Fatalf("the pawn on d5 should block the rooks")
	}
}

func moveStrings(moves []Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
