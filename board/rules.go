package board

import "github.com/dylhunn/dragontoothmg"

// State summarizes the game status for one side.
type State uint8

const (
	Normal State = iota
	Check
	Checkmate
	Stalemate
)

func (s State) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "normal"
}

// LegalMoves generates team's legal moves. When team is not to move the
// moves are generated as if it were, without an en passant target.
func (p *Position) LegalMoves(team Team) []Move {
	b := &p.b
	if team != p.CurrentTeam() {
		alt := p.turned()
		b = &alt
	}
	own, enemy := &b.White, &b.Black
	if team == Black {
		own, enemy = enemy, own
	}

	raw := b.GenerateLegalMoves()
	moves := make([]Move, 0, len(raw))
	for _, r := range raw {
		if m, ok := p.convert(r, team, own, enemy); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

// convert decorates a generator move. Moves taking the king only show up
// when the side was flipped while the opponent stood in check; they are
// dropped.
func (p *Position) convert(r dragontoothmg.Move, team Team, own, enemy *dragontoothmg.Bitboards) (Move, bool) {
	from, to := Square(r.From()), Square(r.To())
	m := Move{From: from, To: to, raw: r}
	m.Piece = Piece{Type: typeAt(own, from), Team: team, ID: p.ids[from]}

	switch {
	case enemy.All&bit(to) != 0:
		ct := typeAt(enemy, to)
		if ct == King {
			return NoMove, false
		}
		m.Captured = Piece{Type: ct, Team: team.Opponent(), ID: p.ids[to]}
		m.Flags |= FlagCapture
	case m.Piece.Type == Pawn && from.Col() != to.Col():
		m.Flags |= FlagCapture | FlagEnPassant
		m.Captured = Piece{Type: Pawn, Team: team.Opponent(), ID: p.ids[m.CaptureSquare()]}
	}
	if m.Piece.Type == King && (int(to)-int(from) == 2 || int(from)-int(to) == 2) {
		m.Flags |= FlagCastling
	}
	if promo := PieceType(r.Promote()); promo != NoPieceType {
		m.Promotion = promo
		m.Flags |= FlagPromotion
	}
	return m, true
}

// GameState classifies team's situation.
func (p *Position) GameState(team Team) State {
	check := p.InCheck(team)
	if len(p.LegalMoves(team)) == 0 {
		if check {
			return Checkmate
		}
		return Stalemate
	}
	if check {
		return Check
	}
	return Normal
}

// IsCheckmate reports whether team is mated.
func (p *Position) IsCheckmate(team Team) bool {
	return p.InCheck(team) && len(p.LegalMoves(team)) == 0
}
