package legality

import "github.com/herohde/clutchchess/pkg/board"

// ActiveMove is an in-flight traversal of a piece along a path. The
// path never includes the origin square. ExtraMove couples a castling
// partner's move under the same StartTick; nil for ordinary moves.
type ActiveMove struct {
	PieceID   string
	Origin    board.Square // the piece's resting square when the move was admitted
	Path      []board.Square
	StartTick int64
	ExtraMove *ActiveMove
}

// Destination is the move's final square.
func (m *ActiveMove) Destination() board.Square {
	return m.Path[len(m.Path)-1]
}

// Cooldown is the post-move quiescence period barring a piece from
// initiating another move.
type Cooldown struct {
	PieceID   string
	Remaining int
}

// Snapshot is the read-only view of live state the oracle admits or
// rejects candidate moves against. It is advisory on Tick: admission
// decisions use integer-rounded piece positions from the most recent
// authoritative tick, never fractional sub-tick positions.
type Snapshot struct {
	Board       *board.Board
	Pieces      map[string]*board.Piece
	ActiveMoves map[string]*ActiveMove // keyed by PieceID
	Cooldowns   map[string]*Cooldown   // keyed by PieceID
	Tick        int64
	Speed       board.SpeedConfig
}

func (s *Snapshot) pieceAt(sq board.Square) *board.Piece {
	for _, p := range s.Pieces {
		if p.Flags.Has(board.Captured) {
			continue
		}
		if p.AtRest() && p.Pos.Square().Equals(sq) {
			return p
		}
	}
	return nil
}

func (s *Snapshot) activeMoveTo(owner board.Player, sq board.Square) *ActiveMove {
	for id, m := range s.ActiveMoves {
		p, ok := s.Pieces[id]
		if !ok || p.Owner != owner {
			continue
		}
		if m.Destination().Equals(sq) {
			return m
		}
	}
	return nil
}
