package delta

import (
	"time"

	"github.com/herohde/clutchchess/pkg/board"
	"github.com/herohde/clutchchess/pkg/legality"
)

// BuildSnapshot builds a full state message, suitable for a
// newly-connecting consumer.
func BuildSnapshot(kind board.Kind, pieces map[string]*board.Piece, moves map[string]*legality.ActiveMove, cooldowns map[string]*legality.Cooldown, tick int64, status string, speed board.SpeedConfig, sinceTick time.Duration) *Message {
	m := &Message{
		Full:          true,
		BoardKind:     kind,
		CurrentTick:   tick,
		Status:        status,
		Speed:         speed,
		TimeSinceTick: sinceTick,
	}
	for _, p := range pieces {
		m.Pieces = append(m.Pieces, pieceView(p))
	}
	for _, mv := range moves {
		m.ActiveMoves = append(m.ActiveMoves, activeMoveView(mv))
	}
	for _, cd := range cooldowns {
		m.Cooldowns = append(m.Cooldowns, cooldownView(cd))
	}
	return m
}

// BuildUpdate builds an incremental message restricted to the piece,
// ActiveMove and cooldown records touched this tick. A record whose id
// appears in the corresponding dirty set is included in full: this
// protocol emits changed *records*, not changed sub-fields within one.
func BuildUpdate(kind board.Kind, pieces map[string]*board.Piece, moves map[string]*legality.ActiveMove, cooldowns map[string]*legality.Cooldown, dirtyPieces, dirtyMoves, dirtyCooldowns map[string]bool, tick int64, status string, speed board.SpeedConfig, sinceTick time.Duration) *Message {
	m := &Message{
		Full:          false,
		BoardKind:     kind,
		CurrentTick:   tick,
		Status:        status,
		Speed:         speed,
		TimeSinceTick: sinceTick,
	}
	for id := range dirtyPieces {
		if p, ok := pieces[id]; ok {
			m.Pieces = append(m.Pieces, pieceView(p))
		}
	}
	for id := range dirtyMoves {
		if mv, ok := moves[id]; ok {
			m.ActiveMoves = append(m.ActiveMoves, activeMoveView(mv))
		}
	}
	for id := range dirtyCooldowns {
		if cd, ok := cooldowns[id]; ok {
			m.Cooldowns = append(m.Cooldowns, cooldownView(cd))
		} else {
			// Expired and already removed from the authoritative set:
			// still emit a record so a consumer drops its stale entry.
			m.Cooldowns = append(m.Cooldowns, CooldownView{PieceID: id, Remaining: 0})
		}
	}
	return m
}

// IsEmpty reports whether an Update carries no changes at all, the signal
// to suppress emission.
func (m *Message) IsEmpty() bool {
	return len(m.Pieces) == 0 && len(m.ActiveMoves) == 0 && len(m.Cooldowns) == 0
}

func pieceView(p *board.Piece) PieceView {
	return PieceView{
		ID:         p.ID,
		Kind:       p.Kind,
		Owner:      p.Owner,
		Row:        p.Pos.Row,
		Col:        p.Pos.Col,
		Captured:   p.Flags.Has(board.Captured),
		Moving:     p.Flags.Has(board.Moving),
		OnCooldown: p.Flags.Has(board.OnCooldown),
		HasMoved:   p.Flags.Has(board.HasMoved),
	}
}

func activeMoveView(mv *legality.ActiveMove) ActiveMoveView {
	v := ActiveMoveView{
		PieceID:   mv.PieceID,
		Path:      mv.Path,
		StartTick: mv.StartTick,
	}
	if mv.ExtraMove != nil {
		v.ExtraMovePieceID = mv.ExtraMove.PieceID
	}
	return v
}

func cooldownView(cd *legality.Cooldown) CooldownView {
	return CooldownView{PieceID: cd.PieceID, Remaining: cd.Remaining}
}
