package delta

import "github.com/herohde/clutchchess/pkg/board"

// View is the consumer-side replicated state a renderer/replay player
// builds up by applying a Snapshot followed by a stream of Updates. It
// merges by piece id and ActiveMove piece id; a piece arriving with
// Captured=true drops its entry from ActiveMoves too.
type View struct {
	BoardKind board.Kind

	Pieces      map[string]PieceView
	ActiveMoves map[string]ActiveMoveView
	Cooldowns   map[string]CooldownView

	CurrentTick int64
	Status      string
	Speed       board.SpeedConfig
}

// NewView builds an empty consumer-side view; call Apply with the initial
// Snapshot to populate it.
func NewView() *View {
	return &View{
		Pieces:      make(map[string]PieceView),
		ActiveMoves: make(map[string]ActiveMoveView),
		Cooldowns:   make(map[string]CooldownView),
	}
}

// Apply merges one message (Snapshot or Update) into the view. A Snapshot
// replaces the view wholesale; an Update merges record-by-record.
func (v *View) Apply(m *Message) {
	v.BoardKind = m.BoardKind
	v.CurrentTick = m.CurrentTick
	v.Status = m.Status
	v.Speed = m.Speed

	if m.Full {
		v.Pieces = make(map[string]PieceView, len(m.Pieces))
		v.ActiveMoves = make(map[string]ActiveMoveView, len(m.ActiveMoves))
		v.Cooldowns = make(map[string]CooldownView, len(m.Cooldowns))
	}

	for _, p := range m.Pieces {
		v.Pieces[p.ID] = p
		if p.Captured || !p.Moving {
			delete(v.ActiveMoves, p.ID)
		}
	}
	for _, mv := range m.ActiveMoves {
		v.ActiveMoves[mv.PieceID] = mv
	}
	for _, cd := range m.Cooldowns {
		if cd.Remaining <= 0 {
			delete(v.Cooldowns, cd.PieceID)
			continue
		}
		v.Cooldowns[cd.PieceID] = cd
	}
}
