// Package game owns GameState and the tick processor that drives the
// authoritative simulation loop.
package game

import (
	"github.com/herohde/clutchchess/pkg/board"
	"github.com/herohde/clutchchess/pkg/legality"
	"github.com/seekerror/stdlib/pkg/lang"
)

// GameState is the mutable, single-owner authoritative state of one game.
// The tick processor mutates it in place for throughput; Clone provides
// a deep copy for speculative lookahead callers, who must never observe
// or race the live instance.
type GameState struct {
	Board *board.Board

	Pieces      map[string]*board.Piece
	ActiveMoves map[string]*legality.ActiveMove
	Cooldowns   map[string]*legality.Cooldown

	CurrentTick int64
	Speed       board.SpeedConfig
	Status      Status

	Winner lang.Optional[board.Player]
	Reason TerminalReason

	Players     []board.Player
	DrawOffered map[board.Player]bool
	Eliminated  map[board.Player]bool

	// MaxTicks is the configured tick budget; zero means unbounded.
	MaxTicks int64
}

// New builds the initial state for a fresh game from the board kind's
// standard preset.
func New(kind board.Kind, speed board.SpeedConfig, maxTicks int64) *GameState {
	b := board.NewBoard(kind)

	var pieces []board.Piece
	if kind == board.FourPlayer {
		pieces = board.FourPlayerSetup()
	} else {
		pieces = board.StandardSetup()
	}

	s := &GameState{
		Board:       b,
		Pieces:      make(map[string]*board.Piece, len(pieces)),
		ActiveMoves: make(map[string]*legality.ActiveMove),
		Cooldowns:   make(map[string]*legality.Cooldown),
		Speed:       speed,
		Status:      Playing,
		Players:     playersFor(kind),
		DrawOffered: make(map[board.Player]bool),
		Eliminated:  make(map[board.Player]bool),
		MaxTicks:    maxTicks,
	}
	for i := range pieces {
		p := pieces[i]
		s.Pieces[p.ID] = &p
	}
	return s
}

func playersFor(kind board.Kind) []board.Player {
	if kind == board.FourPlayer {
		return []board.Player{board.Player1, board.Player2, board.Player3, board.Player4}
	}
	return []board.Player{board.Player1, board.Player2}
}

// Snapshot builds the read-only legality.Snapshot view of this state.
// The tick it carries is advisory, not a synchronization point.
func (s *GameState) Snapshot() *legality.Snapshot {
	return &legality.Snapshot{
		Board:       s.Board,
		Pieces:      s.Pieces,
		ActiveMoves: s.ActiveMoves,
		Cooldowns:   s.Cooldowns,
		Tick:        s.CurrentTick,
		Speed:       s.Speed,
	}
}

// Clone deep-copies the state. It never shares pointers with the
// original so speculative callers cannot mutate live state.
func (s *GameState) Clone() *GameState {
	c := &GameState{
		Board:       s.Board, // immutable after creation; safe to share.
		Pieces:      make(map[string]*board.Piece, len(s.Pieces)),
		ActiveMoves: make(map[string]*legality.ActiveMove, len(s.ActiveMoves)),
		Cooldowns:   make(map[string]*legality.Cooldown, len(s.Cooldowns)),
		CurrentTick: s.CurrentTick,
		Speed:       s.Speed,
		Status:      s.Status,
		Winner:      s.Winner,
		Reason:      s.Reason,
		Players:     append([]board.Player(nil), s.Players...),
		DrawOffered: make(map[board.Player]bool, len(s.DrawOffered)),
		Eliminated:  make(map[board.Player]bool, len(s.Eliminated)),
		MaxTicks:    s.MaxTicks,
	}
	for id, p := range s.Pieces {
		cp := *p
		c.Pieces[id] = &cp
	}
	for id, m := range s.ActiveMoves {
		cm := *m
		cm.Path = append([]board.Square(nil), m.Path...)
		if m.ExtraMove != nil {
			ce := *m.ExtraMove
			ce.Path = append([]board.Square(nil), m.ExtraMove.Path...)
			cm.ExtraMove = &ce
		}
		c.ActiveMoves[id] = &cm
	}
	for id, cd := range s.Cooldowns {
		ccd := *cd
		c.Cooldowns[id] = &ccd
	}
	for k, v := range s.DrawOffered {
		c.DrawOffered[k] = v
	}
	for k, v := range s.Eliminated {
		c.Eliminated[k] = v
	}
	return c
}

// Surviving returns the players not yet eliminated, in stable order.
func (s *GameState) Surviving() []board.Player {
	var out []board.Player
	for _, p := range s.Players {
		if !s.Eliminated[p] {
			out = append(out, p)
		}
	}
	return out
}
