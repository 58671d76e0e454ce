// Package delta builds the wire messages external replication/replay
// consumers use: full Snapshots, incremental Updates, and terminal
// events. It depends only on pkg/board and pkg/legality so that it can be
// imported by both the authoritative engine and thin client consumers
// without pulling in the tick processor.
package delta

import (
	"time"

	"github.com/herohde/clutchchess/pkg/board"
)

// PieceView is the wire representation of one piece's observable fields.
type PieceView struct {
	ID    string
	Kind  board.PieceKind
	Owner board.Player

	Row, Col float64

	Captured   bool
	Moving     bool
	OnCooldown bool
	HasMoved   bool
}

// ActiveMoveView is the wire representation of one in-flight move.
type ActiveMoveView struct {
	PieceID   string
	Path      []board.Square
	StartTick int64

	// ExtraMovePieceID is the castling partner's piece id, empty if none.
	ExtraMovePieceID string
}

// CooldownView is the wire representation of one piece's remaining
// cooldown.
type CooldownView struct {
	PieceID   string
	Remaining int
}

// Message is the shape shared by Snapshot and Update. An Update carries
// the same shape as a Snapshot but restricted to the fields that changed
// this tick: only the changed-since-last-tick Pieces/ActiveMoves/Cooldowns
// entries are populated, and an entry's presence in Pieces with
// Captured=true signals removal from the consumer's ActiveMoves map.
type Message struct {
	Full bool

	BoardKind board.Kind

	Pieces      []PieceView
	ActiveMoves []ActiveMoveView
	Cooldowns   []CooldownView

	CurrentTick int64
	Status      string
	Speed       board.SpeedConfig

	// TimeSinceTick is the server-measured delay since the tick's logical
	// instant, used by consumers to refine client-side interpolation.
	TimeSinceTick time.Duration
}

// Terminal is the distinct message emitted after the final Update,
// carrying a closed set of reason codes.
type Terminal struct {
	HasWinner bool
	Winner    board.Player
	Reason    string
}
