package game

import (
	"github.com/herohde/clutchchess/pkg/board"
	"github.com/herohde/clutchchess/pkg/delta"
	"github.com/herohde/clutchchess/pkg/legality"
)

// Event is the subscribable event surface: on_started, on_update,
// on_move_rejected, on_ended and on_rating_hook, modeled as one tagged
// type so a single channel can carry the whole stream in receipt order.
type Event struct {
	Started      *StartedEvent
	Update       *delta.Message
	MoveRejected *MoveRejectedEvent
	Ended        *delta.Terminal
	RatingHook   *RatingHookEvent
}

// StartedEvent carries the tick a game began processing at.
type StartedEvent struct {
	Tick int64
}

// MoveRejectedEvent reports a rejected submit_move command to its
// originating player.
type MoveRejectedEvent struct {
	Player  board.Player
	PieceID string
	Reason  legality.Reason
}

// RatingHookEvent is advisory; rating computation lives externally.
type RatingHookEvent struct {
	Players []board.Player
}
