// Package collision detects contact between moving and resting pieces
// after each tick's motion advancement and applies the four ordered
// outcome rules.
package collision

import (
	"sort"

	"github.com/herohde/clutchchess/pkg/board"
	"github.com/herohde/clutchchess/pkg/legality"
	"github.com/herohde/clutchchess/pkg/motion"
)

// Radius is the Chebyshev contact distance, hard-coded rather than
// configurable.
const Radius = 0.4

// EventKind classifies one resolved collision for logging and delta
// diffing.
type EventKind int

const (
	// EventCapture: a moving piece captured a resting enemy; the mover
	// continues along its path (rule 1), or both pieces were destroyed
	// in a moving-vs-moving-enemy collision (rule 2).
	EventCapture EventKind = iota
	// EventAbortFriendlyMoving: a later-departing friendly mover
	// collided with another friendly mover and aborted (rule 3).
	EventAbortFriendlyMoving
	// EventAbortInvariantViolation: a mover collided with a resting
	// friendly piece, which should be unreachable by admission; the
	// mover aborts and the event is logged as an invariant violation
	// (rule 4).
	EventAbortInvariantViolation
)

// Event records one resolved outcome for logging/telemetry; GameState
// mutation (capture flags, ActiveMove retirement, cooldown installation,
// position snap-back) is applied directly by Resolve.
type Event struct {
	Kind    EventKind
	PieceID string
	OtherID string // the other participant, if any
}

// Resolve runs collision detection and the four ordered outcome rules
// for the current tick. pieces and moves are mutated in place: captured
// pieces get Flags|=Captured, aborted movers are snapped back to their
// last integer square and have their ActiveMove removed from moves
// (cooldowns for aborts are installed into cooldowns directly; the tick
// processor installs cooldowns for ordinary completions itself in a
// later step).
func Resolve(pieces map[string]*board.Piece, moves map[string]*legality.ActiveMove, cooldowns map[string]*legality.Cooldown, speed board.SpeedConfig, tick int64) []Event {
	var events []Event

	partners := castlingPartners(moves)
	movers := moverIDs(pieces, moves, speed, tick)
	resolved := map[string]bool{}

	for _, mid := range movers {
		if resolved[mid] {
			continue
		}
		m := pieces[mid]
		if m.Flags.Has(board.Captured) {
			continue
		}

		others := otherIDs(pieces, moves, speed, tick, mid)
		for _, oid := range others {
			if resolved[oid] {
				continue
			}
			if partners[mid] == oid {
				// The king and rook of one castling move cross paths by
				// design; they never collide with each other.
				continue
			}
			o := pieces[oid]
			if o.Flags.Has(board.Captured) {
				continue
			}
			if m.Pos.ChebyshevDist(o.Pos) > Radius {
				continue
			}

			oMoving := o.Flags.Has(board.Moving)
			sameOwner := m.Owner == o.Owner

			switch {
			case !oMoving && !sameOwner:
				// Rule 1: moving vs. resting enemy.
				capture(pieces, moves, o)
				events = append(events, Event{Kind: EventCapture, PieceID: m.ID, OtherID: o.ID})
				resolved[oid] = true

			case oMoving && !sameOwner:
				// Rule 2: moving vs. moving enemy, mutual destruction.
				capture(pieces, moves, m)
				capture(pieces, moves, o)
				events = append(events, Event{Kind: EventCapture, PieceID: m.ID, OtherID: o.ID})
				resolved[mid] = true
				resolved[oid] = true

			case oMoving && sameOwner:
				// Rule 3: moving vs. moving friendly; later-departing
				// mover aborts, deterministic tie-break by start_tick
				// then piece id.
				loser := laterMover(moves[mid], moves[oid])
				abort(pieces, moves, cooldowns, pieces[loser], speed, tick)
				events = append(events, Event{Kind: EventAbortFriendlyMoving, PieceID: loser})
				resolved[loser] = true

			default:
				// Rule 4: moving vs. resting friendly; should be
				// unreachable by admission. Abort the mover and flag
				// as an invariant violation.
				abort(pieces, moves, cooldowns, m, speed, tick)
				events = append(events, Event{Kind: EventAbortInvariantViolation, PieceID: m.ID, OtherID: o.ID})
				resolved[mid] = true
			}
			break
		}
	}

	return events
}

func capture(pieces map[string]*board.Piece, moves map[string]*legality.ActiveMove, p *board.Piece) {
	p.Flags |= board.Captured
	p.Flags &^= board.Moving
	delete(moves, p.ID)
}

// abort snaps a mover back to the last integer square its path reached
// before this tick (its Origin while still on the first segment) and
// installs the configured cooldown, matching the duration an ordinary
// completed move would receive.
func abort(pieces map[string]*board.Piece, moves map[string]*legality.ActiveMove, cooldowns map[string]*legality.Cooldown, p *board.Piece, speed board.SpeedConfig, tick int64) {
	last := p.Pos.Square()
	if mv, ok := moves[p.ID]; ok {
		last = mv.Origin
		segment := int((tick - mv.StartTick) / int64(speed.TicksPerSquare))
		if segment > len(mv.Path) {
			segment = len(mv.Path)
		}
		if segment > 0 {
			last = mv.Path[segment-1]
		}
	}
	p.Pos = board.FromSquare(last)
	p.Flags &^= board.Moving
	p.Flags |= board.OnCooldown
	delete(moves, p.ID)
	cooldowns[p.ID] = &legality.Cooldown{PieceID: p.ID, Remaining: speed.CooldownTicks}
}

// castlingPartners maps each piece id in a coupled castling move to its
// companion's id, in both directions. Only the king's ActiveMove carries
// ExtraMove; the rook's own entry in moves has none.
func castlingPartners(moves map[string]*legality.ActiveMove) map[string]string {
	partners := make(map[string]string)
	for id, mv := range moves {
		if mv.ExtraMove != nil {
			partners[id] = mv.ExtraMove.PieceID
			partners[mv.ExtraMove.PieceID] = id
		}
	}
	return partners
}

func laterMover(a, b *legality.ActiveMove) string {
	if a.StartTick != b.StartTick {
		if a.StartTick > b.StartTick {
			return a.PieceID
		}
		return b.PieceID
	}
	if a.PieceID > b.PieceID {
		return a.PieceID
	}
	return b.PieceID
}

func moverIDs(pieces map[string]*board.Piece, moves map[string]*legality.ActiveMove, speed board.SpeedConfig, tick int64) []string {
	var ids []string
	for id, p := range pieces {
		if p.Flags.Has(board.Captured) || !p.Flags.Has(board.Moving) {
			continue
		}
		move, ok := moves[id]
		if !ok {
			continue
		}
		if motion.Airborne(p.Kind, move, tick, speed.TicksPerSquare) {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		mi, mj := moves[ids[i]], moves[ids[j]]
		if mi.StartTick != mj.StartTick {
			return mi.StartTick < mj.StartTick
		}
		return ids[i] < ids[j]
	})
	return ids
}

func otherIDs(pieces map[string]*board.Piece, moves map[string]*legality.ActiveMove, speed board.SpeedConfig, tick int64, exclude string) []string {
	var ids []string
	for id, p := range pieces {
		if id == exclude || p.Flags.Has(board.Captured) {
			continue
		}
		if move, ok := moves[id]; ok && motion.Airborne(p.Kind, move, tick, speed.TicksPerSquare) {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
