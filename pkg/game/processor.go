package game

import (
	"context"
	"time"

	"github.com/herohde/clutchchess/pkg/board"
	"github.com/herohde/clutchchess/pkg/collision"
	"github.com/herohde/clutchchess/pkg/delta"
	"github.com/herohde/clutchchess/pkg/geometry"
	"github.com/herohde/clutchchess/pkg/legality"
	"github.com/herohde/clutchchess/pkg/motion"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

// Handle lets a caller submit commands to a running tick processor and
// halt it: a goroutine-owned loop reachable only through a channel-backed
// facade and an iox.AsyncCloser lifecycle signal.
type Handle struct {
	iox.AsyncCloser

	mbox *mailbox
}

// Launch starts a game's tick processor loop in its own goroutine and
// returns a Handle plus its event stream. The loop halts when ctx is done
// or Close is called, and closes the event channel on exit.
func Launch(ctx context.Context, s *GameState) (*Handle, <-chan Event) {
	out := make(chan Event, 256)
	h := &Handle{
		AsyncCloser: iox.NewAsyncCloser(),
		mbox:        newMailbox(),
	}
	go h.run(ctx, s, out)
	return h, out
}

// SubmitMove enqueues a move command and blocks for its synchronous
// admit/reject verdict.
func (h *Handle) SubmitMove(player board.Player, pieceID string, target board.Square) MoveOutcome {
	c, reply := moveCommand(player, pieceID, target)
	h.mbox.push(c)
	return <-reply
}

// Resign enqueues a resignation.
func (h *Handle) Resign(player board.Player) {
	h.mbox.push(resignCommand(player))
}

// OfferDraw enqueues a draw offer.
func (h *Handle) OfferDraw(player board.Player) {
	h.mbox.push(offerDrawCommand(player))
}

// Cancel enqueues a cancellation.
func (h *Handle) Cancel() {
	h.mbox.push(cancelCommand())
}

// Snapshot returns a deep clone of the live state, safe for the caller to
// read or mutate without racing the tick processor. The request is routed
// through the command queue so GameState keeps exactly one mutator.
func (h *Handle) Snapshot() *GameState {
	c, snapTo := snapshotCommand()
	h.mbox.push(c)
	return <-snapTo
}

func (h *Handle) run(ctx context.Context, s *GameState, out chan Event) {
	defer h.Close()
	defer close(out)

	wctx, cancel := contextx.WithQuitCancel(ctx, h.Closed())
	defer cancel()

	logw.Infof(ctx, "Game started: board=%v speed=%v tick=%v", s.Board, s.Speed, s.CurrentTick)
	out <- Event{Started: &StartedEvent{Tick: s.CurrentTick}}

	period := time.Duration(s.Speed.TickPeriodMillis()) * time.Millisecond
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-wctx.Done():
			return
		case tickStart := <-ticker.C:
			if s.Status == Finished {
				h.emitTerminal(ctx, s, out)
				return
			}
			h.tick(ctx, s, out, tickStart)
			if s.Status == Finished {
				h.emitTerminal(ctx, s, out)
				return
			}
		}
	}
}

func (h *Handle) emitTerminal(ctx context.Context, s *GameState, out chan Event) {
	winner, hasWinner := s.Winner.V()
	logw.Infof(ctx, "Game ended: reason=%v winner=%v", s.Reason, winner)
	out <- Event{Ended: &delta.Terminal{HasWinner: hasWinner, Winner: winner, Reason: string(s.Reason)}}
}

type pieceDiff struct {
	pos   board.Pos
	flags board.Flags
}

// snapshotCooldowns captures each live cooldown's remaining ticks, so a
// pure countdown tick (no piece flag/position change) can still be
// detected as dirty, and an expiring cooldown's removal from
// s.Cooldowns can still be diffed against its last known value.
func snapshotCooldowns(s *GameState) map[string]int {
	m := make(map[string]int, len(s.Cooldowns))
	for id, cd := range s.Cooldowns {
		m[id] = cd.Remaining
	}
	return m
}

// tick runs the seven ordered steps of one simulation step: drain
// commands, advance motion, resolve collisions, retire completed moves
// and tick cooldowns, check terminal conditions, emit a delta, advance
// the tick counter.
func (h *Handle) tick(ctx context.Context, s *GameState, out chan Event, tickStart time.Time) {
	before := snapshotDiff(s)
	beforeCooldowns := snapshotCooldowns(s)

	// Step 1: drain commands and run admission against the pre-tick snapshot.
	for _, c := range h.mbox.drain() {
		h.apply(ctx, s, c, out)
		if s.Status == Finished {
			break
		}
	}

	if s.Status == Playing {
		// Step 2: advance motion.
		advanceAll(s)

		// Step 3: collision resolution.
		for _, ev := range collision.Resolve(s.Pieces, s.ActiveMoves, s.Cooldowns, s.Speed, s.CurrentTick) {
			if ev.Kind == collision.EventAbortInvariantViolation {
				logw.Errorf(ctx, "Invariant violation at tick=%v: mover=%v collided with resting friendly=%v", s.CurrentTick, ev.PieceID, ev.OtherID)
			}
		}

		// Step 4: retire completed moves, install/decrement cooldowns.
		retireCompleted(s)
		tickCooldowns(s)

		// Step 5: terminal conditions.
		applyTerminalConditions(s)
	}

	// Step 6: emit a delta if anything observable changed.
	after := snapshotDiff(s)
	dp, dm, dc := diffSets(before, after, beforeCooldowns, s)
	msg := delta.BuildUpdate(s.Board.Kind(), s.Pieces, s.ActiveMoves, s.Cooldowns, dp, dm, dc, s.CurrentTick, s.Status.String(), s.Speed, time.Since(tickStart))
	if !msg.IsEmpty() {
		out <- Event{Update: msg}
	}

	// Step 7: advance the tick counter.
	s.CurrentTick++
}

func snapshotDiff(s *GameState) map[string]pieceDiff {
	m := make(map[string]pieceDiff, len(s.Pieces))
	for id, p := range s.Pieces {
		m[id] = pieceDiff{pos: p.Pos, flags: p.Flags}
	}
	return m
}

func diffSets(before, after map[string]pieceDiff, beforeCooldowns map[string]int, s *GameState) (map[string]bool, map[string]bool, map[string]bool) {
	dirtyPieces := map[string]bool{}
	for id, a := range after {
		b, ok := before[id]
		if !ok || b != a {
			dirtyPieces[id] = true
		}
	}

	dirtyMoves := map[string]bool{}
	for id := range s.ActiveMoves {
		if dirtyPieces[id] {
			dirtyMoves[id] = true
		}
	}

	// A cooldown is dirty if the owning piece changed, if its own
	// Remaining value ticked down, or if it expired and was removed from
	// s.Cooldowns this tick: any of these needs a fresh delta record so
	// a consumer's stale Remaining value (or removal) stays in sync.
	dirtyCooldowns := map[string]bool{}
	for id, cd := range s.Cooldowns {
		if dirtyPieces[id] || beforeCooldowns[id] != cd.Remaining {
			dirtyCooldowns[id] = true
		}
	}
	for id := range beforeCooldowns {
		if _, ok := s.Cooldowns[id]; !ok {
			dirtyCooldowns[id] = true
		}
	}
	return dirtyPieces, dirtyMoves, dirtyCooldowns
}

func advanceAll(s *GameState) {
	ticksPerSquare := s.Speed.TicksPerSquare
	for id, mv := range s.ActiveMoves {
		p, ok := s.Pieces[id]
		if !ok || p.Flags.Has(board.Captured) {
			continue
		}
		pos, done := motion.Advance(mv.Origin, mv, s.CurrentTick, ticksPerSquare)
		p.Pos = pos
		if done {
			p.Pos = board.FromSquare(mv.Destination())
		}
	}
}

func retireCompleted(s *GameState) {
	ticksPerSquare := s.Speed.TicksPerSquare
	for id, mv := range s.ActiveMoves {
		p, ok := s.Pieces[id]
		if !ok || p.Flags.Has(board.Captured) {
			delete(s.ActiveMoves, id)
			continue
		}
		if _, done := motion.Advance(mv.Origin, mv, s.CurrentTick, ticksPerSquare); done {
			p.Pos = board.FromSquare(mv.Destination())
			p.Flags &^= board.Moving
			p.Flags |= board.HasMoved | board.OnCooldown
			s.Cooldowns[id] = &legality.Cooldown{PieceID: id, Remaining: s.Speed.CooldownTicks}
			delete(s.ActiveMoves, id)
		}
	}
}

func tickCooldowns(s *GameState) {
	for id, cd := range s.Cooldowns {
		cd.Remaining--
		if cd.Remaining <= 0 {
			delete(s.Cooldowns, id)
			if p, ok := s.Pieces[id]; ok {
				p.Flags &^= board.OnCooldown
			}
		}
	}
}

// apply admits or rejects one drained command against the pre-tick
// snapshot.
func (h *Handle) apply(ctx context.Context, s *GameState, c command, out chan Event) {
	switch c.kind {
	case cmdMove:
		h.applyMove(ctx, s, c, out)
	case cmdResign:
		eliminate(s, c.player, ReasonResignation)
	case cmdOfferDraw:
		s.DrawOffered[c.player] = true
	case cmdCancel:
		s.ActiveMoves = map[string]*legality.ActiveMove{}
		s.Status = Finished
		s.Reason = ReasonCancelled
	case cmdSnapshot:
		c.snapTo <- s.Clone()
	}
}

func (h *Handle) applyMove(ctx context.Context, s *GameState, c command, out chan Event) {
	snap := s.Snapshot()

	piece, ok := s.Pieces[c.pieceID]
	if ok && piece.Kind == board.King {
		if mv, reason := tryCastling(snap, c.player, piece, c.target, s.CurrentTick); reason == legality.ReasonNone {
			installActiveMove(s, mv)
			c.reply <- MoveOutcome{Admit: true}
			return
		} else if isCastlingTarget(s.Board, piece, c.target) {
			c.reply <- MoveOutcome{Admit: false, Reason: reason}
			out <- Event{MoveRejected: &MoveRejectedEvent{Player: c.player, PieceID: c.pieceID, Reason: reason}}
			return
		}
	}

	v := legality.Check(snap, c.player, c.pieceID, c.target)
	if !v.Admit {
		c.reply <- MoveOutcome{Admit: false, Reason: v.Reason}
		out <- Event{MoveRejected: &MoveRejectedEvent{Player: c.player, PieceID: c.pieceID, Reason: v.Reason}}
		return
	}

	mv := &legality.ActiveMove{PieceID: c.pieceID, Origin: piece.Pos.Square(), Path: v.Path, StartTick: s.CurrentTick}
	installActiveMove(s, mv)
	c.reply <- MoveOutcome{Admit: true}
}

func installActiveMove(s *GameState, mv *legality.ActiveMove) {
	s.ActiveMoves[mv.PieceID] = mv
	if p, ok := s.Pieces[mv.PieceID]; ok {
		p.Flags |= board.Moving
	}
	if mv.ExtraMove != nil {
		s.ActiveMoves[mv.ExtraMove.PieceID] = mv.ExtraMove
		if p, ok := s.Pieces[mv.ExtraMove.PieceID]; ok {
			p.Flags |= board.Moving
		}
	}
}

// isCastlingTarget reports whether target matches any castling option's
// king destination for this king, used only to decide which rejection
// reason code to surface (castling_ineligible vs illegal_geometry) when
// castling preconditions fail.
func isCastlingTarget(b *board.Board, king *board.Piece, target board.Square) bool {
	for _, opt := range geometry.CastlingOptions(b, king.Owner, king.Pos.Square()) {
		if opt.KingPath[len(opt.KingPath)-1].Equals(target) {
			return true
		}
	}
	return false
}

func tryCastling(snap *legality.Snapshot, mover board.Player, king *board.Piece, target board.Square, tick int64) (*legality.ActiveMove, legality.Reason) {
	for _, opt := range geometry.CastlingOptions(snap.Board, king.Owner, king.Pos.Square()) {
		if !opt.KingPath[len(opt.KingPath)-1].Equals(target) {
			continue
		}
		return legality.CheckCastling(snap, mover, king.ID, opt, tick)
	}
	return nil, legality.ReasonIllegalGeometry
}

// eliminate removes a player from play. If exactly one survivor remains,
// the game ends in their favor with the given reason: both king-capture
// and resignation elimination fold into the same survivorship rule.
func eliminate(s *GameState, player board.Player, reason TerminalReason) {
	if s.Eliminated[player] {
		return
	}
	s.Eliminated[player] = true
	if s.Status != Playing {
		return
	}
	survivors := s.Surviving()
	if len(survivors) == 1 {
		s.Status = Finished
		s.Winner = lang.Some(survivors[0])
		s.Reason = reason
	}
}

func applyTerminalConditions(s *GameState) {
	if s.Status != Playing {
		return
	}

	for _, player := range s.Players {
		if s.Eliminated[player] {
			continue
		}
		if hasCapturedKing(s, player) {
			eliminate(s, player, ReasonKingCaptured)
		}
	}
	if s.Status != Playing {
		return
	}

	survivors := s.Surviving()
	allOffered := len(survivors) > 0
	for _, p := range survivors {
		if !s.DrawOffered[p] {
			allOffered = false
			break
		}
	}
	if allOffered {
		s.Status = Finished
		s.Reason = ReasonDrawOffered
		return
	}

	if s.MaxTicks > 0 && s.CurrentTick >= s.MaxTicks {
		s.Status = Finished
		s.Reason = ReasonTimeout
	}
}

func hasCapturedKing(s *GameState, player board.Player) bool {
	for _, p := range s.Pieces {
		if p.Owner == player && p.Kind == board.King {
			return p.Flags.Has(board.Captured)
		}
	}
	return false
}
