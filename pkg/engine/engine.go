// Package engine is the external command/event surface: create games,
// submit moves, resign, offer draws, cancel, and fetch snapshots. A
// functional-options-configured facade over a registry of independent
// game instances, run across a worker pool instead of one fixed board.
package engine

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/herohde/clutchchess/pkg/board"
	"github.com/herohde/clutchchess/pkg/delta"
	"github.com/herohde/clutchchess/pkg/game"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"golang.org/x/sync/errgroup"
)

// Version identifies this build.
var Version = build.NewVersion(0, 1, 0)

// Options configure a freshly constructed Engine.
type Options struct {
	// MaxConcurrentGames bounds the worker pool. Zero means unbounded.
	MaxConcurrentGames int
}

// Option applies one setting to Options.
type Option func(*Options)

// WithMaxConcurrentGames bounds how many game tick-processor goroutines
// may run at once.
func WithMaxConcurrentGames(n int) Option {
	return func(o *Options) { o.MaxConcurrentGames = n }
}

type entry struct {
	handle *game.Handle
	events <-chan game.Event
}

// Engine owns a pool of independent running games. All exported
// methods are safe for concurrent use.
type Engine struct {
	ctx context.Context

	mu    sync.Mutex
	games map[string]*entry

	group *errgroup.Group
}

// New constructs an Engine whose worker pool goroutines are scoped to
// ctx: cancelling ctx halts every running game.
func New(ctx context.Context, opts ...Option) *Engine {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	g, gctx := errgroup.WithContext(ctx)
	if o.MaxConcurrentGames > 0 {
		g.SetLimit(o.MaxConcurrentGames)
	}

	e := &Engine{
		ctx:   gctx,
		games: make(map[string]*entry),
		group: g,
	}
	logw.Infof(ctx, "Initialized engine: %v", Version)
	return e
}

// CreateGame starts a new game instance and returns its id, initial
// snapshot, and subscribable event stream.
func (e *Engine) CreateGame(kind board.Kind, speed board.SpeedConfig, maxTicks int64) (string, *delta.Message, <-chan game.Event) {
	id := newGameID()
	s := game.New(kind, speed, maxTicks)

	h, events := game.Launch(e.ctx, s)

	out := make(chan game.Event, 256)
	e.group.Go(func() error {
		for ev := range events {
			out <- ev
		}
		close(out)

		e.mu.Lock()
		delete(e.games, id)
		e.mu.Unlock()
		return nil
	})

	e.mu.Lock()
	e.games[id] = &entry{handle: h, events: out}
	e.mu.Unlock()

	snap := delta.BuildSnapshot(s.Board.Kind(), s.Pieces, s.ActiveMoves, s.Cooldowns, s.CurrentTick, s.Status.String(), s.Speed, 0)
	logw.Infof(e.ctx, "Created game %v: board=%v speed=%v", id, kind, speed)
	return id, snap, out
}

// SubmitMove forwards a move attempt to the named game, returning the
// synchronous admit/reject verdict.
func (e *Engine) SubmitMove(gameID string, player board.Player, pieceID string, target board.Square) (game.MoveOutcome, error) {
	h, err := e.handle(gameID)
	if err != nil {
		return game.MoveOutcome{}, err
	}
	return h.SubmitMove(player, pieceID, target), nil
}

// Resign forwards a resignation to the named game.
func (e *Engine) Resign(gameID string, player board.Player) error {
	h, err := e.handle(gameID)
	if err != nil {
		return err
	}
	h.Resign(player)
	return nil
}

// OfferDraw forwards a draw offer to the named game.
func (e *Engine) OfferDraw(gameID string, player board.Player) error {
	h, err := e.handle(gameID)
	if err != nil {
		return err
	}
	h.OfferDraw(player)
	return nil
}

// Cancel forwards a cancellation to the named game.
func (e *Engine) Cancel(gameID string) error {
	h, err := e.handle(gameID)
	if err != nil {
		return err
	}
	h.Cancel()
	return nil
}

// Snapshot returns the full state of the named game, suitable for a
// newly connecting consumer.
func (e *Engine) Snapshot(gameID string) (*game.GameState, error) {
	h, err := e.handle(gameID)
	if err != nil {
		return nil, err
	}
	return h.Snapshot(), nil
}

// Wait blocks until every launched game has finished and its supervisor
// goroutine has exited.
func (e *Engine) Wait() error {
	return e.group.Wait()
}

func (e *Engine) handle(gameID string) (*game.Handle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	ent, ok := e.games[gameID]
	if !ok {
		return nil, fmt.Errorf("unknown game %q", gameID)
	}
	return ent.handle, nil
}

func newGameID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
