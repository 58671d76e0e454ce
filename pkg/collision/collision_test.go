package collision_test

import (
	"testing"

	"github.com/herohde/clutchchess/pkg/board"
	"github.com/herohde/clutchchess/pkg/collision"
	"github.com/herohde/clutchchess/pkg/legality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func movingRook(id string, owner board.Player, pos board.Pos) *board.Piece {
	return &board.Piece{ID: id, Kind: board.Rook, Owner: owner, Pos: pos, Flags: board.Moving}
}

func restingPawn(id string, owner board.Player, sq board.Square) *board.Piece {
	return &board.Piece{ID: id, Kind: board.Pawn, Owner: owner, Pos: board.FromSquare(sq)}
}

func TestResolveCapturesRestingEnemy(t *testing.T) {
	mover := movingRook("m", board.Player1, board.Pos{Row: 4.1, Col: 0})
	target := restingPawn("t", board.Player2, board.NewSquare(4, 0))

	pieces := map[string]*board.Piece{"m": mover, "t": target}
	moves := map[string]*legality.ActiveMove{
		"m": {PieceID: "m", Path: []board.Square{board.NewSquare(4, 0)}, StartTick: 0},
	}
	cooldowns := map[string]*legality.Cooldown{}

	events := collision.Resolve(pieces, moves, cooldowns, board.StandardSpeed, 5)
	require.Len(t, events, 1)
	assert.Equal(t, collision.EventCapture, events[0].Kind)
	assert.True(t, target.Flags.Has(board.Captured))
	assert.False(t, mover.Flags.Has(board.Captured))
	_, stillMoving := moves["t"]
	assert.False(t, stillMoving)
}

func TestResolveMutualDestructionOfMovingEnemies(t *testing.T) {
	a := movingRook("a", board.Player1, board.Pos{Row: 4.0, Col: 0})
	b := movingRook("b", board.Player2, board.Pos{Row: 4.2, Col: 0})

	pieces := map[string]*board.Piece{"a": a, "b": b}
	moves := map[string]*legality.ActiveMove{
		"a": {PieceID: "a", Path: []board.Square{board.NewSquare(4, 0)}, StartTick: 0},
		"b": {PieceID: "b", Path: []board.Square{board.NewSquare(4, 0)}, StartTick: 0},
	}
	cooldowns := map[string]*legality.Cooldown{}

	events := collision.Resolve(pieces, moves, cooldowns, board.StandardSpeed, 5)
	require.Len(t, events, 1)
	assert.Equal(t, collision.EventCapture, events[0].Kind)
	assert.True(t, a.Flags.Has(board.Captured))
	assert.True(t, b.Flags.Has(board.Captured))
}

func TestResolveFriendlyMovingTieBreakAbortsLaterMover(t *testing.T) {
	earlier := movingRook("early", board.Player1, board.Pos{Row: 4.0, Col: 0})
	later := movingRook("late", board.Player1, board.Pos{Row: 4.1, Col: 0})

	pieces := map[string]*board.Piece{"early": earlier, "late": later}
	moves := map[string]*legality.ActiveMove{
		"early": {PieceID: "early", Path: []board.Square{board.NewSquare(4, 0)}, StartTick: 0},
		"late":  {PieceID: "late", Path: []board.Square{board.NewSquare(4, 0)}, StartTick: 1},
	}
	cooldowns := map[string]*legality.Cooldown{}

	events := collision.Resolve(pieces, moves, cooldowns, board.StandardSpeed, 5)
	require.Len(t, events, 1)
	assert.Equal(t, collision.EventAbortFriendlyMoving, events[0].Kind)
	assert.Equal(t, "late", events[0].PieceID)
	assert.False(t, later.Flags.Has(board.Moving))
	assert.True(t, later.Flags.Has(board.OnCooldown))
	_, hasCooldown := cooldowns["late"]
	assert.True(t, hasCooldown)
	assert.False(t, earlier.Flags.Has(board.Captured))
}

func TestResolveIgnoresAirborneKnight(t *testing.T) {
	knight := &board.Piece{ID: "n", Kind: board.Knight, Owner: board.Player1, Pos: board.Pos{Row: 4.1, Col: 0}, Flags: board.Moving}
	resting := restingPawn("t", board.Player2, board.NewSquare(4, 0))

	pieces := map[string]*board.Piece{"n": knight, "t": resting}
	moves := map[string]*legality.ActiveMove{
		"n": {PieceID: "n", Path: []board.Square{board.NewSquare(6, 1)}, StartTick: 0},
	}
	cooldowns := map[string]*legality.Cooldown{}

	// tick=0 puts the knight well inside its airborne window.
	events := collision.Resolve(pieces, moves, cooldowns, board.StandardSpeed, 0)
	assert.Empty(t, events)
	assert.False(t, resting.Flags.Has(board.Captured))
}
