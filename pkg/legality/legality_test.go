package legality_test

import (
	"testing"

	"github.com/herohde/clutchchess/pkg/board"
	"github.com/herohde/clutchchess/pkg/geometry"
	"github.com/herohde/clutchchess/pkg/legality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSnapshot(t *testing.T, kind board.Kind, pieces ...board.Piece) *legality.Snapshot {
	t.Helper()
	s := &legality.Snapshot{
		Board:       board.NewBoard(kind),
		Pieces:      make(map[string]*board.Piece, len(pieces)),
		ActiveMoves: make(map[string]*legality.ActiveMove),
		Cooldowns:   make(map[string]*legality.Cooldown),
		Speed:       board.StandardSpeed,
	}
	for i := range pieces {
		p := pieces[i]
		s.Pieces[p.ID] = &p
	}
	return s
}

func TestCheckRejectsNotYourPiece(t *testing.T) {
	rook := board.NewPiece(board.Rook, board.Player1, board.NewSquare(7, 0))
	s := newSnapshot(t, board.Standard, rook)

	v := legality.Check(s, board.Player2, rook.ID, board.NewSquare(6, 0))
	assert.False(t, v.Admit)
	assert.Equal(t, legality.ReasonNotYourPiece, v.Reason)
}

func TestCheckRejectsCapturedAndMovingAndCooldown(t *testing.T) {
	rook := board.NewPiece(board.Rook, board.Player1, board.NewSquare(7, 0))

	captured := rook
	captured.Flags |= board.Captured
	s := newSnapshot(t, board.Standard, captured)
	v := legality.Check(s, board.Player1, rook.ID, board.NewSquare(6, 0))
	assert.Equal(t, legality.ReasonPieceCaptured, v.Reason)

	moving := rook
	moving.Flags |= board.Moving
	s = newSnapshot(t, board.Standard, moving)
	v = legality.Check(s, board.Player1, rook.ID, board.NewSquare(6, 0))
	assert.Equal(t, legality.ReasonPieceMoving, v.Reason)

	cooling := rook
	cooling.Flags |= board.OnCooldown
	s = newSnapshot(t, board.Standard, cooling)
	v = legality.Check(s, board.Player1, rook.ID, board.NewSquare(6, 0))
	assert.Equal(t, legality.ReasonPieceOnCooldown, v.Reason)
}

func TestCheckRejectsOutOfBoundsAndIllegalGeometry(t *testing.T) {
	rook := board.NewPiece(board.Rook, board.Player1, board.NewSquare(7, 0))
	s := newSnapshot(t, board.Standard, rook)

	v := legality.Check(s, board.Player1, rook.ID, board.NewSquare(8, 0))
	assert.Equal(t, legality.ReasonOutOfBounds, v.Reason)

	v = legality.Check(s, board.Player1, rook.ID, board.NewSquare(6, 1))
	assert.Equal(t, legality.ReasonIllegalGeometry, v.Reason)
}

func TestCheckAdmitsSimpleAdvance(t *testing.T) {
	rook := board.NewPiece(board.Rook, board.Player1, board.NewSquare(7, 0))
	s := newSnapshot(t, board.Standard, rook)

	v := legality.Check(s, board.Player1, rook.ID, board.NewSquare(4, 0))
	require.True(t, v.Admit)
	assert.Equal(t, []board.Square{
		board.NewSquare(6, 0), board.NewSquare(5, 0), board.NewSquare(4, 0),
	}, v.Path)
}

func TestCheckBlocksOnFriendlyOccupant(t *testing.T) {
	rook := board.NewPiece(board.Rook, board.Player1, board.NewSquare(7, 0))
	pawn := board.NewPiece(board.Pawn, board.Player1, board.NewSquare(6, 0))
	s := newSnapshot(t, board.Standard, rook, pawn)

	v := legality.Check(s, board.Player1, rook.ID, board.NewSquare(5, 0))
	assert.False(t, v.Admit)
	assert.Equal(t, legality.ReasonPathBlocked, v.Reason)
}

func TestCheckAdmitsCaptureOfRestingEnemy(t *testing.T) {
	rook := board.NewPiece(board.Rook, board.Player1, board.NewSquare(7, 0))
	enemy := board.NewPiece(board.Pawn, board.Player2, board.NewSquare(4, 0))
	s := newSnapshot(t, board.Standard, rook, enemy)

	v := legality.Check(s, board.Player1, rook.ID, board.NewSquare(4, 0))
	assert.True(t, v.Admit)
}

func TestPawnRequiresCaptureOnDiagonal(t *testing.T) {
	pawn := board.NewPiece(board.Pawn, board.Player1, board.NewSquare(6, 4))
	s := newSnapshot(t, board.Standard, pawn)

	v := legality.Check(s, board.Player1, pawn.ID, board.NewSquare(5, 5))
	assert.False(t, v.Admit)
	assert.Equal(t, legality.ReasonIllegalGeometry, v.Reason)

	enemy := board.NewPiece(board.Pawn, board.Player2, board.NewSquare(5, 5))
	s = newSnapshot(t, board.Standard, pawn, enemy)
	v = legality.Check(s, board.Player1, pawn.ID, board.NewSquare(5, 5))
	assert.True(t, v.Admit)
}

func TestCheckRejectsDestinationAlreadyReservedByFriendlyMove(t *testing.T) {
	queen := board.NewPiece(board.Queen, board.Player1, board.NewSquare(7, 3))
	rook := board.NewPiece(board.Rook, board.Player1, board.NewSquare(7, 0))
	s := newSnapshot(t, board.Standard, queen, rook)

	// The rook has already claimed a4 (row4,col0) via an in-flight ActiveMove.
	dest := board.NewSquare(4, 0)
	s.ActiveMoves[rook.ID] = &legality.ActiveMove{
		PieceID:   rook.ID,
		Origin:    board.NewSquare(7, 0),
		Path:      []board.Square{board.NewSquare(6, 0), board.NewSquare(5, 0), dest},
		StartTick: 0,
	}

	v := legality.Check(s, board.Player1, queen.ID, dest)
	assert.False(t, v.Admit)
	assert.Equal(t, legality.ReasonDestinationReserved, v.Reason)
}

func TestCheckCastlingKingSide(t *testing.T) {
	king := board.NewPiece(board.King, board.Player1, board.NewSquare(7, 4))
	rook := board.NewPiece(board.Rook, board.Player1, board.NewSquare(7, 7))
	s := newSnapshot(t, board.Standard, king, rook)

	opts := geometry.CastlingOptions(s.Board, board.Player1, board.NewSquare(7, 4))
	mv, reason := legality.CheckCastling(s, board.Player1, king.ID, opts[0], 0)
	require.Equal(t, legality.ReasonNone, reason)
	require.NotNil(t, mv)
	assert.Equal(t, board.NewSquare(7, 6), mv.Destination())
	require.NotNil(t, mv.ExtraMove)
	assert.Equal(t, rook.ID, mv.ExtraMove.PieceID)
	assert.Equal(t, board.NewSquare(7, 5), mv.ExtraMove.Destination())
}

func TestCheckCastlingRejectsIfKingHasMoved(t *testing.T) {
	king := board.NewPiece(board.King, board.Player1, board.NewSquare(7, 4))
	king.Flags |= board.HasMoved
	rook := board.NewPiece(board.Rook, board.Player1, board.NewSquare(7, 7))
	s := newSnapshot(t, board.Standard, king, rook)

	opts := geometry.CastlingOptions(s.Board, board.Player1, board.NewSquare(7, 4))
	_, reason := legality.CheckCastling(s, board.Player1, king.ID, opts[0], 0)
	assert.Equal(t, legality.ReasonCastlingIneligible, reason)
}

func TestCheckCastlingRejectsBlockedPath(t *testing.T) {
	king := board.NewPiece(board.King, board.Player1, board.NewSquare(7, 4))
	rook := board.NewPiece(board.Rook, board.Player1, board.NewSquare(7, 7))
	bishop := board.NewPiece(board.Bishop, board.Player1, board.NewSquare(7, 5))
	s := newSnapshot(t, board.Standard, king, rook, bishop)

	opts := geometry.CastlingOptions(s.Board, board.Player1, board.NewSquare(7, 4))
	_, reason := legality.CheckCastling(s, board.Player1, king.ID, opts[0], 0)
	assert.Equal(t, legality.ReasonCastlingIneligible, reason)
}
