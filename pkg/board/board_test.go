package board_test

import (
	"testing"

	"github.com/herohde/clutchchess/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestSquare(t *testing.T) {
	a := board.NewSquare(2, 3)
	b := board.NewSquare(2, 3)
	c := board.NewSquare(2, 4)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.Equal(t, board.NewSquare(3, 4), a.Add(1, 1))
}

func TestPosSquareRounding(t *testing.T) {
	p := board.Pos{Row: 2.0, Col: 2.49}
	assert.Equal(t, board.NewSquare(2, 2), p.Square())

	p = board.Pos{Row: 2.0, Col: 2.51}
	assert.Equal(t, board.NewSquare(2, 3), p.Square())
}

func TestChebyshevDist(t *testing.T) {
	a := board.Pos{Row: 0, Col: 0}
	b := board.Pos{Row: 0.3, Col: 0.1}
	assert.InDelta(t, 0.3, a.ChebyshevDist(b), 1e-9)

	c := board.Pos{Row: 2, Col: 2}
	assert.InDelta(t, 2.0, a.ChebyshevDist(c), 1e-9)
}

func TestStandardBoardShape(t *testing.T) {
	b := board.NewBoard(board.Standard)
	assert.Equal(t, 8, b.Size())
	assert.True(t, b.ValidSquare(0, 0))
	assert.True(t, b.ValidSquare(7, 7))
	assert.False(t, b.ValidSquare(8, 0))
	assert.False(t, b.ValidSquare(-1, 0))
}

func TestFourPlayerBoardCutCorners(t *testing.T) {
	b := board.NewBoard(board.FourPlayer)
	assert.Equal(t, 12, b.Size())

	// corners are excised
	assert.False(t, b.ValidSquare(0, 0))
	assert.False(t, b.ValidSquare(0, 11))
	assert.False(t, b.ValidSquare(11, 0))
	assert.False(t, b.ValidSquare(11, 11))
	assert.False(t, b.ValidSquare(2, 2))

	// the arm is playable
	assert.True(t, b.ValidSquare(0, 5))
	assert.True(t, b.ValidSquare(5, 0))
	assert.True(t, b.ValidSquare(5, 5))
}

func TestNumPlayers(t *testing.T) {
	assert.Equal(t, 2, board.Standard.NumPlayers())
	assert.Equal(t, 4, board.FourPlayer.NumPlayers())
}

func TestSetupPresets(t *testing.T) {
	std := board.StandardSetup()
	assert.Len(t, std, 32)

	four := board.FourPlayerSetup()
	assert.Len(t, four, 4*(6+6))
}

func TestPieceID(t *testing.T) {
	p := board.NewPiece(board.Rook, board.Player1, board.NewSquare(7, 0))
	assert.Equal(t, "rook:p1:7:0", p.ID)
	assert.True(t, p.AtRest())
}
