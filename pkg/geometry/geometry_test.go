package geometry_test

import (
	"testing"

	"github.com/herohde/clutchchess/pkg/board"
	"github.com/herohde/clutchchess/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func destinations(cands []geometry.Candidate) []board.Square {
	var out []board.Square
	for _, c := range cands {
		out = append(out, c.Destination())
	}
	return out
}

func TestKnightCandidates(t *testing.T) {
	b := board.NewBoard(board.Standard)
	cands := geometry.Candidates(b, board.Knight, board.Player1, board.NewSquare(4, 4))
	assert.Len(t, cands, 8)
	for _, c := range cands {
		assert.Len(t, c.Path, 1)
	}
}

func TestKnightCandidatesNearEdge(t *testing.T) {
	b := board.NewBoard(board.Standard)
	cands := geometry.Candidates(b, board.Knight, board.Player1, board.NewSquare(0, 0))
	assert.Len(t, cands, 2)
}

func TestRookSlides(t *testing.T) {
	b := board.NewBoard(board.Standard)
	cands := geometry.Candidates(b, board.Rook, board.Player1, board.NewSquare(0, 0))
	// 7 squares along the rank, 7 along the file.
	assert.Len(t, cands, 14)

	longest := cands[len(cands)-1]
	assert.Equal(t, board.NewSquare(0, 7), longest.Destination())
	assert.Len(t, longest.Path, 7)
}

func TestPawnStandardDoubleStepOnlyFromHome(t *testing.T) {
	b := board.NewBoard(board.Standard)

	home := geometry.Candidates(b, board.Pawn, board.Player2, board.NewSquare(1, 4))
	var sawDouble bool
	for _, c := range home {
		if c.DoubleStep {
			sawDouble = true
			assert.Equal(t, board.NewSquare(3, 4), c.Destination())
		}
	}
	assert.True(t, sawDouble)

	notHome := geometry.Candidates(b, board.Pawn, board.Player2, board.NewSquare(2, 4))
	for _, c := range notHome {
		assert.False(t, c.DoubleStep)
	}
}

func TestPawnCapturesAreDiagonalOnly(t *testing.T) {
	b := board.NewBoard(board.Standard)
	cands := geometry.Candidates(b, board.Pawn, board.Player1, board.NewSquare(6, 4))

	var captureOnly, noCapture int
	for _, c := range cands {
		if c.CaptureOnly {
			captureOnly++
		}
		if c.NoCapture {
			noCapture++
		}
	}
	assert.Equal(t, 2, captureOnly)
	assert.Equal(t, 2, noCapture) // single + double push
}

func TestCastlingOptionsStandard(t *testing.T) {
	b := board.NewBoard(board.Standard)
	opts := geometry.CastlingOptions(b, board.Player1, board.NewSquare(7, 4))
	assert.Len(t, opts, 2)
	assert.Equal(t, board.NewSquare(7, 6), opts[0].KingPath[len(opts[0].KingPath)-1])
	assert.Equal(t, board.NewSquare(7, 7), opts[0].RookFrom)
}
