// Package motion advances in-flight pieces along their ActiveMove paths,
// one tick at a time.
package motion

import (
	"github.com/herohde/clutchchess/pkg/board"
	"github.com/herohde/clutchchess/pkg/legality"
)

// AirborneFraction is the share of a knight's total travel time during
// which it is invisible to collision, both as attacker and defender.
// Hard-coded rather than configurable.
const AirborneFraction = 0.85

// Advance computes a piece's fractional position for the given elapsed
// tick count along move, clamped to the path, and reports whether the
// move has reached its terminal square (elapsed >= ticksPerSquare *
// len(move.Path)).
//
// Position is the rational (start + (elapsed/ticksPerSquare) * step)
// formula, evaluated per path segment so any path length and any step
// vector (orthogonal, diagonal, knight L) works uniformly.
func Advance(origin board.Square, move *legality.ActiveMove, tick int64, ticksPerSquare int) (board.Pos, bool) {
	elapsed := tick - move.StartTick
	totalTicks := int64(ticksPerSquare) * int64(len(move.Path))
	if elapsed >= totalTicks {
		dest := move.Path[len(move.Path)-1]
		return board.FromSquare(dest), true
	}

	segment := int(elapsed / int64(ticksPerSquare))
	intoSegment := elapsed % int64(ticksPerSquare)
	progress := float64(intoSegment) / float64(ticksPerSquare)

	from := origin
	if segment > 0 {
		from = move.Path[segment-1]
	}
	to := move.Path[segment]

	pos := board.Pos{
		Row: float64(from.Row) + progress*float64(to.Row-from.Row),
		Col: float64(from.Col) + progress*float64(to.Col-from.Col),
	}
	return pos, false
}

// Progress returns a move's completion fraction in [0,1], the basis for
// the knight airborne window.
func Progress(move *legality.ActiveMove, tick int64, ticksPerSquare int) float64 {
	elapsed := tick - move.StartTick
	total := int64(ticksPerSquare) * int64(len(move.Path))
	if total == 0 {
		return 1
	}
	if elapsed >= total {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(total)
}

// Airborne reports whether a knight executing move is currently immune to
// collision. Non-knights are never airborne.
func Airborne(kind board.PieceKind, move *legality.ActiveMove, tick int64, ticksPerSquare int) bool {
	if kind != board.Knight {
		return false
	}
	return Progress(move, tick, ticksPerSquare) < AirborneFraction
}
