// Package geometry generates pure, state-free candidate move paths per
// piece kind. It never consults live game state; pkg/legality combines
// these candidates with occupancy and ActiveMove reservations.
package geometry

import "github.com/herohde/clutchchess/pkg/board"

// Candidate is one pseudo-geometric destination for a piece, carrying the
// full path of squares traversed to reach it. Path never includes the
// origin square; Path[len(Path)-1] is the destination.
type Candidate struct {
	Path []board.Square

	// CaptureOnly is true for a pawn's diagonal destination: legal only
	// if an enemy currently rests there.
	CaptureOnly bool
	// NoCapture is true for a pawn's forward push(es): illegal if the
	// destination is occupied at all, friend or foe.
	NoCapture bool
	// DoubleStep is true for a pawn's two-square initial push: legality
	// additionally requires the mover sit on its home axis.
	DoubleStep bool
}

func (c Candidate) Destination() board.Square {
	return c.Path[len(c.Path)-1]
}

type delta struct{ dr, dc int }

var (
	rookDirections = []delta{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	}
	bishopDirections = []delta{
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	knightOffsets = []delta{
		{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
		{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
	}
	kingOffsets = []delta{
		{1, 0}, {1, 1}, {0, 1}, {-1, 1},
		{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	}
)

// Candidates returns every pseudo-legal geometric destination for a piece
// of the given kind/owner resting at from, constrained only by board
// shape. Castling is excluded here; see CastlingOptions.
func Candidates(b *board.Board, kind board.PieceKind, owner board.Player, from board.Square) []Candidate {
	switch kind {
	case board.Pawn:
		return pawnCandidates(b, owner, from)
	case board.Knight:
		return stepCandidates(b, from, knightOffsets)
	case board.Bishop:
		return slideCandidates(b, from, bishopDirections)
	case board.Rook:
		return slideCandidates(b, from, rookDirections)
	case board.Queen:
		var out []Candidate
		out = append(out, slideCandidates(b, from, rookDirections)...)
		out = append(out, slideCandidates(b, from, bishopDirections)...)
		return out
	case board.King:
		return stepCandidates(b, from, kingOffsets)
	default:
		return nil
	}
}

func stepCandidates(b *board.Board, from board.Square, offsets []delta) []Candidate {
	var out []Candidate
	for _, d := range offsets {
		to := from.Add(d.dr, d.dc)
		if !b.ValidSq(to) {
			continue
		}
		out = append(out, Candidate{Path: []board.Square{to}})
	}
	return out
}

func slideCandidates(b *board.Board, from board.Square, directions []delta) []Candidate {
	var out []Candidate
	for _, d := range directions {
		var path []board.Square
		cur := from
		for {
			cur = cur.Add(d.dr, d.dc)
			if !b.ValidSq(cur) {
				break
			}
			path = append(path, cur)
			out = append(out, Candidate{Path: append([]board.Square(nil), path...)})
		}
	}
	return out
}
