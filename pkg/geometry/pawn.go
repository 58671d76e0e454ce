package geometry

import "github.com/herohde/clutchchess/pkg/board"

func pawnCandidates(b *board.Board, owner board.Player, from board.Square) []Candidate {
	if b.Kind() == board.FourPlayer {
		return pawnCandidatesFourPlayer(b, owner, from)
	}
	return pawnCandidatesStandard(owner, from, b)
}

// pawnCandidatesStandard: Player1 moves toward decreasing row, Player2
// toward increasing row, with home row 6/1 respectively for the
// double-initial push.
func pawnCandidatesStandard(owner board.Player, from board.Square, b *board.Board) []Candidate {
	fwd := delta{-1, 0}
	homeRow := 6
	if owner == board.Player2 {
		fwd = delta{1, 0}
		homeRow = 1
	}
	return pawnPaths(b, from, fwd, delta{0, 1}, from.Row == homeRow)
}

// pawnCandidatesFourPlayer: forward direction by player plus the fixed
// home axis (col=10, row=10, col=1, row=1 for Player1..4) that gates the
// double-initial push.
func pawnCandidatesFourPlayer(b *board.Board, owner board.Player, from board.Square) []Candidate {
	var fwd, perp delta
	var onHome bool

	switch owner {
	case board.Player1: // west, col-
		fwd, perp = delta{0, -1}, delta{1, 0}
		onHome = from.Col == 10
	case board.Player2: // north, row-
		fwd, perp = delta{-1, 0}, delta{0, 1}
		onHome = from.Row == 10
	case board.Player3: // east, col+
		fwd, perp = delta{0, 1}, delta{1, 0}
		onHome = from.Col == 1
	case board.Player4: // south, row+
		fwd, perp = delta{1, 0}, delta{0, 1}
		onHome = from.Row == 1
	}
	return pawnPaths(b, from, fwd, perp, onHome)
}

// pawnPaths builds the forward push(es) and perpendicular diagonal capture
// candidates shared by both board kinds, given the forward unit vector,
// a vector perpendicular to it (for the two diagonal captures), and
// whether from sits on the double-step-eligible home axis.
func pawnPaths(b *board.Board, from board.Square, fwd, perp delta, onHome bool) []Candidate {
	var out []Candidate

	one := from.Add(fwd.dr, fwd.dc)
	if b.ValidSq(one) {
		out = append(out, Candidate{Path: []board.Square{one}, NoCapture: true})

		if onHome {
			two := one.Add(fwd.dr, fwd.dc)
			if b.ValidSq(two) {
				out = append(out, Candidate{Path: []board.Square{one, two}, NoCapture: true, DoubleStep: true})
			}
		}
	}

	for _, sign := range []int{-1, 1} {
		diag := from.Add(fwd.dr+perp.dr*sign, fwd.dc+perp.dc*sign)
		if b.ValidSq(diag) {
			out = append(out, Candidate{Path: []board.Square{diag}, CaptureOnly: true})
		}
	}

	return out
}
