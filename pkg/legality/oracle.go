package legality

import (
	"github.com/herohde/clutchchess/pkg/board"
	"github.com/herohde/clutchchess/pkg/geometry"
)

// Check runs the admission oracle for mover submitting pieceID toward
// target against snapshot. The returned Verdict's Path is the admitted
// traversal (origin excluded) when Admit is true.
func Check(s *Snapshot, mover board.Player, pieceID string, target board.Square) Verdict {
	piece, ok := s.Pieces[pieceID]
	if !ok {
		return Verdict{Reason: ReasonNotYourPiece}
	}

	// Rule 1.
	if piece.Flags.Has(board.Captured) {
		return Verdict{Reason: ReasonPieceCaptured}
	}
	if piece.Owner != mover {
		return Verdict{Reason: ReasonNotYourPiece}
	}
	if piece.Flags.Has(board.Moving) {
		return Verdict{Reason: ReasonPieceMoving}
	}
	if piece.Flags.Has(board.OnCooldown) {
		return Verdict{Reason: ReasonPieceOnCooldown}
	}

	// Rule 2.
	if !inBounds(s.Board, target) {
		return Verdict{Reason: ReasonOutOfBounds}
	}
	if !s.Board.ValidSq(target) {
		return Verdict{Reason: ReasonInvalidSquare}
	}

	from := piece.Pos.Square()

	// Rule 3.
	if target.Equals(from) {
		return Verdict{Reason: ReasonIllegalGeometry}
	}

	// Rule 4: find the geometric candidate landing on target.
	cand, ok := matchCandidate(s.Board, piece.Kind, piece.Owner, from, target)
	if !ok {
		return Verdict{Reason: ReasonIllegalGeometry}
	}

	// Rules 5, 6, 7, 8.
	return walkPath(s, mover, cand)
}

func inBounds(b *board.Board, sq board.Square) bool {
	return sq.Row >= 0 && sq.Col >= 0 && sq.Row < b.Size() && sq.Col < b.Size()
}

func matchCandidate(b *board.Board, kind board.PieceKind, owner board.Player, from, target board.Square) (geometry.Candidate, bool) {
	for _, c := range geometry.Candidates(b, kind, owner, from) {
		if c.Destination().Equals(target) {
			return c, true
		}
	}
	return geometry.Candidate{}, false
}

// walkPath applies rules 5 (intermediate/final occupancy), 6 (reserved
// squares block the ray), 7 (reserved target square is rejected outright)
// and 8 (pawn capture/double-step occupancy requirements).
func walkPath(s *Snapshot, mover board.Player, cand geometry.Candidate) Verdict {
	captureAllowed := !cand.NoCapture
	requireCapture := cand.CaptureOnly

	for i, sq := range cand.Path {
		last := i == len(cand.Path)-1

		if m := s.activeMoveTo(mover, sq); m != nil {
			if last {
				return Verdict{Reason: ReasonDestinationReserved}
			}
			return Verdict{Reason: ReasonPathBlocked}
		}

		occupant := s.pieceAt(sq)
		if occupant != nil {
			if !last {
				return Verdict{Reason: ReasonPathBlocked}
			}
			if occupant.Owner == mover {
				return Verdict{Reason: ReasonPathBlocked}
			}
			if !captureAllowed {
				return Verdict{Reason: ReasonPathBlocked}
			}
			// Enemy resting at the final square, capture allowed: admit.
		} else if last && requireCapture {
			return Verdict{Reason: ReasonIllegalGeometry}
		}
	}

	return Verdict{Admit: true, Path: cand.Path}
}

// CheckCastling runs the castling-specific preconditions for the king
// kingID attempting the given castling geometry. On success it returns
// the king's ActiveMove with ExtraMove set to the rook's.
func CheckCastling(s *Snapshot, mover board.Player, kingID string, opt geometry.Castling, startTick int64) (*ActiveMove, Reason) {
	king, ok := s.Pieces[kingID]
	if !ok || king.Owner != mover || king.Kind != board.King {
		return nil, ReasonCastlingIneligible
	}
	if !eligibleForCastling(king) {
		return nil, ReasonCastlingIneligible
	}

	rook := s.pieceAt(opt.RookFrom)
	if rook == nil || rook.Kind != board.Rook || rook.Owner != mover || !eligibleForCastling(rook) {
		return nil, ReasonCastlingIneligible
	}

	kingFrom := king.Pos.Square()
	for _, sq := range squaresBetween(kingFrom, opt.RookFrom) {
		if s.pieceAt(sq) != nil {
			return nil, ReasonCastlingIneligible
		}
	}

	kingDest := opt.KingPath[len(opt.KingPath)-1]
	rookDest := opt.RookPath[len(opt.RookPath)-1]
	for _, sq := range []board.Square{kingDest, rookDest} {
		if s.pieceAt(sq) != nil {
			return nil, ReasonCastlingIneligible
		}
		if s.activeMoveTo(mover, sq) != nil {
			return nil, ReasonCastlingIneligible
		}
	}

	rookMove := &ActiveMove{PieceID: rook.ID, Origin: opt.RookFrom, Path: opt.RookPath, StartTick: startTick}
	kingMove := &ActiveMove{PieceID: king.ID, Origin: kingFrom, Path: opt.KingPath, StartTick: startTick, ExtraMove: rookMove}
	return kingMove, ReasonNone
}

func eligibleForCastling(p *board.Piece) bool {
	return !p.Flags.Has(board.Captured) && !p.Flags.Has(board.Moving) &&
		!p.Flags.Has(board.OnCooldown) && !p.Flags.Has(board.HasMoved)
}

// squaresBetween returns the open squares strictly between a and b along a
// shared rank or file, exclusive of both endpoints.
func squaresBetween(a, b board.Square) []board.Square {
	var out []board.Square
	switch {
	case a.Row == b.Row:
		lo, hi := a.Col, b.Col
		if lo > hi {
			lo, hi = hi, lo
		}
		for c := lo + 1; c < hi; c++ {
			out = append(out, board.NewSquare(a.Row, c))
		}
	case a.Col == b.Col:
		lo, hi := a.Row, b.Row
		if lo > hi {
			lo, hi = hi, lo
		}
		for r := lo + 1; r < hi; r++ {
			out = append(out, board.NewSquare(r, a.Col))
		}
	}
	return out
}
