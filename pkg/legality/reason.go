// Package legality implements the shared admission oracle: given a
// piece, a target square and a snapshot of live state, it decides whether a
// candidate move is admitted, using the same code path for the
// authoritative tick processor and for client-side move hinting.
package legality

import "github.com/herohde/clutchchess/pkg/board"

// Reason is a closed set of move-reject codes. The zero value,
// ReasonNone, is never returned for a rejection.
type Reason string

const (
	ReasonNone Reason = ""

	ReasonNotYourPiece        Reason = "not_your_piece"
	ReasonPieceCaptured       Reason = "piece_captured"
	ReasonPieceMoving         Reason = "piece_moving"
	ReasonPieceOnCooldown     Reason = "piece_on_cooldown"
	ReasonOutOfBounds         Reason = "out_of_bounds"
	ReasonInvalidSquare       Reason = "invalid_square"
	ReasonIllegalGeometry     Reason = "illegal_geometry"
	ReasonPathBlocked         Reason = "path_blocked"
	ReasonDestinationReserved Reason = "destination_reserved"
	ReasonCastlingIneligible  Reason = "castling_ineligible"
)

// Verdict is the oracle's answer for one candidate move.
type Verdict struct {
	Admit  bool
	Reason Reason

	// Path is the admitted candidate's traversal, origin excluded. Only
	// meaningful when Admit is true.
	Path []board.Square
}
