package geometry

import "github.com/herohde/clutchchess/pkg/board"

// CastleSide distinguishes the two castling directions.
type CastleSide uint8

const (
	KingSide CastleSide = iota
	QueenSide
)

// Castling is the compound-motion geometry for one castling option: the
// king's path and the partner rook's origin and path. Both KingPath and
// RookPath are single-element paths (the king's two-file hop and the
// rook's jump to its inside square), so both legs complete in the same
// single-segment tick budget over the same start_tick.
type Castling struct {
	KingPath []board.Square
	RookFrom board.Square
	RookPath []board.Square
}

// CastlingOptions returns the geometrically possible castling moves for a
// king resting at kingSq, given only board shape and owner (no live-state
// preconditions — pkg/legality checks has_moved, rook presence and path
// clearance).
func CastlingOptions(b *board.Board, owner board.Player, kingSq board.Square) []Castling {
	if b.Kind() == board.FourPlayer {
		return fourPlayerCastlingOptions(owner, kingSq)
	}
	return standardCastlingOptions(owner, kingSq)
}

// standardCastlingOptions: king target file 2 or 6; rook file 0<->3 or
// 7<->5, same rank.
func standardCastlingOptions(owner board.Player, kingSq board.Square) []Castling {
	row := kingSq.Row

	return []Castling{
		{
			KingPath: []board.Square{board.NewSquare(row, 6)},
			RookFrom: board.NewSquare(row, 7),
			RookPath: []board.Square{board.NewSquare(row, 5)},
		},
		{
			KingPath: []board.Square{board.NewSquare(row, 2)},
			RookFrom: board.NewSquare(row, 0),
			RookPath: []board.Square{board.NewSquare(row, 3)},
		},
	}
}

// fourPlayerCastlingOptions covers the two four-player cases: players
// with a horizontal home (Player2/Player4, whose king moves two files)
// and players with a vertical home (Player1/Player3, whose king moves two
// ranks), with the rook starting at the arm's outer column/row (2 or 9)
// and ending on the adjacent inside square.
func fourPlayerCastlingOptions(owner board.Player, kingSq board.Square) []Castling {
	switch owner {
	case board.Player2, board.Player4:
		row := kingSq.Row
		return []Castling{
			{
				KingPath: []board.Square{board.NewSquare(row, kingSq.Col+2)},
				RookFrom: board.NewSquare(row, 9),
				RookPath: []board.Square{board.NewSquare(row, kingSq.Col+1)},
			},
			{
				KingPath: []board.Square{board.NewSquare(row, kingSq.Col-2)},
				RookFrom: board.NewSquare(row, 2),
				RookPath: []board.Square{board.NewSquare(row, kingSq.Col-1)},
			},
		}
	default: // Player1, Player3: vertical home
		col := kingSq.Col
		return []Castling{
			{
				KingPath: []board.Square{board.NewSquare(kingSq.Row+2, col)},
				RookFrom: board.NewSquare(9, col),
				RookPath: []board.Square{board.NewSquare(kingSq.Row+1, col)},
			},
			{
				KingPath: []board.Square{board.NewSquare(kingSq.Row-2, col)},
				RookFrom: board.NewSquare(2, col),
				RookPath: []board.Square{board.NewSquare(kingSq.Row-1, col)},
			},
		}
	}
}
