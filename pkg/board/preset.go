package board

// backRank is the major-piece file order for the 8x8 standard board.
var backRank = []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// fourPlayerArm is the major-piece order across the six-square-wide arm of
// the 12x12 cut-corner board a 3x3 corner cut on a 12-wide
// board leaves a 6-square arm, too narrow for the standard 8-piece back
// rank, so the four-player back rank uses the compact 6-piece order below.
var fourPlayerArm = []PieceKind{Rook, Knight, Bishop, Queen, King, Rook}

// armLo bounds the low end of the 6-square playable arm shared by every
// player's back rank/file on the 12x12 board (cols/rows 3..8 inclusive).
const armLo = cornerCut

// StandardSetup returns the initial piece placement for the 8x8 two-player
// board. Player1 moves toward decreasing row, so its home rank is
// the high-numbered row 7 with pawns on row 6; Player2 is the mirror image
// at rows 0/1.
func StandardSetup() []Piece {
	var pieces []Piece
	pieces = append(pieces, setupRank(Player1, 7, 6, 0, backRank)...)
	pieces = append(pieces, setupRank(Player2, 0, 1, 0, backRank)...)
	return pieces
}

// setupRank lays out order[] along a rank (fixed row, varying column),
// starting at board column colOffset, plus a pawn row one step forward.
func setupRank(owner Player, backRow, pawnRow, colOffset int, order []PieceKind) []Piece {
	var pieces []Piece
	for i, k := range order {
		pieces = append(pieces, NewPiece(k, owner, NewSquare(backRow, colOffset+i)))
	}
	for i := 0; i < len(order); i++ {
		pieces = append(pieces, NewPiece(Pawn, owner, NewSquare(pawnRow, colOffset+i)))
	}
	return pieces
}

// setupFile lays out order[] along a file (fixed column, varying row),
// starting at board row rowOffset, plus a pawn file one step forward.
func setupFile(owner Player, backCol, pawnCol, rowOffset int, order []PieceKind) []Piece {
	var pieces []Piece
	for i, k := range order {
		pieces = append(pieces, NewPiece(k, owner, NewSquare(rowOffset+i, backCol)))
	}
	for i := 0; i < len(order); i++ {
		pieces = append(pieces, NewPiece(Pawn, owner, NewSquare(rowOffset+i, pawnCol)))
	}
	return pieces
}

// FourPlayerSetup returns the initial placement for the 12x12 cut-corner
// board. The pawn home axis is col=10, row=10, col=1, row=1 for
// Player1..4; the back rank of major pieces
// sits one further step toward the board edge (col=11, row=11, col=0,
// row=0), mirroring how the standard board's back rank sits behind its
// pawn row.
func FourPlayerSetup() []Piece {
	var pieces []Piece
	pieces = append(pieces, setupFile(Player1, 11, 10, armLo, fourPlayerArm)...)
	pieces = append(pieces, setupRank(Player2, 11, 10, armLo, fourPlayerArm)...)
	pieces = append(pieces, setupFile(Player3, 0, 1, armLo, fourPlayerArm)...)
	pieces = append(pieces, setupRank(Player4, 0, 1, armLo, fourPlayerArm)...)
	return pieces
}
