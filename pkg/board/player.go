package board

import "fmt"

// Player identifies a seat at the board: 0..N-1. Standard boards have two
// players; four-player boards have four. 2 bits.
type Player uint8

const (
	Player1 Player = iota
	Player2
	Player3
	Player4
)

// NumPlayers returns the number of seats for the board kind.
func (k Kind) NumPlayers() int {
	if k == FourPlayer {
		return 4
	}
	return 2
}

// Opponent returns the other player on a two-player (Standard) board.
// Not meaningful on a four-player board.
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "p1"
	case Player2:
		return "p2"
	case Player3:
		return "p3"
	case Player4:
		return "p4"
	default:
		return fmt.Sprintf("p?(%d)", uint8(p))
	}
}
