package game

import (
	"github.com/herohde/clutchchess/pkg/board"
	"github.com/herohde/clutchchess/pkg/legality"
)

type commandKind uint8

const (
	cmdMove commandKind = iota
	cmdResign
	cmdOfferDraw
	cmdCancel
	cmdSnapshot
)

// MoveOutcome is the synchronous reply to a submit_move command.
type MoveOutcome struct {
	Admit  bool
	Reason legality.Reason
}

type command struct {
	kind    commandKind
	player  board.Player
	pieceID string
	target  board.Square
	reply   chan MoveOutcome // non-nil only for cmdMove
	snapTo  chan *GameState  // non-nil only for cmdSnapshot
}

func moveCommand(player board.Player, pieceID string, target board.Square) (command, chan MoveOutcome) {
	reply := make(chan MoveOutcome, 1)
	return command{kind: cmdMove, player: player, pieceID: pieceID, target: target, reply: reply}, reply
}

func resignCommand(player board.Player) command {
	return command{kind: cmdResign, player: player}
}

func offerDrawCommand(player board.Player) command {
	return command{kind: cmdOfferDraw, player: player}
}

func cancelCommand() command {
	return command{kind: cmdCancel}
}

func snapshotCommand() (command, chan *GameState) {
	snapTo := make(chan *GameState, 1)
	return command{kind: cmdSnapshot, snapTo: snapTo}, snapTo
}
