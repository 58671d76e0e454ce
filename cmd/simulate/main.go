// simulate is a console demo of the tick processor: it reads line
// commands from stdin and prints update/terminal events as they arrive.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/herohde/clutchchess/pkg/board"
	"github.com/herohde/clutchchess/pkg/engine"
	"github.com/herohde/clutchchess/pkg/game"
	"github.com/seekerror/logw"
)

var (
	fourPlayer = flag.Bool("four_player", false, "Start a four-player game instead of standard")
	lightning  = flag.Bool("lightning", false, "Use the lightning speed profile")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	kind := board.Standard
	if *fourPlayer {
		kind = board.FourPlayer
	}
	speed := board.StandardSpeed
	if *lightning {
		speed = board.LightningSpeed
	}

	e := engine.New(ctx, engine.WithMaxConcurrentGames(8))
	id, _, events := e.CreateGame(kind, speed, 0)

	logw.Infof(ctx, "Game %v started (board=%v, speed=%v)", id, kind, speed)

	go printEvents(events)

	fmt.Println("commands: move <player> <piece_id> <row> <col> | resign <player> | draw <player> | cancel | quit")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)

		switch strings.ToLower(parts[0]) {
		case "quit", "exit":
			_ = e.Cancel(id)
			return

		case "cancel":
			_ = e.Cancel(id)

		case "resign":
			if len(parts) < 2 {
				continue
			}
			p, err := parsePlayer(parts[1])
			if err != nil {
				fmt.Println(err)
				continue
			}
			_ = e.Resign(id, p)

		case "draw":
			if len(parts) < 2 {
				continue
			}
			p, err := parsePlayer(parts[1])
			if err != nil {
				fmt.Println(err)
				continue
			}
			_ = e.OfferDraw(id, p)

		case "move":
			if len(parts) < 5 {
				fmt.Println("usage: move <player> <piece_id> <row> <col>")
				continue
			}
			p, err := parsePlayer(parts[1])
			if err != nil {
				fmt.Println(err)
				continue
			}
			row, rerr := strconv.Atoi(parts[3])
			col, cerr := strconv.Atoi(parts[4])
			if rerr != nil || cerr != nil {
				fmt.Println("invalid row/col")
				continue
			}
			outcome, err := e.SubmitMove(id, p, parts[2], board.NewSquare(row, col))
			if err != nil {
				fmt.Println(err)
				continue
			}
			if !outcome.Admit {
				fmt.Printf("rejected: %v\n", outcome.Reason)
			}

		default:
			fmt.Println("unrecognized command")
		}
	}
}

func printEvents(events <-chan game.Event) {
	for ev := range events {
		switch {
		case ev.Started != nil:
			fmt.Printf("[started] tick=%v\n", ev.Started.Tick)
		case ev.MoveRejected != nil:
			fmt.Printf("[rejected] piece=%v reason=%v\n", ev.MoveRejected.PieceID, ev.MoveRejected.Reason)
		case ev.Update != nil:
			fmt.Printf("[update] tick=%v pieces=%v moves=%v\n", ev.Update.CurrentTick, len(ev.Update.Pieces), len(ev.Update.ActiveMoves))
		case ev.Ended != nil:
			fmt.Printf("[ended] winner=%v(%v) reason=%v\n", ev.Ended.Winner, ev.Ended.HasWinner, ev.Ended.Reason)
			return
		}
	}
}

func parsePlayer(s string) (board.Player, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 4 {
		return 0, fmt.Errorf("invalid player %q (want 1-4)", s)
	}
	return board.Player(n - 1), nil
}
