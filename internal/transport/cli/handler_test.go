package cli

import (
	"bytes"
	"strings"
	"testing"

	"checkers/internal/board"
	"checkers/internal/cli"
	"checkers/internal/core"
	"checkers/internal/game"
)

func runSession(t *testing.T, g *game.Game, input string) (core.Player, string) {
	t.Helper()
	var out bytes.Buffer
	view := cli.New(cli.NewScannerReader(strings.NewReader(input)), &out)
	winner := New(g, view).Run()
	return winner, out.String()
}

func TestRunOpeningScenario(t *testing.T) {
	g := game.New()
	// c3 and a3 hold Player 2 pieces in the opening position
	winner, out := runSession(t, g, "c3 b4\na3 b4\nb6 a5\n")

	if winner != core.PlayerNone {
		t.Fatalf("expected no winner, got %s", winner)
	}
	if got := strings.Count(out, "Invalid move. Try again."); got != 2 {
		t.Errorf("got %d invalid-move notices, want 2\n%s", got, out)
	}
	if got := strings.Count(out, "Player 1's turn:"); got != 3 {
		t.Errorf("Player 1 prompted %d times, want 3", got)
	}
	if !strings.Contains(out, "Player 2's turn:") {
		t.Error("turn did not pass to Player 2")
	}
	if g.Turn() != core.Player2 || g.MoveCount() != 1 {
		t.Fatalf("turn %s, moves %d", g.Turn(), g.MoveCount())
	}
}

func TestRunPlayer2Answers(t *testing.T) {
	g := game.New()
	_, out := runSession(t, g, "b6 a5\na3 b4\n")

	if strings.Contains(out, "Invalid") {
		t.Errorf("unexpected rejection:\n%s", out)
	}
	if g.Turn() != core.Player1 || g.MoveCount() != 2 {
		t.Fatalf("turn %s, moves %d", g.Turn(), g.MoveCount())
	}
	p, ok := g.Board().At(board.Coord{Row: 4, Col: 1}).Occupant()
	if !ok || p.Owner != core.Player2 {
		t.Errorf("b4 = %+v, %v; want Player 2's piece", p, ok)
	}
}

func TestRunMalformedInputKeepsTurn(t *testing.T) {
	g := game.New()
	_, out := runSession(t, g, "a3\nz9 b4\n\nb6a5\n")

	if got := strings.Count(out, "Invalid move format."); got != 4 {
		t.Errorf("got %d invalid-format notices, want 4\n%s", got, out)
	}
	if g.Turn() != core.Player1 || g.MoveCount() != 0 {
		t.Fatalf("malformed input consumed a turn: %s, %d", g.Turn(), g.MoveCount())
	}
}

func TestRunGameOver(t *testing.T) {
	g, err := game.FromLayout(".x....../......../......../......../......../......../......../........", core.Player2)
	if err != nil {
		t.Fatal(err)
	}
	winner, out := runSession(t, g, "")

	if winner != core.Player1 {
		t.Fatalf("winner = %s, want Player 1", winner)
	}
	if !strings.HasSuffix(out, "Game Over!\nPlayer 1 wins!\n") {
		t.Errorf("missing game over announcement:\n%s", out)
	}
	if strings.Contains(out, "turn:") {
		t.Error("prompted for a move in a finished game")
	}
}

func TestRunCommands(t *testing.T) {
	g := game.New()
	_, out := runSession(t, g, "help\ncolor\ncolor neon\ncolor gray\nverbose\nb6 a5\nquit\nb4 c5\n")

	for _, want := range []string{
		"Commands:",
		"Usage: color",
		"Error: invalid theme: neon",
		"Color theme set to: gray",
		"Verbose mode: true",
		"Player 1: b6 a5",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if g.MoveCount() != 1 {
		t.Errorf("input after quit was processed: %d moves", g.MoveCount())
	}
}
