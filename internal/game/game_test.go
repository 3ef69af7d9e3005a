package game

import (
	"errors"
	"testing"

	"checkers/internal/board"
	"checkers/internal/core"

	"github.com/google/go-cmp/cmp"
)

const (
	noPlayer2 = ".x.x.x.x/......../......../......../......../......../......../........"
	noPlayer1 = "......../......../......../......../......../o.o.o.o./......../........"
	noPieces  = "......../......../......../......../......../......../......../........"
)

// helper to apply a sequence of move lines
func playLines(t *testing.T, g *Game, lines ...string) {
	t.Helper()
	for i, line := range lines {
		if _, err := g.PlayLine(line); err != nil {
			t.Fatalf("move %d (%q) failed: %v", i, line, err)
		}
	}
}

func TestNewGameInitialState(t *testing.T) {
	g := New()
	if g.Turn() != core.Player1 {
		t.Fatalf("expected Player 1 to start, got %s", g.Turn())
	}
	if g.IsOver() || g.State() != core.StateOngoing {
		t.Fatalf("expected ongoing game, got %s", g.State())
	}
	if g.Winner() != core.PlayerNone {
		t.Fatalf("expected no winner, got %s", g.Winner())
	}
	if g.MoveCount() != 0 || g.LastResult() != nil {
		t.Fatalf("expected no moves, got %d", g.MoveCount())
	}
	if diff := cmp.Diff(board.StartingLayout, g.Board().Layout()); diff != "" {
		t.Fatalf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestPlaySwapsTurn(t *testing.T) {
	g := New()
	res, err := g.PlayLine("b6 a5")
	if err != nil {
		t.Fatalf("b6 a5: %v", err)
	}
	want := &MoveResult{
		Move:      board.Move{From: board.Coord{Row: 2, Col: 1}, To: board.Coord{Row: 3, Col: 0}},
		Player:    core.Player1,
		GameState: core.StateOngoing,
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
	if g.Turn() != core.Player2 {
		t.Fatalf("expected turn to pass to Player 2, got %s", g.Turn())
	}

	playLines(t, g, "a3 b4", "d6 e5", "b4 c5")
	if g.Turn() != core.Player1 || g.MoveCount() != 4 {
		t.Fatalf("after 4 moves: turn %s, count %d", g.Turn(), g.MoveCount())
	}
}

func TestRejectedMoveKeepsTurn(t *testing.T) {
	g := New()
	before := g.Board().Layout()

	for _, line := range []string{"c3 b4", "a3 b4", "b6 b5", "b6 c7"} {
		_, err := g.PlayLine(line)
		if !errors.Is(err, core.ErrIllegalMove) {
			t.Errorf("%q: expected ErrIllegalMove, got %v", line, err)
		}
	}
	if _, err := g.PlayLine("a3"); !errors.Is(err, core.ErrMalformedCoordinate) {
		t.Errorf("expected ErrMalformedCoordinate, got %v", err)
	}

	if g.Turn() != core.Player1 || g.MoveCount() != 0 {
		t.Fatalf("rejected moves consumed a turn: turn %s, count %d", g.Turn(), g.MoveCount())
	}
	if diff := cmp.Diff(before, g.Board().Layout()); diff != "" {
		t.Fatalf("board changed (-want +got):\n%s", diff)
	}
}

func TestPromotionReported(t *testing.T) {
	g, err := FromLayout("......../......../......../......../......../......../.x....../.......o", core.Player1)
	if err != nil {
		t.Fatalf("FromLayout: %v", err)
	}
	res, err := g.PlayLine("b2 a1")
	if err != nil {
		t.Fatalf("b2 a1: %v", err)
	}
	if !res.Promoted {
		t.Error("expected promotion")
	}
	if got := g.Board().Layout(); got != "......../......../......../......../......../......../......../X......o" {
		t.Errorf("layout after promotion = %q", got)
	}
}

func TestFromLayoutGameOver(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		turn   core.Player
		state  core.State
	}{
		{"player 2 wiped out", noPlayer2, core.Player2, core.StatePlayer1Wins},
		{"player 1 wiped out", noPlayer1, core.Player1, core.StatePlayer2Wins},
		{"empty board, player 1 to move", noPieces, core.Player1, core.StatePlayer2Wins},
		{"empty board, player 2 to move", noPieces, core.Player2, core.StatePlayer1Wins},
		{"opening", board.StartingLayout, core.Player2, core.StateOngoing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := FromLayout(tt.layout, tt.turn)
			if err != nil {
				t.Fatalf("FromLayout: %v", err)
			}
			if g.State() != tt.state {
				t.Errorf("state = %s, want %s", g.State(), tt.state)
			}
			if g.Winner() != tt.state.Winner() {
				t.Errorf("winner = %s, want %s", g.Winner(), tt.state.Winner())
			}
		})
	}
}

func TestPlayAfterGameOver(t *testing.T) {
	g, err := FromLayout(noPlayer2, core.Player1)
	if err != nil {
		t.Fatalf("FromLayout: %v", err)
	}
	if _, err := g.PlayLine("b8 a7"); !errors.Is(err, core.ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
}

func TestFromLayoutErrors(t *testing.T) {
	if _, err := FromLayout("bogus", core.Player1); err == nil {
		t.Error("expected layout error")
	}
	if _, err := FromLayout(board.StartingLayout, core.PlayerNone); err == nil {
		t.Error("expected starting player error")
	}
}

func TestSnapshotIsolated(t *testing.T) {
	g := New()
	playLines(t, g, "b6 a5")
	snap := g.Snapshot()

	playLines(t, g, "a3 b4")
	if snap.Turn != core.Player2 || snap.MoveCount != 1 {
		t.Fatalf("snapshot changed: turn %s, count %d", snap.Turn, snap.MoveCount)
	}
	if !snap.Board.At(board.Coord{Row: 4, Col: 1}).IsEmpty() {
		t.Fatal("snapshot board shares state with the game")
	}
	if snap.LastResult == nil || snap.LastResult.Player != core.Player1 {
		t.Fatalf("snapshot last result = %+v", snap.LastResult)
	}
}
