package board

import (
	"testing"

	"checkers/internal/core"
)

func TestParseLayoutRoundTrip(t *testing.T) {
	layouts := []string{
		StartingLayout,
		"......../......../......../......../......../......../......../........",
		".X....../......../...o..../......../....x.../......../......../O.......",
	}
	for _, layout := range layouts {
		b, err := ParseLayout(layout)
		if err != nil {
			t.Fatalf("ParseLayout(%q): %v", layout, err)
		}
		if got := b.Layout(); got != layout {
			t.Errorf("Layout() = %q, want %q", got, layout)
		}
	}
}

func TestParseLayoutPieces(t *testing.T) {
	b, err := ParseLayout(".X....../......../...o..../......../....x.../......../......../O.......")
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}

	want := map[Coord]Piece{
		{0, 1}: {Owner: core.Player1, Rank: King},
		{2, 3}: {Owner: core.Player2, Rank: Regular},
		{4, 4}: {Owner: core.Player1, Rank: Regular},
		{7, 0}: {Owner: core.Player2, Rank: King},
	}
	for c, p := range want {
		got, ok := b.At(c).Occupant()
		if !ok || got != p {
			t.Errorf("At(%v) = %+v, %v; want %+v", c, got, ok, p)
		}
	}
	if n := b.PieceCount(core.Player1) + b.PieceCount(core.Player2); n != len(want) {
		t.Errorf("board has %d pieces, want %d", n, len(want))
	}
}

func TestParseLayoutErrors(t *testing.T) {
	for _, layout := range []string{
		"",
		"......../......../......../......../......../......../........",
		"......../......../......../......../......../......../......../.........",
		"......../......../......../......../......../......../......../.......k",
		"......../......../......../......../......../......../......../......../........",
	} {
		if _, err := ParseLayout(layout); err == nil {
			t.Errorf("ParseLayout(%q) succeeded, want error", layout)
		}
	}
}
