package api

import (
	"errors"
	"net/http"
	"testing"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/service"
	httptransport "checkers/internal/transport/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/go-cmp/cmp"
)

// fiberTransport serves client requests from an in-process Fiber app
type fiberTransport struct {
	app *fiber.App
}

func (t fiberTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.app.Test(req, 3000)
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	svc := service.New(nil, []byte("client-test-secret-0123456789abcdef"))
	t.Cleanup(func() { svc.Shutdown() })

	c := New("http://checkersd.test/")
	c.HTTPClient = &http.Client{Transport: fiberTransport{app: httptransport.NewFiberApp(svc, false)}}
	return c
}

func TestClientGame(t *testing.T) {
	c := newTestClient(t)

	health, err := c.Health()
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if health.Status != "healthy" {
		t.Errorf("health status = %q", health.Status)
	}

	created, err := c.CreateGame(&core.CreateGameRequest{})
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	c.SetToken(created.Tokens.Player2)
	seat, err := c.Seat(created.GameID)
	if err != nil {
		t.Fatalf("Seat: %v", err)
	}
	if core.Player(seat.Seat) != core.Player2 {
		t.Errorf("Player 2 token resolved to seat %d", seat.Seat)
	}

	c.SetToken(created.Tokens.Player1)
	moved, err := c.MakeMove(created.GameID, "b6 a5")
	if err != nil {
		t.Fatalf("MakeMove: %v", err)
	}
	if moved.MoveCount != 1 || moved.Turn != "Player 2" {
		t.Errorf("after move: count=%d turn=%q", moved.MoveCount, moved.Turn)
	}

	// Stale count returns at once
	polled, err := c.WaitForMove(created.GameID, 0)
	if err != nil {
		t.Fatalf("WaitForMove: %v", err)
	}
	if diff := cmp.Diff(moved, polled); diff != "" {
		t.Errorf("polled game mismatch (-moved +polled):\n%s", diff)
	}

	b, err := c.GetBoard(created.GameID)
	if err != nil {
		t.Fatalf("GetBoard: %v", err)
	}
	if b.Layout == board.StartingLayout {
		t.Error("board unchanged after move")
	}

	if err := c.DeleteGame(created.GameID); err != nil {
		t.Fatalf("DeleteGame: %v", err)
	}
}

func TestClientErrors(t *testing.T) {
	c := newTestClient(t)

	created, err := c.CreateGame(&core.CreateGameRequest{})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		token   string
		move    string
		wantErr error
	}{
		{"malformed", created.Tokens.Player1, "b6 zz", core.ErrMalformedCoordinate},
		{"illegal", created.Tokens.Player1, "b6 b5", core.ErrIllegalMove},
		{"out of turn", created.Tokens.Player2, "a3 b4", core.ErrNotYourTurn},
		{"no seat", "", "b6 a5", core.ErrInvalidSeatToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.SetToken(tt.token)
			_, err := c.MakeMove(created.GameID, tt.move)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			var apiErr *APIError
			if !errors.As(err, &apiErr) || apiErr.Status < 400 {
				t.Errorf("error %v is not an APIError", err)
			}
		})
	}

	_, err = c.GetGame("00000000-0000-0000-0000-000000000000")
	if !errors.Is(err, core.ErrGameNotFound) {
		t.Errorf("missing game error = %v", err)
	}
}
