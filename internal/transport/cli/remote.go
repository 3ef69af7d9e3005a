package cli

import (
	"errors"
	"fmt"

	"checkers/internal/board"
	"checkers/internal/cli"
	"checkers/internal/core"
	"checkers/internal/transport"
)

// RemoteGame is the part of the daemon API a seat needs to play
type RemoteGame interface {
	GetGame(gameID string) (*core.GameResponse, error)
	WaitForMove(gameID string, moveCount int) (*core.GameResponse, error)
	MakeMove(gameID, move string) (*core.GameResponse, error)
}

// RemoteHandler plays one seat of a daemon-hosted game from the console
type RemoteHandler struct {
	api    RemoteGame
	view   transport.View
	gameID string
	seat   core.Player
}

func NewRemote(api RemoteGame, view transport.View, gameID string, seat core.Player) *RemoteHandler {
	return &RemoteHandler{
		api:    api,
		view:   view,
		gameID: gameID,
		seat:   seat,
	}
}

// Run plays the seat until the game ends or the player quits. It returns
// the winner, PlayerNone if the session ended early.
func (h *RemoteHandler) Run() (core.Player, error) {
	state, err := h.api.GetGame(h.gameID)
	if err != nil {
		return core.PlayerNone, err
	}

	waitingOn := -1 // Move count already announced as waiting
	for state.State == core.StateOngoing.String() {
		if core.ParsePlayer(state.Turn) != h.seat {
			if waitingOn != state.MoveCount {
				if err := h.display(state); err != nil {
					return core.PlayerNone, err
				}
				h.view.ShowMessage(fmt.Sprintf("Waiting for %s...", state.Turn))
				waitingOn = state.MoveCount
			}
			if state, err = h.api.WaitForMove(h.gameID, state.MoveCount); err != nil {
				return core.PlayerNone, err
			}
			h.showLastMove(state)
			continue
		}

		if err := h.display(state); err != nil {
			return core.PlayerNone, err
		}
		h.view.ShowTurn(h.seat)

		cmd, err := h.view.GetCommand(movePrompt)
		if err != nil {
			return core.PlayerNone, err
		}

		switch cmd.Type {
		case cli.CmdQuit:
			return core.PlayerNone, nil
		case cli.CmdNone:
			h.view.ShowInvalidFormat(fmt.Errorf("%w: empty input", core.ErrMalformedCoordinate))
		case cli.CmdMove:
			if next, ok := h.submit(cmd.Raw); ok {
				state = next
				h.showLastMove(state)
			} else if state, err = h.api.GetGame(h.gameID); err != nil {
				return core.PlayerNone, err
			}
		default:
			processViewCommand(h.view, cmd)
		}
	}

	if err := h.display(state); err != nil {
		return core.PlayerNone, err
	}
	winner := core.ParsePlayer(state.Winner)
	h.view.ShowGameOver(winner)
	return winner, nil
}

// submit sends a move, reporting rejections the way the local game does
func (h *RemoteHandler) submit(line string) (*core.GameResponse, bool) {
	// Parse locally first so malformed input never leaves the console
	if _, err := board.ParseMove(line); err != nil {
		h.view.ShowInvalidFormat(err)
		return nil, false
	}

	next, err := h.api.MakeMove(h.gameID, line)
	switch {
	case errors.Is(err, core.ErrMalformedCoordinate):
		h.view.ShowInvalidFormat(err)
	case errors.Is(err, core.ErrIllegalMove):
		h.view.ShowInvalidMove(err)
	case err != nil:
		h.view.ShowError(err)
	default:
		return next, true
	}
	return nil, false
}

func (h *RemoteHandler) display(state *core.GameResponse) error {
	b, err := board.ParseLayout(state.Layout)
	if err != nil {
		return fmt.Errorf("server sent bad layout: %w", err)
	}
	h.view.DisplayBoard(b)
	return nil
}

func (h *RemoteHandler) showLastMove(state *core.GameResponse) {
	last := state.LastMove
	if last == nil {
		return
	}
	m, err := board.ParseMove(last.Move)
	if err != nil {
		return
	}
	h.view.ShowMove(core.ParsePlayer(last.Player), m, last.Promoted)
}
