package cli

import (
	"errors"
	"fmt"

	"checkers/internal/board"
	"checkers/internal/cli"
	"checkers/internal/core"
	"checkers/internal/game"
	"checkers/internal/transport"
)

const movePrompt = "> "

// CLIHandler runs one console game: it owns the game and drives the view
type CLIHandler struct {
	game *game.Game
	view transport.View
}

func New(g *game.Game, view transport.View) *CLIHandler {
	return &CLIHandler{
		game: g,
		view: view,
	}
}

// Run plays until the game is over or the player quits. It returns the
// winner, PlayerNone if the session ended early.
func (h *CLIHandler) Run() core.Player {
	for !h.game.IsOver() {
		h.view.DisplayBoard(h.game.Board())
		h.view.ShowTurn(h.game.Turn())

		// Blocks until a line arrives
		cmd, err := h.view.GetCommand(movePrompt)
		if err != nil {
			h.view.ShowError(err)
			return core.PlayerNone
		}

		if !h.ProcessCommand(cmd) {
			return core.PlayerNone
		}
	}

	h.view.DisplayBoard(h.game.Board())
	h.view.ShowGameOver(h.game.Winner())
	return h.game.Winner()
}

// ProcessCommand handles one command, returns false to exit
func (h *CLIHandler) ProcessCommand(cmd *cli.Command) bool {
	switch cmd.Type {
	case cli.CmdQuit:
		return false

	case cli.CmdNone:
		h.view.ShowInvalidFormat(fmt.Errorf("%w: empty input", core.ErrMalformedCoordinate))

	case cli.CmdMove:
		h.handleMove(cmd.Raw)

	default:
		processViewCommand(h.view, cmd)
	}

	return true
}

func (h *CLIHandler) handleMove(line string) {
	m, err := board.ParseMove(line)
	if err != nil {
		h.view.ShowInvalidFormat(err)
		return
	}

	result, err := h.game.Play(m)
	switch {
	case errors.Is(err, core.ErrIllegalMove):
		h.view.ShowInvalidMove(err)
	case err != nil:
		h.view.ShowError(err)
	default:
		h.view.ShowMove(result.Player, result.Move, result.Promoted)
	}
}

// processViewCommand handles the commands that only change the view
func processViewCommand(view transport.View, cmd *cli.Command) {
	switch cmd.Type {
	case cli.CmdColor:
		if len(cmd.Args) < 1 {
			view.ShowMessage("Usage: color <off|brown|green|gray>")
			return
		}
		theme := cli.ColorTheme(cmd.Args[0])
		if err := view.SetTheme(theme); err != nil {
			view.ShowError(err)
		} else {
			view.ShowMessage(fmt.Sprintf("Color theme set to: %s", theme))
		}

	case cli.CmdVerbose:
		verbose := view.ToggleVerbose()
		view.ShowMessage(fmt.Sprintf("Verbose mode: %t", verbose))

	case cli.CmdHelp:
		view.ShowHelp()
	}
}
