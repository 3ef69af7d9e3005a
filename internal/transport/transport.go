package transport

import (
	"checkers/internal/board"
	"checkers/internal/cli"
	"checkers/internal/core"
)

// View abstracts the console the game loop talks to
type View interface {
	GetCommand(prompt string) (*cli.Command, error)
	DisplayBoard(b *board.Board)
	ShowMessage(msg string)
	ShowError(err error)
	ShowTurn(p core.Player)
	ShowInvalidFormat(err error)
	ShowInvalidMove(err error)
	ShowMove(p core.Player, m board.Move, promoted bool)
	ShowGameOver(winner core.Player)
	ShowHelp()
	SetTheme(theme cli.ColorTheme) error
	ToggleVerbose() bool
}

var _ View = (*cli.CLI)(nil)
