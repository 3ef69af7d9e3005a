package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"checkers/internal/board"
	"checkers/internal/core"
)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdMove
	CmdColor
	CmdVerbose
	CmdHelp
	CmdQuit
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeBrown ColorTheme = "brown"
	ThemeGreen ColorTheme = "green"
	ThemeGray  ColorTheme = "gray"
)

type themeColors struct {
	lightBg string
	darkBg  string
	player1 string
	player2 string
	reset   string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeBrown: {
		lightBg: "\033[48;5;230m", // Beige
		darkBg:  "\033[48;5;94m",  // Brown
		player1: "\033[97m",
		player2: "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGreen: {
		lightBg: "\033[48;5;157m", // Light green
		darkBg:  "\033[48;5;22m",  // Dark green
		player1: "\033[97m",
		player2: "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGray: {
		lightBg: "\033[48;5;251m", // Light gray
		darkBg:  "\033[48;5;240m", // Dark gray
		player1: "\033[97m",
		player2: "\033[30m",
		reset:   "\033[0m",
	},
}

// CLI is the console view: it reads commands and writes the board and
// status messages
type CLI struct {
	input   LineReader
	output  io.Writer
	theme   ColorTheme
	verbose bool
}

func New(input LineReader, output io.Writer) *CLI {
	return &CLI{
		input:  input,
		output: output,
		theme:  ThemeOff,
	}
}

// GetCommand shows prompt and reads one command. End of input reads as quit.
func (c *CLI) GetCommand(prompt string) (*Command, error) {
	if p, ok := c.input.(prompter); ok {
		p.SetPrompt(prompt)
	} else {
		c.ShowPrompt(prompt)
	}

	line, err := c.input.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Command{Type: CmdQuit}, nil
		}
		return nil, err
	}

	input := strings.TrimSpace(line)
	if input == "" {
		return &Command{Type: CmdNone}, nil
	}
	return parseCommand(input), nil
}

func parseCommand(input string) *Command {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return &Command{Type: CmdNone}
	}

	switch parts[0] {
	case "color":
		return &Command{Type: CmdColor, Args: parts[1:]}
	case "verbose":
		return &Command{Type: CmdVerbose}
	case "help", "?":
		return &Command{Type: CmdHelp}
	case "quit", "exit":
		return &Command{Type: CmdQuit}
	default:
		// Anything else is a move attempt
		return &Command{Type: CmdMove, Args: parts, Raw: input}
	}
}

func (c *CLI) SetTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, brown, green, gray)", theme)
	}
	c.theme = theme
	return nil
}

func (c *CLI) ToggleVerbose() bool {
	c.verbose = !c.verbose
	return c.verbose
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(fmt.Sprintf("Error: %v", err))
}

func (c *CLI) ShowPrompt(prompt string) {
	fmt.Fprint(c.output, prompt)
}

func (c *CLI) DisplayBoard(b *board.Board) {
	theme := themes[c.theme]
	var sb strings.Builder

	sb.WriteString("\n   ")
	for f := 0; f < board.Size; f++ {
		sb.WriteString(fmt.Sprintf("  %c ", 'a'+f))
	}
	sb.WriteByte('\n')

	for r := 0; r < board.Size; r++ {
		sb.WriteString(fmt.Sprintf("%d  ", board.Size-r))
		for f := 0; f < board.Size; f++ {
			sq := b.At(board.Coord{Row: r, Col: f})
			if c.theme == ThemeOff {
				sb.WriteString(sq.Label())
				continue
			}

			bg := theme.lightBg
			if (r+f)%2 == 1 {
				bg = theme.darkBg
			}
			fg := ""
			if p, ok := sq.Occupant(); ok {
				fg = theme.player1
				if p.Owner == core.Player2 {
					fg = theme.player2
				}
			}
			sb.WriteString(bg + fg + sq.Label() + theme.reset)
		}
		sb.WriteString(fmt.Sprintf("  %d\n", board.Size-r))
	}

	sb.WriteString("   ")
	for f := 0; f < board.Size; f++ {
		sb.WriteString(fmt.Sprintf("  %c ", 'a'+f))
	}
	sb.WriteByte('\n')

	c.ShowMessage(sb.String())
}

func (c *CLI) ShowTurn(p core.Player) {
	c.ShowMessage(fmt.Sprintf("%s's turn:", p))
	c.ShowMessage("Enter your move (e.g., 'a3 b4'):")
}

func (c *CLI) ShowInvalidFormat(err error) {
	c.ShowMessage("Invalid move format.")
	if c.verbose {
		c.ShowError(err)
	}
}

func (c *CLI) ShowInvalidMove(err error) {
	c.ShowMessage("Invalid move. Try again.")
	if c.verbose {
		c.ShowError(err)
	}
}

func (c *CLI) ShowMove(p core.Player, m board.Move, promoted bool) {
	if !c.verbose {
		return
	}
	msg := fmt.Sprintf("%s: %s", p, m)
	if promoted {
		msg += " (king)"
	}
	c.ShowMessage(msg)
}

func (c *CLI) ShowGameOver(winner core.Player) {
	c.ShowMessage("Game Over!")
	c.ShowMessage(fmt.Sprintf("%s wins!", winner))
}

func (c *CLI) ShowHelp() {
	help := `Commands:
  <from> <to>      - Move a piece one diagonal step (e.g., a3 b4)
  color <theme>    - Set board color theme (off|brown|green|gray)
  verbose          - Toggle detailed move information
  quit/exit        - Exit the program
  help/?           - Show this help message

Player 1 starts on rows 8-6 and moves down the board,
Player 2 starts on rows 3-1 and moves up. A piece reaching
the far row becomes a king (K1/K2) and may step backwards.`

	c.ShowMessage(help)
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage("Welcome to Checkers!")
	c.ShowMessage("Enter moves as two squares, e.g. 'b6 a5'. Type 'help' for commands.")
	c.ShowMessage("")
}
