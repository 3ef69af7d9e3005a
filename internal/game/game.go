package game

import (
	"fmt"

	"checkers/internal/board"
	"checkers/internal/core"
)

// Snapshot is a read-only copy of a game at one point in time
type Snapshot struct {
	Board      *board.Board
	Turn       core.Player // Whose turn it is at this position
	State      core.State
	MoveCount  int
	LastResult *MoveResult
}

// MoveResult tracks the outcome of a move
type MoveResult struct {
	Move      board.Move
	Player    core.Player
	Promoted  bool
	GameState core.State
}

// Game owns one board and the turn order played on it
type Game struct {
	board      *board.Board
	turn       core.Player
	state      core.State
	moveCount  int
	lastResult *MoveResult
}

// New starts a game from the opening position with Player 1 to move
func New() *Game {
	return &Game{
		board: board.New(),
		turn:  core.Player1,
		state: core.StateOngoing,
	}
}

// FromLayout starts a game from a layout string with turn to move
func FromLayout(layout string, turn core.Player) (*Game, error) {
	if !turn.Valid() {
		return nil, fmt.Errorf("invalid starting player: %s", turn)
	}
	b, err := board.ParseLayout(layout)
	if err != nil {
		return nil, err
	}

	g := &Game{board: b, turn: turn}
	g.state = g.evaluate()
	return g, nil
}

// Board returns a copy of the current board
func (g *Game) Board() *board.Board {
	return g.board.Clone()
}

func (g *Game) Turn() core.Player {
	return g.turn
}

func (g *Game) State() core.State {
	return g.state
}

func (g *Game) IsOver() bool {
	return g.state != core.StateOngoing
}

func (g *Game) MoveCount() int {
	return g.moveCount
}

func (g *Game) LastResult() *MoveResult {
	return g.lastResult
}

// Winner returns the winning player once the game is over, PlayerNone before
func (g *Game) Winner() core.Player {
	return g.state.Winner()
}

// Play moves for the player whose turn it is. A rejected move does not
// consume the turn.
func (g *Game) Play(m board.Move) (*MoveResult, error) {
	if g.IsOver() {
		return nil, core.ErrGameOver
	}

	mover := g.turn
	promoted, err := g.board.TryMove(m, mover)
	if err != nil {
		return nil, err
	}

	g.moveCount++
	g.turn = core.Opponent(mover)
	g.state = g.evaluate()

	g.lastResult = &MoveResult{
		Move:      m,
		Player:    mover,
		Promoted:  promoted,
		GameState: g.state,
	}
	return g.lastResult, nil
}

// PlayLine parses a "<from> <to>" line and plays it
func (g *Game) PlayLine(line string) (*MoveResult, error) {
	m, err := board.ParseMove(line)
	if err != nil {
		return nil, err
	}
	return g.Play(m)
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Board:     g.Board(),
		Turn:      g.turn,
		State:     g.state,
		MoveCount: g.moveCount,
	}
	if g.lastResult != nil {
		r := *g.lastResult
		s.LastResult = &r
	}
	return s
}

// evaluate decides the end state from the board. The side that still has
// pieces wins; if neither does, the win goes to the opponent of the side
// to move, i.e. whoever moved last.
func (g *Game) evaluate() core.State {
	if !g.board.IsGameOver() {
		return core.StateOngoing
	}

	p1 := g.board.PieceCount(core.Player1)
	p2 := g.board.PieceCount(core.Player2)
	switch {
	case p1 > 0:
		return core.StatePlayer1Wins
	case p2 > 0:
		return core.StatePlayer2Wins
	default:
		return core.WinState(core.Opponent(g.turn))
	}
}
