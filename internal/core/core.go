package core

type State int

const (
	StateOngoing State = iota
	StatePlayer1Wins
	StatePlayer2Wins
)

func (s State) String() string {
	switch s {
	case StatePlayer1Wins:
		return "player 1 wins"
	case StatePlayer2Wins:
		return "player 2 wins"
	case StateOngoing:
		return "ongoing"
	default:
		return "unknown"
	}
}

// Winner returns the player a finished state credits, PlayerNone while ongoing
func (s State) Winner() Player {
	switch s {
	case StatePlayer1Wins:
		return Player1
	case StatePlayer2Wins:
		return Player2
	default:
		return PlayerNone
	}
}

// WinState maps a winning player to the matching end state
func WinState(p Player) State {
	switch p {
	case Player1:
		return StatePlayer1Wins
	case Player2:
		return StatePlayer2Wins
	default:
		return StateOngoing
	}
}
