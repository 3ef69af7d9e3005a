package core

import "fmt"

// Player identifies a side. PlayerNone is only ever a "nobody" answer,
// never the owner of a piece.
type Player byte

const (
	PlayerNone Player = iota
	Player1
	Player2
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "-"
	}
}

// Tag is the short board label for the player, "P1" or "P2"
func (p Player) Tag() string {
	if p.Valid() {
		return fmt.Sprintf("P%d", p)
	}
	return ".."
}

func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

func Opponent(p Player) Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return PlayerNone
	}
}

// ParsePlayer is the inverse of Player.String, PlayerNone for anything else
func ParsePlayer(s string) Player {
	switch s {
	case Player1.String():
		return Player1
	case Player2.String():
		return Player2
	default:
		return PlayerNone
	}
}
