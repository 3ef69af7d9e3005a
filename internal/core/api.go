package core

// Request types

type CreateGameRequest struct {
	Layout string `json:"layout,omitempty" validate:"omitempty,len=71"` // 8 ranks of 8 plus 7 separators
	Turn   int    `json:"turn,omitempty" validate:"omitempty,oneof=1 2"` // Side to move, 1 by default
}

type MoveRequest struct {
	Move string `json:"move" validate:"required,min=5,max=16"` // "a3 b4"
}

// Response types

type GameResponse struct {
	GameID    string      `json:"gameId"`
	Layout    string      `json:"layout"`
	Board     string      `json:"board"`
	Turn      string      `json:"turn"`  // "Player 1" or "Player 2"
	State     string      `json:"state"` // "ongoing", "player 1 wins", ...
	Winner    string      `json:"winner,omitempty"`
	MoveCount int         `json:"moveCount"`
	LastMove  *MoveInfo   `json:"lastMove,omitempty"`
	Tokens    *SeatTokens `json:"tokens,omitempty"` // Only on creation
}

type MoveInfo struct {
	Move     string `json:"move"`
	Player   string `json:"player"`
	Promoted bool   `json:"promoted,omitempty"`
}

// SeatTokens are the bearer tokens each side presents to move
type SeatTokens struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

// SeatResponse tells a token holder which side they play
type SeatResponse struct {
	GameID string `json:"gameId"`
	Seat   int    `json:"seat"`   // 1 or 2
	Player string `json:"player"` // "Player 1" or "Player 2"
}

type BoardResponse struct {
	Layout string `json:"layout"`
	Board  string `json:"board"` // ASCII representation
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
