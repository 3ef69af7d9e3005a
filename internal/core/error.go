package core

import "errors"

var (
	ErrMalformedCoordinate = errors.New("invalid move format")
	ErrIllegalMove         = errors.New("invalid move")
	ErrGameOver            = errors.New("game is over")
	ErrGameNotFound        = errors.New("game not found")
	ErrNotYourTurn         = errors.New("not your turn")
	ErrTooManyGames        = errors.New("game limit reached")
	ErrInvalidSeatToken    = errors.New("invalid or expired seat token")
)

// Error codes
const (
	ErrCodeGameNotFound      = "GAME_NOT_FOUND"
	ErrCodeInvalidMove       = "INVALID_MOVE"
	ErrCodeInvalidFormat     = "INVALID_FORMAT"
	ErrCodeNotYourTurn       = "NOT_YOUR_TURN"
	ErrCodeGameOver          = "GAME_OVER"
	ErrCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrCodeInvalidContent    = "INVALID_CONTENT_TYPE"
	ErrCodeInvalidRequest    = "INVALID_REQUEST"
	ErrCodeInternalError     = "INTERNAL_ERROR"
	ErrCodeUnauthorized      = "UNAUTHORIZED"
	ErrCodeResourceLimit     = "RESOURCE_LIMIT"
)
