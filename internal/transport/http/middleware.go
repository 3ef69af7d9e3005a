package http

import (
	"strings"

	"checkers/internal/core"

	"github.com/gofiber/fiber/v2"
)

// SeatValidator resolves a seat token to the game and side it was issued for
type SeatValidator func(token string) (gameID string, seat core.Player, err error)

// SeatRequired enforces a seat token belonging to the game in the path
func SeatRequired(validateSeat SeatValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractBearerToken(c.Get("Authorization"))
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(core.ErrorResponse{
				Error: "missing seat token",
				Code:  core.ErrCodeUnauthorized,
			})
		}

		gameID, seat, err := validateSeat(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(core.ErrorResponse{
				Error: core.ErrInvalidSeatToken.Error(),
				Code:  core.ErrCodeUnauthorized,
			})
		}

		if gameID != c.Params("gameId") {
			return c.Status(fiber.StatusForbidden).JSON(core.ErrorResponse{
				Error:   "seat token belongs to another game",
				Code:    core.ErrCodeUnauthorized,
				Details: "game " + gameID,
			})
		}

		c.Locals("seat", seat)
		return c.Next()
	}
}

// extractBearerToken extracts the token from an Authorization header
func extractBearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
