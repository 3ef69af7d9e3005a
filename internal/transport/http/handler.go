package http

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"checkers/internal/core"
	"checkers/internal/game"
	"checkers/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const rateLimitRate = 10 // req/sec

// HTTPHandler serves the game API over a service
type HTTPHandler struct {
	svc *service.Service
}

func NewHTTPHandler(svc *service.Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

func NewFiberApp(svc *service.Service, devMode bool) *fiber.App {
	h := NewHTTPHandler(svc)

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: service.WaitTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	})

	// Global middleware (order matters)
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Health check (no rate limit)
	app.Get("/health", h.Health)

	api := app.Group("/api/v1")

	maxReq := rateLimitRate
	if devMode {
		maxReq = rateLimitRate * 2
	}
	api.Use(limiter.New(limiter.Config{
		Max:        maxReq,
		Expiration: 1 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			if xff := c.Get("X-Forwarded-For"); xff != "" {
				if idx := strings.Index(xff, ","); idx != -1 {
					return strings.TrimSpace(xff[:idx])
				}
				return xff
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(core.ErrorResponse{
				Error:   "rate limit exceeded",
				Code:    core.ErrCodeRateLimitExceeded,
				Details: fmt.Sprintf("%d requests per second allowed", maxReq),
			})
		},
	}))

	api.Use(contentTypeValidator)
	api.Use(validationMiddleware)

	api.Post("/games", h.CreateGame)
	api.Get("/games/:gameId", h.GetGame)
	api.Get("/games/:gameId/board", h.GetBoard)
	api.Get("/games/:gameId/seat", SeatRequired(svc.ValidateSeatToken), h.GetSeat)
	api.Post("/games/:gameId/moves", SeatRequired(svc.ValidateSeatToken), h.MakeMove)
	api.Delete("/games/:gameId", h.DeleteGame)

	return app
}

// customErrorHandler provides consistent error responses
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	response := core.ErrorResponse{
		Error: "internal server error",
		Code:  core.ErrCodeInternalError,
	}

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		response.Error = e.Message

		switch code {
		case fiber.StatusNotFound:
			response.Code = core.ErrCodeGameNotFound
		case fiber.StatusBadRequest:
			response.Code = core.ErrCodeInvalidRequest
		case fiber.StatusTooManyRequests:
			response.Code = core.ErrCodeRateLimitExceeded
		}
	}

	return c.Status(code).JSON(response)
}

// errorStatus maps service and game errors onto HTTP status and wire code
func errorStatus(err error) (int, core.ErrorResponse) {
	resp := core.ErrorResponse{Error: err.Error()}
	status := fiber.StatusBadRequest

	switch {
	case errors.Is(err, core.ErrGameNotFound):
		status, resp.Code = fiber.StatusNotFound, core.ErrCodeGameNotFound
	case errors.Is(err, core.ErrMalformedCoordinate):
		resp.Code = core.ErrCodeInvalidFormat
	case errors.Is(err, core.ErrIllegalMove):
		resp.Code = core.ErrCodeInvalidMove
	case errors.Is(err, core.ErrNotYourTurn):
		status, resp.Code = fiber.StatusForbidden, core.ErrCodeNotYourTurn
	case errors.Is(err, core.ErrGameOver):
		status, resp.Code = fiber.StatusConflict, core.ErrCodeGameOver
	case errors.Is(err, core.ErrTooManyGames):
		status, resp.Code = fiber.StatusServiceUnavailable, core.ErrCodeResourceLimit
	default:
		resp.Code = core.ErrCodeInvalidRequest
	}
	return status, resp
}

func invalidGameID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
		Error:   "invalid game ID format",
		Code:    core.ErrCodeInvalidRequest,
		Details: "game ID must be a valid UUID",
	})
}

// validatedBody returns the body parsed by validationMiddleware
func validatedBody[T any](c *fiber.Ctx) (*T, error) {
	validated, ok := c.Locals("validated").(bool)
	if !ok || !validated {
		return nil, c.Status(fiber.StatusInternalServerError).JSON(core.ErrorResponse{
			Error: "validation bypass detected",
			Code:  core.ErrCodeInternalError,
		})
	}
	body, ok := c.Locals("validatedBody").(*T)
	if !ok {
		return nil, c.Status(fiber.StatusInternalServerError).JSON(core.ErrorResponse{
			Error: "validation data missing",
			Code:  core.ErrCodeInternalError,
		})
	}
	return body, nil
}

func gameResponse(gameID string, snap game.Snapshot) core.GameResponse {
	resp := core.GameResponse{
		GameID:    gameID,
		Layout:    snap.Board.Layout(),
		Board:     snap.Board.String(),
		Turn:      snap.Turn.String(),
		State:     snap.State.String(),
		MoveCount: snap.MoveCount,
	}
	if w := snap.State.Winner(); w != core.PlayerNone {
		resp.Winner = w.String()
	}
	if r := snap.LastResult; r != nil {
		resp.LastMove = &core.MoveInfo{
			Move:     r.Move.String(),
			Player:   r.Player.String(),
			Promoted: r.Promoted,
		}
	}
	return resp
}

// Health check endpoint with storage status
func (h *HTTPHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"time":    time.Now().Unix(),
		"storage": h.svc.GetStorageHealth(),
	})
}

// CreateGame starts a game and hands out one seat token per player
func (h *HTTPHandler) CreateGame(c *fiber.Ctx) error {
	req, err := validatedBody[core.CreateGameRequest](c)
	if req == nil {
		return err
	}

	gameID := h.svc.GenerateGameID()
	snap, err := h.svc.CreateGame(gameID, req.Layout, core.Player(req.Turn))
	if err != nil {
		status, resp := errorStatus(err)
		if resp.Code == core.ErrCodeInvalidRequest {
			resp.Error, resp.Details = "invalid layout", err.Error()
		}
		return c.Status(status).JSON(resp)
	}

	tokens, err := h.svc.IssueSeatTokens(gameID)
	if err != nil {
		h.svc.DeleteGame(gameID)
		return c.Status(fiber.StatusInternalServerError).JSON(core.ErrorResponse{
			Error: "failed to issue seat tokens",
			Code:  core.ErrCodeInternalError,
		})
	}

	resp := gameResponse(gameID, snap)
	resp.Tokens = &tokens
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetGame returns the game state. With wait=true and the caller's last known
// moveCount it long-polls until the next move, or until timeout seconds
// (at most WaitTimeout) pass.
func (h *HTTPHandler) GetGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	snap, err := h.svc.GetGame(gameID)
	if err != nil {
		status, resp := errorStatus(err)
		return c.Status(status).JSON(resp)
	}

	if c.Query("wait") != "true" {
		return c.JSON(gameResponse(gameID, snap))
	}

	moveCount, err := strconv.Atoi(c.Query("moveCount", "-1"))
	if err != nil || moveCount != snap.MoveCount || snap.State != core.StateOngoing {
		return c.JSON(gameResponse(gameID, snap))
	}

	wait := service.WaitTimeout
	if secs, err := strconv.Atoi(c.Query("timeout")); err == nil && secs > 0 {
		wait = min(wait, time.Duration(secs)*time.Second)
	}

	// The fasthttp context ends on server shutdown but not on client
	// disconnect, the deadline bounds an abandoned wait
	ctx, cancel := context.WithTimeout(c.Context(), wait)
	defer cancel()
	<-h.svc.RegisterWait(ctx, gameID, moveCount)

	// Game might have been deleted while waiting
	snap, err = h.svc.GetGame(gameID)
	if err != nil {
		status, resp := errorStatus(err)
		return c.Status(status).JSON(resp)
	}
	return c.JSON(gameResponse(gameID, snap))
}

// GetBoard returns the layout and ASCII board
func (h *HTTPHandler) GetBoard(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	snap, err := h.svc.GetGame(gameID)
	if err != nil {
		status, resp := errorStatus(err)
		return c.Status(status).JSON(resp)
	}

	return c.JSON(core.BoardResponse{
		Layout: snap.Board.Layout(),
		Board:  snap.Board.String(),
	})
}

// GetSeat reports the side the bearer token plays in this game
func (h *HTTPHandler) GetSeat(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	if _, err := h.svc.GetGame(gameID); err != nil {
		status, resp := errorStatus(err)
		return c.Status(status).JSON(resp)
	}

	seat, _ := c.Locals("seat").(core.Player)
	return c.JSON(core.SeatResponse{
		GameID: gameID,
		Seat:   int(seat),
		Player: seat.String(),
	})
}

// MakeMove plays a move for the seat the bearer token grants
func (h *HTTPHandler) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	req, err := validatedBody[core.MoveRequest](c)
	if req == nil {
		return err
	}

	seat, _ := c.Locals("seat").(core.Player)

	snap, err := h.svc.MakeMove(gameID, seat, req.Move)
	if err != nil {
		status, resp := errorStatus(err)
		return c.Status(status).JSON(resp)
	}

	return c.JSON(gameResponse(gameID, snap))
}

// DeleteGame ends and removes a game
func (h *HTTPHandler) DeleteGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	if err := h.svc.DeleteGame(gameID); err != nil {
		status, resp := errorStatus(err)
		return c.Status(status).JSON(resp)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
