package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"checkers/internal/core"
)

// Client talks to a checkersd REST API on behalf of one seat
type Client struct {
	BaseURL    string
	SeatToken  string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			// Longer than the server's long-poll window
			Timeout: 35 * time.Second,
		},
	}
}

func (c *Client) SetToken(token string) {
	c.SeatToken = token
}

// APIError is a non-2xx reply. It unwraps to the matching core sentinel so
// callers can use errors.Is as they would against a local game.
type APIError struct {
	Status   int
	Response core.ErrorResponse
}

func (e *APIError) Error() string {
	if e.Response.Details != "" {
		return fmt.Sprintf("%s (%s): %s", e.Response.Error, e.Response.Code, e.Response.Details)
	}
	return fmt.Sprintf("%s (%s)", e.Response.Error, e.Response.Code)
}

func (e *APIError) Unwrap() error {
	switch e.Response.Code {
	case core.ErrCodeInvalidFormat:
		return core.ErrMalformedCoordinate
	case core.ErrCodeInvalidMove:
		return core.ErrIllegalMove
	case core.ErrCodeGameOver:
		return core.ErrGameOver
	case core.ErrCodeGameNotFound:
		return core.ErrGameNotFound
	case core.ErrCodeNotYourTurn:
		return core.ErrNotYourTurn
	case core.ErrCodeUnauthorized:
		return core.ErrInvalidSeatToken
	case core.ErrCodeResourceLimit:
		return core.ErrTooManyGames
	default:
		return nil
	}
}

func (c *Client) doRequest(method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, bodyReader)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.SeatToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.SeatToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.Unmarshal(respBody, &apiErr.Response); err != nil {
			apiErr.Response.Error = strings.TrimSpace(string(respBody))
		}
		if apiErr.Response.Error == "" {
			apiErr.Response.Error = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("response parse error: %w", err)
		}
	}

	return nil
}

// API Methods

// HealthResponse is the /health payload
type HealthResponse struct {
	Status  string `json:"status"`
	Time    int64  `json:"time"`
	Storage string `json:"storage"`
}

func (c *Client) Health() (*HealthResponse, error) {
	var resp HealthResponse
	err := c.doRequest(http.MethodGet, "/health", nil, &resp)
	return &resp, err
}

func (c *Client) CreateGame(req *core.CreateGameRequest) (*core.GameResponse, error) {
	var resp core.GameResponse
	err := c.doRequest(http.MethodPost, "/api/v1/games", req, &resp)
	return &resp, err
}

func (c *Client) GetGame(gameID string) (*core.GameResponse, error) {
	var resp core.GameResponse
	err := c.doRequest(http.MethodGet, "/api/v1/games/"+gameID, nil, &resp)
	return &resp, err
}

// WaitForMove long-polls until the game's move count differs from moveCount
// or the server's wait window ends, then returns the current game
func (c *Client) WaitForMove(gameID string, moveCount int) (*core.GameResponse, error) {
	var resp core.GameResponse
	path := fmt.Sprintf("/api/v1/games/%s?wait=true&moveCount=%d", gameID, moveCount)
	err := c.doRequest(http.MethodGet, path, nil, &resp)
	return &resp, err
}

func (c *Client) GetBoard(gameID string) (*core.BoardResponse, error) {
	var resp core.BoardResponse
	err := c.doRequest(http.MethodGet, "/api/v1/games/"+gameID+"/board", nil, &resp)
	return &resp, err
}

// Seat asks the server which side the client's token plays in gameID
func (c *Client) Seat(gameID string) (*core.SeatResponse, error) {
	var resp core.SeatResponse
	err := c.doRequest(http.MethodGet, "/api/v1/games/"+gameID+"/seat", nil, &resp)
	return &resp, err
}

func (c *Client) MakeMove(gameID, move string) (*core.GameResponse, error) {
	var resp core.GameResponse
	err := c.doRequest(http.MethodPost, "/api/v1/games/"+gameID+"/moves", &core.MoveRequest{Move: move}, &resp)
	return &resp, err
}

func (c *Client) DeleteGame(gameID string) error {
	return c.doRequest(http.MethodDelete, "/api/v1/games/"+gameID, nil, nil)
}
