package service

import (
	"fmt"
	"time"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/game"
	"checkers/internal/storage"

	"github.com/google/uuid"
	"github.com/lixenwraith/auth"
)

const seatClaim = "seat"

// session is a live game plus the bookkeeping the service needs for it
type session struct {
	game    *game.Game
	layout  string // Initial layout
	touched time.Time
}

// GenerateGameID creates an ID not used by any live game
func (s *Service) GenerateGameID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// CreateGame starts a game from layout with turn to move. An empty layout
// means the opening position and PlayerNone means Player 1.
func (s *Service) CreateGame(id, layout string, turn core.Player) (game.Snapshot, error) {
	if layout == "" {
		layout = board.StartingLayout
	}
	if turn == core.PlayerNone {
		turn = core.Player1
	}

	g, err := game.FromLayout(layout, turn)
	if err != nil {
		return game.Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[id]; exists {
		return game.Snapshot{}, fmt.Errorf("game %s already exists", id)
	}
	if len(s.games) >= MaxGames {
		return game.Snapshot{}, core.ErrTooManyGames
	}

	now := s.now()
	s.games[id] = &session{game: g, layout: layout, touched: now}

	if s.store != nil {
		s.store.RecordNewGame(storage.GameRecord{
			GameID:        id,
			InitialLayout: layout,
			StartingTurn:  int(turn),
			StartTimeUTC:  now,
		})
		// A layout can already be decided
		if g.IsOver() {
			s.recordResult(id, g, now)
		}
	}

	return g.Snapshot(), nil
}

// GetGame returns a snapshot of a live game
func (s *Service) GetGame(gameID string) (game.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.games[gameID]
	if !ok {
		return game.Snapshot{}, core.ErrGameNotFound
	}
	return sess.game.Snapshot(), nil
}

// MakeMove plays line for seat. It fails with ErrGameOver once the game has
// ended and with ErrNotYourTurn when seat is not the side to move.
func (s *Service) MakeMove(gameID string, seat core.Player, line string) (game.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.games[gameID]
	if !ok {
		return game.Snapshot{}, core.ErrGameNotFound
	}

	g := sess.game
	if g.IsOver() {
		return game.Snapshot{}, core.ErrGameOver
	}
	if seat != g.Turn() {
		return game.Snapshot{}, core.ErrNotYourTurn
	}

	result, err := g.PlayLine(line)
	if err != nil {
		return game.Snapshot{}, err
	}

	now := s.now()
	sess.touched = now

	if result.GameState != core.StateOngoing && s.store != nil {
		s.recordResult(gameID, g, now)
	}

	s.waiter.NotifyGame(gameID, g.MoveCount())
	return g.Snapshot(), nil
}

// DeleteGame removes a game from memory and storage
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	if _, ok := s.games[gameID]; !ok {
		s.mu.Unlock()
		return core.ErrGameNotFound
	}
	delete(s.games, gameID)
	s.mu.Unlock()

	s.waiter.RemoveGame(gameID)

	if s.store != nil {
		s.store.DeleteGame(gameID)
	}
	return nil
}

// GameCount returns the number of live games
func (s *Service) GameCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

func (s *Service) recordResult(gameID string, g *game.Game, at time.Time) {
	s.store.RecordResult(storage.ResultRecord{
		GameID:     gameID,
		Winner:     int(g.Winner()),
		MoveCount:  g.MoveCount(),
		EndTimeUTC: at,
	})
}

func (s *Service) signSeat(gameID string, seat core.Player) (string, error) {
	claims := map[string]any{
		seatClaim: seat.Tag(),
	}
	return auth.GenerateHS256Token(s.seatSecret, gameID, claims, SeatTokenTTL)
}

func verifySeat(secret []byte, token string) (string, core.Player, error) {
	gameID, claims, err := auth.ValidateHS256Token(secret, token)
	if err != nil {
		return "", core.PlayerNone, fmt.Errorf("%w: %v", core.ErrInvalidSeatToken, err)
	}

	tag, _ := claims[seatClaim].(string)
	switch tag {
	case core.Player1.Tag():
		return gameID, core.Player1, nil
	case core.Player2.Tag():
		return gameID, core.Player2, nil
	default:
		return "", core.PlayerNone, core.ErrInvalidSeatToken
	}
}
