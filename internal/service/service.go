package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"checkers/internal/core"
	"checkers/internal/storage"
)

const (
	MaxGames           = 1000
	IdleGameTTL        = 24 * time.Hour
	SeatTokenTTL       = 7 * 24 * time.Hour
	CleanupJobInterval = 1 * time.Hour
)

// Service coordinates live games, seat tokens and storage
type Service struct {
	games      map[string]*session
	mu         sync.RWMutex
	store      *storage.Store // nil if persistence disabled
	seatSecret []byte
	waiter     *WaitRegistry
	now        func() time.Time
}

// New creates a new service instance with optional storage
func New(store *storage.Store, seatSecret []byte) *Service {
	return &Service{
		games:      make(map[string]*session),
		store:      store,
		seatSecret: seatSecret,
		waiter:     NewWaitRegistry(WaitTimeout),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// GetStorageHealth returns the storage component status
func (s *Service) GetStorageHealth() string {
	if s.store == nil {
		return "disabled"
	}
	if s.store.IsHealthy() {
		return "ok"
	}
	return "degraded"
}

// RegisterWait registers a client to wait for the next move in a game. The
// channel is already closed when moveCount is stale or the game is gone.
func (s *Service) RegisterWait(ctx context.Context, gameID string, moveCount int) <-chan struct{} {
	// Held across registration so a concurrent MakeMove cannot notify first
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.games[gameID]
	if !ok || sess.game.MoveCount() != moveCount {
		done := make(chan struct{})
		close(done)
		return done
	}
	return s.waiter.RegisterWait(ctx, gameID, moveCount)
}

// Shutdown releases waiters, drops live games and closes storage
func (s *Service) Shutdown() error {
	var errs []error

	s.waiter.Shutdown()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]*session)

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}

	return errors.Join(errs...)
}

// RunCleanupJob periodically evicts games nobody has touched for IdleGameTTL
func (s *Service) RunCleanupJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.cleanupIdle(); n > 0 {
				log.Printf("cleanup: evicted %d idle games", n)
			}
		}
	}
}

// cleanupIdle drops idle games from memory. Stored records are kept.
func (s *Service) cleanupIdle() int {
	cutoff := s.now().Add(-IdleGameTTL)

	s.mu.Lock()
	var evicted []string
	for id, sess := range s.games {
		if sess.touched.Before(cutoff) {
			delete(s.games, id)
			evicted = append(evicted, id)
		}
	}
	s.mu.Unlock()

	for _, id := range evicted {
		s.waiter.RemoveGame(id)
	}
	return len(evicted)
}

// IssueSeatTokens signs one bearer token per side of a game
func (s *Service) IssueSeatTokens(gameID string) (core.SeatTokens, error) {
	p1, err := s.signSeat(gameID, core.Player1)
	if err != nil {
		return core.SeatTokens{}, err
	}
	p2, err := s.signSeat(gameID, core.Player2)
	if err != nil {
		return core.SeatTokens{}, err
	}
	return core.SeatTokens{Player1: p1, Player2: p2}, nil
}

// ValidateSeatToken returns the game and side a seat token was issued for
func (s *Service) ValidateSeatToken(token string) (string, core.Player, error) {
	return verifySeat(s.seatSecret, token)
}
