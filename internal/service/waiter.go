package service

import (
	"context"
	"sync"
	"time"
)

// WaitTimeout is the maximum time a client can wait for the next move
const WaitTimeout = 25 * time.Second

// WaitRegistry manages long-polling clients waiting for the opponent to move
type WaitRegistry struct {
	mu      sync.Mutex
	waiters map[string][]*WaitRequest // gameID → waiting clients
	timeout time.Duration
	closed  bool
}

// WaitRequest is a single client waiting on a game. Its channel is closed
// exactly once: on a new move, timeout, cancellation, game removal or shutdown.
type WaitRequest struct {
	MoveCount int // Last known move count
	notify    chan struct{}
	once      sync.Once
	timer     *time.Timer
	stopCtx   func() bool
}

func (r *WaitRequest) fire() {
	r.once.Do(func() {
		r.timer.Stop()
		r.stopCtx()
		close(r.notify)
	})
}

func NewWaitRegistry(timeout time.Duration) *WaitRegistry {
	if timeout <= 0 {
		timeout = WaitTimeout
	}
	return &WaitRegistry{
		waiters: make(map[string][]*WaitRequest),
		timeout: timeout,
	}
}

// RegisterWait returns a channel closed once the game's move count differs
// from moveCount, or the wait ends for any other reason
func (w *WaitRegistry) RegisterWait(ctx context.Context, gameID string, moveCount int) <-chan struct{} {
	req := &WaitRequest{
		MoveCount: moveCount,
		notify:    make(chan struct{}),
	}

	w.mu.Lock()
	req.timer = time.AfterFunc(w.timeout, func() { w.release(gameID, req) })
	req.stopCtx = context.AfterFunc(ctx, func() { w.release(gameID, req) })
	if w.closed {
		w.mu.Unlock()
		req.fire()
		return req.notify
	}
	w.waiters[gameID] = append(w.waiters[gameID], req)
	w.mu.Unlock()

	return req.notify
}

// NotifyGame wakes every waiter whose move count is stale
func (w *WaitRegistry) NotifyGame(gameID string, currentMoveCount int) {
	w.mu.Lock()
	var woken []*WaitRequest
	kept := w.waiters[gameID][:0]
	for _, req := range w.waiters[gameID] {
		if req.MoveCount != currentMoveCount {
			woken = append(woken, req)
		} else {
			kept = append(kept, req)
		}
	}
	w.setWaiters(gameID, kept)
	w.mu.Unlock()

	for _, req := range woken {
		req.fire()
	}
}

// RemoveGame wakes all waiters for a game (called before game deletion)
func (w *WaitRegistry) RemoveGame(gameID string) {
	w.mu.Lock()
	waitList := w.waiters[gameID]
	delete(w.waiters, gameID)
	w.mu.Unlock()

	for _, req := range waitList {
		req.fire()
	}
}

// Shutdown wakes every waiter and refuses new ones
func (w *WaitRegistry) Shutdown() {
	w.mu.Lock()
	w.closed = true
	all := w.waiters
	w.waiters = make(map[string][]*WaitRequest)
	w.mu.Unlock()

	for _, waitList := range all {
		for _, req := range waitList {
			req.fire()
		}
	}
}

// Pending returns how many clients wait on gameID
func (w *WaitRegistry) Pending(gameID string) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.waiters[gameID])
}

// release removes a specific waiter and wakes it
func (w *WaitRegistry) release(gameID string, req *WaitRequest) {
	w.mu.Lock()
	waitList := w.waiters[gameID]
	for i, waiter := range waitList {
		if waiter == req {
			waitList = append(waitList[:i], waitList[i+1:]...)
			break
		}
	}
	w.setWaiters(gameID, waitList)
	w.mu.Unlock()

	req.fire()
}

// setWaiters stores list for gameID, dropping empty entries. Caller holds w.mu.
func (w *WaitRegistry) setWaiters(gameID string, list []*WaitRequest) {
	if len(list) == 0 {
		delete(w.waiters, gameID)
		return
	}
	w.waiters[gameID] = list
}
