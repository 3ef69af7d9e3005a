package service

import (
	"context"
	"testing"
	"time"
)

func woken(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	case <-time.After(200 * time.Millisecond):
		return false
	}
}

func TestNotifyGame(t *testing.T) {
	w := NewWaitRegistry(time.Minute)

	stale := w.RegisterWait(context.Background(), "g", 0)
	current := w.RegisterWait(context.Background(), "g", 1)

	w.NotifyGame("g", 1)

	if !woken(stale) {
		t.Error("stale waiter not woken")
	}
	if woken(current) {
		t.Error("up-to-date waiter woken")
	}
	if got := w.Pending("g"); got != 1 {
		t.Errorf("Pending = %d, want 1", got)
	}
}

func TestWaitEnds(t *testing.T) {
	t.Run("timeout", func(t *testing.T) {
		w := NewWaitRegistry(20 * time.Millisecond)
		if !woken(w.RegisterWait(context.Background(), "g", 0)) {
			t.Error("timeout did not release waiter")
		}
		if got := w.Pending("g"); got != 0 {
			t.Errorf("Pending after timeout = %d", got)
		}
	})

	t.Run("cancel", func(t *testing.T) {
		w := NewWaitRegistry(time.Minute)
		ctx, cancel := context.WithCancel(context.Background())
		ch := w.RegisterWait(ctx, "g", 0)
		cancel()
		if !woken(ch) {
			t.Error("cancellation did not release waiter")
		}
	})

	t.Run("remove game", func(t *testing.T) {
		w := NewWaitRegistry(time.Minute)
		ch := w.RegisterWait(context.Background(), "g", 0)
		w.RemoveGame("g")
		if !woken(ch) {
			t.Error("RemoveGame did not release waiter")
		}
	})

	t.Run("shutdown", func(t *testing.T) {
		w := NewWaitRegistry(time.Minute)
		ch := w.RegisterWait(context.Background(), "g", 0)
		w.Shutdown()
		if !woken(ch) {
			t.Error("Shutdown did not release waiter")
		}
		if !woken(w.RegisterWait(context.Background(), "g", 0)) {
			t.Error("waiter registered after Shutdown not released")
		}
	})
}
