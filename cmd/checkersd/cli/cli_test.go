package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"checkers/internal/storage"
)

func TestRunLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.db")
	var out bytes.Buffer

	if err := Run([]string{"init", "-path", path}, &out); err != nil {
		t.Fatalf("init: %v", err)
	}

	store, err := storage.NewStore(path, false)
	if err != nil {
		t.Fatal(err)
	}
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store.RecordNewGame(storage.GameRecord{
		GameID:        "0f8fad5b-d9cb-469f-a165-70867728950e",
		InitialLayout: "x......./......../......../......../......../......../......../........",
		StartingTurn:  2,
		StartTimeUTC:  start,
	})
	store.RecordResult(storage.ResultRecord{
		GameID:     "0f8fad5b-d9cb-469f-a165-70867728950e",
		Winner:     1,
		EndTimeUTC: start,
	})
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	if err := Run([]string{"query", "-path", path, "-gameId", "*"}, &out); err != nil {
		t.Fatalf("query: %v", err)
	}
	for _, want := range []string{"0f8fad5b...", "P2", "P1", "2025-03-01 12:00:00", "Found 1 game(s)"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("query output missing %q:\n%s", want, out.String())
		}
	}

	out.Reset()
	if err := Run([]string{"query", "-path", path, "-gameId", "missing"}, &out); err != nil {
		t.Fatalf("filtered query: %v", err)
	}
	if !strings.Contains(out.String(), "No games found") {
		t.Errorf("filtered query output = %q", out.String())
	}

	if err := Run([]string{"delete", "-path", path}, &out); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("database file still present: %v", err)
	}
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	for _, args := range [][]string{
		nil,
		{"vacuum"},
		{"init"},
		{"query", "-gameId", "*"},
	} {
		if err := Run(args, &out); err == nil {
			t.Errorf("Run(%q) succeeded", args)
		}
	}
}
