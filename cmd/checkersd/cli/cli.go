// Package cli implements the checkersd db maintenance subcommands
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"checkers/internal/core"
	"checkers/internal/storage"
)

// Run is the entry point for the db mini-app, output goes to out
func Run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("subcommand required: init, delete, or query")
	}

	switch args[0] {
	case "init":
		return runInit(args[1:], out)
	case "delete":
		return runDelete(args[1:], out)
	case "query":
		return runQuery(args[1:], out)
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}

// pathFlag parses a subcommand's flags and requires -path
func pathFlag(fs *flag.FlagSet, args []string) (string, error) {
	path := fs.String("path", "", "Database file path (required)")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if *path == "" {
		return "", fmt.Errorf("database path required")
	}
	return *path, nil
}

func runInit(args []string, out io.Writer) error {
	path, err := pathFlag(flag.NewFlagSet("init", flag.ContinueOnError), args)
	if err != nil {
		return err
	}

	store, err := storage.NewStore(path, false)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer store.Close()

	if err := store.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	fmt.Fprintf(out, "Database initialized at: %s\n", path)
	return nil
}

func runDelete(args []string, out io.Writer) error {
	path, err := pathFlag(flag.NewFlagSet("delete", flag.ContinueOnError), args)
	if err != nil {
		return err
	}

	store, err := storage.NewStore(path, false)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	if err := store.DeleteDB(); err != nil {
		return fmt.Errorf("failed to delete database: %w", err)
	}

	fmt.Fprintf(out, "Database deleted: %s\n", path)
	return nil
}

func runQuery(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	gameID := fs.String("gameId", "", "Game ID to filter (optional, * for all)")
	path, err := pathFlag(fs, args)
	if err != nil {
		return err
	}

	store, err := storage.NewStore(path, false)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	games, err := store.QueryGames(*gameID)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if len(games) == 0 {
		fmt.Fprintln(out, "No games found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Game ID\tFirst\tWinner\tMoves\tStart Time\tEnd Time")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, g := range games {
		winner, end := "-", "-"
		if g.EndTimeUTC.Valid {
			winner = core.Player(g.Winner).Tag()
			end = g.EndTimeUTC.Time.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			shortID(g.GameID),
			core.Player(g.StartingTurn).Tag(),
			winner,
			g.MoveCount,
			g.StartTimeUTC.Format("2006-01-02 15:04:05"),
			end,
		)
	}
	w.Flush()

	fmt.Fprintf(out, "\nFound %d game(s)\n", len(games))
	return nil
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8] + "..."
}
