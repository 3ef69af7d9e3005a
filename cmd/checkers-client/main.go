// Package main plays one seat of a checkersd-hosted game from the console.
// Without -game it creates a game, takes Player 1 and prints how the
// opponent joins.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"checkers/internal/cli"
	"checkers/internal/client/api"
	"checkers/internal/core"
	clitransport "checkers/internal/transport/cli"
)

func main() {
	var (
		server = flag.String("server", "http://localhost:8080", "checkersd API base URL")
		gameID = flag.String("game", "", "Game ID to join (creates a new game if empty)")
		token  = flag.String("token", "", "Seat token for the joined game")
		layout = flag.String("layout", "", "Starting layout for a new game")
	)
	flag.Parse()

	client := api.New(*server)
	var player core.Player

	if *gameID == "" {
		created, err := client.CreateGame(&core.CreateGameRequest{Layout: *layout})
		if err != nil {
			log.Fatalf("Failed to create game: %v", err)
		}
		*gameID, player = created.GameID, core.Player1
		client.SetToken(created.Tokens.Player1)

		fmt.Printf("Game created: %s\n", created.GameID)
		fmt.Printf("Opponent joins with:\n  %s -server %s -game %s -token %s\n\n",
			os.Args[0], *server, created.GameID, created.Tokens.Player2)
	} else {
		if *token == "" {
			log.Fatal("Error: -game requires -token")
		}
		client.SetToken(*token)

		// The server knows which side the token was issued for
		seat, err := client.Seat(*gameID)
		if err != nil {
			log.Fatalf("Failed to join game: %v", err)
		}
		player = core.Player(seat.Seat)
	}

	view, closeConsole, err := cli.OpenConsole()
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer closeConsole()

	view.ShowWelcome()
	view.ShowMessage(fmt.Sprintf("You are %s", player))

	handler := clitransport.NewRemote(client, view, *gameID, player)
	if _, err := handler.Run(); err != nil {
		view.ShowError(err)
	}
}
