package main

import (
	"fmt"
	"os"

	"checkers/internal/cli"
	"checkers/internal/game"
	clitransport "checkers/internal/transport/cli"
)

func main() {
	view, closeConsole, err := cli.OpenConsole()
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer closeConsole()

	handler := clitransport.New(game.New(), view)

	view.ShowWelcome()
	handler.Run() // All game loop logic is in the handler
}
