// Command foodmenu asks for a food from a numbered menu and prints the
// choice. It drives the inputvalidation readers against the terminal.
//
// Run:
//
//	go run ./cmd/foodmenu
//	go run ./cmd/foodmenu --config menu.yaml --pause=false
//	go run ./cmd/foodmenu age --min 21
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
