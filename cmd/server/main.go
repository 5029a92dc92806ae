// Command server runs the notes HTTP API.
//
// Configuration is read from CONFIG_PATH (YAML) with environment variable
// overrides; see internal/config. The server shuts down gracefully on
// SIGINT/SIGTERM.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/xampe11/notes-app/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
