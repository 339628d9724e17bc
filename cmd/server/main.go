// Command server runs the Holy Ghost Tracker HTTP API.
//
// Configuration comes from config.yaml (CONFIG_PATH to override) and
// environment variables; see internal/config.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/holyghost-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
