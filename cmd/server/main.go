// Command server runs the todo GraphQL API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and
// environment variables. SIGINT or SIGTERM starts a graceful shutdown.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/todo-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
