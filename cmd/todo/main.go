// Command todo is a terminal client for the todo API.
//
// Usage:
//
//	todo [--addr=http://localhost:8080] <command> [args]
//
// Run "todo help" for the list of commands. The server address can also be
// set with the TODO_API_ADDR environment variable.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/todo-backend/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.NewRunner().Run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
