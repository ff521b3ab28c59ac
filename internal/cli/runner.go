// Package cli implements the todo command line client.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/todo-backend/internal/client"
	"github.com/heartmarshall/todo-backend/internal/tui"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

const usage = `todo - command line client for the todo API

Usage:
  todo [flags] <command> [args]

Commands:
  ls                    List todos, newest first
  add <title...>        Add a todo
  done <n>              Mark todo n as done
  undone <n>            Mark todo n as not done
  rename <n> <title...> Change the title of todo n
  rm <n>                Delete todo n
  ui                    Open the interactive view

n is the 1-based position shown by ls.

Flags:
`

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	doneStyle    = lipgloss.NewStyle().Faint(true).Strikethrough(true)
)

// usageError marks a mistake in the command line rather than a failed request.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func usageErr(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// Runner executes one command line invocation.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string

	// NewAPI builds the API client for addr. Defaults to client.New.
	NewAPI func(addr string, log *slog.Logger) tui.API
	// RunUI starts the interactive view. Defaults to tui.Run.
	RunUI func(ctx context.Context, api tui.API) error
}

// NewRunner returns a Runner wired to the process environment.
func NewRunner() *Runner {
	return &Runner{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
		NewAPI: func(addr string, log *slog.Logger) tui.API { return client.New(addr, log) },
		RunUI:  tui.Run,
	}
}

// Run parses args (without the program name) and executes the command.
func (r *Runner) Run(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetOutput(r.Stderr)
	fs.Usage = func() {
		fmt.Fprint(r.Stderr, usage)
		fs.PrintDefaults()
	}
	addr := fs.String("addr", r.Getenv(client.EnvAddr), "API server address (env "+client.EnvAddr+")")
	verbose := fs.Bool("v", false, "log API traffic to stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return ExitUsage
	}

	var log *slog.Logger
	if *verbose {
		log = slog.New(slog.NewTextHandler(r.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	api := r.NewAPI(*addr, log)

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	err := r.dispatch(ctx, api, cmd, rest)
	if err == nil {
		return ExitOK
	}
	r.fail(err.Error())
	var ue *usageError
	if errors.As(err, &ue) {
		return ExitUsage
	}
	return ExitError
}

func (r *Runner) dispatch(ctx context.Context, api tui.API, cmd string, args []string) error {
	switch cmd {
	case "help":
		fmt.Fprint(r.Stdout, usage)
		return nil

	case "ls":
		return r.list(ctx, api)

	case "add":
		title := strings.TrimSpace(strings.Join(args, " "))
		if title == "" {
			return usageErr("usage: todo add <title...>")
		}
		t, err := api.Create(ctx, title)
		if err != nil {
			return err
		}
		r.ok("added " + t.Title)
		return nil

	case "done", "undone":
		if len(args) != 1 {
			return usageErr("usage: todo %s <n>", cmd)
		}
		t, err := r.pick(ctx, api, args[0])
		if err != nil {
			return err
		}
		done := cmd == "done"
		if _, err := api.Update(ctx, t.ID, nil, &done); err != nil {
			return err
		}
		r.ok(cmd + " " + t.Title)
		return nil

	case "rename":
		if len(args) < 2 {
			return usageErr("usage: todo rename <n> <title...>")
		}
		title := strings.TrimSpace(strings.Join(args[1:], " "))
		if title == "" {
			return usageErr("usage: todo rename <n> <title...>")
		}
		t, err := r.pick(ctx, api, args[0])
		if err != nil {
			return err
		}
		if _, err := api.Update(ctx, t.ID, &title, nil); err != nil {
			return err
		}
		r.ok("renamed " + t.Title + " to " + title)
		return nil

	case "rm":
		if len(args) != 1 {
			return usageErr("usage: todo rm <n>")
		}
		t, err := r.pick(ctx, api, args[0])
		if err != nil {
			return err
		}
		removed, err := api.Delete(ctx, t.ID)
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("todo %q was already deleted", t.Title)
		}
		r.ok("removed " + t.Title)
		return nil

	case "ui":
		return r.RunUI(ctx, api)
	}

	return usageErr("unknown command %q, run todo help", cmd)
}

// pick resolves a 1-based position from ls to a todo.
func (r *Runner) pick(ctx context.Context, api tui.API, arg string) (client.Todo, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return client.Todo{}, usageErr("not a number: %s", arg)
	}
	todos, err := api.List(ctx)
	if err != nil {
		return client.Todo{}, err
	}
	if n < 1 || n > len(todos) {
		return client.Todo{}, usageErr("no todo at %d, have %d, run todo ls", n, len(todos))
	}
	return todos[n-1], nil
}

func (r *Runner) list(ctx context.Context, api tui.API) error {
	todos, err := api.List(ctx)
	if err != nil {
		return err
	}

	var done int
	for _, t := range todos {
		if t.Done {
			done++
		}
	}
	fmt.Fprintf(r.Stdout, "%s  %s %d  %s %d\n",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), len(todos)-done,
	)
	if len(todos) == 0 {
		fmt.Fprintln(r.Stdout, mutedStyle.Render("nothing to do"))
		return nil
	}

	width := len(strconv.Itoa(len(todos)))
	for i, t := range todos {
		box, title := "[ ]", t.Title
		if t.Done {
			box, title = successStyle.Render("[x]"), doneStyle.Render(t.Title)
		}
		fmt.Fprintf(r.Stdout, "%*d. %s %s  %s\n", width, i+1, box, title,
			mutedStyle.Render(t.CreatedAt.Local().Format("2006-01-02 15:04")))
	}
	return nil
}

func (r *Runner) ok(msg string) {
	fmt.Fprintln(r.Stdout, successStyle.Render("✔ "+msg))
}

func (r *Runner) fail(msg string) {
	fmt.Fprintln(r.Stderr, errorStyle.Render("✖ "+msg))
}
