// Package main is the entry point for the bbstatus build-status reporter.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/bbstatus/cmd/bbstatus/commands"
	"go.trai.ch/bbstatus/internal/app"
	"go.trai.ch/bbstatus/internal/core/domain"
	_ "go.trai.ch/bbstatus/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	components.App.WithStdout(stdout)
	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	return exitCode(cli.Execute(ctx), components)
}

func exitCode(err error, components *app.Components) int {
	if err == nil {
		return 0
	}

	// Every validation failure has already been logged.
	if errors.Is(err, domain.ErrValidationFailed) {
		return 1
	}

	components.Logger.Error(err)

	var transferErr *domain.TransferError
	if errors.As(err, &transferErr) {
		return transferErr.ExitCode()
	}
	return 1
}
