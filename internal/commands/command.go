// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"tasksync/internal/config"
	"tasksync/internal/controller"
	"tasksync/internal/exitcode"
	"tasksync/internal/logging"
	"tasksync/internal/page"
	"tasksync/internal/prompt"
	"tasksync/internal/service"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command talks to the task store.
	// Commands like help and version return false.
	NeedsStore() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided.
	// store is nil if NeedsStore() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, store service.Store, args []string, out, errOut io.Writer) int
}

// newController builds a controller over a fresh page, logging to errOut.
func newController(cfg *config.Config, store service.Store, p prompt.Prompter, errOut io.Writer) *controller.Controller {
	logger := logging.NewFromConfig(errOut, cfg.LogLevel, cfg.LogFormat, cfg.Debug)
	return controller.New(store, page.New(), p, logger)
}

// exitFor reports err on errOut and maps it to an exit code.
// Empty-title errors were already shown to the user as an alert.
func exitFor(err error, errOut io.Writer) int {
	switch {
	case err == nil:
		return exitcode.Success
	case errors.Is(err, controller.ErrEmptyTitle):
		return exitcode.UserError
	case errors.Is(err, controller.ErrCancelled):
		fmt.Fprintln(errOut, "error: cancelled")
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
}

// taskIDArg returns the single task id argument.
func taskIDArg(args []string, errOut io.Writer) (service.TaskID, bool) {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task id required")
		return "", false
	}
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: too many arguments: %v\n", args[1:])
		return "", false
	}
	return service.TaskID(args[0]), true
}
