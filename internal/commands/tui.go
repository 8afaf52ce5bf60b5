package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"tasksync/internal/config"
	"tasksync/internal/controller"
	"tasksync/internal/exitcode"
	"tasksync/internal/logging"
	"tasksync/internal/page"
	"tasksync/internal/prompt"
	"tasksync/internal/service"
	"tasksync/internal/tui"
)

func init() {
	Register(&TuiCmd{})
}

// TuiCmd implements the tui command.
type TuiCmd struct{}

func (c *TuiCmd) Name() string      { return "tui" }
func (c *TuiCmd) Aliases() []string { return nil }
func (c *TuiCmd) Synopsis() string  { return "Open the interactive terminal view" }
func (c *TuiCmd) Usage() string     { return "tasksync tui" }
func (c *TuiCmd) NeedsStore() bool  { return true }

func (c *TuiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *TuiCmd) Run(ctx context.Context, cfg *config.Config, store service.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected arguments: %v\n", args)
		return exitcode.UserError
	}

	// stderr shares the alternate screen, so logs go to a file when debugging.
	logger := logging.Discard()
	if cfg.Debug {
		if err := cfg.EnsureDir(); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.ConfigError
		}
		f, err := os.OpenFile(cfg.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.ConfigError
		}
		defer f.Close()
		logger = logging.NewFromConfig(f, cfg.LogLevel, cfg.LogFormat, true)
	}

	ctl := controller.New(store, page.New(), prompt.No(), logger)
	if err := tui.Run(ctx, ctl, os.Stdin, out); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}
	return exitcode.Success
}
