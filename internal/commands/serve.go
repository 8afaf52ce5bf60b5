package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"

	"tasksync/internal/config"
	"tasksync/internal/exitcode"
	"tasksync/internal/logging"
	"tasksync/internal/prompt"
	"tasksync/internal/service"
	"tasksync/internal/web"
)

func init() {
	Register(&ServeCmd{})
}

// ServeCmd implements the serve command.
type ServeCmd struct {
	listen string
}

// SetListen sets the listen address (for testing).
func (c *ServeCmd) SetListen(addr string) {
	c.listen = addr
}

func (c *ServeCmd) Name() string      { return "serve" }
func (c *ServeCmd) Aliases() []string { return nil }
func (c *ServeCmd) Synopsis() string  { return "Serve the task page over HTTP" }
func (c *ServeCmd) Usage() string     { return "tasksync serve [--listen <addr>]" }
func (c *ServeCmd) NeedsStore() bool  { return true }

func (c *ServeCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listen, "listen", "", "")
}

func (c *ServeCmd) Run(ctx context.Context, cfg *config.Config, store service.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected arguments: %v\n", args)
		return exitcode.UserError
	}

	addr := c.listen
	if addr == "" {
		addr = cfg.Listen
	}

	// Confirmations come from the page's own form, so the base prompter declines.
	ctl := newController(cfg, store, prompt.No(), errOut)
	srv, err := web.NewServer(ctl, logging.NewFromConfig(errOut, cfg.LogLevel, cfg.LogFormat, cfg.Debug))
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "serving on http://%s\n", addr)
	}
	if err := srv.ListenAndServe(ctx, addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}
	return exitcode.Success
}
