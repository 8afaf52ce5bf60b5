package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"tasksync/internal/config"
	"tasksync/internal/exitcode"
	"tasksync/internal/prompt"
	"tasksync/internal/service"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct {
	yes bool
	in  io.Reader
}

// SetInput sets where the confirmation answer is read from (for testing).
func (c *RmCmd) SetInput(r io.Reader) {
	c.in = r
}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "tasksync rm [--yes] <id>" }
func (c *RmCmd) NeedsStore() bool  { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.yes, "yes", false, "")
	fs.BoolVar(&c.yes, "y", false, "")
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, store service.Store, args []string, out, errOut io.Writer) int {
	id, ok := taskIDArg(args, errOut)
	if !ok {
		return exitcode.UserError
	}

	var p prompt.Prompter = prompt.Yes()
	if !c.yes {
		in := c.in
		if in == nil {
			in = os.Stdin
		}
		p = prompt.NewTerminal(in, out)
	}

	ctl := newController(cfg, store, p, errOut)
	if err := ctl.Delete(ctx, id); err != nil {
		return exitFor(err, errOut)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
