package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasksync/internal/config"
	"tasksync/internal/exitcode"
	"tasksync/internal/prompt"
	"tasksync/internal/service"
)

func init() {
	Register(&DoneCmd{completed: true})
	Register(&DoneCmd{completed: false})
}

// DoneCmd implements the done and undone commands.
type DoneCmd struct {
	completed bool
}

// NewDoneCmd returns the done command, or undone when completed is false.
func NewDoneCmd(completed bool) *DoneCmd {
	return &DoneCmd{completed: completed}
}

func (c *DoneCmd) Name() string {
	if c.completed {
		return "done"
	}
	return "undone"
}

func (c *DoneCmd) Aliases() []string { return nil }

func (c *DoneCmd) Synopsis() string {
	if c.completed {
		return "Mark a task completed"
	}
	return "Mark a task not completed"
}

func (c *DoneCmd) Usage() string    { return "tasksync " + c.Name() + " <id>" }
func (c *DoneCmd) NeedsStore() bool { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, store service.Store, args []string, out, errOut io.Writer) int {
	id, ok := taskIDArg(args, errOut)
	if !ok {
		return exitcode.UserError
	}

	ctl := newController(cfg, store, prompt.No(), errOut)
	if err := ctl.Toggle(ctx, id, c.completed); err != nil {
		return exitFor(err, errOut)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
