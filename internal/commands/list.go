package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasksync/internal/config"
	"tasksync/internal/exitcode"
	"tasksync/internal/output"
	"tasksync/internal/prompt"
	"tasksync/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `tasksync` (no args) and `tasksync list`.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "tasksync list" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, store service.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected arguments: %v\n", args)
		return exitcode.UserError
	}

	ctl := newController(cfg, store, prompt.No(), errOut)
	if err := ctl.Load(ctx); err != nil {
		return exitFor(err, errOut)
	}

	rows := ctl.Document().Snapshot().List.Rows
	for _, row := range rows {
		output.FormatRow(out, row)
	}

	if cfg.Quiet {
		return exitcode.Success
	}
	if len(rows) == 0 {
		fmt.Fprintln(out, output.EmptyMessage)
	}
	output.FormatStats(out, ctl.Stats())
	return exitcode.Success
}
