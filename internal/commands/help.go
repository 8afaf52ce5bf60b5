package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasksync/internal/config"
	"tasksync/internal/exitcode"
	"tasksync/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "tasksync help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, store service.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)

	fmt.Fprintln(out, "\nCommands:")
	for _, cmd := range DefaultRegistry.All() {
		fmt.Fprintf(out, "  %-8s %s\n", cmd.Name(), cmd.Synopsis())
	}
	return exitcode.Success
}

const helpText = `Usage:
  tasksync                                  List all tasks
  tasksync list [common flags]              List all tasks with counts
  tasksync add [common flags] <title...>    Create a task
  tasksync done [common flags] <id>         Mark a task completed
  tasksync undone [common flags] <id>       Mark a task not completed
  tasksync rm [common flags] [--yes] <id>   Delete a task (asks first)
  tasksync serve [common flags] [--listen <addr>]
  tasksync tui [common flags]
  tasksync help
  tasksync version

Common flags:
  --config <dir>     Override config directory
  --base-url <url>   Override the task API base URL
  --quiet            Suppress informational output
  --debug            Print debug logs to stderr

Environment:
  TASKSYNC_BASE_URL  Task API base URL (default http://localhost:5000)
  TASKSYNC_TOKEN     Bearer token sent with every request
`
