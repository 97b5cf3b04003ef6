package commands

import (
	"context"
	"fmt"
	"io"

	"notes/internal/config"
	"notes/internal/exitcode"
	"notes/internal/service"
)

func init() {
	Register(func() Command { return &HelpCmd{} })
}

// HelpCmd implements the help command.
type HelpCmd struct {
	localCommand

	registry *Registry
}

// SetRegistry sets the registry whose commands are listed (for testing).
func (c *HelpCmd) SetRegistry(r *Registry) {
	c.registry = r
}

func (c *HelpCmd) Name() string     { return "help" }
func (c *HelpCmd) Synopsis() string { return "Print usage" }
func (c *HelpCmd) Usage() string    { return "notes help" }

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc *service.TaskService, args []string, out, errOut io.Writer) int {
	registry := c.registry
	if registry == nil {
		registry = DefaultRegistry
	}

	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %-62s %s\n", "notes", "List tasks (same as notes list)")
	for _, cmd := range registry.All() {
		fmt.Fprintf(out, "  %-62s %s\n", cmd.Usage(), cmd.Synopsis())
	}
	fmt.Fprint(out, commonFlagsHelp)
	return exitcode.Success
}

const commonFlagsHelp = `
<id> is a full task id or a unique prefix of one.

Common flags (before or after the command):
  --config <dir>        Override config directory
  -f, --file <path>     Store file (default <config dir>/tasks.jsonl)
  --store <name>        Store backend: memory, jsonl or sqlite
  --no-color            Disable colored output
  --quiet               Suppress informational output
  --debug               Print debug logs to stderr

Environment: NOTES_STORE, NOTES_FILE, NOTES_PAGE_SIZE, NOTES_NO_COLOR
`
