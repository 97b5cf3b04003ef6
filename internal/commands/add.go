package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"notes/internal/config"
	"notes/internal/exitcode"
	"notes/internal/service"
)

func init() {
	Register(func() Command { return &AddCmd{} })
}

// AddCmd implements the add command.
type AddCmd struct {
	storeCommand

	description string
}

// SetDescription sets the description (for testing).
func (c *AddCmd) SetDescription(desc string) {
	c.description = desc
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string     { return "notes add [-d|--desc <description>] <title...>" }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "desc", "", "")
	fs.StringVar(&c.description, "d", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc *service.TaskService, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	task, err := svc.AddTask(ctx, strings.Join(args, " "), c.description)
	if err != nil {
		return ReportError(errOut, err)
	}

	if !cfg.Quiet {
		newPrinter(cfg, out).FormatChange("added", task)
	}
	return exitcode.Success
}
