package commands

import (
	"context"
	"io"

	"notes/internal/config"
	"notes/internal/exitcode"
	"notes/internal/service"
)

func init() {
	Register(func() Command { return &ShowCmd{} })
}

// ShowCmd implements the show command.
type ShowCmd struct{ storeCommand }

func (c *ShowCmd) Name() string     { return "show" }
func (c *ShowCmd) Synopsis() string { return "Show every field of a task" }
func (c *ShowCmd) Usage() string    { return "notes show <id>" }

func (c *ShowCmd) Run(ctx context.Context, cfg *config.Config, svc *service.TaskService, args []string, out, errOut io.Writer) int {
	id, err := resolveTaskRef(ctx, svc, args)
	if err != nil {
		return ReportError(errOut, err)
	}

	task, err := svc.GetTask(ctx, id)
	if err != nil {
		return ReportError(errOut, err)
	}

	newPrinter(cfg, out).FormatDetail(task)
	return exitcode.Success
}
