package commands

import (
	"context"
	"io"

	"notes/internal/config"
	"notes/internal/exitcode"
	"notes/internal/service"
)

func init() {
	Register(func() Command { return &RmCmd{} })
}

// RmCmd implements the rm command.
type RmCmd struct{ storeCommand }

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "notes rm <id>" }

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc *service.TaskService, args []string, out, errOut io.Writer) int {
	id, err := resolveTaskRef(ctx, svc, args)
	if err != nil {
		return ReportError(errOut, err)
	}

	// Fetched first so the confirmation can show the title.
	task, err := svc.GetTask(ctx, id)
	if err != nil {
		return ReportError(errOut, err)
	}
	if err := svc.RemoveTask(ctx, id); err != nil {
		return ReportError(errOut, err)
	}

	if !cfg.Quiet {
		newPrinter(cfg, out).FormatChange("removed", task)
	}
	return exitcode.Success
}
