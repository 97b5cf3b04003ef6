package commands

import (
	"context"
	"io"

	"notes/internal/config"
	"notes/internal/domain"
	"notes/internal/exitcode"
	"notes/internal/service"
)

func init() {
	Register(func() Command { return &DoneCmd{} })
}

// DoneCmd implements the done command.
type DoneCmd struct{ storeCommand }

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"close"} }
func (c *DoneCmd) Synopsis() string  { return "Mark a task done" }
func (c *DoneCmd) Usage() string     { return "notes done <id>" }

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc *service.TaskService, args []string, out, errOut io.Writer) int {
	return runStatusChange(ctx, cfg, svc, svc.MarkDone, "done", args, out, errOut)
}

// statusChange is one of the TaskService transition methods.
type statusChange func(ctx context.Context, id domain.TaskID) (domain.Task, error)

// runStatusChange is the shared implementation for done, inprogress and
// reopen.
func runStatusChange(ctx context.Context, cfg *config.Config, svc *service.TaskService, change statusChange, verb string, args []string, out, errOut io.Writer) int {
	id, err := resolveTaskRef(ctx, svc, args)
	if err != nil {
		return ReportError(errOut, err)
	}

	task, err := change(ctx, id)
	if err != nil {
		return ReportError(errOut, err)
	}

	if !cfg.Quiet {
		newPrinter(cfg, out).FormatChange(verb, task)
	}
	return exitcode.Success
}
