package commands

import (
	"context"
	"io"

	"notes/internal/config"
	"notes/internal/service"
)

func init() {
	Register(func() Command { return &ReopenCmd{} })
}

// ReopenCmd implements the reopen command.
type ReopenCmd struct{ storeCommand }

func (c *ReopenCmd) Name() string     { return "reopen" }
func (c *ReopenCmd) Synopsis() string { return "Mark a task open again" }
func (c *ReopenCmd) Usage() string    { return "notes reopen <id>" }

func (c *ReopenCmd) Run(ctx context.Context, cfg *config.Config, svc *service.TaskService, args []string, out, errOut io.Writer) int {
	return runStatusChange(ctx, cfg, svc, svc.Reopen, "reopened", args, out, errOut)
}
