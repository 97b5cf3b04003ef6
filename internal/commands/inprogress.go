package commands

import (
	"context"
	"io"

	"notes/internal/config"
	"notes/internal/service"
)

func init() {
	Register(func() Command { return &InProgressCmd{} })
}

// InProgressCmd implements the inprogress command.
type InProgressCmd struct{ storeCommand }

func (c *InProgressCmd) Name() string      { return "inprogress" }
func (c *InProgressCmd) Aliases() []string { return []string{"start"} }
func (c *InProgressCmd) Synopsis() string  { return "Mark a task in progress" }
func (c *InProgressCmd) Usage() string     { return "notes inprogress <id>" }

func (c *InProgressCmd) Run(ctx context.Context, cfg *config.Config, svc *service.TaskService, args []string, out, errOut io.Writer) int {
	return runStatusChange(ctx, cfg, svc, svc.MarkInProgress, "in progress", args, out, errOut)
}
