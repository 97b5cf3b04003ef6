package commands

import (
	"context"
	"fmt"
	"io"

	"notes/internal/adapters/memory"
	"notes/internal/adapters/system"
	"notes/internal/config"
	"notes/internal/domain"
	"notes/internal/exitcode"
	"notes/internal/output"
	"notes/internal/ports"
	"notes/internal/service"
)

func init() {
	Register(func() Command { return &DemoCmd{} })
}

// demoTasks are created in order by the demo.
var demoTasks = []struct{ title, description string }{
	{"Buy milk", "2% lactose-free"},
	{"Call mom", "Sunday afternoon"},
	{"Read a book", "DDD chapter 3"},
	{"Watch Movie", "Furioza 2"},
}

// DemoCmd runs a scripted session against a throwaway in-memory store.
type DemoCmd struct {
	localCommand

	clock ports.Clock
	ids   ports.IDProvider
}

// SetClock sets the clock (for testing).
func (c *DemoCmd) SetClock(clock ports.Clock) {
	c.clock = clock
}

// SetIDProvider sets the id provider (for testing).
func (c *DemoCmd) SetIDProvider(ids ports.IDProvider) {
	c.ids = ids
}

func (c *DemoCmd) Name() string     { return "demo" }
func (c *DemoCmd) Synopsis() string { return "Run a scripted session in memory" }
func (c *DemoCmd) Usage() string    { return "notes demo" }

func (c *DemoCmd) Run(ctx context.Context, cfg *config.Config, _ *service.TaskService, args []string, out, errOut io.Writer) int {
	var clock ports.Clock = system.SystemClock{}
	if c.clock != nil {
		clock = c.clock
	}
	var ids ports.IDProvider = system.RandomIDProvider{}
	if c.ids != nil {
		ids = c.ids
	}
	svc := service.New(memory.NewRepository(), clock, ids)
	p := newPrinter(cfg, out)

	fmt.Fprintln(out, "Demo: in-memory store, nothing is saved.")
	fmt.Fprintln(out)

	created := make([]domain.Task, 0, len(demoTasks))
	for _, d := range demoTasks {
		task, err := svc.AddTask(ctx, d.title, d.description)
		if err != nil {
			return ReportError(errOut, err)
		}
		p.FormatChange("added", task)
		created = append(created, task)
	}

	if code := c.printList(ctx, svc, p, out, errOut); code != exitcode.Success {
		return code
	}

	steps := []struct {
		verb   string
		change statusChange
		task   domain.Task
	}{
		{"done", svc.MarkDone, created[1]},
		{"in progress", svc.MarkInProgress, created[3]},
	}
	for _, s := range steps {
		task, err := s.change(ctx, s.task.ID)
		if err != nil {
			return ReportError(errOut, err)
		}
		p.FormatChange(s.verb, task)
	}
	if err := svc.RemoveTask(ctx, created[2].ID); err != nil {
		return ReportError(errOut, err)
	}
	p.FormatChange("removed", created[2])

	return c.printList(ctx, svc, p, out, errOut)
}

func (c *DemoCmd) printList(ctx context.Context, svc *service.TaskService, p *output.Printer, out, errOut io.Writer) int {
	const pageSize = config.DefaultPageSize

	tasks, total, err := svc.ListTasks(ctx, service.ListQuery{Page: 1, PageSize: pageSize})
	if err != nil {
		return ReportError(errOut, err)
	}
	fmt.Fprintln(out)
	p.FormatList(tasks, 1, pageSize, total)
	fmt.Fprintln(out)
	return exitcode.Success
}
