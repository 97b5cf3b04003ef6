package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"notes/internal/config"
	"notes/internal/exitcode"
	"notes/internal/service"
)

func init() {
	Register(func() Command { return &ListCmd{} })
}

// ListCmd implements the list command.
// Handles both `notes` (no args) and `notes list`.
type ListCmd struct {
	storeCommand

	page     int
	pageSize optionalInt
	sortBy   string
	order    string
}

// SetPage sets the page number (for testing).
func (c *ListCmd) SetPage(page int) {
	c.page = page
}

// SetPageSize sets the page size (for testing).
func (c *ListCmd) SetPageSize(size int) {
	c.pageSize = optionalInt{value: size, set: true}
}

// SetSort sets the sort key and order (for testing).
func (c *ListCmd) SetSort(sortBy, order string) {
	c.sortBy, c.order = sortBy, order
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string {
	return "notes list [--page <n>] [--page-size <n>] [--sort-by <field>] [--order asc|desc]"
}

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.page, "page", 1, "")
	fs.IntVar(&c.page, "p", 1, "")
	fs.Var(&c.pageSize, "page-size", "")
	fs.Var(&c.pageSize, "s", "")
	fs.StringVar(&c.sortBy, "sort-by", "", "")
	fs.StringVar(&c.order, "order", "", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc *service.TaskService, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	page := c.page
	size := cfg.PageSize
	if c.pageSize.set {
		size = c.pageSize.value
	}

	tasks, total, err := svc.ListTasks(ctx, service.ListQuery{
		Page:     page,
		PageSize: size,
		SortBy:   c.sortBy,
		Order:    c.order,
	})
	if err != nil {
		return ReportError(errOut, err)
	}

	if total == 0 && cfg.Quiet {
		return exitcode.Success
	}
	newPrinter(cfg, out).FormatList(tasks, page, size, total)
	return exitcode.Success
}

// optionalInt is an int flag that remembers whether it was given.
type optionalInt struct {
	value int
	set   bool
}

func (o *optionalInt) String() string {
	if o == nil {
		return "0"
	}
	return strconv.Itoa(o.value)
}

func (o *optionalInt) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("parse error")
	}
	o.value = n
	o.set = true
	return nil
}
