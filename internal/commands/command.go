// Package commands implements the notes subcommands.
package commands

import (
	"context"
	"flag"
	"io"

	"notes/internal/config"
	"notes/internal/output"
	"notes/internal/service"
)

// Command is one notes subcommand. A fresh value is built for every
// dispatch, so fields may hold parsed flag values.
type Command interface {
	Name() string
	Aliases() []string

	// Synopsis and Usage are shown by the help command.
	Synopsis() string
	Usage() string

	// NeedsStore reports whether Run gets a TaskService backed by the
	// configured store. When false, svc is nil.
	NeedsStore() bool

	RegisterFlags(fs *flag.FlagSet)

	// Run receives the positional arguments left after flag parsing and
	// returns the process exit code.
	Run(ctx context.Context, cfg *config.Config, svc *service.TaskService, args []string, out, errOut io.Writer) int
}

// storeCommand is embedded by commands that act on stored tasks and take no
// flags of their own.
type storeCommand struct{}

func (storeCommand) Aliases() []string           { return nil }
func (storeCommand) NeedsStore() bool            { return true }
func (storeCommand) RegisterFlags(*flag.FlagSet) {}

// localCommand is embedded by commands that never open the store.
type localCommand struct{}

func (localCommand) Aliases() []string           { return nil }
func (localCommand) NeedsStore() bool            { return false }
func (localCommand) RegisterFlags(*flag.FlagSet) {}

// newPrinter returns a printer for out honouring the colour setting.
func newPrinter(cfg *config.Config, out io.Writer) *output.Printer {
	return output.NewPrinter(out, !cfg.NoColor)
}
