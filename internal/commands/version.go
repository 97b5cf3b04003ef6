package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"runtime"

	"notes/internal/config"
	"notes/internal/exitcode"
	"notes/internal/service"
)

// Version is the application version. Set at build time.
var Version = "0.1.0"

func init() {
	Register(func() Command { return &VersionCmd{} })
}

// VersionCmd prints the version and, with --verbose, where notes reads its
// configuration and tasks from.
type VersionCmd struct {
	localCommand

	verbose bool
}

// SetVerbose enables the configuration report (for testing).
func (c *VersionCmd) SetVerbose(v bool) {
	c.verbose = v
}

func (c *VersionCmd) Name() string     { return "version" }
func (c *VersionCmd) Synopsis() string { return "Print version" }
func (c *VersionCmd) Usage() string    { return "notes version [-v|--verbose]" }

func (c *VersionCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.verbose, "verbose", false, "")
	fs.BoolVar(&c.verbose, "v", false, "")
}

func (c *VersionCmd) Run(ctx context.Context, cfg *config.Config, _ *service.TaskService, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	fmt.Fprintf(out, "%s %s\n", config.AppName, Version)
	if !c.verbose {
		return exitcode.Success
	}

	storePath := cfg.StorePath()
	if cfg.Store == config.StoreMemory {
		storePath = "(in memory)"
	}
	fmt.Fprintf(out, "go:      %s\n", runtime.Version())
	fmt.Fprintf(out, "config:  %s\n", cfg.FilePath())
	fmt.Fprintf(out, "store:   %s\n", cfg.Store)
	fmt.Fprintf(out, "tasks:   %s\n", storePath)
	return exitcode.Success
}
