// Package cli parses the command line and dispatches to commands.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"notes/internal/adapters/system"
	"notes/internal/commands"
	"notes/internal/config"
	"notes/internal/exitcode"
	"notes/internal/ports"
	"notes/internal/service"
	"notes/internal/store"
)

// RepositoryFactory opens the repository for cfg.
// Used to inject the store during dispatch.
type RepositoryFactory func(ctx context.Context, cfg *config.Config) (ports.TaskRepository, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  RepositoryFactory
	clock    ports.Clock
	ids      ports.IDProvider
}

// NewDispatcher creates a new dispatcher with the given registry and
// repository factory. A nil factory opens the configured store.
func NewDispatcher(registry *commands.Registry, factory RepositoryFactory) *Dispatcher {
	if factory == nil {
		factory = store.Open
	}
	return &Dispatcher{
		registry: registry,
		factory:  factory,
		clock:    system.SystemClock{},
		ids:      system.RandomIDProvider{},
	}
}

// SetClock replaces the wall clock (for testing).
func (d *Dispatcher) SetClock(c ports.Clock) {
	d.clock = c
}

// SetIDProvider replaces the random id provider (for testing).
func (d *Dispatcher) SetIDProvider(ids ports.IDProvider) {
	d.ids = ids
}

// commonFlags are accepted by every command, before or after its name.
type commonFlags struct {
	configDir string
	file      string
	store     string
	noColor   bool
	quiet     bool
	debug     bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configDir, "config", c.configDir, "")
	fs.StringVar(&c.file, "file", c.file, "")
	fs.StringVar(&c.file, "f", c.file, "")
	fs.StringVar(&c.store, "store", c.store, "")
	fs.BoolVar(&c.noColor, "no-color", c.noColor, "")
	fs.BoolVar(&c.quiet, "quiet", c.quiet, "")
	fs.BoolVar(&c.debug, "debug", c.debug, "")
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	var common commonFlags

	// Common flags may precede the command name.
	if len(args) > 0 && strings.HasPrefix(args[0], "-") {
		fs := newFlagSet("notes")
		common.register(fs)
		if err := fs.Parse(args); err != nil {
			return reportFlagError(errOut, err)
		}
		args = fs.Args()
	}

	// No command -> dispatch to "list" with no args
	if len(args) == 0 {
		return d.dispatch(ctx, "list", nil, &common, out, errOut)
	}
	return d.dispatch(ctx, args[0], args[1:], &common, out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, common *commonFlags, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, common, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, common *commonFlags, out, errOut io.Writer) int {
	fs := newFlagSet(cmd.Name())
	common.register(fs)
	cmd.RegisterFlags(fs)

	positionalArgs, err := parseInterspersed(fs, args)
	if err != nil {
		return reportFlagError(errOut, err)
	}

	configureLogging(errOut, common.debug)

	cfg, err := config.Load(common.configDir)
	if err != nil {
		return commands.ReportError(errOut, err)
	}
	if common.store != "" {
		cfg.Store = common.store
	}
	if common.file != "" {
		cfg.File = common.file
	}
	if common.noColor {
		cfg.NoColor = true
	}
	cfg.Quiet = common.quiet
	cfg.Debug = common.debug
	if err := cfg.Validate(); err != nil {
		return commands.ReportError(errOut, err)
	}
	log.WithFields(log.Fields{"command": cmd.Name(), "store": cfg.Store, "dir": cfg.Dir}).Debug("dispatching")

	var svc *service.TaskService
	if cmd.NeedsStore() {
		repo, err := d.factory(ctx, cfg)
		if err != nil {
			return commands.ReportError(errOut, err)
		}
		defer func() {
			if err := store.Close(repo); err != nil {
				log.WithError(err).Warn("closing store")
			}
		}()
		svc = service.New(repo, d.clock, d.ids, service.WithLogger(log.StandardLogger()))
	}

	return cmd.Run(ctx, cfg, svc, positionalArgs, out, errOut)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves
	return fs
}

// parseInterspersed parses flags that may appear between positional
// arguments. Everything after a "--" terminator is positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	positional := []string{}
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		consumed := len(args) - len(rest)
		if consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// reportFlagError maps flag package errors to user-facing messages.
func reportFlagError(errOut io.Writer, err error) int {
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(errOut, "error: unknown flag: -h (run: notes help)")
		return exitcode.UserError
	}

	errStr := err.Error()

	// Check for missing flag value
	if strings.HasPrefix(errStr, "flag needs an argument:") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagName)
		return exitcode.UserError
	}

	// Check for unknown flag
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag provided but not defined:"))
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
		return exitcode.UserError
	}

	fmt.Fprintf(errOut, "error: %s\n", errStr)
	return exitcode.UserError
}

// configureLogging sends logs to errOut at warn level, or debug with --debug.
func configureLogging(errOut io.Writer, debug bool) {
	log.SetOutput(errOut)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetLevel(log.WarnLevel)
	if debug {
		log.SetLevel(log.DebugLevel)
	}
}
