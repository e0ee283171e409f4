// Package cli contains the staticjournal commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"StaticJournal/internal/app"
	"StaticJournal/internal/config"
	"StaticJournal/internal/domain"
	"StaticJournal/internal/logging"
	"StaticJournal/internal/output"
)

const binaryName = "staticjournal"

var errUsage = errors.New("no command given")

func init() {
	// "Publish" and "NEW" resolve to their subcommands.
	cobra.EnableCaseInsensitive = true
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	r := &runner{stdout: stdout, stderr: stderr, now: time.Now}
	return r.run(ctx, args)
}

type runner struct {
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time

	cfgFile string
	root    string
	verbose bool
	noColor bool

	cfg     config.Config
	logger  *slog.Logger
	printer *output.Printer
	app     *app.Application
}

func (r *runner) run(ctx context.Context, args []string) int {
	r.printer = output.NewPrinter(r.stdout, r.stderr, false)

	cmd := r.rootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(r.stdout)
	cmd.SetErr(r.stderr)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return output.ExitSuccess
	case errors.Is(err, errUsage):
		return output.ExitUsageError
	default:
		r.printer.Error(err)
		return output.ExitGeneral
	}
}

func (r *runner) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   binaryName,
		Short: "Minimal static journal publisher",
		Long: `staticjournal scaffolds dated HTML journal entries and publishes them
into a home page between marker comments.

Example usage:
  staticjournal new "First Entry"
  staticjournal publish entries/2025-12-27-first-entry.html
  staticjournal list`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: %s", domain.ErrUnknownCommand, args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Usage()
			return errUsage
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd == cmd.Root() {
				return nil
			}
			return r.init()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVar(&r.cfgFile, "config", "", "config file (default is ./journal.yaml)")
	root.PersistentFlags().StringVar(&r.root, "root", "", "journal project root (default is the working directory)")
	root.PersistentFlags().BoolVarP(&r.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().BoolVar(&r.noColor, "no-color", false, "disable colored output")

	root.AddCommand(r.newCommand(), r.publishCommand(), r.listCommand())
	return root
}

// init loads configuration and wires the application before a subcommand runs.
func (r *runner) init() error {
	cfg, err := config.Load(r.cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if r.root != "" {
		cfg.Root = r.root
	}
	if r.verbose {
		cfg.Logging.Level = "debug"
	}
	if r.noColor {
		cfg.Output.Colors = "never"
	}

	mode, err := output.ParseColorMode(cfg.Output.Colors)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	r.printer = output.NewPrinter(r.stdout, r.stderr, output.ResolveColors(mode))

	r.logger = logging.New(cfg.Logging.Level, r.stderr)
	r.logger.Debug("configuration loaded", "root", cfg.Root, "index", cfg.Index, "entries_dir", cfg.EntriesDir)

	application, err := app.New(cfg, r.logger, r.now)
	if err != nil {
		return err
	}
	r.cfg = cfg
	r.app = application
	return nil
}
