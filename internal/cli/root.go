// claudelint - layering linter for .claude context directories
// Source: https://github.com/ariel-frischer/claudelint

// Package cli provides the Cobra-based command line for claudelint: a single
// root command taking an optional configuration root path.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ariel-frischer/claudelint/internal/build"
	"github.com/ariel-frischer/claudelint/internal/config"
	"github.com/ariel-frischer/claudelint/internal/report"
	"github.com/ariel-frischer/claudelint/internal/validation"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// DefaultRoot is linted when no path argument is given.
const DefaultRoot = ".claude"

type rootOptions struct {
	configPath string
	strict     bool
	format     string
	plain      bool
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "claudelint [path]",
		Short: "Validate the layering of a .claude directory",
		Long: `Validate the layering of a .claude directory

CLAUDE.md carries facts and norms, agents/*.md carry perspective,
skills/*/SKILL.md declare capabilities and references/*.md hold optional
playbooks. Each layer rejects the constructs that would turn it into a
script: workflow verbs, fenced code blocks, success criteria, excessive
length or a missing optional declaration.

Exits 0 when the tree is clean and 1 otherwise.`,
		Example: `  # Lint ./.claude
  claudelint

  # Lint another tree with the strict structural checks
  claudelint --strict ~/project/.claude

  # Machine-readable output
  claudelint --format json`,
		Args:          cobra.MaximumNArgs(1),
		Version:       build.Info(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, opts, args)
		},
	}
	cmd.SetVersionTemplate("claudelint {{.Version}}\n")

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", config.DefaultLocalPath, "Path to config file")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Also check frontmatter, required sections and missing files")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format (text, json)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Plain output without colour")
	cmd.Flags().BoolVarP(&opts.debug, "debug", "d", false, "Enable debug logging")

	return cmd
}

// Execute runs the root command against the process arguments.
func Execute() error {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

// run executes a fresh root command with the given arguments and writers.
// Errors that did not already produce output are written as "error: <err>".
func run(args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	var exitErr *exitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return err
}

func runLint(cmd *cobra.Command, opts *rootOptions, args []string) error {
	rep := &report.Reporter{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr(), Format: report.FormatText}

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return NewExitError(rep.Fatal(err))
	}
	format, err := cfg.OutputFormat()
	if err != nil {
		return NewExitError(rep.Fatal(err))
	}
	rep.Format = format
	rep.Color = useColor(cfg.Color, cmd.ErrOrStderr())

	root := DefaultRoot
	if len(args) == 1 {
		root = args[0]
	}

	logger := newLogger(opts.debug, cmd.ErrOrStderr())
	defer func() { _ = logger.Sync() }()

	res, err := validation.NewLinter(cfg.LintOptions(), logger).Lint(root)
	if err != nil {
		return NewExitError(rep.Fatal(err))
	}

	code, err := rep.Report(res)
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if code != ExitSuccess {
		return NewExitError(code)
	}
	return nil
}

// loadConfig loads the layered configuration and applies flag overrides.
// Priority: flags > environment > local file > global file > defaults.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Configuration, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("strict") {
		cfg.Strict = opts.strict
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = opts.format
	}
	if opts.plain {
		cfg.Color = false
	}

	if _, err := cfg.OutputFormat(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// useColor reports whether w should receive ANSI colour: it must be enabled
// in config, NO_COLOR must be unset and w must be a terminal.
func useColor(enabled bool, w io.Writer) bool {
	if !enabled || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
