// Package commands implements the command line interface of rivebuild.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/rivebuild/internal/app"
	"go.trai.ch/rivebuild/internal/build"
	"go.trai.ch/rivebuild/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	logFormatPretty = "pretty"
	logFormatJSON   = "json"
)

// CLI represents the command line interface for rivebuild.
type CLI struct {
	app     Application
	log     LogSwitch
	rootCmd *cobra.Command
	opts    flagValues
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, cfg domain.BuildConfig, opts app.RunOptions) error
}

// LogSwitch selects the log format.
type LogSwitch interface {
	SetJSON(enable bool)
}

type flagValues struct {
	platform  string
	arch      string
	target    string
	clean     bool
	onFailure string
	config    string
	dryRun    bool
	logFormat string
	help      bool
	version   bool
}

// New creates a new CLI instance with the given app.
func New(a Application, log LogSwitch) *CLI {
	c := &CLI{
		app: a,
		log: log,
	}

	rootCmd := &cobra.Command{
		Use:   "rivebuild [flags] [build tool arguments...]",
		Short: "Builds Rive Extension and its dependencies",
		// Unknown flags belong to the build tool, so parsing is done by splitArgs.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Args:               cobra.ArbitraryArgs,
		RunE:               c.run,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&c.opts.platform, "platform", "p", "",
		"Build for a specific platform ("+choices(domain.Platforms())+"). "+
			"If not provided, will be inferred from the current OS.")
	flags.StringVarP(&c.opts.arch, "arch", "a", "",
		"Build for a specific CPU architecture ("+choices(domain.Archs())+"). "+
			"If not provided, will be inferred from the current OS.")
	flags.BoolVarP(&c.opts.clean, "clean", "c", false, "Cleans the build.")
	flags.StringVarP(&c.opts.target, "target", "t", domain.TargetDebug.String(),
		"Build for debug or release. Defaults to debug.")
	flags.StringVar(&c.opts.onFailure, "on-failure", "",
		"What to do after a failed step: abort, continue or ignore (default from config, else abort)")
	flags.StringVar(&c.opts.config, "config", "", "Path to the config file (default "+domain.ConfigFileName+")")
	flags.BoolVar(&c.opts.dryRun, "dry-run", false, "Print the commands without running them")
	flags.StringVar(&c.opts.logFormat, "log-format", logFormatPretty, "Log format: pretty or json")
	flags.BoolVarP(&c.opts.help, "help", "h", false, "Show help for command")
	flags.BoolVar(&c.opts.version, "version", false, "Print the application version")

	c.rootCmd = rootCmd
	return c
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	extra, err := splitArgs(cmd.Flags(), args)
	if err != nil {
		return err
	}

	if c.opts.help {
		cmd.Long = description(cmd.OutOrStdout())
		return cmd.Help()
	}
	if c.opts.version {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "rivebuild version %s (commit: %s, date: %s)\n",
			build.Version, build.Commit, build.Date)
		return nil
	}

	switch c.opts.logFormat {
	case logFormatPretty:
	case logFormatJSON:
		c.log.SetJSON(true)
	default:
		return zerr.With(zerr.Wrap(domain.ErrInvalidLogFormat, "unknown log format "+c.opts.logFormat),
			"value", c.opts.logFormat)
	}

	var policy domain.FailurePolicy
	if c.opts.onFailure != "" {
		if policy, err = domain.ParseFailurePolicy(c.opts.onFailure); err != nil {
			return err
		}
	}

	cfg, err := domain.NewBuildConfig(c.opts.platform, c.opts.arch, c.opts.target, c.opts.clean, extra)
	if err != nil {
		return err
	}

	return c.app.Run(cmd.Context(), cfg, app.RunOptions{
		ConfigPath: c.opts.config,
		OnFailure:  policy,
		DryRun:     c.opts.dryRun,
	})
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command.
func (c *CLI) SetArgs(args []string) {
	// cobra falls back to os.Args when args is nil.
	if args == nil {
		args = []string{}
	}
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func choices[T ~string](values []T) string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}
