package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"nitpick/internal/ipc"
	"nitpick/internal/logging"
	"nitpick/internal/session"
)

// version is stamped at build time via -ldflags.
var version = "dev"

type rootFlags struct {
	// Serialized onto the wire, in this declared order.
	config        string
	stdin         bool
	stdinFilename string
	fix           bool
	fixDryRun     bool
	fixToStdout   bool
	format        string
	ignorePath    string
	ignorePattern string
	noIgnore      bool

	// Client-only.
	socket string
	debug  bool
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:           "nitpick",
		Short:         "Relay a lint invocation to the nitpickd daemon",
		Long: `nitpick streams standard input to a long-lived nitpickd daemon and relays
the daemon's response to standard output, starting the daemon on demand.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := logging.NewFromConfig(cfg)
			if cfg.Debug && isatty.IsTerminal(os.Stdin.Fd()) && flags.stdinFilename == "" {
				logger.Debug("payload comes from an interactive terminal; end it with EOF")
			}

			s := &session.Session{
				Config:  cfg,
				Request: buildRequest(flags),
				Payload: cmd.InOrStdin(),
				Output:  cmd.OutOrStdout(),
				Logger:  logger,
			}
			return s.Run()
		},
	}

	rootCmd.Flags().StringVar(&flags.config, "config", "", "Lint configuration file passed to the daemon")
	rootCmd.Flags().BoolVar(&flags.stdin, "stdin", false, "Lint the text piped on standard input")
	rootCmd.Flags().StringVar(&flags.stdinFilename, "stdin-filename", "", "Filename the daemon reports for piped input")
	rootCmd.Flags().BoolVar(&flags.fix, "fix", false, "Apply fixes")
	rootCmd.Flags().BoolVar(&flags.fixDryRun, "fix-dry-run", false, "Compute fixes without writing them")
	rootCmd.Flags().BoolVar(&flags.fixToStdout, "fix-to-stdout", false, "Print the fixed text instead of a report")
	rootCmd.Flags().StringVar(&flags.format, "format", "stylish", "Report format")
	rootCmd.Flags().StringVar(&flags.ignorePath, "ignore-path", "", "Ignore file passed to the daemon")
	rootCmd.Flags().StringVar(&flags.ignorePattern, "ignore-pattern", "", "Extra ignore pattern passed to the daemon")
	rootCmd.Flags().BoolVar(&flags.noIgnore, "no-ignore", false, "Disable ignore handling")

	rootCmd.Flags().StringVar(&flags.socket, "socket", "", "Path to the nitpickd daemon socket")
	rootCmd.Flags().BoolVar(&flags.debug, "debug", false, "Enable diagnostic tracing on stderr")

	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

// buildRequest serializes the recognized options. The version flag is the one
// surface element that never reaches the wire.
func buildRequest(flags *rootFlags) ipc.Request {
	return ipc.Request{
		Config:        flags.config,
		Stdin:         flags.stdin,
		StdinFilename: flags.stdinFilename,
		Fix:           flags.fix,
		FixDryRun:     flags.fixDryRun,
		FixToStdout:   flags.fixToStdout,
		Format:        flags.format,
		IgnorePath:    flags.ignorePath,
		IgnorePattern: flags.ignorePattern,
		NoIgnore:      flags.noIgnore,
	}
}
