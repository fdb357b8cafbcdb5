package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/qfu/fixmatch/pkg/logging"
	"github.com/qfu/fixmatch/pkg/matching"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	jsonOutput bool
	logLevel   string
	logFormat  string

	logger *slog.Logger
}

func (o *rootOptions) evaluator() *matching.Evaluator {
	return matching.NewEvaluator(matching.WithLogger(o.logger))
}

// NewRootCmd builds the fixmatch command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{logger: logging.Nop()}

	cmd := &cobra.Command{
		Use:   "fixmatch",
		Short: "fixmatch checks FIX messages against declarative criteria",
		Long: `fixmatch evaluates FIX messages against criteria declared in YAML fixture files.

Criteria constrain the message type, body and header fields, and fields of
numbered repeating group occurrences. A message matches when every
expectation holds.

Exit codes:
  0  the message matched, or every case passed
  1  the message did not match, or a case failed
  2  a fixture or the criteria are invalid`,
		// No Run function here means 'fixmatch' with no args will print help text by default.
		SilenceUsage:  true,
		SilenceErrors: true, // We handle errors in Execute()
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = logging.New(logging.Config{
				Level:  logging.ParseLevel(opts.logLevel),
				Format: logging.ParseFormat(opts.logFormat),
				Output: cmd.ErrOrStderr(),
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output command results in JSON format")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", envOr("FIXMATCH_LOG_LEVEL", "warn"), "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", envOr("FIXMATCH_LOG_FORMAT", "text"), "Log format (text, json)")

	cmd.AddCommand(
		newCheckCmd(opts),
		newRunCmd(opts),
		newValidateCmd(opts),
		newDescribeCmd(opts),
		newSchemaCmd(),
		newVersionCmd(opts),
	)
	return cmd
}

// Execute runs the command line in args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	code := exitCode(err)
	// A failed check or case has already been reported on stdout.
	if err != nil && code != ExitNoMatch {
		fmt.Fprintln(stderr, "Error:", err)
	}
	return code
}

// Main runs fixmatch with the process arguments. It is called by main.main().
func Main() int {
	return Execute(os.Args[1:], os.Stdout, os.Stderr)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
