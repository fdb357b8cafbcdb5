package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/qfu/fixmatch/internal/fixture"
	"github.com/qfu/fixmatch/pkg/cli/internal/output"
	"github.com/qfu/fixmatch/pkg/fix"
	"github.com/qfu/fixmatch/pkg/matching"
)

// CheckOutput represents JSON output of the check command.
type CheckOutput struct {
	Matched   bool                `json:"matched"`
	Criteria  string              `json:"criteria"`
	Mismatch  string              `json:"mismatch,omitempty"`
	Breakdown *matching.Breakdown `json:"breakdown,omitempty"`
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var breakdown bool

	cmd := &cobra.Command{
		Use:   "check <criteria-file> [message-file]",
		Short: "Check one message against criteria",
		Long: `Check one message against criteria.

The criteria are read from the first file. The message is read from the
second file, or from the first when only one file is given.

Examples:
  # Criteria and message in separate files
  fixmatch check order-list.criteria.yaml order-list.message.yaml

  # List every check instead of only the first failure
  fixmatch check --breakdown fixture.yaml`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, msg, err := loadPair(args)
			if err != nil {
				return configError(err)
			}
			opts.logger.Debug("checking message", "criteria", args[0], "type", string(msg.MsgType()))

			e := opts.evaluator()
			res, err := e.Explain(criteria, msg)
			if err != nil {
				return configError(err)
			}

			var report *matching.Breakdown
			if breakdown || opts.jsonOutput {
				// Breakdown visits checks Explain skipped and may hit a
				// configuration error behind the first failure.
				if report, err = e.Breakdown(criteria, msg); err != nil {
					opts.logger.Warn("breakdown unavailable", "error", err)
					report = nil
				}
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				co := CheckOutput{
					Matched:   res.Matched,
					Criteria:  matching.Describe(criteria),
					Breakdown: report,
				}
				if res.Mismatch != nil {
					co.Mismatch = res.Mismatch.String()
				}
				if err := output.JSON(out, co); err != nil {
					return err
				}
			} else {
				printCheck(out, criteria, msg, res, report)
			}

			if !res.Matched {
				return &exitError{code: ExitNoMatch, err: ErrNoMatch}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&breakdown, "breakdown", false, "Show every check, not only the first failure")
	return cmd
}

func loadPair(args []string) (*matching.Criteria, *fix.Message, error) {
	cf, err := fixture.LoadFile(args[0])
	if err != nil {
		return nil, nil, err
	}
	if cf.Criteria == nil {
		return nil, nil, fmt.Errorf("%s: no criteria defined", args[0])
	}
	criteria, err := fixture.ToCriteria(cf.Criteria)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", args[0], err)
	}

	mf := cf
	if len(args) == 2 {
		if mf, err = fixture.LoadFile(args[1]); err != nil {
			return nil, nil, err
		}
	}
	if mf.Message == nil {
		return nil, nil, fmt.Errorf("%s: no message defined", mf.Path)
	}
	return criteria, fixture.ToMessage(mf.Message), nil
}

func printCheck(w io.Writer, c *matching.Criteria, msg *fix.Message, res matching.Result, report *matching.Breakdown) {
	if res.Matched {
		fmt.Fprintln(w, "MATCH")
	} else {
		fmt.Fprintln(w, "NO MATCH")
		fmt.Fprintf(w, "Expected: %s\n", matching.Describe(c))
		fmt.Fprintf(w, "     but: %s\n", matching.DescribeMismatch(c, msg))
		fmt.Fprintf(w, "Mismatch: %s\n", res.Mismatch)
	}
	if report == nil {
		return
	}

	fmt.Fprintln(w)
	tw := output.Table(w)
	fmt.Fprintln(tw, "GATE\tCHECK\tEXPECTED\tACTUAL\tRESULT")
	for _, cr := range report.Checks {
		check := "-"
		switch {
		case cr.Group != nil && cr.Tag != 0:
			check = fmt.Sprintf("%s %d", cr.Group, cr.Tag)
		case cr.Group != nil:
			check = cr.Group.String()
		case cr.Tag != 0:
			check = strconv.Itoa(cr.Tag)
		}
		actual := cr.Actual
		if !cr.Present {
			actual = "(missing)"
		}
		result := "ok"
		if !cr.Matched {
			result = "FAIL"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", cr.Gate, check, cr.Expected, actual, result)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "%d/%d checks passed: %s\n", report.Passed, report.Total, report.Reason)
}
