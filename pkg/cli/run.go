package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/qfu/fixmatch/internal/fixture"
	"github.com/qfu/fixmatch/pkg/cli/internal/output"
)

// CaseOutput represents one case in JSON output of the run command.
type CaseOutput struct {
	File    string `json:"file"`
	Name    string `json:"name"`
	Expect  string `json:"expect"`
	Outcome string `json:"outcome"`
	Passed  bool   `json:"passed"`
	Detail  string `json:"detail,omitempty"`
}

// RunOutput represents JSON output of the run command.
type RunOutput struct {
	Cases  []CaseOutput `json:"cases"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <path>...",
		Short: "Run the cases declared in fixture files",
		Long: `Run the cases declared in fixture files.

Each argument is a file, a directory (every .yaml and .yml file below it)
or a glob pattern; ** matches any number of directories. Every case pairs
criteria with a message and declares the expected outcome: match, no-match
or error.

Examples:
  fixmatch run ./fixtures
  fixmatch run 'fixtures/**/orders-*.yaml'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := fixture.LoadAll(args)
			if err != nil {
				return configError(err)
			}

			e := opts.evaluator()
			var out RunOutput
			for _, f := range files {
				if len(f.Cases) == 0 {
					opts.logger.Debug("no cases in file", "file", f.Path)
					continue
				}
				opts.logger.Debug("running cases", "file", f.Path, "count", len(f.Cases))
				for _, r := range fixture.RunCases(e, f) {
					co := CaseOutput{
						File:    f.Path,
						Name:    r.Name,
						Expect:  string(r.Expect),
						Outcome: string(r.Outcome),
						Passed:  r.Passed(),
						Detail:  caseDetail(r),
					}
					if co.Passed {
						out.Passed++
					} else {
						out.Failed++
					}
					out.Cases = append(out.Cases, co)
				}
			}
			if len(out.Cases) == 0 {
				return configError(errors.New("no cases found"))
			}

			if opts.jsonOutput {
				if err := output.JSON(cmd.OutOrStdout(), out); err != nil {
					return err
				}
			} else {
				printRun(cmd.OutOrStdout(), out)
			}

			if out.Failed > 0 {
				return failed("%d of %d case(s) failed", out.Failed, out.Passed+out.Failed)
			}
			return nil
		},
	}
}

func caseDetail(r fixture.CaseResult) string {
	switch {
	case r.Err != nil:
		return r.Err.Error()
	case r.Mismatch != nil:
		return r.Mismatch.String()
	}
	return ""
}

func printRun(w io.Writer, out RunOutput) {
	tw := output.Table(w)
	fmt.Fprintln(tw, "FILE\tCASE\tEXPECT\tOUTCOME\tRESULT")
	for _, c := range out.Cases {
		result := "PASS"
		if !c.Passed {
			result = "FAIL"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.File, c.Name, c.Expect, c.Outcome, result)
	}
	_ = tw.Flush()

	for _, c := range out.Cases {
		if !c.Passed && c.Detail != "" {
			fmt.Fprintf(w, "\n%s: %s\n  %s\n", c.File, c.Name, c.Detail)
		}
	}
	fmt.Fprintf(w, "\n%d passed, %d failed\n", out.Passed, out.Failed)
}
