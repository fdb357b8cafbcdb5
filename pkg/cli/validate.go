package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/qfu/fixmatch/internal/fixture"
	"github.com/qfu/fixmatch/pkg/cli/internal/output"
)

// ValidateOutput represents one file in JSON output of the validate command.
type ValidateOutput struct {
	File   string   `json:"file"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <path>...",
		Short: "Validate fixture files without evaluating them",
		Long: `Validate fixture files without evaluating them.

This command checks:
  - YAML syntax
  - Schema validation (known keys, one value kind per expectation)
  - Values parse as their declared kind
  - Group occurrences start at 1

Examples:
  fixmatch validate ./fixtures
  fixmatch validate --json criteria.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := fixture.Expand(args)
			if err != nil {
				return configError(err)
			}

			results := make([]ValidateOutput, 0, len(paths))
			invalid := 0
			for _, p := range paths {
				vo := ValidateOutput{File: p, Valid: true}
				if _, err := fixture.LoadFile(p); err != nil {
					vo.Valid = false
					vo.Errors = errorLines(err)
					invalid++
					opts.logger.Debug("invalid fixture", "file", p, "errors", len(vo.Errors))
				}
				results = append(results, vo)
			}

			if opts.jsonOutput {
				if err := output.JSON(cmd.OutOrStdout(), results); err != nil {
					return err
				}
			} else {
				printValidate(cmd.OutOrStdout(), results)
			}

			if invalid > 0 {
				return configError(fmt.Errorf("validation failed: %d of %d file(s) invalid", invalid, len(paths)))
			}
			return nil
		},
	}
}

func errorLines(err error) []string {
	var res *fixture.ValidationResult
	if !errors.As(err, &res) {
		return []string{err.Error()}
	}
	lines := make([]string, 0, len(res.Errors))
	for _, e := range res.Errors {
		lines = append(lines, e.Error())
	}
	return lines
}

func printValidate(w io.Writer, results []ValidateOutput) {
	for _, r := range results {
		if r.Valid {
			fmt.Fprintf(w, "ok    %s\n", r.File)
			continue
		}
		fmt.Fprintf(w, "FAIL  %s\n", r.File)
		for _, e := range r.Errors {
			fmt.Fprintf(w, "  - %s\n", e)
		}
	}
}
