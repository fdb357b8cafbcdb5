package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qfu/fixmatch/internal/fixture"
	"github.com/qfu/fixmatch/pkg/cli/internal/output"
	"github.com/qfu/fixmatch/pkg/matching"
)

// DescribeOutput represents JSON output of the describe command.
type DescribeOutput struct {
	File        string `json:"file"`
	Description string `json:"description"`
	Checks      int    `json:"checks"`
	Hash        uint64 `json:"hash"`
}

func newDescribeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <criteria-file>",
		Short: "Print criteria in readable form",
		Long: `Print criteria in readable form.

The hash is stable across runs and identical for criteria that hold the
same expectations in any order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fixture.LoadFile(args[0])
			if err != nil {
				return configError(err)
			}
			if f.Criteria == nil {
				return configError(fmt.Errorf("%s: no criteria defined", args[0]))
			}
			c, err := fixture.ToCriteria(f.Criteria)
			if err != nil {
				return configError(fmt.Errorf("%s: %w", args[0], err))
			}

			out := DescribeOutput{
				File:        f.Path,
				Description: matching.Describe(c),
				Checks:      c.Len(),
				Hash:        c.Hash(),
			}
			if opts.jsonOutput {
				return output.JSON(cmd.OutOrStdout(), out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Description)
			return nil
		},
	}
}
