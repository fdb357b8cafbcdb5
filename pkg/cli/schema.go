package cli

import (
	"github.com/spf13/cobra"

	"github.com/qfu/fixmatch/internal/fixture"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for fixture files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(fixture.Schema())
			return err
		},
	}
}
