package cli

import (
	"github.com/spf13/cobra"
)

type decomposeReport struct {
	Start transformReport `json:"start"`
	End   transformReport `json:"end"`
}

func newDecomposeCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decompose",
		Short: "Print the translation, rotation, scale, and determinant of the start and end matrices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			settings, err := root.load(cmd)
			if err != nil {
				return err
			}

			matrices, err := settings.Matrices()
			if err != nil {
				return err
			}

			return write(cmd.OutOrStdout(), root.output, decomposeReport{
				Start: newTransformReport(matrices.Start),
				End:   newTransformReport(matrices.End),
			})

		},
	}
}
