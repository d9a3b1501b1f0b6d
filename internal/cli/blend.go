package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/solarlune/transformblend"
)

type blendReport struct {
	Settings settingsReport  `json:"settings"`
	Start    transformReport `json:"start"`
	End      transformReport `json:"end"`
	Change   transformReport `json:"change"`

	// Target is where the start translation lands when lerped towards the target point on its own.
	Target *[3]float32 `json:"target,omitempty"`
}

func newBlendCommand(root *rootOptions) *cobra.Command {

	var export string

	cmd := &cobra.Command{
		Use:   "blend",
		Short: "Blend the start matrix towards the end matrix",
		Example: `  transformblend blend --factor 0.25 --config blend.yaml
  transformblend blend --scene scene.glb --start-node A --end-node B --export blended.gltf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			settings, err := root.load(cmd)
			if err != nil {
				return err
			}

			matrices, err := settings.Matrices()
			if err != nil {
				return err
			}

			cfg := settings.BlendConfig()
			change := transformblend.Blend(matrices.Start, matrices.End, cfg)

			root.log.WithFields(logrus.Fields{
				"startDeterminant":  matrices.Start.Determinant(),
				"endDeterminant":    matrices.End.Determinant(),
				"changeDeterminant": change.Determinant(),
			}).Info("blended")

			if export != "" {
				if err := transformblend.ExportBlendScene(export, matrices.Start, matrices.End, change); err != nil {
					return err
				}
				root.log.WithField("path", export).Info("exported blend scene")
			}

			report := blendReport{
				Settings: newSettingsReport(cfg),
				Start:    newTransformReport(matrices.Start),
				End:      newTransformReport(matrices.End),
				Change:   newTransformReport(change),
			}

			if target, ok := settings.TargetPoint(); ok {
				pos := transformblend.TargetMarker(matrices.Start, target, cfg.Factor).Start
				report.Target = &[3]float32{pos.X, pos.Y, pos.Z}
			}

			return write(cmd.OutOrStdout(), root.output, report)

		},
	}

	cmd.Flags().StringVar(&export, "export", "", "Write the start, end, and change matrices to a glTF (.gltf or .glb) file")

	return cmd

}
