package cli

import (
	"context"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/solarlune/transformblend"
)

type sweepStep struct {
	Factor float32 `json:"factor"`
	transformReport
}

type sweepReport struct {
	Settings settingsReport `json:"settings"`
	Steps    []sweepStep    `json:"steps"`
}

// sweep blends start towards end at steps evenly spaced factors from 0 to 1 inclusive, spread across the given number of workers.
// The factor in cfg is ignored.
func sweep(ctx context.Context, start, end transformblend.Matrix4, cfg transformblend.BlendConfig, steps, workers int) ([]sweepStep, error) {

	if steps < 2 {
		return nil, fmt.Errorf("a sweep needs at least 2 steps, got %d", steps)
	}

	if workers < 1 {
		workers = 1
	}

	results := make([]sweepStep, steps)
	indices := make(chan int)

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer close(indices)
		for i := range results {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case indices <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			for i := range indices {
				// Each worker has its own copy of cfg.
				stepCfg := cfg
				stepCfg.Factor = float32(i) / float32(steps-1)
				results[i] = sweepStep{
					Factor:          stepCfg.Factor,
					transformReport: newTransformReport(transformblend.Blend(start, end, stepCfg)),
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil

}

func newSweepCommand(root *rootOptions) *cobra.Command {

	var steps, workers int

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Blend at evenly spaced factors from 0 to 1 and report each result",
		Long: `sweep runs the blend at --steps factors from 0 to 1 inclusive, in parallel. Watching the determinant
across the sweep shows whether the blend keeps its volume and handedness.`,
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

			root.log.WithFields(logrus.Fields{"steps": steps, "workers": workers}).Debug("sweeping")

			results, err := sweep(cmd.Context(), matrices.Start, matrices.End, cfg, steps, workers)
			if err != nil {
				return err
			}

			report := newSettingsReport(cfg)
			return write(cmd.OutOrStdout(), root.output, sweepReport{Settings: report, Steps: results})

		},
	}

	cmd.Flags().IntVar(&steps, "steps", 11, "Number of factors to blend at, including 0 and 1")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "Number of blends to run at once")

	return cmd

}
