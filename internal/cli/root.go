// Package cli implements the transformblend command: blending, decomposing, and sweeping transform matrices.
package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/solarlune/transformblend/internal/config"
)

type rootOptions struct {
	configPath string
	logLevel   string
	output     string

	log *logrus.Logger
}

// NewRootCommand returns the transformblend command with all of its subcommands. Results are written to out;
// log messages go to the command's error output.
func NewRootCommand(out io.Writer) *cobra.Command {

	opts := &rootOptions{log: logrus.New()}

	cmd := &cobra.Command{
		Use:   "transformblend",
		Short: "Blend, decompose, and sweep 4x4 transform matrices",
		Long: `transformblend interpolates between two 4x4 transform matrices by decomposing them into
translation, rotation, and scale, blending each part separately, and recomposing the result.

The start and end matrices come from a config file (--config), TRANSFORMBLEND_* environment
variables, flags, or two named nodes in a glTF scene (--scene).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			opts.log.SetLevel(level)
			opts.log.SetOutput(cmd.ErrOrStderr())
			return validateOutput(opts.output)
		},
	}

	cmd.SetOut(out)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML or JSON file to read the blend settings from")
	flags.StringVar(&opts.logLevel, "log-level", "warning", "Log level (panic, fatal, error, warning, info, debug, trace)")
	flags.StringVarP(&opts.output, "output", "o", outputYAML, "Output format (yaml, json)")
	config.AddFlags(flags)

	cmd.AddCommand(
		newBlendCommand(opts),
		newDecomposeCommand(opts),
		newSweepCommand(opts),
	)

	return cmd

}

// load reads the blend settings for the command being run, and the start and end matrices they describe.
func (opts *rootOptions) load(cmd *cobra.Command) (config.Options, error) {

	settings, err := config.Load(opts.configPath, cmd.Flags())
	if err != nil {
		return config.Options{}, err
	}

	opts.log.WithFields(logrus.Fields{
		"factor":      settings.Factor,
		"rotation":    settings.Rotation,
		"scale":       settings.Scale,
		"translation": settings.Translation,
		"slerp":       settings.Slerp,
		"scene":       settings.Scene,
	}).Debug("loaded blend settings")

	return settings, nil

}
