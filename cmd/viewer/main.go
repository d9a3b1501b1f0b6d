package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/solarlune/transformblend/internal/config"
	"github.com/solarlune/transformblend/internal/viewer"
)

func main() {

	var configPath, logLevel string
	var duration float32
	var width, height int

	log := logrus.New()

	cmd := &cobra.Command{
		Use:          "viewer",
		Short:        "Watch a blend between two transforms in a window",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {

			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			log.SetLevel(level)

			settings, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}

			matrices, err := settings.Matrices()
			if err != nil {
				return err
			}

			game := viewer.NewGame(matrices.Start, matrices.End, settings.BlendConfig(), log)
			game.Animator.Duration = duration
			game.Animator.SetFactor(game.Animator.Factor())
			if target, ok := settings.TargetPoint(); ok {
				game.Target = &target
			}
			game.Width = width
			game.Height = height

			ebiten.SetWindowTitle("transformblend")
			ebiten.SetWindowSize(width*2, height*2)
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

			log.WithFields(logrus.Fields{"scene": settings.Scene, "slerp": settings.Slerp}).Info("starting viewer")

			return ebiten.RunGame(game)

		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "YAML or JSON file to read the blend settings from")
	flags.StringVar(&logLevel, "log-level", "info", "Log level (panic, fatal, error, warning, info, debug, trace)")
	flags.Float32Var(&duration, "duration", 2, "Seconds for the factor to sweep from 0 to 1")
	flags.IntVar(&width, "width", 640, "Screen width in pixels")
	flags.IntVar(&height, "height", 360, "Screen height in pixels")
	config.AddFlags(flags)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}

}
