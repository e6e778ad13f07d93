package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/pong/internal/application/replay"
	"github.com/younwookim/pong/internal/domain/entity"
	"github.com/younwookim/pong/internal/domain/pong"
	"github.com/younwookim/pong/internal/infrastructure/config"
	"github.com/younwookim/pong/internal/infrastructure/input"
)

var (
	flagFrames int
	flagHold   []string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless on scripted input and print the final state",
	Long: `Simulate runs the game without a window, drawing into memory, while
holding the given keys every frame. When the script ends it prints where
every entity ended up.

Examples:
  pong simulate --frames 60
  pong simulate --frames 30 --hold W,ArrowDown`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to run")
	simulateCmd.Flags().StringSliceVar(&flagHold, "hold", nil, "Keys held every frame, comma separated (e.g. W,ArrowDown)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagFrames < 0 {
		return fmt.Errorf("--frames must not be negative, got %d", flagFrames)
	}
	held, err := input.ParseKeys(flagHold)
	if err != nil {
		return fmt.Errorf("invalid --hold: %w", err)
	}

	stop, err := startProfile(flagProfile)
	if err != nil {
		return err
	}
	defer stop()

	cfg, err := config.LoadFile(flagConfig)
	if err != nil {
		return err
	}
	player := replay.NewReplayer(replay.Hold(flagFrames, held...))
	rt, err := runHeadless(cfg, player)
	if err != nil {
		return err
	}

	logger.Info("simulation finished", "frames", rt.Frame(), "script", player.TotalFrames(), "played", player.CurrentFrame())
	for _, line := range describeAll(rt.Scene()) {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

func describe(e entity.Entity) string {
	switch e := e.(type) {
	case *pong.Background:
		return "background"
	case *pong.Paddle:
		return fmt.Sprintf("paddle side=%s x=%d y=%d", e.Side, e.X(), e.Y)
	case *pong.Ball:
		return fmt.Sprintf("ball x=%d y=%d dx=%d dy=%d", e.X, e.Y, e.DX, e.DY)
	default:
		return fmt.Sprintf("%T", e)
	}
}
