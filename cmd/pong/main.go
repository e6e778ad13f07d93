// pong opens a window with two keyboard-driven paddles and a bouncing ball.
//
// Usage:
//
//	pong                     - Play in a window (W/S and Up/Down, Esc quits)
//	pong simulate            - Run headless on scripted input and print the final state
//
// Global flags:
//
//	--config <path>      - YAML config overriding the built-in defaults
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--profile <kind>     - Write a cpu or mem profile to the working directory
//	--verify-replay      - After quitting, replay the session headless and check it ends the same
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/pong/internal/application/game"
	"github.com/younwookim/pong/internal/application/replay"
	"github.com/younwookim/pong/internal/infrastructure/config"
	"github.com/younwookim/pong/internal/infrastructure/input"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagProfile  string
	flagVerify   bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "pong",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("pong failed", "err", err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Two paddles and a ball",
	Long: `Pong opens a 1280x720 window with two paddles and a bouncing ball.

Controls:
  W/S         - Left paddle
  Up/Down     - Right paddle
  Esc         - Quit

Examples:
  pong
  pong --config ./fast.yaml
  pong simulate --frames 120 --hold ArrowDown`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Profile the run: cpu or mem")

	rootCmd.Flags().BoolVar(&flagVerify, "verify-replay", false, "Replay the session headless after quitting and check it ends the same")

	rootCmd.AddCommand(simulateCmd)
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	stop, err := startProfile(flagProfile)
	if err != nil {
		return err
	}
	defer stop()

	cfg, err := config.LoadFile(flagConfig)
	if err != nil {
		return err
	}
	w, err := buildWorld(cfg)
	if err != nil {
		return err
	}

	rec := replay.NewRecorder(input.NewKeyboard())
	if !flagVerify {
		rec.Stop()
	}

	rt := game.New(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, w.options(game.WithSource(rec))...)
	if err := rt.BindScene(w.scene); err != nil {
		return err
	}

	logger.Info("starting", "title", cfg.Window.Title, "width", cfg.Window.Width, "height", cfg.Window.Height)
	if err := rt.Run(); err != nil {
		return err
	}
	logger.Info("stopped", "frames", rt.Frame())

	if !rec.IsRecording() {
		return nil
	}
	ok, err := verifyReplay(cfg, rec.Frames(), rt.Scene())
	if err != nil {
		return fmt.Errorf("failed to verify replay: %w", err)
	}
	if !ok {
		return fmt.Errorf("replay of %d frames diverged from the live session", rec.FrameCount())
	}
	logger.Info("replay matches live session", "frames", rec.FrameCount())
	return nil
}
