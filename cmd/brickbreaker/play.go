package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Brick Breaker right away.

Controls:
  Left/A/H     - Move paddle left
  Right/D/L    - Move paddle right
  Mouse        - Move paddle to the pointer
  P/Space      - Pause / resume
  R/Enter      - Restart (when paused or over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Wide paddle, no speedup on bounces
  normal - Default paddle, ball speeds up on bounces
  hard   - Narrow paddle, faster speedup
  fixed  - No speed progression

Examples:
  brickbreaker play
  brickbreaker play --difficulty easy
  brickbreaker play --seed 42
  brickbreaker play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)

	logger.Info("starting game", "fps", flagFPS, "seed", flagSeed, "difficulty", flagDifficulty)
	runErr := tui.RunGame(tui.Options{
		Config:  gameCfg,
		Runtime: runtimeConfig(),
		Store:   store,
		Logger:  logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game failed", "err", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
