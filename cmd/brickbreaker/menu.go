package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the main menu",
	Long: `Start Brick Breaker in interactive menu mode.

Pick Play to start a game or Scores to browse the scoreboard.
Press B or Esc in a paused or finished game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  brickbreaker menu
  brickbreaker menu --fps 30
  brickbreaker menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
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

	user := os.Getenv("USER")
	runErr := tui.RunSession(tui.Options{
		Config:  gameCfg,
		Runtime: runtimeConfig(),
		Store:   store,
		Logger:  logger,
	}, user)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("session failed", "err", runErr)
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
