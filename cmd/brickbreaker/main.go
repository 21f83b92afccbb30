// brickbreaker is a brick breaker game for the terminal.
//
// Usage:
//
//	brickbreaker play        - Play a game directly
//	brickbreaker menu        - Start the menu with the scoreboard
//	brickbreaker serve       - Start SSH server for remote play
//	brickbreaker scores      - Show the best recorded scores
//	brickbreaker config      - Print the effective game config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible brick colors
//	--db <path>         - Set database path (default: ~/.brickbreaker/brickbreaker.db)
//	--log-file <path>   - Log file for interactive commands
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick Breaker - Clear the wall in your terminal",
	Long: `Brick Breaker is a terminal take on the classic brick breaker game.
Bounce the ball off the paddle and destroy every brick without
letting the ball reach the floor.

Available commands:
  play     - Play a game directly
  menu     - Interactive menu with the scoreboard
  serve    - Start SSH server for remote play
  scores   - View the best scores
  config   - Print the effective game config

Examples:
  brickbreaker play
  brickbreaker play --difficulty hard
  brickbreaker menu
  brickbreaker serve --ssh :2222
  brickbreaker scores --limit 5`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLogFile, "Log file for play and menu")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
