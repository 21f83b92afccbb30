package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	bestStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best scores",
	Long: `Display the top scores recorded on this machine, followed by
overall stats. --clear deletes the recorded games; the best score
is kept.

Examples:
  brickbreaker scores
  brickbreaker scores --limit 5
  brickbreaker scores --clear
  brickbreaker scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded games")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Recorded games cleared.")
		return
	}

	scores, err := store.TopScores(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(headerStyle.Render("High Scores - Brick Breaker"))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println(dimStyle.Render("Play 'brickbreaker play' to set the first high score!"))
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Result", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6s  %s\n", i+1, entry.Score, entry.Outcome, dateStr)
	}

	fmt.Println()
	if best, ok, err := store.Value(storage.HighScoreKey); err == nil && ok {
		fmt.Println(bestStyle.Render(fmt.Sprintf("Best: %d", best)))
	}

	stats, err := store.GetGameStats()
	if err != nil {
		return
	}
	fmt.Println(dimStyle.Render(fmt.Sprintf(
		"Games: %d  Wins: %d  Average: %.1f",
		stats.GamesCount, stats.Wins, stats.AvgScore,
	)))
}
