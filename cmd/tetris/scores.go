package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagScoreLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top scores for the given mode, plus line totals.
Sprint modes are ranked by their fastest finished runs.

Examples:
  tetris scores tetris
  tetris scores tetris_sprint --limit 5`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoreLimit, "limit", 10, "Number of entries to show")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	info, ok := registry.Info(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if strings.HasSuffix(gameID, "_sprint") {
		err = printSprints(store, gameID)
	} else {
		err = printScores(store, gameID)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Lines: %d  Tetrises: %d  T-Spins: %d\n",
			stats.HighScore, stats.GamesCount, stats.TotalLines, stats.Tetrises, stats.TSpins)
	}
}

func printScores(store *storage.Store, gameID string) error {
	scores, err := store.TopScores(gameID, flagScoreLimit)
	if err != nil {
		return err
	}
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tetris play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "----", "-----", "------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-12s  %s\n", i+1, entry.Score, entry.Player, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printSprints(store *storage.Store, gameID string) error {
	runs, err := store.FastestRuns(gameID, flagScoreLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No finished sprints yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "Rank", "Time", "Player", "Run")
	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "----", "----", "------", "---")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-10s  %-12s  %s\n", i+1, core.FormatDuration(r.Duration), r.Player, r.RunID)
	}
	return nil
}
