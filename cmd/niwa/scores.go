package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/niwa/internal/registry"
)

var (
	flagScoresLevel string
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the best runs for the specified game.

Examples:
  niwa scores niwa
  niwa scores niwa --level 01-first-light
  niwa scores niwa_garden --limit 20
  niwa scores niwa --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresLevel, "level", "", "Only show runs of this level")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run of the game")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'niwa list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	a := setup(os.Stderr)
	defer a.Close()
	if a.store == nil {
		a.Close()
		fail("scores database is not available")
	}

	if flagScoresClear {
		if err := a.store.ClearScores(gameID); err != nil {
			a.Close()
			fail("%v", err)
		}
		fmt.Printf("Cleared scores for %s\n", game.Title())
		return
	}

	runs, err := a.store.TopScores(gameID, flagScoresLevel, flagScoresLimit)
	if err != nil {
		a.Close()
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'niwa play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-20s  %-6s  %-5s  %-5s  %-8s  %s\n", "Rank", "Level", "Score", "Moves", "Casts", "Cleared", "Date")
	fmt.Printf("  %-4s  %-20s  %-6s  %-5s  %-5s  %-8s  %s\n", "----", "-----", "-----", "-----", "-----", "-------", "----")
	for i, r := range runs {
		cleared := "no"
		if r.Cleared {
			cleared = "yes"
		}
		fmt.Printf("  %-4d  %-20s  %-6d  %-5d  %-5d  %-8s  %s\n",
			i+1, r.Level, r.Score, r.Moves, r.Casts, cleared, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if st, err := a.store.Stats(gameID); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Cleared: %d\n", st.BestScore, st.Runs, st.Cleared)
	}
}
