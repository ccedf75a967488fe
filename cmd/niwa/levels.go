package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/niwa/internal/config"
	"github.com/vovakirdan/niwa/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels",
	Long: `Lists the built-in levels together with any found in levels.dir.
A user level with the same id replaces the built-in one.`,
	Run: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	dir, err := config.ExpandHome(cfg.Levels.Dir)
	if err != nil {
		fail("%v", err)
	}

	all, err := levels.NewCatalog(dir).LoadAll()
	if err != nil {
		fail("%v", err)
	}
	if len(all) == 0 {
		fmt.Fprintln(os.Stderr, "No levels found.")
		return
	}

	maxIDLen := 2
	for _, l := range all {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Size", "Name")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "----", "----")
	for _, l := range all {
		size := fmt.Sprintf("%dx%d", l.Size.X, l.Size.Y)
		fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, l.ID, size, l.Name)
	}

	fmt.Println()
	fmt.Println("Run 'niwa play niwa --level <id>' to start on a level.")
}
