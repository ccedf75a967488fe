package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/niwa/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive game menu",
	Long: `Opens a menu to pick a game. The campaign continues into a level
picker, and Tab shows the scoreboard.`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	a := setup(io.Discard)
	defer a.Close()

	if err := tui.RunSession(a.env(nil), runtimeConfig("")); err != nil {
		a.Close()
		fail("%v", err)
	}
}
