package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/niwa/internal/platform/tui"
	"github.com/vovakirdan/niwa/internal/registry"
)

var flagLevel string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls (letters follow the keys section of the config):
  W/A/S/D, arrows  - Move
  C, Space         - Arm a cast; the next direction casts instead of moving
  Enter            - Next room after clearing
  R                - Restart the room
  ?                - Toggle help
  Esc, Q, Ctrl+C   - Quit

Examples:
  niwa play niwa
  niwa play niwa --level 03-walled-garden
  niwa play niwa_garden --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Campaign level id to start on")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'niwa list' to see available games.")
		os.Exit(1)
	}

	a := setup(io.Discard)
	defer a.Close()

	if err := tui.Run(gameID, a.env(nil), runtimeConfig(flagLevel)); err != nil {
		a.Close()
		fail("%v", err)
	}
}
