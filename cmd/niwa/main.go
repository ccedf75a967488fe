// niwa is a terminal garden puzzle: walk the room, cast along straight
// lines and seal every region.
//
// Usage:
//
//	niwa list                - List available games
//	niwa play <game>         - Play a game
//	niwa menu                - Start menu to pick games interactively
//	niwa text                - Play a level as a line-buffered text loop
//	niwa serve               - Start SSH server for remote play
//	niwa scores <game>       - Show high scores for a game
//	niwa levels              - List campaign levels
//	niwa config              - Print the default configuration
//
// Global flags:
//
//	--config <path>    - Configuration file (default: search ~/.niwa/configs, ./configs)
//	--seed <value>     - RNG seed for generated gardens
//	--db <path>        - Database path (default: storage.path from config)
//	--log-level <lvl>  - Override log.level from config
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/niwa/internal/games/niwa"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagTheme    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "niwa",
	Short: "Niwa - tend a walled garden in your terminal",
	Long: `Niwa is a turn-based puzzle played in the terminal. Walk the garden,
arm a cast and send it along a straight line: the first region wall it
meets seals the region. Seal every region to clear the room.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  text     - Plain line-buffered mode on stdin/stdout
  serve    - Start SSH server for remote play
  scores   - View high scores
  levels   - List campaign levels
  config   - Print the default configuration

Examples:
  niwa list
  niwa play niwa --level 02-stepping-stones
  niwa play niwa_garden --seed 42
  niwa menu
  niwa serve --ssh :2222 --metrics :9090
  niwa scores niwa`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "default", "Colour theme: default, mono")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits, as every command does on fatal errors.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
