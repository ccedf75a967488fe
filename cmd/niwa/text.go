package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/niwa/internal/core"
	"github.com/vovakirdan/niwa/internal/games/niwa"
	"github.com/vovakirdan/niwa/internal/platform/text"
	"github.com/vovakirdan/niwa/internal/registry"
	"github.com/vovakirdan/niwa/internal/storage"
)

var flagTextGarden bool

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Play one room as a line-buffered text loop",
	Long: `Reads command characters from standard input one line at a time and
prints the board after each line. Useful over plain pipes and for scripting.

Examples:
  niwa text --level 01-first-light
  printf 'wcd\nsscd\n' | niwa text
  niwa text --garden --seed 7`,
	Run: runText,
}

func init() {
	textCmd.Flags().StringVar(&flagLevel, "level", "", "Campaign level id")
	textCmd.Flags().BoolVar(&flagTextGarden, "garden", false, "Play a generated garden instead of a level")
}

func runText(cmd *cobra.Command, args []string) {
	a := setup(os.Stderr)
	defer a.Close()

	gameID := niwa.CampaignID
	if flagTextGarden {
		gameID = niwa.GardenID
	}
	g, err := registry.CreateConfigured(gameID, a.cfg)
	if err != nil {
		a.Close()
		fail("%v", err)
	}
	ng := g.(*niwa.Game)

	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	rc.Level = flagLevel
	ng.Reset(rc)
	if err := ng.Err(); err != nil {
		a.Close()
		fail("%v", err)
	}

	keys, err := a.cfg.Keys.GameKeys()
	if err != nil {
		a.Close()
		fail("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st := ng.State()
	a.logger.Info("Level loaded", "game", gameID, "level", st.Level)
	res, err := text.Run(ctx, os.Stdin, os.Stdout, ng.Session(), keys, a.logger)
	if err != nil && ctx.Err() == nil {
		a.Close()
		fail("%v", err)
	}

	if a.store != nil && res.Score > 0 {
		_, err := a.store.SaveRun(storage.Run{
			GameID:  gameID,
			Level:   st.Level,
			Score:   res.Score,
			Moves:   res.Moves,
			Casts:   res.Casts,
			Cleared: res.Cleared,
		})
		if err != nil {
			a.logger.Warn("Could not save run", "error", err)
		}
	}
	if !res.Cleared {
		fmt.Printf("Score: %d\n", res.Score)
	}
}
