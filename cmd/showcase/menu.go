package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/showcase/internal/games/merge"
	"github.com/vovakirdan/showcase/internal/platform/tui"
	"github.com/vovakirdan/showcase/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the showcase with a widget picker menu",
	Long: `Start the showcase in interactive menu mode.

Use arrow keys or W/S to navigate, Enter to select a widget.
When you leave a widget, you return to the menu.

Controls:
  Up/Down/W/S  - Navigate menu
  Enter/Space  - Select widget
  Tab          - High scores
  Q            - Quit

Examples:
  showcase menu
  showcase menu --fps 30
  showcase menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := newLogger()
	store := openStore(logger)
	player := openPlayer(logger)
	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		id := menuResult.GameID
		if id == "" {
			break
		}

		if id == "merge" {
			size, sizeErr := tui.RunMergeSizeSelector(cfg)
			if sizeErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sizeErr)
				continue
			}
			// User pressed back or quit
			if size == 0 {
				continue
			}
			merge.SetSize(size)
		}

		game, err := registry.Create(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating widget: %v\n", err)
			continue
		}

		// Fresh seed for each run unless one was pinned
		run := cfg
		run.Seed = flagSeed
		if run.Seed == 0 {
			run.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, run, player, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running widget: %v\n", err)
		}
	}

	// Cleanup
	if player != nil {
		player.Close()
	}
	if store != nil {
		store.Close()
	}
}
