package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/showcase/internal/games/merge"
	"github.com/vovakirdan/showcase/internal/platform/tui"
	"github.com/vovakirdan/showcase/internal/registry"
)

var flagSize int

var playCmd = &cobra.Command{
	Use:   "play <widget>",
	Short: "Run a widget in the terminal",
	Long: `Run the specified widget in the terminal.

Controls:
  Arrows/WASD  - Move / slide tiles
  1-4          - Memory pads
  Enter/Space  - Start / confirm
  P            - Pause
  R            - Restart (after game over)
  T            - Toggle theme
  Ctrl+S       - Save a screenshot
  Ctrl+Y       - Copy the frame
  ?            - Help
  Q/Esc        - Quit

The mouse works everywhere.

Examples:
  showcase play rain
  showcase play network --theme light
  showcase play merge --size 5
  showcase play memory --sound
  showcase play bounce --config ./my-bounce.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Merge board size (3-5); asks when unset")
}

func runPlay(cmd *cobra.Command, args []string) {
	id := args[0]
	if !registry.Exists(id) {
		exitUnknown(id)
	}

	logger := newLogger()
	cfg := runtimeConfig()

	if id == "merge" {
		size := flagSize
		if size == 0 {
			selected, err := tui.RunMergeSizeSelector(cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			// User pressed back or quit
			if selected == 0 {
				return
			}
			size = selected
		}
		merge.SetSize(size)
	}

	game, err := registry.Create(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating widget: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	player := openPlayer(logger)

	runErr := tui.Run(game, store, cfg, player, logger)

	// Close resources before potential exit
	if player != nil {
		player.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running widget: %v\n", runErr)
		os.Exit(1)
	}
}
