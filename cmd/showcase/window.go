package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/showcase/internal/core"
	"github.com/vovakirdan/showcase/internal/platform/desktop"
	"github.com/vovakirdan/showcase/internal/registry"
)

var (
	flagWindowWidth  int
	flagWindowHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window <widget>",
	Short: "Run a widget in a desktop window",
	Long: `Open a desktop window and run the widget on a true pixel surface.

Only widgets that draw in pixels can run here: bounce, rain and network.

Controls:
  Mouse        - Interact
  P            - Pause
  R            - Restart
  T            - Toggle theme
  Q/Esc        - Close

Examples:
  showcase window network
  showcase window rain --width 1280 --height 720`,
	Args: cobra.ExactArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWindowWidth, "width", desktop.DefaultWidth, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagWindowHeight, "height", desktop.DefaultHeight, "Window height in pixels")
}

func runWindow(_ *cobra.Command, args []string) {
	id := args[0]
	if !registry.Exists(id) {
		exitUnknown(id)
	}

	game, err := registry.Create(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating widget: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger()
	player := openPlayer(logger)

	opts := desktop.Options{
		Width:  flagWindowWidth,
		Height: flagWindowHeight,
		Config: core.RuntimeConfig{
			TickRate: flagFPS,
			Seed:     seed(),
			Theme:    resolveTheme(),
		},
		Player: player,
		Logger: logger,
	}

	runErr := desktop.Run(game, opts)

	if player != nil {
		player.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
