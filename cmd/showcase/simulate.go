package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/showcase/internal/core"
	"github.com/vovakirdan/showcase/internal/games/bounce"
	"github.com/vovakirdan/showcase/internal/games/memory"
	"github.com/vovakirdan/showcase/internal/games/merge"
	"github.com/vovakirdan/showcase/internal/games/network"
	"github.com/vovakirdan/showcase/internal/games/rain"
	"github.com/vovakirdan/showcase/internal/platform/tui"
	"github.com/vovakirdan/showcase/internal/registry"
)

var (
	flagTicks     int
	flagSimWidth  int
	flagSimHeight int
	flagStart     bool
	flagColor     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <widget>",
	Short: "Run a widget headless and print the final frame",
	Long: `Step a widget a fixed number of ticks without a terminal, then print
the last frame and a state snapshot. The same seed always gives the same
output.

Examples:
  showcase simulate bounce --ticks 600 --seed 42
  showcase simulate memory --start --ticks 120 --seed 7
  showcase simulate rain --width 120 --height 40 --color`,
	Args: cobra.ExactArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 300, "Number of ticks to run")
	simulateCmd.Flags().IntVar(&flagSimWidth, "width", 0, "Surface width in cells (default: terminal width)")
	simulateCmd.Flags().IntVar(&flagSimHeight, "height", 0, "Surface height in cells (default: terminal height)")
	simulateCmd.Flags().BoolVar(&flagStart, "start", false, "Press confirm on the first tick")
	simulateCmd.Flags().BoolVar(&flagColor, "color", false, "Print the frame with colors")
}

func runSimulate(_ *cobra.Command, args []string) {
	id := args[0]
	if !registry.Exists(id) {
		exitUnknown(id)
	}

	game, err := registry.Create(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating widget: %v\n", err)
		os.Exit(1)
	}
	defer game.Destroy()

	cfg := runtimeConfig()
	cfg.Seed = seed()
	if flagSimWidth > 0 {
		cfg.ScreenW = flagSimWidth
	}
	if flagSimHeight > 0 {
		cfg.ScreenH = flagSimHeight
	}
	cfg = cfg.Normalize()

	game.Reset(cfg)
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)

	dt := 1000.0 / float64(registry.FrameRate(game, cfg.TickRate))
	in := core.NewInputFrame()
	for i := 0; i < flagTicks; i++ {
		if i == 0 && flagStart {
			in.Set(core.ActionConfirm)
		}
		game.Step(in, dt)
		game.Render(screen)
		in.Clear()
	}

	if flagColor {
		fmt.Println(tui.NewRenderer(cfg.Theme).Render(screen))
	} else {
		fmt.Print(screen.String())
	}

	state := game.State()
	fmt.Printf("\nwidget: %s  seed: %d  ticks: %d  score: %d  game over: %v\n",
		id, cfg.Seed, flagTicks, state.Score, state.GameOver)

	if snap := snapshot(game); snap != nil {
		out, err := yaml.Marshal(snap)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding snapshot: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(string(out))
	}
}

// snapshot returns the widget's own state snapshot, if it has one.
func snapshot(g registry.Game) any {
	switch g := g.(type) {
	case *bounce.Game:
		return g.Snapshot()
	case *rain.Game:
		return g.Snapshot()
	case *network.Game:
		return g.Snapshot()
	case *memory.Game:
		return g.Snapshot()
	case *merge.Game:
		return g.Snapshot()
	}
	return nil
}
