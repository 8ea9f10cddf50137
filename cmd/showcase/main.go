// showcase hosts a set of interactive widgets in the terminal, in a desktop
// window and over SSH.
//
// Usage:
//
//	showcase list                 - List available widgets
//	showcase play <widget>        - Run a widget in the terminal
//	showcase menu                 - Pick widgets interactively
//	showcase window <widget>      - Run a widget in a desktop window
//	showcase simulate <widget>    - Headless deterministic run
//	showcase scores [widget]      - Show high scores
//	showcase serve                - Start SSH server for remote sessions
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--config <path>     - Widget config YAML
//	--theme <name>      - auto, dark or light
//	--db <path>         - Set database path (default: ~/.showcase/scores.db)
//	--sound             - Play widget cues
//	--log-file <path>   - Write logs to a file
//	--log-level <name>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/showcase/internal/audio"
	"github.com/vovakirdan/showcase/internal/core"
	"github.com/vovakirdan/showcase/internal/games/bounce"
	"github.com/vovakirdan/showcase/internal/games/memory"
	"github.com/vovakirdan/showcase/internal/games/merge"
	"github.com/vovakirdan/showcase/internal/games/network"
	"github.com/vovakirdan/showcase/internal/games/rain"
	"github.com/vovakirdan/showcase/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagTheme    string
	flagDBPath   string
	flagSound    bool
	flagLogFile  string
	flagLogLevel string
)

// logFile is closed when the command finishes.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "showcase",
	Short: "Showcase - interactive widgets for your terminal",
	Long: `Showcase hosts a small collection of interactive widgets: bouncing
particles, glyph rain, a force network, a sequence memory game and a
merge-tile puzzle.

Available commands:
  list      - Show all available widgets
  play      - Run a specific widget in the terminal
  menu      - Interactive widget picker
  window    - Run a widget in a desktop window
  simulate  - Headless run that prints the final frame
  scores    - View high scores
  serve     - Start SSH server for remote sessions

Examples:
  showcase list
  showcase play rain
  showcase menu --theme light
  showcase window network
  showcase simulate bounce --ticks 300 --seed 42
  showcase serve --ssh :2222
  showcase scores merge`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a widget config YAML")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "auto", "Color theme: auto, dark, light")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play widget sound cues")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup validates global flags and points every widget at --config.
func setup(cmd *cobra.Command, _ []string) error {
	if flagTheme != "auto" {
		if _, ok := core.ParseTheme(flagTheme); !ok {
			return fmt.Errorf("unknown theme %q (want auto, dark or light)", flagTheme)
		}
	}
	if _, err := log.ParseLevel(flagLogLevel); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	bounce.SetConfigPath(flagConfig)
	rain.SetConfigPath(flagConfig)
	network.SetConfigPath(flagConfig)
	memory.SetConfigPath(flagConfig)
	merge.SetConfigPath(flagConfig)
	return nil
}

// newLogger logs to --log-file, or nowhere so the alt screen stays clean.
func newLogger() *log.Logger {
	var w io.Writer = io.Discard
	if flagLogFile != "" && logFile == nil {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			logFile = f
		}
	}
	if logFile != nil {
		w = logFile
	}

	level, _ := log.ParseLevel(flagLogLevel)
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "showcase",
	})
}

// resolveTheme turns --theme into a concrete theme. auto asks the terminal.
func resolveTheme() core.Theme {
	if t, ok := core.ParseTheme(flagTheme); ok {
		return t
	}
	if lipgloss.HasDarkBackground() {
		return core.ThemeDark
	}
	return core.ThemeLight
}

// runtimeConfig builds the host config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Theme:    resolveTheme(),
	}
}

// openStore opens the scores database. Widgets still run without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("storage disabled", "error", err)
		return nil
	}
	return store
}

// openPlayer starts audio when --sound is set. A missing speaker only
// costs the sound.
func openPlayer(logger *log.Logger) *audio.Player {
	if !flagSound {
		return nil
	}
	p := audio.NewPlayer(0.5)
	if err := p.Init(); err != nil {
		logger.Warn("audio disabled", "error", err)
		return nil
	}
	return p
}

// seed returns --seed, or a time seed when it is unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

func exitUnknown(id string) {
	fmt.Fprintf(os.Stderr, "Error: unknown widget %q\n", id)
	fmt.Fprintln(os.Stderr, "Run 'showcase list' to see available widgets.")
	os.Exit(1)
}
