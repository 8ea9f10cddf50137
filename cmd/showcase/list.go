package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/showcase/internal/registry"
	"github.com/vovakirdan/showcase/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available widgets",
	Long:  `Shows every widget registered in the showcase and the hosts it can run in.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	widgets := registry.List()

	if len(widgets) == 0 {
		fmt.Println("No widgets available.")
		return
	}

	fmt.Println("Available widgets:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, w := range widgets {
		maxIDLen = max(maxIDLen, len(w.ID))
		maxTitleLen = max(maxTitleLen, len(w.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Notes")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----")

	for _, w := range widgets {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, w.ID, maxTitleLen, w.Title, notes(w.ID))
	}

	fmt.Println()
	fmt.Println("Run 'showcase play <id>' to run a widget in the terminal.")
}

// notes lists what a widget supports beyond the terminal.
func notes(id string) string {
	var out string
	if g, err := registry.Create(id); err == nil {
		if _, ok := g.(registry.Drawer); ok {
			out = "window"
		}
		g.Destroy()
	}
	if storage.Scored(id) {
		if out != "" {
			out += ", "
		}
		out += "scores"
	}
	return out
}
