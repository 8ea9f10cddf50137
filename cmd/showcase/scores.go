package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/showcase/internal/registry"
	"github.com/vovakirdan/showcase/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [widget]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for the specified widget, or a summary of
every widget that keeps scores when none is named.

Examples:
  showcase scores
  showcase scores merge
  showcase scores memory --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the widget")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a widget")
			store.Close()
			os.Exit(1)
		}
		if err := printSummary(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		return
	}

	id := args[0]
	if !registry.Exists(id) {
		store.Close()
		exitUnknown(id)
	}
	if !storage.Scored(id) {
		fmt.Printf("%s does not keep scores.\n", id)
		return
	}

	if flagClear {
		if err := store.ClearScores(id); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", id)
		return
	}

	if err := printTop(store, id); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func printTop(store *storage.Store, id string) error {
	scores, err := store.TopScores(id, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title(id))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'showcase play %s' to set the first high score!\n", id)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "When")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10s  %s\n", i+1, humanize.Comma(int64(entry.Score)), humanize.Time(entry.CreatedAt))
	}

	stats, err := store.GetGameStats(id)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %s  Games: %d  Average: %s\n",
		humanize.Comma(int64(stats.HighScore)), stats.GamesCount, humanize.CommafWithDigits(stats.AvgScore, 1))
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-20s  %-10s  %-6s  %s\n", "Widget", "Best", "Games", "Last played")
	fmt.Printf("  %-20s  %-10s  %-6s  %s\n", "------", "----", "-----", "-----------")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-20s  %-10s  %-6d  %s\n",
			title(id), humanize.Comma(int64(s.HighScore)), s.GamesCount, humanize.Time(s.LastPlayed))
	}
	return nil
}

// title looks up a widget's display name, falling back to its id.
func title(id string) string {
	for _, w := range registry.List() {
		if w.ID == id {
			return w.Title
		}
	}
	return id
}
