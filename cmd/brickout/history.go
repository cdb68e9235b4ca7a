package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcade-tui/brickout/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past rounds",
	Long: `Display the most recent finished rounds.

Examples:
  brickout history
  brickout history --limit 50`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of rounds to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	records, err := store.RecentRounds(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Round history")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'brickout play' to record the first one!")
		return
	}

	fmt.Printf("  %-8s  %-7s  %-7s  %-6s  %s\n", "Outcome", "Ticks", "Bricks", "Lives", "Date")
	fmt.Printf("  %-8s  %-7s  %-7s  %-6s  %s\n", "-------", "-----", "------", "-----", "----")

	for _, r := range records {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-8s  %-7d  %-7d  %-6d  %s\n", r.Outcome, r.Ticks, r.BricksCleared, r.LivesLeft, dateStr)
	}

	total, won, err := store.Summary()
	if err == nil {
		fmt.Println()
		fmt.Printf("Rounds: %d  Won: %d\n", total, won)
	}
}
