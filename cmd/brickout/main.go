// brickout is a terminal brick-breaker: one paddle, one ball, three rows
// of bricks, three lives.
//
// Usage:
//
//	brickout play             - Play in the current terminal
//	brickout serve            - Serve the game over SSH
//	brickout history          - Show past rounds
//
// Global flags:
//
//	--config <path>  - Path to a config YAML
//	--db <path>      - Override the history database path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcade-tui/brickout/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickout",
	Short: "Brickout - break bricks in your terminal",
	Long: `Brickout is a terminal rendition of the classic brick-breaker:
move the paddle, launch the ball, clear the wall, keep your three lives.

Available commands:
  play     - Play in the current terminal
  serve    - Start an SSH server for remote play
  history  - View past rounds

Examples:
  brickout play
  brickout serve --ssh :2222
  brickout history`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadConfig resolves the effective configuration for a command run.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	return cfg, nil
}
