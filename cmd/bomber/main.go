// bomber is a two-player arena game for a single terminal keyboard.
//
// Usage:
//
//	bomber play              - Start a match right away
//	bomber menu              - Pick a difficulty or browse history
//	bomber serve             - Start SSH server for remote play
//	bomber history           - Print recent matches and standings
//	bomber config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible power-ups
//	--db <path>            - Set database path (default: ~/.bomber/history.db)
//	--config <path>        - Use a custom YAML config
//	--difficulty <preset>  - easy, normal, hard or classic
//	--log-level <level>    - debug, info, warn or error
//	--log-file <path>      - Write logs to a file
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bomber",
	Short: "Bomber - a two-player arena game in your terminal",
	Long: `Bomber is a terminal arena game for two players sharing one keyboard.
Drop bombs, break crates, collect power-ups and be the last one standing.

Available commands:
  play     - Start a match directly
  menu     - Interactive menu with difficulty and history
  serve    - Start SSH server for remote play
  history  - Print recent matches and standings
  config   - Print the default configuration

Environment (also read from a .env file):
  BOMBER_DB         - default for --db
  BOMBER_FPS        - default for --fps
  BOMBER_LOG_LEVEL  - default for --log-level

Examples:
  bomber play
  bomber play --difficulty classic
  bomber menu
  bomber serve --ssh :2222
  bomber history`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnvironment,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bomber/history.db", "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, classic")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnvironment loads .env and fills flags the user did not set.
func applyEnvironment(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot read .env: %w", err)
	}

	flags := cmd.Flags()
	if v := os.Getenv("BOMBER_DB"); v != "" && !flags.Changed("db") {
		flagDBPath = v
	}
	if v := os.Getenv("BOMBER_LOG_LEVEL"); v != "" && !flags.Changed("log-level") {
		flagLogLevel = v
	}
	if v := os.Getenv("BOMBER_FPS"); v != "" && !flags.Changed("fps") {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BOMBER_FPS: %w", err)
		}
		flagFPS = fps
	}
	if flagFPS < 1 || flagFPS > 240 {
		return fmt.Errorf("--fps must be between 1 and 240, got %d", flagFPS)
	}
	return nil
}
