package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/platform/tui"
	"github.com/vovakirdan/tui-bomber/internal/storage"
)

var (
	flagLimit int
	flagMatch string
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent matches and standings",
	Long: `Print the most recent matches and the overall standings.

Examples:
  bomber history
  bomber history --limit 5
  bomber history --match 1b4e28ba-2fa1-11d2-883f-0016d3cca427
  bomber history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of matches to show")
	historyCmd.Flags().StringVar(&flagMatch, "match", "", "Show the rounds of one match")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded history")
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening history database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearHistory(); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	}
	if flagMatch != "" {
		return printMatch(store, flagMatch)
	}

	matches, err := store.RecentMatches(flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving matches: %w", err)
	}
	st, err := store.Standings()
	if err != nil {
		return fmt.Errorf("error retrieving standings: %w", err)
	}

	fmt.Println("Recent matches")
	if len(matches) == 0 {
		fmt.Println("  No matches recorded yet.")
	} else {
		t := newTable("Date", "Mode", "Score", "Winner", "Rounds", "Result", "Match")
		for _, m := range matches {
			t.Row(append(tui.MatchRow(m), m.MatchID)...)
		}
		fmt.Println(t)
	}

	fmt.Println()
	fmt.Println(tui.StandingsLine(st))
	if !st.LastPlayed.IsZero() {
		fmt.Printf("Last played %s\n", st.LastPlayed.Local().Format("Jan 02 2006 15:04"))
	}
	return nil
}

func printMatch(store *storage.Store, matchID string) error {
	m, err := store.MatchByID(matchID)
	if err != nil {
		return err
	}
	if m == nil {
		fmt.Fprintf(os.Stderr, "No match with id %q\n", matchID)
		return nil
	}
	rounds, err := store.MatchRounds(matchID)
	if err != nil {
		return err
	}

	fmt.Printf("Match %s (%s, %s)\n", m.MatchID, m.Difficulty, m.EndReason)
	fmt.Printf("Score %d-%d, winner %s, %ds\n", m.Score1, m.Score2, tui.WinnerLabel(m.Winner), m.Duration)

	t := newTable("Round", "Winner", "Ticks")
	for _, r := range rounds {
		t.Row(fmt.Sprintf("%d", r.Round), tui.WinnerLabel(r.Winner), fmt.Sprintf("%d", r.Ticks))
	}
	fmt.Println(t)
	return nil
}
