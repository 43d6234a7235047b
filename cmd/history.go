package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent breaks",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		evs, err := st.EventRepo().RecentBreaks(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query breaks: %w", err)
		}

		if len(evs) == 0 {
			fmt.Println("No breaks recorded yet.")
			return nil
		}

		fmt.Printf("%-17s  %-2s  %-24s  %-4s  %-7s  %-6s\n",
			"When", "OK", "Break", "Mins", "Preset", "Source")
		fmt.Println(strings.Repeat("─", 70))

		// RecentBreaks is oldest first; print newest first.
		for i := len(evs) - 1; i >= 0; i-- {
			ev := evs[i]
			ok := "✗"
			if ev.Completed {
				ok = "✓"
			}
			fmt.Printf("%-17s  %-2s  %-24s  %-4d  %-7s  %-6s\n",
				ev.Timestamp.Local().Format("Jan 02 15:04"),
				ok,
				truncate(ev.BreakName, 24),
				ev.DurationMinutes,
				ev.Label,
				ev.Source,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of breaks to show")
}
