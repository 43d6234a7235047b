package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/breet/internal/stats"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show break statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		svc := stats.NewService(st.EventRepo())

		overall, err := svc.Overall(ctx)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}
		if overall.Total == 0 {
			fmt.Println("No breaks recorded yet.")
			return nil
		}

		fmt.Printf("Breaks:     %d (%d completed, %.0f%%)\n",
			overall.Total, overall.Completed, overall.CompletionRate()*100)
		fmt.Printf("Rest time:  %dm\n", overall.MinutesOnBreak)

		byCat, err := svc.ByCategory(ctx)
		if err != nil {
			return fmt.Errorf("query categories: %w", err)
		}
		if len(byCat) > 0 {
			fmt.Println()
			fmt.Println("By category")
			fmt.Println(strings.Repeat("─", 44))
			for _, c := range byCat {
				fmt.Printf("%-14s  %4d breaks  %4dm\n", c.Category, c.Total, c.MinutesOnBreak)
			}
		}

		byDay, err := svc.ByWeekday(ctx)
		if err != nil {
			return fmt.Errorf("query weekdays: %w", err)
		}
		if len(byDay) > 0 {
			days := make([]time.Weekday, 0, len(byDay))
			for d := range byDay {
				days = append(days, d)
			}
			sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

			fmt.Println()
			fmt.Println("By weekday")
			fmt.Println(strings.Repeat("─", 44))
			for _, d := range days {
				sum := byDay[d]
				fmt.Printf("%-14s  %4d breaks  %4dm\n", d, sum.Total, sum.MinutesOnBreak)
			}
		}
		return nil
	},
}
