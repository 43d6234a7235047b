package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/breet/internal/llm"
	"github.com/abhisek/breet/internal/recommend"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print break suggestions without starting a timer",
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, _ := cmd.Flags().GetInt("minutes")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		cfg := llm.ConfigFromEnv()
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured, using the built-in catalog.")
			provider = nil
		}

		rec := recommend.NewService(provider, st.KV(), st.EventRepo(), cfg.Timeout)
		r := rec.Recommend(ctx, minutes, nil)

		fmt.Printf("Source: %s\n\n", r.Source)
		for i, c := range r.Candidates {
			marker := " "
			if i == 0 {
				marker = "*"
			}
			fmt.Printf("%s %-24s %2dm  %-12s %s\n", marker, c.Name, c.Minutes, c.Category, c.Description)
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().IntP("minutes", "m", 0, "Break duration in minutes (default: saved session duration)")
}
