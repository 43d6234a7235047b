package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/breet/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the current session state",
	Long:  "Clears the timer phase, pending break, and selection session. Break history is kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		kv := st.KV()

		err = kv.Remove(ctx,
			store.KeySessionState,
			store.KeyPendingBreak,
			store.KeyPendingCandidates,
			store.KeyLastWorkEnd,
		)
		if err != nil {
			return fmt.Errorf("clear session keys: %w", err)
		}
		if err := kv.RemoveByPrefix(ctx, store.PrefixSelection); err != nil {
			return fmt.Errorf("clear selection: %w", err)
		}

		fmt.Println("Session state cleared.")
		return nil
	},
}
