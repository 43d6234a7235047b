package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/breet/internal/alarm"
	"github.com/abhisek/breet/internal/app"
	"github.com/abhisek/breet/internal/llm"
	"github.com/abhisek/breet/internal/notify"
	"github.com/abhisek/breet/internal/recommend"
	"github.com/abhisek/breet/internal/selection"
	"github.com/abhisek/breet/internal/session"
	"github.com/abhisek/breet/internal/stats"
	"github.com/abhisek/breet/internal/store"
	"github.com/abhisek/breet/internal/todos"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	kv := st.KV()
	events := st.EventRepo()

	// The provider is optional. Without one the recommender falls back
	// to the rule-based picker.
	cfg := llm.ConfigFromEnv()
	provider, err := llm.NewProviderFromEnv(ctx, events)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Break suggestions will come from the built-in catalog.")
		provider = nil
	}

	rec := recommend.NewService(provider, kv, events, cfg.Timeout)
	sel := selection.NewManager(kv, rec)
	sched := alarm.NewTimerScheduler()
	notifier := notify.NewBellNotifier(os.Stderr)

	machine := session.New(kv, events, sched, rec, sel, notifier)
	go machine.Run(ctx)

	// First run of the day gets fresh daily content without waiting
	// for the midnight wake-up.
	go func() {
		var quote string
		if found, _ := kv.Get(ctx, store.KeyDailyQuote, &quote); !found {
			rec.RefreshDaily(ctx)
		}
	}()

	return app.Run(app.Deps{
		Machine: machine,
		Stats:   stats.NewService(events),
		Todos:   todos.NewList(kv),
		Events:  events,
		KV:      kv,
	})
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Open the timer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}
