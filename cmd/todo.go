package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/breet/internal/todos"
	"github.com/spf13/cobra"
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage the task list",
}

var todoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		items, err := todos.NewList(st.KV()).All(context.Background())
		if err != nil {
			return fmt.Errorf("load todos: %w", err)
		}
		if len(items) == 0 {
			fmt.Println("No tasks.")
			return nil
		}
		for i, t := range items {
			box := "[ ]"
			if t.Done {
				box = "[x]"
			}
			fmt.Printf("%2d. %s %s\n", i+1, box, t.Text)
		}
		return nil
	},
}

var todoAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		text := strings.Join(args, " ")
		if _, err := todos.NewList(st.KV()).Add(context.Background(), text); err != nil {
			return fmt.Errorf("add todo: %w", err)
		}
		fmt.Println("Added:", text)
		return nil
	},
}

var todoDoneCmd = &cobra.Command{
	Use:   "done <number>",
	Short: "Toggle a task by its list number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		list := todos.NewList(st.KV())
		t, err := todoByNumber(ctx, list, args[0])
		if err != nil {
			return err
		}
		if err := list.Toggle(ctx, t.ID); err != nil {
			return fmt.Errorf("toggle todo: %w", err)
		}
		return nil
	},
}

var todoRemoveCmd = &cobra.Command{
	Use:   "rm <number>",
	Short: "Remove a task by its list number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		list := todos.NewList(st.KV())
		t, err := todoByNumber(ctx, list, args[0])
		if err != nil {
			return err
		}
		if err := list.Remove(ctx, t.ID); err != nil {
			return fmt.Errorf("remove todo: %w", err)
		}
		return nil
	},
}

// todoByNumber resolves a 1-based list position to a todo.
func todoByNumber(ctx context.Context, list *todos.List, arg string) (todos.Todo, error) {
	var n int
	if _, err := fmt.Sscanf(arg, "%d", &n); err != nil {
		return todos.Todo{}, fmt.Errorf("invalid number %q", arg)
	}
	items, err := list.All(ctx)
	if err != nil {
		return todos.Todo{}, fmt.Errorf("load todos: %w", err)
	}
	if n < 1 || n > len(items) {
		return todos.Todo{}, fmt.Errorf("no task %d", n)
	}
	return items[n-1], nil
}

func init() {
	todoCmd.AddCommand(todoListCmd)
	todoCmd.AddCommand(todoAddCmd)
	todoCmd.AddCommand(todoDoneCmd)
	todoCmd.AddCommand(todoRemoveCmd)
}
