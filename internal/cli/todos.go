package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
)

func (a *App) listTodos(ctx context.Context) {
	items, err := a.todos.List(ctx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if len(items) == 0 {
		fmt.Println("No todos yet.")
		return
	}

	// Oldest first, the order they were added in.
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })

	for _, item := range items {
		mark := " "
		if item.IsCompleted {
			mark = "x"
		}
		fmt.Printf("[%s] %s  %s\n", mark, item.ID, item.Description)
	}
}

func (a *App) addTodo(ctx context.Context) {
	description, err := getSimpleText(a.reader, "Enter todo", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err := a.todos.Create(ctx, description); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Saved.")
}

func (a *App) editTodo(ctx context.Context, args []string) {
	id, err := a.requireArg(args, "Enter todo id")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	description, err := getSimpleText(a.reader, "Enter new text", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err := a.todos.Update(ctx, id, description); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Updated.")
}

func (a *App) toggleTodo(ctx context.Context, args []string) {
	id, err := a.requireArg(args, "Enter todo id")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	item, err := a.todos.Toggle(ctx, id)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if item.IsCompleted {
		fmt.Println("Done.")
	} else {
		fmt.Println("Reopened.")
	}
}

func (a *App) deleteTodo(ctx context.Context, args []string) {
	id, err := a.requireArg(args, "Enter todo id to delete")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := a.todos.Delete(ctx, id); err != nil {
		fmt.Println("error:", err)
	}
}
