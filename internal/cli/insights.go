package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
)

func (a *App) listInsights(ctx context.Context) {
	items, err := a.insights.List(ctx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if len(items) == 0 {
		fmt.Println("No insights yet.")
		return
	}

	// Newest first for display.
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })

	for _, item := range items {
		fmt.Printf("%s  %s  (%s)\n", item.ID, item.Title, item.CreatedAt.Format("2006-01-02"))
	}
}

func (a *App) addInsight(ctx context.Context) {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	content, err := GetMultiline(a.reader, "Enter insight text", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if _, err := a.insights.Create(ctx, title, content); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Saved.")
}

func (a *App) editInsight(ctx context.Context, args []string) {
	id, err := a.requireArg(args, "Enter insight id")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	title, err := getSimpleText(a.reader, "Enter new title", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	content, err := GetMultiline(a.reader, "Enter new text", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if _, err := a.insights.Update(ctx, id, title, content); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Updated.")
}

func (a *App) deleteInsight(ctx context.Context, args []string) {
	id, err := a.requireArg(args, "Enter insight id to delete")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := a.insights.Delete(ctx, id); err != nil {
		fmt.Println("error:", err)
	}
}
