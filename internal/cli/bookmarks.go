package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/dmitrijs2005/lifekeeper/internal/models"
)

func (a *App) listBookmarks(ctx context.Context) {
	items, err := a.bookmarks.List(ctx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if len(items) == 0 {
		fmt.Println("No bookmarks yet.")
		return
	}

	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })

	for _, item := range items {
		line := fmt.Sprintf("%s  %s  %s", item.ID, item.Title, item.URL)
		if len(item.Tags) > 0 {
			line += "  [" + strings.Join(item.Tags, ", ") + "]"
		}
		fmt.Println(line)
	}
}

func (a *App) promptBookmarkFields() (title, url, notes string, tags []string, err error) {
	if title, err = getSimpleText(a.reader, "Enter title", os.Stdout); err != nil {
		return
	}
	if url, err = getSimpleText(a.reader, "Enter URL", os.Stdout); err != nil {
		return
	}
	if notes, err = getSimpleText(a.reader, "Enter notes (optional)", os.Stdout); err != nil {
		return
	}
	var rawTags string
	if rawTags, err = getSimpleText(a.reader, "Enter tags (comma-separated, optional)", os.Stdout); err != nil {
		return
	}
	tags = models.ParseTags(rawTags)
	return
}

func (a *App) addBookmark(ctx context.Context) {
	title, url, notes, tags, err := a.promptBookmarkFields()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if _, err := a.bookmarks.Create(ctx, title, url, notes, tags); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Saved.")
}

func (a *App) editBookmark(ctx context.Context, args []string) {
	id, err := a.requireArg(args, "Enter bookmark id")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	title, url, notes, tags, err := a.promptBookmarkFields()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if _, err := a.bookmarks.Update(ctx, id, title, url, notes, tags); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Updated.")
}

func (a *App) deleteBookmark(ctx context.Context, args []string) {
	id, err := a.requireArg(args, "Enter bookmark id to delete")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := a.bookmarks.Delete(ctx, id); err != nil {
		fmt.Println("error:", err)
	}
}

func (a *App) listTags(ctx context.Context) {
	tags, err := a.bookmarks.Tags(ctx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if len(tags) == 0 {
		fmt.Println("No tags yet.")
		return
	}
	fmt.Println(strings.Join(tags, ", "))
}
