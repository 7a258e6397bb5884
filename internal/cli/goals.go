package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/dmitrijs2005/lifekeeper/internal/models"
	"github.com/dmitrijs2005/lifekeeper/internal/timex"
)

func (a *App) listGoals(ctx context.Context, args []string) {
	var (
		items []*models.Goal
		err   error
	)

	if len(args) > 0 {
		status := models.GoalStatus(strings.Join(args, " "))
		if !status.Valid() {
			fmt.Println("Unknown status. Use: 'To Do', 'In Progress' or 'Completed'.")
			return
		}
		items, err = a.goals.ListByStatus(ctx, status)
	} else {
		items, err = a.goals.List(ctx)
	}
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if len(items) == 0 {
		fmt.Println("No goals yet.")
		return
	}

	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })

	for _, g := range items {
		line := fmt.Sprintf("%s  %s  [%s, %d%%]", g.ID, g.Description, g.Status, g.ProgressPercent)
		if g.TargetDate != nil {
			line += "  due " + g.TargetDate.String()
		}
		fmt.Println(line)
	}
}

func (a *App) promptGoalFields() (description string, target *timex.Day, status models.GoalStatus, progress int, err error) {
	if description, err = getSimpleText(a.reader, "Enter description", os.Stdout); err != nil {
		return
	}

	var rawDate string
	if rawDate, err = getSimpleText(a.reader, "Enter target date YYYY-MM-DD (optional)", os.Stdout); err != nil {
		return
	}
	if rawDate != "" {
		var day timex.Day
		if day, err = timex.ParseDay(rawDate); err != nil {
			return
		}
		target = &day
	}

	var rawStatus string
	if rawStatus, err = getSimpleText(a.reader, "Enter status (To Do / In Progress / Completed)", os.Stdout); err != nil {
		return
	}
	if rawStatus == "" {
		rawStatus = string(models.GoalStatusToDo)
	}
	status = models.GoalStatus(rawStatus)

	progress, err = GetInt(a.reader, "Enter progress percent (0-100)", os.Stdout)
	return
}

func (a *App) addGoal(ctx context.Context) {
	description, target, status, progress, err := a.promptGoalFields()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if _, err := a.goals.Create(ctx, description, target, status, progress); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Saved.")
}

func (a *App) editGoal(ctx context.Context, args []string) {
	id, err := a.requireArg(args, "Enter goal id")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	description, target, status, progress, err := a.promptGoalFields()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if _, err := a.goals.Update(ctx, id, description, target, status, progress); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Updated.")
}

func (a *App) deleteGoal(ctx context.Context, args []string) {
	id, err := a.requireArg(args, "Enter goal id to delete")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := a.goals.Delete(ctx, id); err != nil {
		fmt.Println("error:", err)
	}
}
