package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/lifekeeper/internal/common"
	"github.com/dmitrijs2005/lifekeeper/internal/models"
	"github.com/dmitrijs2005/lifekeeper/internal/timex"
)

// showHealth prints the log for one day (today by default), or all logged
// days when called as "health all".
func (a *App) showHealth(ctx context.Context, args []string) {
	if len(args) > 0 && args[0] == "all" {
		a.listHealthLogs(ctx)
		return
	}

	day := timex.Today()
	if len(args) > 0 {
		parsed, err := timex.ParseDay(args[0])
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		day = parsed
	}

	l, err := a.health.ForDay(ctx, day)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Printf("Nothing logged for %s.\n", day)
			return
		}
		fmt.Println("error:", err)
		return
	}
	a.printHealthLog(l)
}

func (a *App) listHealthLogs(ctx context.Context) {
	logs, err := a.health.List(ctx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if len(logs) == 0 {
		fmt.Println("No health logs yet.")
		return
	}
	for _, l := range logs {
		fmt.Printf("%s  %s  %d exercises, %d kcal\n", l.ID, l.Date, len(l.Exercises), l.TotalCalories)
	}
}

func (a *App) printHealthLog(l *models.HealthLog) {
	fmt.Printf("%s (id %s)\n", l.Date, l.ID)
	for _, e := range l.Exercises {
		fmt.Printf("  exercise: %s, %d min\n", e.Name, e.Duration)
	}
	for _, d := range l.DietItems {
		fmt.Printf("  diet: %s, %d kcal\n", d.Name, d.Calories)
	}
	fmt.Printf("  total: %d kcal\n", l.TotalCalories)
}

// logHealth records a day's log; logging an already-logged day replaces it.
func (a *App) logHealth(ctx context.Context) {
	rawDate, err := getSimpleText(a.reader, "Enter date YYYY-MM-DD (empty for today)", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	day := timex.Today()
	if rawDate != "" {
		if day, err = timex.ParseDay(rawDate); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	rawExercises, err := GetNameValueLines(a.reader, "Enter exercises as name=minutes", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	exercises, err := parseNameNumberLines(rawExercises)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	rawDiet, err := GetNameValueLines(a.reader, "Enter diet items as name=calories", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	diet, err := parseNameNumberLines(rawDiet)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	var ex []models.Exercise
	for _, p := range exercises {
		ex = append(ex, models.Exercise{Name: p.name, Duration: p.number})
	}
	var di []models.DietItem
	for _, p := range diet {
		di = append(di, models.DietItem{Name: p.name, Calories: p.number})
	}

	l, err := a.health.Log(ctx, day, ex, di)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Logged %s: %d kcal.\n", l.Date, l.TotalCalories)
}

func (a *App) deleteHealthLog(ctx context.Context, args []string) {
	id, err := a.requireArg(args, "Enter health log id to delete")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := a.health.Delete(ctx, id); err != nil {
		fmt.Println("error:", err)
	}
}

type nameNumber struct {
	name   string
	number int
}

func parseNameNumberLines(lines []string) ([]nameNumber, error) {
	result := make([]nameNumber, 0, len(lines))
	for _, line := range lines {
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("expected name=number, got %q", line)
		}
		n, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("not a number in %q", line)
		}
		result = append(result, nameNumber{name: strings.TrimSpace(parts[0]), number: n})
	}
	return result, nil
}
