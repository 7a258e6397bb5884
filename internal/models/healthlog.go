package models

import "github.com/dmitrijs2005/lifekeeper/internal/timex"

// Exercise is one workout line in a daily log. Duration is in minutes.
type Exercise struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"`
}

// DietItem is one food line in a daily log.
type DietItem struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
}

// HealthLog is a per-day record of exercises and diet. At most one log
// exists per calendar day per user; saving for an existing day replaces it.
// TotalCalories is derived from DietItems on every save and never trusted
// from input.
type HealthLog struct {
	Meta
	Date          timex.Day  `json:"date"`
	Exercises     []Exercise `json:"exercises"`
	DietItems     []DietItem `json:"dietItems"`
	TotalCalories int        `json:"totalCalories"`
}

// SumCalories recomputes the calorie total from the diet items.
func (l *HealthLog) SumCalories() int {
	total := 0
	for _, item := range l.DietItems {
		total += item.Calories
	}
	return total
}
