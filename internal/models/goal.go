package models

import "github.com/dmitrijs2005/lifekeeper/internal/timex"

// GoalStatus enumerates the lifecycle of a goal. The wire values match the
// labels shown in the UI.
type GoalStatus string

const (
	GoalStatusToDo       GoalStatus = "To Do"
	GoalStatusInProgress GoalStatus = "In Progress"
	GoalStatusCompleted  GoalStatus = "Completed"
)

// Valid reports whether s is one of the known statuses.
func (s GoalStatus) Valid() bool {
	switch s {
	case GoalStatusToDo, GoalStatusInProgress, GoalStatusCompleted:
		return true
	}
	return false
}

// Goal tracks a long-running objective. TargetDate is optional and encodes
// as null when absent.
type Goal struct {
	Meta
	Description     string     `json:"description" validate:"required"`
	TargetDate      *timex.Day `json:"targetDate"`
	Status          GoalStatus `json:"status" validate:"required,oneof='To Do' 'In Progress' 'Completed'"`
	ProgressPercent int        `json:"progressPercent" validate:"gte=0,lte=100"`
}
