package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lifekeeper/internal/common"
	"github.com/dmitrijs2005/lifekeeper/internal/models"
	"github.com/dmitrijs2005/lifekeeper/internal/repository"
	"github.com/dmitrijs2005/lifekeeper/internal/session"
	"github.com/dmitrijs2005/lifekeeper/internal/timex"
)

// HealthLogService manages daily health logs. A user has at most one log per
// calendar day: logging a day that already has a record replaces it.
type HealthLogService interface {
	List(ctx context.Context) ([]*models.HealthLog, error)
	Log(ctx context.Context, day timex.Day, exercises []models.Exercise, dietItems []models.DietItem) (*models.HealthLog, error)
	Update(ctx context.Context, id string, day timex.Day, exercises []models.Exercise, dietItems []models.DietItem) (*models.HealthLog, error)
	Delete(ctx context.Context, id string) error

	// ForDay returns the log for the given day or common.ErrNotFound.
	ForDay(ctx context.Context, day timex.Day) (*models.HealthLog, error)
}

type healthLogService struct {
	repo *repository.List[*models.HealthLog]
}

// NewHealthLogService returns a HealthLogService bound to the given session.
func NewHealthLogService(sess *session.Manager) HealthLogService {
	return &healthLogService{
		repo: repository.New[*models.HealthLog](sess, models.HealthLogKind,
			repository.WithValidate[*models.HealthLog](validateHealthLog),
			repository.WithReplaceWhen[*models.HealthLog](func(existing, incoming *models.HealthLog) bool {
				return existing.Date.Equal(incoming.Date)
			})),
	}
}

func validateHealthLog(l *models.HealthLog) error {
	if l.Date.IsZero() {
		return fmt.Errorf("%w: date is required", common.ErrValidation)
	}
	return nil
}

// newLog normalizes input: blank lines are dropped and the calorie total is
// recomputed, never taken from the caller.
func newLog(day timex.Day, exercises []models.Exercise, dietItems []models.DietItem) *models.HealthLog {
	kept := make([]models.Exercise, 0, len(exercises))
	for _, e := range exercises {
		if e.Name != "" {
			kept = append(kept, e)
		}
	}
	diet := make([]models.DietItem, 0, len(dietItems))
	for _, d := range dietItems {
		if d.Name != "" || d.Calories != 0 {
			diet = append(diet, d)
		}
	}

	l := &models.HealthLog{Date: day, Exercises: kept, DietItems: diet}
	l.TotalCalories = l.SumCalories()
	return l
}

func (s *healthLogService) List(ctx context.Context) ([]*models.HealthLog, error) {
	return s.repo.All(ctx)
}

func (s *healthLogService) Log(ctx context.Context, day timex.Day, exercises []models.Exercise, dietItems []models.DietItem) (*models.HealthLog, error) {
	return s.repo.Create(ctx, newLog(day, exercises, dietItems))
}

func (s *healthLogService) Update(ctx context.Context, id string, day timex.Day, exercises []models.Exercise, dietItems []models.DietItem) (*models.HealthLog, error) {
	return s.repo.Update(ctx, id, newLog(day, exercises, dietItems))
}

func (s *healthLogService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *healthLogService) ForDay(ctx context.Context, day timex.Day) (*models.HealthLog, error) {
	logs, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, l := range logs {
		if l.Date.Equal(day) {
			return l, nil
		}
	}
	return nil, common.ErrNotFound
}
