package services

import (
	"context"

	"github.com/dmitrijs2005/lifekeeper/internal/models"
	"github.com/dmitrijs2005/lifekeeper/internal/repository"
	"github.com/dmitrijs2005/lifekeeper/internal/session"
	"github.com/dmitrijs2005/lifekeeper/internal/timex"
)

// GoalService manages long-running goals.
type GoalService interface {
	List(ctx context.Context) ([]*models.Goal, error)
	Create(ctx context.Context, description string, targetDate *timex.Day, status models.GoalStatus, progressPercent int) (*models.Goal, error)
	Update(ctx context.Context, id, description string, targetDate *timex.Day, status models.GoalStatus, progressPercent int) (*models.Goal, error)
	Delete(ctx context.Context, id string) error

	// ListByStatus returns the goals currently in the given status,
	// in stored order.
	ListByStatus(ctx context.Context, status models.GoalStatus) ([]*models.Goal, error)
}

type goalService struct {
	repo *repository.List[*models.Goal]
}

// NewGoalService returns a GoalService bound to the given session.
func NewGoalService(sess *session.Manager) GoalService {
	return &goalService{
		repo: repository.New[*models.Goal](sess, models.GoalKind,
			repository.WithValidate[*models.Goal](func(g *models.Goal) error {
				return checkStruct(g)
			})),
	}
}

func (s *goalService) List(ctx context.Context) ([]*models.Goal, error) {
	return s.repo.All(ctx)
}

func (s *goalService) Create(ctx context.Context, description string, targetDate *timex.Day, status models.GoalStatus, progressPercent int) (*models.Goal, error) {
	g := &models.Goal{
		Description:     description,
		TargetDate:      targetDate,
		Status:          status,
		ProgressPercent: progressPercent,
	}
	return s.repo.Create(ctx, g)
}

func (s *goalService) Update(ctx context.Context, id, description string, targetDate *timex.Day, status models.GoalStatus, progressPercent int) (*models.Goal, error) {
	g := &models.Goal{
		Description:     description,
		TargetDate:      targetDate,
		Status:          status,
		ProgressPercent: progressPercent,
	}
	return s.repo.Update(ctx, id, g)
}

func (s *goalService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *goalService) ListByStatus(ctx context.Context, status models.GoalStatus) ([]*models.Goal, error) {
	goals, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]*models.Goal, 0, len(goals))
	for _, g := range goals {
		if g.Status == status {
			filtered = append(filtered, g)
		}
	}
	return filtered, nil
}
