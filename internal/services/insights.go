package services

import (
	"context"

	"github.com/dmitrijs2005/lifekeeper/internal/models"
	"github.com/dmitrijs2005/lifekeeper/internal/repository"
	"github.com/dmitrijs2005/lifekeeper/internal/session"
)

// InsightService manages the user's notes.
type InsightService interface {
	List(ctx context.Context) ([]*models.Insight, error)
	Create(ctx context.Context, title, content string) (*models.Insight, error)
	Update(ctx context.Context, id, title, content string) (*models.Insight, error)
	Delete(ctx context.Context, id string) error
}

type insightService struct {
	repo *repository.List[*models.Insight]
}

// NewInsightService returns an InsightService bound to the given session.
func NewInsightService(sess *session.Manager) InsightService {
	return &insightService{
		repo: repository.New[*models.Insight](sess, models.InsightKind,
			repository.WithValidate[*models.Insight](func(i *models.Insight) error {
				return checkStruct(i)
			})),
	}
}

func (s *insightService) List(ctx context.Context) ([]*models.Insight, error) {
	return s.repo.All(ctx)
}

func (s *insightService) Create(ctx context.Context, title, content string) (*models.Insight, error) {
	return s.repo.Create(ctx, &models.Insight{Title: title, Content: content})
}

func (s *insightService) Update(ctx context.Context, id, title, content string) (*models.Insight, error) {
	return s.repo.Update(ctx, id, &models.Insight{Title: title, Content: content})
}

func (s *insightService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
