package services

import (
	"context"

	"github.com/dmitrijs2005/lifekeeper/internal/models"
	"github.com/dmitrijs2005/lifekeeper/internal/repository"
	"github.com/dmitrijs2005/lifekeeper/internal/session"
)

// TodoService manages the to-do list.
type TodoService interface {
	List(ctx context.Context) ([]*models.Todo, error)
	Create(ctx context.Context, description string) (*models.Todo, error)
	Update(ctx context.Context, id, description string) (*models.Todo, error)
	Toggle(ctx context.Context, id string) (*models.Todo, error)
	Delete(ctx context.Context, id string) error
}

type todoService struct {
	repo *repository.List[*models.Todo]
}

// NewTodoService returns a TodoService bound to the given session.
func NewTodoService(sess *session.Manager) TodoService {
	return &todoService{
		repo: repository.New[*models.Todo](sess, models.TodoKind,
			repository.WithValidate[*models.Todo](func(t *models.Todo) error {
				return checkStruct(t)
			})),
	}
}

func (s *todoService) List(ctx context.Context) ([]*models.Todo, error) {
	return s.repo.All(ctx)
}

func (s *todoService) Create(ctx context.Context, description string) (*models.Todo, error) {
	return s.repo.Create(ctx, &models.Todo{Description: description})
}

func (s *todoService) Update(ctx context.Context, id, description string) (*models.Todo, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, &models.Todo{Description: description, IsCompleted: existing.IsCompleted})
}

// Toggle flips the completion flag of the given todo.
func (s *todoService) Toggle(ctx context.Context, id string) (*models.Todo, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, &models.Todo{
		Description: existing.Description,
		IsCompleted: !existing.IsCompleted,
	})
}

func (s *todoService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
