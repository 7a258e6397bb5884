package services

import (
	"context"
	"sort"

	"github.com/dmitrijs2005/lifekeeper/internal/models"
	"github.com/dmitrijs2005/lifekeeper/internal/repository"
	"github.com/dmitrijs2005/lifekeeper/internal/session"
)

// BookmarkService manages saved links.
type BookmarkService interface {
	List(ctx context.Context) ([]*models.Bookmark, error)
	Create(ctx context.Context, title, url, notes string, tags []string) (*models.Bookmark, error)
	Update(ctx context.Context, id, title, url, notes string, tags []string) (*models.Bookmark, error)
	Delete(ctx context.Context, id string) error

	// Tags returns the distinct tags across all bookmarks, sorted.
	Tags(ctx context.Context) ([]string, error)
}

type bookmarkService struct {
	repo *repository.List[*models.Bookmark]
}

// NewBookmarkService returns a BookmarkService bound to the given session.
func NewBookmarkService(sess *session.Manager) BookmarkService {
	return &bookmarkService{
		repo: repository.New[*models.Bookmark](sess, models.BookmarkKind,
			repository.WithValidate[*models.Bookmark](func(b *models.Bookmark) error {
				return checkStruct(b)
			})),
	}
}

func (s *bookmarkService) List(ctx context.Context) ([]*models.Bookmark, error) {
	return s.repo.All(ctx)
}

func (s *bookmarkService) Create(ctx context.Context, title, url, notes string, tags []string) (*models.Bookmark, error) {
	return s.repo.Create(ctx, &models.Bookmark{Title: title, URL: url, Notes: notes, Tags: tags})
}

func (s *bookmarkService) Update(ctx context.Context, id, title, url, notes string, tags []string) (*models.Bookmark, error) {
	return s.repo.Update(ctx, id, &models.Bookmark{Title: title, URL: url, Notes: notes, Tags: tags})
}

func (s *bookmarkService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *bookmarkService) Tags(ctx context.Context) ([]string, error) {
	bookmarks, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, b := range bookmarks {
		for _, tag := range b.Tags {
			seen[tag] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags, nil
}
