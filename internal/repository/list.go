// Package repository provides the one generic namespaced-list repository the
// five entity services instantiate. A repository owns the full read-modify-
// write cycle for one record kind of the logged-in user: every mutation
// rewrites that kind's whole list in a single storage call.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lifekeeper/internal/common"
	"github.com/dmitrijs2005/lifekeeper/internal/models"
	"github.com/dmitrijs2005/lifekeeper/internal/session"
	"github.com/google/uuid"
)

// List is a per-kind record list repository. T is a pointer type embedding
// models.Meta (e.g. *models.Todo).
type List[T models.Record] struct {
	session  *session.Manager
	kind     string
	validate func(T) error
	replaces func(existing, incoming T) bool
	now      func() time.Time
}

// Option configures a List.
type Option[T models.Record] func(*List[T])

// WithValidate runs fn before every Create and Update; a non-nil result
// aborts the write.
func WithValidate[T models.Record](fn func(T) error) Option[T] {
	return func(l *List[T]) { l.validate = fn }
}

// WithReplaceWhen makes Create drop any existing record for which fn reports
// true before appending the new one. Health logs use this to keep one record
// per calendar day.
func WithReplaceWhen[T models.Record](fn func(existing, incoming T) bool) Option[T] {
	return func(l *List[T]) { l.replaces = fn }
}

// WithNow overrides the timestamp source (tests).
func WithNow[T models.Record](fn func() time.Time) Option[T] {
	return func(l *List[T]) { l.now = fn }
}

// New returns a repository for kind bound to the given session manager.
func New[T models.Record](sess *session.Manager, kind string, opts ...Option[T]) *List[T] {
	l := &List[T]{session: sess, kind: kind, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *List[T]) load(ctx context.Context) ([]T, error) {
	var items []T
	if _, err := l.session.GetUserData(ctx, l.kind, &items); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", l.kind, err)
	}
	return items, nil
}

func (l *List[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	if err := l.session.SetUserData(ctx, l.kind, items); err != nil {
		return fmt.Errorf("failed to save %s: %w", l.kind, err)
	}
	return nil
}

// All returns the user's full list in stored order. Callers sort for display.
func (l *List[T]) All(ctx context.Context) ([]T, error) {
	if !l.session.IsAuthenticated() {
		return nil, common.ErrNoSession
	}
	return l.load(ctx)
}

// Get returns the record with the given id or common.ErrNotFound.
func (l *List[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if !l.session.IsAuthenticated() {
		return zero, common.ErrNoSession
	}
	items, err := l.load(ctx)
	if err != nil {
		return zero, err
	}
	for _, item := range items {
		if item.RecordMeta().ID == id {
			return item, nil
		}
	}
	return zero, common.ErrNotFound
}

// Create validates rec, stamps it (new id, owner, both timestamps) and
// appends it. When a replace predicate is configured, matching existing
// records are dropped first.
func (l *List[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	user := l.session.Current()
	if user == nil {
		return zero, common.ErrNoSession
	}
	if l.validate != nil {
		if err := l.validate(rec); err != nil {
			return zero, err
		}
	}

	items, err := l.load(ctx)
	if err != nil {
		return zero, err
	}

	if l.replaces != nil {
		kept := make([]T, 0, len(items))
		for _, item := range items {
			if !l.replaces(item, rec) {
				kept = append(kept, item)
			}
		}
		items = kept
	}

	now := l.now()
	meta := rec.RecordMeta()
	meta.ID = uuid.NewString()
	meta.UserID = user.UserID
	meta.CreatedAt = now
	meta.UpdatedAt = now

	if err := l.save(ctx, append(items, rec)); err != nil {
		return zero, err
	}
	return rec, nil
}

// Update replaces the record with the given id by rec, preserving its id,
// owner and creation time and refreshing UpdatedAt. Unknown ids return
// common.ErrNotFound and leave the list unchanged.
func (l *List[T]) Update(ctx context.Context, id string, rec T) (T, error) {
	var zero T
	if !l.session.IsAuthenticated() {
		return zero, common.ErrNoSession
	}
	if l.validate != nil {
		if err := l.validate(rec); err != nil {
			return zero, err
		}
	}

	items, err := l.load(ctx)
	if err != nil {
		return zero, err
	}

	for i, item := range items {
		old := item.RecordMeta()
		if old.ID != id {
			continue
		}
		meta := rec.RecordMeta()
		meta.ID = old.ID
		meta.UserID = old.UserID
		meta.CreatedAt = old.CreatedAt
		meta.UpdatedAt = l.now()
		items[i] = rec
		if err := l.save(ctx, items); err != nil {
			return zero, err
		}
		return rec, nil
	}
	return zero, common.ErrNotFound
}

// Delete removes the record with the given id if present. Deleting an
// unknown id is a no-op, not an error.
func (l *List[T]) Delete(ctx context.Context, id string) error {
	if !l.session.IsAuthenticated() {
		return common.ErrNoSession
	}

	items, err := l.load(ctx)
	if err != nil {
		return err
	}

	kept := make([]T, 0, len(items))
	for _, item := range items {
		if item.RecordMeta().ID != id {
			kept = append(kept, item)
		}
	}
	return l.save(ctx, kept)
}
