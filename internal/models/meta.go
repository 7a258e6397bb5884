// Package models defines the user account and the five user-owned record
// kinds, together with the metadata every record shares.
package models

import "time"

// Kind names double as the storage namespace prefix: a user's records for a
// kind live under the key "<kind>_<userId>".
const (
	InsightKind   = "insights"
	BookmarkKind  = "bookmarks"
	GoalKind      = "goals"
	HealthLogKind = "healthLogs"
	TodoKind      = "todos"
)

// Meta carries the fields shared by every domain record. Records embed it;
// the repository owns assigning all four fields.
type Meta struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RecordMeta exposes the embedded Meta to generic code.
func (m *Meta) RecordMeta() *Meta { return m }

// Record is implemented by every domain record through an embedded Meta.
type Record interface {
	RecordMeta() *Meta
}
