package models

import "strings"

// Bookmark stores a saved link. Tags are kept as entered; duplicates are
// allowed within a single bookmark.
type Bookmark struct {
	Meta
	Title string   `json:"title" validate:"required"`
	URL   string   `json:"url" validate:"required,url"`
	Notes string   `json:"notes"`
	Tags  []string `json:"tags"`
}

// ParseTags splits a comma-separated tag string, trimming whitespace and
// dropping empty entries.
func ParseTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
