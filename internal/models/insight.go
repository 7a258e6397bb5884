package models

// Insight is a free-form note; Content may hold rich text markup.
type Insight struct {
	Meta
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}
