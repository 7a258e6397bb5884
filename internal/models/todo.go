package models

// Todo is a single to-do line item.
type Todo struct {
	Meta
	Description string `json:"description" validate:"required"`
	IsCompleted bool   `json:"isCompleted"`
}
