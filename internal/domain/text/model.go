package text

import "time"

// Text is a long free-text snippet, the heavier sibling of a note.
type Text struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ListResponse struct {
	Texts []Text `json:"texts"`
	Total int    `json:"total"`
}
