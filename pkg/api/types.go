package api

import "time"

// Note is a single notebook item. Body is raw markup text as stored by the
// backend; polished copies carry the wrapped HTML fragment instead.
type Note struct {
	ID        string    `json:"id"`
	Folder    string    `json:"folder"`
	Name      string    `json:"name"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Folder groups notes. Notes is a count and may be zero when the backend
// cannot report it cheaply.
type Folder struct {
	Name  string `json:"name"`
	Notes int    `json:"notes"`
}
