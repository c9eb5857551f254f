package note

import "time"

// DefaultTag is applied when a note is created without an explicit tag.
const DefaultTag = "General"

type Note struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tag         string    `json:"tag"`
	CreatedAt   time.Time `json:"created_at"`
}

// Patch carries a partial update: nil fields are left untouched.
type Patch struct {
	Title       *string
	Description *string
	Tag         *string
}
