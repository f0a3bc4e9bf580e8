package domain

import "time"

// Note is a free-form annotation attached to a client record. Notes are
// removed when their client is deleted.
type Note struct {
	NoteID    string    `json:"noteID"`
	UserID    string    `json:"userID"` // the client this note belongs to
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
