package dto

import (
	"time"

	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
)

// CreateNoteRequest carries a new note's content.
type CreateNoteRequest struct {
	Content string `json:"content" binding:"required"`
}

// UpdateNoteRequest carries a note edit.
type UpdateNoteRequest struct {
	Content string `json:"content" binding:"required"`
}

// NoteResponse is the outward shape of a note.
type NoteResponse struct {
	NoteID    string    `json:"id"`
	UserID    string    `json:"userID"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToNoteResponse converts a domain.Note to its DTO.
func ToNoteResponse(n *domain.Note) NoteResponse {
	return NoteResponse{
		NoteID:    n.NoteID,
		UserID:    n.UserID,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// ToNoteResponses converts a slice of notes.
func ToNoteResponses(notes []domain.Note) []NoteResponse {
	out := make([]NoteResponse, len(notes))
	for i := range notes {
		out[i] = ToNoteResponse(&notes[i])
	}
	return out
}
