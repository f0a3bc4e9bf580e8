package services

import (
	"context"

	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
	"github.com/dekinnovations/dashboard_backend/internal/dto"
)

// NoteSvcFacade defines operations on client notes.
type NoteSvcFacade interface {
	ListNotes(ctx context.Context, clientID string) ([]domain.Note, error)
	CreateNote(ctx context.Context, clientID string, req dto.CreateNoteRequest, authorUserID string) (*domain.Note, error)
	UpdateNote(ctx context.Context, clientID, noteID string, req dto.UpdateNoteRequest) (*domain.Note, error)
	DeleteNote(ctx context.Context, clientID, noteID string) error
}
