package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dekinnovations/dashboard_backend/internal/apperrors"
	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
	portsrepo "github.com/dekinnovations/dashboard_backend/internal/core/ports/repositories"
	portssvc "github.com/dekinnovations/dashboard_backend/internal/core/ports/services"
	"github.com/dekinnovations/dashboard_backend/internal/dto"
)

type noteService struct {
	noteRepo portsrepo.NoteRepositoryFacade
	userRepo portsrepo.UserRepositoryFacade
}

// NewNoteService creates the client notes service.
func NewNoteService(noteRepo portsrepo.NoteRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.NoteSvcFacade {
	return &noteService{noteRepo: noteRepo, userRepo: userRepo}
}

var _ portssvc.NoteSvcFacade = (*noteService)(nil)

func (s *noteService) ListNotes(ctx context.Context, clientID string) ([]domain.Note, error) {
	if _, err := s.userRepo.FindClientByID(ctx, clientID); err != nil {
		return nil, err
	}
	notes, err := s.noteRepo.FindNotesByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	if notes == nil {
		notes = []domain.Note{}
	}
	return notes, nil
}

func (s *noteService) CreateNote(ctx context.Context, clientID string, req dto.CreateNoteRequest, authorUserID string) (*domain.Note, error) {
	if _, err := s.userRepo.FindClientByID(ctx, clientID); err != nil {
		return nil, err
	}

	now := time.Now()
	note := domain.Note{
		NoteID:    uuid.NewString(),
		UserID:    clientID,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.noteRepo.SaveNote(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return &note, nil
}

func (s *noteService) UpdateNote(ctx context.Context, clientID, noteID string, req dto.UpdateNoteRequest) (*domain.Note, error) {
	note, err := s.noteRepo.FindNoteByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	// The note must belong to the client named in the route.
	if note.UserID != clientID {
		return nil, apperrors.ErrNotFound
	}

	note.Content = req.Content
	note.UpdatedAt = time.Now()
	if err := s.noteRepo.UpdateNote(ctx, *note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	return note, nil
}

func (s *noteService) DeleteNote(ctx context.Context, clientID, noteID string) error {
	note, err := s.noteRepo.FindNoteByID(ctx, noteID)
	if err != nil {
		return err
	}
	// The note must belong to the client named in the route.
	if note.UserID != clientID {
		return apperrors.ErrNotFound
	}
	return s.noteRepo.DeleteNote(ctx, noteID)
}
