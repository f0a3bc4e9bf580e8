package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dekinnovations/dashboard_backend/internal/apperrors"
	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
	portsrepo "github.com/dekinnovations/dashboard_backend/internal/core/ports/repositories"
	"github.com/dekinnovations/dashboard_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxNoteRepository struct {
	BaseRepository
}

func newPgxNoteRepository(db *pgxpool.Pool) portsrepo.NoteRepositoryFacade {
	return &PgxNoteRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.NoteRepositoryFacade = (*PgxNoteRepository)(nil)

func toDomainNote(m models.Note) domain.Note {
	return domain.Note{
		NoteID:    m.NoteID,
		UserID:    m.UserID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *PgxNoteRepository) SaveNote(ctx context.Context, note domain.Note) error {
	query := `
        INSERT INTO notes (note_id, user_id, content, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.Pool.Exec(ctx, query, note.NoteID, note.UserID, note.Content, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}
	return nil
}

func (r *PgxNoteRepository) UpdateNote(ctx context.Context, note domain.Note) error {
	query := `UPDATE notes SET content = $2, updated_at = NOW() WHERE note_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, note.NoteID, note.Content)
	if err != nil {
		return fmt.Errorf("failed to update note %s: %w", note.NoteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxNoteRepository) FindNoteByID(ctx context.Context, noteID string) (*domain.Note, error) {
	query := `SELECT note_id, user_id, content, created_at, updated_at FROM notes WHERE note_id = $1;`
	var m models.Note
	err := r.Pool.QueryRow(ctx, query, noteID).Scan(&m.NoteID, &m.UserID, &m.Content, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find note %s: %w", noteID, err)
	}
	d := toDomainNote(m)
	return &d, nil
}

func (r *PgxNoteRepository) FindNotesByClient(ctx context.Context, clientID string) ([]domain.Note, error) {
	query := `
        SELECT note_id, user_id, content, created_at, updated_at
        FROM notes
        WHERE user_id = $1
        ORDER BY created_at DESC;
    `
	rows, err := r.Pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes for client %s: %w", clientID, err)
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		var m models.Note
		if err := rows.Scan(&m.NoteID, &m.UserID, &m.Content, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note row: %w", err)
		}
		notes = append(notes, toDomainNote(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating note rows: %w", err)
	}
	return notes, nil
}

func (r *PgxNoteRepository) DeleteNote(ctx context.Context, noteID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM notes WHERE note_id = $1;`, noteID)
	if err != nil {
		return fmt.Errorf("failed to delete note %s: %w", noteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
