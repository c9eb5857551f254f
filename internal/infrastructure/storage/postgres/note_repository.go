package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"inotebook/internal/domain/note"
)

type NoteRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewNoteRepository(pool *pgxpool.Pool, log *slog.Logger) *NoteRepository {
	return &NoteRepository{
		pool: pool,
		log:  log.With(slog.String("component", "note_repository")),
	}
}

// ListByOwner returns the owner's notes in store-native order.
func (r *NoteRepository) ListByOwner(ctx context.Context, userID int) ([]note.Note, error) {
	const query = `
		SELECT id, user_id, title, description, tag, created_at
		FROM notes
		WHERE user_id = $1`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("failed to list notes", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	return scanNotes(rows)
}

func (r *NoteRepository) FindByID(ctx context.Context, id int) (note.Note, error) {
	const query = `
		SELECT id, user_id, title, description, tag, created_at
		FROM notes
		WHERE id = $1`

	n, err := scanNote(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return note.Note{}, note.ErrNotFound
		}
		r.log.Error("failed to get note", "note_id", id, "error", err)
		return note.Note{}, fmt.Errorf("get note: %w", err)
	}
	return n, nil
}

func (r *NoteRepository) Create(ctx context.Context, n note.Note) (note.Note, error) {
	const query = `
		INSERT INTO notes (user_id, title, description, tag)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query, n.UserID, n.Title, n.Description, n.Tag).
		Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		r.log.Error("failed to create note", "user_id", n.UserID, "error", err)
		return note.Note{}, fmt.Errorf("insert note: %w", err)
	}
	return n, nil
}

// Update applies only the non-nil patch fields in a single atomic statement.
func (r *NoteRepository) Update(ctx context.Context, id int, p note.Patch) (note.Note, error) {
	const query = `
		UPDATE notes
		SET title       = COALESCE($1, title),
		    description = COALESCE($2, description),
		    tag         = COALESCE($3, tag)
		WHERE id = $4
		RETURNING id, user_id, title, description, tag, created_at`

	n, err := scanNote(r.pool.QueryRow(ctx, query, p.Title, p.Description, p.Tag, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return note.Note{}, note.ErrNotFound
		}
		r.log.Error("failed to update note", "note_id", id, "error", err)
		return note.Note{}, fmt.Errorf("update note: %w", err)
	}
	return n, nil
}

func (r *NoteRepository) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		r.log.Error("failed to delete note", "note_id", id, "error", err)
		return fmt.Errorf("delete note: %w", err)
	}
	if result.RowsAffected() == 0 {
		return note.ErrNotFound
	}
	return nil
}

func scanNotes(rows pgx.Rows) ([]note.Note, error) {
	var notes []note.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func scanNote(row pgx.Row) (note.Note, error) {
	var n note.Note
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Description, &n.Tag, &n.CreatedAt)
	return n, err
}
