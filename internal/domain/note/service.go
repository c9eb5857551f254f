package note

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, userID int) ([]Note, error)
	Create(ctx context.Context, userID int, title, description, tag string) (Note, error)
	Update(ctx context.Context, userID, noteID int, p Patch) (Note, error)
	Delete(ctx context.Context, userID, noteID int) (Note, error)
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With(slog.String("component", "note_service")),
	}
}

func (s *Service) List(ctx context.Context, userID int) ([]Note, error) {
	notes, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		s.log.Error("failed to list notes", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (s *Service) Create(ctx context.Context, userID int, title, description, tag string) (Note, error) {
	if err := s.validator.ValidateCreate(title, description); err != nil {
		return Note{}, err
	}
	if tag == "" {
		tag = DefaultTag
	}

	created, err := s.repo.Create(ctx, Note{
		UserID:      userID,
		Title:       title,
		Description: description,
		Tag:         tag,
	})
	if err != nil {
		s.log.Error("failed to create note", "user_id", userID, "error", err)
		return Note{}, fmt.Errorf("create note: %w", err)
	}

	s.log.Info("note created", "note_id", created.ID, "user_id", userID)
	return created, nil
}

// Update checks existence, then ownership, and only then mutates. A note
// owned by someone else is reported as ErrNotOwner and left unchanged.
func (s *Service) Update(ctx context.Context, userID, noteID int, p Patch) (Note, error) {
	if err := s.authorize(ctx, userID, noteID); err != nil {
		return Note{}, err
	}

	updated, err := s.repo.Update(ctx, noteID, p)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Note{}, ErrNotFound
		}
		s.log.Error("failed to update note", "note_id", noteID, "user_id", userID, "error", err)
		return Note{}, fmt.Errorf("update note: %w", err)
	}

	s.log.Info("note updated", "note_id", noteID, "user_id", userID)
	return updated, nil
}

// Delete returns the note's state prior to removal.
func (s *Service) Delete(ctx context.Context, userID, noteID int) (Note, error) {
	prior, err := s.repo.FindByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Note{}, ErrNotFound
		}
		s.log.Error("failed to find note", "note_id", noteID, "error", err)
		return Note{}, fmt.Errorf("find note: %w", err)
	}
	if prior.UserID != userID {
		return Note{}, ErrNotOwner
	}

	if err := s.repo.Delete(ctx, noteID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Note{}, ErrNotFound
		}
		s.log.Error("failed to delete note", "note_id", noteID, "user_id", userID, "error", err)
		return Note{}, fmt.Errorf("delete note: %w", err)
	}

	s.log.Info("note deleted", "note_id", noteID, "user_id", userID)
	return prior, nil
}

func (s *Service) authorize(ctx context.Context, userID, noteID int) error {
	existing, err := s.repo.FindByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to find note", "note_id", noteID, "error", err)
		return fmt.Errorf("find note: %w", err)
	}
	if existing.UserID != userID {
		return ErrNotOwner
	}
	return nil
}
