package note

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"inotebook/internal/domain/validation"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListByOwner(ctx context.Context, userID int) ([]Note, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Note), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (Note, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Note), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, n Note) (Note, error) {
	args := m.Called(ctx, n)
	return args.Get(0).(Note), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int, p Patch) (Note, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(Note), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func newTestService(repo Repository) *Service {
	return NewService(repo, NewFieldValidator(), slog.Default())
}

func TestCreate_DefaultTag(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(n Note) bool {
		return n.Tag == DefaultTag && n.UserID == 1
	})).Return(Note{ID: 10, UserID: 1, Title: "Groceries", Description: "Buy milk and eggs", Tag: DefaultTag}, nil)

	created, err := svc.Create(context.Background(), 1, "Groceries", "Buy milk and eggs", "")

	require.NoError(t, err)
	assert.Equal(t, 10, created.ID)
	assert.Equal(t, DefaultTag, created.Tag)
}

func TestCreate_ExplicitTag(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(n Note) bool {
		return n.Tag == "shopping"
	})).Return(Note{ID: 11, UserID: 1, Tag: "shopping"}, nil)

	created, err := svc.Create(context.Background(), 1, "Groceries", "Buy milk and eggs", "shopping")

	require.NoError(t, err)
	assert.Equal(t, "shopping", created.Tag)
}

func TestCreate_ValidationSkipsStore(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), 1, "abc", "short", "")

	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 2)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("FindByID", mock.Anything, 99).Return(Note{}, ErrNotFound)

	_, err := svc.Update(context.Background(), 1, 99, Patch{Title: strPtr("Other title")})

	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_NotOwnerLeavesNoteUntouched(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("FindByID", mock.Anything, 10).Return(Note{ID: 10, UserID: 1}, nil)

	_, err := svc.Update(context.Background(), 2, 10, Patch{Title: strPtr("Hijacked")})

	assert.ErrorIs(t, err, ErrNotOwner)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_PartialPatchPassedThrough(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("FindByID", mock.Anything, 10).Return(Note{ID: 10, UserID: 1, Title: "Groceries"}, nil)
	repo.On("Update", mock.Anything, 10, mock.MatchedBy(func(p Patch) bool {
		return p.Title == nil && p.Description == nil && p.Tag != nil && *p.Tag == "errands"
	})).Return(Note{ID: 10, UserID: 1, Title: "Groceries", Description: "Buy milk and eggs", Tag: "errands"}, nil)

	updated, err := svc.Update(context.Background(), 1, 10, Patch{Tag: strPtr("errands")})

	require.NoError(t, err)
	assert.Equal(t, "Groceries", updated.Title)
	assert.Equal(t, "errands", updated.Tag)
	repo.AssertExpectations(t)
}

func TestDelete_ReturnsPriorState(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	prior := Note{ID: 10, UserID: 1, Title: "Groceries", Description: "Buy milk and eggs", Tag: DefaultTag}
	repo.On("FindByID", mock.Anything, 10).Return(prior, nil)
	repo.On("Delete", mock.Anything, 10).Return(nil)

	deleted, err := svc.Delete(context.Background(), 1, 10)

	require.NoError(t, err)
	assert.Equal(t, prior, deleted)
}

func TestDelete_NotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("FindByID", mock.Anything, 99).Return(Note{}, ErrNotFound)

	_, err := svc.Delete(context.Background(), 1, 99)

	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_NotOwner(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("FindByID", mock.Anything, 10).Return(Note{ID: 10, UserID: 1}, nil)

	_, err := svc.Delete(context.Background(), 2, 10)

	assert.ErrorIs(t, err, ErrNotOwner)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestList(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	notes := []Note{{ID: 1, UserID: 5}, {ID: 2, UserID: 5}}
	repo.On("ListByOwner", mock.Anything, 5).Return(notes, nil)

	got, err := svc.List(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, notes, got)
}
