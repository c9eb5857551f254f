package note

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"inotebook/internal/app/server/api/http/middleware/auth"
	"inotebook/internal/domain/note"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, userID int) ([]note.Note, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]note.Note), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, userID int, title, description, tag string) (note.Note, error) {
	args := m.Called(ctx, userID, title, description, tag)
	return args.Get(0).(note.Note), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, userID, noteID int, p note.Patch) (note.Note, error) {
	args := m.Called(ctx, userID, noteID, p)
	return args.Get(0).(note.Note), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, userID, noteID int) (note.Note, error) {
	args := m.Called(ctx, userID, noteID)
	return args.Get(0).(note.Note), args.Error(1)
}

func strPtr(s string) *string { return &s }

func newTestHandler(svc note.Servicer) *Handler {
	return NewHandler(svc, slog.Default(), huma.Middlewares{})
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_List(t *testing.T) {
	svc := new(MockService)
	h := newTestHandler(svc)

	notes := []note.Note{{ID: 1, UserID: 5, Title: "Groceries"}}
	svc.On("List", mock.Anything, 5).Return(notes, nil)

	resp, err := h.list(auth.WithUserID(context.Background(), 5), &struct{}{})

	require.NoError(t, err)
	assert.Equal(t, notes, resp.Body)
}

func TestHandler_List_NoIdentity(t *testing.T) {
	h := newTestHandler(new(MockService))

	_, err := h.list(context.Background(), &struct{}{})

	require.Error(t, err)
	assert.Equal(t, 401, statusOf(t, err))
}

func TestHandler_Create(t *testing.T) {
	svc := new(MockService)
	h := newTestHandler(svc)

	svc.On("Create", mock.Anything, 5, "Groceries", "Buy milk and eggs", "").
		Return(note.Note{ID: 10, UserID: 5, Title: "Groceries", Description: "Buy milk and eggs", Tag: note.DefaultTag}, nil)

	input := &createInput{}
	input.Body = CreateNoteRequest{Title: "Groceries", Description: "Buy milk and eggs"}

	resp, err := h.create(auth.WithUserID(context.Background(), 5), input)

	require.NoError(t, err)
	assert.Equal(t, 10, resp.Body.ID)
	assert.Equal(t, 5, resp.Body.UserID)
	assert.Equal(t, note.DefaultTag, resp.Body.Tag)
}

func TestHandler_Update_PatchMapping(t *testing.T) {
	svc := new(MockService)
	h := newTestHandler(svc)

	svc.On("Update", mock.Anything, 5, 10, mock.MatchedBy(func(p note.Patch) bool {
		return p.Title == nil && p.Description == nil && p.Tag != nil && *p.Tag == "errands"
	})).Return(note.Note{ID: 10, UserID: 5, Tag: "errands"}, nil)

	input := &updateInput{ID: 10}
	input.Body = UpdateNoteRequest{Tag: strPtr("errands")}

	resp, err := h.update(auth.WithUserID(context.Background(), 5), input)

	require.NoError(t, err)
	assert.Equal(t, "errands", resp.Body.Tag)
}

func TestHandler_Update_NotOwner(t *testing.T) {
	svc := new(MockService)
	h := newTestHandler(svc)

	svc.On("Update", mock.Anything, 2, 10, mock.Anything).Return(note.Note{}, note.ErrNotOwner)

	input := &updateInput{ID: 10}
	input.Body = UpdateNoteRequest{Title: strPtr("Hijacked title")}

	_, err := h.update(auth.WithUserID(context.Background(), 2), input)

	require.Error(t, err)
	assert.Equal(t, 401, statusOf(t, err))
}

func TestHandler_Update_NotFound(t *testing.T) {
	svc := new(MockService)
	h := newTestHandler(svc)

	svc.On("Update", mock.Anything, 5, 99, mock.Anything).Return(note.Note{}, note.ErrNotFound)

	input := &updateInput{ID: 99}
	input.Body = UpdateNoteRequest{Title: strPtr("Lost title")}

	_, err := h.update(auth.WithUserID(context.Background(), 5), input)

	require.Error(t, err)
	assert.Equal(t, 404, statusOf(t, err))
}

func TestHandler_Delete(t *testing.T) {
	svc := new(MockService)
	h := newTestHandler(svc)

	prior := note.Note{ID: 10, UserID: 5, Title: "Groceries"}
	svc.On("Delete", mock.Anything, 5, 10).Return(prior, nil)

	resp, err := h.delete(auth.WithUserID(context.Background(), 5), &deleteInput{ID: 10})

	require.NoError(t, err)
	assert.Equal(t, "Note deleted successfully", resp.Body.Success)
	assert.Equal(t, prior, resp.Body.Note)
}

func TestHandler_Delete_NotFound(t *testing.T) {
	svc := new(MockService)
	h := newTestHandler(svc)

	svc.On("Delete", mock.Anything, 5, 99).Return(note.Note{}, note.ErrNotFound)

	_, err := h.delete(auth.WithUserID(context.Background(), 5), &deleteInput{ID: 99})

	require.Error(t, err)
	assert.Equal(t, 404, statusOf(t, err))
}
