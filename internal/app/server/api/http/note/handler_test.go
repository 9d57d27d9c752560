package note

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"cloudvault/internal/app/server/api/http/middleware/auth"
	"cloudvault/internal/domain/note"
)

type MockNoteService struct {
	mock.Mock
}

func (m *MockNoteService) Create(ctx context.Context, userID, title, content string) (note.Note, error) {
	args := m.Called(ctx, userID, title, content)
	return args.Get(0).(note.Note), args.Error(1)
}

func (m *MockNoteService) List(ctx context.Context, userID string) (note.ListResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(note.ListResponse), args.Error(1)
}

func (m *MockNoteService) Update(ctx context.Context, userID, noteID, title, content string) (note.Note, error) {
	args := m.Called(ctx, userID, noteID, title, content)
	return args.Get(0).(note.Note), args.Error(1)
}

func (m *MockNoteService) Delete(ctx context.Context, userID, noteID string) error {
	args := m.Called(ctx, userID, noteID)
	return args.Error(0)
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, status, se.GetStatus())
}

func TestHandler_create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service := new(MockNoteService)
		ctx := auth.WithUserID(context.Background(), "user-1")
		service.On("Create", ctx, "user-1", "Groceries", "milk").
			Return(note.Note{ID: "n1", Title: "Groceries"}, nil)

		handler := NewHandler(service, slog.Default(), huma.Middlewares{})
		out, err := handler.create(ctx, &createInput{Body: CreateRequest{Title: "Groceries", Content: "milk"}})

		require.NoError(t, err)
		assert.Equal(t, "n1", out.Body.Note.ID)
		assert.Equal(t, "Note saved successfully", out.Body.Message)
	})

	t.Run("blank input", func(t *testing.T) {
		service := new(MockNoteService)
		ctx := auth.WithUserID(context.Background(), "user-1")
		service.On("Create", ctx, "user-1", " ", "x").Return(note.Note{}, note.ErrInvalidInput)

		handler := NewHandler(service, slog.Default(), huma.Middlewares{})
		_, err := handler.create(ctx, &createInput{Body: CreateRequest{Title: " ", Content: "x"}})

		assertStatus(t, err, http.StatusBadRequest)
	})

	t.Run("no identity in context", func(t *testing.T) {
		handler := NewHandler(new(MockNoteService), slog.Default(), huma.Middlewares{})
		_, err := handler.create(context.Background(), &createInput{Body: CreateRequest{Title: "t", Content: "c"}})

		assertStatus(t, err, http.StatusUnauthorized)
	})
}

func TestHandler_update(t *testing.T) {
	t.Run("foreign note is not found", func(t *testing.T) {
		service := new(MockNoteService)
		ctx := auth.WithUserID(context.Background(), "user-2")
		service.On("Update", ctx, "user-2", "n1", "t", "c").Return(note.Note{}, note.ErrNotFound)

		handler := NewHandler(service, slog.Default(), huma.Middlewares{})
		_, err := handler.update(ctx, &updateInput{ID: "n1", Body: CreateRequest{Title: "t", Content: "c"}})

		assertStatus(t, err, http.StatusNotFound)
	})
}

func TestHandler_delete(t *testing.T) {
	service := new(MockNoteService)
	ctx := auth.WithUserID(context.Background(), "user-1")
	service.On("Delete", ctx, "user-1", "n1").Return(nil)

	handler := NewHandler(service, slog.Default(), huma.Middlewares{})
	out, err := handler.delete(ctx, &deleteInput{ID: "n1"})

	require.NoError(t, err)
	assert.Equal(t, "Note deleted successfully", out.Body.Message)
}

func TestHandler_list(t *testing.T) {
	service := new(MockNoteService)
	ctx := auth.WithUserID(context.Background(), "user-1")
	service.On("List", ctx, "user-1").Return(note.ListResponse{
		Notes: []note.Note{{ID: "n1"}},
		Total: 1,
	}, nil)

	handler := NewHandler(service, slog.Default(), huma.Middlewares{})
	out, err := handler.list(ctx, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, out.Body.Total)
}
