package note

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, n *Note) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context, userID string) ([]Note, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]Note), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, userID, noteID string) (Note, error) {
	args := m.Called(ctx, userID, noteID)
	return args.Get(0).(Note), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, n *Note) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, userID, noteID string) error {
	args := m.Called(ctx, userID, noteID)
	return args.Error(0)
}

func (m *MockRepository) Count(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", ctx, mock.AnythingOfType("*note.Note")).Return(nil)

		service := NewService(repo, slog.Default())
		n, err := service.Create(ctx, "user-1", "Groceries", "milk, eggs")

		require.NoError(t, err)
		assert.NotEmpty(t, n.ID)
		assert.Equal(t, "user-1", n.UserID)
		assert.Equal(t, n.CreatedAt, n.UpdatedAt)
	})

	t.Run("blank title or content", func(t *testing.T) {
		service := NewService(new(MockRepository), slog.Default())

		_, err := service.Create(ctx, "user-1", "   ", "body")
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = service.Create(ctx, "user-1", "title", "\t\n")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("bumps updated_at", func(t *testing.T) {
		repo := new(MockRepository)
		created := time.Now().UTC().Add(-time.Hour)
		repo.On("Get", ctx, "user-1", "n1").Return(Note{
			ID: "n1", UserID: "user-1", Title: "old", Content: "old",
			CreatedAt: created, UpdatedAt: created,
		}, nil)

		var updated *Note
		repo.On("Update", ctx, mock.AnythingOfType("*note.Note")).Run(func(args mock.Arguments) {
			updated = args.Get(1).(*Note)
		}).Return(nil)

		service := NewService(repo, slog.Default())
		n, err := service.Update(ctx, "user-1", "n1", "new title", "new body")

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "new title", n.Title)
		assert.True(t, n.UpdatedAt.After(created))
		assert.Equal(t, created, n.CreatedAt)
	})

	t.Run("foreign note is masked as not found", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Get", ctx, "user-2", "n1").Return(Note{}, ErrNotFound)

		service := NewService(repo, slog.Default())
		_, err := service.Update(ctx, "user-2", "n1", "t", "c")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	repo.On("Delete", ctx, "user-1", "n1").Return(nil)
	repo.On("Delete", ctx, "user-1", "ghost").Return(ErrNotFound)

	service := NewService(repo, slog.Default())
	assert.NoError(t, service.Delete(ctx, "user-1", "n1"))
	assert.ErrorIs(t, service.Delete(ctx, "user-1", "ghost"), ErrNotFound)
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	repo.On("List", ctx, "user-1").Return([]Note{{ID: "n1"}, {ID: "n2"}}, nil)

	service := NewService(repo, slog.Default())
	list, err := service.List(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
}
