package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockFilesRepository struct {
	mock.Mock
}

func (m *MockFilesRepository) TypeStats(ctx context.Context, userID string) ([]TypeStat, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]TypeStat), args.Error(1)
}

func (m *MockFilesRepository) UploadsSince(ctx context.Context, userID string, since time.Time) (map[string]int64, error) {
	args := m.Called(ctx, userID, since)
	return args.Get(0).(map[string]int64), args.Error(1)
}

type MockCounter struct {
	mock.Mock
}

func (m *MockCounter) Count(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func TestService_Storage(t *testing.T) {
	ctx := context.Background()

	files := new(MockFilesRepository)
	files.On("TypeStats", ctx, "user-1").Return([]TypeStat{
		{FileType: "image/png", Count: 1, Bytes: 100},
		{FileType: "image/jpeg", Count: 1, Bytes: 200},
		{FileType: "application/pdf", Count: 1, Bytes: 300},
	}, nil)

	notes := new(MockCounter)
	notes.On("Count", ctx, "user-1").Return(int64(4), nil)
	texts := new(MockCounter)
	texts.On("Count", ctx, "user-1").Return(int64(2), nil)

	service := NewService(files, notes, texts, 1<<30, slog.Default())
	stats, err := service.Storage(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.FileCount)
	assert.Equal(t, int64(600), stats.TotalBytes)
	assert.Equal(t, int64(4), stats.NoteCount)
	assert.Equal(t, int64(2), stats.TextCount)
	assert.Equal(t, int64(1<<30), stats.QuotaBytes)

	assert.Equal(t, int64(2), stats.ByCategory[CategoryImage].Count)
	assert.Equal(t, int64(300), stats.ByCategory[CategoryImage].Bytes)
	assert.Equal(t, int64(1), stats.ByCategory[CategoryPDF].Count)
	assert.Equal(t, int64(0), stats.ByCategory[CategoryVideo].Count)
}

func TestService_Storage_UsedPercentRounding(t *testing.T) {
	ctx := context.Background()

	files := new(MockFilesRepository)
	files.On("TypeStats", ctx, "user-1").Return([]TypeStat{
		{FileType: "application/octet-stream", Count: 1, Bytes: 333},
	}, nil)

	notes := new(MockCounter)
	notes.On("Count", ctx, "user-1").Return(int64(0), nil)
	texts := new(MockCounter)
	texts.On("Count", ctx, "user-1").Return(int64(0), nil)

	// 333 / 100000 = 0.333% → rounds to 0.33
	service := NewService(files, notes, texts, 100000, slog.Default())
	stats, err := service.Storage(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, 0.33, stats.UsedPercent)
}

func TestService_Storage_ZeroQuota(t *testing.T) {
	ctx := context.Background()

	files := new(MockFilesRepository)
	files.On("TypeStats", ctx, "user-1").Return([]TypeStat{}, nil)
	notes := new(MockCounter)
	notes.On("Count", ctx, "user-1").Return(int64(0), nil)
	texts := new(MockCounter)
	texts.On("Count", ctx, "user-1").Return(int64(0), nil)

	service := NewService(files, notes, texts, 0, slog.Default())
	stats, err := service.Storage(ctx, "user-1")

	require.NoError(t, err)
	assert.Zero(t, stats.UsedPercent)
}

func TestService_Analytics_FillsMissingDays(t *testing.T) {
	ctx := context.Background()

	today := time.Now().UTC().Truncate(24 * time.Hour)
	todayKey := today.Format("2006-01-02")

	files := new(MockFilesRepository)
	files.On("TypeStats", ctx, "user-1").Return([]TypeStat{
		{FileType: "video/mp4", Count: 2, Bytes: 5000},
	}, nil)
	files.On("UploadsSince", ctx, "user-1", mock.AnythingOfType("time.Time")).
		Return(map[string]int64{todayKey: 2}, nil)

	service := NewService(files, new(MockCounter), new(MockCounter), 1<<30, slog.Default())
	analytics, err := service.Analytics(ctx, "user-1")

	require.NoError(t, err)
	require.Len(t, analytics.UploadsPerDay, 7)

	last := analytics.UploadsPerDay[len(analytics.UploadsPerDay)-1]
	assert.Equal(t, todayKey, last.Date)
	assert.Equal(t, int64(2), last.Count)

	for _, d := range analytics.UploadsPerDay[:6] {
		assert.Zero(t, d.Count, d.Date)
	}

	assert.Equal(t, int64(2), analytics.ByCategory[CategoryVideo].Count)
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		fileType string
		want     string
	}{
		{"image/png", CategoryImage},
		{"image/jpeg", CategoryImage},
		{"video/mp4", CategoryVideo},
		{"audio/mpeg", CategoryAudio},
		{"application/pdf", CategoryPDF},
		{"text/plain", CategoryOther},
		{"application/octet-stream", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.fileType, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.fileType))
		})
	}
}
