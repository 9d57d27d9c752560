package stats

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/slog"
)

const analyticsWindowDays = 7

// FilesRepository exposes the file aggregates the dashboard needs.
type FilesRepository interface {
	TypeStats(ctx context.Context, userID string) ([]TypeStat, error)
	UploadsSince(ctx context.Context, userID string, since time.Time) (map[string]int64, error)
}

// Counter reports how many records an owner has; note and text
// repositories both satisfy it.
type Counter interface {
	Count(ctx context.Context, userID string) (int64, error)
}

type Servicer interface {
	Storage(ctx context.Context, userID string) (StorageStats, error)
	Analytics(ctx context.Context, userID string) (Analytics, error)
}

type Service struct {
	files FilesRepository
	notes Counter
	texts Counter
	quota int64
	log   *slog.Logger
}

func NewService(files FilesRepository, notes, texts Counter, quotaBytes int64, log *slog.Logger) *Service {
	return &Service{
		files: files,
		notes: notes,
		texts: texts,
		quota: quotaBytes,
		log:   log.With("component", "stats_service"),
	}
}

func (s *Service) Storage(ctx context.Context, userID string) (StorageStats, error) {
	typeStats, err := s.files.TypeStats(ctx, userID)
	if err != nil {
		s.log.Error("failed to aggregate files", "user_id", userID, "error", err)
		return StorageStats{}, fmt.Errorf("file stats: %w", err)
	}

	result := StorageStats{
		QuotaBytes: s.quota,
		ByCategory: emptyCategories(),
	}
	for _, ts := range typeStats {
		cat := result.ByCategory[Categorize(ts.FileType)]
		cat.Count += ts.Count
		cat.Bytes += ts.Bytes
		result.ByCategory[Categorize(ts.FileType)] = cat

		result.FileCount += ts.Count
		result.TotalBytes += ts.Bytes
	}

	if result.NoteCount, err = s.notes.Count(ctx, userID); err != nil {
		return StorageStats{}, fmt.Errorf("note count: %w", err)
	}
	if result.TextCount, err = s.texts.Count(ctx, userID); err != nil {
		return StorageStats{}, fmt.Errorf("text count: %w", err)
	}

	if s.quota > 0 {
		pct := float64(result.TotalBytes) / float64(s.quota) * 100
		result.UsedPercent = math.Round(pct*100) / 100
	}

	return result, nil
}

// Analytics returns the category breakdown plus an uploads-per-day
// series over the trailing week, with missing days filled in as zero.
func (s *Service) Analytics(ctx context.Context, userID string) (Analytics, error) {
	typeStats, err := s.files.TypeStats(ctx, userID)
	if err != nil {
		return Analytics{}, fmt.Errorf("file stats: %w", err)
	}

	byCategory := emptyCategories()
	for _, ts := range typeStats {
		cat := byCategory[Categorize(ts.FileType)]
		cat.Count += ts.Count
		cat.Bytes += ts.Bytes
		byCategory[Categorize(ts.FileType)] = cat
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	since := today.AddDate(0, 0, -(analyticsWindowDays - 1))

	perDay, err := s.files.UploadsSince(ctx, userID, since)
	if err != nil {
		return Analytics{}, fmt.Errorf("uploads per day: %w", err)
	}

	series := make([]DayCount, 0, analyticsWindowDays)
	for d := since; !d.After(today); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		series = append(series, DayCount{Date: key, Count: perDay[key]})
	}

	return Analytics{ByCategory: byCategory, UploadsPerDay: series}, nil
}

func emptyCategories() map[string]CategoryStats {
	return map[string]CategoryStats{
		CategoryImage: {},
		CategoryVideo: {},
		CategoryAudio: {},
		CategoryPDF:   {},
		CategoryOther: {},
	}
}
