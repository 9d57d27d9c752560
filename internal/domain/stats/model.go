package stats

import "strings"

// Coarse MIME categories used by the dashboard breakdown.
const (
	CategoryImage = "image"
	CategoryVideo = "video"
	CategoryAudio = "audio"
	CategoryPDF   = "pdf"
	CategoryOther = "other"
)

type CategoryStats struct {
	Count int64 `json:"count"`
	Bytes int64 `json:"bytes"`
}

type StorageStats struct {
	FileCount   int64                    `json:"fileCount"`
	TotalBytes  int64                    `json:"totalBytes"`
	NoteCount   int64                    `json:"noteCount"`
	TextCount   int64                    `json:"textCount"`
	QuotaBytes  int64                    `json:"quotaBytes"`
	UsedPercent float64                  `json:"usedPercent"`
	ByCategory  map[string]CategoryStats `json:"byCategory"`
}

type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type Analytics struct {
	ByCategory    map[string]CategoryStats `json:"byCategory"`
	UploadsPerDay []DayCount               `json:"uploadsPerDay"`
}

// TypeStat is one row of the per-MIME-type aggregate from storage.
type TypeStat struct {
	FileType string
	Count    int64
	Bytes    int64
}

// Categorize maps a declared MIME type to a coarse display category.
func Categorize(fileType string) string {
	switch {
	case strings.HasPrefix(fileType, "image/"):
		return CategoryImage
	case strings.HasPrefix(fileType, "video/"):
		return CategoryVideo
	case strings.HasPrefix(fileType, "audio/"):
		return CategoryAudio
	case strings.Contains(fileType, "pdf"):
		return CategoryPDF
	default:
		return CategoryOther
	}
}
