package stats

import "cloudvault/internal/domain/stats"

type storageOutput struct {
	Body stats.StorageStats
}

type analyticsOutput struct {
	Body stats.Analytics
}
