package file

import "time"

// File is the metadata record for one uploaded blob. FileName is the
// generated disk-safe name, OriginalName is whatever the client declared.
type File struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	FileName     string    `json:"fileName"`
	OriginalName string    `json:"originalName"`
	FileType     string    `json:"fileType"`
	FileSize     int64     `json:"fileSize"`
	FileUrl      string    `json:"fileUrl"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

type ListResponse struct {
	Files []File `json:"files"`
	Total int    `json:"total"`
}
