package client

// Wire models for the server's JSON API. Kept separate from the server
// packages so the client binary does not link server internals.

type User struct {
	ID           string `json:"id"`
	Email        string `json:"email,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	AuthProvider string `json:"authProvider"`
	DisplayName  string `json:"displayName,omitempty"`
}

type RegisterResult struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type File struct {
	ID           string `json:"id"`
	FileName     string `json:"fileName"`
	OriginalName string `json:"originalName"`
	FileType     string `json:"fileType"`
	FileSize     int64  `json:"fileSize"`
	FileUrl      string `json:"fileUrl"`
	UploadedAt   string `json:"uploadedAt"`
}

type FileList struct {
	Files []File `json:"files"`
	Total int    `json:"total"`
}

type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type NoteList struct {
	Notes []Note `json:"notes"`
	Total int    `json:"total"`
}

type Text struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type TextList struct {
	Texts []Text `json:"texts"`
	Total int    `json:"total"`
}

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
