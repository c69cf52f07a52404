package model

import "time"

// FileMetadata describes one uploaded file.
// This is a pure domain model with no database-specific dependencies or tags.
// FileName is the server-generated stored name (UUID + extension) and acts as
// the external lookup key; OriginalFileName is kept only for the download
// Content-Disposition header.
type FileMetadata struct {
	ID               int64     `json:"id"`
	FileName         string    `json:"fileName"`
	OriginalFileName string    `json:"originalFileName"`
	FileType         string    `json:"fileType"`
	FileSize         int64     `json:"fileSize"`
	FilePath         string    `json:"filePath"`
	UploadTime       time.Time `json:"uploadTime"`
}
